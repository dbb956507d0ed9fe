package syntax

import (
	"reflect"
	"testing"
)

func TestParseParamString(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		separator string
		expected  map[string]any
		wantErr   bool
	}{
		{
			name:      "numeric params",
			input:     "node_id=5, value=99",
			separator: ",",
			expected:  map[string]any{"node_id": byte(5), "value": byte(99)},
		},
		{
			name:      "bool param",
			input:     "accept=true, verify=false",
			separator: ",",
			expected:  map[string]any{"accept": true, "verify": false},
		},
		{
			name:      "inline comment",
			input:     "level=50, #disabled=1",
			separator: ",",
			expected:  map[string]any{"level": byte(50)},
		},
		{
			name:      "string fallback",
			input:     "mode=any",
			separator: ",",
			expected:  map[string]any{"mode": "any"},
		},
		{
			name:      "missing equals is an error",
			input:     "broken",
			separator: ",",
			wantErr:   true,
		},
		{
			name:      "blank and whitespace entries ignored",
			input:     "  , level=10 ,  ",
			separator: ",",
			expected:  map[string]any{"level": byte(10)},
		},
		{
			name:      "integer wider than a byte sniffs as uint64",
			input:     "parameter_offset=300",
			separator: ",",
			expected:  map[string]any{"parameter_offset": uint64(300)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseParamString(tt.input, tt.separator)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseParamString() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("ParseParamString() = %#v, want %#v", result, tt.expected)
			}
		})
	}
}
