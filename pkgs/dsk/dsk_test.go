package dsk

import (
	"bytes"
	"testing"
)

func TestParseAndString(t *testing.T) {
	tests := []struct {
		name string
		str  string
		raw  []byte
	}{
		{
			name: "all zero",
			str:  "00000-00000-00000-00000-00000-00000-00000-00000",
			raw:  make([]byte, Length),
		},
		{
			name: "example dsk",
			str:  "50285-18819-09924-30691-15973-33711-04005-03623",
			raw: []byte{
				0xC4, 0x6D, 0x49, 0x83, 0x26, 0xC4, 0x77, 0xE3,
				0x3E, 0x65, 0x83, 0xAF, 0x0F, 0xA5, 0x0E, 0x27,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.str)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if !bytes.Equal(got, tt.raw) {
				t.Errorf("Parse() = % X, want % X", got, tt.raw)
			}

			back, err := String(tt.raw)
			if err != nil {
				t.Fatalf("String() error = %v", err)
			}
			if back != tt.str {
				t.Errorf("String() = %q, want %q", back, tt.str)
			}
		})
	}
}

func TestParseEmpty(t *testing.T) {
	got, err := Parse("")
	if err != nil {
		t.Fatalf("Parse(\"\") error = %v", err)
	}
	if got != nil {
		t.Errorf("Parse(\"\") = %v, want nil", got)
	}
}

func TestParseInvalidGroupCount(t *testing.T) {
	if _, err := Parse("12345-67890"); err == nil {
		t.Error("expected error for wrong group count")
	}
}

func TestStringInvalidLength(t *testing.T) {
	if _, err := String([]byte{1, 2, 3}); err == nil {
		t.Error("expected error for wrong byte length")
	}
}
