package cc

import (
	"bytes"
	"reflect"
	"testing"
)

// TestNodeListBitmaskRoundTrip is invariant 3: to_bitmask(unmask(b)) == b for
// every 29-byte mask.
func TestNodeListBitmaskRoundTrip(t *testing.T) {
	tests := [][]byte{
		make([]byte, NodeListSize),
		func() []byte {
			m := make([]byte, NodeListSize)
			m[0] = 0x05 // nodes 1, 3
			return m
		}(),
		func() []byte {
			m := make([]byte, NodeListSize)
			for i := range m {
				m[i] = 0xFF
			}
			return m
		}(),
	}

	for _, mask := range tests {
		nodes := DecodeNodeListBitmask(mask)
		back := EncodeNodeListBitmask(nodes)
		if !bytes.Equal(back, mask) {
			t.Errorf("round trip mismatch for % X: got % X", mask, back)
		}
	}
}

func TestDecodeNodeListBitmaskBitOrder(t *testing.T) {
	nodes := DecodeNodeListBitmask([]byte{0b0000_0101})
	if !reflect.DeepEqual(nodes, []uint8{1, 3}) {
		t.Errorf("nodes = %v, want [1 3]", nodes)
	}
}

func TestPrecisionScaleSizeRoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		precision uint8
		scale     uint8
		raw       int32
	}{
		{"1-byte positive", 1, 0, 20},
		{"1-byte negative", 1, 0, -20},
		{"2-byte value", 1, 2, 200},
		{"4-byte value", 2, 1, 123456},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := EncodePrecisionScaleSize(tt.precision, tt.scale, tt.raw)
			if err != nil {
				t.Fatalf("EncodePrecisionScaleSize() error = %v", err)
			}
			decoded, _, err := DecodePrecisionScaleSize(encoded[0], encoded[1:])
			if err != nil {
				t.Fatalf("DecodePrecisionScaleSize() error = %v", err)
			}
			if decoded.Precision != tt.precision || decoded.Scale != tt.scale || decoded.Raw != tt.raw {
				t.Errorf("decoded = %+v, want precision=%d scale=%d raw=%d", decoded, tt.precision, tt.scale, tt.raw)
			}
		})
	}
}

func TestDecodeCommandClassListSkipsMarkers(t *testing.T) {
	out := DecodeCommandClassList([]byte{0x25, 0x00, 0x31, 0xEF, 0x71, 0xF1, 0x86})
	if !reflect.DeepEqual(out, []byte{0x25, 0x31, 0x71, 0x86}) {
		t.Errorf("DecodeCommandClassList() = % X", out)
	}
}
