package cc

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/keskad/zipgw/pkgs/mappings"
	"github.com/keskad/zipgw/pkgs/syntax"
)

// TestNodeListReportDecode is spec scenario S1.
func TestNodeListReportDecode(t *testing.T) {
	body := append([]byte{0x52, 0x02, 0x01, 0x00, 0x00, 0x05}, make([]byte, 26)...)
	cmd := Parse(body)

	if cmd.CommandClassSymbol != "network_management_proxy" {
		t.Errorf("CommandClassSymbol = %q", cmd.CommandClassSymbol)
	}
	if cmd.CommandSymbol != "node_list_report" {
		t.Errorf("CommandSymbol = %q", cmd.CommandSymbol)
	}
	if cmd.Fields["seq_no"] != byte(1) {
		t.Errorf("seq_no = %v, want 1", cmd.Fields["seq_no"])
	}
	if cmd.Fields["status"] != byte(0) {
		t.Errorf("status = %v, want 0", cmd.Fields["status"])
	}
	nodes, _ := cmd.Fields["node_list"].([]uint8)
	if !reflect.DeepEqual(nodes, []uint8{1, 3}) {
		t.Errorf("node_list = %v, want [1 3]", nodes)
	}
}

// TestMultilevelSensorReportDecode is spec scenario S3.
func TestMultilevelSensorReportDecode(t *testing.T) {
	body := []byte{0x31, 0x05, 0x01, 0b001_00_010, 0x00, 0xC8}
	cmd := Parse(body)

	if cmd.Fields["precision"] != uint8(1) {
		t.Errorf("precision = %v, want 1", cmd.Fields["precision"])
	}
	if cmd.Fields["size"] != uint8(2) {
		t.Errorf("size = %v, want 2", cmd.Fields["size"])
	}
	if cmd.Fields["level"] != int64(20) {
		t.Errorf("level = %v, want 20", cmd.Fields["level"])
	}
}

// TestUnknownCommandDecode is spec scenario S6: decoding never raises, an
// unrecognized (class, command) pair tags both halves Unknown and carries
// the raw payload.
func TestUnknownCommandDecode(t *testing.T) {
	body := []byte{0xFE, 0xFE, 0x01, 0x02, 0x03}
	cmd := Parse(body)

	if !cmd.CommandClassUnknown {
		t.Error("expected CommandClassUnknown = true")
	}
	if !cmd.CommandUnknown {
		t.Error("expected CommandUnknown = true")
	}
	if !bytes.Equal(cmd.Value, []byte{0x01, 0x02, 0x03}) {
		t.Errorf("Value = % X, want 01 02 03", cmd.Value)
	}
}

func TestParseShortBodyNeverPanics(t *testing.T) {
	for _, body := range [][]byte{nil, {}, {0x01}} {
		cmd := Parse(body)
		if cmd.CommandClassUnknown != true && cmd.CommandClass != 0 {
			t.Errorf("unexpected command for short body %v: %+v", body, cmd)
		}
	}
}

func TestBasicReportEncodeDecodeRoundTrip(t *testing.T) {
	payload, err := Encode(0x20, 0x01, map[string]any{"value": true})
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	// basic_set has no registered decoder (it's a SET this library only
	// sends); decode the paired basic_report shape instead to exercise the
	// level helper both directions.
	decoded := Parse(append([]byte{0x20, 0x03}, payload[2:]...))
	if decoded.Fields["value"] != "on" {
		t.Errorf("value = %v, want \"on\"", decoded.Fields["value"])
	}
}

func TestDimmerLevelDecodesAsPercentage(t *testing.T) {
	decoded := Parse([]byte{0x20, 0x03, 0x32})
	if decoded.Fields["value"] != byte(0x32) {
		t.Errorf("value = %v, want 0x32", decoded.Fields["value"])
	}
}

// TestSniffedCLIParamsEncodeCorrectly pins the producer (syntax.
// ParseParamString, which sniffs small integers as byte) against the
// consumer (the cc encoders of single-byte fields, which read numeric
// params via a `.(byte)` comma-ok assertion): a "--param value=50,duration=10" string must survive
// the full send_command CLI path onto the wire unchanged, not silently
// degrade to zero.
func TestSniffedCLIParamsEncodeCorrectly(t *testing.T) {
	params, err := syntax.ParseParamString("value=50, duration=10", ",")
	if err != nil {
		t.Fatalf("ParseParamString() error = %v", err)
	}

	payload, err := Encode(mappings.CCSwitchMultilevel, 0x01, params)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	want := []byte{byte(mappings.CCSwitchMultilevel), 0x01, 0x32, 0x0A}
	if !bytes.Equal(payload, want) {
		t.Errorf("Encode() = % X, want % X", payload, want)
	}
}
