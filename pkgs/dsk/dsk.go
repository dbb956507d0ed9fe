// Package dsk converts between a Z-Wave Device Specific Key's 16-byte wire
// form and its human-presented dash-separated decimal form.
package dsk

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

// Length is the number of bytes in a DSK.
const Length = 16

// groupCount is the number of 5-digit decimal groups in the string form.
const groupCount = 8

// Parse decodes a DSK string like
// "50285-18819-09924-30691-15973-33711-04005-03623" into its 16 raw bytes.
// An empty string decodes to an empty byte slice.
func Parse(s string) ([]byte, error) {
	if s == "" {
		return nil, nil
	}

	groups := strings.Split(s, "-")
	if len(groups) != groupCount {
		return nil, fmt.Errorf("dsk: expected %d dash-separated groups, got %d", groupCount, len(groups))
	}

	out := make([]byte, Length)
	for i, g := range groups {
		if len(g) != 5 {
			return nil, fmt.Errorf("dsk: group %d (%q) is not 5 digits", i, g)
		}
		v, err := strconv.ParseUint(g, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("dsk: group %d (%q) is not a valid decimal chunk: %w", i, g, err)
		}
		binary.BigEndian.PutUint16(out[i*2:i*2+2], uint16(v))
	}
	return out, nil
}

// String encodes 16 raw bytes into the dash-separated decimal form. An empty
// slice encodes to an empty string.
func String(b []byte) (string, error) {
	if len(b) == 0 {
		return "", nil
	}
	if len(b) != Length {
		return "", fmt.Errorf("dsk: expected %d bytes, got %d", Length, len(b))
	}

	groups := make([]string, groupCount)
	for i := 0; i < groupCount; i++ {
		v := binary.BigEndian.Uint16(b[i*2 : i*2+2])
		groups[i] = fmt.Sprintf("%05d", v)
	}
	return strings.Join(groups, "-"), nil
}
