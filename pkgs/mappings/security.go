package mappings

// SecurityKey identifies a Security-2 network key granted during inclusion.
type SecurityKey byte

const (
	KeyS2Unauthenticated SecurityKey = 0x01
	KeyS2Authenticated   SecurityKey = 0x02
	KeyS2AccessControl   SecurityKey = 0x04
	KeyS0                SecurityKey = 0x80
)

var securityKeyNames = map[SecurityKey]string{
	KeyS2Unauthenticated: "s2_unauthenticated",
	KeyS2Authenticated:   "s2_authenticated",
	KeyS2AccessControl:   "s2_access_control",
	KeyS0:                "s0",
}

// Symbol returns the key's symbol, or ok=false for an unregistered bit.
func (k SecurityKey) Symbol() (string, bool) {
	s, ok := securityKeyNames[k]
	return s, ok
}

// KeysFromBitmask expands a keys_granted bitmask into its set of symbols,
// in ascending bit order. Unrecognized bits are skipped rather than failing
// the whole decode, matching spec.md's "never fail fatally" rule for
// unknown identifiers.
func KeysFromBitmask(mask byte) []SecurityKey {
	var keys []SecurityKey
	for _, k := range []SecurityKey{KeyS2Unauthenticated, KeyS2Authenticated, KeyS2AccessControl, KeyS0} {
		if mask&byte(k) != 0 {
			keys = append(keys, k)
		}
	}
	return keys
}

// BitmaskFromKeys packs a set of keys back into a single byte.
func BitmaskFromKeys(keys []SecurityKey) byte {
	var mask byte
	for _, k := range keys {
		mask |= byte(k)
	}
	return mask
}

// KexFailType is the Security-2 key-exchange failure reason.
type KexFailType byte

var kexFailNames = map[KexFailType]string{
	0x01: "kex_fail_key",
	0x02: "kex_fail_scheme",
	0x03: "kex_fail_curves",
	0x05: "kex_fail_decrypt",
	0x06: "kex_fail_cancel",
	0x07: "kex_fail_auth",
	0x08: "kex_fail_key_get",
	0x09: "kex_fail_key_verify",
	0x0A: "kex_fail_key_report",
}

// Symbol returns the failure-type symbol, or ok=false for an unregistered byte.
func (k KexFailType) Symbol() (string, bool) {
	s, ok := kexFailNames[k]
	return s, ok
}
