package binx

import (
	"encoding/base64"
	"encoding/hex"
)

// ToHex returns the lowercase hexadecimal encoding of b.
func ToHex(b []byte) string {
	return hex.EncodeToString(b)
}

// FromHex decodes a hexadecimal string produced by any conforming
// encoder (upper- or lowercase digits accepted).
func FromHex(s string) ([]byte, error) {
	return hex.DecodeString(s)
}

// ToBase64 returns the standard (padded) Base64 encoding of b.
func ToBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// FromBase64 decodes a standard Base64 string.
func FromBase64(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(s)
}
