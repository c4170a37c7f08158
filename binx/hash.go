package binx

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"hash/crc32"
)

// MD5 returns the 16-byte MD5 digest of b.
//
// Errors: ErrEmptyInput when b has no bytes.
func MD5(b []byte) ([]byte, error) {
	if len(b) == 0 {
		return nil, ErrEmptyInput
	}
	sum := md5.Sum(b)

	return sum[:], nil
}

// SHA1 returns the 20-byte SHA-1 digest of b.
//
// Errors: ErrEmptyInput when b has no bytes.
func SHA1(b []byte) ([]byte, error) {
	if len(b) == 0 {
		return nil, ErrEmptyInput
	}
	sum := sha1.Sum(b)

	return sum[:], nil
}

// SHA256 returns the 32-byte SHA-256 digest of b.
//
// Errors: ErrEmptyInput when b has no bytes.
func SHA256(b []byte) ([]byte, error) {
	if len(b) == 0 {
		return nil, ErrEmptyInput
	}
	sum := sha256.Sum256(b)

	return sum[:], nil
}

// SHA512 returns the 64-byte SHA-512 digest of b.
//
// Errors: ErrEmptyInput when b has no bytes.
func SHA512(b []byte) ([]byte, error) {
	if len(b) == 0 {
		return nil, ErrEmptyInput
	}
	sum := sha512.Sum512(b)

	return sum[:], nil
}

// Checksum returns the CRC-32 (IEEE polynomial) checksum of b.
// Unlike the digests, an empty input is legal and checksums to 0.
func Checksum(b []byte) uint32 {
	return crc32.ChecksumIEEE(b)
}
