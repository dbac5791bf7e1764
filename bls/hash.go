// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package bls

import "golang.org/x/crypto/sha3"

// HashToG1 maps message to a byte-encoded G1 point: the first 31 bytes of
// keccak256(message), read big-endian, multiply the G1 generator.
// Truncating to 248 bits keeps the scalar below the 255-bit group order.
//
// ⚠️ This is not the RFC 9380 hash-to-curve and not a random oracle into
// the group: the discrete log of the output is known by construction.
func HashToG1(e Engine, message []byte) ([]byte, error) {
	h := sha3.NewLegacyKeccak256()
	h.Write(message)
	digest := h.Sum(nil)

	var k [SizeScalar]byte
	copy(k[SizeScalar-31:], digest[:31])
	return e.G1ScalarMul(g1GenEnc, k[:])
}
