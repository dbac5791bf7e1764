// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package bls

import "errors"

// Sizes in bytes of the encoded operands: gnark-crypto's uncompressed
// affine serialization for points, big-endian for scalars.
const (
	SizeG1     = 96
	SizeG2     = 192
	SizeScalar = 32
)

// ErrOperandSize is returned when an encoded operand does not have the
// expected size.
var ErrOperandSize = errors.New("bls: operand has the wrong size")

// Engine provides the group primitives the signature scheme is built on.
// Operands and results are byte-encoded points; implementations validate
// their inputs and fail hard rather than return partial results.
type Engine interface {
	// G1Add returns the encoding of a + b.
	G1Add(a, b []byte) ([]byte, error)

	// G1ScalarMul returns the encoding of k·p, where k is a big-endian
	// scalar of SizeScalar bytes.
	G1ScalarMul(p, k []byte) ([]byte, error)

	// PairingCheck reports whether the product of the pairings
	// e(g1s[i], g2s[i]) is one. The slices must have the same length; an
	// empty product is trivially one.
	PairingCheck(g1s, g2s [][]byte) (bool, error)
}
