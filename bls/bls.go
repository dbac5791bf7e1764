// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package bls implements BLS signatures over BLS12-381, with signatures
// in G1 and public keys in G2.
//
// The scheme is built on three primitives operating on byte-encoded
// points: addition and scalar multiplication in G1, and a multi-pairing
// check. They sit behind the Engine interface; NativeEngine evaluates
// them in-process with gnark-crypto, and host environments exposing the
// same primitives as precompiles can slot in their own implementation.
//
// The order of the BLS12-381 groups is exactly the modulus of package fr,
// so private keys and other exponents are fr elements.
package bls

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/consensys/jubjub/fr"
)

// encodings of the fixed protocol elements, set at init
var (
	g1GenEnc     []byte           // G1 generator
	g2GenEnc     []byte           // G2 generator
	negOneScalar [SizeScalar]byte // -1 mod the group order
)

func init() {
	_, _, g1, g2 := bls12381.Generators()
	g1GenEnc = g1.Marshal()
	g2GenEnc = g2.Marshal()

	var negOne fr.Element
	negOne.SetOne()
	negOne.Neg(&negOne)
	negOneScalar = negOne.Bytes()
}
