// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package bls

import (
	"errors"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// NativeEngine evaluates the group primitives in-process with
// gnark-crypto. The zero value is ready to use.
type NativeEngine struct{}

var _ Engine = NativeEngine{}

var errPairingCount = errors.New("bls: mismatched pairing operand counts")

func decodeG1(p *bls12381.G1Affine, in []byte) error {
	if len(in) != SizeG1 {
		return ErrOperandSize
	}
	return p.Unmarshal(in)
}

func decodeG2(p *bls12381.G2Affine, in []byte) error {
	if len(in) != SizeG2 {
		return ErrOperandSize
	}
	return p.Unmarshal(in)
}

func (NativeEngine) G1Add(a, b []byte) ([]byte, error) {
	var pa, pb bls12381.G1Affine
	if err := decodeG1(&pa, a); err != nil {
		return nil, err
	}
	if err := decodeG1(&pb, b); err != nil {
		return nil, err
	}
	pa.Add(&pa, &pb)
	return pa.Marshal(), nil
}

func (NativeEngine) G1ScalarMul(p, k []byte) ([]byte, error) {
	var pt bls12381.G1Affine
	if err := decodeG1(&pt, p); err != nil {
		return nil, err
	}
	if len(k) != SizeScalar {
		return nil, ErrOperandSize
	}
	var s big.Int
	s.SetBytes(k)
	pt.ScalarMultiplication(&pt, &s)
	return pt.Marshal(), nil
}

func (NativeEngine) PairingCheck(g1s, g2s [][]byte) (bool, error) {
	if len(g1s) != len(g2s) {
		return false, errPairingCount
	}
	if len(g1s) == 0 {
		return true, nil
	}

	ps := make([]bls12381.G1Affine, len(g1s))
	qs := make([]bls12381.G2Affine, len(g2s))
	for i := range g1s {
		if err := decodeG1(&ps[i], g1s[i]); err != nil {
			return false, err
		}
		if err := decodeG2(&qs[i], g2s[i]); err != nil {
			return false, err
		}
	}
	return bls12381.PairingCheck(ps, qs)
}
