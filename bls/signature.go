// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package bls

import "errors"

// Signature is a byte-encoded point of G1. It stays encoded for its whole
// life: the scheme only manipulates it through the engine.
type Signature struct {
	raw []byte
}

// Marshal returns a copy of the encoded signature, SizeG1 bytes.
func (s *Signature) Marshal() []byte {
	out := make([]byte, len(s.raw))
	copy(out, s.raw)
	return out
}

// UnmarshalSignature checks the size only; the point itself is validated
// by the engine when the signature is used.
func UnmarshalSignature(raw []byte) (*Signature, error) {
	if len(raw) != SizeG1 {
		return nil, ErrOperandSize
	}
	s := &Signature{raw: make([]byte, SizeG1)}
	copy(s.raw, raw)
	return s, nil
}

// Verify reports whether s is a valid signature on message under
// publicKey, checking e(-H(message), pk)·e(s, g2) == 1. H(message) is
// negated engine-side, with a scalar multiplication by -1. Any engine
// failure counts as an invalid signature.
func (s *Signature) Verify(e Engine, publicKey *PublicKey, message []byte) bool {
	hm, err := HashToG1(e, message)
	if err != nil {
		return false
	}
	hmNeg, err := e.G1ScalarMul(hm, negOneScalar[:])
	if err != nil {
		return false
	}
	ok, err := e.PairingCheck(
		[][]byte{hmNeg, s.raw},
		[][]byte{publicKey.Marshal(), g2GenEnc},
	)
	return err == nil && ok
}

// VerifyAggregated reports whether s is the aggregate signature of all
// publicKeys on the same message.
func (s *Signature) VerifyAggregated(e Engine, publicKeys []*PublicKey, message []byte) bool {
	agg, err := AggregatePublicKeys(publicKeys)
	if err != nil {
		return false
	}
	return s.Verify(e, agg, message)
}

// Signatures is a set of signatures that can be folded into one.
type Signatures []*Signature

// Aggregate sums the signatures in G1 through the engine. The aggregate
// of a valid signature set verifies against the aggregate of the signing
// keys.
func (sigs Signatures) Aggregate(e Engine) (*Signature, error) {
	if len(sigs) == 0 {
		return nil, errors.New("bls: no signatures to aggregate")
	}
	raw := make([]byte, len(sigs[0].raw))
	copy(raw, sigs[0].raw)
	var err error
	for _, s := range sigs[1:] {
		if raw, err = e.G1Add(raw, s.raw); err != nil {
			return nil, err
		}
	}
	return &Signature{raw: raw}, nil
}
