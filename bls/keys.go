// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package bls

import (
	"errors"
	"fmt"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/consensys/jubjub/fr"
)

// PrivateKey is a non-zero scalar of the BLS12-381 group order.
type PrivateKey struct {
	scalar fr.Element
}

// PublicKey is a point of G2, sk·g2 for the private key sk.
type PublicKey struct {
	p bls12381.G2Affine
}

// GenerateKey draws a uniformly random non-zero private key from
// crypto/rand.
func GenerateKey() (*PrivateKey, error) {
	var sk PrivateKey
	for {
		if _, err := sk.scalar.SetRandom(); err != nil {
			return nil, err
		}
		if !sk.scalar.IsZero() {
			return &sk, nil
		}
	}
}

// Public computes the public key sk·g2.
func (sk *PrivateKey) Public() *PublicKey {
	var pk PublicKey
	_, _, _, g2 := bls12381.Generators()
	var s big.Int
	pk.p.ScalarMultiplication(&g2, sk.scalar.BigInt(&s))
	return &pk
}

// Sign signs message with sk: the signature is sk·H(message) in G1,
// computed through the engine. See HashToG1 for the message map.
func (sk *PrivateKey) Sign(e Engine, message []byte) (*Signature, error) {
	hm, err := HashToG1(e, message)
	if err != nil {
		return nil, fmt.Errorf("hash to g1: %w", err)
	}
	s := sk.scalar.Bytes()
	raw, err := e.G1ScalarMul(hm, s[:])
	if err != nil {
		return nil, fmt.Errorf("g1 scalar mul: %w", err)
	}
	return &Signature{raw: raw}, nil
}

// Marshal returns the big-endian scalar, SizeScalar bytes.
func (sk *PrivateKey) Marshal() []byte {
	b := sk.scalar.Bytes()
	return b[:]
}

// UnmarshalPrivateKey decodes a big-endian scalar. It rejects the zero
// scalar; values beyond the group order are reduced.
func UnmarshalPrivateKey(raw []byte) (*PrivateKey, error) {
	if len(raw) != SizeScalar {
		return nil, ErrOperandSize
	}
	var sk PrivateKey
	sk.scalar.SetBytes(raw)
	if sk.scalar.IsZero() {
		return nil, errors.New("bls: zero private key")
	}
	return &sk, nil
}

// Marshal returns the uncompressed serialization of the key, SizeG2
// bytes.
func (pk *PublicKey) Marshal() []byte {
	return pk.p.Marshal()
}

// UnmarshalPublicKey decodes a G2 point, rejecting encodings that are not
// on the curve or outside the prime-order subgroup.
func UnmarshalPublicKey(raw []byte) (*PublicKey, error) {
	if len(raw) != SizeG2 {
		return nil, ErrOperandSize
	}
	var pk PublicKey
	if err := pk.p.Unmarshal(raw); err != nil {
		return nil, err
	}
	return &pk, nil
}

// Equal returns true if both keys are the same G2 point
func (pk *PublicKey) Equal(other *PublicKey) bool {
	return pk.p.Equal(&other.p)
}

// AggregatePublicKeys sums the keys in G2, matching the aggregation of
// the corresponding signatures.
func AggregatePublicKeys(pks []*PublicKey) (*PublicKey, error) {
	if len(pks) == 0 {
		return nil, errors.New("bls: no public keys to aggregate")
	}
	var agg PublicKey
	agg.p.Set(&pks[0].p)
	for _, pk := range pks[1:] {
		agg.p.Add(&agg.p, &pk.p)
	}
	return &agg, nil
}
