// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package twistededwards

import (
	"errors"

	"github.com/consensys/jubjub/fr"
)

// SizePointCompressed is the size of a compressed point, in bytes
const SizePointCompressed = fr.Bytes

// q fits in 255 bits, so the top bit of the leading byte is free to carry
// the parity of x
const (
	mParity byte = 0x80
	mUnmask byte = 0x7f
)

var (
	errWrongSize    = errors.New("invalid compressed point: wrong size")
	errNotDecodable = errors.New("invalid compressed point: x^2 is not a square")
)

// Bytes returns the compressed serialization of p: the big-endian bytes of
// y, with the parity of x in the top bit.
func (p *PointAffine) Bytes() [SizePointCompressed]byte {
	res := p.Y.Bytes()
	xb := p.X.Bytes()
	if xb[fr.Bytes-1]&1 == 1 {
		res[0] |= mParity
	}
	return res
}

// SetBytes sets p from its compressed serialization, solving
// x² = (1 - y²)/(a - d·y²) and picking the root with the flagged parity.
//
// It errors if buf has the wrong size or if no x satisfies the equation;
// p is left untouched on error. On success p satisfies the curve equation
// by construction, but membership in the prime-order subgroup is not
// checked. A y larger than the modulus is silently reduced.
func (p *PointAffine) SetBytes(buf []byte) error {
	if len(buf) != SizePointCompressed {
		return errWrongSize
	}

	var raw [fr.Bytes]byte
	copy(raw[:], buf)
	odd := raw[0]&mParity != 0
	raw[0] &= mUnmask

	var x, y, yy, num, den fr.Element
	y.SetBytes(raw[:])

	yy.Square(&y)
	num.SetOne().
		Sub(&num, &yy)
	den.Mul(&yy, &curveParams.D)
	den.Sub(&curveParams.A, &den)
	// a/d is not a square, so the denominator cannot vanish
	num.Div(&num, &den)

	if x.Sqrt(&num) == nil {
		return errNotDecodable
	}
	xb := x.Bytes()
	if (xb[fr.Bytes-1]&1 == 1) != odd {
		x.Neg(&x)
	}

	p.X.Set(&x)
	p.Y.Set(&y)
	return nil
}

// Marshal converts p to a byte slice (compressed)
func (p *PointAffine) Marshal() []byte {
	b := p.Bytes()
	return b[:]
}

// Unmarshal is an alias for SetBytes
func (p *PointAffine) Unmarshal(buf []byte) error {
	return p.SetBytes(buf)
}
