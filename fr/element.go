// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package fr contains field arithmetic operations for the prime field the
// Jubjub curve is defined over, the scalar field of BLS12-381:
//
//	q = 52435875175126190479447740508185965837690552500527637822603658699938581184513
//	q = 0x73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001 (255 bits)
//
// The API follows the mutable-receiver convention: z.Op(x, y) sets z to the
// result and returns z; operands are never modified. An Element holds a
// math/big integer, so assigning one Element to another shares its backing
// storage -- copy with Set, never with =.
package fr

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const (
	// Bits is the number of bits needed to represent an Element.
	Bits = 255

	// Bytes is the number of bytes needed to represent an Element.
	Bytes = 32
)

var (
	qModulus big.Int
	qMinus2  big.Int // Fermat exponent of Inverse
)

func init() {
	if _, ok := qModulus.SetString("52435875175126190479447740508185965837690552500527637822603658699938581184513", 10); !ok {
		panic("fr: invalid modulus")
	}
	qMinus2.Sub(&qModulus, big.NewInt(2))
}

// Modulus returns q as a big.Int.
func Modulus() *big.Int {
	return new(big.Int).Set(&qModulus)
}

// ErrZeroInverse is the panic value of Inverse and Div on a zero input.
//
// A zero denominator cannot be produced by well-formed curve points; reaching
// it means a malformed point entered the arithmetic upstream, and the failure
// must surface rather than be absorbed.
var ErrZeroInverse = errors.New("inverse of zero field element")

// Element is an integer modulo q, always reduced into [0, q).
//
// The zero value is the field zero, ready to use.
type Element struct {
	v big.Int
}

// SetZero z = 0
func (z *Element) SetZero() *Element {
	z.v.SetUint64(0)
	return z
}

// SetOne z = 1
func (z *Element) SetOne() *Element {
	z.v.SetUint64(1)
	return z
}

// SetUint64 sets z to v and returns z
func (z *Element) SetUint64(v uint64) *Element {
	z.v.SetUint64(v)
	return z
}

// Set z = x
func (z *Element) Set(x *Element) *Element {
	z.v.Set(&x.v)
	return z
}

// SetBigInt sets z to v mod q and returns z. Negative v reduce to their
// nonnegative representative.
func (z *Element) SetBigInt(v *big.Int) *Element {
	z.v.Mod(v, &qModulus)
	return z
}

// SetString sets z from s, reduced mod q. s accepts the prefixes understood
// by math/big ("0x", "0b", ...) and an optional leading sign.
func (z *Element) SetString(s string) (*Element, error) {
	var v big.Int
	if _, ok := v.SetString(s, 0); !ok {
		return nil, errors.New("invalid number string")
	}
	return z.SetBigInt(&v), nil
}

// SetBytes interprets e as a big-endian unsigned integer, sets z to that
// value reduced mod q, and returns z.
func (z *Element) SetBytes(e []byte) *Element {
	z.v.SetBytes(e)
	if z.v.Cmp(&qModulus) >= 0 {
		z.v.Mod(&z.v, &qModulus)
	}
	return z
}

// SetRandom sets z to a uniformly random element using crypto/rand and
// returns z, or an error if entropy reading fails.
func (z *Element) SetRandom() (*Element, error) {
	v, err := rand.Int(rand.Reader, &qModulus)
	if err != nil {
		return nil, err
	}
	z.v.Set(v)
	return z, nil
}

// BigInt sets res to the value of z and returns res.
func (z *Element) BigInt(res *big.Int) *big.Int {
	return res.Set(&z.v)
}

// Bytes returns the value of z as a big-endian byte array.
func (z *Element) Bytes() (res [Bytes]byte) {
	z.v.FillBytes(res[:])
	return
}

// Marshal returns the value of z as a big-endian byte slice.
func (z *Element) Marshal() []byte {
	b := z.Bytes()
	return b[:]
}

// String returns the decimal representation of z.
func (z *Element) String() string {
	return z.v.String()
}

// Equal returns z == x
func (z *Element) Equal(x *Element) bool {
	return z.v.Cmp(&x.v) == 0
}

// IsZero returns z == 0
func (z *Element) IsZero() bool {
	return z.v.Sign() == 0
}

// IsOne returns z == 1
func (z *Element) IsOne() bool {
	return z.v.IsUint64() && z.v.Uint64() == 1
}

// Cmp compares z and x and returns -1, 0 or +1.
func (z *Element) Cmp(x *Element) int {
	return z.v.Cmp(&x.v)
}

// Add z = x + y (mod q)
func (z *Element) Add(x, y *Element) *Element {
	z.v.Add(&x.v, &y.v)
	// operands are reduced, one subtraction suffices
	if z.v.Cmp(&qModulus) >= 0 {
		z.v.Sub(&z.v, &qModulus)
	}
	return z
}

// Double z = 2·x (mod q)
func (z *Element) Double(x *Element) *Element {
	return z.Add(x, x)
}

// Sub z = x - y (mod q), always landing on the representative in [0, q).
func (z *Element) Sub(x, y *Element) *Element {
	z.v.Sub(&x.v, &y.v)
	if z.v.Sign() < 0 {
		z.v.Add(&z.v, &qModulus)
	}
	return z
}

// Neg z = q - x (mod q)
func (z *Element) Neg(x *Element) *Element {
	if x.IsZero() {
		return z.SetZero()
	}
	z.v.Sub(&qModulus, &x.v)
	return z
}

// Mul z = x · y (mod q)
func (z *Element) Mul(x, y *Element) *Element {
	z.v.Mul(&x.v, &y.v)
	z.v.Mod(&z.v, &qModulus)
	return z
}

// Square z = x² (mod q)
func (z *Element) Square(x *Element) *Element {
	return z.Mul(x, x)
}

// Exp z = xᵏ (mod q)
func (z *Element) Exp(x *Element, k *big.Int) *Element {
	z.v.Exp(&x.v, k, &qModulus)
	return z
}

// Inverse z = x⁻¹ (mod q), computed as x^(q-2) by Fermat's little theorem.
//
// Panics with ErrZeroInverse if x is zero: zero has no inverse, and a zero
// input here signals a broken invariant (a point with a zero z coordinate),
// never a routine condition.
func (z *Element) Inverse(x *Element) *Element {
	if x.IsZero() {
		panic(ErrZeroInverse)
	}
	return z.Exp(x, &qMinus2)
}

// Div z = x / y (mod q)
//
// Panics with ErrZeroInverse if y is zero.
func (z *Element) Div(x, y *Element) *Element {
	var yInv Element
	yInv.Inverse(y)
	return z.Mul(x, &yInv)
}

// Sqrt z = √x (mod q) if such a square root exists, in which case z is
// returned; if x is not a square in the field, Sqrt leaves z untouched and
// returns nil.
func (z *Element) Sqrt(x *Element) *Element {
	var s big.Int
	if s.ModSqrt(&x.v, &qModulus) == nil {
		return nil
	}
	z.v.Set(&s)
	return z
}
