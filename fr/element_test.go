// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package fr

import (
	"encoding/binary"
	"math/big"
	"testing"

	frbls "github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

// genElement draws a uniformly distributed reduced element.
func genElement() gopter.Gen {
	return func(genParams *gopter.GenParameters) *gopter.GenResult {
		var buf [Bytes]byte
		for i := 0; i < Bytes; i += 8 {
			binary.BigEndian.PutUint64(buf[i:i+8], genParams.NextUint64())
		}
		var e Element
		e.SetBytes(buf[:])
		return gopter.NewGenResult(&e, gopter.NoShrinker)
	}
}

func newElement(t *testing.T, s string) *Element {
	t.Helper()
	var e Element
	_, err := e.SetString(s)
	require.NoError(t, err)
	return &e
}

func TestAddSubMulVectors(t *testing.T) {
	a := newElement(t, "52435875175126190479447740508185965837690552500527637822603658699934286217216")
	b := newElement(t, "12345678901234567890123456789012345678901234567890")

	var res Element
	require.Equal(t, "12345678901234567890123456789012345678896939600593", res.Add(a, b).String())
	require.Equal(t, "52435875175126190479447740495840286936455984610404181033591313021033051649326", res.Sub(a, b).String())
	require.Equal(t, "12345678901234567890123456789012345678905529535187", res.Sub(b, a).String())
	require.Equal(t, "52435875175126190426423453368120603823684016299126984202463593337925104891183", res.Mul(a, b).String())
}

func TestInverseVector(t *testing.T) {
	x := newElement(t, "0x123456789abcdef0fedcba9876543210deadbeefcafebabe0123456789abcdef")
	require.Equal(t, "8234104123542484906572010032064808850990111143658022268089185009072295628271", x.String())

	var xInv Element
	xInv.Inverse(x)
	require.Equal(t, "28814450914725426894510969107323844859893127720211804516873939254431153588559", xInv.String())

	var check Element
	require.True(t, check.Mul(x, &xInv).IsOne())

	var one Element
	one.SetOne()
	require.True(t, xInv.Inverse(&one).IsOne())
}

func TestInverseOfZeroPanics(t *testing.T) {
	var zero, res Element
	require.PanicsWithError(t, ErrZeroInverse.Error(), func() {
		res.Inverse(&zero)
	})
	require.PanicsWithError(t, ErrZeroInverse.Error(), func() {
		var x Element
		x.SetUint64(42)
		res.Div(&x, &zero)
	})
}

func TestNegZero(t *testing.T) {
	var zero, res Element
	require.True(t, res.Neg(&zero).IsZero(), "-0 must stay the in-range zero, not q")
}

func TestSetString(t *testing.T) {
	var e Element

	_, err := e.SetString("-1")
	require.NoError(t, err)
	require.Equal(t, "52435875175126190479447740508185965837690552500527637822603658699938581184512", e.String())

	_, err = e.SetString("0x73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001")
	require.NoError(t, err)
	require.True(t, e.IsZero(), "q reduces to zero")

	_, err = e.SetString("not a number")
	require.Error(t, err)
}

func TestSetBigInt(t *testing.T) {
	var e Element
	e.SetBigInt(big.NewInt(-1))
	require.Equal(t, "52435875175126190479447740508185965837690552500527637822603658699938581184512", e.String())

	qPlusOne := new(big.Int).Add(Modulus(), big.NewInt(1))
	require.True(t, e.SetBigInt(qPlusOne).IsOne())
}

func TestBytesRoundTrip(t *testing.T) {
	x := newElement(t, "461168601842738790")

	b := x.Bytes()
	require.Len(t, b[:], Bytes)

	var y Element
	y.SetBytes(b[:])
	require.True(t, x.Equal(&y))

	// small values are left-padded
	require.Equal(t, byte(0), b[0])
	require.Equal(t, x.Marshal(), b[:])
}

func TestSqrt(t *testing.T) {
	// d = -(10240/10241) is a non-residue mod q
	d := newElement(t, "19257038036680949359750312669786877991949435402254120286184196891950884077233")
	var s Element
	require.Nil(t, s.Sqrt(d))

	var dSquare Element
	dSquare.Square(d)
	root := s.Sqrt(&dSquare)
	require.NotNil(t, root)
	var back Element
	require.True(t, back.Square(root).Equal(&dSquare))
}

func TestSetRandom(t *testing.T) {
	var a, b Element
	_, err := a.SetRandom()
	require.NoError(t, err)
	_, err = b.SetRandom()
	require.NoError(t, err)
	require.False(t, a.Equal(&b))
}

func TestModulusIsCopied(t *testing.T) {
	m := Modulus()
	m.SetUint64(0)
	require.Equal(t, "52435875175126190479447740508185965837690552500527637822603658699938581184513", Modulus().String())
}

func TestFieldProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("addition is commutative", prop.ForAll(
		func(a, b *Element) bool {
			var ab, ba Element
			ab.Add(a, b)
			ba.Add(b, a)
			return ab.Equal(&ba)
		},
		genElement(), genElement(),
	))

	properties.Property("multiplication is commutative", prop.ForAll(
		func(a, b *Element) bool {
			var ab, ba Element
			ab.Mul(a, b)
			ba.Mul(b, a)
			return ab.Equal(&ba)
		},
		genElement(), genElement(),
	))

	properties.Property("addition is associative", prop.ForAll(
		func(a, b, c *Element) bool {
			var l, r Element
			l.Add(a, b).Add(&l, c)
			r.Add(b, c).Add(a, &r)
			return l.Equal(&r)
		},
		genElement(), genElement(), genElement(),
	))

	properties.Property("multiplication is associative", prop.ForAll(
		func(a, b, c *Element) bool {
			var l, r Element
			l.Mul(a, b).Mul(&l, c)
			r.Mul(b, c).Mul(a, &r)
			return l.Equal(&r)
		},
		genElement(), genElement(), genElement(),
	))

	properties.Property("multiplication distributes over addition", prop.ForAll(
		func(a, b, c *Element) bool {
			var bc, l, ab, ac, r Element
			bc.Add(b, c)
			l.Mul(a, &bc)
			ab.Mul(a, b)
			ac.Mul(a, c)
			r.Add(&ab, &ac)
			return l.Equal(&r)
		},
		genElement(), genElement(), genElement(),
	))

	properties.Property("zero is the additive identity, one the multiplicative", prop.ForAll(
		func(a *Element) bool {
			var zero, one, l, r Element
			one.SetOne()
			l.Add(a, &zero)
			r.Mul(a, &one)
			return l.Equal(a) && r.Equal(a)
		},
		genElement(),
	))

	properties.Property("a - a == 0 and a + (-a) == 0", prop.ForAll(
		func(a *Element) bool {
			var diff, neg, sum Element
			diff.Sub(a, a)
			neg.Neg(a)
			sum.Add(a, &neg)
			return diff.IsZero() && sum.IsZero()
		},
		genElement(),
	))

	properties.Property("a · a⁻¹ == 1 and (a⁻¹)⁻¹ == a", prop.ForAll(
		func(a *Element) bool {
			if a.IsZero() {
				return true
			}
			var inv, prod, back Element
			inv.Inverse(a)
			prod.Mul(a, &inv)
			back.Inverse(&inv)
			return prod.IsOne() && back.Equal(a)
		},
		genElement(),
	))

	properties.Property("a^(q-1) == 1 for nonzero a", prop.ForAll(
		func(a *Element) bool {
			if a.IsZero() {
				return true
			}
			var res Element
			qMinus1 := new(big.Int).Sub(Modulus(), big.NewInt(1))
			return res.Exp(a, qMinus1).IsOne()
		},
		genElement(),
	))

	properties.Property("√(a²) squares back to a²", prop.ForAll(
		func(a *Element) bool {
			var square, root, back Element
			square.Square(a)
			if root.Sqrt(&square) == nil {
				return false
			}
			return back.Square(&root).Equal(&square)
		},
		genElement(),
	))

	properties.Property("SetBytes inverts Bytes", prop.ForAll(
		func(a *Element) bool {
			b := a.Bytes()
			var back Element
			return back.SetBytes(b[:]).Equal(a)
		},
		genElement(),
	))

	properties.Property("agrees with the bls12-381 scalar field implementation", prop.ForAll(
		func(a, b *Element) bool {
			var x, y, refSum, refProd frbls.Element
			x.SetBigInt(a.BigInt(new(big.Int)))
			y.SetBigInt(b.BigInt(new(big.Int)))
			refSum.Add(&x, &y)
			refProd.Mul(&x, &y)

			var sum, prod Element
			sum.Add(a, b)
			prod.Mul(a, b)
			if sum.String() != refSum.String() || prod.String() != refProd.String() {
				return false
			}

			if !a.IsZero() {
				var refInv frbls.Element
				refInv.Inverse(&x)
				var inv Element
				inv.Inverse(a)
				if inv.String() != refInv.String() {
					return false
				}
			}
			return true
		},
		genElement(), genElement(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
