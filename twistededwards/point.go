// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package twistededwards

import (
	"math/big"

	"github.com/consensys/jubjub/debug"
	"github.com/consensys/jubjub/fr"
)

// PointAffine point on a twisted Edwards curve
type PointAffine struct {
	X, Y fr.Element
}

// PointExtended point in extended coordinates (X:Y:T:Z), where x = X/Z,
// y = Y/Z and T·Z = X·Y
//
// https://eprint.iacr.org/2008/522.pdf
type PointExtended struct {
	X, Y, T, Z fr.Element
}

// Set sets p to p1 and returns it
func (p *PointAffine) Set(p1 *PointAffine) *PointAffine {
	p.X.Set(&p1.X)
	p.Y.Set(&p1.Y)
	return p
}

// SetIdentity sets p to the neutral element (0, 1) and returns it
func (p *PointAffine) SetIdentity() *PointAffine {
	p.X.SetZero()
	p.Y.SetOne()
	return p
}

// IsIdentity returns true if p is the neutral element (0, 1)
func (p *PointAffine) IsIdentity() bool {
	return p.X.IsZero() && p.Y.IsOne()
}

// Equal returns true if p = p1, false otherwise
func (p *PointAffine) Equal(p1 *PointAffine) bool {
	return p.X.Equal(&p1.X) && p.Y.Equal(&p1.Y)
}

// Neg sets p to -p1 = (-x, y) and returns it
func (p *PointAffine) Neg(p1 *PointAffine) *PointAffine {
	p.X.Neg(&p1.X)
	p.Y.Set(&p1.Y)
	return p
}

// IsOnCurve checks if a point is on the twisted Edwards curve, that is if
// a*x² + y² = 1 + d*x²*y².
//
// The rest of the package does not call it: the group operations assume
// their operands satisfy the equation and produce unreduced garbage when
// they don't. Callers decide where validation is worth the two
// multiplications.
func (p *PointAffine) IsOnCurve() bool {

	var lhs, rhs, xx, yy fr.Element

	xx.Square(&p.X)
	yy.Square(&p.Y)

	lhs.Set(&xx)
	mulByA(&lhs)
	lhs.Add(&lhs, &yy)

	rhs.Mul(&xx, &yy).
		Mul(&rhs, &curveParams.D)
	var one fr.Element
	one.SetOne()
	rhs.Add(&rhs, &one)

	return lhs.Equal(&rhs)
}

// FromExtended sets p in affine from p1 in extended coordinates, dividing
// X and Y by Z. It panics with fr.ErrZeroInverse if p1.Z = 0; points
// produced by this package always carry a nonzero Z.
func (p *PointAffine) FromExtended(p1 *PointExtended) *PointAffine {
	var zInv fr.Element
	zInv.Inverse(&p1.Z)
	p.X.Mul(&p1.X, &zInv)
	p.Y.Mul(&p1.Y, &zInv)
	return p
}

// ScalarMultiplication scalar multiplication of a point
// p1 in affine coordinates with a scalar in big.Int
func (p *PointAffine) ScalarMultiplication(p1 *PointAffine, scalar *big.Int) *PointAffine {
	var ext PointExtended
	ext.ScalarMultiplication(p1, scalar)
	return p.FromExtended(&ext)
}

// Set sets p to p1 and returns it
func (p *PointExtended) Set(p1 *PointExtended) *PointExtended {
	p.X.Set(&p1.X)
	p.Y.Set(&p1.Y)
	p.T.Set(&p1.T)
	p.Z.Set(&p1.Z)
	return p
}

// SetIdentity sets p to the neutral element (0:1:0:1) and returns it
func (p *PointExtended) SetIdentity() *PointExtended {
	p.X.SetZero()
	p.Y.SetOne()
	p.T.SetZero()
	p.Z.SetOne()
	return p
}

// IsIdentity returns true if p is the neutral element, comparing across
// equivalent representations (0:λ:0:λ)
func (p *PointExtended) IsIdentity() bool {
	return p.X.IsZero() && p.Y.Equal(&p.Z)
}

// FromAffine sets p in extended coordinates from p1 in affine, as
// (x : y : x·y : 1)
func (p *PointExtended) FromAffine(p1 *PointAffine) *PointExtended {
	p.X.Set(&p1.X)
	p.Y.Set(&p1.Y)
	p.T.Mul(&p1.X, &p1.Y)
	p.Z.SetOne()
	return p
}

// Equal returns true if p and p1 represent the same affine point.
//
// Representations of a point differ by a scalar on all coordinates, so the
// comparison cross-multiplies by the Z's instead of dividing by them:
// X1·Z2 = X2·Z1 and Y1·Z2 = Y2·Z1. No inversion is performed.
func (p *PointExtended) Equal(p1 *PointExtended) bool {
	var lhs, rhs fr.Element
	lhs.Mul(&p.X, &p1.Z)
	rhs.Mul(&p1.X, &p.Z)
	if !lhs.Equal(&rhs) {
		return false
	}
	lhs.Mul(&p.Y, &p1.Z)
	rhs.Mul(&p1.Y, &p.Z)
	return lhs.Equal(&rhs)
}

// Neg sets p to -p1 = (-X : Y : -T : Z) and returns it
func (p *PointExtended) Neg(p1 *PointExtended) *PointExtended {
	p.X.Neg(&p1.X)
	p.Y.Set(&p1.Y)
	p.T.Neg(&p1.T)
	p.Z.Set(&p1.Z)
	return p
}

// Add sets p to p1 + p2 and returns it. It doesn't modify p1 nor p2.
//
// The formula is unified: ✅ p1 can be equal to p2, to -p2 or to the
// neutral element.
//
// ⚠️ p2's Z coordinate is never read; the formula treats p2 as if it were
// normalized (Z = 1). Points fresh out of FromAffine qualify; results of
// Add or Double do not until they go through FromExtended/FromAffine
// again.
//
// https://hyperelliptic.org/EFD/g1p/auto-twisted-extended.html#addition-madd-2008-hwcd
func (p *PointExtended) Add(p1, p2 *PointExtended) *PointExtended {

	var A, B, C, D, E, F, G, H, tmp fr.Element
	A.Mul(&p1.X, &p2.X)
	B.Mul(&p1.Y, &p2.Y)
	C.Mul(&p1.T, &p2.T).
		Mul(&C, &curveParams.D)
	D.Set(&p1.Z)
	tmp.Add(&p1.X, &p1.Y)
	E.Add(&p2.X, &p2.Y).
		Mul(&E, &tmp).
		Sub(&E, &A).
		Sub(&E, &B)
	F.Sub(&D, &C)
	G.Add(&D, &C)
	mulByA(&A)
	H.Sub(&B, &A)

	p.X.Mul(&E, &F)
	p.Y.Mul(&G, &H)
	p.T.Mul(&E, &H)
	p.Z.Mul(&F, &G)

	return p
}

// AddDedicated sets p to p1 + p2 using the dedicated (non-unified)
// addition and returns it. It doesn't modify p1 nor p2. It trades the
// unified formula's d-multiplication for a pair of exclusions:
//
// ⚠️ p1 must be different than p2 and -p2. The formula silently computes
// garbage on those inputs; there is no runtime detection outside builds
// with the debug tag, and no fallback to Add. Use Add when the operands
// are not known to be distinct.
//
// ⚠️ Like Add, p2 is treated as normalized: its Z coordinate is never
// read.
//
// https://hyperelliptic.org/EFD/g1p/auto-twisted-extended.html#addition-madd-2008-hwcd-2
func (p *PointExtended) AddDedicated(p1, p2 *PointExtended) *PointExtended {

	if debug.Debug {
		var p2Neg PointExtended
		p2Neg.Neg(p2)
		debug.Assert(!p1.Equal(p2) && !p1.Equal(&p2Neg), "dedicated addition requires p1 different from p2 and -p2")
	}

	var A, B, C, E, F, G, H, tmp fr.Element
	A.Mul(&p1.X, &p2.X)
	B.Mul(&p1.Y, &p2.Y)
	C.Mul(&p1.Z, &p2.T)
	E.Add(&p1.T, &C)
	tmp.Sub(&p1.X, &p1.Y)
	F.Add(&p2.X, &p2.Y).
		Mul(&F, &tmp).
		Add(&F, &B).
		Sub(&F, &A)
	mulByA(&A)
	G.Add(&B, &A)
	H.Sub(&p1.T, &C)

	p.X.Mul(&E, &F)
	p.Y.Mul(&G, &H)
	p.T.Mul(&E, &H)
	p.Z.Mul(&F, &G)

	return p
}

// Double sets p to 2·p1 and returns it. It doesn't modify p1.
//
// ✅ The formula holds for every representative, the neutral element
// included, and reads all four coordinates of p1 (no normalization
// assumption).
//
// https://hyperelliptic.org/EFD/g1p/auto-twisted-extended.html#doubling-dbl-2008-hwcd
func (p *PointExtended) Double(p1 *PointExtended) *PointExtended {

	var A, B, C, D, E, F, G, H fr.Element
	A.Square(&p1.X)
	B.Square(&p1.Y)
	C.Square(&p1.Z).
		Double(&C)
	D.Set(&A)
	mulByA(&D)
	E.Add(&p1.X, &p1.Y).
		Square(&E).
		Sub(&E, &A).
		Sub(&E, &B)
	G.Add(&D, &B)
	F.Sub(&G, &C)
	H.Sub(&D, &B)

	p.X.Mul(&E, &F)
	p.Y.Mul(&G, &H)
	p.T.Mul(&E, &H)
	p.Z.Mul(&F, &G)

	return p
}

// Sub sets p to p1 - p2 and returns it. It doesn't modify p1 nor p2.
//
// It is Add(p1, -p2), so it is unified (✅ p1 can equal p2, giving the
// neutral element) and inherits Add's normalization assumption on p2.
func (p *PointExtended) Sub(p1, p2 *PointExtended) *PointExtended {
	var p2Neg PointExtended
	p2Neg.Neg(p2)
	return p.Add(p1, &p2Neg)
}

// ScalarMultiplication sets p to scalar·p1 and returns it.
//
// Double-and-add, most significant bit first. The base stays in affine
// form so every addition meets Add's normalized-operand assumption. A
// negative scalar multiplies -p1 by its absolute value; a zero scalar
// gives the neutral element.
func (p *PointExtended) ScalarMultiplication(p1 *PointAffine, scalar *big.Int) *PointExtended {

	var k big.Int
	k.Set(scalar)
	var base PointAffine
	base.Set(p1)
	if k.Sign() < 0 {
		k.Neg(&k)
		base.Neg(&base)
	}

	var baseExt, acc PointExtended
	baseExt.FromAffine(&base)
	acc.SetIdentity()

	for i := k.BitLen() - 1; i >= 0; i-- {
		acc.Double(&acc)
		if k.Bit(i) == 1 {
			acc.Add(&acc, &baseExt)
		}
	}

	return p.Set(&acc)
}
