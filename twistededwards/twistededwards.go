// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package twistededwards implements Jubjub, the twisted Edwards curve
//
//	a·x² + y² = 1 + d·x²·y²  with  a = -1,  d = -(10240/10241)
//
// defined over the scalar field of BLS12-381 (see
// github.com/consensys/jubjub/fr).
//
// Points are handled in two representations: affine (x, y) for input and
// output, and extended homogeneous coordinates (X : Y : T : Z) from
// Hisil-Wong-Carter-Dawson for the arithmetic itself, where x = X/Z,
// y = Y/Z and T·Z = X·Y.
//
// https://eprint.iacr.org/2008/522.pdf
package twistededwards

import (
	"math/big"

	"github.com/consensys/jubjub/fr"
)

// CurveParams curve parameters: ax^2 + y^2 = 1 + d*x^2*y^2
type CurveParams struct {
	A, D     fr.Element
	Cofactor big.Int
	Order    big.Int // prime order of the subgroup generated by Base
	Base     PointAffine
}

var curveParams CurveParams

// GetEdwardsCurve returns the twisted Edwards curve on BLS12-381's Fr
func GetEdwardsCurve() CurveParams {

	// copy to keep Order private
	var res CurveParams

	res.A.Set(&curveParams.A)
	res.D.Set(&curveParams.D)
	res.Cofactor.Set(&curveParams.Cofactor)
	res.Order.Set(&curveParams.Order)
	res.Base.Set(&curveParams.Base)

	return res
}

func init() {
	// A = -1
	// D = -(10240/10241) = 19257038036680949359750312669786877991949435402254120286184196891950884077233
	// Cofactor = 8
	// Order = 6554484396890773809930967563523245729705921265872317281365359162392183254199
	curveParams.A.SetUint64(1).Neg(&curveParams.A)

	curveParams.D.SetString("19257038036680949359750312669786877991949435402254120286184196891950884077233")
	curveParams.Cofactor.SetUint64(8)
	curveParams.Order.SetString("6554484396890773809930967563523245729705921265872317281365359162392183254199", 10)

	curveParams.Base.X.SetString("8076246640662884909881801758704306714034609987455869804520522091855516602923")
	curveParams.Base.Y.SetString("13262374693698910701929044844600465831413122818447359594527400194675274060458")
}

// mulByA multiplies x by the curve coefficient a = -1.
func mulByA(x *fr.Element) {
	x.Neg(x)
}
