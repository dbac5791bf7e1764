// Package jubjub implements arithmetic on the Jubjub twisted Edwards curve,
// the curve embedded in the scalar field of BLS12-381.
//
// The library is organized as follows:
//   - fr: arithmetic in the 255-bit prime field the curve is defined over
//   - twistededwards: point arithmetic in affine and extended
//     (Hisil-Wong-Carter-Dawson) coordinates
//   - bls: a BLS signature layer on BLS12-381, driven through byte-level
//     group-operation engines
//
// User documentation
// https://docs.gnark.consensys.net
package jubjub

import (
	"github.com/blang/semver/v4"
	"github.com/consensys/gnark-crypto/ecc"
)

var Version = semver.MustParse("0.1.0")

// HostCurve returns the pairing-friendly curve whose scalar field Jubjub is
// defined over.
func HostCurve() ecc.ID {
	return ecc.BLS12_381
}
