// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package bls

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignVerify(t *testing.T) {
	e := NativeEngine{}
	sks, pks := testKeyPairs(t, 2)
	msg := []byte("the quick brown fox")

	sig, err := sks[0].Sign(e, msg)
	require.NoError(t, err)

	require.True(t, sig.Verify(e, pks[0], msg))
	require.False(t, sig.Verify(e, pks[0], []byte("another message")))
	require.False(t, sig.Verify(e, pks[1], msg))
}

func TestSignatureRoundTrip(t *testing.T) {
	e := NativeEngine{}
	sks, pks := testKeyPairs(t, 1)
	msg := []byte("serialize me")

	sig, err := sks[0].Sign(e, msg)
	require.NoError(t, err)

	raw := sig.Marshal()
	require.Len(t, raw, SizeG1)

	back, err := UnmarshalSignature(raw)
	require.NoError(t, err)
	require.True(t, back.Verify(e, pks[0], msg))

	_, err = UnmarshalSignature(raw[:SizeG1-1])
	require.ErrorIs(t, err, ErrOperandSize)

	// a tampered signature still unmarshals (only the size is checked)
	// but can no longer verify
	tampered := append([]byte(nil), raw...)
	tampered[SizeG1-1] ^= 1
	ts, err := UnmarshalSignature(tampered)
	require.NoError(t, err)
	require.False(t, ts.Verify(e, pks[0], msg))
}

func TestAggregateSignatures(t *testing.T) {
	e := NativeEngine{}
	sks, pks := testKeyPairs(t, 3)
	msg := []byte("checkpoint 42")

	sigs := make(Signatures, len(sks))
	for i, sk := range sks {
		var err error
		sigs[i], err = sk.Sign(e, msg)
		require.NoError(t, err)
	}

	agg, err := sigs.Aggregate(e)
	require.NoError(t, err)

	require.True(t, agg.VerifyAggregated(e, pks, msg))
	require.False(t, agg.VerifyAggregated(e, pks[:2], msg))
	require.False(t, agg.VerifyAggregated(e, nil, msg))
	require.False(t, agg.Verify(e, pks[0], msg))

	// aggregation order does not matter
	shuffled, err := Signatures{sigs[2], sigs[0], sigs[1]}.Aggregate(e)
	require.NoError(t, err)
	require.Equal(t, agg.Marshal(), shuffled.Marshal())

	single, err := sigs[:1].Aggregate(e)
	require.NoError(t, err)
	require.Equal(t, sigs[0].Marshal(), single.Marshal())

	_, err = Signatures{}.Aggregate(e)
	require.Error(t, err)
}

func TestHashToG1(t *testing.T) {
	e := NativeEngine{}

	h1, err := HashToG1(e, []byte("input"))
	require.NoError(t, err)
	h2, err := HashToG1(e, []byte("input"))
	require.NoError(t, err)
	require.Equal(t, h1, h2)

	h3, err := HashToG1(e, []byte("other input"))
	require.NoError(t, err)
	require.NotEqual(t, h1, h3)

	// the output is a valid G1 encoding
	same, err := e.G1ScalarMul(h1, scalarBytes(1))
	require.NoError(t, err)
	require.Equal(t, h1, same)

	_, err = HashToG1(e, nil)
	require.NoError(t, err)
}
