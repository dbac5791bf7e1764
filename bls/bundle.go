// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package bls

import (
	"bytes"
	"errors"
	"time"

	"github.com/bits-and-blooms/bitset"
	"github.com/fxamacker/cbor/v2"

	"github.com/consensys/jubjub/logger"
)

// Bundle pairs an aggregated signature with the bitmap of the signers
// that produced it. Bitmap indices are relative to an ordered key set the
// participants agree on out of band.
type Bundle struct {
	Signers   *bitset.BitSet
	Signature []byte
}

// NewBundle aggregates the given signatures, keyed by signer index.
func NewBundle(e Engine, sigs map[uint]*Signature) (*Bundle, error) {
	if len(sigs) == 0 {
		return nil, errors.New("bls: empty bundle")
	}

	signers := bitset.New(uint(len(sigs)))
	for idx := range sigs {
		signers.Set(idx)
	}

	ordered := make(Signatures, 0, len(sigs))
	for idx, ok := signers.NextSet(0); ok; idx, ok = signers.NextSet(idx + 1) {
		ordered = append(ordered, sigs[idx])
	}
	agg, err := ordered.Aggregate(e)
	if err != nil {
		return nil, err
	}

	return &Bundle{Signers: signers, Signature: agg.Marshal()}, nil
}

// Verify checks the bundle against the full ordered key set: the
// signature must be the aggregate signature on message of exactly the
// keys flagged in the bitmap. A bitmap index beyond the key set fails the
// check.
func (b *Bundle) Verify(e Engine, keys []*PublicKey, message []byte) bool {
	log := logger.Logger()
	start := time.Now()

	if b.Signers == nil {
		return false
	}
	subset := make([]*PublicKey, 0, b.Signers.Count())
	for idx, ok := b.Signers.NextSet(0); ok; idx, ok = b.Signers.NextSet(idx + 1) {
		if int(idx) >= len(keys) {
			return false
		}
		subset = append(subset, keys[idx])
	}

	sig, err := UnmarshalSignature(b.Signature)
	if err != nil {
		return false
	}
	ok := sig.VerifyAggregated(e, subset, message)

	log.Debug().
		Int("signers", len(subset)).
		Bool("ok", ok).
		Dur("took", time.Since(start)).
		Msg("verified signature bundle")
	return ok
}

// ToBytes serializes the bundle with deterministic CBOR.
func (b *Bundle) ToBytes() ([]byte, error) {
	enc, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := enc.NewEncoder(&buf).Encode(b); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FromBytes deserializes a bundle produced by ToBytes.
func (b *Bundle) FromBytes(data []byte) error {
	dm, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		return err
	}
	return dm.NewDecoder(bytes.NewReader(data)).Decode(b)
}
