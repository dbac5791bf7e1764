// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package bls

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/consensys/jubjub/logger"
)

// BatchVerify checks the i-th signature against the i-th key and message,
// running the verifications concurrently. It returns nil when every
// signature is valid, and an error naming an offending index otherwise.
func BatchVerify(e Engine, keys []*PublicKey, messages [][]byte, sigs []*Signature, opts ...Option) error {
	cfg, err := newConfig(opts...)
	if err != nil {
		return err
	}
	if len(keys) != len(messages) || len(keys) != len(sigs) {
		return errors.New("bls: keys, messages and signatures must have the same length")
	}
	if len(sigs) == 0 {
		return nil
	}

	log := logger.Logger()
	start := time.Now()

	var g errgroup.Group
	g.SetLimit(cfg.nbTasks)
	for i := range sigs {
		i := i // per-iteration copy; the go directive predates Go 1.22 loop scoping
		g.Go(func() error {
			if !sigs[i].Verify(e, keys[i], messages[i]) {
				return fmt.Errorf("bls: signature %d: verification failed", i)
			}
			return nil
		})
	}
	err = g.Wait()

	log.Debug().
		Int("n", len(sigs)).
		Int("nbTasks", cfg.nbTasks).
		Bool("ok", err == nil).
		Dur("took", time.Since(start)).
		Msg("batch verified signatures")
	return err
}
