// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package bls

import (
	"errors"
	"runtime"
)

// Option configures the verification helpers.
type Option func(*config) error

type config struct {
	nbTasks int
}

// WithNbTasks caps the number of verifications running concurrently.
// Defaults to the number of CPUs.
func WithNbTasks(nbTasks int) Option {
	return func(c *config) error {
		if nbTasks < 1 || nbTasks > 512 {
			return errors.New("nbTasks must be between 1 and 512")
		}
		c.nbTasks = nbTasks
		return nil
	}
}

func newConfig(opts ...Option) (config, error) {
	cfg := config{nbTasks: runtime.NumCPU()}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return config{}, err
		}
	}
	return cfg, nil
}
