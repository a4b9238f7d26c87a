// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
)

// pairsConfig is the format of the file named by --pairs, eg:
//
//	pairs:
//	  - first: 2012-01-01
//	    second: 2012-01-10
//
// The dates are kept as strings so that each invalid date is reported
// rather than failing the entire file.
type pairsConfig struct {
	Pairs []struct {
		First  string `yaml:"first"`
		Second string `yaml:"second"`
	} `yaml:"pairs"`
}

// pairsFromFile computes the results for every valid pair listed in
// filename. Failures for individual pairs are collected in errs.
func pairsFromFile(ctx context.Context, filename string, errs *errors.M) ([]result, error) {
	var cfg pairsConfig
	if err := cmdyaml.ParseConfigFileStrict(ctx, filename, &cfg); err != nil {
		return nil, err
	}
	ctxlog.Logger(ctx).Info("pairs", "file", filename, "pairs", len(cfg.Pairs))
	results := make([]result, 0, len(cfg.Pairs))
	for i, p := range cfg.Pairs {
		if err := ctx.Err(); err != nil {
			errs.Append(err)
			break
		}
		r, err := daysBetween(ctx, p.First, p.Second)
		if err != nil {
			errs.Append(fmt.Errorf("%v: pair %d: %w", filename, i+1, err))
			continue
		}
		results = append(results, r)
	}
	return results, nil
}
