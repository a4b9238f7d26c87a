// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"fmt"

	"cloudeng.io/datediff/date"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"gopkg.in/yaml.v3"
)

// result is the outcome of comparing a pair of dates.
type result struct {
	First  string `json:"first" yaml:"first"`
	Second string `json:"second" yaml:"second"`
	Days   int    `json:"days" yaml:"days"`
}

func (r result) String() string {
	return fmt.Sprintf("The number of days between: '%s' and '%s' is %d days.", r.First, r.Second, r.Days)
}

func daysBetween(ctx context.Context, first, second string) (result, error) {
	a, err := date.Parse(first)
	if err != nil {
		return result{}, fmt.Errorf("date1: %w", err)
	}
	b, err := date.Parse(second)
	if err != nil {
		return result{}, fmt.Errorf("date2: %w", err)
	}
	days := date.Between(a, b)
	ctxlog.Logger(ctx).Debug("days between",
		"first", a.String(), "first.ordinal", a.Ordinal(),
		"second", b.String(), "second.ordinal", b.Ordinal(),
		"days", days)
	return result{First: a.String(), Second: b.String(), Days: days}, nil
}

func (c *command) datediff(ctx context.Context, values any, args []string) error {
	fv := values.(*datediffFlags)
	switch fv.Format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("unsupported output format: %q", fv.Format)
	}
	ctx, closer, err := withLogger(ctx, &fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer closer()

	r, err := daysBetween(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	results := []result{r}
	errs := &errors.M{}
	if len(fv.Pairs) > 0 {
		more, err := pairsFromFile(ctx, fv.Pairs, errs)
		if err != nil {
			return err
		}
		results = append(results, more...)
	}
	if err := c.print(fv.Format, results); err != nil {
		return err
	}
	return errs.Err()
}

func (c *command) print(format string, results []result) error {
	switch format {
	case "json":
		enc := json.NewEncoder(c.out)
		for _, r := range results {
			if err := enc.Encode(r); err != nil {
				return err
			}
		}
		return nil
	case "yaml":
		out, err := yaml.Marshal(results)
		if err != nil {
			return err
		}
		_, err = c.out.Write(out)
		return err
	}
	for _, r := range results {
		if _, err := fmt.Fprintln(c.out, r.String()); err != nil {
			return err
		}
	}
	return nil
}
