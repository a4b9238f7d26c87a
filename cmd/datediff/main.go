// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command datediff prints the number of days between two dates in the
// 'YYYY-MM-DD' format. The count excludes both dates, so that consecutive
// days are zero days apart. Further pairs may be listed in a yaml file
// named by --pairs.
package main

import (
	"context"
	"io"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/logging/ctxlog"
)

const cmdSpec = `name: datediff
summary: print the number of days strictly between two dates in the YYYY-MM-DD format
arguments:
  - <date1>
  - <date2>
`

type datediffFlags struct {
	cmdutil.LoggingFlags
	Pairs  string `subcmd:"pairs,,'yaml file listing further pairs of dates to compare'"`
	Format string `subcmd:"format,text,'output format, one of text, json or yaml'"`
}

type command struct {
	out io.Writer
}

func newCommandSet(out io.Writer) *subcmd.CommandSetYAML {
	cmdSet := subcmd.MustFromYAML(cmdSpec)
	c := &command{out: out}
	cmdSet.Set("datediff").MustRunnerAndFlags(c.datediff,
		subcmd.MustRegisteredFlagSet(&datediffFlags{}))
	return cmdSet
}

// withLogger returns a context carrying the logger configured by lf and
// a function to close any log file that was opened.
func withLogger(ctx context.Context, lf *cmdutil.LoggingFlags) (context.Context, func() error, error) {
	logger, err := lf.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, nil, err
	}
	return ctxlog.Context(ctx, logger.Logger), logger.Close, nil
}

func main() {
	subcmd.Dispatch(context.Background(), newCommandSet(os.Stdout))
}
