// SPDX-License-Identifier: MIT

// Command eigengame extracts principal components with EigenGame and
// carries the companion tools: a dense reference solver, batch runs,
// grouped statistics and mass-univariate regression.
//
// Usage:
//
//	eigengame solve --data X.csv -k 3 --epochs 2000 --lr 0.1 --variance --out V.csv
//	eigengame reference --data X.csv -k 3
//	eigengame batch --data a.csv --data b.csv -k 2 --workers 4
//	eigengame groupstat --labels parc.csv --values thick.csv --op mean --skip-zero
//	eigengame regress --iv scores.csv --dv behaviour.csv --cov age.csv
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	// JSON lines when stderr is redirected, human-readable otherwise.
	if term.IsTerminal(int(os.Stderr.Fd())) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	if err := Execute(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
