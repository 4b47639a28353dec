// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/eigengame/eigengame"
	"github.com/katalvlaran/eigengame/metrics"
	"github.com/katalvlaran/eigengame/parallel"
)

type batchJob struct {
	id   int
	path string
}

type batchOut struct {
	path string
	res  *eigengame.Result
}

func batchCmd() *cobra.Command {
	f := &solveFlags{}
	var (
		paths   []string
		workers int
	)
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Solve several datasets independently in parallel",
		Long: `Runs one EigenGame solve per --data file on a bounded worker pool.
Each file gets its own seed derived from --seed and its position, so results
do not depend on scheduling.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(paths) == 0 {
				return fmt.Errorf("batch: at least one --data file is required")
			}
			cfg, err := f.settings(cmd.Flags())
			if err != nil {
				return err
			}
			base, err := cfg.Options()
			if err != nil {
				return err
			}

			runID := uuid.NewString()
			logger := log.Logger.With().Str("run", runID).Logger()
			rec := metrics.NewRecorder()

			jobs := make([]batchJob, len(paths))
			for i, p := range paths {
				jobs[i] = batchJob{id: i, path: p}
			}
			run := func(ctx context.Context, j batchJob) (batchOut, error) {
				D, err := f.in.load(j.path, cfg.Transpose)
				if err != nil {
					return batchOut{}, err
				}
				opts := append(append([]eigengame.Option(nil), base...),
					eigengame.WithSeed(eigengame.DeriveSeed(cfg.Seed, uint64(j.id))),
					eigengame.WithContext(ctx),
					eigengame.WithLogger(logger.With().Str("path", j.path).Logger()),
				)
				start := time.Now()
				res, err := eigengame.Solve(D, cfg.K, cfg.Epochs, cfg.LearningRate, opts...)
				rec.ObserveSolve(j.path, res, time.Since(start), err)
				if err != nil {
					return batchOut{}, fmt.Errorf("%s: %w", j.path, err)
				}

				return batchOut{path: j.path, res: res}, nil
			}

			outs, err := parallel.Map(cmd.Context(), jobs, run, workers)
			if werr := f.writeMetrics(rec); werr != nil {
				logger.Warn().Err(werr).Msg("metrics not written")
			}
			if err != nil {
				return err
			}
			logger.Info().Int("datasets", len(outs)).Int("workers", parallel.Workers(workers, len(jobs))).Msg("batch finished")

			w := cmd.OutOrStdout()
			for _, o := range outs {
				vals := make([]string, len(o.res.Eigenvalues))
				for t, v := range o.res.Eigenvalues {
					vals[t] = fmt.Sprintf("%.6g", v)
				}
				fmt.Fprintf(w, "%s\t%d\t%s\n", o.path, o.res.Epochs, strings.Join(vals, ","))
			}

			return nil
		},
	}
	f.register(cmd.Flags())
	cmd.Flags().StringArrayVar(&paths, "data", nil, "CSV data matrix (repeatable)")
	cmd.Flags().IntVar(&workers, "workers", 0, "worker goroutines (0 = NumCPU)")

	return cmd
}
