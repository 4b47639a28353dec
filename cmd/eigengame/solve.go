// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/eigengame/chart"
	"github.com/katalvlaran/eigengame/config"
	"github.com/katalvlaran/eigengame/dataio"
	"github.com/katalvlaran/eigengame/eigengame"
	"github.com/katalvlaran/eigengame/metrics"
)

// solveFlags are the solver settings shared by solve and batch.
type solveFlags struct {
	in          inputFlags
	configPath  string
	chartPath   string
	metricsPath string
	k           int
	epochs      int
	lr          float64
	seed        int64
	discipline  string
	penalty     string
	init        string
	tolerance   float64
	decayEvery  int
	decayBy     float64
	variance    bool
	centering   bool
}

func (f *solveFlags) register(fs *pflag.FlagSet) {
	def := config.Default()
	f.in.register(fs)
	fs.StringVar(&f.configPath, "config", "", "YAML settings; explicit flags override it")
	fs.StringVar(&f.metricsPath, "metrics-file", "", "write Prometheus metrics in textfile format")
	fs.IntVarP(&f.k, "k", "k", def.K, "number of components")
	fs.IntVar(&f.epochs, "epochs", def.Epochs, "number of epochs")
	fs.Float64Var(&f.lr, "lr", def.LearningRate, "learning rate")
	fs.Int64Var(&f.seed, "seed", def.Seed, "RNG seed for random init (0 = fixed default)")
	fs.StringVar(&f.discipline, "discipline", def.Discipline, "synchronous | sequential")
	fs.StringVar(&f.penalty, "penalty", def.Penalty, "coefficient | projection")
	fs.StringVar(&f.init, "init", def.Init, "random | ones")
	fs.Float64Var(&f.tolerance, "tolerance", def.Tolerance, "stop once no vector moves more than this (0 = run all epochs)")
	fs.IntVar(&f.decayEvery, "decay-every", def.Decay.Every, "decay the step every N epochs (0 = constant)")
	fs.Float64Var(&f.decayBy, "decay-factor", def.Decay.Factor, "step multiplier at each decay")
	fs.BoolVar(&f.variance, "variance", false, "report the explained variance ratio")
	fs.BoolVar(&f.centering, "centering", false, "subtract column means first")
}

// settings merges the config file (if any) with the flags the user set.
func (f *solveFlags) settings(fs *pflag.FlagSet) (*config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		c, err := config.Load(f.configPath)
		if err != nil {
			return nil, err
		}
		cfg = *c
	}
	if fs.Changed("k") {
		cfg.K = f.k
	}
	if fs.Changed("epochs") {
		cfg.Epochs = f.epochs
	}
	if fs.Changed("lr") {
		cfg.LearningRate = f.lr
	}
	if fs.Changed("seed") {
		cfg.Seed = f.seed
	}
	if fs.Changed("discipline") {
		cfg.Discipline = f.discipline
	}
	if fs.Changed("penalty") {
		cfg.Penalty = f.penalty
	}
	if fs.Changed("init") {
		cfg.Init = f.init
	}
	if fs.Changed("tolerance") {
		cfg.Tolerance = f.tolerance
	}
	if fs.Changed("decay-every") {
		cfg.Decay.Every = f.decayEvery
	}
	if fs.Changed("decay-factor") {
		cfg.Decay.Factor = f.decayBy
	}
	cfg.Transpose = cfg.Transpose || f.in.transpose
	cfg.Centering = cfg.Centering || f.centering
	cfg.ExplainedVariance = cfg.ExplainedVariance || f.variance
	cfg.History = cfg.History || f.chartPath != ""

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func solveCmd() *cobra.Command {
	f := &solveFlags{}
	var data, out, scores string
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Extract the top-k principal components with EigenGame",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.settings(cmd.Flags())
			if err != nil {
				return err
			}
			D, err := f.in.load(data, cfg.Transpose)
			if err != nil {
				return err
			}
			opts, err := cfg.Options()
			if err != nil {
				return err
			}
			opts = append(opts, eigengame.WithContext(cmd.Context()), eigengame.WithLogger(log.Logger))

			rec := metrics.NewRecorder()
			start := time.Now()
			res, err := eigengame.Solve(D, cfg.K, cfg.Epochs, cfg.LearningRate, opts...)
			rec.ObserveSolve(data, res, time.Since(start), err)
			if werr := f.writeMetrics(rec); werr != nil {
				log.Warn().Err(werr).Msg("metrics not written")
			}
			if err != nil {
				return err
			}
			log.Info().Int("k", res.K()).Int("epochs", res.Epochs).Bool("converged", res.Converged).Msg("solve finished")
			printResult(cmd.OutOrStdout(), res)

			if out != "" {
				if err = dataio.WriteCSVFile(out, res.Vectors); err != nil {
					return err
				}
			}
			if scores != "" {
				S, err := eigengame.Transform(D, res.Vectors)
				if err != nil {
					return err
				}
				if err = dataio.WriteCSVFile(scores, S); err != nil {
					return err
				}
			}
			if f.chartPath != "" {
				if err = chart.Convergence(res.History, f.chartPath); err != nil {
					return err
				}
				log.Info().Str("path", f.chartPath).Msg("chart written")
			}

			return nil
		},
	}
	f.register(cmd.Flags())
	cmd.Flags().StringVar(&data, "data", "", "CSV data matrix, samples × features")
	cmd.Flags().StringVar(&out, "out", "", "write the k×d component vectors as CSV")
	cmd.Flags().StringVar(&scores, "scores", "", "write the n×k projected scores as CSV")
	cmd.Flags().StringVar(&f.chartPath, "chart", "", "write a convergence chart (.png, .svg, .pdf)")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}

func (f *solveFlags) writeMetrics(rec *metrics.Recorder) error {
	if f.metricsPath == "" {
		return nil
	}

	return rec.WriteTextfile(f.metricsPath)
}

func printResult(w io.Writer, res *eigengame.Result) {
	fmt.Fprintf(w, "epochs: %d converged: %t final_step: %g\n", res.Epochs, res.Converged, res.FinalStep)
	for t, lambda := range res.Eigenvalues {
		fmt.Fprintf(w, "component %d: eigenvalue %.6g", t, lambda)
		if res.ExplainedVariance != nil {
			fmt.Fprintf(w, " explained %.4f", res.ExplainedVariance[t])
		}
		fmt.Fprintln(w)
	}
}
