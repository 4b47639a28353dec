// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/eigengame/dataio"
	"github.com/katalvlaran/eigengame/matrix"
)

// Execute runs the root command against os.Args.
func Execute(ctx context.Context) error {
	return newRootCmd(os.Stdout).ExecuteContext(ctx)
}

func newRootCmd(out io.Writer) *cobra.Command {
	var level string
	root := &cobra.Command{
		Use:           "eigengame",
		Short:         "EigenGame PCA and companion tools",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := zerolog.ParseLevel(level)
			if err != nil {
				return fmt.Errorf("--log-level: %w", err)
			}
			zerolog.SetGlobalLevel(lvl)
			log.Debug().Str("command", cmd.Name()).Msg("eigengame starting")
			return nil
		},
	}
	root.PersistentFlags().StringVar(&level, "log-level", "info", "zerolog level (trace, debug, info, warn, error)")
	root.SetOut(out)
	root.AddCommand(solveCmd(), referenceCmd(), batchCmd(), groupstatCmd(), regressCmd())

	return root
}

// inputFlags are shared by every command that reads a data matrix.
type inputFlags struct {
	header    bool
	transpose bool
	comma     string
}

func (f *inputFlags) register(fs *pflag.FlagSet) {
	fs.BoolVar(&f.header, "header", false, "skip the first line of every CSV")
	fs.BoolVar(&f.transpose, "transpose", false, "files are stored features × samples")
	fs.StringVar(&f.comma, "comma", ",", "CSV field separator")
}

func (f *inputFlags) options(transpose bool) ([]dataio.Option, error) {
	r := []rune(f.comma)
	if len(r) != 1 {
		return nil, fmt.Errorf("--comma must be a single character, got %q", f.comma)
	}
	opts := []dataio.Option{dataio.WithComma(r[0])}
	if f.header {
		opts = append(opts, dataio.WithHeader())
	}
	if transpose || f.transpose {
		opts = append(opts, dataio.WithTranspose())
	}

	return opts, nil
}

func (f *inputFlags) load(path string, transpose bool) (*matrix.Dense, error) {
	opts, err := f.options(transpose)
	if err != nil {
		return nil, err
	}
	D, err := dataio.ReadCSVFile(path, opts...)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("path", path).Int("rows", D.Rows()).Int("cols", D.Cols()).Msg("data loaded")

	return D, nil
}
