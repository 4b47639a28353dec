// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/eigengame/dataio"
	"github.com/katalvlaran/eigengame/groupstat"
)

func groupstatCmd() *cobra.Command {
	var (
		in                   inputFlags
		labelsPath, valsPath string
		opName               string
		skipZero, norm       bool
	)
	cmd := &cobra.Command{
		Use:   "groupstat",
		Short: "Aggregate a value vector per label",
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := groupstat.ParseOp(opName)
			if err != nil {
				return err
			}
			opts, err := in.options(false)
			if err != nil {
				return err
			}
			labels, err := dataio.ReadLabelsFile(labelsPath, opts...)
			if err != nil {
				return err
			}
			values, err := dataio.ReadVectorFile(valsPath, opts...)
			if err != nil {
				return err
			}
			stats, keys, err := groupstat.Stat(labels, values, op, skipZero)
			if err != nil {
				return err
			}
			if norm {
				if stats, err = groupstat.MinMaxNorm(stats); err != nil {
					return err
				}
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "label,%s\n", op)
			for i, l := range keys {
				fmt.Fprintf(w, "%d,%g\n", l, stats[i])
			}

			return nil
		},
	}
	in.register(cmd.Flags())
	cmd.Flags().StringVar(&labelsPath, "labels", "", "CSV integer label vector")
	cmd.Flags().StringVar(&valsPath, "values", "", "CSV value vector, same length")
	cmd.Flags().StringVar(&opName, "op", "mean", "mean | std | median | count | sum | min | max")
	cmd.Flags().BoolVar(&skipZero, "skip-zero", false, "ignore label 0")
	cmd.Flags().BoolVar(&norm, "norm", false, "min-max normalize the per-label results")
	_ = cmd.MarkFlagRequired("labels")
	_ = cmd.MarkFlagRequired("values")

	return cmd
}
