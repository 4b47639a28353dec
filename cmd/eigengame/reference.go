// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/eigengame/dataio"
	"github.com/katalvlaran/eigengame/eigengame"
	"github.com/katalvlaran/eigengame/matrix"
)

func referenceCmd() *cobra.Command {
	var (
		in        inputFlags
		data, out string
		k         int
		centering bool
		useGonum  bool
	)
	cmd := &cobra.Command{
		Use:   "reference",
		Short: "Dense eigendecomposition of DᵀD for comparison",
		RunE: func(cmd *cobra.Command, args []string) error {
			D, err := in.load(data, false)
			if err != nil {
				return err
			}
			if centering {
				if D, _, err = matrix.CenterColumns(D); err != nil {
					return err
				}
			}
			if k < 1 || k > D.Cols() {
				return fmt.Errorf("-k %d outside [1,%d]: %w", k, D.Cols(), eigengame.ErrInvalidDimension)
			}

			var (
				vals []float64
				V    *matrix.Dense
			)
			if useGonum {
				M, merr := eigengame.SecondMoment(D)
				if merr != nil {
					return merr
				}
				if vals, V, err = matrix.GonumEigenSym(M); err != nil {
					return err
				}
				vals = vals[:k]
				if V, err = topRows(V, k); err != nil {
					return err
				}
			} else if vals, V, err = eigengame.Reference(D, k); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for t, lambda := range vals {
				fmt.Fprintf(w, "component %d: eigenvalue %.6g\n", t, lambda)
			}
			if out != "" {
				return dataio.WriteCSVFile(out, V)
			}

			return nil
		},
	}
	in.register(cmd.Flags())
	cmd.Flags().StringVar(&data, "data", "", "CSV data matrix, samples × features")
	cmd.Flags().StringVar(&out, "out", "", "write the k×d eigenvectors as CSV")
	cmd.Flags().IntVarP(&k, "k", "k", 1, "number of components")
	cmd.Flags().BoolVar(&centering, "centering", false, "subtract column means first")
	cmd.Flags().BoolVar(&useGonum, "gonum", false, "use gonum's LAPACK-backed solver instead of Jacobi")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}

func topRows(V *matrix.Dense, k int) (*matrix.Dense, error) {
	top, err := matrix.NewDense(k, V.Cols())
	if err != nil {
		return nil, err
	}
	for t := 0; t < k; t++ {
		if err = top.SetRow(t, V.RawRow(t)); err != nil {
			return nil, err
		}
	}

	return top, nil
}
