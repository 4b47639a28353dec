// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/eigengame/matrix"
	"github.com/katalvlaran/eigengame/regress"
)

func regressCmd() *cobra.Command {
	var (
		in                  inputFlags
		ivPath, dvPath, cov string
	)
	cmd := &cobra.Command{
		Use:   "regress",
		Short: "Regress every DV column on every IV column (with optional covariates)",
		RunE: func(cmd *cobra.Command, args []string) error {
			iv, err := loadGonum(&in, ivPath)
			if err != nil {
				return err
			}
			dv, err := loadGonum(&in, dvPath)
			if err != nil {
				return err
			}
			var cv *mat.Dense
			if cov != "" {
				if cv, err = loadGonum(&in, cov); err != nil {
					return err
				}
			}
			rep, err := regress.LinReg(iv, dv, cv, regress.WithLogger(log.Logger))
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "iv,dv,beta,t,p,r2")
			r, c := rep.Beta.Dims()
			for a := 0; a < r; a++ {
				for j := 0; j < c; j++ {
					fmt.Fprintf(w, "%d,%d,%.6g,%.6g,%.6g,%.6g\n", a, j,
						rep.Beta.At(a, j), rep.T.At(a, j), rep.P.At(a, j), rep.R2.At(a, j))
				}
			}

			return nil
		},
	}
	in.register(cmd.Flags())
	cmd.Flags().StringVar(&ivPath, "iv", "", "CSV independent variables, samples × a")
	cmd.Flags().StringVar(&dvPath, "dv", "", "CSV dependent variables, samples × b")
	cmd.Flags().StringVar(&cov, "cov", "", "CSV covariates, samples × c")
	_ = cmd.MarkFlagRequired("iv")
	_ = cmd.MarkFlagRequired("dv")

	return cmd
}

func loadGonum(in *inputFlags, path string) (*mat.Dense, error) {
	D, err := in.load(path, false)
	if err != nil {
		return nil, err
	}

	return matrix.ToGonum(D)
}
