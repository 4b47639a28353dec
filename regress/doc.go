// SPDX-License-Identifier: MIT

// Package regress runs mass-univariate multiple regression: for every column
// x of IV and every column y of DV it fits
//
//	y ~ 1 + x [+ covariates]
//
// by ordinary least squares and reports the coefficient of x with its
// t statistic and two-sided p-value (Student t, n − p degrees of freedom),
// the model R², the residuals and, without covariates, the Pearson
// correlation of x and y.
//
// Typical use correlates EigenGame component scores with behavioural or
// clinical variables:
//
//	scores, _ := eigengame.Transform(D, res.Vectors)
//	rep, err := regress.LinReg(g, dv, nil)
//
// Every output is optional (WithOutputs); outputs that are switched off are
// left nil in the Report.
package regress
