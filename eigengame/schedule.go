// SPDX-License-Identifier: MIT

package eigengame

// schedule is the step-size state: constant, or multiplied by factor after
// every `every` completed epochs. The step never increases.
type schedule struct {
	step   float64
	every  int
	factor float64
}

// afterEpoch applies the decay owed after the 1-based epoch and reports
// whether the step changed.
func (s *schedule) afterEpoch(epoch int) bool {
	if s.every <= 0 || epoch%s.every != 0 || s.factor == 1 {
		return false
	}
	s.step *= s.factor

	return true
}
