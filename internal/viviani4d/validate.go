package viviani4d

import (
	"fmt"
	"math"
	"strings"
)

// ValidationReport collects the outcome of exact and numeric checks.
type ValidationReport struct {
	Surface        string
	PatchesChecked int
	Exact          bool // exact checks ran
	Samples        int  // numeric samples per direction, 0 if not run
	Tol            Real
	MaxResidual    map[string]Real
	Failures       []string
}

// OK reports whether no check failed.
func (r *ValidationReport) OK() bool { return len(r.Failures) == 0 }

func (r *ValidationReport) fail(format string, args ...interface{}) {
	r.Failures = append(r.Failures, fmt.Sprintf(format, args...))
}

// Err returns nil for a passing report, otherwise an error listing the failures.
func (r *ValidationReport) Err() error {
	if r.OK() {
		return nil
	}
	return fmt.Errorf("%s: validation failed: %s", r.Surface, strings.Join(r.Failures, "; "))
}

// ValidateExact proves over the rationals that every Bézier patch of h lies on
// every constraint quadric. It also checks positive weights and joint continuity
// of the control net.
func ValidateExact(h *Hypersurface4) (*ValidationReport, error) {
	if !h.Built() {
		return nil, errNotBuilt
	}
	r := &ValidationReport{Surface: h.Name, Exact: true, MaxResidual: map[string]Real{}}
	ex := h.Exact
	if ex.Dim() != 4 {
		return nil, fmt.Errorf("%s: exact net has dimension %d, expected 4", h.Name, ex.Dim())
	}
	for i := range ex.Weights {
		for j, w := range ex.Weights[i] {
			if w.Sign() <= 0 {
				r.fail("weight (%d,%d) is not positive: %s", i, j, w.RatString())
			}
		}
	}
	for k := 0; k < ex.SegmentsU; k++ {
		for l := 0; l < ex.SegmentsV; l++ {
			hom, err := ex.PatchPolys(k, l)
			if err != nil {
				return nil, err
			}
			r.PatchesChecked++
			for _, q := range h.Constraints {
				if !q.Homogenize(hom).IsZero() {
					r.fail("patch (%d,%d) is not on %s", k, l, q.Name)
				}
			}
		}
	}
	DebugLog("Exact validation of %s: %d patches, %d failures", h.Name, r.PatchesChecked, len(r.Failures))
	return r, nil
}

// ValidateNumeric samples n×n points over the parameter domain and records the
// largest absolute residual of every constraint. Residuals above tol are failures.
func ValidateNumeric(h *Hypersurface4, n int, tol Real) (*ValidationReport, error) {
	if !h.Built() {
		return nil, errNotBuilt
	}
	if n < MinSampleCount {
		return nil, fmt.Errorf("need at least %d samples, got %d", MinSampleCount, n)
	}
	g, err := SampleGrid(h.Surface, n, n)
	if err != nil {
		return nil, err
	}
	r := &ValidationReport{Surface: h.Name, Samples: n, Tol: tol, MaxResidual: map[string]Real{}}
	for _, q := range h.Constraints {
		worst := 0.0
		for _, p := range g.P4 {
			if res := math.Abs(q.Residual(p)); res > worst || math.IsNaN(res) {
				worst = res
			}
		}
		r.MaxResidual[q.Name] = worst
		if !(worst <= tol) {
			r.fail("%s residual %.3g exceeds %.3g", q.Name, worst, tol)
		}
	}
	return r, nil
}

// Validate runs the exact checks (unless SkipExact) and the numeric sampling.
func Validate(h *Hypersurface4, n int, tol Real) (*ValidationReport, error) {
	num, err := ValidateNumeric(h, n, tol)
	if err != nil {
		return nil, err
	}
	if SkipExact {
		return num, nil
	}
	ex, err := ValidateExact(h)
	if err != nil {
		return nil, err
	}
	ex.Samples, ex.Tol, ex.MaxResidual = num.Samples, num.Tol, num.MaxResidual
	ex.Failures = append(ex.Failures, num.Failures...)
	return ex, nil
}
