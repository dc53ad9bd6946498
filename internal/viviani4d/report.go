package viviani4d

import (
	"io"
	"math"
	"sort"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Summary is what Run reports for one surface.
type Summary struct {
	Surface    *Hypersurface4
	Validation *ValidationReport
	Projection string
	NetMin     Point3 // bounds of the projected control net
	NetMax     Point3
	Samples    int
	Outputs    []string
}

// summarize fills the projected control net bounds.
func summarize(h *Hypersurface4, proj Projector, rep *ValidationReport) (*Summary, error) {
	net, err := ProjectControlNet(h, proj)
	if err != nil {
		return nil, err
	}
	s := &Summary{Surface: h, Validation: rep, Projection: proj.Name()}
	s.NetMin = Point3{math.Inf(1), math.Inf(1), math.Inf(1)}
	s.NetMax = Point3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, row := range net {
		for _, q := range row {
			s.NetMin = Point3{math.Min(s.NetMin.X, q.X), math.Min(s.NetMin.Y, q.Y), math.Min(s.NetMin.Z, q.Z)}
			s.NetMax = Point3{math.Max(s.NetMax.X, q.X), math.Max(s.NetMax.Y, q.Y), math.Max(s.NetMax.Z, q.Z)}
		}
	}
	return s, nil
}

// WriteReport prints a human readable summary of each surface.
func WriteReport(w io.Writer, sums []*Summary) {
	p := message.NewPrinter(language.English)
	for i, s := range sums {
		h := s.Surface
		nu, nv, dim := h.Surface.ControlNetShape()
		ku, kv := len(h.Surface.KnotsU), len(h.Surface.KnotsV)
		p.Fprintf(w, "=== %s ===\n", h.Name)
		p.Fprintf(w, "Control points: %d x %d x %d\n", nu, nv, dim)
		p.Fprintf(w, "Weights:        %d x %d\n", nu, nv)
		p.Fprintf(w, "Knots:          u %d, v %d (degrees %d, %d)\n", ku, kv, h.Surface.DegreeU, h.Surface.DegreeV)
		p.Fprintf(w, "Projection:     %s\n", s.Projection)
		p.Fprintf(w, "  min [%.3f, %.3f, %.3f]\n", s.NetMin.X, s.NetMin.Y, s.NetMin.Z)
		p.Fprintf(w, "  max [%.3f, %.3f, %.3f]\n", s.NetMax.X, s.NetMax.Y, s.NetMax.Z)
		if r := s.Validation; r != nil {
			if r.Exact {
				p.Fprintf(w, "Exact check:    %d patches x %d quadrics\n", r.PatchesChecked, len(h.Constraints))
			}
			if r.Samples > 0 {
				p.Fprintf(w, "Numeric check:  %d samples, tol %g\n", r.Samples*r.Samples, r.Tol)
				names := make([]string, 0, len(r.MaxResidual))
				for name := range r.MaxResidual {
					names = append(names, name)
				}
				sort.Strings(names)
				for _, name := range names {
					p.Fprintf(w, "  %-12s max residual %.3e\n", name, r.MaxResidual[name])
				}
			}
			if r.OK() {
				p.Fprintf(w, "Validation:     OK\n")
			} else {
				p.Fprintf(w, "Validation:     %d failures\n", len(r.Failures))
				for _, f := range r.Failures {
					p.Fprintf(w, "  - %s\n", f)
				}
			}
		}
		if s.Samples > 0 {
			p.Fprintf(w, "Rendered from:  %d samples\n", s.Samples)
		}
		for _, o := range s.Outputs {
			p.Fprintf(w, "Wrote:          %s\n", o)
		}
		if i < len(sums)-1 {
			p.Fprintf(w, "\n")
		}
	}
}
