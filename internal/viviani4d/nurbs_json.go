package viviani4d

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"os"
)

// nurbsFile is the on-disk form of a built hypersurface. The exact net is the
// source of truth; the float net is written for consumers without rationals.
type nurbsFile struct {
	Name      string       `json:"name"`
	Kind      string       `json:"kind"`
	Radius    Real         `json:"radius,omitempty"`
	R1        Real         `json:"r1,omitempty"`
	R2        Real         `json:"r2,omitempty"`
	DegreeU   int          `json:"degreeU"`
	DegreeV   int          `json:"degreeV"`
	SegmentsU int          `json:"segmentsU"`
	SegmentsV int          `json:"segmentsV"`
	KnotsU    []Real       `json:"knotsU"`
	KnotsV    []Real       `json:"knotsV"`
	Ctrl      [][][]Real   `json:"ctrl"`
	Weights   [][]Real     `json:"weights"`
	ExactCtrl [][][]string `json:"exactCtrl"`
	ExactW    [][]string   `json:"exactWeights"`
}

// SaveNURBSJSON writes the control net, weights and knots of h.
func SaveNURBSJSON(h *Hypersurface4, path string) error {
	if !h.Built() {
		return errNotBuilt
	}
	ex := h.Exact
	nf := nurbsFile{
		Name: h.Name, Kind: h.Kind, Radius: h.Radius, R1: h.R1, R2: h.R2,
		DegreeU: ex.DegreeU, DegreeV: ex.DegreeV,
		SegmentsU: ex.SegmentsU, SegmentsV: ex.SegmentsV,
		KnotsU: h.Surface.KnotsU, KnotsV: h.Surface.KnotsV,
		Ctrl: h.Surface.Ctrl, Weights: h.Surface.Weights,
		ExactCtrl: make([][][]string, len(ex.Ctrl)),
		ExactW:    make([][]string, len(ex.Ctrl)),
	}
	for i := range ex.Ctrl {
		nf.ExactCtrl[i] = make([][]string, len(ex.Ctrl[i]))
		nf.ExactW[i] = make([]string, len(ex.Ctrl[i]))
		for j, p := range ex.Ctrl[i] {
			nf.ExactCtrl[i][j] = make([]string, len(p))
			for d, x := range p {
				nf.ExactCtrl[i][j][d] = x.RatString()
			}
			nf.ExactW[i][j] = ex.Weights[i][j].RatString()
		}
	}
	data, err := json.MarshalIndent(nf, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func parseRat(s string) (*big.Rat, error) {
	x, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("not a rational number: %q", s)
	}
	return x, nil
}

// LoadNURBSJSON reads a file written by SaveNURBSJSON, rebuilds the surface from
// the exact net and revalidates it (unless SkipExact).
func LoadNURBSJSON(path string) (*Hypersurface4, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var nf nurbsFile
	if err := json.Unmarshal(data, &nf); err != nil {
		return nil, err
	}
	nu := nf.SegmentsU*nf.DegreeU + 1
	nv := nf.SegmentsV*nf.DegreeV + 1
	if nf.DegreeU < 1 || nf.DegreeV < 1 || len(nf.ExactCtrl) != nu || len(nf.ExactW) != nu {
		return nil, fmt.Errorf("%s: exact net does not match degrees (%d,%d) and segments (%d,%d)",
			path, nf.DegreeU, nf.DegreeV, nf.SegmentsU, nf.SegmentsV)
	}
	ex := &ExactSurface{
		DegreeU: nf.DegreeU, DegreeV: nf.DegreeV,
		SegmentsU: nf.SegmentsU, SegmentsV: nf.SegmentsV,
		Ctrl:    make([][][]*big.Rat, nu),
		Weights: make([][]*big.Rat, nu),
	}
	for i := 0; i < nu; i++ {
		if len(nf.ExactCtrl[i]) != nv || len(nf.ExactW[i]) != nv {
			return nil, fmt.Errorf("%s: exact row %d has %d points, expected %d", path, i, len(nf.ExactCtrl[i]), nv)
		}
		ex.Ctrl[i] = make([][]*big.Rat, nv)
		ex.Weights[i] = make([]*big.Rat, nv)
		for j := 0; j < nv; j++ {
			if len(nf.ExactCtrl[i][j]) != 4 {
				return nil, fmt.Errorf("%s: control point (%d,%d) is not 4D", path, i, j)
			}
			ex.Ctrl[i][j] = make([]*big.Rat, 4)
			for d, s := range nf.ExactCtrl[i][j] {
				if ex.Ctrl[i][j][d], err = parseRat(s); err != nil {
					return nil, fmt.Errorf("%s: control point (%d,%d): %w", path, i, j, err)
				}
			}
			if ex.Weights[i][j], err = parseRat(nf.ExactW[i][j]); err != nil {
				return nil, fmt.Errorf("%s: weight (%d,%d): %w", path, i, j, err)
			}
		}
	}

	h, err := NewHypersurface(nf.Kind, nf.Radius, nf.R1, nf.R2)
	if err != nil {
		return nil, err
	}
	h.build = func() error {
		h.Exact = ex
		return nil
	}
	if _, err := h.Build(); err != nil {
		return nil, err
	}
	// the float net in the file must agree with the exact one
	for i := range nf.Ctrl {
		for j := range nf.Ctrl[i] {
			if i >= nu || j >= nv || len(nf.Ctrl[i][j]) != 4 {
				return nil, fmt.Errorf("%s: float net shape differs from exact net", path)
			}
			for d, x := range nf.Ctrl[i][j] {
				if math.Abs(x-h.Surface.Ctrl[i][j][d]) > 1e-9*math.Max(1, math.Abs(x)) {
					return nil, fmt.Errorf("%s: float control point (%d,%d) differs from exact value", path, i, j)
				}
			}
		}
	}
	if !SkipExact {
		rep, err := ValidateExact(h)
		if err != nil {
			return nil, err
		}
		if err := rep.Err(); err != nil {
			return nil, err
		}
	}
	DebugLog("Loaded %s from %s", h.Name, path)
	return h, nil
}
