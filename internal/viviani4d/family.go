package viviani4d

import "fmt"

// FamilyCfg describes Count surfaces with a parameter spaced linearly in [From, To].
// For viviani the parameter is the radius, for clifford it is r1 and r2 = Ratio·r1.
type FamilyCfg struct {
	Kind  string `json:"kind" yaml:"kind"`
	From  Real   `json:"from" yaml:"from"`
	To    Real   `json:"to" yaml:"to"`
	Count int    `json:"count,omitempty" yaml:"count,omitempty"`
	Ratio Real   `json:"ratio,omitempty" yaml:"ratio,omitempty"`
}

// GenerateFamily builds and exactly validates every member of the family.
func GenerateFamily(fc FamilyCfg) ([]*Hypersurface4, error) {
	n := fc.Count
	if n <= 0 {
		n = FamilyCount
	}
	ratio := fc.Ratio
	if ratio == 0 {
		ratio = 1
	}
	if !isFinite(fc.From) || !isFinite(fc.To) || fc.From <= 0 || fc.To <= 0 {
		return nil, fmt.Errorf("family range must be positive, got [%v, %v]", fc.From, fc.To)
	}
	if !isFinite(ratio) || ratio <= 0 {
		return nil, fmt.Errorf("family ratio must be > 0, got %v", ratio)
	}
	params := []Real{fc.From}
	if n > 1 {
		params = linspace(fc.From, fc.To, n)
	}
	out := make([]*Hypersurface4, 0, n)
	for i, t := range params {
		var (
			h   *Hypersurface4
			err error
		)
		switch fc.Kind {
		case "", KindViviani:
			h, err = NewViviani4D(t)
		case KindClifford:
			h, err = NewCliffordTorus(t, ratio*t)
		default:
			return nil, fmt.Errorf("family member %d: unknown surface kind %q", i, fc.Kind)
		}
		if err != nil {
			return nil, fmt.Errorf("family member %d (parameter %g): %w", i, t, err)
		}
		if _, err := h.Build(); err != nil {
			return nil, fmt.Errorf("family member %d: %w", i, err)
		}
		rep, err := ValidateExact(h)
		if err != nil {
			return nil, fmt.Errorf("family member %d: %w", i, err)
		}
		if err := rep.Err(); err != nil {
			return nil, fmt.Errorf("family member %d: %w", i, err)
		}
		out = append(out, h)
	}
	DebugLog("Generated %s family of %d members over [%g, %g]", fc.Kind, len(out), fc.From, fc.To)
	return out, nil
}
