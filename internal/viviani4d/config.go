package viviani4d

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type SurfaceCfg struct {
	Kind   string `json:"kind" yaml:"kind"`
	Radius Real   `json:"radius,omitempty" yaml:"radius,omitempty"`
	R1     Real   `json:"r1,omitempty" yaml:"r1,omitempty"`
	R2     Real   `json:"r2,omitempty" yaml:"r2,omitempty"`
}

// Rotation in degrees for config files (friendlier than radians).
type Rot4Deg struct {
	XY Real `json:"xy" yaml:"xy"`
	XZ Real `json:"xz" yaml:"xz"`
	XW Real `json:"xw" yaml:"xw"`
	YZ Real `json:"yz" yaml:"yz"`
	YW Real `json:"yw" yaml:"yw"`
	ZW Real `json:"zw" yaml:"zw"`
}

type ProjectionCfg struct {
	Kind   string      `json:"kind" yaml:"kind"`                       // orthogonal, perspective or stereographic
	Basis  *[3][4]Real `json:"basis,omitempty" yaml:"basis,omitempty"` // orthogonal only, defaults to dropping W
	Eye    Real        `json:"eye,omitempty" yaml:"eye,omitempty"`     // perspective only
	RotDeg Rot4Deg     `json:"rotDeg" yaml:"rotDeg"`
}

type RenderCfg struct {
	Width       int    `json:"width,omitempty" yaml:"width,omitempty"`
	Height      int    `json:"height,omitempty" yaml:"height,omitempty"`
	DPI         int    `json:"dpi,omitempty" yaml:"dpi,omitempty"`
	Cmap        string `json:"cmap,omitempty" yaml:"cmap,omitempty"`
	Alpha       Real   `json:"alpha,omitempty" yaml:"alpha,omitempty"`
	LineWidth   Real   `json:"lineWidth,omitempty" yaml:"lineWidth,omitempty"`
	SamplesU    int    `json:"samplesU,omitempty" yaml:"samplesU,omitempty"`
	SamplesV    int    `json:"samplesV,omitempty" yaml:"samplesV,omitempty"`
	Supersample int    `json:"supersample,omitempty" yaml:"supersample,omitempty"`
	AzimDeg     *Real  `json:"azimDeg,omitempty" yaml:"azimDeg,omitempty"`
	ElevDeg     *Real  `json:"elevDeg,omitempty" yaml:"elevDeg,omitempty"`
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
}

type AnimCfg struct {
	Plane  string `json:"plane,omitempty" yaml:"plane,omitempty"`
	Frames int    `json:"frames,omitempty" yaml:"frames,omitempty"`
	Delay  int    `json:"delay,omitempty" yaml:"delay,omitempty"`
}

// OutputCfg holds output paths; empty paths are skipped. With several surfaces
// each path gets a _<index> suffix before the extension.
type OutputCfg struct {
	PNG    string `json:"png,omitempty" yaml:"png,omitempty"`
	GIF    string `json:"gif,omitempty" yaml:"gif,omitempty"`
	PNGSeq string `json:"pngSeq,omitempty" yaml:"pngSeq,omitempty"`
	OBJ    string `json:"obj,omitempty" yaml:"obj,omitempty"`
	Raw    string `json:"raw,omitempty" yaml:"raw,omitempty"`
	NURBS  string `json:"nurbs,omitempty" yaml:"nurbs,omitempty"`
}

type ValidateCfg struct {
	Samples int  `json:"samples,omitempty" yaml:"samples,omitempty"`
	Tol     Real `json:"tol,omitempty" yaml:"tol,omitempty"`
}

type Config struct {
	Surfaces   []SurfaceCfg  `json:"surfaces,omitempty" yaml:"surfaces,omitempty"`
	Families   []FamilyCfg   `json:"families,omitempty" yaml:"families,omitempty"`
	Projection ProjectionCfg `json:"projection" yaml:"projection"`
	Render     RenderCfg     `json:"render" yaml:"render"`
	Animation  AnimCfg       `json:"animation" yaml:"animation"`
	Output     OutputCfg     `json:"output" yaml:"output"`
	Validate   ValidateCfg   `json:"validate" yaml:"validate"`
}

func (r Rot4Deg) Radians() Rot4 {
	const k = math.Pi / 180
	return Rot4{
		XY: r.XY * k, XZ: r.XZ * k, XW: r.XW * k,
		YZ: r.YZ * k, YW: r.YW * k, ZW: r.ZW * k,
	}
}

// Build constructs the (unbuilt) hypersurface.
func (sc SurfaceCfg) Build() (*Hypersurface4, error) {
	r1, r2 := sc.R1, sc.R2
	if sc.Kind == KindClifford {
		if r1 == 0 {
			r1 = 1
		}
		if r2 == 0 {
			r2 = r1
		}
	}
	return NewHypersurface(sc.Kind, sc.Radius, r1, r2)
}

// Factory returns a projector factory for h; stereographic projection uses the
// radius of the 3-sphere h lies on.
func (pc ProjectionCfg) Factory(h *Hypersurface4) (ProjectorFactory, error) {
	switch pc.Kind {
	case "", "orthogonal":
		var basis *Mat34
		if pc.Basis != nil {
			basis = &Mat34{M: *pc.Basis}
			// fail early on a degenerate basis
			if _, err := basis.Orthonormalize(); err != nil {
				return nil, err
			}
		}
		return func(rot Rot4) (Projector, error) { return NewOrthogonal(basis, rot) }, nil
	case "perspective":
		eye := pc.Eye
		if eye == 0 {
			eye = PerspectiveEye * h.SphereRadius() / Radius
		}
		if eye <= h.SphereRadius() {
			return nil, fmt.Errorf("perspective eye %g must lie outside the 3-sphere of radius %g", eye, h.SphereRadius())
		}
		return func(rot Rot4) (Projector, error) { return NewPerspective(eye, rot) }, nil
	case "stereographic":
		r := h.SphereRadius()
		return func(rot Rot4) (Projector, error) { return NewStereographic(r, rot) }, nil
	}
	return nil, fmt.Errorf("unknown projection kind %q", pc.Kind)
}

// Options converts the render section to RenderOptions.
func (rc RenderCfg) Options() RenderOptions {
	o := RenderOptions{
		Width:       rc.Width,
		Height:      rc.Height,
		Supersample: rc.Supersample,
		Cmap:        rc.Cmap,
		Alpha:       rc.Alpha,
		LineWidth:   rc.LineWidth,
		AzimDeg:     AzimDeg,
		ElevDeg:     ElevDeg,
		Title:       rc.Title,
	}
	if rc.AzimDeg != nil {
		o.AzimDeg = *rc.AzimDeg
	}
	if rc.ElevDeg != nil {
		o.ElevDeg = *rc.ElevDeg
	}
	return o
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// LoadConfig reads a JSON or YAML (by extension) config and applies defaults.
func LoadConfig(path string) (*Config, error) { return loadConfig(path) }

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if isYAML(path) {
		err = yaml.Unmarshal(data, &cfg)
	} else {
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	// Defaults / validation
	if len(cfg.Surfaces) == 0 && len(cfg.Families) == 0 {
		cfg.Surfaces = []SurfaceCfg{{Kind: KindViviani, Radius: Radius}}
	}
	rc := &cfg.Render
	if rc.DPI <= 0 {
		rc.DPI = DPI
	}
	if rc.Width <= 0 {
		rc.Width = 10 * rc.DPI
	}
	if rc.Height <= 0 {
		rc.Height = 8 * rc.DPI
	}
	if rc.SamplesU <= 0 {
		rc.SamplesU = SamplesU
	}
	if rc.SamplesV <= 0 {
		rc.SamplesV = SamplesV
	}
	if rc.SamplesU < MinSampleCount || rc.SamplesV < MinSampleCount {
		return nil, fmt.Errorf("render samples must be >= %d, got %dx%d", MinSampleCount, rc.SamplesU, rc.SamplesV)
	}
	if rc.Supersample <= 0 {
		rc.Supersample = Supersample
	}
	if rc.Cmap == "" {
		rc.Cmap = Cmap
	}
	if _, err := GetColormap(rc.Cmap); err != nil {
		return nil, err
	}
	if rc.Alpha <= 0 || rc.Alpha > 1 {
		rc.Alpha = Alpha
	}
	if rc.LineWidth == 0 {
		rc.LineWidth = LineWidth
	}
	if rc.Title == "" {
		rc.Title = Title
	}
	ac := &cfg.Animation
	if ac.Plane == "" {
		ac.Plane = AnimPlane
	}
	if _, ok := (Rot4{}).WithPlane(ac.Plane, 0); !ok {
		return nil, fmt.Errorf("unknown animation plane %q, known: %v", ac.Plane, Planes)
	}
	if ac.Frames <= 0 {
		ac.Frames = Frames
	}
	if ac.Delay <= 0 {
		ac.Delay = GIFDelay
	}
	if cfg.Validate.Samples <= 0 {
		cfg.Validate.Samples = NumericSamples
	}
	if cfg.Validate.Tol <= 0 {
		cfg.Validate.Tol = NumericTol
	}
	oc := &cfg.Output
	if *oc == (OutputCfg{}) {
		oc.PNG = filepath.Join(OutDir, "viviani4d.png")
	}
	DebugLog("Loaded config from %s: surfaces=%d, families=%d, projection=%q, size=(%d, %d), samples=(%d, %d)",
		path, len(cfg.Surfaces), len(cfg.Families), cfg.Projection.Kind, rc.Width, rc.Height, rc.SamplesU, rc.SamplesV)
	return &cfg, nil
}
