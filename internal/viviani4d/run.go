package viviani4d

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// indexedPath inserts _<i> before the extension when there is more than one surface.
func indexedPath(path string, i, n int) string {
	if path == "" || n <= 1 {
		return path
	}
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s_%d%s", strings.TrimSuffix(path, ext), i, ext)
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

// BuildSurfaces builds the configured surfaces followed by all family members.
func BuildSurfaces(cfg *Config) ([]*Hypersurface4, error) {
	var out []*Hypersurface4
	for i, sc := range cfg.Surfaces {
		h, err := sc.Build()
		if err != nil {
			return nil, fmt.Errorf("surface %d: %w", i, err)
		}
		if _, err := h.Build(); err != nil {
			return nil, fmt.Errorf("surface %d: %w", i, err)
		}
		out = append(out, h)
	}
	for i, fc := range cfg.Families {
		members, err := GenerateFamily(fc)
		if err != nil {
			return nil, fmt.Errorf("family %d: %w", i, err)
		}
		out = append(out, members...)
	}
	return out, nil
}

// Run loads the config, builds and validates every surface, then writes the
// requested images and exports and prints a summary.
func Run(cfgPath string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	start := time.Now()
	surfaces, err := BuildSurfaces(cfg)
	if err != nil {
		return err
	}
	DebugLog("Built %d surfaces in %s", len(surfaces), time.Since(start))

	sums := make([]*Summary, 0, len(surfaces))
	for i, h := range surfaces {
		s, err := processSurface(cfg, h, i, len(surfaces))
		if err != nil {
			return fmt.Errorf("%s: %w", h.Name, err)
		}
		sums = append(sums, s)
	}
	WriteReport(os.Stdout, sums)
	DebugLog("Done in %s", time.Since(start))
	return nil
}

func processSurface(cfg *Config, h *Hypersurface4, i, n int) (*Summary, error) {
	start := time.Now()
	rep, err := Validate(h, cfg.Validate.Samples, cfg.Validate.Tol)
	if err != nil {
		return nil, err
	}
	if err := rep.Err(); err != nil {
		return nil, err
	}
	DebugLog("Validated %s in %s", h.Name, time.Since(start))

	factory, err := cfg.Projection.Factory(h)
	if err != nil {
		return nil, err
	}
	base := cfg.Projection.RotDeg.Radians()
	proj, err := factory(base)
	if err != nil {
		return nil, err
	}

	rc := cfg.Render
	grid, err := SampleGrid(h.Surface, rc.SamplesU, rc.SamplesV)
	if err != nil {
		return nil, err
	}
	mesh := grid.Project(proj)

	sum, err := summarize(h, proj, rep)
	if err != nil {
		// the control net may reach the projection's singular set even when the surface does not
		DebugLog("%s: control net bounds unavailable (%v), using sampled bounds", h.Name, err)
		sum = &Summary{Surface: h, Validation: rep, Projection: proj.Name()}
		sum.NetMin, sum.NetMax = mesh.Bounds()
	}
	sum.Samples = rc.SamplesU * rc.SamplesV

	opts := rc.Options()
	if n > 1 {
		opts.Title = fmt.Sprintf("%s (%s)", opts.Title, h.Name)
	}
	out := cfg.Output
	write := func(path string, save func(string) error) error {
		if path == "" {
			return nil
		}
		path = indexedPath(path, i, n)
		if err := ensureDir(path); err != nil {
			return err
		}
		if err := save(path); err != nil {
			return err
		}
		sum.Outputs = append(sum.Outputs, path)
		DebugLog("Saved %s", path)
		return nil
	}

	if out.PNG != "" {
		img, err := RenderMesh(mesh, opts)
		if err != nil {
			return nil, err
		}
		if err := write(out.PNG, func(p string) error { return SavePNG(img, p) }); err != nil {
			return nil, err
		}
	}

	seq := out.PNGSeq
	if seq == "" && PNG && out.GIF != "" {
		seq = strings.TrimSuffix(out.GIF, filepath.Ext(out.GIF))
	}
	if out.GIF != "" || seq != "" {
		ac := cfg.Animation
		frames, err := Animate(grid, factory, base, ac.Plane, ac.Frames, opts)
		if err != nil {
			return nil, err
		}
		if err := write(out.GIF, func(p string) error { return SaveAnimatedGIF(frames, p, ac.Delay) }); err != nil {
			return nil, err
		}
		if err := write(seq, func(p string) error { return SavePNGSequence16(frames, p) }); err != nil {
			return nil, err
		}
	}

	if err := write(out.OBJ, func(p string) error { return SaveOBJ(mesh, p) }); err != nil {
		return nil, err
	}
	if err := write(out.Raw, grid.SaveRawSamples); err != nil {
		return nil, err
	}
	if err := write(out.NURBS, func(p string) error { return SaveNURBSJSON(h, p) }); err != nil {
		return nil, err
	}
	return sum, nil
}
