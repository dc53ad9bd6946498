package viviani4d

import (
	"fmt"
	"image"
	"math"
	"runtime"
	"sync"
)

// ProjectorFactory builds a projector for a given 4D rotation.
type ProjectorFactory func(rot Rot4) (Projector, error)

// Animate renders frames of g turning a full revolution in the given 4D plane,
// starting from base. Framing and color range are shared by all frames.
func Animate(g *Grid, factory ProjectorFactory, base Rot4, plane string, frames int, opts RenderOptions) ([]*image.RGBA, error) {
	if frames <= 0 {
		return nil, fmt.Errorf("frames must be > 0, got %d", frames)
	}
	if _, ok := base.WithPlane(plane, 0); !ok {
		return nil, fmt.Errorf("unknown rotation plane %q, known: %v", plane, Planes)
	}
	meshes := make([]*Mesh3, frames)
	lo := Point3{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi := Point3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	vlo, vhi := math.Inf(1), math.Inf(-1)
	for f := 0; f < frames; f++ {
		rot, _ := base.WithPlane(plane, 2*math.Pi*Real(f)/Real(frames))
		proj, err := factory(rot)
		if err != nil {
			return nil, err
		}
		m := g.Project(proj)
		if len(m.Quads) == 0 {
			return nil, fmt.Errorf("frame %d: projection left no faces", f)
		}
		meshes[f] = m
		lo = Point3{math.Min(lo.X, m.Min.X), math.Min(lo.Y, m.Min.Y), math.Min(lo.Z, m.Min.Z)}
		hi = Point3{math.Max(hi.X, m.Max.X), math.Max(hi.Y, m.Max.Y), math.Max(hi.Z, m.Max.Z)}
		a, b := m.ValueRange()
		vlo, vhi = math.Min(vlo, a), math.Max(vhi, b)
	}
	opts.Bounds = &[2]Point3{lo, hi}
	opts.ValueRange = &[2]Real{vlo, vhi}

	out := make([]*image.RGBA, frames)
	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}
	if workers > frames {
		workers = frames
	}
	jobs := make(chan int)
	errCh := make(chan error, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			failed := false
			for f := range jobs {
				if failed {
					continue
				}
				img, err := RenderMesh(meshes[f], opts)
				if err != nil {
					// one error per worker keeps errCh from blocking
					errCh <- fmt.Errorf("frame %d: %w", f, err)
					failed = true
					continue
				}
				out[f] = img
			}
		}()
	}
	for f := 0; f < frames; f++ {
		jobs <- f
	}
	close(jobs)
	wg.Wait()
	close(errCh)
	if err := <-errCh; err != nil {
		return nil, err
	}
	DebugLog("Rendered %d frames rotating in %s with %d workers", frames, plane, workers)
	return out, nil
}
