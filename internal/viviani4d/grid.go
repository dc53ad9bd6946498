package viviani4d

import (
	"fmt"
	"math"
	"runtime"
	"sync"
)

// Grid holds surface samples on a regular (u, v) lattice, row-major in u.
type Grid struct {
	Nu, Nv int
	U, V   []Real
	P4     []Point4
}

func (g *Grid) idx(i, j int) int { return i*g.Nv + j }

// At returns the sample (i, j).
func (g *Grid) At(i, j int) Point4 { return g.P4[g.idx(i, j)] }

// SampleGrid evaluates a 4D surface on nu×nv parameters spread over its domain.
// Rows are split across runtime.NumCPU workers.
func SampleGrid(s *NURBSSurface, nu, nv int) (*Grid, error) {
	if nu < MinSampleCount || nv < MinSampleCount {
		return nil, fmt.Errorf("grid needs at least %dx%d samples, got %dx%d", MinSampleCount, MinSampleCount, nu, nv)
	}
	if _, _, dim := s.ControlNetShape(); dim != 4 {
		return nil, fmt.Errorf("grid sampling needs a 4D surface, got dimension %d", dim)
	}
	u0, u1, v0, v1 := s.Domain()
	g := &Grid{
		Nu: nu, Nv: nv,
		U:  linspace(u0, u1, nu),
		V:  linspace(v0, v1, nv),
		P4: make([]Point4, nu*nv),
	}

	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}
	if workers > nu {
		workers = nu
	}
	per, rem := nu/workers, nu%workers
	var wg sync.WaitGroup
	errCh := make(chan error, workers)
	row := 0
	for w := 0; w < workers; w++ {
		n := per
		if w < rem {
			n++
		}
		if n == 0 {
			continue
		}
		wg.Add(1)
		go func(from, to int) {
			defer wg.Done()
			for i := from; i < to; i++ {
				for j := 0; j < nv; j++ {
					p, err := s.Evaluate(g.U[i], g.V[j])
					if err != nil {
						errCh <- fmt.Errorf("sample (%d,%d): %w", i, j, err)
						return
					}
					g.P4[g.idx(i, j)] = point4Of(p)
				}
			}
		}(row, row+n)
		row += n
	}
	wg.Wait()
	close(errCh)
	if err := <-errCh; err != nil {
		return nil, err
	}
	DebugLog("Sampled grid %dx%d with %d workers", nu, nv, workers)
	return g, nil
}

// Rotate returns a copy of the grid rotated about the origin.
func (g *Grid) Rotate(R Mat4) *Grid {
	out := &Grid{Nu: g.Nu, Nv: g.Nv, U: g.U, V: g.V, P4: make([]Point4, len(g.P4))}
	for i, p := range g.P4 {
		out.P4[i] = R.MulPoint(p)
	}
	return out
}

// Mesh3 is a projected grid ready to be rendered or exported.
type Mesh3 struct {
	Nu, Nv   int
	Verts    []Point3
	Normals  []Vector3
	Value    []Real // scalar used for coloring, projected Z by default
	Valid    []bool // false where the projection is undefined
	Quads    [][4]int
	Min, Max Point3
}

// Project maps every sample through proj and builds quads between valid neighbours.
func (g *Grid) Project(proj Projector) *Mesh3 {
	m := &Mesh3{
		Nu: g.Nu, Nv: g.Nv,
		Verts:   make([]Point3, len(g.P4)),
		Normals: make([]Vector3, len(g.P4)),
		Value:   make([]Real, len(g.P4)),
		Valid:   make([]bool, len(g.P4)),
		Min:     Point3{math.Inf(1), math.Inf(1), math.Inf(1)},
		Max:     Point3{math.Inf(-1), math.Inf(-1), math.Inf(-1)},
	}
	for i, p := range g.P4 {
		q, ok := proj.Project(p)
		if !ok || !isFinite(q.X) || !isFinite(q.Y) || !isFinite(q.Z) {
			DebugLogOnce("%s: dropping sample %d at %+v", proj.Name(), i, p)
			continue
		}
		m.Verts[i], m.Valid[i], m.Value[i] = q, true, q.Z
		m.Min = Point3{math.Min(m.Min.X, q.X), math.Min(m.Min.Y, q.Y), math.Min(m.Min.Z, q.Z)}
		m.Max = Point3{math.Max(m.Max.X, q.X), math.Max(m.Max.Y, q.Y), math.Max(m.Max.Z, q.Z)}
	}
	for i := 0; i+1 < g.Nu; i++ {
		for j := 0; j+1 < g.Nv; j++ {
			q := [4]int{g.idx(i, j), g.idx(i+1, j), g.idx(i+1, j+1), g.idx(i, j+1)}
			if m.Valid[q[0]] && m.Valid[q[1]] && m.Valid[q[2]] && m.Valid[q[3]] {
				m.Quads = append(m.Quads, q)
			}
		}
	}
	m.computeNormals()
	return m
}

// computeNormals uses central differences on the vertex lattice.
func (m *Mesh3) computeNormals() {
	at := func(i, j int) (Point3, bool) {
		if i < 0 {
			i = 0
		}
		if i >= m.Nu {
			i = m.Nu - 1
		}
		if j < 0 {
			j = 0
		}
		if j >= m.Nv {
			j = m.Nv - 1
		}
		k := i*m.Nv + j
		return m.Verts[k], m.Valid[k]
	}
	for i := 0; i < m.Nu; i++ {
		for j := 0; j < m.Nv; j++ {
			a, ok1 := at(i+1, j)
			b, ok2 := at(i-1, j)
			c, ok3 := at(i, j+1)
			d, ok4 := at(i, j-1)
			if !(ok1 && ok2 && ok3 && ok4) {
				continue
			}
			m.Normals[i*m.Nv+j] = a.Sub(b).Cross(c.Sub(d)).Norm()
		}
	}
}

// Bounds returns the axis-aligned extent of the valid vertices.
func (m *Mesh3) Bounds() (Point3, Point3) { return m.Min, m.Max }

// ValueRange returns the min and max scalar over valid vertices.
func (m *Mesh3) ValueRange() (lo, hi Real) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for i, v := range m.Value {
		if !m.Valid[i] {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo > hi {
		return 0, 1
	}
	return
}
