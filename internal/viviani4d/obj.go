package viviani4d

import (
	"bufio"
	"errors"
	"fmt"
	"os"
)

// SaveOBJ writes the valid vertices, their normals and the quads (as triangle pairs).
func SaveOBJ(m *Mesh3, path string) error {
	if m == nil || len(m.Quads) == 0 {
		return errors.New("mesh has no faces to export")
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)

	// OBJ indices are 1-based and only count written vertices
	index := make([]int, len(m.Verts))
	next := 1
	fmt.Fprintf(w, "# viviani4d mesh %dx%d\n", m.Nu, m.Nv)
	for i, v := range m.Verts {
		if !m.Valid[i] {
			continue
		}
		index[i] = next
		next++
		fmt.Fprintf(w, "v %.9g %.9g %.9g\n", v.X, v.Y, v.Z)
	}
	for i, n := range m.Normals {
		if !m.Valid[i] {
			continue
		}
		fmt.Fprintf(w, "vn %.6g %.6g %.6g\n", n.X, n.Y, n.Z)
	}
	for _, q := range m.Quads {
		a, b, c, d := index[q[0]], index[q[1]], index[q[2]], index[q[3]]
		fmt.Fprintf(w, "f %d//%d %d//%d %d//%d\n", a, a, b, b, c, c)
		fmt.Fprintf(w, "f %d//%d %d//%d %d//%d\n", a, a, c, c, d, d)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return f.Close()
}
