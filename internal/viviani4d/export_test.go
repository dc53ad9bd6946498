package viviani4d

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveOBJ(t *testing.T) {
	_, g := vivianiGrid(t, 5, 4)
	o, _ := NewOrthogonal(nil, Rot4{})
	m := g.Project(o)
	path := filepath.Join(t.TempDir(), "mesh.obj")
	if err := SaveOBJ(m, path); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	counts := map[string]int{}
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if fields := strings.Fields(sc.Text()); len(fields) > 0 {
			counts[fields[0]]++
		}
	}
	if counts["v"] != 20 || counts["vn"] != 20 || counts["f"] != 2*len(m.Quads) {
		t.Fatalf("obj counts %v, quads %d", counts, len(m.Quads))
	}
	if err := SaveOBJ(&Mesh3{}, path); err == nil {
		t.Fatal("empty mesh exported")
	}
}

func TestRawSamplesRoundTrip(t *testing.T) {
	_, g := vivianiGrid(t, 6, 3)
	path := filepath.Join(t.TempDir(), "sub", "grid.raw")
	if err := g.SaveRawSamples(path); err != nil {
		t.Fatal(err)
	}
	st, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := int64(12 + 8*4*6*3); st.Size() != want { // 3*int32 header + N*4*float64
		t.Fatalf("file size %d, want %d", st.Size(), want)
	}
	back, err := LoadRawSamples(path)
	if err != nil {
		t.Fatal(err)
	}
	if back.Nu != 6 || back.Nv != 3 {
		t.Fatalf("header %dx%d", back.Nu, back.Nv)
	}
	for i := range g.P4 {
		if back.P4[i] != g.P4[i] {
			t.Fatalf("sample %d: %+v != %+v", i, back.P4[i], g.P4[i])
		}
	}

	bad := &Grid{Nu: 2, Nv: 2, P4: make([]Point4, 3)}
	if err := bad.SaveRawSamples(filepath.Join(t.TempDir(), "bad.raw")); err == nil {
		t.Fatal("sample count mismatch accepted")
	}
}

func TestNURBSJSONRoundTrip(t *testing.T) {
	for _, mk := range []func() (*Hypersurface4, error){
		func() (*Hypersurface4, error) { return NewViviani4D(1.5) },
		func() (*Hypersurface4, error) { return NewCliffordTorus(1, 0.5) },
	} {
		h, err := mk()
		h = mustBuild(t, h, err)
		path := filepath.Join(t.TempDir(), "surface.json")
		if err := SaveNURBSJSON(h, path); err != nil {
			t.Fatal(err)
		}
		back, err := LoadNURBSJSON(path)
		if err != nil {
			t.Fatal(err)
		}
		if back.Kind != h.Kind || back.Name != h.Name {
			t.Fatalf("loaded %s (%s), saved %s (%s)", back.Name, back.Kind, h.Name, h.Kind)
		}
		for i := range h.Exact.Ctrl {
			for j := range h.Exact.Ctrl[i] {
				for d, x := range h.Exact.Ctrl[i][j] {
					if back.Exact.Ctrl[i][j][d].Cmp(x) != 0 {
						t.Fatalf("exact control (%d,%d,%d) changed", i, j, d)
					}
				}
				if back.Exact.Weights[i][j].Cmp(h.Exact.Weights[i][j]) != 0 {
					t.Fatalf("exact weight (%d,%d) changed", i, j)
				}
			}
		}
		p, _ := h.Point(1.3, 2.7)
		q, err := back.Point(1.3, 2.7)
		if err != nil {
			t.Fatal(err)
		}
		if p != q {
			t.Fatalf("loaded surface differs: %+v != %+v", q, p)
		}
	}
}

func TestLoadNURBSJSONRejectsTampering(t *testing.T) {
	h, err := NewViviani4D(2)
	h = mustBuild(t, h, err)
	path := filepath.Join(t.TempDir(), "surface.json")
	if err := SaveNURBSJSON(h, path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	// the first exact weight is "1"; making it 2 breaks both the float check and the quadrics
	s := strings.Replace(string(data), `"exactWeights": [
    [
      "1",`, `"exactWeights": [
    [
      "2",`, 1)
	if s == string(data) {
		t.Fatal("test fixture did not change")
	}
	if err := os.WriteFile(path, []byte(s), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadNURBSJSON(path); err == nil {
		t.Fatal("tampered file accepted")
	}

	if err := os.WriteFile(path, []byte(`{"kind":"viviani","degreeU":4,"degreeV":2,"segmentsU":4,"segmentsV":4,"exactCtrl":[]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadNURBSJSON(path); err == nil {
		t.Fatal("empty net accepted")
	}
}
