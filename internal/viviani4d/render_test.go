package viviani4d

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func testMesh(t *testing.T) *Mesh3 {
	t.Helper()
	_, g := vivianiGrid(t, 17, 9)
	o, _ := NewOrthogonal(nil, Rot4{XW: 0.3})
	return g.Project(o)
}

func nonWhite(img *image.RGBA) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) != (color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}) {
				n++
			}
		}
	}
	return n
}

func TestRenderMesh(t *testing.T) {
	m := testMesh(t)
	for _, ss := range []int{1, 2} {
		img, err := RenderMesh(m, RenderOptions{Width: 200, Height: 160, Supersample: ss})
		if err != nil {
			t.Fatal(err)
		}
		if img.Bounds().Dx() != 200 || img.Bounds().Dy() != 160 {
			t.Fatalf("image %v", img.Bounds())
		}
		if n := nonWhite(img); n < 200*160/20 {
			t.Fatalf("supersample %d: only %d painted pixels", ss, n)
		}
	}
	if _, err := RenderMesh(&Mesh3{}, DefaultRenderOptions()); err == nil {
		t.Fatal("empty mesh rendered")
	}
	if _, err := RenderMesh(m, RenderOptions{Cmap: "jet"}); err == nil {
		t.Fatal("unknown colormap accepted")
	}
}

func TestRenderDefaults(t *testing.T) {
	o := RenderOptions{}
	o.applyDefaults()
	if o.Width != ImgWidth || o.Height != ImgHeight || o.Alpha != Alpha || o.LineWidth != LineWidth || o.Cmap != "viridis" {
		t.Fatalf("defaults %+v", o)
	}
	if d := DefaultRenderOptions(); d.Title != Title || d.AzimDeg != AzimDeg || d.ElevDeg != ElevDeg {
		t.Fatalf("default options %+v", d)
	}
}

func TestCamera(t *testing.T) {
	rect := image.Rect(0, 0, 100, 100)
	c := NewCamera(-60, 30, Point3{-1, -1, -1}, Point3{1, 1, 1}, rect)
	x, y, d := c.ToScreen(Point3{})
	if !near(x, 50, tol) || !near(y, 50, tol) || !near(d, 0, tol) {
		t.Fatalf("center maps to (%v, %v, %v)", x, y, d)
	}
	// every box corner fits in the rectangle
	for _, p := range boxCorners(Point3{-1, -1, -1}, Point3{1, 1, 1}) {
		x, y, _ := c.ToScreen(p)
		if x < 0 || x > 100 || y < 0 || y > 100 {
			t.Fatalf("corner %+v maps outside: (%v, %v)", p, x, y)
		}
	}
	v := c.ViewDir()
	if !near(v.Len(), 1, tol) {
		t.Fatalf("view direction not unit: %v", v.Len())
	}
	// points towards the viewer are in front
	_, _, d = c.ToScreen(Point3{}.Add(v))
	if d <= 0 {
		t.Fatalf("depth towards viewer %v", d)
	}
}

func TestColormaps(t *testing.T) {
	for _, name := range ColormapNames() {
		c, err := GetColormap(name)
		if err != nil {
			t.Fatal(err)
		}
		a, b := c.At(0), c.At(1)
		if a == b {
			t.Fatalf("%s: ends have the same color", name)
		}
		if c.At(-3) != a || c.At(7) != b {
			t.Fatalf("%s: values are not clamped", name)
		}
	}
	g, _ := GetColormap("gray")
	if mid := g.At(0.5); mid.R != 128 || mid.G != 128 {
		t.Fatalf("gray(0.5) = %+v", mid)
	}
	d, err := GetColormap("")
	if err != nil || d.Name != "viridis" {
		t.Fatalf("default colormap %v, %v", d, err)
	}
}

func TestSavePNG(t *testing.T) {
	img, err := RenderMesh(testMesh(t), RenderOptions{Width: 64, Height: 48, Supersample: 1, NoColorbar: true, NoAxes: true})
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "mesh.png")
	if err := SavePNG(img, path); err != nil {
		t.Fatal(err)
	}
	if st, err := os.Stat(path); err != nil || st.Size() == 0 {
		t.Fatalf("png not written: %v", err)
	}
}
