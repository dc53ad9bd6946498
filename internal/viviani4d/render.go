package viviani4d

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"sort"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// RenderOptions controls RenderMesh. Zero values are replaced by the package defaults.
type RenderOptions struct {
	Width, Height    int
	Supersample      int
	Cmap             string
	Alpha            Real
	LineWidth        Real // pixels at the output resolution, < 0 disables edges
	AzimDeg, ElevDeg Real
	Title            string
	NoColorbar       bool
	NoAxes           bool
	// Fixed framing and color range, e.g. to keep animation frames consistent.
	Bounds     *[2]Point3
	ValueRange *[2]Real
}

// DefaultRenderOptions mirrors a 10x8in figure with a viridis surface at alpha 0.8.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Width:       ImgWidth,
		Height:      ImgHeight,
		Supersample: Supersample,
		Cmap:        Cmap,
		Alpha:       Alpha,
		LineWidth:   LineWidth,
		AzimDeg:     AzimDeg,
		ElevDeg:     ElevDeg,
		Title:       Title,
	}
}

func (o *RenderOptions) applyDefaults() {
	d := DefaultRenderOptions()
	if o.Width <= 0 {
		o.Width = d.Width
	}
	if o.Height <= 0 {
		o.Height = d.Height
	}
	if o.Supersample <= 0 {
		o.Supersample = d.Supersample
	}
	if o.Cmap == "" {
		o.Cmap = d.Cmap
	}
	if o.Alpha <= 0 || o.Alpha > 1 {
		o.Alpha = d.Alpha
	}
	if o.LineWidth == 0 {
		o.LineWidth = d.LineWidth
	}
}

type face struct {
	pts   [4]fixed.Point26_6
	depth Real
	col   color.NRGBA
}

// in view space: right, up, towards the viewer
var lightDir = Vector3{0.4, 0.3, 1}.Norm()

const edgeShade = 0.6

// RenderMesh draws the mesh with painter-ordered, Lambert-shaded quads colored by
// the mesh scalar, plus a colorbar, title and axis labels.
func RenderMesh(m *Mesh3, o RenderOptions) (*image.RGBA, error) {
	o.applyDefaults()
	if m == nil || len(m.Quads) == 0 {
		return nil, errors.New("mesh has no faces to render")
	}
	cmap, err := GetColormap(o.Cmap)
	if err != nil {
		return nil, err
	}
	ss := o.Supersample
	W, H := o.Width*ss, o.Height*ss
	canvas := image.NewRGBA(image.Rect(0, 0, W, H))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)

	plot := plotRect(W, H, !o.NoColorbar)
	lo, hi := m.Bounds()
	if o.Bounds != nil {
		lo, hi = o.Bounds[0], o.Bounds[1]
	}
	cam := NewCamera(o.AzimDeg, o.ElevDeg, lo, hi, plot)
	vlo, vhi := m.ValueRange()
	if o.ValueRange != nil {
		vlo, vhi = o.ValueRange[0], o.ValueRange[1]
	}
	vspan := vhi - vlo
	if vspan == 0 {
		vspan = 1
	}

	scanner := rasterx.NewScannerGV(W, H, canvas, canvas.Bounds())
	filler := rasterx.NewFiller(W, H, scanner)
	dasher := rasterx.NewDasher(W, H, scanner)

	if !o.NoAxes {
		drawBox(dasher, cam, lo, hi, Real(ss))
	}

	light := cam.ex.Mul(lightDir.X).Add(cam.ey.Mul(lightDir.Y)).Add(cam.ez.Mul(lightDir.Z))
	faces := make([]face, 0, len(m.Quads))
	for _, q := range m.Quads {
		var f face
		val := 0.0
		var n Vector3
		for k, vi := range q {
			x, y, d := cam.ToScreen(m.Verts[vi])
			f.pts[k] = rasterx.ToFixedP(x, y)
			f.depth += d / 4
			val += m.Value[vi] / 4
			n = n.Add(m.Normals[vi])
		}
		r, g, b := cmap.RGB((val - vlo) / vspan)
		// two-sided Lambert
		shade := 0.35 + 0.65*math.Abs(n.Norm().Dot(light))
		f.col = color.NRGBA{to8(r * shade), to8(g * shade), to8(b * shade), 0xFF}
		faces = append(faces, f)
	}
	sort.Slice(faces, func(i, j int) bool { return faces[i].depth < faces[j].depth })

	lw := o.LineWidth * Real(ss)
	if lw > 0 {
		dasher.SetStroke(fixed.Int26_6(lw*64), fixed.Int26_6(4*64), rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.Round, nil, 0)
	}
	for _, f := range faces {
		filler.Clear()
		filler.SetColor(rasterx.ApplyOpacity(f.col, o.Alpha))
		filler.Start(f.pts[0])
		for _, p := range f.pts[1:] {
			filler.Line(p)
		}
		filler.Stop(true)
		filler.Draw()
		if lw <= 0 {
			continue
		}
		ec := color.NRGBA{uint8(Real(f.col.R) * edgeShade), uint8(Real(f.col.G) * edgeShade), uint8(Real(f.col.B) * edgeShade), 0xFF}
		dasher.Clear()
		dasher.SetColor(rasterx.ApplyOpacity(ec, o.Alpha))
		dasher.Start(f.pts[0])
		for _, p := range f.pts[1:] {
			dasher.Line(p)
		}
		dasher.Stop(true)
		dasher.Draw()
	}

	img := canvas
	if ss > 1 {
		img = image.NewRGBA(image.Rect(0, 0, o.Width, o.Height))
		draw.CatmullRom.Scale(img, img.Bounds(), canvas, canvas.Bounds(), draw.Src, nil)
	}

	if !o.NoAxes {
		labelAxes(img, cam, lo, hi, Real(ss))
	}
	if !o.NoColorbar {
		drawColorbar(img, cmap, vlo, vhi)
	}
	if o.Title != "" {
		w := font.MeasureString(basicfont.Face7x13, o.Title).Ceil()
		drawText(img, o.Title, (o.Width-w)/2, 20, color.Black)
	}
	return img, nil
}

// plotRect leaves room for the title and, optionally, the colorbar.
func plotRect(W, H int, colorbar bool) image.Rectangle {
	right := W
	if colorbar {
		right = W * 85 / 100
	}
	return image.Rect(W/20, H/12, right-W/40, H-H/20)
}

// boxCorners lists the 8 corners of [lo, hi]; bit k of the index selects hi on axis k.
func boxCorners(lo, hi Point3) [8]Point3 {
	var c [8]Point3
	for i := range c {
		p := lo
		if i&1 != 0 {
			p.X = hi.X
		}
		if i&2 != 0 {
			p.Y = hi.Y
		}
		if i&4 != 0 {
			p.Z = hi.Z
		}
		c[i] = p
	}
	return c
}

func drawBox(d *rasterx.Dasher, cam *Camera, lo, hi Point3, ss Real) {
	c := boxCorners(lo, hi)
	d.SetStroke(fixed.Int26_6(0.75*ss*64), fixed.Int26_6(4*64), rasterx.ButtCap, rasterx.ButtCap, rasterx.RoundGap, rasterx.Round, nil, 0)
	d.SetColor(color.NRGBA{0xB0, 0xB0, 0xB0, 0xFF})
	for i := 0; i < 8; i++ {
		for _, bit := range []int{1, 2, 4} {
			j := i | bit
			if j == i {
				continue
			}
			x0, y0, _ := cam.ToScreen(c[i])
			x1, y1, _ := cam.ToScreen(c[j])
			d.Clear()
			d.Start(rasterx.ToFixedP(x0, y0))
			d.Line(rasterx.ToFixedP(x1, y1))
			d.Stop(false)
			d.Draw()
		}
	}
}

func labelAxes(img *image.RGBA, cam *Camera, lo, hi Point3, ss Real) {
	mid := Point3{(lo.X + hi.X) / 2, (lo.Y + hi.Y) / 2, (lo.Z + hi.Z) / 2}
	labels := []struct {
		s string
		p Point3
	}{
		{"X", Point3{hi.X, lo.Y, lo.Z}},
		{"Y", Point3{lo.X, hi.Y, lo.Z}},
		{"Z", Point3{lo.X, lo.Y, hi.Z}},
	}
	for _, l := range labels {
		// push the label slightly away from the box center
		p := l.p.Add(l.p.Sub(mid).Mul(0.08))
		x, y, _ := cam.ToScreen(p)
		drawText(img, l.s, int(x/ss), int(y/ss), color.Black)
	}
}

func drawColorbar(img *image.RGBA, cmap *Colormap, lo, hi Real) {
	b := img.Bounds()
	W, H := b.Dx(), b.Dy()
	x0, x1 := W*87/100, W*87/100+W/40
	y0, y1 := H/4, H*3/4 // half of the plot height
	for y := y0; y < y1; y++ {
		t := 1 - Real(y-y0)/Real(y1-y0-1)
		c := cmap.At(t)
		for x := x0; x < x1; x++ {
			img.Set(x, y, c)
		}
	}
	for k := 0; k <= 4; k++ {
		t := Real(k) / 4
		y := y1 - 1 - int(t*Real(y1-y0-1))
		for x := x1; x < x1+4; x++ {
			img.Set(x, y, color.Black)
		}
		drawText(img, fmt.Sprintf("%.2f", lo+(hi-lo)*t), x1+6, y+4, color.Black)
	}
}

func drawText(img *image.RGBA, s string, x, y int, c color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// SavePNG writes an 8-bit PNG.
func SavePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
