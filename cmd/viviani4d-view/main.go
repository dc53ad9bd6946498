package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lukaszgryglicki/viviani4d/internal/viviani4d"
)

var keys = map[ebiten.Key]viviani4d.Key{
	ebiten.KeyArrowLeft:  viviani4d.KeyLeft,
	ebiten.KeyArrowRight: viviani4d.KeyRight,
	ebiten.KeyArrowUp:    viviani4d.KeyUp,
	ebiten.KeyArrowDown:  viviani4d.KeyDown,
	ebiten.KeyTab:        viviani4d.KeyTab,
	ebiten.KeyP:          viviani4d.KeyP,
	ebiten.KeySpace:      viviani4d.KeySpace,
}

type viewer struct {
	h     *viviani4d.Hypersurface4
	grid  *viviani4d.Grid
	orbit *viviani4d.Orbit
	opts  viviani4d.RenderOptions
	frame *ebiten.Image
	dirty bool
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	for ek, k := range keys {
		if inpututil.IsKeyJustPressed(ek) && v.orbit.Apply(k) {
			v.dirty = true
		}
	}
	if v.orbit.Tick() {
		v.dirty = true
	}
	if !v.dirty {
		return nil
	}
	v.dirty = false
	return v.render()
}

func (v *viewer) render() error {
	proj, err := v.orbit.Projector(v.h)
	if err != nil {
		return err
	}
	mesh := v.grid.Project(proj)
	if len(mesh.Quads) == 0 {
		return nil
	}
	img, err := viviani4d.RenderMesh(mesh, v.orbit.Options(v.opts))
	if err != nil {
		return err
	}
	if v.frame == nil {
		v.frame = ebiten.NewImage(img.Bounds().Dx(), img.Bounds().Dy())
	}
	v.frame.WritePixels(img.Pix)
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	if v.frame != nil {
		screen.DrawImage(v.frame, nil)
	}
	spin := "off"
	if v.orbit.Spin {
		spin = "on"
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("plane %s  projection %s  spin %s  [arrows tab p space]",
		v.orbit.PlaneName(), v.orbit.ProjectionName(), spin), 8, v.opts.Height-20)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.opts.Width, v.opts.Height
}

func run(cfgPath string) error {
	cfg, err := viviani4d.LoadConfig(cfgPath)
	if err != nil {
		return err
	}
	surfaces, err := viviani4d.BuildSurfaces(cfg)
	if err != nil {
		return err
	}
	if len(surfaces) == 0 {
		return errors.New("config has no surfaces")
	}
	h := surfaces[0]
	// the window re-renders on every change, so sample and supersample less than for files
	grid, err := viviani4d.SampleGrid(h.Surface, max(cfg.Render.SamplesU/2, viviani4d.MinSampleCount), max(cfg.Render.SamplesV/2, viviani4d.MinSampleCount))
	if err != nil {
		return err
	}
	opts := cfg.Render.Options()
	opts.Supersample = 1
	opts.Title = h.Name
	v := &viewer{h: h, grid: grid, orbit: viviani4d.NewOrbit(), opts: opts, dirty: true}
	v.orbit.Azim, v.orbit.Elev = opts.AzimDeg, opts.ElevDeg
	v.orbit.Rot = cfg.Projection.RotDeg.Radians()

	ebiten.SetWindowTitle("viviani4d: " + h.Name)
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetTPS(30)
	return ebiten.RunGame(v)
}

func main() {
	viviani4d.Debug = os.Getenv("DEBUG") != ""
	viviani4d.SkipExact = os.Getenv("SKIP_EXACT") != ""

	cfg := "scenes/config.json"
	if len(os.Args) > 1 {
		cfg = os.Args[1]
	}
	if err := run(cfg); err != nil && !errors.Is(err, ebiten.Termination) {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
