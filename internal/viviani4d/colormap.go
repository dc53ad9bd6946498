package viviani4d

import (
	"fmt"
	"image/color"
	"sort"
)

type cmapStop struct {
	t       Real
	r, g, b Real
}

// Colormap maps t ∈ [0, 1] to a color by piecewise linear interpolation.
type Colormap struct {
	Name  string
	stops []cmapStop
}

var colormaps = map[string][]cmapStop{
	"viridis": {
		{0.000, 0.267, 0.005, 0.329},
		{0.125, 0.283, 0.141, 0.458},
		{0.250, 0.254, 0.265, 0.530},
		{0.375, 0.207, 0.372, 0.553},
		{0.500, 0.164, 0.471, 0.558},
		{0.625, 0.128, 0.567, 0.551},
		{0.750, 0.135, 0.659, 0.518},
		{0.875, 0.478, 0.821, 0.318},
		{1.000, 0.993, 0.906, 0.144},
	},
	"plasma": {
		{0.00, 0.050, 0.030, 0.528},
		{0.25, 0.494, 0.012, 0.658},
		{0.50, 0.798, 0.280, 0.470},
		{0.75, 0.973, 0.585, 0.252},
		{1.00, 0.940, 0.975, 0.131},
	},
	"coolwarm": {
		{0.0, 0.230, 0.299, 0.754},
		{0.5, 0.865, 0.865, 0.865},
		{1.0, 0.706, 0.016, 0.150},
	},
	"gray": {
		{0, 0, 0, 0},
		{1, 1, 1, 1},
	},
}

// ColormapNames lists the available colormaps.
func ColormapNames() []string {
	names := make([]string, 0, len(colormaps))
	for k := range colormaps {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// GetColormap looks a colormap up by name; "" selects the default.
func GetColormap(name string) (*Colormap, error) {
	if name == "" {
		name = Cmap
	}
	stops, ok := colormaps[name]
	if !ok {
		return nil, fmt.Errorf("unknown colormap %q, known: %v", name, ColormapNames())
	}
	return &Colormap{Name: name, stops: stops}, nil
}

// RGB returns the float color at t, t clamped to [0, 1].
func (c *Colormap) RGB(t Real) (r, g, b Real) {
	t = clamp(t, 0, 1)
	s := c.stops
	i := sort.Search(len(s), func(k int) bool { return s[k].t >= t })
	if i == 0 {
		return s[0].r, s[0].g, s[0].b
	}
	if i >= len(s) {
		i = len(s) - 1
	}
	a, z := s[i-1], s[i]
	f := (t - a.t) / (z.t - a.t)
	return a.r + (z.r-a.r)*f, a.g + (z.g-a.g)*f, a.b + (z.b-a.b)*f
}

// At returns the 8-bit color at t.
func (c *Colormap) At(t Real) color.NRGBA {
	r, g, b := c.RGB(t)
	return color.NRGBA{to8(r), to8(g), to8(b), 0xFF}
}

func to8(x Real) uint8 { return uint8(clamp(x, 0, 1)*255 + 0.5) }
