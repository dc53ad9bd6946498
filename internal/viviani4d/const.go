package viviani4d

// Defaults applied by loadConfig when a field is missing or invalid.
const (
	Radius          = 2.0 // sphere radius R, cylinder radius is R/2
	SamplesU        = 96
	SamplesV        = 48
	ImgWidth        = 800 // 10in at 80 dpi
	ImgHeight       = 640 // 8in at 80 dpi
	DPI             = 80
	Supersample     = 2
	Alpha           = 0.8
	LineWidth       = 0.5
	AzimDeg         = -60
	ElevDeg         = 30
	Cmap            = "viridis"
	Title           = "4D Viviani Hypersurface Projected to 3D"
	Frames          = 72
	GIFDelay        = 5 // 100ths of a second per frame
	AnimPlane       = "xw"
	PerspectiveEye  = 6.0
	NumericSamples  = 64
	NumericTol      = 1e-9
	FamilyCount     = 5
	OutDir          = "out"
	MinSampleCount  = 2
	// hot-loop constants
	epsDenom = 1e-14
)
