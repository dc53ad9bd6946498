package viviani4d

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"math"
	"os"
)

// SavePNGSequence16 writes one 16-bit PNG per frame, named prefix_NNN.png with
// zero padding wide enough for the frame count.
func SavePNGSequence16(frames []*image.RGBA, prefix string) error {
	n := len(frames)
	if n == 0 {
		return errors.New("no frames to save")
	}
	width := 1
	if n > 1 {
		width = int(math.Log10(float64(n-1))) + 1
	}
	// Progress print step (~10%).
	step := imax(1, n/10)

	for k, img := range frames {
		if k%step == 0 {
			fmt.Printf("[PNG]  %.2f%%\n", float64(k+1)*100/float64(n))
		}
		wide := image.NewNRGBA64(img.Bounds())
		draw.Draw(wide, wide.Bounds(), img, img.Bounds().Min, draw.Src)

		full := fmt.Sprintf("%s_%0*d.png", prefix, width, k)
		f, err := os.Create(full)
		if err != nil {
			return err
		}
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		if err := enc.Encode(f, wide); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	return nil
}
