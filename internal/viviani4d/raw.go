package viviani4d

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
)

// SaveRawSamples dumps the 4D samples: int32 LE header Nu, Nv, 4 then Nu*Nv*4 float64 LE values.
func (g *Grid) SaveRawSamples(path string) error {
	if exp := g.Nu * g.Nv; len(g.P4) != exp {
		return fmt.Errorf("sample count mismatch: got %d, expected %d (Nu*Nv)", len(g.P4), exp)
	}

	// Make sure parent directory exists.
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, v := range []int32{int32(g.Nu), int32(g.Nv), 4} {
		if err := binary.Write(w, binary.LittleEndian, v); err != nil {
			return err
		}
	}
	// Point4 is four float64 fields, so the slice encodes as one flat block
	if err := binary.Write(w, binary.LittleEndian, g.P4); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return f.Close()
}

// LoadRawSamples reads a file written by SaveRawSamples.
func LoadRawSamples(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r := bufio.NewReader(f)
	var hdr [3]int32
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, err
	}
	if hdr[0] <= 0 || hdr[1] <= 0 || hdr[2] != 4 {
		return nil, fmt.Errorf("bad raw header %v", hdr)
	}
	g := &Grid{Nu: int(hdr[0]), Nv: int(hdr[1]), P4: make([]Point4, int(hdr[0])*int(hdr[1]))}
	if err := binary.Read(r, binary.LittleEndian, g.P4); err != nil {
		return nil, err
	}
	return g, nil
}
