package side

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"fmt"
	"os"

	"github.com/maseology/goHydro/grid"
	"github.com/maseology/mmio"
)

func writeFloats32(gd *grid.Definition, fp string, f []float64) error {
	f32 := func() []float32 {
		o := make([]float32, len(f))
		for i, v := range f {
			o[i] = float32(v)
		}
		return o
	}()
	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.LittleEndian, f32); err != nil {
		return fmt.Errorf("writeFloats32: %v", err)
	}
	if err := os.WriteFile(fp, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writeFloats32: %v", err)
	}
	return gd.ToHDRfloat(mmio.RemoveExtension(fp)+".hdr", 1, 32)
}

func writeInts(gd *grid.Definition, fp string, f []int32) error {
	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.LittleEndian, f); err != nil {
		return fmt.Errorf("writeInts: %v", err)
	}
	if err := os.WriteFile(fp, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writeInts: %v", err)
	}
	if err := gd.ToHDR(mmio.RemoveExtension(fp)+".hdr", 1, 32); err != nil {
		return fmt.Errorf("writeInts: %v", err)
	}
	return nil
}

// SaveTo writes the total, left and right rasters to
// <dirprfx>side.total.bil, <dirprfx>side.left.bil and
// <dirprfx>side.right.bil, with ESRI header sidecars.
func (a *Accumulation) SaveTo(gd *grid.Definition, dirprfx string) error {
	if err := writeFloats32(gd, dirprfx+"side.total.bil", a.Total); err != nil {
		return err
	}
	if err := writeFloats32(gd, dirprfx+"side.left.bil", a.Left); err != nil {
		return err
	}
	return writeFloats32(gd, dirprfx+"side.right.bil", a.Right)
}

// SaveGob Accumulation to gob
func (a *Accumulation) SaveGob(fp string) error {
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf(" Accumulation.Save %v", err)
	}
	if err := gob.NewEncoder(f).Encode(a); err != nil {
		return fmt.Errorf(" Accumulation.Save %v", err)
	}
	f.Close()
	return nil
}

// LoadGobAccumulation loads
func LoadGobAccumulation(fp string) (*Accumulation, error) {
	var a Accumulation
	f, err := os.Open(fp)
	if err != nil {
		return nil, err
	}
	enc := gob.NewDecoder(f)
	err = enc.Decode(&a)
	if err != nil {
		return nil, err
	}
	f.Close()
	return &a, nil
}
