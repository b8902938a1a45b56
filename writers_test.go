package side

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/maseology/goHydro/grid"
	"github.com/stretchr/testify/assert"
)

func TestAccumulationGob(t *testing.T) {
	d := confluence()
	a := d.Evaluate(DefaultOptions())

	fp := filepath.Join(t.TempDir(), "side.acc.gob")
	assert.NoError(t, a.SaveGob(fp))
	got, err := LoadGobAccumulation(fp)
	assert.NoError(t, err)
	assert.Equal(t, a.Total, got.Total)
	assert.Equal(t, a.Left, got.Left)
	assert.Equal(t, a.Right, got.Right)

	_, err = LoadGobAccumulation(filepath.Join(t.TempDir(), "missing.gob"))
	assert.Error(t, err)
}

func TestAccumulationSaveTo(t *testing.T) {
	d := confluence()
	a := d.Evaluate(DefaultOptions())
	gd := grid.NewDefinition("confluence", d.Nrow, d.Ncol, d.Cw)

	dir := t.TempDir() + string(os.PathSeparator)
	assert.NoError(t, a.SaveTo(gd, dir))

	for _, nm := range []string{"total", "left", "right"} {
		b, err := os.ReadFile(dir + "side." + nm + ".bil")
		assert.NoError(t, err)
		f32 := make([]float32, d.Nrow*d.Ncol)
		assert.NoError(t, binary.Read(bytes.NewReader(b), binary.LittleEndian, f32))
		_, err = os.Stat(dir + "side." + nm + ".hdr")
		assert.NoError(t, err)
	}

	// spot check the junction total survives the float32 narrowing
	b, _ := os.ReadFile(dir + "side.total.bil")
	f32 := make([]float32, d.Nrow*d.Ncol)
	assert.NoError(t, binary.Read(bytes.NewReader(b), binary.LittleEndian, f32))
	assert.InDelta(t, 4., float64(f32[d.cellID(2, 2)]), 1e-6)
}
