package epd

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/fogleman/gg"
	"github.com/peterldowns/testy/assert"
	"github.com/rs/zerolog"
)

func TestFileDisplayConfigValidate(t *testing.T) {
	logger := zerolog.Nop()

	err := (&FileDisplayConfig{Path: "frame.png", Logger: &logger}).Validate()
	assert.NoError(t, err)

	err = (&FileDisplayConfig{Logger: &logger}).Validate()
	assert.Error(t, err)

	err = (&FileDisplayConfig{Path: "frame.png"}).Validate()
	assert.Error(t, err)
}

func TestFileDisplayShowImage(t *testing.T) {
	logger := zerolog.Nop()
	path := filepath.Join(t.TempDir(), "frame.png")

	display, err := NewFileDisplay(&FileDisplayConfig{Path: path, Logger: &logger})
	assert.NoError(t, err)

	dc := gg.NewContext(32, 16)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	err = display.ShowImage(dc.Image())
	assert.NoError(t, err)

	file, err := os.Open(path)
	assert.NoError(t, err)
	defer file.Close()

	img, err := png.Decode(file)
	assert.NoError(t, err)
	assert.Equal(t, img.Bounds().Dx(), 32)
	assert.Equal(t, img.Bounds().Dy(), 16)
}
