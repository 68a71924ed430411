package epd

import (
	"path/filepath"

	"github.com/fogleman/gg"
	"github.com/rs/zerolog"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	// boldFontFile is the bold face filename within the font directory.
	boldFontFile = "DejaVuSans-Bold.ttf"
	// regularFontFile is the regular face filename within the font directory.
	regularFontFile = "DejaVuSans.ttf"
)

// faceSet represents the loaded font faces of the dashboard, scaled from the
// frame height.
type faceSet struct {
	giant font.Face
	large font.Face
	med   font.Face
	small font.Face
	tiny  font.Face
	err   font.Face
}

// loadFace loads a truetype face, falling back to the built-in bitmap face
// when the font file is unavailable. A missing font never fails a render.
func loadFace(path string, points float64, logger *zerolog.Logger) font.Face {
	face, err := gg.LoadFontFace(path, points)
	if err != nil {
		logger.Warn().Msgf("loading font face %s: %v, using built-in face", path, err)
		return basicfont.Face7x13
	}

	return face
}

// loadFaces loads the dashboard font faces for the provided frame height.
func loadFaces(fontDir string, height int, logger *zerolog.Logger) faceSet {
	bold := filepath.Join(fontDir, boldFontFile)
	regular := filepath.Join(fontDir, regularFontFile)
	h := float64(height)

	return faceSet{
		giant: loadFace(bold, h*0.20, logger),
		large: loadFace(bold, h*0.125, logger),
		med:   loadFace(regular, h*0.06, logger),
		small: loadFace(regular, h*0.04, logger),
		tiny:  loadFace(regular, h*0.033, logger),
		err:   loadFace(bold, h*0.08, logger),
	}
}
