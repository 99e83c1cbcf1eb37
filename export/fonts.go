package export

import (
	"golang.org/x/image/font"

	"github.com/eringen/visionkit/compose"
)

type faceKey struct {
	font  compose.Font
	scale float64
}

// faceSet hands out font faces for a single render and closes them after.
type faceSet struct {
	scale float64
	faces map[faceKey]font.Face
}

func newFaceSet(scale float64) *faceSet {
	return &faceSet{scale: scale, faces: make(map[faceKey]font.Face)}
}

func (s *faceSet) face(f compose.Font) (font.Face, error) {
	key := faceKey{f, s.scale}
	if face, ok := s.faces[key]; ok {
		return face, nil
	}
	face, err := compose.NewFace(f, s.scale)
	if err != nil {
		return nil, err
	}
	s.faces[key] = face
	return face, nil
}

func (s *faceSet) Close() {
	for _, f := range s.faces {
		f.Close()
	}
}
