package compose

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/eringen/visionkit/board"
)

func TestCompositionProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(9753)
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("grid renders min(N,9) images and fills the rest", prop.ForAll(
		func(n int) bool {
			scene := Compose(snapshot(board.Grid, board.Classic, n))
			shown := n
			if shown > GridSlots {
				shown = GridSlots
			}
			imgs := scene.ByRole(RoleImage)
			if len(imgs) != shown || len(scene.ByRole(RolePlaceholder)) != GridSlots-shown {
				return false
			}
			for i, img := range imgs {
				if img.Rect != GridCell(i) {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 30),
	))

	properties.Property("freeform renders every image, fallback from index six", prop.ForAll(
		func(n int) bool {
			imgs := Compose(snapshot(board.Freeform, board.Classic, n)).ByRole(RoleImage)
			if len(imgs) != n {
				return false
			}
			for i, img := range imgs {
				if i < len(FreeformPresets) && img.Preset != i {
					return false
				}
				if i >= len(FreeformPresets) && (img.Preset != FallbackPreset || img.Rotation != 0) {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 20),
	))

	properties.Property("caption styling depends only on index parity", prop.ForAll(
		func(texts []string) bool {
			if len(texts) == 0 {
				return true
			}
			grid := Compose(snapshot(board.Grid, board.Classic, 1, texts...)).ByRole(RoleCaption)
			free := Compose(snapshot(board.Freeform, board.Classic, 1, texts...)).ByRole(RoleCaption)
			for i := range texts {
				wantAlign := AlignRight
				if i%2 == 1 {
					wantAlign = AlignLeft
				}
				if grid[i].Fill != CaptionTreatment(i) || free[i].Align != wantAlign {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.AlphaString()),
	))

	properties.TestingRun(t)
}
