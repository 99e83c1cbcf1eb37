package board

import (
	"fmt"
	"image"
	"io"
	"strings"
)

// File is a user-selected file as declared by the client.
type File struct {
	Name      string
	MediaType string
	Open      func() (io.ReadCloser, error)
}

// DecodeFunc turns an uploaded payload into a raster image.
type DecodeFunc func(r io.Reader) (image.Image, error)

// IsImage reports whether the declared media type is a raster image type.
func IsImage(mediaType string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(mediaType)), "image/")
}

// AddImages appends one asset per image file, in input order, after any
// existing images. Files that are not declared as images or fail to decode
// are skipped without error. It returns the number of assets added.
func (b *Board) AddImages(files []File, decode DecodeFunc) int {
	added := 0
	for _, f := range files {
		if !IsImage(f.MediaType) || f.Open == nil {
			continue
		}
		img, err := decodeFile(f, decode)
		if err != nil {
			continue
		}
		bounds := img.Bounds()
		asset := ImageAsset{
			ID:        b.newID(),
			Name:      f.Name,
			MediaType: f.MediaType,
			Image:     img,
			Width:     bounds.Dx(),
			Height:    bounds.Dy(),
		}
		asset.Ref = b.refs.Create(asset)
		b.images = append(b.images, asset)
		added++
	}
	return added
}

func decodeFile(f File, decode DecodeFunc) (image.Image, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	if decode == nil {
		img, _, err := image.Decode(rc)
		return img, err
	}
	return decode(rc)
}

// RemoveImage releases the reference of image id and removes it from the
// board. It reports false when no image has that id. A failed release is
// returned; the image is gone from the board either way.
func (b *Board) RemoveImage(id string) (bool, error) {
	for i, img := range b.images {
		if img.ID != id {
			continue
		}
		b.images = append(b.images[:i], b.images[i+1:]...)
		// released after removal so the next render no longer sees it
		if err := b.refs.Release(img.Ref); err != nil {
			return true, fmt.Errorf("remove image %s: %w", id, err)
		}
		return true, nil
	}
	return false, nil
}
