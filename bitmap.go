package qmandel

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/image/bmp"
)

// ErrEmptyRaster is returned when encoding a raster with no pixels.
var ErrEmptyRaster = errors.New("qmandel: raster has no pixels")

// EncodeBMP writes r to w as an uncompressed 24-bit bitmap: a 54-byte
// header followed by bottom-up rows of B, G, R bytes, each row padded to a
// multiple of 4 bytes.
func EncodeBMP(w io.Writer, r *Raster) error {
	if r == nil || r.width == 0 || r.height == 0 {
		return ErrEmptyRaster
	}
	if err := bmp.Encode(w, r.ToImage()); err != nil {
		return fmt.Errorf("qmandel: encode bmp: %w", err)
	}
	return nil
}

// SaveBMP writes the raster to path as a 24-bit bitmap. The file is
// written under a temporary name and renamed into place, so a failed save
// never leaves a partial file at path.
func (r *Raster) SaveBMP(path string) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("qmandel: create %s: %w", path, err)
	}

	bw := bufio.NewWriter(f)
	err = EncodeBMP(bw, r)
	if err == nil {
		err = bw.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(tmp, path)
	}
	if err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("qmandel: save %s: %w", path, err)
	}

	Logger().Info("bitmap written", "path", path, "width", r.width, "height", r.height)
	return nil
}
