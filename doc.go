// Package qmandel renders Mandelbrot-set escape-time images using exact
// rational arithmetic.
//
// # Overview
//
// Every plane coordinate and every iterate is an [exact.Complex] whose
// parts are int64 fractions, so a render is a deterministic function of
// its view and iteration budget. When fractions outgrow 63 bits the
// arithmetic loses precision in a fixed, documented way instead of
// overflowing (see package exact).
//
// # Quick Start
//
//	r := qmandel.NewRenderer(qmandel.WithIterations(8))
//	defer r.Close()
//
//	img, err := r.Render(qmandel.DefaultView())
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := img.SaveBMP("mandelbrot.bmp"); err != nil {
//		log.Fatal(err)
//	}
//
// # Architecture
//
//   - exact: Rational and Complex values with an overflow policy
//   - escape: escape-time evaluator and pixel-to-plane grid mapping
//   - qmandel: tiled parallel driver, intensity mapping, raster, BMP output
//   - cache: optional memo of escape results shared across renders
//
// # Coordinate System
//
// Pixel (0, 0) is the top-left corner; x grows right and y grows down.
// The view's imaginary axis grows up, so row 0 has the largest imaginary
// part. Bitmaps store rows bottom-up; the encoder handles that.
package qmandel
