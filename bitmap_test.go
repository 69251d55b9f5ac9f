package qmandel

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEncodeBMPSinglePixel(t *testing.T) {
	r := NewRaster(1, 1)
	r.Fill(Gray(255))

	var buf bytes.Buffer
	if err := EncodeBMP(&buf, r); err != nil {
		t.Fatalf("EncodeBMP() error = %v", err)
	}
	b := buf.Bytes()
	if len(b) != 58 {
		t.Fatalf("EncodeBMP() wrote %d bytes, want 58", len(b))
	}

	le := binary.LittleEndian
	if string(b[0:2]) != "BM" {
		t.Errorf("magic = %q, want BM", b[0:2])
	}
	fields := []struct {
		name string
		got  uint32
		want uint32
	}{
		{"file size", le.Uint32(b[2:]), 58},
		{"pixel offset", le.Uint32(b[10:]), 54},
		{"info size", le.Uint32(b[14:]), 40},
		{"width", le.Uint32(b[18:]), 1},
		{"height", le.Uint32(b[22:]), 1},
		{"planes", uint32(le.Uint16(b[26:])), 1},
		{"bits per pixel", uint32(le.Uint16(b[28:])), 24},
		{"compression", le.Uint32(b[30:]), 0},
	}
	for _, f := range fields {
		if f.got != f.want {
			t.Errorf("%s = %d, want %d", f.name, f.got, f.want)
		}
	}
	if want := []byte{0xff, 0xff, 0xff, 0x00}; !bytes.Equal(b[54:], want) {
		t.Errorf("pixel data = % x, want % x", b[54:], want)
	}
}

func TestEncodeBMPRowOrder(t *testing.T) {
	r := NewRaster(1, 2)
	r.Set(0, 0, RGB{R: 0xff}) // top
	r.Set(0, 1, RGB{B: 0xff}) // bottom

	var buf bytes.Buffer
	if err := EncodeBMP(&buf, r); err != nil {
		t.Fatalf("EncodeBMP() error = %v", err)
	}
	b := buf.Bytes()
	if len(b) != 62 {
		t.Fatalf("EncodeBMP() wrote %d bytes, want 62", len(b))
	}
	want := []byte{
		0xff, 0x00, 0x00, 0x00, // bottom row first, B G R + pad
		0x00, 0x00, 0xff, 0x00,
	}
	if !bytes.Equal(b[54:], want) {
		t.Errorf("pixel data = % x, want % x", b[54:], want)
	}
}

func TestEncodeBMPRowPadding(t *testing.T) {
	for _, w := range []int{1, 2, 3, 4, 5} {
		r := NewRaster(w, 3)
		var buf bytes.Buffer
		if err := EncodeBMP(&buf, r); err != nil {
			t.Fatalf("EncodeBMP(%dx3) error = %v", w, err)
		}
		stride := (3*w + 3) &^ 3
		if got, want := buf.Len(), 54+3*stride; got != want {
			t.Errorf("EncodeBMP(%dx3) wrote %d bytes, want %d", w, got, want)
		}
	}
}

func TestEncodeBMPEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeBMP(&buf, NewRaster(0, 3)); !errors.Is(err, ErrEmptyRaster) {
		t.Errorf("EncodeBMP(empty) error = %v, want ErrEmptyRaster", err)
	}
	if err := EncodeBMP(&buf, nil); !errors.Is(err, ErrEmptyRaster) {
		t.Errorf("EncodeBMP(nil) error = %v, want ErrEmptyRaster", err)
	}
}

func TestSaveBMP(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.bmp")
	r := NewRaster(2, 2)
	r.Fill(Gray(128))

	if err := r.SaveBMP(path); err != nil {
		t.Fatalf("SaveBMP() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	var want bytes.Buffer
	if err := EncodeBMP(&want, r); err != nil {
		t.Fatalf("EncodeBMP() error = %v", err)
	}
	if !bytes.Equal(data, want.Bytes()) {
		t.Error("saved file differs from EncodeBMP output")
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temporary file left behind: %v", err)
	}
}

func TestSaveBMPUnwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.bmp")
	err := NewRaster(1, 1).SaveBMP(path)
	if err == nil {
		t.Fatal("SaveBMP() into a missing directory should fail")
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Errorf("SaveBMP() left a file at %s", path)
	}
}

func TestSaveBMPEmptyLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.bmp")
	if err := NewRaster(0, 0).SaveBMP(path); !errors.Is(err, ErrEmptyRaster) {
		t.Fatalf("SaveBMP(empty) error = %v, want ErrEmptyRaster", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("SaveBMP(empty) left %d files behind", len(entries))
	}
}
