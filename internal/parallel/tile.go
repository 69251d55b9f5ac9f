// Package parallel splits a raster into tiles and evaluates them on a pool
// of worker goroutines.
//
// Pixels of an escape-time raster are independent, so any partition works;
// square tiles keep neighbouring points, which tend to need similar
// iteration counts, on the same worker.
package parallel

// DefaultTileSize is the edge length of a tile in pixels.
const DefaultTileSize = 16

// Tile is a rectangle of pixels in raster coordinates.
// Edge tiles may be smaller than the tile size.
type Tile struct {
	X, Y          int
	Width, Height int
}

// Tiles covers a width×height raster with tiles of at most size×size
// pixels, in row-major order. A non-positive size selects DefaultTileSize.
func Tiles(width, height, size int) []Tile {
	if width <= 0 || height <= 0 {
		return nil
	}
	if size <= 0 {
		size = DefaultTileSize
	}

	cols := (width + size - 1) / size
	rows := (height + size - 1) / size
	tiles := make([]Tile, 0, cols*rows)
	for y := 0; y < height; y += size {
		for x := 0; x < width; x += size {
			tiles = append(tiles, Tile{
				X:      x,
				Y:      y,
				Width:  min(size, width-x),
				Height: min(size, height-y),
			})
		}
	}
	return tiles
}

// Area returns the number of pixels in the tile.
func (t Tile) Area() int {
	return t.Width * t.Height
}

// Each calls fn for every pixel of the tile in row-major order.
func (t Tile) Each(fn func(x, y int)) {
	for y := t.Y; y < t.Y+t.Height; y++ {
		for x := t.X; x < t.X+t.Width; x++ {
			fn(x, y)
		}
	}
}
