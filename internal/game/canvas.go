package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/standing-waves/internal/wave"
)

// canvas is the subset of drawing a frame needs.
type canvas interface {
	Clear(clr color.Color)
	Line(from, to wave.Point, clr color.Color)
}

// screenCanvas draws onto an ebiten screen image.
type screenCanvas struct {
	dst *ebiten.Image
}

func (c screenCanvas) Clear(clr color.Color) { c.dst.Fill(clr) }

func (c screenCanvas) Line(from, to wave.Point, clr color.Color) {
	vector.StrokeLine(c.dst, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), 1, clr, false)
}
