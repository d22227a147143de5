package plot

import (
	"image"
	"image/color"
)

// 3x5 pixel glyphs for point indices.
var glyphs = map[rune][]string{
	'0': {"111", "101", "101", "101", "111"},
	'1': {"010", "110", "010", "010", "111"},
	'2': {"111", "001", "111", "100", "111"},
	'3': {"111", "001", "111", "001", "111"},
	'4': {"101", "101", "111", "001", "001"},
	'5': {"111", "100", "111", "001", "111"},
	'6': {"111", "100", "111", "101", "111"},
	'7': {"111", "001", "001", "001", "001"},
	'8': {"111", "101", "111", "101", "111"},
	'9': {"111", "101", "111", "001", "111"},
}

const (
	glyphAdvance = 4
	labelHeight  = 7
)

// drawLabel writes text with its top-left corner at (x, y) over a filled
// background box. Pixels outside img are clipped.
func drawLabel(img *image.NRGBA, x, y int, text string, fg, bg color.Color) {
	bounds := img.Bounds()
	set := func(px, py int, c color.Color) {
		if (image.Point{X: px, Y: py}).In(bounds) {
			img.Set(px, py, c)
		}
	}

	for dy := -1; dy < labelHeight-1; dy++ {
		for dx := -1; dx < len(text)*glyphAdvance; dx++ {
			set(x+dx, y+dy, bg)
		}
	}

	cx := x
	for _, ch := range text {
		for row, line := range glyphs[ch] {
			for col, pixel := range line {
				if pixel == '1' {
					set(cx+col, y+row, fg)
				}
			}
		}
		cx += glyphAdvance
	}
}
