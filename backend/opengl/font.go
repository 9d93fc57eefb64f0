package opengl

import "github.com/go-gl/gl/v4.1-core/gl"

// Font atlas geometry. Glyphs are 8x8 bitmaps for ASCII 32-127, packed
// row-major into a 16x6 grid, which is the layout DrawList.AddText
// computes texture coordinates against.
const (
	glyphSize    = 8
	atlasColumns = 16
	atlasRows    = 6
	atlasWidth   = atlasColumns * glyphSize
	atlasHeight  = atlasRows * glyphSize
	firstGlyph   = 32
	glyphCount   = atlasColumns * atlasRows
)

// glyphBitmaps holds one row byte per scanline, MSB leftmost. Entries
// left zero render as blank, which is what unknown characters get.
var glyphBitmaps = [glyphCount][glyphSize]byte{
	' ' - firstGlyph:  {0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	'!' - firstGlyph:  {0x18, 0x18, 0x18, 0x18, 0x18, 0x00, 0x18, 0x00},
	'"' - firstGlyph:  {0x66, 0x66, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	'#' - firstGlyph:  {0x24, 0x7E, 0x24, 0x24, 0x7E, 0x24, 0x00, 0x00},
	'$' - firstGlyph:  {0x18, 0x3E, 0x60, 0x3C, 0x06, 0x7C, 0x18, 0x00},
	'%' - firstGlyph:  {0x62, 0x64, 0x08, 0x10, 0x26, 0x46, 0x00, 0x00},
	'&' - firstGlyph:  {0x38, 0x6C, 0x38, 0x76, 0xDC, 0xCC, 0x76, 0x00},
	'\'' - firstGlyph: {0x18, 0x18, 0x30, 0x00, 0x00, 0x00, 0x00, 0x00},
	'(' - firstGlyph:  {0x0C, 0x18, 0x30, 0x30, 0x30, 0x18, 0x0C, 0x00},
	')' - firstGlyph:  {0x30, 0x18, 0x0C, 0x0C, 0x0C, 0x18, 0x30, 0x00},
	'*' - firstGlyph:  {0x00, 0x66, 0x3C, 0xFF, 0x3C, 0x66, 0x00, 0x00},
	'+' - firstGlyph:  {0x00, 0x18, 0x18, 0x7E, 0x18, 0x18, 0x00, 0x00},
	',' - firstGlyph:  {0x00, 0x00, 0x00, 0x00, 0x00, 0x18, 0x18, 0x30},
	'-' - firstGlyph:  {0x00, 0x00, 0x00, 0x7E, 0x00, 0x00, 0x00, 0x00},
	'.' - firstGlyph:  {0x00, 0x00, 0x00, 0x00, 0x00, 0x18, 0x18, 0x00},
	'/' - firstGlyph:  {0x02, 0x06, 0x0C, 0x18, 0x30, 0x60, 0x40, 0x00},
	'0' - firstGlyph:  {0x3C, 0x66, 0x6E, 0x76, 0x66, 0x66, 0x3C, 0x00},
	'1' - firstGlyph:  {0x18, 0x38, 0x18, 0x18, 0x18, 0x18, 0x7E, 0x00},
	'2' - firstGlyph:  {0x3C, 0x66, 0x06, 0x1C, 0x30, 0x60, 0x7E, 0x00},
	'3' - firstGlyph:  {0x3C, 0x66, 0x06, 0x1C, 0x06, 0x66, 0x3C, 0x00},
	'4' - firstGlyph:  {0x0C, 0x1C, 0x3C, 0x6C, 0x7E, 0x0C, 0x0C, 0x00},
	'5' - firstGlyph:  {0x7E, 0x60, 0x7C, 0x06, 0x06, 0x66, 0x3C, 0x00},
	'6' - firstGlyph:  {0x1C, 0x30, 0x60, 0x7C, 0x66, 0x66, 0x3C, 0x00},
	'7' - firstGlyph:  {0x7E, 0x06, 0x0C, 0x18, 0x30, 0x30, 0x30, 0x00},
	'8' - firstGlyph:  {0x3C, 0x66, 0x66, 0x3C, 0x66, 0x66, 0x3C, 0x00},
	'9' - firstGlyph:  {0x3C, 0x66, 0x66, 0x3E, 0x06, 0x0C, 0x38, 0x00},
	':' - firstGlyph:  {0x00, 0x00, 0x18, 0x18, 0x00, 0x18, 0x18, 0x00},
	';' - firstGlyph:  {0x00, 0x00, 0x18, 0x18, 0x00, 0x18, 0x18, 0x30},
	'<' - firstGlyph:  {0x06, 0x0C, 0x18, 0x30, 0x18, 0x0C, 0x06, 0x00},
	'=' - firstGlyph:  {0x00, 0x00, 0x7E, 0x00, 0x7E, 0x00, 0x00, 0x00},
	'>' - firstGlyph:  {0x60, 0x30, 0x18, 0x0C, 0x18, 0x30, 0x60, 0x00},
	'?' - firstGlyph:  {0x3C, 0x66, 0x06, 0x1C, 0x18, 0x00, 0x18, 0x00},
	'@' - firstGlyph:  {0x3C, 0x66, 0x6E, 0x6A, 0x6E, 0x60, 0x3C, 0x00},
	'A' - firstGlyph:  {0x18, 0x3C, 0x66, 0x66, 0x7E, 0x66, 0x66, 0x00},
	'B' - firstGlyph:  {0x7C, 0x66, 0x66, 0x7C, 0x66, 0x66, 0x7C, 0x00},
	'C' - firstGlyph:  {0x3C, 0x66, 0x60, 0x60, 0x60, 0x66, 0x3C, 0x00},
	'D' - firstGlyph:  {0x78, 0x6C, 0x66, 0x66, 0x66, 0x6C, 0x78, 0x00},
	'E' - firstGlyph:  {0x7E, 0x60, 0x60, 0x7C, 0x60, 0x60, 0x7E, 0x00},
	'F' - firstGlyph:  {0x7E, 0x60, 0x60, 0x7C, 0x60, 0x60, 0x60, 0x00},
	'G' - firstGlyph:  {0x3C, 0x66, 0x60, 0x6E, 0x66, 0x66, 0x3E, 0x00},
	'H' - firstGlyph:  {0x66, 0x66, 0x66, 0x7E, 0x66, 0x66, 0x66, 0x00},
	'I' - firstGlyph:  {0x7E, 0x18, 0x18, 0x18, 0x18, 0x18, 0x7E, 0x00},
	'J' - firstGlyph:  {0x3E, 0x0C, 0x0C, 0x0C, 0x0C, 0x6C, 0x38, 0x00},
	'K' - firstGlyph:  {0x66, 0x6C, 0x78, 0x70, 0x78, 0x6C, 0x66, 0x00},
	'L' - firstGlyph:  {0x60, 0x60, 0x60, 0x60, 0x60, 0x60, 0x7E, 0x00},
	'M' - firstGlyph:  {0x63, 0x77, 0x7F, 0x6B, 0x63, 0x63, 0x63, 0x00},
	'N' - firstGlyph:  {0x66, 0x76, 0x7E, 0x7E, 0x6E, 0x66, 0x66, 0x00},
	'O' - firstGlyph:  {0x3C, 0x66, 0x66, 0x66, 0x66, 0x66, 0x3C, 0x00},
	'P' - firstGlyph:  {0x7C, 0x66, 0x66, 0x7C, 0x60, 0x60, 0x60, 0x00},
	'Q' - firstGlyph:  {0x3C, 0x66, 0x66, 0x66, 0x6A, 0x6C, 0x36, 0x00},
	'R' - firstGlyph:  {0x7C, 0x66, 0x66, 0x7C, 0x6C, 0x66, 0x66, 0x00},
	'S' - firstGlyph:  {0x3C, 0x66, 0x60, 0x3C, 0x06, 0x66, 0x3C, 0x00},
	'T' - firstGlyph:  {0x7E, 0x18, 0x18, 0x18, 0x18, 0x18, 0x18, 0x00},
	'U' - firstGlyph:  {0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x3C, 0x00},
	'V' - firstGlyph:  {0x66, 0x66, 0x66, 0x66, 0x66, 0x3C, 0x18, 0x00},
	'W' - firstGlyph:  {0x63, 0x63, 0x63, 0x6B, 0x7F, 0x77, 0x63, 0x00},
	'X' - firstGlyph:  {0x66, 0x66, 0x3C, 0x18, 0x3C, 0x66, 0x66, 0x00},
	'Y' - firstGlyph:  {0x66, 0x66, 0x66, 0x3C, 0x18, 0x18, 0x18, 0x00},
	'Z' - firstGlyph:  {0x7E, 0x06, 0x0C, 0x18, 0x30, 0x60, 0x7E, 0x00},
	'[' - firstGlyph:  {0x1C, 0x18, 0x18, 0x18, 0x18, 0x18, 0x1C, 0x00},
	'\\' - firstGlyph: {0x40, 0x60, 0x30, 0x18, 0x0C, 0x06, 0x02, 0x00},
	']' - firstGlyph:  {0x38, 0x18, 0x18, 0x18, 0x18, 0x18, 0x38, 0x00},
	'^' - firstGlyph:  {0x18, 0x3C, 0x66, 0x00, 0x00, 0x00, 0x00, 0x00},
	'_' - firstGlyph:  {0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x7E, 0x00},
	'`' - firstGlyph:  {0x30, 0x18, 0x0C, 0x00, 0x00, 0x00, 0x00, 0x00},
	'a' - firstGlyph:  {0x00, 0x00, 0x3C, 0x06, 0x3E, 0x66, 0x3E, 0x00},
	'b' - firstGlyph:  {0x60, 0x60, 0x7C, 0x66, 0x66, 0x66, 0x7C, 0x00},
	'c' - firstGlyph:  {0x00, 0x00, 0x3C, 0x66, 0x60, 0x66, 0x3C, 0x00},
	'd' - firstGlyph:  {0x06, 0x06, 0x3E, 0x66, 0x66, 0x66, 0x3E, 0x00},
	'e' - firstGlyph:  {0x00, 0x00, 0x3C, 0x66, 0x7E, 0x60, 0x3C, 0x00},
	'f' - firstGlyph:  {0x1C, 0x30, 0x30, 0x7C, 0x30, 0x30, 0x30, 0x00},
	'g' - firstGlyph:  {0x00, 0x00, 0x3E, 0x66, 0x66, 0x3E, 0x06, 0x3C},
	'h' - firstGlyph:  {0x60, 0x60, 0x7C, 0x66, 0x66, 0x66, 0x66, 0x00},
	'i' - firstGlyph:  {0x18, 0x00, 0x38, 0x18, 0x18, 0x18, 0x3C, 0x00},
	'j' - firstGlyph:  {0x0C, 0x00, 0x1C, 0x0C, 0x0C, 0x0C, 0x6C, 0x38},
	'k' - firstGlyph:  {0x60, 0x60, 0x66, 0x6C, 0x78, 0x6C, 0x66, 0x00},
	'l' - firstGlyph:  {0x38, 0x18, 0x18, 0x18, 0x18, 0x18, 0x3C, 0x00},
	'm' - firstGlyph:  {0x00, 0x00, 0x76, 0x7F, 0x6B, 0x6B, 0x63, 0x00},
	'n' - firstGlyph:  {0x00, 0x00, 0x7C, 0x66, 0x66, 0x66, 0x66, 0x00},
	'o' - firstGlyph:  {0x00, 0x00, 0x3C, 0x66, 0x66, 0x66, 0x3C, 0x00},
	'p' - firstGlyph:  {0x00, 0x00, 0x7C, 0x66, 0x66, 0x7C, 0x60, 0x60},
	'q' - firstGlyph:  {0x00, 0x00, 0x3E, 0x66, 0x66, 0x3E, 0x06, 0x06},
	'r' - firstGlyph:  {0x00, 0x00, 0x6C, 0x76, 0x60, 0x60, 0x60, 0x00},
	's' - firstGlyph:  {0x00, 0x00, 0x3E, 0x60, 0x3C, 0x06, 0x7C, 0x00},
	't' - firstGlyph:  {0x30, 0x30, 0x7C, 0x30, 0x30, 0x30, 0x1C, 0x00},
	'u' - firstGlyph:  {0x00, 0x00, 0x66, 0x66, 0x66, 0x66, 0x3E, 0x00},
	'v' - firstGlyph:  {0x00, 0x00, 0x66, 0x66, 0x66, 0x3C, 0x18, 0x00},
	'w' - firstGlyph:  {0x00, 0x00, 0x63, 0x6B, 0x6B, 0x7F, 0x36, 0x00},
	'x' - firstGlyph:  {0x00, 0x00, 0x66, 0x3C, 0x18, 0x3C, 0x66, 0x00},
	'y' - firstGlyph:  {0x00, 0x00, 0x66, 0x66, 0x66, 0x3E, 0x06, 0x3C},
	'z' - firstGlyph:  {0x00, 0x00, 0x7E, 0x0C, 0x18, 0x30, 0x7E, 0x00},
	'{' - firstGlyph:  {0x0E, 0x18, 0x18, 0x70, 0x18, 0x18, 0x0E, 0x00},
	'|' - firstGlyph:  {0x18, 0x18, 0x18, 0x18, 0x18, 0x18, 0x18, 0x00},
	'}' - firstGlyph:  {0x70, 0x18, 0x18, 0x0E, 0x18, 0x18, 0x70, 0x00},
	'~' - firstGlyph:  {0x00, 0x00, 0x76, 0xDC, 0x00, 0x00, 0x00, 0x00},
}

// buildFontAtlas rasterizes the glyph bitmaps into a single-channel
// coverage image.
func buildFontAtlas() []byte {
	data := make([]byte, atlasWidth*atlasHeight)
	for idx := range glyphBitmaps {
		col := idx % atlasColumns
		row := idx / atlasColumns
		for y := 0; y < glyphSize; y++ {
			scanline := glyphBitmaps[idx][y]
			if scanline == 0 {
				continue
			}
			base := (row*glyphSize+y)*atlasWidth + col*glyphSize
			for x := 0; x < glyphSize; x++ {
				if scanline&(0x80>>x) != 0 {
					data[base+x] = 255
				}
			}
		}
	}
	return data
}

// createFontTexture uploads the font atlas as an R8 texture with
// nearest filtering so glyph edges stay crisp at integer scales.
func createFontTexture() uint32 {
	data := buildFontAtlas()

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, atlasWidth, atlasHeight, 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(data))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return tex
}
