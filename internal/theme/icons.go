package theme

// Icon bitmaps are packed 1-bit images: a 4-byte header (magic 'G', format
// version, width, height) followed by rows of ceil(width/8) bytes, MSB
// leftmost. Sizes here are 16x16; the image component scales by drawing one
// display unit per bit cell.

const (
	// IconMagic is the first byte of every icon blob.
	IconMagic = 'G'

	iconVersion = 1
)

// IconHeaderLen is the length of the fixed icon header.
const IconHeaderLen = 4

func icon(width, height byte, rows ...byte) []byte {
	return append([]byte{IconMagic, iconVersion, width, height}, rows...)
}

// IconSuccess is a checkmark.
var IconSuccess = icon(16, 16,
	0b00000000, 0b00000000,
	0b00000000, 0b00000000,
	0b00000000, 0b00000010,
	0b00000000, 0b00000110,
	0b00000000, 0b00001110,
	0b00000000, 0b00011100,
	0b00000000, 0b00111000,
	0b01100000, 0b01110000,
	0b01110000, 0b11100000,
	0b00111001, 0b11000000,
	0b00011111, 0b10000000,
	0b00001111, 0b00000000,
	0b00000110, 0b00000000,
	0b00000000, 0b00000000,
	0b00000000, 0b00000000,
	0b00000000, 0b00000000,
)

// IconFail is a cross.
var IconFail = icon(16, 16,
	0b00000000, 0b00000000,
	0b00000000, 0b00000000,
	0b01100000, 0b00000110,
	0b01110000, 0b00001110,
	0b00111000, 0b00011100,
	0b00011100, 0b00111000,
	0b00001110, 0b01110000,
	0b00000111, 0b11100000,
	0b00000011, 0b11000000,
	0b00000111, 0b11100000,
	0b00001110, 0b01110000,
	0b00011100, 0b00111000,
	0b00111000, 0b00011100,
	0b01110000, 0b00001110,
	0b01100000, 0b00000110,
	0b00000000, 0b00000000,
)

// IconInfo is a circled dot.
var IconInfo = icon(16, 16,
	0b00000111, 0b11100000,
	0b00011000, 0b00011000,
	0b00100000, 0b00000100,
	0b01000001, 0b10000010,
	0b01000001, 0b10000010,
	0b10000000, 0b00000001,
	0b10000001, 0b10000001,
	0b10000001, 0b10000001,
	0b10000001, 0b10000001,
	0b10000001, 0b10000001,
	0b01000001, 0b10000010,
	0b01000001, 0b10000010,
	0b00100000, 0b00000100,
	0b00011000, 0b00011000,
	0b00000111, 0b11100000,
	0b00000000, 0b00000000,
)

// IconSize decodes the width and height from an icon blob. Malformed blobs
// report 0x0.
func IconSize(data []byte) (width, height int) {
	if len(data) < IconHeaderLen || data[0] != IconMagic {
		return 0, 0
	}
	w, h := int(data[2]), int(data[3])
	if len(data) < IconHeaderLen+((w+7)/8)*h {
		return 0, 0
	}
	return w, h
}

// IconBit reports whether the bit at (x, y) of the icon blob is set.
// Out-of-range coordinates and malformed blobs read as unset.
func IconBit(data []byte, x, y int) bool {
	w, h := IconSize(data)
	if x < 0 || y < 0 || x >= w || y >= h {
		return false
	}
	stride := (w + 7) / 8
	b := data[IconHeaderLen+y*stride+x/8]
	return b&(0x80>>(x%8)) != 0
}
