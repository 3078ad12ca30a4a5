// Package chartab holds the character classes used by the scanner.
// The XML Name productions are encoded as unicode.RangeTable values
// (BMP only) so the hot loop never touches a regexp; ASCII gets a
// table lookup.
package chartab

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// NameStart covers the XML 1.0 NameStartChar production, restricted to
// the Basic Multilingual Plane.
var NameStart = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: ':', Hi: ':', Stride: 1},
		{Lo: 'A', Hi: 'Z', Stride: 1},
		{Lo: '_', Hi: '_', Stride: 1},
		{Lo: 'a', Hi: 'z', Stride: 1},
		{Lo: 0x00C0, Hi: 0x00D6, Stride: 1},
		{Lo: 0x00D8, Hi: 0x00F6, Stride: 1},
		{Lo: 0x00F8, Hi: 0x02FF, Stride: 1},
		{Lo: 0x0370, Hi: 0x037D, Stride: 1},
		{Lo: 0x037F, Hi: 0x1FFF, Stride: 1},
		{Lo: 0x200C, Hi: 0x200D, Stride: 1},
		{Lo: 0x2070, Hi: 0x218F, Stride: 1},
		{Lo: 0x2C00, Hi: 0x2FEF, Stride: 1},
		{Lo: 0x3001, Hi: 0xD7FF, Stride: 1},
		{Lo: 0xF900, Hi: 0xFDCF, Stride: 1},
		{Lo: 0xFDF0, Hi: 0xFFFD, Stride: 1},
	},
	LatinOffset: 4,
}

var nameExtra = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: '-', Hi: '-', Stride: 1},
		{Lo: '.', Hi: '.', Stride: 1},
		{Lo: '0', Hi: '9', Stride: 1},
		{Lo: 0x00B7, Hi: 0x00B7, Stride: 1},
		{Lo: 0x0300, Hi: 0x036F, Stride: 1},
		{Lo: 0x203F, Hi: 0x2040, Stride: 1},
	},
	LatinOffset: 3,
}

// NameBody covers the XML 1.0 NameChar production: NameStart plus
// digits, '-', '.', middle dot and the combining ranges.
var NameBody = rangetable.Merge(NameStart, nameExtra)

var asciiNameStart [128]bool
var asciiNameBody [128]bool

func init() {
	for r := rune(0); r < 128; r++ {
		asciiNameStart[r] = unicode.Is(NameStart, r)
		asciiNameBody[r] = unicode.Is(NameBody, r)
	}
}

func IsNameStart(r rune) bool {
	if r < 128 {
		return asciiNameStart[r]
	}
	return unicode.Is(NameStart, r)
}

func IsNameBody(r rune) bool {
	if r < 128 {
		return asciiNameBody[r]
	}
	return unicode.Is(NameBody, r)
}

// IsEntityStart reports whether r may begin an entity reference name.
// '#' introduces a numeric character reference.
func IsEntityStart(r rune) bool {
	return r == '#' || IsNameStart(r)
}

func IsEntityBody(r rune) bool {
	return r == '#' || IsNameBody(r)
}

// IsWhitespace matches the XML S production.
func IsWhitespace(r rune) bool {
	return r == ' ' || r == '\n' || r == '\r' || r == '\t'
}

func IsQuote(r rune) bool {
	return r == '"' || r == '\''
}
