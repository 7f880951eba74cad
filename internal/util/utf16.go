package util

import "unicode/utf8"

// UTF16Len returns the length of text measured in UTF-16 code units.
//
// All annotation offsets in the flat model are measured in UTF-16 code
// units, not Go string bytes or runes. Characters outside the BMP
// (codepoint > 0xFFFF) take 2 UTF-16 code units (a surrogate pair);
// all others take 1.
func UTF16Len(text string) int {
	count := 0
	for _, r := range text {
		if r > 0xFFFF {
			count += 2
		} else {
			count++
		}
	}
	return count
}

// OffsetTable precomputes the byte index of every UTF-16 offset of one
// string, so annotation ranges can slice the text without rescanning it.
type OffsetTable struct {
	text   string
	byteAt []int
}

// NewOffsetTable builds the offset table for text.
//
// For a surrogate pair the second code unit maps to the byte index of
// the following rune: a range boundary landing inside a pair rounds so
// that slicing never splits the rune.
func NewOffsetTable(text string) *OffsetTable {
	byteAt := make([]int, 0, len(text)+1)
	for i, r := range text {
		byteAt = append(byteAt, i)
		if r > 0xFFFF {
			byteAt = append(byteAt, i+utf8.RuneLen(r))
		}
	}
	byteAt = append(byteAt, len(text))
	return &OffsetTable{text: text, byteAt: byteAt}
}

// Len returns the total UTF-16 length of the text.
func (t *OffsetTable) Len() int {
	return len(t.byteAt) - 1
}

// ByteIndex returns the byte index of the given UTF-16 offset.
// Out-of-range offsets clamp to the text bounds.
func (t *OffsetTable) ByteIndex(offset int) int {
	if offset < 0 {
		return 0
	}
	if offset >= len(t.byteAt) {
		return len(t.text)
	}
	return t.byteAt[offset]
}

// Slice returns the substring covering UTF-16 offsets [start, end).
func (t *OffsetTable) Slice(start, end int) string {
	byteStart := t.ByteIndex(start)
	byteEnd := t.ByteIndex(end)
	if byteStart >= byteEnd {
		return ""
	}
	return t.text[byteStart:byteEnd]
}
