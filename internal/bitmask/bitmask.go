// Package bitmask implements the shared text-formatting codec.
//
// The rich-tree and flat models encode run formatting as an integer
// bitmask; the flat model's range annotations name the same flags as
// string tags and the mark-tree model names them as mark descriptors.
// Decoding always probes bits in one fixed order so that every caller
// observes the same tag sequence regardless of how a mask was built.
package bitmask

import "github.com/riverfjs/storytext-go/internal/types"

// Formatting flags. A mask is the OR of the flags applied to a run.
const (
	Bold          = 1 << iota // 1
	Italic                    // 2
	Strikethrough             // 4
	Underline                 // 8
	Code                      // 16
)

// flagOrder is the fixed probe order: bold, italic, underline,
// strikethrough, code. The mark name is empty for flags the mark-tree
// model cannot represent.
var flagOrder = []struct {
	flag int
	tag  string
	mark string
}{
	{Bold, "bold", "bold"},
	{Italic, "italic", "italic"},
	{Underline, "underline", "underline"},
	{Strikethrough, "strikethrough", "strike"},
	{Code, "code", ""},
}

// Flag returns the flag value for a format-type tag, 0 for unknown tags.
func Flag(tag string) int {
	for _, f := range flagOrder {
		if f.tag == tag {
			return f.flag
		}
	}
	return 0
}

// FormatTypes decodes mask into format-type tags in the fixed probe order.
func FormatTypes(mask int) []string {
	tags := make([]string, 0, len(flagOrder))
	for _, f := range flagOrder {
		if mask&f.flag != 0 {
			tags = append(tags, f.tag)
		}
	}
	return tags
}

// FromFormatTypes encodes format-type tags into a mask.
// Unknown tags are ignored, not an error.
func FromFormatTypes(tags []string) int {
	mask := 0
	for _, tag := range tags {
		mask |= Flag(tag)
	}
	return mask
}

// Marks decodes mask into mark descriptors for the mark-tree model,
// probing in the same fixed order and omitting the code flag.
func Marks(mask int) []types.Mark {
	var marks []types.Mark
	for _, f := range flagOrder {
		if f.mark != "" && mask&f.flag != 0 {
			marks = append(marks, types.Mark{Type: f.mark})
		}
	}
	return marks
}

// FromMarks encodes mark descriptors into a mask.
// Unknown mark types are ignored.
func FromMarks(marks []types.Mark) int {
	mask := 0
	for _, m := range marks {
		for _, f := range flagOrder {
			if f.mark != "" && f.mark == m.Type {
				mask |= f.flag
				break
			}
		}
	}
	return mask
}
