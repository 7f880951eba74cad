package buffer

import "github.com/riverfjs/storytext-go/internal/types"

// utf16Len returns the length of text measured in UTF-16 code units.
func utf16Len(text string) int {
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

// ParagraphBuffer accumulates flat paragraph text while tracking the
// current UTF-16 offset, recording formatting ranges and association
// occurrences as runs are written.
type ParagraphBuffer struct {
	parts       []string
	utf16Offset int

	formatting   []types.FormatRange
	associations []*types.Association
	assocIndex   map[string]int
}

// New creates an empty ParagraphBuffer.
func New() *ParagraphBuffer {
	return &ParagraphBuffer{
		parts:        make([]string, 0),
		formatting:   make([]types.FormatRange, 0),
		associations: make([]*types.Association, 0),
		assocIndex:   make(map[string]int),
	}
}

// WriteText appends a text run, recording one formatting range per
// format-type tag over the run's span. Zero-length runs leave no trace.
func (pb *ParagraphBuffer) WriteText(text string, formatTypes []string) {
	length := utf16Len(text)
	if length == 0 {
		return
	}
	start := pb.utf16Offset
	pb.parts = append(pb.parts, text)
	pb.utf16Offset += length

	for _, ft := range formatTypes {
		pb.formatting = append(pb.formatting, types.FormatRange{
			Start: start,
			End:   pb.utf16Offset,
			Type:  ft,
		})
	}
}

// WriteEntity appends an entity run, merging its occurrence into the
// entity's association record: one record per id, occurrences in first
// appearance order, the first written text kept as the display text.
// A write starting exactly where the previous occurrence of the same id
// ended extends that occurrence instead of opening a new one.
func (pb *ParagraphBuffer) WriteEntity(text, id string) {
	length := utf16Len(text)
	if length == 0 {
		return
	}
	start := pb.utf16Offset
	pb.parts = append(pb.parts, text)
	pb.utf16Offset += length

	idx, ok := pb.assocIndex[id]
	if !ok {
		pb.assocIndex[id] = len(pb.associations)
		pb.associations = append(pb.associations, &types.Association{
			ID:          id,
			Text:        text,
			Occurrences: []types.Occurrence{{Start: start, End: pb.utf16Offset}},
		})
		return
	}

	assoc := pb.associations[idx]
	if n := len(assoc.Occurrences); n > 0 && assoc.Occurrences[n-1].End == start {
		assoc.Occurrences[n-1].End = pb.utf16Offset
		return
	}
	assoc.Occurrences = append(assoc.Occurrences, types.Occurrence{
		Start: start,
		End:   pb.utf16Offset,
	})
}

// UTF16Offset returns the current UTF-16 offset.
func (pb *ParagraphBuffer) UTF16Offset() int {
	return pb.utf16Offset
}

// String returns the accumulated text.
func (pb *ParagraphBuffer) String() string {
	if len(pb.parts) == 0 {
		return ""
	}
	totalLen := 0
	for _, p := range pb.parts {
		totalLen += len(p)
	}
	result := make([]byte, 0, totalLen)
	for _, p := range pb.parts {
		result = append(result, []byte(p)...)
	}
	return string(result)
}

// Build returns the accumulated paragraph. The buffer must be Reset
// before it is reused; the returned paragraph owns its annotations.
func (pb *ParagraphBuffer) Build(paragraphType string) *types.Paragraph {
	p := types.NewParagraph(paragraphType)
	p.Text = pb.String()
	p.Formatting = append(p.Formatting, pb.formatting...)
	p.Associations = append(p.Associations, pb.associations...)
	return p
}

// Reset clears the buffer.
func (pb *ParagraphBuffer) Reset() {
	pb.parts = pb.parts[:0]
	pb.utf16Offset = 0
	pb.formatting = pb.formatting[:0]
	pb.associations = pb.associations[:0]
	pb.assocIndex = make(map[string]int)
}
