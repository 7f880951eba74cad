package storytext

import (
	"sort"
	"strings"
	"unicode"

	"github.com/riverfjs/storytext-go/internal/types"
	"github.com/riverfjs/storytext-go/internal/util"
)

// 导出类型别名：扁平段落模型
type Document = types.Document
type Paragraph = types.Paragraph
type FormatRange = types.FormatRange
type Association = types.Association
type Occurrence = types.Occurrence

// NewParagraph 创建指定类型的空段落，注解列表预先分配为空切片
func NewParagraph(paragraphType string) *Paragraph {
	return types.NewParagraph(paragraphType)
}

// UTF16Len returns the length of text measured in UTF-16 code units.
//
// All range annotations in the flat model measure offsets in UTF-16
// code units, not Go string bytes or runes. Characters outside the BMP
// (codepoint > 0xFFFF) take 2 UTF-16 code units (a surrogate pair);
// all others take 1.
func UTF16Len(text string) int {
	return util.UTF16Len(text)
}

// SplitParagraph 将段落拆分为不超过 maxLen 个 UTF-16 code units 的序列
//
// 优先在空白字符之后拆分；没有合适的空白边界时硬拆，硬拆位置落在
// 代理对中间时回退一个 code unit，从不拆开字符。跨越拆分点的格式
// 区间与出现区间被裁剪进两侧。段落本就不超长时原样返回。
func SplitParagraph(p *Paragraph, maxLen int) []*Paragraph {
	if p == nil {
		return []*Paragraph{}
	}
	total := UTF16Len(p.Text)
	if maxLen <= 0 || total <= maxLen {
		return []*Paragraph{p}
	}

	table := util.NewOffsetTable(p.Text)
	points := whitespaceSplitPoints(p.Text)

	var ranges [][2]int
	cursor := 0
	for cursor < total {
		budget := cursor + maxLen
		if total <= budget {
			ranges = append(ranges, [2]int{cursor, total})
			break
		}

		// 预算内最靠后的空白边界
		best := -1
		for _, sp := range points {
			if sp <= cursor {
				continue
			}
			if sp > budget {
				break
			}
			best = sp
		}

		if best == -1 {
			// 没有空白边界可用，硬拆，避开代理对中间
			best = budget
			if best < total && table.ByteIndex(best) == table.ByteIndex(best+1) {
				best--
			}
			if best <= cursor {
				best = cursor + 1 // Force progress
			}
		}

		ranges = append(ranges, [2]int{cursor, best})
		cursor = best
	}

	result := make([]*Paragraph, 0, len(ranges))
	for _, r := range ranges {
		result = append(result, clipParagraph(p, table, r[0], r[1]))
	}
	return result
}

// whitespaceSplitPoints 返回每个空白字符之后的 UTF-16 位置
func whitespaceSplitPoints(text string) []int {
	var points []int
	pos := 0
	for _, r := range text {
		if r > 0xFFFF {
			pos += 2
		} else {
			pos++
		}
		if unicode.IsSpace(r) {
			points = append(points, pos)
		}
	}
	return points
}

// clipParagraph 取 [start, end) 的文本与注解，偏移整体平移
func clipParagraph(p *Paragraph, table *util.OffsetTable, start, end int) *Paragraph {
	np := types.NewParagraph(p.Type)
	np.Text = table.Slice(start, end)

	for _, r := range p.Formatting {
		s, e := max(r.Start, start), min(r.End, end)
		if s < e {
			np.Formatting = append(np.Formatting, FormatRange{Start: s - start, End: e - start, Type: r.Type})
		}
	}
	for _, assoc := range p.Associations {
		if assoc == nil {
			continue
		}
		var occs []Occurrence
		for _, o := range assoc.Occurrences {
			s, e := max(o.Start, start), min(o.End, end)
			if s < e {
				occs = append(occs, Occurrence{Start: s - start, End: e - start})
			}
		}
		if len(occs) > 0 {
			np.Associations = append(np.Associations, &Association{
				ID:          assoc.ID,
				Text:        assoc.Text,
				Occurrences: occs,
			})
		}
	}
	return np
}

// MergeParagraphs 用分隔符连接多个段落，平移并合并注解
//
// 同一实体的记录跨段落合并为一条：首次出现的展示文本保留，出现
// 区间按连接后的偏移平移。nil 段落被跳过，类型取第一个非 nil
// 段落的类型。
func MergeParagraphs(ps []*Paragraph, separator string) *Paragraph {
	merged := types.NewParagraph(types.BlockParagraph)
	sepLen := UTF16Len(separator)

	var parts []string
	offset := 0
	assocIndex := make(map[string]int)
	first := true

	for _, p := range ps {
		if p == nil {
			continue
		}
		if first {
			merged.Type = p.Type
			first = false
		} else {
			parts = append(parts, separator)
			offset += sepLen
		}

		base := offset
		for _, r := range p.Formatting {
			merged.Formatting = append(merged.Formatting, FormatRange{
				Start: base + r.Start,
				End:   base + r.End,
				Type:  r.Type,
			})
		}
		for _, assoc := range p.Associations {
			if assoc == nil || len(assoc.Occurrences) == 0 {
				continue
			}
			idx, ok := assocIndex[assoc.ID]
			if !ok {
				idx = len(merged.Associations)
				assocIndex[assoc.ID] = idx
				merged.Associations = append(merged.Associations, &Association{
					ID:   assoc.ID,
					Text: assoc.Text,
				})
			}
			target := merged.Associations[idx]
			for _, o := range assoc.Occurrences {
				target.Occurrences = append(target.Occurrences, Occurrence{
					Start: base + o.Start,
					End:   base + o.End,
				})
			}
		}

		parts = append(parts, p.Text)
		offset = base + UTF16Len(p.Text)
	}

	merged.Text = strings.Join(parts, "")
	return merged
}

// TrimParagraphSpace 去除段落首尾空白并同步平移注解
//
// 区间按去掉的前导空白平移，越出剩余文本的部分被裁剪，完全落在
// 空白里的区间被丢弃。无需修剪时原样返回输入段落。
func TrimParagraphSpace(p *Paragraph) *Paragraph {
	if p == nil {
		return nil
	}
	trimmed := strings.TrimSpace(p.Text)
	if trimmed == p.Text {
		return p
	}

	startByte := strings.IndexFunc(p.Text, func(r rune) bool { return !unicode.IsSpace(r) })
	if startByte < 0 {
		// 全空白段落
		return types.NewParagraph(p.Type)
	}
	utf16Start := UTF16Len(p.Text[:startByte])
	utf16Total := UTF16Len(trimmed)

	np := types.NewParagraph(p.Type)
	np.Text = trimmed

	for _, r := range p.Formatting {
		s, e := max(r.Start-utf16Start, 0), min(r.End-utf16Start, utf16Total)
		if s < e {
			np.Formatting = append(np.Formatting, FormatRange{Start: s, End: e, Type: r.Type})
		}
	}
	for _, assoc := range p.Associations {
		if assoc == nil {
			continue
		}
		var occs []Occurrence
		for _, o := range assoc.Occurrences {
			s, e := max(o.Start-utf16Start, 0), min(o.End-utf16Start, utf16Total)
			if s < e {
				occs = append(occs, Occurrence{Start: s, End: e})
			}
		}
		if len(occs) > 0 {
			np.Associations = append(np.Associations, &Association{
				ID:          assoc.ID,
				Text:        assoc.Text,
				Occurrences: occs,
			})
		}
	}
	return np
}

// Normalize 规范化文档，恢复传输层的结构不变量
//
// 丢弃 nil 段落；注解列表保证非 nil；零长、反向或越界的格式区间
// 被裁剪或丢弃；nil、无 id 或没有有效出现区间的实体记录被丢弃，
// 出现区间按起始位置升序排列。文本内容不变。
func Normalize(doc *Document) *Document {
	out := &Document{Paragraphs: make([]*Paragraph, 0)}
	if doc == nil {
		return out
	}
	for _, p := range doc.Paragraphs {
		if p == nil {
			continue
		}
		out.Paragraphs = append(out.Paragraphs, normalizeParagraph(p))
	}
	return out
}

func normalizeParagraph(p *Paragraph) *Paragraph {
	total := UTF16Len(p.Text)
	np := types.NewParagraph(p.Type)
	np.Text = p.Text

	for _, r := range p.Formatting {
		s, e := max(r.Start, 0), min(r.End, total)
		if s < e && r.Type != "" {
			np.Formatting = append(np.Formatting, FormatRange{Start: s, End: e, Type: r.Type})
		}
	}
	for _, assoc := range p.Associations {
		if assoc == nil || assoc.ID == "" {
			continue
		}
		occs := make([]Occurrence, 0, len(assoc.Occurrences))
		for _, o := range assoc.Occurrences {
			s, e := max(o.Start, 0), min(o.End, total)
			if s < e {
				occs = append(occs, Occurrence{Start: s, End: e})
			}
		}
		if len(occs) == 0 {
			continue
		}
		sort.Slice(occs, func(i, j int) bool { return occs[i].Start < occs[j].Start })
		np.Associations = append(np.Associations, &Association{
			ID:          assoc.ID,
			Text:        assoc.Text,
			Occurrences: occs,
		})
	}
	return np
}
