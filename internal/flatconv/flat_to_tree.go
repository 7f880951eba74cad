package flatconv

import (
	"fmt"
	"sort"

	"github.com/riverfjs/storytext-go/internal/bitmask"
	"github.com/riverfjs/storytext-go/internal/types"
	"github.com/riverfjs/storytext-go/internal/util"
)

// segment 一次实体出现对应的转换片段
type segment struct {
	start int
	end   int
	assoc *types.Association
}

// ParagraphToBlock 将一个扁平段落重建为一个块节点
//
// 出现区间按起始位置升序排序（起点相同时按记录顺序稳定），游标从 0
// 开始从左到右扫描：片段之间的空隙发出 text run，格式位掩码在空隙
// 起点取样一次；片段本身发出 entity run，展示元数据置为空串；最后
// 一个片段之后的剩余文本发出收尾 text run。没有任何行内节点时规范
// 化为恰好一个空 text run。行内节点文本按序拼接恒等于输入文本。
// 从不失败。
func (c *Converter) ParagraphToBlock(p *types.Paragraph) *types.BlockNode {
	if p == nil {
		block := types.NewBlock(types.BlockParagraph)
		block.Children = append(block.Children, types.NewTextRun("", 0))
		return block
	}

	block := types.NewBlock(paragraphType(p.Type))
	if block.Type == types.BlockHeading {
		block.Tag = c.config().HeadingTag
	}

	table := util.NewOffsetTable(p.Text)
	total := table.Len()

	cursor := 0
	for _, seg := range c.sortedSegments(p, total) {
		if seg.start < cursor {
			c.warn(types.Warning{
				Code:           types.WarnOccurrenceOverlap,
				ParagraphIndex: -1,
				EntityID:       seg.assoc.ID,
				Message:        fmt.Sprintf("occurrence [%d,%d) overlaps a previous one, skipped", seg.start, seg.end),
			})
			continue
		}
		if cursor < seg.start {
			c.emitTextSpan(block, p.Formatting, table, cursor, seg.start)
		}
		block.Children = append(block.Children,
			types.NewEntityRun(table.Slice(seg.start, seg.end), seg.assoc.ID))
		cursor = seg.end
	}
	if cursor < total {
		c.emitTextSpan(block, p.Formatting, table, cursor, total)
	}

	if len(block.Children) == 0 {
		block.Children = append(block.Children, types.NewTextRun("", 0))
	}
	return block
}

// sortedSegments 从段落的实体记录构建排序后的片段表
//
// 无 id 的记录（孤儿引用）和越界/反向的出现区间被跳过并产生警告；
// 被跳过区间覆盖的文本随后落入普通 text run。
func (c *Converter) sortedSegments(p *types.Paragraph, total int) []segment {
	segments := make([]segment, 0)
	for _, assoc := range p.Associations {
		if assoc == nil {
			continue
		}
		if assoc.ID == "" {
			c.warn(types.Warning{
				Code:           types.WarnOrphanReference,
				ParagraphIndex: -1,
				Message:        "association without id, occurrences kept as plain text",
			})
			continue
		}
		for _, occ := range assoc.Occurrences {
			if occ.Start < 0 || occ.End > total || occ.Start >= occ.End {
				c.warn(types.Warning{
					Code:           types.WarnOccurrenceOutOfBounds,
					ParagraphIndex: -1,
					EntityID:       assoc.ID,
					Message:        fmt.Sprintf("occurrence [%d,%d) outside text of length %d, skipped", occ.Start, occ.End, total),
				})
				continue
			}
			segments = append(segments, segment{start: occ.Start, end: occ.End, assoc: assoc})
		}
	}
	sort.SliceStable(segments, func(i, j int) bool {
		return segments[i].start < segments[j].start
	})
	return segments
}

// emitTextSpan 为 [from, to) 之间的文本发出 text run
//
// 默认整个 span 共用在 from 处取样一次的掩码；ExactFormatting 开启时
// 在每个落入 span 内部的格式区间边界处细分。
func (c *Converter) emitTextSpan(block *types.BlockNode, formatting []types.FormatRange, table *util.OffsetTable, from, to int) {
	if !c.ExactFormatting {
		block.Children = append(block.Children,
			types.NewTextRun(table.Slice(from, to), maskAt(formatting, from)))
		return
	}
	for _, span := range splitAtBoundaries(formatting, from, to) {
		block.Children = append(block.Children,
			types.NewTextRun(table.Slice(span[0], span[1]), maskAt(formatting, span[0])))
	}
}

// maskAt 返回所有覆盖 pos 的格式区间按位或出的掩码
//
// 区间含首不含尾：r.Start <= pos < r.End 时命中。
func maskAt(formatting []types.FormatRange, pos int) int {
	mask := 0
	for _, r := range formatting {
		if r.Start <= pos && pos < r.End {
			mask |= bitmask.Flag(r.Type)
		}
	}
	return mask
}

// splitAtBoundaries 返回 [from, to) 按内部格式区间边界切分出的子区间
func splitAtBoundaries(formatting []types.FormatRange, from, to int) [][2]int {
	cuts := []int{from}
	for _, r := range formatting {
		if r.Start > from && r.Start < to {
			cuts = append(cuts, r.Start)
		}
		if r.End > from && r.End < to {
			cuts = append(cuts, r.End)
		}
	}
	sort.Ints(cuts)

	spans := make([][2]int, 0, len(cuts))
	for i, start := range cuts {
		end := to
		if i+1 < len(cuts) {
			end = cuts[i+1]
		}
		if start < end {
			spans = append(spans, [2]int{start, end})
		}
	}
	return spans
}
