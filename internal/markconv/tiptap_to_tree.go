package markconv

import (
	"github.com/riverfjs/storytext-go/internal/bitmask"
	"github.com/riverfjs/storytext-go/internal/types"
)

// ParagraphToBlock 将单个 mark-tree 段落转换为块节点
//
// 每个 text run 的 mark 数组折叠为格式掩码，未知 mark 忽略。非 left
// 的 textAlign 写入块的对齐字段；left 与缺省等价，不产生对齐信息。
// 空段落规范化为单个空 text run。
func (c *Converter) ParagraphToBlock(tp *types.TiptapParagraph) *types.BlockNode {
	block := types.NewBlock(types.BlockParagraph)
	if tp == nil {
		block.Children = append(block.Children, types.NewTextRun("", 0))
		return block
	}
	if tp.Attrs != nil && tp.Attrs.TextAlign != "" && tp.Attrs.TextAlign != types.AlignLeft {
		block.Format = tp.Attrs.TextAlign
	}
	for _, run := range tp.Content {
		if run == nil {
			continue
		}
		block.Children = append(block.Children, types.NewTextRun(run.Text, bitmask.FromMarks(run.Marks)))
	}
	if len(block.Children) == 0 {
		block.Children = append(block.Children, types.NewTextRun("", 0))
	}
	return block
}
