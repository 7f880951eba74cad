package flatconv

import (
	"github.com/riverfjs/storytext-go/internal/bitmask"
	"github.com/riverfjs/storytext-go/internal/buffer"
	"github.com/riverfjs/storytext-go/internal/types"
)

// BlockToParagraph 将一个块节点展平为一个扁平段落
//
// 按序遍历行内子节点，把每个 run 的文本拼入段落缓冲区：text run 记录
// 解码后的格式区间，entity run 记录/合并实体出现区间。拼接严格保序，
// 原文的每个 code unit 在输出中恰好出现一次。缺失的可选字段降级为
// 空值，从不失败。
func (c *Converter) BlockToParagraph(block *types.BlockNode) *types.Paragraph {
	buf := buffer.New()
	if block == nil {
		return buf.Build(types.BlockParagraph)
	}
	for _, child := range block.Children {
		if child == nil {
			continue
		}
		if child.Type == types.NodeEntity && child.EntityID != "" {
			buf.WriteEntity(child.Text, child.EntityID)
			continue
		}
		// 未知行内变体与无 id 的 entity run 都按 text run 处理
		buf.WriteText(child.Text, bitmask.FormatTypes(child.Format))
	}
	return buf.Build(paragraphType(block.Type))
}
