package markconv

import (
	"github.com/riverfjs/storytext-go/internal/bitmask"
	"github.com/riverfjs/storytext-go/internal/types"
)

// BlockToParagraph 将块节点转换为单个 mark-tree 段落
//
// text run 的格式掩码展开为 mark 数组；code 位在 mark-tree 模型中
// 没有对应 mark，经此方向后丢失。entity run 退化为不带 mark 的纯
// 文本 run。块对齐方式非 left 时写入 attrs，left 从不序列化。
func (c *Converter) BlockToParagraph(block *types.BlockNode) *types.TiptapParagraph {
	tp := types.NewTiptapParagraph()
	if block == nil {
		tp.Content = append(tp.Content, &types.TiptapText{Type: types.TiptapTextNode})
		return tp
	}
	if block.Format != "" && block.Format != types.AlignLeft {
		tp.Attrs = &types.TiptapAttrs{TextAlign: block.Format}
	}
	for _, child := range block.Children {
		if child == nil {
			continue
		}
		// entity run 的掩码恒为 0，统一走 Marks 展开即自然退化为纯文本
		tp.Content = append(tp.Content, &types.TiptapText{
			Type:  types.TiptapTextNode,
			Text:  child.Text,
			Marks: bitmask.Marks(child.Format),
		})
	}
	if len(tp.Content) == 0 {
		tp.Content = append(tp.Content, &types.TiptapText{Type: types.TiptapTextNode})
	}
	return tp
}
