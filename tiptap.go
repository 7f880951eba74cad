package storytext

import "github.com/riverfjs/storytext-go/internal/types"

// 导出类型别名：mark 树模型
type TiptapDocument = types.TiptapDocument
type TiptapParagraph = types.TiptapParagraph
type TiptapAttrs = types.TiptapAttrs
type TiptapText = types.TiptapText
type Mark = types.Mark

// 块对齐方式。left 是默认值，从不显式序列化。
const (
	AlignLeft    = types.AlignLeft
	AlignCenter  = types.AlignCenter
	AlignRight   = types.AlignRight
	AlignJustify = types.AlignJustify
)

// NewTiptapDocument 创建空的 mark 树文档
func NewTiptapDocument() *TiptapDocument {
	return types.NewTiptapDocument()
}

// NewTiptapParagraph 创建空的 mark 树段落
func NewTiptapParagraph() *TiptapParagraph {
	return types.NewTiptapParagraph()
}

// TiptapToBlocks 使用默认选项将 mark 树文档转换为块序列
//
// 第 i 个块拿到 key 生成器的 BlockKey(i)；默认生成器从
// startingKeyID 派生（"5" 产生 5_0、5_1…，空串按 "1" 处理）。
func TiptapToBlocks(doc *TiptapDocument, startingKeyID string, opts ...Option) []*BlockNode {
	return converterFor(opts).TiptapToBlocks(doc, startingKeyID)
}

// BlocksToTiptap 使用默认选项将块序列转换为 mark 树文档
func BlocksToTiptap(blocks []*BlockNode, opts ...Option) *TiptapDocument {
	return converterFor(opts).BlocksToTiptap(blocks)
}

// TiptapParagraphToBlock 使用默认选项将单个 mark 树段落转换为块节点
func TiptapParagraphToBlock(tp *TiptapParagraph, opts ...Option) *BlockNode {
	return converterFor(opts).TiptapParagraphToBlock(tp)
}

// BlockToTiptapParagraph 使用默认选项将块节点转换为单个 mark 树段落
func BlockToTiptapParagraph(block *BlockNode, opts ...Option) *TiptapParagraph {
	return converterFor(opts).BlockToTiptapParagraph(block)
}
