package storytext

import "github.com/riverfjs/storytext-go/internal/types"

// 导出类型别名：编辑器状态树模型
type EditorState = types.EditorState
type RootNode = types.RootNode
type BlockNode = types.BlockNode
type InlineNode = types.InlineNode

// 块与行内节点的类型判别值
const (
	BlockParagraph = types.BlockParagraph
	BlockHeading   = types.BlockHeading
	BlockQuote     = types.BlockQuote

	NodeText   = types.NodeText
	NodeEntity = types.NodeEntity
)

// NewEditorState 创建空的编辑器状态树
func NewEditorState() *EditorState {
	return types.NewEditorState()
}

// NewBlock 创建指定变体的空块节点
func NewBlock(blockType string) *BlockNode {
	return types.NewBlock(blockType)
}

// NewTextRun 创建 text run 节点
func NewTextRun(text string, format int) *InlineNode {
	return types.NewTextRun(text, format)
}

// NewEntityRun 创建 entity run 节点
func NewEntityRun(text, entityID string) *InlineNode {
	return types.NewEntityRun(text, entityID)
}

// FlatToEditorState 使用默认选项将扁平文档转换为编辑器状态树
func FlatToEditorState(doc *Document, opts ...Option) *EditorState {
	return converterFor(opts).FlatToEditorState(doc)
}

// EditorStateToFlat 使用默认选项将编辑器状态树展平为扁平文档
func EditorStateToFlat(state *EditorState, opts ...Option) *Document {
	return converterFor(opts).EditorStateToFlat(state)
}

// ParagraphToBlock 使用默认选项将单个扁平段落转换为块节点
func ParagraphToBlock(p *Paragraph, opts ...Option) *BlockNode {
	return converterFor(opts).ParagraphToBlock(p)
}

// BlockToParagraph 使用默认选项将块节点转换为单个扁平段落
func BlockToParagraph(block *BlockNode, opts ...Option) *Paragraph {
	return converterFor(opts).BlockToParagraph(block)
}
