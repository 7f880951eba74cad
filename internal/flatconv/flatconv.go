// Package flatconv converts between the editor-state tree model and the
// flat paragraph transport model.
package flatconv

import "github.com/riverfjs/storytext-go/internal/types"

// Converter 编辑器状态树与扁平段落模型之间的双向转换器
//
// 转换方法都是纯函数，Converter 构造后不可变，可并发使用。
// 零值可用：配置取默认值，警告被丢弃。
type Converter struct {
	// Config 转换配置，nil 时使用 types.DefaultConfig()
	Config *types.Config
	// ExactFormatting 让 flat→tree 在格式区间边界处细分文本 run，
	// 而不是仅在 span 起点取样一次
	ExactFormatting bool
	// Warn 接收转换中的非致命警告，nil 时丢弃
	Warn func(types.Warning)
}

func (c *Converter) config() *types.Config {
	if c.Config != nil {
		return c.Config
	}
	return types.DefaultConfig()
}

func (c *Converter) warn(w types.Warning) {
	if c.Warn != nil {
		c.Warn(w)
	}
}

// warnAt 给文档级转换的警告盖上段落下标
func (c *Converter) warnAt(index int) func(types.Warning) {
	if c.Warn == nil {
		return nil
	}
	return func(w types.Warning) {
		w.ParagraphIndex = index
		c.Warn(w)
	}
}

// DocumentToEditorState 将扁平文档转换为编辑器状态树
//
// 逐段落调用 ParagraphToBlock，输出顺序与输入顺序一致（下标保持的
// 映射）。nil 文档产生空状态树。
func (c *Converter) DocumentToEditorState(doc *types.Document) *types.EditorState {
	state := types.NewEditorState()
	if doc == nil {
		return state
	}
	for i, p := range doc.Paragraphs {
		pc := *c
		pc.Warn = c.warnAt(i)
		state.Root.Children = append(state.Root.Children, pc.ParagraphToBlock(p))
	}
	return state
}

// EditorStateToDocument 将编辑器状态树展平为扁平文档
func (c *Converter) EditorStateToDocument(state *types.EditorState) *types.Document {
	if state == nil {
		return &types.Document{Paragraphs: make([]*types.Paragraph, 0)}
	}
	doc := &types.Document{Paragraphs: make([]*types.Paragraph, 0, len(state.Root.Children))}
	for _, block := range state.Root.Children {
		doc.Paragraphs = append(doc.Paragraphs, c.BlockToParagraph(block))
	}
	return doc
}

// paragraphType maps a block variant to its paragraph type tag,
// defaulting to paragraph for unrecognized variants.
func paragraphType(blockType string) string {
	switch blockType {
	case types.BlockHeading, types.BlockQuote:
		return blockType
	}
	return types.BlockParagraph
}
