package types

// Tiptap 文档的节点类型判别值
const (
	TiptapDoc           = "doc"
	TiptapParagraphNode = "paragraph"
	TiptapTextNode      = "text"
)

// 块对齐方式。left 是默认值，从不显式序列化。
const (
	AlignLeft    = "left"
	AlignCenter  = "center"
	AlignRight   = "right"
	AlignJustify = "justify"
)

// TiptapDocument mark-tree 模型的顶层文档
type TiptapDocument struct {
	Type    string             `json:"type"`
	Content []*TiptapParagraph `json:"content"`
}

// TiptapParagraph mark-tree 段落：有序 text run 列表 + 可选属性
type TiptapParagraph struct {
	Type    string        `json:"type"`
	Attrs   *TiptapAttrs  `json:"attrs,omitempty"`
	Content []*TiptapText `json:"content"`
}

// TiptapAttrs 段落属性，仅在对齐方式非 left 时出现
type TiptapAttrs struct {
	TextAlign string `json:"textAlign,omitempty"`
}

// TiptapText 单个 text run
type TiptapText struct {
	Type  string `json:"type"`
	Text  string `json:"text"`
	Marks []Mark `json:"marks,omitempty"`
}

// Mark 命名格式标记：bold、italic、strike 或 underline
type Mark struct {
	Type string `json:"type"`
}

// NewTiptapDocument 创建空的 mark-tree 文档
func NewTiptapDocument() *TiptapDocument {
	return &TiptapDocument{
		Type:    TiptapDoc,
		Content: make([]*TiptapParagraph, 0),
	}
}

// NewTiptapParagraph 创建空的 mark-tree 段落
func NewTiptapParagraph() *TiptapParagraph {
	return &TiptapParagraph{
		Type:    TiptapParagraphNode,
		Content: make([]*TiptapText, 0),
	}
}
