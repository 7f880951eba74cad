package types

// 行内节点变体标签
const (
	NodeRoot   = "root"
	NodeText   = "text"
	NodeEntity = "entity"
)

// NodeVersion 写入每个节点的 version 值
//
// 仅作为前向兼容信号存在，读取方向从不解释它。
const NodeVersion = 1

// EditorState 富文本编辑器状态树的顶层结构
type EditorState struct {
	Root RootNode `json:"root"`
}

// RootNode 状态树根节点
type RootNode struct {
	Type     string       `json:"type"`
	Children []*BlockNode `json:"children"`
	Version  int          `json:"version"`
}

// BlockNode 块级节点：paragraph、heading 或 quote
type BlockNode struct {
	Type     string        `json:"type"`
	Tag      string        `json:"tag,omitempty"`    // heading 层级标签，如 "h1"
	Format   string        `json:"format,omitempty"` // 块对齐方式，"" 即 left
	Key      string        `json:"key,omitempty"`
	Children []*InlineNode `json:"children"`
	Version  int           `json:"version"`
}

// InlineNode 行内节点：text run 或 entity run
//
// Text run 携带文本和可选的格式位掩码。Entity run 携带文本、实体 id
// 和展示元数据；扁平模型无法还原展示元数据，反向转换时置为空串。
type InlineNode struct {
	Type    string `json:"type"`
	Text    string `json:"text"`
	Format  int    `json:"format,omitempty"` // formatting bitmask, 0 omitted
	Version int    `json:"version"`

	EntityID    string `json:"entityId,omitempty"`
	Description string `json:"description,omitempty"`
	Kind        string `json:"kind,omitempty"`
	Portrait    string `json:"portrait,omitempty"`
}

// NewEditorState 创建空的编辑器状态树
func NewEditorState() *EditorState {
	return &EditorState{
		Root: RootNode{
			Type:     NodeRoot,
			Children: make([]*BlockNode, 0),
			Version:  NodeVersion,
		},
	}
}

// NewBlock 创建指定变体的空块节点
func NewBlock(blockType string) *BlockNode {
	return &BlockNode{
		Type:     blockType,
		Children: make([]*InlineNode, 0),
		Version:  NodeVersion,
	}
}

// NewTextRun 创建 text run 节点
func NewTextRun(text string, format int) *InlineNode {
	return &InlineNode{
		Type:    NodeText,
		Text:    text,
		Format:  format,
		Version: NodeVersion,
	}
}

// NewEntityRun 创建 entity run 节点，展示元数据为空串
func NewEntityRun(text, entityID string) *InlineNode {
	return &InlineNode{
		Type:     NodeEntity,
		Text:     text,
		EntityID: entityID,
		Version:  NodeVersion,
	}
}
