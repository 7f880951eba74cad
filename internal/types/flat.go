package types

// 块变体标签，扁平模型与编辑器状态树共享
const (
	BlockParagraph = "paragraph"
	BlockHeading   = "heading"
	BlockQuote     = "quote"
)

// Document 扁平模型的顶层结构（存储/API 传输层使用）
type Document struct {
	Paragraphs []*Paragraph `json:"paragraphs"`
}

// Paragraph 单个扁平段落：纯文本 + 两条旁路注解列表
//
// Formatting 和 Associations 中的所有区间都以段落文本的
// UTF-16 code units 计量，区间为 [start, end)。
type Paragraph struct {
	Text         string         `json:"text"`
	Formatting   []FormatRange  `json:"formatting"`
	Associations []*Association `json:"associations"`
	Type         string         `json:"type,omitempty"`
}

// FormatRange 文本格式区间
type FormatRange struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Type  string `json:"type"` // bold|italic|underline|strikethrough|code
}

// Association 实体引用记录
//
// 同一实体在一个段落内的多次出现合并为一条记录，Occurrences 按
// 首次出现顺序（起始位置升序）排列。
type Association struct {
	ID          string       `json:"id"`
	Text        string       `json:"text"`
	Occurrences []Occurrence `json:"occurrences"`
}

// Occurrence 实体出现区间
type Occurrence struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// NewParagraph 创建指定类型的空段落，注解列表预先分配为空切片
func NewParagraph(paragraphType string) *Paragraph {
	return &Paragraph{
		Formatting:   make([]FormatRange, 0),
		Associations: make([]*Association, 0),
		Type:         paragraphType,
	}
}
