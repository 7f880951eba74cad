package storytext

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/riverfjs/storytext-go/internal/types"
)

// ErrMalformedInput 输入无法解析为对应模型时由 JSON 边界返回
//
// 用 errors.Is 判别。内存内的模型转换从不返回错误：装不下的信息
// 被降级或经 WarningHandler 上报，只有 JSON 解析层会失败。
var ErrMalformedInput = errors.New("storytext: malformed input")

// ParseDocument 解析扁平文档 JSON
//
// 解析后的段落保证注解列表非 nil，缺失或为 null 的列表补为空。
func ParseDocument(data []byte) (*Document, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformedInput)
	}
	if !gjson.GetBytes(data, "paragraphs").Exists() {
		return nil, fmt.Errorf("%w: missing paragraphs field", ErrMalformedInput)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	if doc.Paragraphs == nil {
		doc.Paragraphs = make([]*Paragraph, 0)
	}
	for _, p := range doc.Paragraphs {
		if p == nil {
			continue
		}
		if p.Formatting == nil {
			p.Formatting = make([]FormatRange, 0)
		}
		if p.Associations == nil {
			p.Associations = make([]*Association, 0)
		}
	}
	return &doc, nil
}

// MarshalDocument 将扁平文档序列化为 JSON
//
// 注解列表始终以数组输出，nil 列表写作 []；nil 段落被丢弃。
func MarshalDocument(doc *Document) ([]byte, error) {
	if doc == nil {
		doc = &Document{}
	}
	shaped := Document{Paragraphs: make([]*Paragraph, 0, len(doc.Paragraphs))}
	for _, p := range doc.Paragraphs {
		if p == nil {
			continue
		}
		np := *p
		if np.Formatting == nil {
			np.Formatting = make([]FormatRange, 0)
		}
		if np.Associations == nil {
			np.Associations = make([]*Association, 0)
		} else {
			assocs := make([]*Association, 0, len(np.Associations))
			for _, assoc := range np.Associations {
				if assoc == nil {
					continue
				}
				na := *assoc
				if na.Occurrences == nil {
					na.Occurrences = make([]Occurrence, 0)
				}
				assocs = append(assocs, &na)
			}
			np.Associations = assocs
		}
		shaped.Paragraphs = append(shaped.Paragraphs, &np)
	}
	return json.Marshal(&shaped)
}

// ParseEditorState 解析编辑器状态树 JSON
func ParseEditorState(data []byte) (*EditorState, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformedInput)
	}
	if !gjson.GetBytes(data, "root").IsObject() {
		return nil, fmt.Errorf("%w: missing root node", ErrMalformedInput)
	}
	var state EditorState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	if state.Root.Children == nil {
		state.Root.Children = make([]*BlockNode, 0)
	}
	for _, block := range state.Root.Children {
		if block != nil && block.Children == nil {
			block.Children = make([]*InlineNode, 0)
		}
	}
	return &state, nil
}

// MarshalEditorState 将编辑器状态树序列化为 JSON
//
// 根节点与块的子列表始终以数组输出，手工构造时缺省的类型判别值
// 与版本号会被补上。
func MarshalEditorState(state *EditorState) ([]byte, error) {
	if state == nil {
		state = types.NewEditorState()
	}
	shaped := *state
	if shaped.Root.Type == "" {
		shaped.Root.Type = types.NodeRoot
	}
	if shaped.Root.Version == 0 {
		shaped.Root.Version = types.NodeVersion
	}
	children := make([]*BlockNode, 0, len(shaped.Root.Children))
	for _, block := range shaped.Root.Children {
		if block == nil {
			continue
		}
		nb := *block
		if nb.Children == nil {
			nb.Children = make([]*InlineNode, 0)
		}
		if nb.Version == 0 {
			nb.Version = types.NodeVersion
		}
		children = append(children, &nb)
	}
	shaped.Root.Children = children
	return json.Marshal(&shaped)
}

// ParseTiptapDocument 解析 mark 树文档 JSON
//
// 顶层节点的 type 必须是 "doc"。
func ParseTiptapDocument(data []byte) (*TiptapDocument, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformedInput)
	}
	if gjson.GetBytes(data, "type").String() != types.TiptapDoc {
		return nil, fmt.Errorf("%w: not a tiptap document", ErrMalformedInput)
	}
	var doc TiptapDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	if doc.Content == nil {
		doc.Content = make([]*TiptapParagraph, 0)
	}
	for _, tp := range doc.Content {
		if tp != nil && tp.Content == nil {
			tp.Content = make([]*TiptapText, 0)
		}
	}
	return &doc, nil
}

// MarshalTiptapDocument 将 mark 树文档序列化为 JSON
func MarshalTiptapDocument(doc *TiptapDocument) ([]byte, error) {
	if doc == nil {
		doc = types.NewTiptapDocument()
	}
	shaped := *doc
	if shaped.Type == "" {
		shaped.Type = types.TiptapDoc
	}
	content := make([]*TiptapParagraph, 0, len(shaped.Content))
	for _, tp := range shaped.Content {
		if tp == nil {
			continue
		}
		np := *tp
		if np.Type == "" {
			np.Type = types.TiptapParagraphNode
		}
		if np.Content == nil {
			np.Content = make([]*TiptapText, 0)
		}
		content = append(content, &np)
	}
	shaped.Content = content
	return json.Marshal(&shaped)
}

// BlockFromTiptapJSON 将包装单个段落的 mark 树文档 JSON 解析为块节点
//
// 输入是 doc 形状 {"type":"doc","content":[<paragraph>]}。顶层 type
// 不是 "doc" 或缺少 content 数组时返回 ErrMalformedInput；只转换
// 首个段落，多余的段落忽略，content 为空时退化为空段落块。转换本身
// 与 TiptapParagraphToBlock 一致，不分配块 key。
func BlockFromTiptapJSON(data string, opts ...Option) (*BlockNode, error) {
	if !gjson.Valid(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformedInput)
	}
	if gjson.Get(data, "type").String() != types.TiptapDoc {
		return nil, fmt.Errorf("%w: not a tiptap document", ErrMalformedInput)
	}
	if !gjson.Get(data, "content").Exists() {
		return nil, fmt.Errorf("%w: missing content array", ErrMalformedInput)
	}
	var doc TiptapDocument
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	var tp *TiptapParagraph
	if len(doc.Content) > 0 {
		tp = doc.Content[0]
	}
	return converterFor(opts).TiptapParagraphToBlock(tp), nil
}

// BlockToTiptapJSON 将块节点序列化为包装单个段落的 mark 树文档 JSON
//
// 输出与 BlockFromTiptapJSON 的输入形状一致：段落包在
// {"type":"doc","content":[...]} 里。
func BlockToTiptapJSON(block *BlockNode, opts ...Option) (string, error) {
	doc := types.NewTiptapDocument()
	doc.Content = append(doc.Content, converterFor(opts).BlockToTiptapParagraph(block))
	data, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
