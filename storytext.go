// Package storytext 在三种富文本文档模型之间做双向转换
//
// 这个包服务于同一份叙事文本的三种表示：编辑器使用的状态树
// （位掩码格式 + 实体引用节点）、协作编辑器使用的 mark 树（命名
// mark 数组 + 段落对齐属性），以及存储与 API 传输使用的扁平段落
// 模型（纯文本 + UTF-16 区间注解）。
//
// 核心功能：
//   - 扁平文档 ⇄ 编辑器状态树（实体出现、格式区间、块变体）
//   - mark 树 ⇄ 编辑器状态树（mark 折叠、对齐属性、块 key 分配）
//   - Markdown 导入导出（@[名称](id) 提及简写、实体链接）
//   - 段落工具：拆分、合并、裁剪、规范化
//
// 所有偏移量一律以 UTF-16 code units 计量，补充平面字符占两个
// code unit。内存内的转换从不失败：携带不动的信息被丢弃或降级，
// 可疑输入通过 WarningHandler 上报；只有 JSON 边界会返回错误。
//
// 示例：
//
//	// 扁平文档转状态树
//	state := storytext.FlatToEditorState(doc)
//
//	// 带警告收集的转换
//	conv := storytext.NewConverter(
//	    storytext.WithWarningHandler(storytext.NewLogWarningHandler(nil)),
//	)
//	state = conv.FlatToEditorState(doc)
//
//	// Markdown 导入
//	doc = storytext.FromMarkdown("met @[Anna](c1) in **bold** town")
package storytext

import (
	"github.com/riverfjs/storytext-go/internal/flatconv"
	"github.com/riverfjs/storytext-go/internal/markconv"
	"github.com/riverfjs/storytext-go/internal/markdown"
)

// Converter 携带配置的模型转换器
//
// 转换方法都是纯函数，Converter 构造后不可变，可并发使用。
// 包级转换函数等价于在默认 Converter 上调用对应方法。
type Converter struct {
	opts *ConvertOptions
}

// NewConverter 创建应用了给定选项的转换器
func NewConverter(opts ...Option) *Converter {
	return &Converter{opts: applyOptions(opts...)}
}

var defaultConverter = NewConverter()

// converterFor 包级函数的转换器：无选项时复用默认实例
func converterFor(opts []Option) *Converter {
	if len(opts) == 0 {
		return defaultConverter
	}
	return NewConverter(opts...)
}

func (c *Converter) flat() *flatconv.Converter {
	return &flatconv.Converter{
		Config:          c.opts.Config,
		ExactFormatting: c.opts.ExactFormatting,
		Warn:            c.opts.WarningHandler,
	}
}

func (c *Converter) mark() *markconv.Converter {
	return &markconv.Converter{Keys: c.opts.KeyGenerator}
}

// FlatToEditorState 将扁平文档转换为编辑器状态树
//
// 逐段落转换，输出顺序与输入顺序一致。无法落位的出现区间被跳过
// 并经 WarningHandler 上报，警告携带段落下标。
func (c *Converter) FlatToEditorState(doc *Document) *EditorState {
	return c.flat().DocumentToEditorState(doc)
}

// EditorStateToFlat 将编辑器状态树展平为扁平文档
func (c *Converter) EditorStateToFlat(state *EditorState) *Document {
	return c.flat().EditorStateToDocument(state)
}

// ParagraphToBlock 将单个扁平段落转换为块节点
//
// 单段落转换产生的警告不携带段落下标（ParagraphIndex 为 -1）。
func (c *Converter) ParagraphToBlock(p *Paragraph) *BlockNode {
	return c.flat().ParagraphToBlock(p)
}

// BlockToParagraph 将块节点转换为单个扁平段落
func (c *Converter) BlockToParagraph(block *BlockNode) *Paragraph {
	return c.flat().BlockToParagraph(block)
}

// TiptapToBlocks 将 mark 树文档转换为块序列
//
// 这是唯一分配块 key 的操作：第 i 个块拿到生成器的 BlockKey(i)。
// 默认生成器从 startingKeyID 派生（"5" 产生 5_0、5_1…，空串按
// "1" 处理），可用 WithKeyGenerator 替换。
func (c *Converter) TiptapToBlocks(doc *TiptapDocument, startingKeyID string) []*BlockNode {
	return c.mark().DocumentToBlocks(doc, startingKeyID)
}

// BlocksToTiptap 将块序列转换为 mark 树文档
func (c *Converter) BlocksToTiptap(blocks []*BlockNode) *TiptapDocument {
	return c.mark().BlocksToDocument(blocks)
}

// TiptapParagraphToBlock 将单个 mark 树段落转换为块节点，不分配 key
func (c *Converter) TiptapParagraphToBlock(tp *TiptapParagraph) *BlockNode {
	return c.mark().ParagraphToBlock(tp)
}

// BlockToTiptapParagraph 将块节点转换为单个 mark 树段落
func (c *Converter) BlockToTiptapParagraph(block *BlockNode) *TiptapParagraph {
	return c.mark().BlockToParagraph(block)
}

// FromMarkdown 将 Markdown 文本解析为扁平文档
func (c *Converter) FromMarkdown(md string) *Document {
	return markdown.ToDocument(md, c.opts.Config, c.opts.EntityLinks)
}

// ToMarkdown 将扁平文档渲染为 Markdown 文本
func (c *Converter) ToMarkdown(doc *Document) string {
	return markdown.FromDocument(doc, c.opts.Config, c.opts.EntityLinks)
}
