package storytext

import (
	"strings"

	"github.com/riverfjs/storytext-go/internal/markdown"
)

// FromMarkdown 使用默认选项将 Markdown 文本解析为扁平文档
//
// 每个顶层块产出一个段落：标题进 heading、引用块进 quote、其余进
// paragraph。@[名称](id) 提及简写与实体链接被记为实体出现；表格、
// 列表等扁平模型装不下的构造降级为纯文本。
func FromMarkdown(md string, opts ...Option) *Document {
	return converterFor(opts).FromMarkdown(md)
}

// ToMarkdown 使用默认选项将扁平文档渲染为 Markdown 文本
//
// 与 FromMarkdown 互为尽力而为的逆操作：规范形 Markdown 经解析
// 再渲染后不变，但文本本身不做 Markdown 转义。
func ToMarkdown(doc *Document, opts ...Option) string {
	return converterFor(opts).ToMarkdown(doc)
}

// PlainText 提取文档的纯文本，段落之间以空行连接
//
// 所有注解被丢弃，实体出现只留下落在文本里的名字。
func PlainText(doc *Document) string {
	if doc == nil {
		return ""
	}
	parts := make([]string, 0, len(doc.Paragraphs))
	for _, p := range doc.Paragraphs {
		if p == nil {
			continue
		}
		parts = append(parts, p.Text)
	}
	return strings.Join(parts, "\n\n")
}

// EntityLink 构造实体引用链接，如 story://entity/c1
//
// Markdown 桥用这种链接在普通链接语法里携带实体 id。
func EntityLink(scheme, id string) string {
	return markdown.EntityLink(scheme, id)
}

// ParseEntityLink 如果 URL 是 <scheme>://entity/<id>，返回 id
func ParseEntityLink(url, scheme string) (string, bool) {
	return markdown.ParseEntityLink(url, scheme)
}
