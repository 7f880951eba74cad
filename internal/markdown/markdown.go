// Package markdown bridges the flat paragraph model to Markdown text.
//
// The bridge is best-effort in both directions: Markdown constructs the
// flat model cannot carry (tables, lists, images) degrade to plain text
// on the way in, and no character escaping is applied on the way out.
package markdown

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/riverfjs/storytext-go/internal/types"
)

// StandardOptions goldmark 扩展配置
//
// 只启用删除线扩展。表格、任务列表等无法进入扁平模型的构造保持
// 关闭，让它们按普通文本降级而不是解析成丢不进模型的节点。
var StandardOptions = []goldmark.Option{
	goldmark.WithExtensions(
		extension.Strikethrough,
	),
}

// ToDocument 将 Markdown 文本解析为扁平文档
//
// 每个顶层块产出一个段落：标题进 heading、引用块进 quote、其余进
// paragraph。cfg.ExpandMentions 开启时先把 @[名称](id) 简写展开为
// 实体链接；entityLinks 开启时实体链接的标签文本记为实体出现。
func ToDocument(markdown string, cfg *types.Config, entityLinks bool) *types.Document {
	if cfg == nil {
		cfg = types.DefaultConfig()
	}
	if cfg.ExpandMentions {
		markdown = expandMentions(markdown, cfg.EntityURLScheme)
	}

	md := goldmark.New(StandardOptions...)
	source := []byte(markdown)
	reader := text.NewReader(source)
	node := md.Parser().Parse(reader)

	walker := newDocWalker(source, cfg, entityLinks)
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		return walker.Walk(n, entering)
	})

	return walker.Result()
}

// ParseAST 仅解析为 AST，不遍历
func ParseAST(markdown string) ast.Node {
	md := goldmark.New(StandardOptions...)
	source := []byte(markdown)
	return md.Parser().Parse(text.NewReader(source))
}
