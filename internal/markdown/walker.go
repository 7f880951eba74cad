package markdown

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"

	"github.com/riverfjs/storytext-go/internal/buffer"
	"github.com/riverfjs/storytext-go/internal/types"
)

// docWalker 遍历 goldmark AST，逐块生成扁平段落
type docWalker struct {
	source      []byte
	cfg         *types.Config
	entityLinks bool

	doc *types.Document
	buf *buffer.ParagraphBuffer

	// Inline state
	formatStack []string
	linkID      string // 当前实体链接的 id，空串表示不在实体链接内

	// Block-level state
	quoteDepth int
}

// newDocWalker 创建新的 docWalker
func newDocWalker(source []byte, cfg *types.Config, entityLinks bool) *docWalker {
	return &docWalker{
		source:      source,
		cfg:         cfg,
		entityLinks: entityLinks,
		doc:         &types.Document{Paragraphs: make([]*types.Paragraph, 0)},
		buf:         buffer.New(),
		formatStack: make([]string, 0),
	}
}

// Walk 遍历 AST 节点
func (w *docWalker) Walk(node ast.Node, entering bool) (ast.WalkStatus, error) {
	switch n := node.(type) {
	// --- Block elements ---
	case *ast.Paragraph:
		if !entering {
			w.flush(types.BlockParagraph)
		}

	case *ast.TextBlock:
		// 紧凑列表项的内容块，按普通段落降级
		if !entering {
			w.flush(types.BlockParagraph)
		}

	case *ast.Heading:
		if !entering {
			w.flush(types.BlockHeading)
		}

	case *ast.Blockquote:
		if entering {
			w.quoteDepth++
		} else {
			w.quoteDepth--
		}

	case *ast.FencedCodeBlock, *ast.CodeBlock:
		if entering {
			w.onCodeBlock(n)
			return ast.WalkSkipChildren, nil
		}

	case *ast.HTMLBlock:
		// 块级 HTML 忽略
		return ast.WalkSkipChildren, nil

	case *ast.ThematicBreak:
		// 分隔线没有文本表示，跳过

	// --- Inline elements ---
	case *ast.Text:
		if entering {
			w.onText(n)
		}

	case *ast.String:
		if entering {
			w.writeText(string(n.Value))
		}

	case *ast.CodeSpan:
		if entering {
			w.pushFormat("code")
			w.writeText(extractCodeSpanText(n, w.source))
			w.popFormat("code")
			// Skip children to avoid processing the text content twice
			return ast.WalkSkipChildren, nil
		}

	case *ast.Emphasis:
		// Level 1 = italic, Level 2 = bold
		tag := "italic"
		if n.Level == 2 {
			tag = "bold"
		}
		if entering {
			w.pushFormat(tag)
		} else {
			w.popFormat(tag)
		}

	case *east.Strikethrough:
		if entering {
			w.pushFormat("strikethrough")
		} else {
			w.popFormat("strikethrough")
		}

	case *ast.Link:
		if entering {
			w.onStartLink(n)
		} else {
			w.linkID = ""
		}

	case *ast.AutoLink:
		if entering {
			w.writeText(string(n.URL(w.source)))
			return ast.WalkSkipChildren, nil
		}

	case *ast.Image:
		// 图片仅保留替代文本，目标地址丢弃

	case *ast.RawHTML:
		if entering {
			w.onInlineHTML(n)
		}
	}

	return ast.WalkContinue, nil
}

// Result 返回解析出的扁平文档
func (w *docWalker) Result() *types.Document {
	return w.doc
}

// flush 结束当前块，产出一个段落
func (w *docWalker) flush(blockType string) {
	if w.quoteDepth > 0 {
		blockType = types.BlockQuote
	}
	w.doc.Paragraphs = append(w.doc.Paragraphs, w.buf.Build(blockType))
	w.buf.Reset()
}

// --- Text handling ---

func (w *docWalker) onText(n *ast.Text) {
	textContent := string(n.Segment.Value(w.source))

	// 段内换行折叠为空格：扁平段落里没有行的概念
	if n.SoftLineBreak() || n.HardLineBreak() {
		textContent += " "
	}

	w.writeText(textContent)
}

func (w *docWalker) writeText(text string) {
	if text == "" {
		return
	}
	if w.linkID != "" {
		w.buf.WriteEntity(text, w.linkID)
		return
	}
	w.buf.WriteText(text, w.formatStack)
}

func (w *docWalker) onStartLink(n *ast.Link) {
	if !w.entityLinks {
		return
	}
	// 实体链接的标签记为实体出现，普通链接只保留标签文本
	if id, ok := ParseEntityLink(string(n.Destination), w.cfg.EntityURLScheme); ok {
		w.linkID = id
	}
}

func (w *docWalker) onInlineHTML(n *ast.RawHTML) {
	html := string(n.Segments.Value(w.source))
	tag := strings.TrimSpace(strings.ToLower(html))

	if tag == "<u>" {
		w.pushFormat("underline")
	} else if tag == "</u>" {
		w.popFormat("underline")
	}
	// Other inline HTML is ignored
}

// --- Code block ---

func (w *docWalker) onCodeBlock(n ast.Node) {
	parts := make([]string, 0)
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		parts = append(parts, string(line.Value(w.source)))
	}

	rawCode := strings.Join(parts, "")

	// Strip single trailing newline
	rawCode = strings.TrimSuffix(rawCode, "\n")
	if rawCode == "" {
		return
	}

	w.buf.WriteText(rawCode, []string{"code"})
	w.flush(types.BlockParagraph)
}

// --- Format stack ---

func (w *docWalker) pushFormat(tag string) {
	w.formatStack = append(w.formatStack, tag)
}

func (w *docWalker) popFormat(tag string) {
	// Find the matching tag (search from top)
	for i := len(w.formatStack) - 1; i >= 0; i-- {
		if w.formatStack[i] == tag {
			w.formatStack = append(w.formatStack[:i], w.formatStack[i+1:]...)
			return
		}
	}
}

// --- Utilities ---

func extractCodeSpanText(n *ast.CodeSpan, source []byte) string {
	var buf strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if textNode, ok := c.(*ast.Text); ok {
			_, _ = buf.Write(textNode.Segment.Value(source))
		}
	}
	return buf.String()
}
