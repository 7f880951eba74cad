package markdown

import (
	"fmt"
	"sort"
	"strings"

	"github.com/riverfjs/storytext-go/internal/types"
	"github.com/riverfjs/storytext-go/internal/util"
)

// markEntity 实体出现在渲染管线中的标记类型
// 格式区间的类型直接沿用其标签，不会与它冲突。
const markEntity = "entity"

// FromDocument 将扁平文档渲染为 Markdown 文本
//
// heading 段落渲染为一级标题，quote 段落渲染为引用块，段落之间以
// 空行分隔。cfg.ExpandMentions 开启时实体出现渲染为 @[名称](id)
// 简写，否则渲染为完整实体链接；entityLinks 关闭时实体只保留文本。
// 文本不做 Markdown 转义，往返保真是尽力而为。
func FromDocument(doc *types.Document, cfg *types.Config, entityLinks bool) string {
	if cfg == nil {
		cfg = types.DefaultConfig()
	}
	if doc == nil {
		return ""
	}
	blocks := make([]string, 0, len(doc.Paragraphs))
	for _, p := range doc.Paragraphs {
		if p == nil {
			continue
		}
		blocks = append(blocks, renderParagraph(p, cfg, entityLinks))
	}
	return strings.Join(blocks, "\n\n")
}

func renderParagraph(p *types.Paragraph, cfg *types.Config, entityLinks bool) string {
	if fenced, ok := renderFencedCode(p); ok {
		return fenced
	}

	mw := newMarksWriter(p, cfg, entityLinks)
	var sb strings.Builder
	pos := 0
	for _, r := range p.Text {
		mw.writeMarks(&sb, pos)
		sb.WriteRune(r)
		pos += runeLen16(r)
	}
	mw.writeMarks(&sb, pos)

	body := sb.String()
	switch p.Type {
	case types.BlockHeading:
		return "# " + body
	case types.BlockQuote:
		return "> " + strings.ReplaceAll(body, "\n", "\n> ")
	}
	return body
}

// renderFencedCode 含换行且整段被单一 code 区间覆盖的段落输出为
// 围栏代码块，行内反引号写不了多行代码
func renderFencedCode(p *types.Paragraph) (string, bool) {
	if len(p.Formatting) != 1 || len(p.Associations) != 0 {
		return "", false
	}
	r := p.Formatting[0]
	if r.Type != "code" || r.Start != 0 || r.End != util.UTF16Len(p.Text) {
		return "", false
	}
	if !strings.Contains(p.Text, "\n") {
		return "", false
	}
	return "```\n" + p.Text + "\n```", true
}

// runeLen16 单个 rune 的 UTF-16 code unit 数
func runeLen16(r rune) int {
	if r > 0xFFFF {
		return 2
	}
	return 1
}

// spanMark 一条待渲染的标记区间，偏移为 UTF-16 code unit
type spanMark struct {
	Type  string
	Param string // 实体 id
	From  int
	To    int
}

// marksWriter 在逐 rune 输出时于断点处写入标记符号
//
// 区间交叉时闭合栈顶标记并在同一断点重新打开，保证输出的符号
// 总是良好嵌套的。
type marksWriter struct {
	scheme      string
	mentions    bool
	breakpoints map[int]struct {
		starts []*spanMark
		ends   []*spanMark
	}
	open []*spanMark
}

func newMarksWriter(p *types.Paragraph, cfg *types.Config, entityLinks bool) *marksWriter {
	mw := &marksWriter{
		scheme:   cfg.EntityURLScheme,
		mentions: cfg.ExpandMentions,
	}

	marks := paragraphMarks(p, entityLinks)
	if len(marks) == 0 {
		return mw
	}

	mw.breakpoints = make(map[int]struct {
		starts []*spanMark
		ends   []*spanMark
	})
	for _, mark := range marks {
		if mark.From >= mark.To {
			continue
		}
		from := mw.breakpoints[mark.From]
		from.starts = append(from.starts, mark)
		mw.breakpoints[mark.From] = from
		to := mw.breakpoints[mark.To]
		to.ends = append(to.ends, mark)
		mw.breakpoints[mark.To] = to
	}
	// 闭合顺序由栈决定，只有 starts 的顺序影响输出：长区间先开，
	// 嵌套时落在外层
	for _, marks := range mw.breakpoints {
		sort.Sort(sortedMarks(marks.starts))
	}
	return mw
}

// paragraphMarks 汇集段落的格式区间与实体出现
func paragraphMarks(p *types.Paragraph, entityLinks bool) []*spanMark {
	marks := make([]*spanMark, 0, len(p.Formatting)+len(p.Associations))
	for _, r := range p.Formatting {
		marks = append(marks, &spanMark{Type: r.Type, From: r.Start, To: r.End})
	}
	if entityLinks {
		for _, assoc := range p.Associations {
			if assoc == nil || assoc.ID == "" {
				continue
			}
			for _, occ := range assoc.Occurrences {
				marks = append(marks, &spanMark{
					Type:  markEntity,
					Param: assoc.ID,
					From:  occ.Start,
					To:    occ.End,
				})
			}
		}
	}
	return marks
}

func (mw *marksWriter) writeMarks(buf *strings.Builder, pos int) {
	if mw.breakpoints == nil {
		return
	}
	marks, ok := mw.breakpoints[pos]
	if !ok {
		return
	}

	closing := make(map[*spanMark]bool, len(marks.ends))
	for _, m := range marks.ends {
		closing[m] = true
	}

	// 自栈顶逐个弹出，直到在本断点结束的标记全部闭合；只有真正在
	// 栈上的标记才产生闭合符号。途中弹出的交叉标记随后按弹出的逆序
	// 重新打开，到各自原本的 To 断点再次闭合。
	var reopen []*spanMark
	for len(closing) > 0 && len(mw.open) > 0 {
		top := mw.open[len(mw.open)-1]
		mw.open = mw.open[:len(mw.open)-1]
		mw.writeMark(buf, top, false)
		if closing[top] {
			delete(closing, top)
		} else {
			reopen = append(reopen, top)
		}
	}
	for i := len(reopen) - 1; i >= 0; i-- {
		mw.writeMark(buf, reopen[i], true)
		mw.open = append(mw.open, reopen[i])
	}

	for _, m := range marks.starts {
		mw.writeMark(buf, m, true)
		mw.open = append(mw.open, m)
	}
}

func (mw *marksWriter) writeMark(buf *strings.Builder, m *spanMark, start bool) {
	switch m.Type {
	case "bold":
		buf.WriteString("**")
	case "italic":
		buf.WriteString("*")
	case "strikethrough":
		buf.WriteString("~~")
	case "underline":
		if start {
			buf.WriteString("<u>")
		} else {
			buf.WriteString("</u>")
		}
	case "code":
		buf.WriteString("`")
	case markEntity:
		if start {
			if mw.mentions {
				buf.WriteString("@[")
			} else {
				buf.WriteString("[")
			}
		} else {
			if mw.mentions {
				fmt.Fprintf(buf, "](%s)", m.Param)
			} else {
				fmt.Fprintf(buf, "](%s)", EntityLink(mw.scheme, m.Param))
			}
		}
	}
	// Unknown mark types produce no symbols
}

type sortedMarks []*spanMark

func (a sortedMarks) Len() int      { return len(a) }
func (a sortedMarks) Swap(i, j int) { a[i], a[j] = a[j], a[i] }
func (a sortedMarks) Less(i, j int) bool {
	li := a[i].To - a[i].From
	lj := a[j].To - a[j].From
	if li == lj {
		return a[i].Type < a[j].Type
	}
	return li > lj
}
