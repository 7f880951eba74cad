package buffer

import (
	"testing"
)

// TestWriteText_Plain 测试无格式文本写入
func TestWriteText_Plain(t *testing.T) {
	pb := New()
	pb.WriteText("hello", nil)
	p := pb.Build("paragraph")
	if p.Text != "hello" {
		t.Errorf("Text = %q, want \"hello\"", p.Text)
	}
	if len(p.Formatting) != 0 {
		t.Errorf("Formatting = %v, want empty", p.Formatting)
	}
	if len(p.Associations) != 0 {
		t.Errorf("Associations = %v, want empty", p.Associations)
	}
}

// TestWriteText_FormatRanges 测试每个格式标签产生一条区间
func TestWriteText_FormatRanges(t *testing.T) {
	pb := New()
	pb.WriteText("ab", nil)
	pb.WriteText("cd", []string{"bold", "italic"})
	p := pb.Build("paragraph")

	if p.Text != "abcd" {
		t.Errorf("Text = %q, want \"abcd\"", p.Text)
	}
	if len(p.Formatting) != 2 {
		t.Fatalf("len(Formatting) = %d, want 2", len(p.Formatting))
	}
	for i, wantType := range []string{"bold", "italic"} {
		r := p.Formatting[i]
		if r.Start != 2 || r.End != 4 || r.Type != wantType {
			t.Errorf("Formatting[%d] = %+v, want {2 4 %s}", i, r, wantType)
		}
	}
}

// TestWriteText_UTF16Offsets 测试补充平面字符的偏移按 2 个 code units 推进
func TestWriteText_UTF16Offsets(t *testing.T) {
	pb := New()
	pb.WriteText("📌", nil)
	pb.WriteText("x", []string{"bold"})
	p := pb.Build("paragraph")

	if len(p.Formatting) != 1 {
		t.Fatalf("len(Formatting) = %d, want 1", len(p.Formatting))
	}
	if r := p.Formatting[0]; r.Start != 2 || r.End != 3 {
		t.Errorf("Formatting[0] = {%d %d}, want {2 3}", r.Start, r.End)
	}
}

// TestWriteText_EmptyIgnored 测试空文本不产生区间
func TestWriteText_EmptyIgnored(t *testing.T) {
	pb := New()
	pb.WriteText("", []string{"bold"})
	p := pb.Build("paragraph")
	if p.Text != "" || len(p.Formatting) != 0 {
		t.Errorf("empty write left a trace: text=%q formatting=%v", p.Text, p.Formatting)
	}
}

// TestWriteEntity_MergeByID 测试同一 id 的多次出现合并为一条记录
func TestWriteEntity_MergeByID(t *testing.T) {
	pb := New()
	pb.WriteEntity("Anna", "c1")
	pb.WriteText(" met ", nil)
	pb.WriteEntity("Anna", "c1")
	p := pb.Build("paragraph")

	if p.Text != "Anna met Anna" {
		t.Errorf("Text = %q, want \"Anna met Anna\"", p.Text)
	}
	if len(p.Associations) != 1 {
		t.Fatalf("len(Associations) = %d, want 1", len(p.Associations))
	}
	a := p.Associations[0]
	if a.ID != "c1" || a.Text != "Anna" {
		t.Errorf("Association = {%s %s}, want {c1 Anna}", a.ID, a.Text)
	}
	if len(a.Occurrences) != 2 {
		t.Fatalf("len(Occurrences) = %d, want 2", len(a.Occurrences))
	}
	if o := a.Occurrences[0]; o.Start != 0 || o.End != 4 {
		t.Errorf("Occurrences[0] = {%d %d}, want {0 4}", o.Start, o.End)
	}
	if o := a.Occurrences[1]; o.Start != 9 || o.End != 13 {
		t.Errorf("Occurrences[1] = {%d %d}, want {9 13}", o.Start, o.End)
	}
}

// TestWriteEntity_FirstTextWins 测试记录保留首次写入的展示文本
func TestWriteEntity_FirstTextWins(t *testing.T) {
	pb := New()
	pb.WriteEntity("Anna", "c1")
	pb.WriteText(" / ", nil)
	pb.WriteEntity("Annie", "c1")
	p := pb.Build("paragraph")

	if len(p.Associations) != 1 {
		t.Fatalf("len(Associations) = %d, want 1", len(p.Associations))
	}
	if got := p.Associations[0].Text; got != "Anna" {
		t.Errorf("Association.Text = %q, want \"Anna\"", got)
	}
}

// TestWriteEntity_AdjacentExtends 测试紧邻的同 id 写入延长前一出现区间
func TestWriteEntity_AdjacentExtends(t *testing.T) {
	pb := New()
	pb.WriteEntity("An", "c1")
	pb.WriteEntity("na", "c1")
	p := pb.Build("paragraph")

	if len(p.Associations) != 1 {
		t.Fatalf("len(Associations) = %d, want 1", len(p.Associations))
	}
	occ := p.Associations[0].Occurrences
	if len(occ) != 1 {
		t.Fatalf("len(Occurrences) = %d, want 1", len(occ))
	}
	if occ[0].Start != 0 || occ[0].End != 4 {
		t.Errorf("Occurrences[0] = {%d %d}, want {0 4}", occ[0].Start, occ[0].End)
	}
}

// TestWriteEntity_FirstAppearanceOrder 测试记录按首次出现顺序排列
func TestWriteEntity_FirstAppearanceOrder(t *testing.T) {
	pb := New()
	pb.WriteEntity("Ben", "c2")
	pb.WriteText(" and ", nil)
	pb.WriteEntity("Anna", "c1")
	pb.WriteText(" and ", nil)
	pb.WriteEntity("Ben", "c2")
	p := pb.Build("paragraph")

	if len(p.Associations) != 2 {
		t.Fatalf("len(Associations) = %d, want 2", len(p.Associations))
	}
	if p.Associations[0].ID != "c2" || p.Associations[1].ID != "c1" {
		t.Errorf("association order = [%s %s], want [c2 c1]",
			p.Associations[0].ID, p.Associations[1].ID)
	}
}

// TestBuild_Type 测试段落类型透传
func TestBuild_Type(t *testing.T) {
	pb := New()
	pb.WriteText("q", nil)
	p := pb.Build("quote")
	if p.Type != "quote" {
		t.Errorf("Type = %q, want \"quote\"", p.Type)
	}
}

// TestBuild_EmptyParagraph 测试空缓冲区产生空段落与空注解列表
func TestBuild_EmptyParagraph(t *testing.T) {
	pb := New()
	p := pb.Build("paragraph")
	if p.Text != "" {
		t.Errorf("Text = %q, want \"\"", p.Text)
	}
	if p.Formatting == nil || p.Associations == nil {
		t.Error("annotation lists must be empty, not nil")
	}
}

// TestReset 测试重置后缓冲区可复用且不影响已构建的段落
func TestReset(t *testing.T) {
	pb := New()
	pb.WriteEntity("Anna", "c1")
	first := pb.Build("paragraph")

	pb.Reset()
	pb.WriteText("second", nil)
	pb.WriteEntity("Ben", "c2")
	second := pb.Build("paragraph")

	if first.Text != "Anna" || len(first.Associations) != 1 || first.Associations[0].ID != "c1" {
		t.Errorf("first paragraph changed after reset: %+v", first)
	}
	if second.Text != "secondBen" || len(second.Associations) != 1 || second.Associations[0].ID != "c2" {
		t.Errorf("second paragraph = %+v", second)
	}
	if o := second.Associations[0].Occurrences[0]; o.Start != 6 || o.End != 9 {
		t.Errorf("second occurrence = {%d %d}, want {6 9}", o.Start, o.End)
	}
}
