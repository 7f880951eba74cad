package bitmask

import (
	"testing"

	"github.com/riverfjs/storytext-go/internal/types"
)

// equalStrings 比较两个字符串切片是否逐项相等
func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// markTypes 提取 mark 描述符的类型名
func markTypes(marks []types.Mark) []string {
	names := make([]string, 0, len(marks))
	for _, m := range marks {
		names = append(names, m.Type)
	}
	return names
}

// TestFlagValues 测试各标志位的数值
func TestFlagValues(t *testing.T) {
	cases := []struct {
		flag int
		want int
	}{
		{Bold, 1},
		{Italic, 2},
		{Strikethrough, 4},
		{Underline, 8},
		{Code, 16},
	}
	for _, c := range cases {
		if c.flag != c.want {
			t.Errorf("flag = %d, want %d", c.flag, c.want)
		}
	}
}

// TestFormatTypes_FixedOrder 测试解码顺序固定为 bold, italic, underline, strikethrough
func TestFormatTypes_FixedOrder(t *testing.T) {
	got := FormatTypes(Bold | Italic | Strikethrough | Underline)
	want := []string{"bold", "italic", "underline", "strikethrough"}
	if !equalStrings(got, want) {
		t.Errorf("FormatTypes(15) = %v, want %v", got, want)
	}
}

// TestFormatTypes_WithCode 测试 code 标志排在最后
func TestFormatTypes_WithCode(t *testing.T) {
	got := FormatTypes(Bold | Code)
	want := []string{"bold", "code"}
	if !equalStrings(got, want) {
		t.Errorf("FormatTypes(17) = %v, want %v", got, want)
	}
}

// TestFormatTypes_Zero 测试零掩码解码为空
func TestFormatTypes_Zero(t *testing.T) {
	if got := FormatTypes(0); len(got) != 0 {
		t.Errorf("FormatTypes(0) = %v, want empty", got)
	}
}

// TestFromFormatTypes_UnknownIgnored 测试未知标签被忽略
func TestFromFormatTypes_UnknownIgnored(t *testing.T) {
	got := FromFormatTypes([]string{"bold", "blink", "italic"})
	if got != Bold|Italic {
		t.Errorf("FromFormatTypes() = %d, want %d", got, Bold|Italic)
	}
}

// TestRoundTrip_SharedBits 测试 {1,2,4,8} 组合掩码的编解码恒等性
func TestRoundTrip_SharedBits(t *testing.T) {
	for mask := 0; mask <= 15; mask++ {
		if got := FromFormatTypes(FormatTypes(mask)); got != mask {
			t.Errorf("FromFormatTypes(FormatTypes(%d)) = %d, want %d", mask, got, mask)
		}
	}
}

// TestRoundTrip_AllFlags 测试包含 code 的掩码经 format-type 路径无损
func TestRoundTrip_AllFlags(t *testing.T) {
	for mask := 0; mask <= 31; mask++ {
		if got := FromFormatTypes(FormatTypes(mask)); got != mask {
			t.Errorf("FromFormatTypes(FormatTypes(%d)) = %d, want %d", mask, got, mask)
		}
	}
}

// TestMarks_FixedOrder 测试 mark 解码顺序与命名
func TestMarks_FixedOrder(t *testing.T) {
	got := markTypes(Marks(Bold | Italic | Strikethrough | Underline))
	want := []string{"bold", "italic", "underline", "strike"}
	if !equalStrings(got, want) {
		t.Errorf("Marks(15) = %v, want %v", got, want)
	}
}

// TestMarks_CodeDropped 测试 mark 路径丢弃 code 标志
func TestMarks_CodeDropped(t *testing.T) {
	got := markTypes(Marks(Bold | Code))
	want := []string{"bold"}
	if !equalStrings(got, want) {
		t.Errorf("Marks(17) = %v, want %v", got, want)
	}
}

// TestMarks_Zero 测试零掩码不产生 mark
func TestMarks_Zero(t *testing.T) {
	if got := Marks(0); len(got) != 0 {
		t.Errorf("Marks(0) = %v, want empty", got)
	}
}

// TestFromMarks_Strike 测试 strike mark 映射回 strikethrough 位
func TestFromMarks_Strike(t *testing.T) {
	got := FromMarks([]types.Mark{{Type: "strike"}})
	if got != Strikethrough {
		t.Errorf("FromMarks(strike) = %d, want %d", got, Strikethrough)
	}
}

// TestFromMarks_UnknownIgnored 测试未知 mark 类型被忽略
func TestFromMarks_UnknownIgnored(t *testing.T) {
	got := FromMarks([]types.Mark{{Type: "bold"}, {Type: "highlight"}})
	if got != Bold {
		t.Errorf("FromMarks() = %d, want %d", got, Bold)
	}
}

// TestMarkRoundTrip_LossyCode 测试 mark 路径的有损往返：17 → 1
func TestMarkRoundTrip_LossyCode(t *testing.T) {
	if got := FromMarks(Marks(Bold | Code)); got != Bold {
		t.Errorf("FromMarks(Marks(17)) = %d, want %d", got, Bold)
	}
}

// TestMarkRoundTrip_SharedBits 测试 {1,2,4,8} 组合经 mark 路径无损
func TestMarkRoundTrip_SharedBits(t *testing.T) {
	for mask := 0; mask <= 15; mask++ {
		if got := FromMarks(Marks(mask)); got != mask {
			t.Errorf("FromMarks(Marks(%d)) = %d, want %d", mask, got, mask)
		}
	}
}

// TestFlag_Lookup 测试标签到标志位的查找
func TestFlag_Lookup(t *testing.T) {
	if got := Flag("underline"); got != Underline {
		t.Errorf("Flag(\"underline\") = %d, want %d", got, Underline)
	}
	if got := Flag("strike"); got != 0 {
		t.Errorf("Flag(\"strike\") = %d, want 0 (mark name, not a format tag)", got)
	}
	if got := Flag(""); got != 0 {
		t.Errorf("Flag(\"\") = %d, want 0", got)
	}
}
