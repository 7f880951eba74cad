package storytext

import "github.com/riverfjs/storytext-go/internal/bitmask"

// 格式标志位。text run 的格式掩码是所应用标志的按位或。
const (
	FormatBold          = bitmask.Bold
	FormatItalic        = bitmask.Italic
	FormatStrikethrough = bitmask.Strikethrough
	FormatUnderline     = bitmask.Underline
	FormatCode          = bitmask.Code
)

// FormatTypes 将格式掩码解码为标签序列
//
// 解码总是按 bold、italic、underline、strikethrough、code 的固定
// 顺序探测标志位，与掩码的构造方式无关。
func FormatTypes(mask int) []string {
	return bitmask.FormatTypes(mask)
}

// FormatFlag 返回格式标签对应的标志位，未知标签返回 0
func FormatFlag(tag string) int {
	return bitmask.Flag(tag)
}

// FormatMask 将格式标签序列编码为掩码，未知标签被忽略
func FormatMask(tags []string) int {
	return bitmask.FromFormatTypes(tags)
}
