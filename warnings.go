package storytext

import (
	"log"
	"os"

	"github.com/riverfjs/storytext-go/internal/types"
)

// 导出类型别名
type Warning = types.Warning

// 警告代码
const (
	WarnOrphanReference       = types.WarnOrphanReference
	WarnOccurrenceOutOfBounds = types.WarnOccurrenceOutOfBounds
	WarnOccurrenceOverlap     = types.WarnOccurrenceOverlap
)

// WarningHandler 接收转换过程中的非致命警告
//
// 转换本身从不因为可疑输入失败：落不了位的信息被跳过，每次跳过
// 产生一条警告。未设置处理器时警告被丢弃。
type WarningHandler func(Warning)

// NewLogWarningHandler 返回将警告写入 logger 的处理器
//
// logger 为 nil 时写入标准错误。
func NewLogWarningHandler(logger *log.Logger) WarningHandler {
	if logger == nil {
		logger = log.New(os.Stderr, "[storytext] ", log.LstdFlags)
	}
	return func(w Warning) {
		logger.Printf("%s: %s (paragraph=%d entity=%q)", w.Code, w.Message, w.ParagraphIndex, w.EntityID)
	}
}
