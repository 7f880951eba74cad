package types

// Warning codes reported during flat→tree conversion.
const (
	WarnOrphanReference       = "orphan_reference"
	WarnOccurrenceOutOfBounds = "occurrence_out_of_bounds"
	WarnOccurrenceOverlap     = "overlapping_occurrence"
)

// Warning 转换过程中检测到的非致命问题
//
// 转换本身从不因此失败；有问题的注解被跳过，内容以纯文本保留。
// ParagraphIndex 在文档级转换中为段落下标，单段落转换中为 -1。
type Warning struct {
	Code           string
	ParagraphIndex int
	EntityID       string
	Message        string
}
