package storytext

// ParagraphLength 计算段落文本的有效长度（UTF-16 code units）
//
// 注解不占长度：格式区间与实体出现只是文本上的旁路标注，所以
// 计数就是文本的 UTF-16 长度。
func ParagraphLength(p *Paragraph) int {
	if p == nil {
		return 0
	}
	return UTF16Len(p.Text)
}

// DocumentLength 计算文档的有效长度（UTF-16 code units）
//
// 段落之间按一个空行（两个换行符）计，与 PlainText 输出的长度
// 一致。
func DocumentLength(doc *Document) int {
	if doc == nil {
		return 0
	}
	total := 0
	count := 0
	for _, p := range doc.Paragraphs {
		if p == nil {
			continue
		}
		total += UTF16Len(p.Text)
		count++
	}
	if count > 1 {
		total += 2 * (count - 1)
	}
	return total
}
