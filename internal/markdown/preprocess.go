package markdown

import (
	"regexp"
	"strings"
)

var (
	// codeRegionRe 匹配代码块和行内代码
	codeRegionRe = regexp.MustCompile("(```[\\s\\S]*?```|`[^`\\n]+`)")

	// mentionRe 匹配 @[名称](id) 提及简写
	mentionRe = regexp.MustCompile(`@\[([^\]]+)\]\(([^)\s]+)\)`)
)

// expandMentions 将 @[名称](id) 简写展开为实体链接
// 跳过代码块和行内代码中的内容
func expandMentions(text, scheme string) string {
	parts := codeRegionRe.Split(text, -1)
	matches := codeRegionRe.FindAllString(text, -1)

	var result strings.Builder
	for i, part := range parts {
		result.WriteString(mentionRe.ReplaceAllStringFunc(part, func(m string) string {
			sub := mentionRe.FindStringSubmatch(m)
			return "[" + sub[1] + "](" + EntityLink(scheme, sub[2]) + ")"
		}))

		// 代码区域原样接回
		if i < len(matches) {
			result.WriteString(matches[i])
		}
	}

	return result.String()
}

// EntityLink 构造实体引用链接，如 story://entity/c1
func EntityLink(scheme, id string) string {
	return scheme + "://entity/" + id
}

// ParseEntityLink 如果 URL 是 <scheme>://entity/<id>，返回 id，否则返回空
func ParseEntityLink(url, scheme string) (string, bool) {
	prefix := scheme + "://entity/"
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}
	id := strings.TrimPrefix(url, prefix)
	if id == "" {
		return "", false
	}
	return id, true
}
