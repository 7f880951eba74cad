package types

// Config 转换配置
type Config struct {
	// HeadingTag flat→tree 方向 heading 块携带的层级标签
	HeadingTag string
	// EntityURLScheme markdown 桥接中实体链接使用的 URL scheme
	EntityURLScheme string
	// ExpandMentions markdown 导入时是否展开 @[name](id) 提及简写
	ExpandMentions bool
}

// DefaultConfig 返回默认转换配置
func DefaultConfig() *Config {
	return &Config{
		HeadingTag:      "h1",
		EntityURLScheme: "story",
		ExpandMentions:  true,
	}
}
