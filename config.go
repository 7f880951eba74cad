package storytext

import (
	"sync"

	"github.com/riverfjs/storytext-go/internal/types"
)

// 导出类型别名
type Config = types.Config

var (
	defaultConfig     *Config
	defaultConfigOnce sync.Once
)

// DefaultConfig returns the default conversion configuration (singleton).
func DefaultConfig() *Config {
	defaultConfigOnce.Do(func() {
		defaultConfig = types.DefaultConfig()
	})
	return defaultConfig
}
