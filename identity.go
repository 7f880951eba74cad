package storytext

import "github.com/riverfjs/storytext-go/internal/identity"

// KeyGenerator 为文档级 mark 树转换产出块 key
type KeyGenerator = identity.KeyGenerator

// SequentialKeys 返回默认的顺序 key 生成器：key 形如 {base}_{index}，
// base 为空串时按 "1" 处理
func SequentialKeys(base string) KeyGenerator {
	return identity.SequentialKeys(base)
}

// ULIDKeys 返回每个块生成一个新 ULID 的生成器
//
// 适合把块插入既有文档的调用方，顺序派生的 key 会与已占用的
// key 冲突。
func ULIDKeys() KeyGenerator {
	return identity.ULIDKeys()
}
