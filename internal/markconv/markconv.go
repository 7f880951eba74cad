// Package markconv converts between the mark-tree document model and the
// editor-state block tree.
package markconv

import (
	"github.com/riverfjs/storytext-go/internal/identity"
	"github.com/riverfjs/storytext-go/internal/types"
)

// Converter mark-tree 文档与编辑器状态树之间的双向转换器
//
// 零值可用：文档级转换的块 key 默认按顺序派生。
type Converter struct {
	// Keys 文档级转换时为块生成 key，nil 时使用 identity.SequentialKeys
	Keys identity.KeyGenerator
}

func (c *Converter) keys(startingKeyID string) identity.KeyGenerator {
	if c.Keys != nil {
		return c.Keys
	}
	return identity.SequentialKeys(startingKeyID)
}

// DocumentToBlocks 将 mark-tree 文档转换为块序列并分配 key
//
// key 只在文档级转换时生成：第 i 个块拿到 BlockKey(i)。默认生成器
// 从 startingKeyID 派生（"5" 产生 5_0、5_1…，空串按 "1" 处理）。
// nil 文档产生空切片。
func (c *Converter) DocumentToBlocks(doc *types.TiptapDocument, startingKeyID string) []*types.BlockNode {
	blocks := make([]*types.BlockNode, 0)
	if doc == nil {
		return blocks
	}
	keys := c.keys(startingKeyID)
	for i, tp := range doc.Content {
		block := c.ParagraphToBlock(tp)
		block.Key = keys.BlockKey(i)
		blocks = append(blocks, block)
	}
	return blocks
}

// BlocksToDocument 将块序列转换为 mark-tree 文档
//
// 块 key 不进入 mark-tree 模型，nil 块降级为空段落。
func (c *Converter) BlocksToDocument(blocks []*types.BlockNode) *types.TiptapDocument {
	doc := types.NewTiptapDocument()
	for _, block := range blocks {
		doc.Content = append(doc.Content, c.BlockToParagraph(block))
	}
	return doc
}
