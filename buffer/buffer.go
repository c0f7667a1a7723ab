// Package buffer 封装写缓冲类型与批量写入的数据描述.
package buffer

// Buffer 是基于[]byte的写缓冲类型，长度不会超过创建时的容量.
type Buffer []byte

// New 创建容量为 capacity 的空缓冲.
func New(capacity int) Buffer {
	return make(Buffer, 0, capacity)
}

// Fits 判断在当前内容后追加 n 个字节是否仍在容量之内.
func (b Buffer) Fits(n int) bool {
	return len(b)+n <= cap(b)
}

// FitsEmpty 判断清空后的缓冲是否能容纳 n 个字节.
func (b Buffer) FitsEmpty(n int) bool {
	return n <= cap(b)
}

// Append 将 data 追加到缓冲尾部，调用方需保证容量足够.
func (b *Buffer) Append(data []byte) {
	*b = append(*b, data...)
}

// Reset 清空缓冲内容，保留容量.
func (b *Buffer) Reset() {
	*b = (*b)[:0]
}

// Len 返回缓冲中尚未刷出的字节数.
func (b Buffer) Len() int {
	return len(b)
}

// Cap 返回缓冲容量.
func (b Buffer) Cap() int {
	return cap(b)
}

// Bytes 以原生切片形式返回缓冲内容.
func (b Buffer) Bytes() []byte {
	return b
}
