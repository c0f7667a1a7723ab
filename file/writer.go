// Package file 实现带内存写缓冲的文件写者.
package file

// Writer 定义带缓冲的写文件操作
type Writer interface {
	// Append 将 data 追加到 写缓冲，空间不足时先将已缓冲内容刷到文件
	Append(data []byte) error
	// AppendDirect 在刷出已缓冲内容后将 data 直接写入文件，不经过 写缓冲
	AppendDirect(data []byte) error
	// Flush 将 写缓冲 内容同步到 文件系统
	Flush() error
	// Sync flush 文件系统 buffer，保证内容被写入磁盘
	Sync() error
	// SetBufferSize 重建容量为 size 的 写缓冲，重建前先刷出已缓冲内容
	SetBufferSize(size int) error
	// Buffered 返回 写缓冲 中尚未刷出的字节数
	Buffered() int
	// Close 关闭文件
	Close() error
}
