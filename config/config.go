package config

const (
	DEFAULT_BUFFER_SIZE = 64 * 1024	// 默认的写缓冲容量，参考常见文件块大小设置为64KB
	LARGE_WRITE_THRESHOLD = 1024 * 1024	// 单次写入超过该大小时不再经过写缓冲，直接写入文件
)
