package file

import (
	"log"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/goleveldb/filewriter/buffer"
	"github.com/goleveldb/filewriter/config"
	"github.com/goleveldb/filewriter/status"
)

var (
	closedError          = errors.New("file is closed")
	invalidSizeError     = errors.New("buffer size must be positive")
	unknownOpenModeError = errors.New("unknown open mode")
)

var _ Writer = (*writerImpl)(nil)

// NewWriter 根据文件名与打开模式创建写者，必要时创建缺失的父目录.
// bufferSize 不为正数时使用默认缓冲容量.
func NewWriter(fileName string, mode status.Mode, bufferSize int) (Writer, error) {
	if bufferSize <= 0 {
		bufferSize = config.DEFAULT_BUFFER_SIZE
	}

	var flag int
	switch mode {
	case status.ModeAppend:
		flag = os.O_APPEND | os.O_CREATE | os.O_WRONLY
	case status.ModeWrite:
		flag = os.O_TRUNC | os.O_CREATE | os.O_WRONLY
	default:
		return nil, unknownOpenModeError
	}

	if dir := filepath.Dir(fileName); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return nil, errors.Wrap(err, "create parent dir error")
		}
	}

	file, err := os.OpenFile(fileName, flag, os.ModePerm)
	if err != nil {
		return nil, errors.Wrap(err, "open file error")
	}

	writer := &writerImpl{
		file: file,
		buf:  buffer.New(bufferSize),
	}

	return writer, nil
}

type writerImpl struct {
	file *os.File
	buf  buffer.Buffer

	closed bool
}

// Append 将 data 追加到 写缓冲.
// 剩余空间不足时先将已缓冲内容刷到文件；data 本身超出缓冲容量时不再进入
// 缓冲，在刷出已缓冲内容后直接写文件，保证落盘顺序与调用顺序一致.
func (w *writerImpl) Append(data []byte) error {
	if w.closed {
		return closedError
	}

	if w.buf.Fits(len(data)) {
		w.buf.Append(data)
		return nil
	}

	if err := w.transfer(); err != nil {
		return err
	}

	if w.buf.FitsEmpty(len(data)) {
		w.buf.Append(data)
		return nil
	}

	return w.writeFile(data)
}

// AppendDirect 在刷出已缓冲内容后将 data 直接写入文件，不经过 写缓冲.
func (w *writerImpl) AppendDirect(data []byte) error {
	if w.closed {
		return closedError
	}

	if err := w.transfer(); err != nil {
		return err
	}

	return w.writeFile(data)
}

// Flush 将 写缓冲 内容同步到 文件系统.
func (w *writerImpl) Flush() error {
	if w.closed {
		return closedError
	}

	return w.transfer()
}

// Sync flush 文件系统 buffer，保证内容被写入磁盘.
func (w *writerImpl) Sync() error {
	if w.closed {
		return closedError
	}

	if err := w.transfer(); err != nil {
		return errors.Wrap(err, "flush error")
	}

	return errors.Wrap(w.file.Sync(), "sync error")
}

// SetBufferSize 重建容量为 size 的 写缓冲.
// 重建前先将已缓冲内容刷到文件，字节不会因容量调整丢失或乱序；刷出失败时
// 不做容量调整并返回错误.
func (w *writerImpl) SetBufferSize(size int) error {
	if w.closed {
		return closedError
	}

	if size <= 0 {
		return invalidSizeError
	}

	if err := w.transfer(); err != nil {
		return err
	}

	w.buf = buffer.New(size)

	return nil
}

// Buffered 返回 写缓冲 中尚未刷出的字节数.
func (w *writerImpl) Buffered() int {
	return w.buf.Len()
}

// Close 关闭文件.
// 关闭前尽力将缓冲内容刷出并同步到磁盘，无论成功与否，写者都会被标记为
// 已关闭并释放文件，首个失败会作为返回值上报.
func (w *writerImpl) Close() error {
	if w.closed {
		return closedError
	}

	err := w.transfer()
	if err != nil {
		log.Println("before close file, flush error:", err)
	}

	if syncErr := w.file.Sync(); syncErr != nil {
		log.Println("before close file, sync error: ", syncErr)
		if err == nil {
			err = errors.Wrap(syncErr, "sync error")
		}
	}

	w.closed = true
	w.buf = nil

	if closeErr := w.file.Close(); closeErr != nil && err == nil {
		err = errors.Wrap(closeErr, "close file error")
	}

	return err
}

// transfer 将缓冲内容写入文件并清空缓冲.
// 写入失败时缓冲同样会被清空，未落盘的字节视为丢失，文件内容在调用方收到
// 错误后不再可靠，但写者保持打开，允许继续写入或关闭.
func (w *writerImpl) transfer() error {
	if w.buf.Len() == 0 {
		return nil
	}

	err := w.writeFile(w.buf.Bytes())
	w.buf.Reset()

	return err
}

func (w *writerImpl) writeFile(data []byte) error {
	if _, err := w.file.Write(data); err != nil {
		return errors.Wrap(err, "write file error")
	}

	return nil
}
