package buffer

import "github.com/pkg/errors"

// ErrInvalidDescriptor 表示描述信息与数据不一致，不能安全读取.
var ErrInvalidDescriptor = errors.New("descriptor data and size mismatch")

// Descriptor 描述一段由调用方持有的待写入字节.
// Data 的所有权仍属于调用方，本包在调用结束后不会继续持有它.
type Descriptor struct {
	Data []byte
	Size int
}

// NewDescriptor 创建覆盖 data 全部字节的描述.
func NewDescriptor(data []byte) Descriptor {
	return Descriptor{Data: data, Size: len(data)}
}

// Validate 校验描述的字节段是否可以安全读取.
// Size 为 0 的描述视为合法，读取时会被跳过.
func (d Descriptor) Validate() error {
	if d.Size < 0 {
		return ErrInvalidDescriptor
	}
	if d.Size > 0 && d.Data == nil {
		return ErrInvalidDescriptor
	}
	if d.Size > len(d.Data) {
		return ErrInvalidDescriptor
	}

	return nil
}

// View 返回描述覆盖的字节段，调用前应先通过 Validate 校验.
func (d Descriptor) View() []byte {
	return d.Data[:d.Size]
}
