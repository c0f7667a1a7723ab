package writer

import (
	"github.com/goleveldb/filewriter/buffer"
	"github.com/goleveldb/filewriter/config"
	"github.com/goleveldb/filewriter/handle"
	"github.com/goleveldb/filewriter/status"
)

// WriteBatch appends the bytes of every descriptor in slice order, as if
// their payloads had been written one after another. Descriptors are
// validated as they are visited, so a bad descriptor fails the call with
// InvalidData while everything before it has already been accepted.
// A nil descriptor slice is rejected, an empty one succeeds as a no-op,
// and descriptors of size zero are skipped.
func WriteBatch(id handle.ID, descriptors []buffer.Descriptor) status.Code {
	w, ok := registry.Resolve(id)
	if !ok {
		return status.InvalidHandle
	}

	if descriptors == nil {
		return status.InvalidData
	}

	for _, desc := range descriptors {
		if err := desc.Validate(); err != nil {
			return status.InvalidData
		}

		if desc.Size == 0 {
			continue
		}

		if err := w.Append(desc.View()); err != nil {
			return status.FromWriteError(err)
		}
	}

	return status.Success
}

// WriteLarge appends data like WriteRaw but skips the write buffer for
// payloads above config.LARGE_WRITE_THRESHOLD, sparing the copy through
// the buffer that an oversize write would immediately flush anyway. The
// resulting file content is identical either way.
func WriteLarge(id handle.ID, data []byte) status.Code {
	w, ok := registry.Resolve(id)
	if !ok {
		return status.InvalidHandle
	}

	if len(data) == 0 {
		return status.Success
	}

	if len(data) > config.LARGE_WRITE_THRESHOLD {
		return status.FromWriteError(w.AppendDirect(data))
	}

	return status.FromWriteError(w.Append(data))
}
