// Package writer exposes the buffered file writer through an opaque
// handle boundary: every call names its target by handle.ID and reports
// the outcome as a status.Code instead of a Go error.
package writer

import (
	"github.com/goleveldb/filewriter/config"
	"github.com/goleveldb/filewriter/file"
	"github.com/goleveldb/filewriter/handle"
	"github.com/goleveldb/filewriter/status"
)

// registry is the process wide handle table behind the boundary
// functions.
var registry = handle.NewRegistry()

// Open creates a buffered writer for path in the given mode, creating
// missing parent directories, and issues a fresh handle for it. On any
// failure no handle is issued and handle.Nil is returned alongside the
// failure code.
func Open(path string, mode status.Mode) (handle.ID, status.Code) {
	if path == "" {
		return handle.Nil, status.InvalidPath
	}
	if !mode.Valid() {
		return handle.Nil, status.InvalidData
	}

	w, err := file.NewWriter(path, mode, config.DEFAULT_BUFFER_SIZE)
	if err != nil {
		return handle.Nil, status.FromOpenError(err)
	}

	return registry.Register(w), status.Success
}

// WriteRaw appends data through the write buffer. Empty input succeeds
// without touching the file.
func WriteRaw(id handle.ID, data []byte) status.Code {
	w, ok := registry.Resolve(id)
	if !ok {
		return status.InvalidHandle
	}

	if len(data) == 0 {
		return status.Success
	}

	return status.FromWriteError(w.Append(data))
}

// WriteString appends the byte content of s. Strings carry no
// terminator, the file receives exactly the bytes of s.
func WriteString(id handle.ID, s string) status.Code {
	w, ok := registry.Resolve(id)
	if !ok {
		return status.InvalidHandle
	}

	if s == "" {
		return status.Success
	}

	return status.FromWriteError(w.Append([]byte(s)))
}

// Flush transfers every buffered byte to the file and asks the file
// system to accept them durably, so the content is readable by others
// right after the call.
func Flush(id handle.ID) status.Code {
	w, ok := registry.Resolve(id)
	if !ok {
		return status.InvalidHandle
	}

	return status.FromWriteError(w.Sync())
}

// SetBufferSize replaces the write buffer with an empty one of the
// given capacity. Pending bytes are flushed first so nothing is dropped
// or reordered across the resize; a failed flush leaves the old buffer
// in place. Resizing on every write forces a flush each time and
// defeats the point of buffering.
func SetBufferSize(id handle.ID, size int) status.Code {
	w, ok := registry.Resolve(id)
	if !ok {
		return status.InvalidHandle
	}

	if size <= 0 {
		return status.InvalidData
	}

	return status.FromWriteError(w.SetBufferSize(size))
}

// Close flushes pending bytes and releases the file. The handle is dead
// after this call no matter what is returned, a failed final flush or
// release reports FileCloseError.
func Close(id handle.ID) status.Code {
	w, ok := registry.Invalidate(id)
	if !ok {
		return status.InvalidHandle
	}

	return status.FromCloseError(w.Close())
}

// CloseAll releases every writer that is still open and reports how
// many there were. Meant for process level cleanup when callers forgot
// individual Close calls.
func CloseAll() int {
	return registry.CloseAll()
}
