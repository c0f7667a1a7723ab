package status

import (
	"os"

	"github.com/pkg/errors"
)

// FromOpenError maps a failure of the open phase, including creation of
// missing parent directories. Conditions raised by the file system keep
// the phase-specific FileOpenError, anything unclassifiable degrades to
// the generic IoError.
func FromOpenError(err error) Code {
	if err == nil {
		return Success
	}

	cause := errors.Cause(err)
	if os.IsPermission(cause) || os.IsNotExist(cause) || os.IsExist(cause) {
		return FileOpenError
	}
	if _, ok := cause.(*os.PathError); ok {
		return FileOpenError
	}

	return IoError
}

// FromWriteError maps a failure of the write or flush phase. The write
// buffer lives in process memory, so every failure here is a failed
// transfer to the file.
func FromWriteError(err error) Code {
	if err == nil {
		return Success
	}

	return FileWriteError
}

// FromCloseError maps a failure of the final flush or release of the
// file.
func FromCloseError(err error) Code {
	if err == nil {
		return Success
	}

	return FileCloseError
}
