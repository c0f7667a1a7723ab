// Package status defines the integer status protocol shared with callers
// on the other side of the handle boundary. Only the integer values are
// contractual and must stay stable.
package status

import "fmt"

// Code is the closed set of status codes every boundary call returns.
type Code int32

const (
	Success        Code = 0
	FileOpenError  Code = 1
	FileWriteError Code = 2
	FileCloseError Code = 3
	InvalidHandle  Code = 4
	InvalidPath    Code = 5
	InvalidData    Code = 6
	IoError        Code = 7
)

var codeNames = map[Code]string{
	Success:        "Success",
	FileOpenError:  "FileOpenError",
	FileWriteError: "FileWriteError",
	FileCloseError: "FileCloseError",
	InvalidHandle:  "InvalidHandle",
	InvalidPath:    "InvalidPath",
	InvalidData:    "InvalidData",
	IoError:        "IoError",
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}

	return fmt.Sprintf("Code(%d)", int32(c))
}

// Mode selects how the target file is opened.
type Mode int32

const (
	// ModeAppend opens or creates the file and adds bytes at its end.
	ModeAppend Mode = 0
	// ModeWrite creates the file, truncating it when it already exists.
	ModeWrite Mode = 1
)

// Valid reports whether m is one of the two contractual open modes.
func (m Mode) Valid() bool {
	return m == ModeAppend || m == ModeWrite
}

func (m Mode) String() string {
	switch m {
	case ModeAppend:
		return "Append"
	case ModeWrite:
		return "Write"
	}

	return fmt.Sprintf("Mode(%d)", int32(m))
}
