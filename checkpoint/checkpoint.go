// Package checkpoint decorates errors with the file and line of the caller,
// building up something similar to a stacktrace as an error travels upwards.
// Every error attached to a checkpoint stays visible to errors.Is and errors.As.
package checkpoint

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"
)

// From wraps err in a new checkpoint recording the caller location.
// It returns nil if err is nil.
func From(err error) error {
	// io.EOF and io.ErrUnexpectedEOF have to stay comparable by ==.
	// https://github.com/golang/go/issues/39155
	if err == io.EOF {
		return io.EOF
	}
	if err == io.ErrUnexpectedEOF {
		return io.ErrUnexpectedEOF
	}

	if err == nil {
		return nil
	}

	return newCheckpoint(err, nil)
}

// Wrap records a checkpoint for prev and attaches err as an additional
// description. It returns nil if prev is nil.
//
// The typical use is to combine a low level error with a predefined sentinel:
//  var ErrLoadVolume = errors.New("could not load the volume")
//
//  func load() error {
//  	err := readSomething()
//  	return checkpoint.Wrap(err, ErrLoadVolume)
//  }
// Afterwards errors.Is reports true for both the sentinel and the original
// error returned by readSomething.
func Wrap(prev, err error) error {
	if prev == io.EOF {
		return io.EOF
	}

	if prev == nil {
		return nil
	}

	return newCheckpoint(err, prev)
}

func newCheckpoint(err, prev error) *checkpoint {
	// Skip newCheckpoint and the exported wrapper.
	_, file, line, ok := runtime.Caller(2)

	return &checkpoint{
		err:  err,
		prev: prev,

		callerOk: ok,
		file:     filepath.Base(file),
		line:     line,
	}
}

type checkpoint struct {
	err  error
	prev error

	callerOk bool
	file     string
	line     int
}

func (e *checkpoint) Error() string {
	location := "File: unknown"
	if e.callerOk {
		location = fmt.Sprintf("File: %s:%d", e.file, e.line)
	}

	if e.prev == nil {
		return fmt.Sprintf("%s\n\t%v", location, e.err)
	}

	// Indent the previous error if it was not also a checkpoint.
	prevErrString := e.prev.Error()
	if _, ok := e.prev.(*checkpoint); !ok {
		prevErrString = "File: unknown\n\t" + strings.ReplaceAll(prevErrString, "\n", "\n\t")
	}

	if e.err == nil {
		return fmt.Sprintf("%s\n%v", location, prevErrString)
	}
	return fmt.Sprintf("%s\n\t%v\n%v", location, e.err, prevErrString)
}

func (e *checkpoint) Unwrap() error {
	return e.prev
}

func (e *checkpoint) Is(target error) bool {
	return errors.Is(e.err, target)
}

func (e *checkpoint) As(target interface{}) bool {
	return e.err != nil && errors.As(e.err, target)
}
