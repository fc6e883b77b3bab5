/*
 * errors.go, part of spinverter.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package spinverter

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies the errors returned by the parsers and writers.
type Kind int

const (
	//A line matched a record type but could not be decoded.
	MalformedRecord Kind = iota
	//A block grammar violation, such as a spin line with no open spin group.
	StructuralError
	//A record refers to an index that is not in the model.
	DanglingReference
	//Opening, reading or writing a stream failed.
	IOFailure
)

func (K Kind) String() string {
	switch K {
	case MalformedRecord:
		return "malformed record"
	case StructuralError:
		return "structural error"
	case DanglingReference:
		return "dangling reference"
	case IOFailure:
		return "I/O failure"
	}
	return fmt.Sprintf("Kind(%d)", int(K))
}

// Sentinels matching each Kind, usable with errors.Is.
var (
	ErrMalformedRecord   = errors.New("malformed record")
	ErrStructural        = errors.New("structural error")
	ErrDanglingReference = errors.New("dangling reference")
	ErrIO                = errors.New("I/O failure")
)

func (K Kind) sentinel() error {
	switch K {
	case MalformedRecord:
		return ErrMalformedRecord
	case StructuralError:
		return ErrStructural
	case DanglingReference:
		return ErrDanglingReference
	}
	return ErrIO
}

// Decorator is implemented by errors that collect the names of the
// functions they pass through on their way up.
type Decorator interface {
	Error() string
	//Decorate adds deco to the decoration slice and returns the slice. An empty
	//string just returns the current value.
	Decorate(deco string) []string
}

// Error is the error type for all packages in spinverter. Line and Content
// point to the offending input line when the error comes from a parser.
type Error struct {
	Kind     Kind
	Format   string //"mms", "pms" or "mnova"
	FileName string //empty when reading from a stream
	Line     int    //1-based, 0 if the error is not bound to a line
	Content  string
	message  string
	err      error
	deco     []string
}

// NewError returns an Error of the given kind and format.
func NewError(kind Kind, format, message string) *Error {
	return &Error{Kind: kind, Format: format, message: message}
}

// Errorf is like NewError but formats the message. A %w verb is honored: the
// wrapped error becomes the cause.
func Errorf(kind Kind, format, msg string, args ...any) *Error {
	wrapped := fmt.Errorf(msg, args...)
	E := &Error{Kind: kind, Format: format, message: wrapped.Error()}
	E.err = errors.Unwrap(wrapped)
	return E
}

// Wrap returns an Error of the given kind with err as its cause.
func Wrap(err error, kind Kind, format, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Format: format, message: message + ": " + err.Error(), err: err}
}

// At sets the line number and content of the error and returns it.
func (E *Error) At(line int, content string) *Error {
	E.Line = line
	E.Content = content
	return E
}

func (E *Error) Error() string {
	var b strings.Builder
	if E.Format != "" {
		b.WriteString(E.Format)
		b.WriteString(" ")
	}
	b.WriteString("file")
	if E.FileName != "" {
		b.WriteString(" ")
		b.WriteString(E.FileName)
	}
	if E.Line > 0 {
		fmt.Fprintf(&b, " line %d", E.Line)
	}
	b.WriteString(": ")
	b.WriteString(E.message)
	if E.Content != "" {
		fmt.Fprintf(&b, " (%q)", E.Content)
	}
	return b.String()
}

// Message returns the error message without location information.
func (E *Error) Message() string { return E.message }

// Decorate adds new information to the error.
func (E *Error) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

// Critical is always true. Parsing is aborted on any error.
func (E *Error) Critical() bool { return true }

// Unwrap exposes both the Kind sentinel and the underlying cause.
func (E *Error) Unwrap() []error {
	if E.err != nil {
		return []error{E.Kind.sentinel(), E.err}
	}
	return []error{E.Kind.sentinel()}
}

// ErrDecorate decorates err with the caller's name if it implements Decorator,
// and returns it unchanged otherwise.
func ErrDecorate(err error, caller string) error {
	var d Decorator
	if errors.As(err, &d) {
		d.Decorate(caller)
	}
	return err
}

// Locate fills in the line number, content and file name of err if it is an
// *Error that does not have them yet. It returns err.
func Locate(err error, line int, content, filename string) error {
	var E *Error
	if !errors.As(err, &E) {
		return err
	}
	if line > 0 && E.Line == 0 {
		E.At(line, content)
	}
	if E.FileName == "" {
		E.FileName = filename
	}
	return err
}

// KindOf returns the Kind of err, and false if err is not an *Error.
func KindOf(err error) (Kind, bool) {
	var E *Error
	if !errors.As(err, &E) {
		return 0, false
	}
	return E.Kind, true
}
