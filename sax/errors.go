// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sax

import (
	"fmt"
	"strings"

	"github.com/chronos-tachyon/enumhelper"
)

// Error is the type for the error constants returned by this package.
type Error byte

const (
	// ErrNotRecognized is returned for a feature or property name a reader
	// does not know about.
	ErrNotRecognized Error = iota

	// ErrNotSupported is returned when a known feature or property can't take
	// the requested value.
	ErrNotSupported
)

var errorData = [...]enumhelper.EnumData{
	{GoName: "ErrNotRecognized"},
	{GoName: "ErrNotSupported"},
}

var errorText = [...]string{
	"name not recognized",
	"value not supported",
}

// GoString returns the name of the Go constant.
func (err Error) GoString() string {
	return enumhelper.DereferenceEnumData("Error", errorData[:], uint(err)).GoName
}

// Error returns the error message for this error.
func (err Error) Error() string {
	return errorText[err]
}

var _ fmt.GoStringer = Error(0)
var _ error = Error(0)

// NotRecognized wraps ErrNotRecognized with the offending name.
func NotRecognized(name string) error {
	return fmt.Errorf("%w: %q", ErrNotRecognized, name)
}

// NotSupported wraps ErrNotSupported with the offending name and value.
func NotSupported(name string, value interface{}) error {
	return fmt.Errorf("%w: %q = %v", ErrNotSupported, name, value)
}

// ParseError is a problem tied to a location in a document. Line and Column
// are -1 when unknown.
type ParseError struct {
	Msg      string
	PublicID string
	SystemID string
	Line     int
	Column   int

	// Err is the underlying cause, if any.
	Err error
}

// NewParseError wraps err without location information.
func NewParseError(err error) *ParseError {
	pe := &ParseError{Line: -1, Column: -1, Err: err}
	if err != nil {
		pe.Msg = err.Error()
	}
	return pe
}

func (e *ParseError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Msg)
	if e.SystemID != "" {
		fmt.Fprintf(&sb, " in %s", e.SystemID)
	}
	if e.Line >= 0 {
		fmt.Fprintf(&sb, " at row: %d col: %d", e.Line, e.Column)
	}
	return sb.String()
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.Err
}
