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

package bind

import (
	"fmt"

	"github.com/chronos-tachyon/enumhelper"
)

// Error is the type for the error constants returned by this package.
type Error byte

const (
	// ErrNilContext is returned by NewSource when given no Context.
	ErrNilContext Error = iota

	// ErrNilMarshaller is returned when a Source is built without a Marshaller, or when a Context
	// hands out a nil one.
	ErrNilMarshaller

	// ErrNilContent is returned when a Source is built without a content object.
	ErrNilContent

	// ErrUndeclaredPrefix is returned when marshalled XML uses a namespace prefix that was never
	// bound.
	ErrUndeclaredPrefix

	// ErrMismatchedTag is returned when a closing tag doesn't match the open element.
	ErrMismatchedTag

	// ErrUnclosedTag is returned when marshalled XML ends with elements still open.
	ErrUnclosedTag
)

var errorData = [...]enumhelper.EnumData{
	{GoName: "ErrNilContext"},
	{GoName: "ErrNilMarshaller"},
	{GoName: "ErrNilContent"},
	{GoName: "ErrUndeclaredPrefix"},
	{GoName: "ErrMismatchedTag"},
	{GoName: "ErrUnclosedTag"},
}

var errorText = [...]string{
	"binding context must not be nil",
	"marshaller must not be nil",
	"content object must not be nil",
	"undeclared namespace prefix",
	"mismatched closing tag",
	"unclosed tag",
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
