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

// Package bind presents in-memory objects as XML event sources.
//
// A Source pairs a Marshaller with a content object and exposes them through sax.XMLReader, so
// anything that consumes a reader can be fed the object directly instead of a serialized copy.
package bind

import (
	"reflect"

	"github.com/Goodwine/xmlsource/sax"
)

// Marshaller pushes the SAX events for v into h, for the duration of the call only. When h also
// implements sax.LexicalHandler it receives comments and CDATA boundaries too.
type Marshaller interface {
	Marshal(v interface{}, h sax.ContentHandler) error
}

// MarshallerFunc adapts a function to the Marshaller interface.
type MarshallerFunc func(v interface{}, h sax.ContentHandler) error

// Marshal calls f(v, h).
func (f MarshallerFunc) Marshal(v interface{}, h sax.ContentHandler) error {
	return f(v, h)
}

// Context creates Marshallers for the types it knows about.
type Context interface {
	NewMarshaller() (Marshaller, error)
}

// isNil reports whether v is nil, including typed nil pointers stored in an interface.
func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
