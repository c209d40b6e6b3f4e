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

package xml

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// maxEntityLen bounds how far entity() reads looking for the closing `;`.
const maxEntityLen = 32

var predefinedEntities = map[string]rune{
	"lt":   '<',
	"gt":   '>',
	"amp":  '&',
	"apos": '\'',
	"quot": '"',
}

// entity reads an entity reference like &amp; or &#x41; assuming `&` was consumed, and writes
// the replacement rune into the buffer.
func (d *Decoder) entity() error {
	var name [maxEntityLen]byte
	n := 0
	for {
		r, err := d.next()
		if err != nil {
			return checkUnexpectedEOF(err)
		}
		if r == ';' {
			break
		}
		if n+utf8.RuneLen(r) > len(name) || !isEntityChar(r) {
			return fmt.Errorf("%w, expected ';' to end entity", unexpectedChar(r))
		}
		n += utf8.EncodeRune(name[n:], r)
	}

	ref := string(name[:n])
	if r, ok := predefinedEntities[ref]; ok {
		d.buf.WriteRune(r)
		return nil
	}
	if len(ref) > 1 && ref[0] == '#' {
		var v uint64
		var err error
		if ref[1] == 'x' {
			v, err = strconv.ParseUint(ref[2:], 16, 32)
		} else {
			v, err = strconv.ParseUint(ref[1:], 10, 32)
		}
		if err == nil && utf8.ValidRune(rune(v)) {
			d.buf.WriteRune(rune(v))
			return nil
		}
	}
	return fmt.Errorf("%w &%s;", UnknownEntity, ref)
}

func isEntityChar(r rune) bool {
	return r == '#' || isNameChar(r)
}
