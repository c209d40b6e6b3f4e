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

// attrBuffer hands out reusable Attr values for the start tag being decoded, inspired on bytes
// buffer. The Attr instances are overwritten by the next start tag.
type attrBuffer struct {
	buf []*Attr
	pos int
}

func (buf *attrBuffer) growBy(n int) {
	for i := 0; i < n; i++ {
		buf.buf = append(buf.buf, new(Attr))
	}
}

func (buf *attrBuffer) reset() {
	buf.pos = 0
}

// next returns a cleared Attr appended to the current tag.
func (buf *attrBuffer) next() *Attr {
	if buf.pos == len(buf.buf) {
		buf.growBy(len(buf.buf)/2 + 1)
	}
	attr := buf.buf[buf.pos]
	*attr = Attr{}
	buf.pos++
	return attr
}

func (buf *attrBuffer) get() []*Attr {
	if buf.pos == 0 {
		return nil
	}
	return buf.buf[:buf.pos]
}
