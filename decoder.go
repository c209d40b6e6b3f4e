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
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"unicode"

	"github.com/Goodwine/triemap"

	"github.com/Goodwine/xmlsource/intern"
)

type decodeError string

// Error implements error interface, returns itself since it's already a string.
func (err decodeError) Error() string {
	return string(err)
}

const (
	// UnexpectedChar is thrown when an unexpected rune or characters appears outside of an attribute
	// value or CharData token.
	UnexpectedChar decodeError = "unexpected char"

	// UnknownEntity is thrown for an entity reference other than the five predefined XML entities
	// or a character reference.
	UnknownEntity decodeError = "unknown entity"
)

var cdataEnd = []byte("]]>")

// Decoder processes an XML input and generates tokens or processes into a given struct.
type Decoder struct {
	// ReadComment enables reading and returning back the comment contents. Otherwise returns an empty
	// node. Disabled by default.
	ReadComment bool

	// ReadDirective enables reading and returning back the directive contents. Otherwise returns an
	// empty node. Disabled by default.
	//
	// Note that we DO NOT process directives, we simply return back the string within `<! ... >`
	ReadDirective bool

	// ReadProcInst enables reading and returning back the instruction following the target of a
	// processing instruction. The target is always returned. Disabled by default.
	ReadProcInst bool

	// PreserveSpace returns CharData exactly as found. Otherwise every run of whitespace is
	// collapsed into a single space. Disabled by default.
	PreserveSpace bool

	// Names canonicalizes the strings held by every new Name, and proc inst targets. NewDecoder
	// sets it to intern.Shared(), set it to nil to skip interning altogether.
	Names *intern.Cache

	r   io.RuneReader
	row int
	col int

	// startedTag indicates whether the current last token consumed an open angle bracket (<)
	startedTag bool

	// selfClosingTag indicates that the last StartTag token self closed, and a CloseTag token should
	// be emitted instead of consuming more characters.
	selfClosingTag *Name

	// Buffers for input read so far for the _current token_. This buffer is cleared on every new
	// token, identifier like tag names or attributes, and string values.
	buf   *bytes.Buffer
	attrs *attrBuffer
	names triemap.RuneSliceMap

	// The following are object buffers to save on allocations by reusing the same instance every
	// time the Decoder.Token function is called.
	// Because returning plain structs would copy by value, it would cause a large amount of
	// allocations for medium to large files, and this allows returning the same pointer multiple
	// times.
	startTagBuf  StartTag
	closeTagBuf  CloseTag
	charDataBuf  CharData
	cdataBuf     CData
	commentBuf   Comment
	procInstBuf  ProcInst
	directiveBuf Directive
}

// NewDecoder instantiates a Decoder to process a Reader input.
func NewDecoder(r io.Reader) *Decoder {
	var attrBuf attrBuffer
	attrBuf.growBy(30)
	var buf bytes.Buffer
	buf.Grow(1000)
	return &Decoder{
		Names: intern.Shared(),
		r:     bufio.NewReader(r),
		buf:   &buf,
		attrs: &attrBuf,
	}
}

// Token will decode the next token from the current XML position.
//
// The token is meant to be processed BEFORE the next token is called.
// Contents of previous tokens can be modified at any time during tokenization.
func (d *Decoder) Token() (Token, error) {
	// TODO: Add option to Decoder so Token pushes/pops tag names onto a stack to verify tags match 1:1.
	t, err := d.token()
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w at row: %d col: %d", err, d.row+1, d.col)
	}
	return t, err
}

func (d *Decoder) token() (Token, error) {
	if d.startedTag {
		d.startedTag = false
		return d.angleStart()
	}
	if d.selfClosingTag != nil {
		d.closeTagBuf.Name = d.selfClosingTag
		d.selfClosingTag = nil
		return &d.closeTagBuf, nil
	}
	r, err := d.next()
	if err != nil {
		return nil, err
	}
	switch {
	case r == '<':
		// StartElement
		// EndElement
		// Comment
		// CData
		// ProcInst
		// Directive
		return d.angleStart()
	case r == '>':
		return nil, unexpectedChar(r)
	}
	//CharData
	return d.charData(r)
}

// unexpectedChar is a utility function to attach the rune to the UnexpectedChar error.
func unexpectedChar(r rune) error {
	return fmt.Errorf("%w %q", UnexpectedChar, r)
}

// next reads the next rune and updates col/row positions for better error messaging.
func (d *Decoder) next() (rune, error) {
	r, _, err := d.r.ReadRune()
	if r == '\n' {
		d.col = 0
		d.row++
	} else {
		d.col++
	}
	return r, err
}

// checkUnexpectedEOF is a helper function to catch an EOF and transform it to UnexpectedEOF
// when it happens mid-way during parsing.
func checkUnexpectedEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}

// intern returns the canonical form of s when the decoder has a cache.
func (d *Decoder) intern(s string) string {
	if d.Names == nil {
		return s
	}
	return d.Names.Intern(s)
}

func (d *Decoder) charData(start rune) (Token, error) {
	d.buf.Reset()
	var space bool
	r := start
	for {
		switch {
		case r == '<':
			d.startedTag = true
			d.charDataBuf.Data = d.buf.Bytes()
			return &d.charDataBuf, nil
		case r == '>':
			return nil, fmt.Errorf("%w on chardata", unexpectedChar(r))
		case r == '&':
			space = false
			if err := d.entity(); err != nil {
				return nil, fmt.Errorf("%w on chardata", err)
			}
		case !d.PreserveSpace && unicode.IsSpace(r):
			// Normalize whitespace
			if !space {
				d.buf.WriteByte(' ')
			}
			space = true
		default:
			space = false
			d.buf.WriteRune(r)
		}

		var err error
		r, err = d.next()
		if err != nil {
			d.charDataBuf.Data = d.buf.Bytes()
			return &d.charDataBuf, nil
		}
	}
}

// angleStart will return the token corresponding to the previous `<` character
//
// At this point it could be StartTag, Comment, CData, EndTag, Directive, or ProcInst
func (d *Decoder) angleStart() (Token, error) {
	r, err := d.next()
	if err != nil {
		return nil, checkUnexpectedEOF(err)
	}
	switch {
	case isNameStart(r):
		// StartElement
		d.buf.Reset()
		d.buf.WriteRune(r)
		return d.startTag()
	case r == '/':
		// EndElement
		return d.closeTag()
	case r == '!':
		// Comment
		// CData
		// Directive
		d.buf.Reset()

		r, err := d.next()
		if err != nil {
			return nil, checkUnexpectedEOF(err)
		}
		switch r {
		case '[':
			return d.cdata()
		case '-':
		default:
			return d.directive(r)
		}

		r, err = d.next()
		if err != nil {
			return nil, checkUnexpectedEOF(err)
		}
		if r != '-' {
			return nil, fmt.Errorf("%w, expected '<!--'", unexpectedChar(r))
		}

		return d.comment()
	case r == '?':
		// ProcInst
		return d.procInst()
	}
	return nil, unexpectedChar(r)
}

// startTag processes a token like: <foo> or <foo bar="baz" biz='x' boz> or <foo/>
func (d *Decoder) startTag() (Token, error) {
	name, last, err := d.readIdentifier()
	if err != nil {
		return nil, fmt.Errorf("%w, expected tag identifier", err)
	}

	d.startTagBuf.Name = name
	d.startTagBuf.Attr = nil
	d.attrs.reset()

	for {
		if unicode.IsSpace(last) {
			last, err = d.consumeSpace()
			if err != nil {
				return nil, fmt.Errorf("%w, expected attribute identifier", err)
			}
		}

		switch {
		case last == '>':
			d.startTagBuf.Attr = d.attrs.get()
			return &d.startTagBuf, nil
		case last == '/':
			last, err = d.next()
			if err != nil {
				return nil, fmt.Errorf("%w, expected '>' for self-close tag", checkUnexpectedEOF(err))
			}
			if last != '>' {
				return nil, fmt.Errorf("%w, expected '>' for self-close tag", unexpectedChar(last))
			}
			d.selfClosingTag = name
			d.startTagBuf.Attr = d.attrs.get()
			return &d.startTagBuf, nil
		case !isNameStart(last):
			return nil, fmt.Errorf("%w, expected attribute identifier on tag <%s>", unexpectedChar(last), name)
		}

		d.buf.Reset()
		d.buf.WriteRune(last)
		attrName, next, err := d.readIdentifier()
		if err != nil {
			return nil, fmt.Errorf("%w reading attribute on tag <%s>", err, name)
		}
		attr := d.attrs.next()
		attr.Name = attrName

		if unicode.IsSpace(next) {
			next, err = d.consumeSpace()
			if err != nil {
				return nil, fmt.Errorf("%w after attribute %s on tag <%s>", err, attrName, name)
			}
		}
		if next != '=' {
			// attribute without value looks like <foo name> or <foo name bar="baz">
			last = next
			continue
		}

		// Find attribute value, they are surrounded by quotes
		next, err = d.consumeSpace()
		if err != nil {
			return nil, fmt.Errorf("%w after attribute %s on tag <%s>", err, attrName, name)
		}
		// TODO: support naked attribute values, i.e. without quotes
		if next != '"' && next != '\'' {
			return nil, fmt.Errorf("%w, expected value for attribute %s on tag <%s>", unexpectedChar(next), attrName, name)
		}
		d.buf.Reset()
		attr.Value, err = d.readString(next)
		if err != nil {
			return nil, fmt.Errorf("%w reading attribute %s value on tag <%s>", err, attrName, name)
		}

		last, err = d.next()
		if err != nil {
			return nil, fmt.Errorf("%w on tag <%s>", checkUnexpectedEOF(err), name)
		}
	}
}

// readString reads a string ending in a given quote rune, assumes initial quote has
// already been consumed.
//
// Entity and character references are replaced, there is no backslash escaping.
func (d *Decoder) readString(quote rune) (string, error) {
	for {
		r, err := d.next()
		if err != nil {
			return "", checkUnexpectedEOF(err)
		}
		switch r {
		case quote:
			return d.buf.String(), nil
		case '&':
			if err := d.entity(); err != nil {
				return "", err
			}
		default:
			d.buf.WriteRune(r)
		}
	}
}

// closeTag processes a token like: </foo>
func (d *Decoder) closeTag() (Token, error) {
	last, err := d.consumeSpace()
	if err != nil {
		return nil, fmt.Errorf("%w, expected closing tag", err)
	}
	if !isNameStart(last) {
		return nil, fmt.Errorf("%w, expected closing tag", unexpectedChar(last))
	}
	d.buf.Reset()
	d.buf.WriteRune(last)
	name, last, err := d.readIdentifier()
	if err != nil {
		return nil, fmt.Errorf("%w, expected closing tag", err)
	}
	if unicode.IsSpace(last) {
		last, err = d.consumeSpace()
		if err != nil {
			return nil, fmt.Errorf("%w on closing tag </%v>", err, name)
		}
	}
	if last != '>' {
		return nil, fmt.Errorf("%w, expected '>' for closing tag </%s>", unexpectedChar(last), name)
	}
	d.closeTagBuf.Name = name
	return &d.closeTagBuf, nil
}

// comment processes a token like: <!-- -->
func (d *Decoder) comment() (Token, error) {
	var dashes int
	for {
		r, err := d.next()
		if err != nil {
			return nil, checkUnexpectedEOF(err)
		}
		if r == '>' {
			if dashes >= 2 {
				d.commentBuf.Data = nil
				if d.ReadComment {
					data := d.buf.Bytes()
					d.commentBuf.Data = data[:len(data)-2]
				}
				return &d.commentBuf, nil
			}
			return nil, errors.New("comment closed too early, must end in '-->'")
		}
		if r == '-' {
			dashes++
		} else {
			dashes = 0
		}
		if d.ReadComment {
			d.buf.WriteRune(r)
		}
	}
}

// cdata processes a token like: <![CDATA[ ]]> assuming `<![` was consumed.
func (d *Decoder) cdata() (Token, error) {
	for _, want := range "CDATA[" {
		r, err := d.next()
		if err != nil {
			return nil, checkUnexpectedEOF(err)
		}
		if r != want {
			return nil, fmt.Errorf("%w, expected '<![CDATA['", unexpectedChar(r))
		}
	}
	d.buf.Reset()
	for {
		r, err := d.next()
		if err != nil {
			return nil, checkUnexpectedEOF(err)
		}
		d.buf.WriteRune(r)
		if r == '>' && bytes.HasSuffix(d.buf.Bytes(), cdataEnd) {
			data := d.buf.Bytes()
			d.cdataBuf.Data = data[:len(data)-len(cdataEnd)]
			return &d.cdataBuf, nil
		}
	}
}

// procInst processes a token like: <?target  ?>
func (d *Decoder) procInst() (Token, error) {
	// TODO: Only allow the xml declaration at the beginning of the file
	d.buf.Reset()
	var r rune
	var err error
	for {
		r, err = d.next()
		if err != nil {
			return nil, checkUnexpectedEOF(err)
		}
		if unicode.IsSpace(r) || r == '?' {
			break
		}
		d.buf.WriteRune(r)
	}
	if d.buf.Len() == 0 {
		return nil, fmt.Errorf("%w, expected proc inst target", unexpectedChar(r))
	}
	d.procInstBuf.Target = d.intern(d.buf.String())

	d.buf.Reset()
	if r == '?' {
		d.buf.WriteRune(r)
	}
	for {
		r, err = d.next()
		if err != nil {
			return nil, checkUnexpectedEOF(err)
		}
		if r == '>' {
			inst := d.buf.Bytes()
			if len(inst) > 0 && inst[len(inst)-1] == '?' {
				d.procInstBuf.Inst = nil
				if d.ReadProcInst {
					d.procInstBuf.Inst = inst[:len(inst)-1]
				}
				return &d.procInstBuf, nil
			}
			return nil, errors.New("proc inst closed too early, must end in '?>'")
		}
		d.buf.WriteRune(r)
	}
}

// directive processes a token like: <!  > or <! [] > or <! {} >
func (d *Decoder) directive(last rune) (Token, error) {
	d.directiveBuf.Data = nil
	if last == '>' {
		if d.ReadDirective {
			d.directiveBuf.Data = d.buf.Bytes()
		}
		return &d.directiveBuf, nil
	} else if d.ReadDirective {
		d.buf.WriteRune(last)
	}
	for {
		r, err := d.next()
		if err != nil {
			return nil, checkUnexpectedEOF(err)
		}
		// looping because []{}[]{}
		for r == '[' || r == '{' {
			if d.ReadDirective {
				d.buf.WriteRune(r)
			}

			target := ']'
			if r == '{' {
				target = '}'
			}
			isCloseBracket := func(r rune) bool { return r != target }
			r, err = d.consume(isCloseBracket, d.ReadDirective)
			if err != nil {
				return nil, fmt.Errorf("%w, expected %q", err, target)
			}
		}
		if r == '>' {
			if d.ReadDirective {
				d.directiveBuf.Data = d.buf.Bytes()
			}
			return &d.directiveBuf, nil
		}
		if d.ReadDirective {
			d.buf.WriteRune(r)
		}
	}
}

// consume reads out all runes matching the function and return the last non-space rune
func (d *Decoder) consume(match func(rune) bool, read bool) (rune, error) {
	for {
		r, err := d.next()
		if err != nil {
			return 0, checkUnexpectedEOF(err)
		}
		if !match(r) {
			return r, nil
		}
		if read {
			d.buf.WriteRune(r)
		}
	}
}

// consumeSpace reads out all spaces and return the last non-space rune
func (d *Decoder) consumeSpace() (rune, error) {
	return d.consume(unicode.IsSpace, false)
}

// readIdentifier reads the next Name for attribute or tag names, the first rune must already be
// in the buffer. It returns the rune that ended the identifier: a space, `=`, `/` or `>`.
//
// Names are looked up by their runes first so a repeated identifier costs no allocation besides
// the lookup key.
func (d *Decoder) readIdentifier() (*Name, rune, error) {
	var r rune
	var err error
	colon := -1
loop:
	for {
		r, err = d.next()
		if err != nil {
			return nil, 0, checkUnexpectedEOF(err)
		}
		switch {
		case r == ':' && colon < 0:
			colon = d.buf.Len()
			d.buf.WriteRune(r)
		case isNameChar(r):
			d.buf.WriteRune(r)
		case unicode.IsSpace(r), r == '=', r == '/', r == '>':
			break loop
		default:
			return nil, 0, fmt.Errorf("%w reading identifier", unexpectedChar(r))
		}
	}
	if colon == d.buf.Len()-1 {
		// We only validate the second part because the first part can't be empty for the code
		// to enter this function.
		return nil, 0, fmt.Errorf("%w reading identifier", unexpectedChar(':'))
	}

	// Somehow implementing a []rune buffer is worse performing than casting buf.String()
	runes := []rune(d.buf.String())
	name, ok := d.names.Get(runes)
	if ok {
		return name.(*Name), r, nil
	}

	s := d.buf.String()
	var n *Name
	if colon >= 0 {
		n = &Name{space: d.intern(s[:colon]), local: d.intern(s[colon+1:])}
	} else {
		n = &Name{local: d.intern(s)}
	}
	d.names.Put(runes, n)
	return n, r, nil
}

func isNameStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isNameChar(r rune) bool {
	return isNameStart(r) || unicode.IsDigit(r) || r == '-' || r == '.'
}
