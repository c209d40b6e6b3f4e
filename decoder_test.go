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
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Goodwine/xmlsource/intern"
)

func TestToken(t *testing.T) {
	const input = `
	<a>
	<foo > <!-- asd --> </bar>
	    <foo class="start">asd
	<! whatever [<>][<>]{<>}[<>]{<>} >
	<!><?whatever ?> qwe 123 .
	</  lol:foo    ><yay attr="123"/>
	`
	d := NewDecoder(strings.NewReader(input))

	want := []Token{
		&CharData{Data: []byte(" ")},
		&StartTag{Name: &Name{local: "a"}},
		&CharData{Data: []byte(" ")},
		&StartTag{Name: &Name{local: "foo"}},
		&CharData{Data: []byte(" ")},
		&Comment{},
		&CharData{Data: []byte(" ")},
		&CloseTag{&Name{local: "bar"}},
		&CharData{Data: []byte(" ")},
		&StartTag{Name: &Name{local: "foo"}, Attr: []*Attr{{&Name{local: "class"}, "start"}}},
		&CharData{Data: []byte("asd ")},
		&Directive{},
		&CharData{Data: []byte(" ")},
		&Directive{},
		&ProcInst{Target: "whatever"},
		&CharData{Data: []byte(" qwe 123 . ")},
		&CloseTag{&Name{local: "foo", space: "lol"}},
		&StartTag{Name: &Name{local: "yay"}, Attr: []*Attr{{&Name{local: "attr"}, "123"}}},
		&CloseTag{&Name{local: "yay"}},
		&CharData{Data: []byte(" ")},
	}

	var got []Token
	for {
		tok, err := d.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			t.Fatal(err)
		}
		got = append(got, tok.Copy())
	}

	opts := cmp.Options{
		cmp.AllowUnexported(Name{}),
		cmp.Transformer("byteToString", func(in []byte) string { return string(in) }),
	}

	if diff := cmp.Diff(want, got, opts); diff != "" {
		t.Error("Token diff (-want +got)\n", diff)
	}
}

func TestTokenOptionalComment(t *testing.T) {
	const input = `<!--
	--- foo ---
	-->`
	testCases := []struct {
		desc        string
		readComment bool
		want        string
	}{
		{desc: "enabled", readComment: true, want: "\n\t--- foo ---\n\t"},
		{desc: "disabled", readComment: false, want: ""},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			d := NewDecoder(strings.NewReader(input))
			d.ReadComment = tc.readComment
			tok, err := d.Token()
			if err != nil {
				t.Fatal(err)
			}
			if got := string(tok.(*Comment).Data); got != tc.want {
				t.Errorf("comment.Data: '%s', want '%s'", got, tc.want)
			}
		})
	}
}

func TestTokenOptionalDirective(t *testing.T) {
	const input = `<!ENTITY
	[<bar>
	</bar>]
	>`
	testCases := []struct {
		desc          string
		readDirective bool
		want          string
	}{
		{desc: "enabled", readDirective: true, want: "ENTITY\n\t[<bar>\n\t</bar>]\n\t"},
		{desc: "disabled", readDirective: false, want: ""},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			d := NewDecoder(strings.NewReader(input))
			d.ReadDirective = tc.readDirective
			tok, err := d.Token()
			if err != nil {
				t.Fatal(err)
			}
			if got := string(tok.(*Directive).Data); got != tc.want {
				t.Errorf("directive.Data '%s', want '%s'", got, tc.want)
			}
		})
	}
}

func TestTokenErrors(t *testing.T) {
	testCases := []struct {
		desc  string
		input string
		want  string
	}{
		{"start colon", "<:foo>", "unexpected char ':'"},
		{"end colon", "<foo:>", "unexpected char ':'"},
		{"multi colon", "<f:o:o>", "unexpected char ':'"},
		{"bad comment open", "<!- -->", "unexpected char ' ', expected '<!--'"},
		{"bad comment close", "<!-- ->", "comment closed too early, must end in '-->'"},
		{"early EOF at tag", "<asd", "unexpected EOF, expected tag identifier at"},
		{"early EOF at comment", "<!-- asd --", "unexpected EOF at"},
		{"bad cdata open", "<![CDAT[x]]>", "unexpected char '[', expected '<![CDATA['"},
		{"early EOF at cdata", "<![CDATA[ x ]]", "unexpected EOF at"},
		{"proc inst without target", "<? x ?>", "unexpected char ' ', expected proc inst target"},
		{"unknown entity", "a &nbsp; b", "unknown entity &nbsp; on chardata"},
		{"unterminated entity", `<a b="&amp c">`, "unexpected char ' ', expected ';' to end entity"},
		{"bad self-close", "<a /x>", "unexpected char 'x', expected '>' for self-close tag"},
		{"digit tag", "<1a>", "unexpected char '1'"},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			d := NewDecoder(strings.NewReader(tc.input))
			got, err := d.Token()
			if err == nil {
				t.Fatalf("expected error, got %T", got)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("err: '%s' want '%s'", err, tc.want)
			}
		})
	}
}

func TestErrorLineNumber(t *testing.T) {
	const input = `
	<foo>
		ba>r
	</foo>
	`

	const want = "unexpected char '>' on chardata at row: 3 col: 5"

	d := NewDecoder(strings.NewReader(input))

	// 1. CharData
	// 2. <foo>
	// 3. error!
	for i := 0; i < 2; i++ {
		_, err := d.Token()
		if err != nil {
			t.Fatal(err)
		}
	}
	got, err := d.Token()
	if err == nil {
		t.Fatalf("expected error, got %T", got)
	}
	if err.Error() != want {
		t.Fatalf("err: '%s' want '%s'", err, want)
	}
}

// readAll decodes every token in input, copying each one.
func readAll(t *testing.T, d *Decoder) []Token {
	t.Helper()
	var got []Token
	for {
		tok, err := d.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return got
			}
			t.Fatal(err)
		}
		got = append(got, tok.Copy())
	}
}

func TestTokenMarkup(t *testing.T) {
	const input = `<?xml version="1.0"?><p:doc xmlns:p="urn:p" v2.x='a &lt;&amp;&gt; &#65;&#x42;' flag>` +
		`<![CDATA[<raw> & ]]]]><item/><i-2 id="7" />&quot;&apos;</p:doc>`

	d := NewDecoder(strings.NewReader(input))
	d.ReadProcInst = true

	want := []Token{
		&ProcInst{Target: "xml", Inst: []byte(`version="1.0"`)},
		&StartTag{Name: &Name{space: "p", local: "doc"}, Attr: []*Attr{
			{&Name{space: "xmlns", local: "p"}, "urn:p"},
			{&Name{local: "v2.x"}, "a <&> AB"},
			{&Name{local: "flag"}, ""},
		}},
		&CData{Data: []byte("<raw> & ]]")},
		&StartTag{Name: &Name{local: "item"}},
		&CloseTag{&Name{local: "item"}},
		&StartTag{Name: &Name{local: "i-2"}, Attr: []*Attr{{&Name{local: "id"}, "7"}}},
		&CloseTag{&Name{local: "i-2"}},
		&CharData{Data: []byte(`"'`)},
		&CloseTag{&Name{space: "p", local: "doc"}},
	}

	opts := cmp.Options{
		cmp.AllowUnexported(Name{}),
		cmp.Transformer("byteToString", func(in []byte) string { return string(in) }),
	}
	if diff := cmp.Diff(want, readAll(t, d), opts); diff != "" {
		t.Error("Token diff (-want +got)\n", diff)
	}
}

func TestTokenPreserveSpace(t *testing.T) {
	const input = "<a>\n\t x  y\n</a>"
	testCases := []struct {
		desc          string
		preserveSpace bool
		want          string
	}{
		{desc: "preserved", preserveSpace: true, want: "\n\t x  y\n"},
		{desc: "normalized", preserveSpace: false, want: " x y "},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			d := NewDecoder(strings.NewReader(input))
			d.PreserveSpace = tc.preserveSpace
			toks := readAll(t, d)
			if len(toks) != 3 {
				t.Fatalf("got %d tokens, want 3", len(toks))
			}
			if got := string(toks[1].(*CharData).Data); got != tc.want {
				t.Errorf("CharData: %q, want %q", got, tc.want)
			}
		})
	}
}

func TestTokenOptionalProcInst(t *testing.T) {
	const input = `<?style  href="a.css" ?>`
	testCases := []struct {
		desc         string
		readProcInst bool
		want         string
	}{
		{desc: "enabled", readProcInst: true, want: ` href="a.css" `},
		{desc: "disabled", readProcInst: false, want: ""},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			d := NewDecoder(strings.NewReader(input))
			d.ReadProcInst = tc.readProcInst
			tok, err := d.Token()
			if err != nil {
				t.Fatal(err)
			}
			pi := tok.(*ProcInst)
			if pi.Target != "style" {
				t.Errorf("procInst.Target '%s', want 'style'", pi.Target)
			}
			if got := string(pi.Inst); got != tc.want {
				t.Errorf("procInst.Inst '%s', want '%s'", got, tc.want)
			}
		})
	}
}

func TestNamesAreShared(t *testing.T) {
	const input = `<a:b><a:b/></a:b>`
	d := NewDecoder(strings.NewReader(input))
	var names []*Name
	for {
		tok, err := d.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			t.Fatal(err)
		}
		switch tok := tok.(type) {
		case *StartTag:
			names = append(names, tok.Name)
		case *CloseTag:
			names = append(names, tok.Name)
		}
	}
	if len(names) != 4 {
		t.Fatalf("got %d names, want 4", len(names))
	}
	for _, n := range names[1:] {
		if n != names[0] {
			t.Errorf("name %v is not the same instance as %v", n, names[0])
		}
	}
	if got := names[0].String(); got != "a:b" {
		t.Errorf("Name.String: %q, want 'a:b'", got)
	}
}

func TestNamesInterned(t *testing.T) {
	names := intern.New()
	decode := func(input string) *Name {
		d := NewDecoder(strings.NewReader(input))
		d.Names = names
		tok, err := d.Token()
		if err != nil {
			t.Fatal(err)
		}
		return tok.(*StartTag).Name
	}

	n1 := decode("<ns:item>")
	n2 := decode("<ns:item>")
	if n1 == n2 {
		t.Fatal("separate decoders unexpectedly share *Name")
	}
	st := names.Stats()
	if st.Misses != 2 || st.Hits != 2 {
		t.Errorf("Stats: %+v, want 2 misses and 2 hits", st)
	}
	if got := names.Intern("item"); got != n2.Local() {
		t.Errorf("Intern(item): %q, want %q", got, n2.Local())
	}
}

func TestNamesNotInterned(t *testing.T) {
	d := NewDecoder(strings.NewReader("<plain>"))
	d.Names = nil
	tok, err := d.Token()
	if err != nil {
		t.Fatal(err)
	}
	if got := tok.(*StartTag).Name.Local(); got != "plain" {
		t.Errorf("Local: %q, want 'plain'", got)
	}
}
