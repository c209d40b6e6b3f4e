package xml

// Token represents an XML Token:
//
// * StartTag: <foo> or <foo />
// * CloseTag: </foo> implicitly </foo> too
// * Comment: <!-- foo -->
// * CData: <![CDATA[ foo ]]>
// * ProcInst: <? foo ?>
// * Directive: <! foo >
// * CharData: Any string outside of angle brackets <>
type Token interface {
	token()

	// Copy the token into a new instance.
	//
	// Tokens instances are constantly modified by the decoding process, this function makes a copy
	// for the unlikely case when the token value must be stored, and for testing!
	Copy() Token
}

// StartTag is an opening XML tag <tag>
type StartTag struct {
	Name *Name
	Attr []*Attr
}

func (*StartTag) token() {}

func (s *StartTag) Copy() Token {
	c := StartTag{Name: s.Name}
	if s.Attr != nil {
		c.Attr = make([]*Attr, len(s.Attr))
		for i, a := range s.Attr {
			attr := *a
			c.Attr[i] = &attr
		}
	}
	return &c
}

// CloseTag is a closing XML tag </tag>
type CloseTag struct {
	Name *Name
}

func (*CloseTag) token() {}

func (t *CloseTag) Copy() Token {
	return &CloseTag{t.Name}
}

// CharData contains a text node with entities already replaced.
type CharData struct {
	Data []byte
}

func (*CharData) token() {}

func (t *CharData) Copy() Token {
	return &CharData{copyBytes(t.Data)}
}

// CData contains the raw text of a <![CDATA[ ... ]]> section.
type CData struct {
	Data []byte
}

func (*CData) token() {}

func (t *CData) Copy() Token {
	return &CData{copyBytes(t.Data)}
}

// Comment has the format <!-- -->
//
// It can have two or more `-` at the beginning, but it must have two `-` at the end.
// Data is only filled in when Decoder.ReadComment is set.
type Comment struct {
	Data []byte
}

func (*Comment) token() {}

func (t *Comment) Copy() Token {
	return &Comment{copyBytes(t.Data)}
}

// ProcInst has the format <?target inst?>
//
// Inst is only filled in when Decoder.ReadProcInst is set.
type ProcInst struct {
	Target string
	Inst   []byte
}

func (*ProcInst) token() {}

func (t *ProcInst) Copy() Token {
	return &ProcInst{Target: t.Target, Inst: copyBytes(t.Inst)}
}

// Directive has the format <! ... >
//
// Data is only filled in when Decoder.ReadDirective is set.
type Directive struct {
	Data []byte
}

func (*Directive) token() {}

func (t *Directive) Copy() Token {
	return &Directive{copyBytes(t.Data)}
}

func copyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	c := make([]byte, len(b))
	copy(c, b)
	return c
}

// Attr is a tag attribute like <foo bar="baz">.
// This will store an Attr with name "bar" and value "baz"
type Attr struct {
	Name  *Name
	Value string
}

// Name stores an identifier name from either a tag or an attribute like <foo bar="baz">
// This will generate the names "foo" for the tag, and "bar" for the attribute.
//
// Names are shared: the decoder returns the same *Name for every occurrence of an identifier, and
// the strings inside are canonicalized through the decoder's intern.Cache.
type Name struct {
	space string
	local string
}

// Local returns the identifier name without XML namespace.
//
// For example <a:b> generates the local name "b" with namespace "a"
// This method will return "b".
func (n *Name) Local() string {
	if n == nil {
		return ""
	}
	return n.local
}

// Space returns the namespace prefix, "a" for <a:b>, empty when there is none.
//
// This is the prefix as written, resolving it to a URI is up to the caller.
func (n *Name) Space() string {
	if n == nil {
		return ""
	}
	return n.space
}

// String returns the name as written, like "a:b".
func (n *Name) String() string {
	if n == nil {
		return ""
	}
	if n.space == "" {
		return n.local
	}
	return n.space + ":" + n.local
}
