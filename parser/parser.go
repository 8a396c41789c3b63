package parser

import (
	"io"

	"github.com/andaru/sxml/entity"
	"github.com/andaru/sxml/xmlutil"
)

// tokenizer states, one per lexical position in the grammar.
type state int

const (
	stateOutsideTag state = iota
	stateTagOpened
	stateInProcInst
	stateInTagName
	stateInCloseTagName
	stateInTag
	stateInAttrName
	stateInAttrValue
	stateExpectDelimiter
	stateExpectClose
	stateExpectSpaceOrClose
	stateInExclamationMark
	stateInCDataOpening
	stateInCData
	stateInCommentOpening
	stateInComment1
	stateInComment2
	stateInDoctype
)

var (
	cdataPattern   = []byte("CDATA[")
	doctypePattern = []byte("OCTYPE")
)

// qname is a possibly prefixed name captured while scanning.
type qname struct {
	prefix    string
	local     string
	hasPrefix bool
}

// pendingAttr is a scanned attribute whose namespace prefix is still
// unresolved. Resolution waits until the whole tag has been scanned so
// that xmlns declarations on the same tag can bind sibling prefixes.
type pendingAttr struct {
	name  qname
	value string
}

// Parser is a streaming XML tokenizer.
//
// The Parser reads exactly one byte of input per state transition,
// tracking the 1-based line and column of the current character, and
// maintains a namespace scope stack so events carry resolved namespace
// URIs. Multi-byte UTF-8 sequences pass through text buffers unchanged;
// column counts advance per byte.
//
// Parser is not safe for concurrent use.
type Parser struct {
	r io.Reader
	b [1]byte

	line int
	col  int
	err  error

	st      state
	buf     []byte
	ns      *xmlutil.Scope
	attrs   []pendingAttr
	name    qname // element name held while scanning attributes or awaiting '>'
	hasName bool
	attr    qname // attribute name awaiting its value
	delim   byte  // active attribute value delimiter, 0 when unset
	level   int   // pattern progress or repeat counter, meaning depends on state
	ordered bool
}

// NewParser returns a Parser reading an XML document from r.
func NewParser(r io.Reader, opts ...Option) *Parser {
	p := &Parser{
		r:    r,
		line: 1,
		ns:   xmlutil.NewScope(),
		st:   stateOutsideTag,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Position returns the line and column of the last character consumed.
func (p *Parser) Position() (line, col int) { return p.line, p.col }

// Next returns the next lexical event.
//
// It returns io.EOF once the input is exhausted; an incomplete trailing
// token is discarded rather than emitted partially. Any other error is
// a *ParseError and poisons the Parser: all subsequent calls return
// io.EOF.
func (p *Parser) Next() (Event, error) {
	if p.err != nil {
		return nil, io.EOF
	}
	for {
		if _, err := io.ReadFull(p.r, p.b[:]); err != nil {
			if err == io.EOF {
				return nil, io.EOF
			}
			p.err = err
			return nil, p.lexErr(MalformedXml)
		}
		c := p.b[0]
		if c == '\n' {
			p.line++
			p.col = 0
		} else {
			p.col++
		}

		ev, err := p.parseByte(c)
		if err != nil {
			p.err = err
			return nil, err
		}
		if ev != nil {
			return ev, nil
		}
	}
}

func (p *Parser) parseByte(c byte) (Event, error) {
	switch p.st {
	case stateOutsideTag:
		return p.outsideTag(c)
	case stateTagOpened:
		return p.tagOpened(c)
	case stateInProcInst:
		return p.inProcInst(c)
	case stateInTagName:
		return p.inTagName(c)
	case stateInCloseTagName:
		return p.inCloseTagName(c)
	case stateInTag:
		return p.inTag(c)
	case stateInAttrName:
		return p.inAttrName(c)
	case stateInAttrValue:
		return p.inAttrValue(c)
	case stateExpectDelimiter:
		return p.expectDelimiter(c)
	case stateExpectClose:
		return p.expectClose(c)
	case stateExpectSpaceOrClose:
		return p.expectSpaceOrClose(c)
	case stateInExclamationMark:
		return p.inExclamationMark(c)
	case stateInCDataOpening:
		return p.inCDataOpening(c)
	case stateInCData:
		return p.inCData(c)
	case stateInCommentOpening:
		return p.inCommentOpening(c)
	case stateInComment1:
		return p.inComment1(c)
	case stateInComment2:
		return p.inComment2(c)
	default:
		return p.inDoctype(c)
	}
}

func (p *Parser) lexErr(kind ErrorKind) error {
	return &ParseError{Line: p.line, Col: p.col, Kind: kind}
}

func (p *Parser) takeBuf() string {
	s := string(p.buf)
	p.buf = p.buf[:0]
	return s
}

func (p *Parser) newAttrMap() *xmlutil.AttrMap {
	if p.ordered {
		return xmlutil.NewOrderedAttrMap()
	}
	return xmlutil.NewAttrMap()
}

func splitQName(s string) qname {
	prefix, local, hasPrefix := xmlutil.SplitQName(s)
	return qname{prefix: prefix, local: local, hasPrefix: hasPrefix}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// resolveTag resolves a tag name's prefix against the current scope.
// An unprefixed name takes the default namespace; an unbound prefix is
// a lexical error.
func (p *Parser) resolveTag(name qname) (string, error) {
	if !name.hasPrefix {
		uri, _ := p.ns.Resolve("")
		return uri, nil
	}
	uri, ok := p.ns.Resolve(name.prefix)
	if !ok {
		return "", p.lexErr(UnboundNsPrefixInTagName)
	}
	return uri, nil
}

// Outside any tag or other construct.
// '<' => TagOpened, flushing pending character data
func (p *Parser) outsideTag(c byte) (Event, error) {
	switch {
	case c == '<' && len(p.buf) == 0:
		p.st = stateTagOpened
	case c == '<':
		p.st = stateTagOpened
		text, err := entity.Unescape(p.takeBuf())
		if err != nil {
			return nil, p.lexErr(InvalidEntity)
		}
		return CharData(text), nil
	default:
		p.buf = append(p.buf, c)
	}
	return nil, nil
}

// Character following '<', starting a tag or other construct.
// '?' => InProcInst; '!' => InExclamationMark; '/' => InCloseTagName;
// anything else begins a tag name.
func (p *Parser) tagOpened(c byte) (Event, error) {
	switch c {
	case '?':
		p.st = stateInProcInst
	case '!':
		p.st = stateInExclamationMark
	case '/':
		p.st = stateInCloseTagName
	default:
		p.buf = append(p.buf, c)
		p.st = stateInTagName
	}
	return nil, nil
}

// Inside a processing instruction.
// '?' '>' => OutsideTag, producing ProcInst
func (p *Parser) inProcInst(c byte) (Event, error) {
	switch {
	case c == '?':
		p.level = 1
		p.buf = append(p.buf, c)
	case c == '>' && p.level == 1:
		p.level = 0
		p.st = stateOutsideTag
		p.buf = p.buf[:len(p.buf)-1]
		return ProcInst(p.takeBuf()), nil
	default:
		p.buf = append(p.buf, c)
	}
	return nil, nil
}

// Inside an opening tag name.
// '/' => ExpectClose, producing StartElement
// '>' => OutsideTag, producing StartElement
// whitespace => InTag, pre-registering the tag's namespace frame
func (p *Parser) inTagName(c byte) (Event, error) {
	switch {
	case c == '/' || c == '>':
		name := splitQName(p.takeBuf())
		space, err := p.resolveTag(name)
		if err != nil {
			return nil, err
		}
		p.ns.Push()
		if c == '/' {
			p.name, p.hasName = name, true
			p.st = stateExpectClose
		} else {
			p.st = stateOutsideTag
		}
		return StartElement{
			Local:  name.local,
			Space:  space,
			Prefix: name.prefix,
			Attr:   p.newAttrMap(),
		}, nil
	case isSpace(c):
		p.ns.Push()
		p.name, p.hasName = splitQName(p.takeBuf()), true
		p.st = stateInTag
	default:
		p.buf = append(p.buf, c)
	}
	return nil, nil
}

// Inside a closing tag name.
// '>' => OutsideTag, producing EndElement
// whitespace => ExpectSpaceOrClose, producing EndElement
func (p *Parser) inCloseTagName(c byte) (Event, error) {
	switch {
	case isSpace(c) || c == '>':
		name := splitQName(p.takeBuf())
		space, err := p.resolveTag(name)
		if err != nil {
			return nil, err
		}
		p.ns.Pop()
		if c == '>' {
			p.st = stateOutsideTag
		} else {
			p.st = stateExpectSpaceOrClose
		}
		return EndElement{Local: name.local, Space: space, Prefix: name.prefix}, nil
	default:
		p.buf = append(p.buf, c)
		return nil, nil
	}
}

// Inside a tag, between attributes.
// '/' => ExpectClose, producing StartElement
// '>' => OutsideTag, producing StartElement
// non-whitespace => InAttrName
func (p *Parser) inTag(c byte) (Event, error) {
	switch {
	case c == '/' || c == '>':
		pending := p.attrs
		p.attrs = nil
		name := p.name
		p.hasName = false
		space, err := p.resolveTag(name)
		if err != nil {
			return nil, err
		}

		// Attribute prefixes were recorded raw; the tag's namespace
		// frame is complete now, so resolve them.
		attrs := p.newAttrMap()
		for _, a := range pending {
			var aspace string
			if a.name.hasPrefix {
				uri, ok := p.ns.Resolve(a.name.prefix)
				if !ok {
					return nil, p.lexErr(UnboundNsPrefixInAttributeName)
				}
				aspace = uri
			}
			n := xmlutil.Name{Local: a.name.local, Space: aspace}
			if _, replaced := attrs.Set(n, a.value); replaced {
				return nil, p.lexErr(DuplicateAttribute)
			}
		}

		if c == '/' {
			p.name, p.hasName = name, true
			p.st = stateExpectClose
		} else {
			p.st = stateOutsideTag
		}
		return StartElement{
			Local:  name.local,
			Space:  space,
			Prefix: name.prefix,
			Attr:   attrs,
		}, nil
	case isSpace(c):
	default:
		p.buf = append(p.buf, c)
		p.st = stateInAttrName
	}
	return nil, nil
}

// Inside an attribute name.
// '=' => ExpectDelimiter
func (p *Parser) inAttrName(c byte) (Event, error) {
	switch {
	case c == '=':
		p.level = 0
		p.attr = splitQName(p.takeBuf())
		p.st = stateExpectDelimiter
	case isSpace(c):
		p.level = 1
	case p.level == 0:
		p.buf = append(p.buf, c)
	default:
		return nil, p.lexErr(SpaceInAttributeName)
	}
	return nil, nil
}

// Inside an attribute value.
// matching delimiter => InTag, recording the attribute
func (p *Parser) inAttrValue(c byte) (Event, error) {
	if c != p.delim {
		p.buf = append(p.buf, c)
		return nil, nil
	}
	p.delim = 0
	p.st = stateInTag
	value, err := entity.Unescape(p.takeBuf())
	if err != nil {
		return nil, p.lexErr(InvalidEntity)
	}

	// xmlns declarations bind into the tag's namespace frame as soon as
	// their value completes, so they are visible to the tag's own name
	// and its remaining attributes.
	switch {
	case !p.attr.hasPrefix && p.attr.local == "xmlns":
		p.ns.Bind("", value)
	case p.attr.hasPrefix && p.attr.prefix == "xmlns":
		p.ns.Bind(p.attr.local, value)
	}

	p.attrs = append(p.attrs, pendingAttr{name: p.attr, value: value})
	return nil, nil
}

// Looking for an attribute value delimiter.
// '"' or '\'' => InAttrValue
func (p *Parser) expectDelimiter(c byte) (Event, error) {
	switch {
	case c == '"' || c == '\'':
		p.delim = c
		p.st = stateInAttrValue
	case isSpace(c):
	default:
		return nil, p.lexErr(UndelimitedAttribute)
	}
	return nil, nil
}

// Expecting the closing '>' of an empty-element tag; no whitespace
// allowed.
// '>' => OutsideTag, producing the queued EndElement
func (p *Parser) expectClose(c byte) (Event, error) {
	if c != '>' {
		return nil, p.lexErr(ExpectedTagClose)
	}
	p.st = stateOutsideTag
	name := p.name
	p.hasName = false
	space, err := p.resolveTag(name)
	if err != nil {
		return nil, err
	}
	p.ns.Pop()
	return EndElement{Local: name.local, Space: space, Prefix: name.prefix}, nil
}

// Expecting the closing '>' of a close tag, whitespace allowed.
func (p *Parser) expectSpaceOrClose(c byte) (Event, error) {
	switch {
	case isSpace(c):
	case c == '>':
		p.st = stateOutsideTag
	default:
		return nil, p.lexErr(ExpectedLwsOrTagClose)
	}
	return nil, nil
}

// After "<!", determining the construct that follows.
// '-' => InCommentOpening; '[' => InCDataOpening; 'D' => InDoctype
func (p *Parser) inExclamationMark(c byte) (Event, error) {
	switch c {
	case '-':
		p.st = stateInCommentOpening
	case '[':
		p.st = stateInCDataOpening
	case 'D':
		p.st = stateInDoctype
	default:
		return nil, p.lexErr(MalformedXml)
	}
	return nil, nil
}

// Opening sequence of a CDATA section: the literal "CDATA[".
func (p *Parser) inCDataOpening(c byte) (Event, error) {
	if c != cdataPattern[p.level] {
		return nil, p.lexErr(InvalidCdataStart)
	}
	p.level++
	if p.level == len(cdataPattern) {
		p.level = 0
		p.st = stateInCData
	}
	return nil, nil
}

// Inside CDATA.
// ']' ']' '>' => OutsideTag, producing CData
func (p *Parser) inCData(c byte) (Event, error) {
	switch {
	case c == ']':
		p.buf = append(p.buf, c)
		p.level++
	case c == '>' && p.level >= 2:
		p.st = stateOutsideTag
		p.level = 0
		p.buf = p.buf[:len(p.buf)-2]
		return CData(p.takeBuf()), nil
	default:
		p.buf = append(p.buf, c)
		p.level = 0
	}
	return nil, nil
}

// Opening sequence of a comment: the second '-' of "<!--".
func (p *Parser) inCommentOpening(c byte) (Event, error) {
	if c != '-' {
		return nil, p.lexErr(InvalidCommentStart)
	}
	p.st = stateInComment1
	p.level = 0
	return nil, nil
}

// Inside a comment, watching for "--".
func (p *Parser) inComment1(c byte) (Event, error) {
	if c == '-' {
		p.level++
	} else {
		p.level = 0
	}
	if p.level == 2 {
		p.level = 0
		p.st = stateInComment2
	}
	p.buf = append(p.buf, c)
	return nil, nil
}

// Closing a comment: only '>' may follow "--".
func (p *Parser) inComment2(c byte) (Event, error) {
	if c != '>' {
		return nil, p.lexErr(InvalidCommentContent)
	}
	p.st = stateOutsideTag
	p.buf = p.buf[:len(p.buf)-2]
	return Comment(p.takeBuf()), nil
}

// Inside a DOCTYPE: "DOCTYPE" then whitespace, then discard to '>'.
// Produces no event.
func (p *Parser) inDoctype(c byte) (Event, error) {
	switch {
	case p.level < len(doctypePattern):
		if c != doctypePattern[p.level] {
			return nil, p.lexErr(InvalidDoctype)
		}
		p.level++
	case p.level == len(doctypePattern):
		if !isSpace(c) {
			return nil, p.lexErr(InvalidDoctype)
		}
		p.level++
	case c == '>':
		p.level = 0
		p.st = stateOutsideTag
	}
	return nil, nil
}
