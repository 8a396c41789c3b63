package parser

import "github.com/andaru/sxml/xmlutil"

// Event is one lexical unit produced by the Parser. It is a closed
// set: StartElement, EndElement, CharData, CData, Comment or ProcInst.
// Events are emitted in document order and are not buffered beyond the
// token currently being scanned.
type Event interface {
	isEvent()
}

// StartElement reports an opening tag, or the opening half of an
// empty-element tag (which is immediately followed by its EndElement).
type StartElement struct {
	// Local is the tag's local name.
	Local string
	// Space is the tag's resolved namespace URI, empty for none.
	Space string
	// Prefix is the namespace prefix as written, empty if unprefixed.
	Prefix string
	// Attr holds the tag's attributes keyed by resolved name.
	Attr *xmlutil.AttrMap
}

// EndElement reports a closing tag.
type EndElement struct {
	Local  string
	Space  string
	Prefix string
}

// CharData is character data found between tags, entity-unescaped.
type CharData string

// CData is the literal content of a CDATA section, never unescaped.
type CData string

// Comment is the content of a comment, excluding the "<!--" and "-->"
// markers.
type Comment string

// ProcInst is the content of a processing instruction, excluding the
// "<?" and "?>" markers.
type ProcInst string

func (StartElement) isEvent() {}
func (EndElement) isEvent()   {}
func (CharData) isEvent()     {}
func (CData) isEvent()        {}
func (Comment) isEvent()      {}
func (ProcInst) isEvent()     {}
