package parser

import "fmt"

// ErrorKind discriminates the lexical failures a Parser can report.
type ErrorKind int

const (
	// UnboundNsPrefixInTagName reports a tag name prefix with no
	// binding anywhere on the namespace stack.
	UnboundNsPrefixInTagName ErrorKind = iota
	// UnboundNsPrefixInAttributeName reports an attribute name prefix
	// with no binding anywhere on the namespace stack.
	UnboundNsPrefixInAttributeName
	// SpaceInAttributeName reports whitespace inside an attribute name.
	SpaceInAttributeName
	// DuplicateAttribute reports two attributes resolving to the same
	// (name, namespace) pair on one tag.
	DuplicateAttribute
	// UndelimitedAttribute reports an attribute value not opened with
	// ' or ".
	UndelimitedAttribute
	// InvalidEntity reports a malformed entity or character reference.
	InvalidEntity
	// InvalidCdataStart reports a deviation from the "<![CDATA["
	// opening sequence.
	InvalidCdataStart
	// InvalidCommentStart reports a missing second '-' after "<!-".
	InvalidCommentStart
	// InvalidCommentContent reports "--" inside a comment not followed
	// by '>'.
	InvalidCommentContent
	// InvalidDoctype reports a malformed DOCTYPE declaration.
	InvalidDoctype
	// ExpectedTagClose reports a missing '>' after the '/' of an
	// empty-element tag.
	ExpectedTagClose
	// ExpectedLwsOrTagClose reports trailing non-whitespace before the
	// '>' of a close tag.
	ExpectedLwsOrTagClose
	// MalformedXml reports an unrecognized construct or a read failure
	// on the underlying byte source.
	MalformedXml
)

func (k ErrorKind) String() string {
	switch k {
	case UnboundNsPrefixInTagName:
		return "unbound namespace prefix in tag name"
	case UnboundNsPrefixInAttributeName:
		return "unbound namespace prefix in attribute name"
	case SpaceInAttributeName:
		return "space occurred in attribute name"
	case DuplicateAttribute:
		return "duplicate attribute"
	case UndelimitedAttribute:
		return "attribute value not enclosed in ' or \""
	case InvalidEntity:
		return "found invalid entity"
	case InvalidCdataStart:
		return "invalid CDATA opening sequence"
	case InvalidCommentStart:
		return "expected 2nd '-' to start comment"
	case InvalidCommentContent:
		return "no more than one adjacent '-' allowed in a comment"
	case InvalidDoctype:
		return "invalid DOCTYPE"
	case ExpectedTagClose:
		return "expected '>' to close tag"
	case ExpectedLwsOrTagClose:
		return "expected '>' to close tag, or whitespace"
	case MalformedXml:
		return "malformed XML"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ParseError is a lexical error carrying the 1-based line and column
// of the offending character.
type ParseError struct {
	Line int
	Col  int
	Kind ErrorKind
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Line, e.Col, e.Kind)
}
