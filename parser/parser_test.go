package parser

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andaru/sxml/xmlutil"
)

// collect pulls events until exhaustion or the first error.
func collect(input string, opts ...Option) ([]Event, error) {
	p := NewParser(strings.NewReader(input), opts...)
	var events []Event
	for {
		ev, err := p.Next()
		if err == io.EOF {
			return events, nil
		}
		if err != nil {
			return events, err
		}
		events = append(events, ev)
	}
}

func emptyAttrs() *xmlutil.AttrMap { return xmlutil.NewAttrMap() }

func TestStartTag(t *testing.T) {
	events, err := collect("<a>")
	require.NoError(t, err)
	assert.Equal(t, []Event{StartElement{Local: "a", Attr: emptyAttrs()}}, events)
}

func TestEndTag(t *testing.T) {
	events, err := collect("</a>")
	require.NoError(t, err)
	assert.Equal(t, []Event{EndElement{Local: "a"}}, events)
}

func TestSelfClosingWithSpace(t *testing.T) {
	events, err := collect("<register />")
	require.NoError(t, err)
	assert.Equal(t, []Event{
		StartElement{Local: "register", Attr: emptyAttrs()},
		EndElement{Local: "register"},
	}, events)
}

func TestSelfClosingWithoutSpace(t *testing.T) {
	events, err := collect("<register/>")
	require.NoError(t, err)
	assert.Equal(t, []Event{
		StartElement{Local: "register", Attr: emptyAttrs()},
		EndElement{Local: "register"},
	}, events)
}

func TestSelfClosingNamespace(t *testing.T) {
	events, err := collect("<foo:a xmlns:foo='urn:foo'/>")
	require.NoError(t, err)

	attrs := emptyAttrs()
	attrs.Set(xmlutil.Name{Local: "foo", Space: xmlutil.XMLNSNamespace}, "urn:foo")
	assert.Equal(t, []Event{
		StartElement{Local: "a", Space: "urn:foo", Prefix: "foo", Attr: attrs},
		EndElement{Local: "a", Space: "urn:foo", Prefix: "foo"},
	}, events)
}

func TestDefaultNamespace(t *testing.T) {
	events, err := collect("<a xmlns='urn:x'><b/></a>")
	require.NoError(t, err)

	attrs := emptyAttrs()
	attrs.Set(xmlutil.Name{Local: "xmlns"}, "urn:x")
	assert.Equal(t, []Event{
		StartElement{Local: "a", Space: "urn:x", Attr: attrs},
		StartElement{Local: "b", Space: "urn:x", Attr: emptyAttrs()},
		EndElement{Local: "b", Space: "urn:x"},
		EndElement{Local: "a", Space: "urn:x"},
	}, events)
}

func TestExplicitUnbinding(t *testing.T) {
	events, err := collect("<a xmlns:p='urn:x'><p:b xmlns:p=''/></a>")
	require.NoError(t, err)
	require.Len(t, events, 4)

	// p was explicitly unbound on b, so b resolves to no namespace
	b, ok := events[1].(StartElement)
	require.True(t, ok)
	assert.Equal(t, "b", b.Local)
	assert.Equal(t, "", b.Space)
	assert.Equal(t, "p", b.Prefix)
}

func TestProcessingInstruction(t *testing.T) {
	events, err := collect("<?xml version='1.0' encoding='utf-8'?>")
	require.NoError(t, err)
	assert.Equal(t, []Event{ProcInst("xml version='1.0' encoding='utf-8'")}, events)
}

func TestComment(t *testing.T) {
	events, err := collect("<!--Nothing to see-->")
	require.NoError(t, err)
	assert.Equal(t, []Event{Comment("Nothing to see")}, events)
}

func TestCData(t *testing.T) {
	events, err := collect("<![CDATA[<html><head><title>x</title></head><body/></html>]]>")
	require.NoError(t, err)
	assert.Equal(t, []Event{CData("<html><head><title>x</title></head><body/></html>")}, events)
}

func TestCDataTrailingBracket(t *testing.T) {
	// only the final "]]" belongs to the terminator
	events, err := collect("<![CDATA[a]]]>")
	require.NoError(t, err)
	assert.Equal(t, []Event{CData("a]")}, events)
}

func TestCDataNotUnescaped(t *testing.T) {
	events, err := collect("<a><![CDATA[&amp;]]></a>")
	require.NoError(t, err)
	assert.Equal(t, CData("&amp;"), events[1])
}

func TestCharacters(t *testing.T) {
	events, err := collect("<text>Hello World, it&apos;s a nice day</text>")
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, CharData("Hello World, it's a nice day"), events[1])
}

func TestDoctypeDiscarded(t *testing.T) {
	events, err := collect("<!DOCTYPE html>")
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestIncompleteTagNoEvent(t *testing.T) {
	// premature end of input: no partial event, no error
	events, err := collect("<a")
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestCloseTagTrailingWhitespace(t *testing.T) {
	events, err := collect("</a >")
	require.NoError(t, err)
	assert.Equal(t, []Event{EndElement{Local: "a"}}, events)
}

func TestAttributeOrder(t *testing.T) {
	want := []xmlutil.Attr{
		{Name: xmlutil.Name{Local: "href"}, Value: "/"},
		{Name: xmlutil.Name{Local: "title"}, Value: "Home"},
		{Name: xmlutil.Name{Local: "target"}, Value: "_blank"},
	}

	// run several times to make passing at random unlikely
	for i := 0; i < 5; i++ {
		events, err := collect("<a href='/' title='Home' target='_blank'>",
			WithOrderedAttributes())
		require.NoError(t, err)
		require.Len(t, events, 1)
		start, ok := events[0].(StartElement)
		require.True(t, ok)
		assert.True(t, start.Attr.Ordered())
		assert.Equal(t, want, start.Attr.Attrs())
	}
}

func TestLexicalErrors(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
		kind  ErrorKind
	}{
		{name: "unbound tag prefix", input: "<foo:a/>", kind: UnboundNsPrefixInTagName},
		{name: "unbound tag prefix with attrs", input: "<foo:a x='1'>", kind: UnboundNsPrefixInTagName},
		{name: "unbound close tag prefix", input: "<a></foo:a>", kind: UnboundNsPrefixInTagName},
		{name: "unbound attr prefix", input: "<a foo:x='1'/>", kind: UnboundNsPrefixInAttributeName},
		{name: "space in attr name", input: "<a x y='1'/>", kind: SpaceInAttributeName},
		{name: "duplicate attribute", input: "<a x='1' x='2'/>", kind: DuplicateAttribute},
		{name: "undelimited attribute", input: "<a x=1/>", kind: UndelimitedAttribute},
		{name: "invalid entity in text", input: "<a>&nope;</a>", kind: InvalidEntity},
		{name: "invalid entity in attr", input: "<a x='&nope;'/>", kind: InvalidEntity},
		{name: "invalid cdata start", input: "<![CDAT*x]]>", kind: InvalidCdataStart},
		{name: "invalid comment start", input: "<!-x", kind: InvalidCommentStart},
		{name: "invalid comment content", input: "<!--a--b-->", kind: InvalidCommentContent},
		{name: "invalid doctype literal", input: "<!DOCTYP>", kind: InvalidDoctype},
		{name: "doctype missing space", input: "<!DOCTYPEhtml>", kind: InvalidDoctype},
		{name: "expected tag close", input: "<a/ >", kind: ExpectedTagClose},
		{name: "expected lws or tag close", input: "</a b>", kind: ExpectedLwsOrTagClose},
		{name: "malformed bang construct", input: "<!x", kind: MalformedXml},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := collect(tc.input)
			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tc.kind, perr.Kind)
		})
	}
}

func TestErrorPosition(t *testing.T) {
	// the duplicate is reported at the tag's closing character
	_, err := collect("<a>\n  <b x='1' x='2'/>\n</a>")
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, DuplicateAttribute, perr.Kind)
	assert.Equal(t, 2, perr.Line)
	assert.Equal(t, 17, perr.Col)
}

func TestErrorPoisonsParser(t *testing.T) {
	p := NewParser(strings.NewReader("<foo:a/><b/>"))
	_, err := p.Next()
	var perr *ParseError
	require.ErrorAs(t, err, &perr)

	// exhausted from now on, the error is not re-raised
	for i := 0; i < 3; i++ {
		ev, err := p.Next()
		assert.Nil(t, ev)
		assert.Equal(t, io.EOF, err)
	}
}

func TestEventBeforeTerminalError(t *testing.T) {
	// the close tag event is emitted before the trailing junk errors
	events, err := collect("</a b>")
	assert.Equal(t, []Event{EndElement{Local: "a"}}, events)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, ExpectedLwsOrTagClose, perr.Kind)
}

func TestReadFailureIsMalformedXml(t *testing.T) {
	p := NewParser(iotest{})
	_, err := p.Next()
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, MalformedXml, perr.Kind)

	ev, err := p.Next()
	assert.Nil(t, ev)
	assert.Equal(t, io.EOF, err)
}

type iotest struct{}

func (iotest) Read([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestNestedSequence(t *testing.T) {
	events, err := collect("<a><b/><c/><b/></a>")
	require.NoError(t, err)
	require.Len(t, events, 8)
	assert.Equal(t, StartElement{Local: "a", Attr: emptyAttrs()}, events[0])
	assert.Equal(t, StartElement{Local: "b", Attr: emptyAttrs()}, events[1])
	assert.Equal(t, EndElement{Local: "b"}, events[2])
	assert.Equal(t, EndElement{Local: "a"}, events[7])
}
