package xmlutil

import "strings"

// Namespace URIs bound implicitly in every document.
const (
	// XMLNamespace is the namespace of the reserved "xml" prefix.
	XMLNamespace = "http://www.w3.org/XML/1998/namespace"
	// XMLNSNamespace is the namespace of namespace declarations themselves.
	XMLNSNamespace = "http://www.w3.org/2000/xmlns/"
)

// Name identifies an element or attribute by local name and resolved
// namespace URI. An empty Space means the name is in no namespace.
type Name struct {
	Local string
	Space string
}

// Attr is a single attribute value with its resolved Name.
type Attr struct {
	Name  Name
	Value string
}

// SplitQName splits a qualified name into its prefix and local part.
// Names without a colon have no prefix.
func SplitQName(qname string) (prefix, local string, hasPrefix bool) {
	if i := strings.IndexByte(qname, ':'); i >= 0 {
		return qname[:i], qname[i+1:], true
	}
	return "", qname, false
}
