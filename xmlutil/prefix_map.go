package xmlutil

// PrefixMap is a namespace URI to prefix map, the lookup direction a
// serializer needs when deciding how to render a resolved name.
type PrefixMap map[string]string

// NewPrefixMap returns a PrefixMap carrying the standard prefixes for
// the xml and xmlns namespaces.
func NewPrefixMap() PrefixMap {
	return PrefixMap{
		XMLNamespace:   "xml",
		XMLNSNamespace: "xmlns",
	}
}

// Prefix returns the prefix declared for the namespace URI.
func (m PrefixMap) Prefix(nsURI string) (string, bool) {
	prefix, ok := m[nsURI]
	return prefix, ok
}

// Bind declares prefix for the namespace URI.
func (m PrefixMap) Bind(nsURI, prefix string) { m[nsURI] = prefix }

// Clone returns a copy of the map.
func (m PrefixMap) Clone() PrefixMap {
	c := make(PrefixMap, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

// Extend returns a copy of m with o's declarations added. Declarations
// in o win over those in m.
func (m PrefixMap) Extend(o PrefixMap) PrefixMap {
	c := m.Clone()
	for k, v := range o {
		c[k] = v
	}
	return c
}
