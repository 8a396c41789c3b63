package xmlutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrefixMap(t *testing.T) {
	a := assert.New(t)

	m := NewPrefixMap()
	pfx, ok := m.Prefix(XMLNamespace)
	a.True(ok)
	a.Equal("xml", pfx)
	pfx, ok = m.Prefix(XMLNSNamespace)
	a.True(ok)
	a.Equal("xmlns", pfx)

	m.Bind("urn:foo", "foo")
	pfx, ok = m.Prefix("urn:foo")
	a.True(ok)
	a.Equal("foo", pfx)

	_, ok = m.Prefix("urn:unknown")
	a.False(ok)
}

func TestPrefixMapExtend(t *testing.T) {
	a := assert.New(t)

	base := PrefixMap{"urn:a": "a", "urn:b": "b"}
	ext := base.Extend(PrefixMap{"urn:b": "bee", "urn:c": "c"})

	// extension wins on conflict, base is untouched
	pfx, _ := ext.Prefix("urn:b")
	a.Equal("bee", pfx)
	pfx, _ = ext.Prefix("urn:a")
	a.Equal("a", pfx)
	pfx, _ = ext.Prefix("urn:c")
	a.Equal("c", pfx)
	pfx, _ = base.Prefix("urn:b")
	a.Equal("b", pfx)
	_, ok := base.Prefix("urn:c")
	a.False(ok)
}
