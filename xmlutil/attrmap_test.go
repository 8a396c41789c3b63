package xmlutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttrMapSetGetRemove(t *testing.T) {
	a := assert.New(t)
	m := NewAttrMap()
	a.False(m.Ordered())
	a.Equal(0, m.Len())

	n := Name{Local: "href"}
	prev, replaced := m.Set(n, "/")
	a.False(replaced)
	a.Equal("", prev)

	v, ok := m.Get(n)
	a.True(ok)
	a.Equal("/", v)

	prev, replaced = m.Set(n, "/home")
	a.True(replaced)
	a.Equal("/", prev)
	a.Equal(1, m.Len())

	// same local name in another namespace is a distinct key
	m.Set(Name{Local: "href", Space: "urn:x"}, "other")
	a.Equal(2, m.Len())

	prev, ok = m.Remove(n)
	a.True(ok)
	a.Equal("/home", prev)
	_, ok = m.Get(n)
	a.False(ok)

	_, ok = m.Remove(Name{Local: "missing"})
	a.False(ok)
}

func TestOrderedAttrMap(t *testing.T) {
	a := assert.New(t)
	m := NewOrderedAttrMap()
	a.True(m.Ordered())

	names := []Name{
		{Local: "href"},
		{Local: "title"},
		{Local: "target"},
	}
	for i, n := range names {
		m.Set(n, string(rune('a'+i)))
	}

	// overwriting must not disturb insertion order
	m.Set(names[0], "z")

	attrs := m.Attrs()
	a.Len(attrs, 3)
	for i, n := range names {
		a.Equal(n, attrs[i].Name)
	}
	a.Equal("z", attrs[0].Value)

	// removal keeps the remaining order
	m.Remove(names[1])
	attrs = m.Attrs()
	a.Len(attrs, 2)
	a.Equal(names[0], attrs[0].Name)
	a.Equal(names[2], attrs[1].Name)
}

func TestAttrMapAttrsEmpty(t *testing.T) {
	assert.Nil(t, NewAttrMap().Attrs())
	assert.Nil(t, NewOrderedAttrMap().Attrs())
}
