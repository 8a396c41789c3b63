package xmlutil

// AttrMap stores attribute values keyed by resolved Name. Keys are
// unique; setting an existing key overwrites its value and reports the
// previous one. By default iteration follows Go map order; an ordered
// AttrMap additionally records insertion order and iterates in it.
type AttrMap struct {
	values map[Name]string
	order  []Name // non-nil when insertion order is tracked
}

// NewAttrMap returns an empty AttrMap with unordered iteration.
func NewAttrMap() *AttrMap {
	return &AttrMap{values: make(map[Name]string)}
}

// NewOrderedAttrMap returns an empty AttrMap which preserves insertion
// order during iteration.
func NewOrderedAttrMap() *AttrMap {
	return &AttrMap{values: make(map[Name]string), order: []Name{}}
}

// Ordered reports whether the map preserves insertion order.
func (m *AttrMap) Ordered() bool { return m.order != nil }

// Len returns the number of attributes stored.
func (m *AttrMap) Len() int { return len(m.values) }

// Get returns the value stored for n.
func (m *AttrMap) Get(n Name) (string, bool) {
	v, ok := m.values[n]
	return v, ok
}

// Set stores value for n, returning the previous value if n was
// already present.
func (m *AttrMap) Set(n Name, value string) (prev string, replaced bool) {
	prev, replaced = m.values[n]
	m.values[n] = value
	if m.order != nil && !replaced {
		m.order = append(m.order, n)
	}
	return prev, replaced
}

// Remove deletes n, returning the value it had if present.
func (m *AttrMap) Remove(n Name) (string, bool) {
	prev, ok := m.values[n]
	if !ok {
		return "", false
	}
	delete(m.values, n)
	if m.order != nil {
		for i := range m.order {
			if m.order[i] == n {
				m.order = append(m.order[:i], m.order[i+1:]...)
				break
			}
		}
	}
	return prev, true
}

// Attrs returns a snapshot of the attributes in iteration order.
func (m *AttrMap) Attrs() []Attr {
	if m.Len() == 0 {
		return nil
	}
	attrs := make([]Attr, 0, len(m.values))
	if m.order != nil {
		for _, n := range m.order {
			attrs = append(attrs, Attr{Name: n, Value: m.values[n]})
		}
		return attrs
	}
	for n, v := range m.values {
		attrs = append(attrs, Attr{Name: n, Value: v})
	}
	return attrs
}
