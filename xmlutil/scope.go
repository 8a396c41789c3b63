package xmlutil

// Scope is a stack of namespace prefix bindings. A frame is pushed when
// an element opens and popped when it closes, so the stack mirrors the
// open-element chain of the document being scanned.
//
// Scope is not safe for concurrent use.
type Scope struct {
	frames []map[string]string
}

// NewScope returns a Scope whose root frame carries the standard
// bindings for the "xml" and "xmlns" prefixes.
func NewScope() *Scope {
	root := map[string]string{
		"xml":   XMLNamespace,
		"xmlns": XMLNSNamespace,
	}
	return &Scope{frames: []map[string]string{root}}
}

// Push opens a new innermost frame. The frame's storage is allocated
// lazily on the first Bind.
func (s *Scope) Push() { s.frames = append(s.frames, nil) }

// Pop discards the innermost frame.
func (s *Scope) Pop() {
	if n := len(s.frames); n > 0 {
		s.frames = s.frames[:n-1]
	}
}

// Depth returns the number of frames on the stack.
func (s *Scope) Depth() int { return len(s.frames) }

// Bind records a binding from prefix to uri in the innermost frame.
// The empty prefix binds the default namespace. An empty uri records an
// explicit unbinding of the prefix.
func (s *Scope) Bind(prefix, uri string) {
	if len(s.frames) == 0 {
		s.frames = append(s.frames, nil)
	}
	top := s.frames[len(s.frames)-1]
	if top == nil {
		top = make(map[string]string, 1)
		s.frames[len(s.frames)-1] = top
	}
	top[prefix] = uri
}

// Resolve looks prefix up from the innermost frame outward. ok reports
// whether any frame binds the prefix; ok with an empty uri means the
// prefix was explicitly unbound and resolves to no namespace, which is
// distinct from the prefix never having been bound at all.
func (s *Scope) Resolve(prefix string) (uri string, ok bool) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if s.frames[i] == nil {
			continue
		}
		if uri, ok = s.frames[i][prefix]; ok {
			return uri, true
		}
	}
	return "", false
}
