package parser

// Option is a constructor option function for the Parser type.
type Option func(*Parser)

// WithOrderedAttributes makes the Parser record each tag's attributes
// in document order. The default stores them unordered.
func WithOrderedAttributes() Option {
	return func(p *Parser) { p.ordered = true }
}
