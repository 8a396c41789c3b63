/*
Package parser provides a streaming, pull-based XML tokenizer.

The Parser consumes one byte of its input per state transition, giving
exact line and column positions in errors, and resolves namespace
prefixes while scanning, so every StartElement and EndElement event
carries its resolved namespace URI. Events are produced lazily: call
Next until it returns io.EOF.

	p := parser.NewParser(r)
	for {
		ev, err := p.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			// lexical error with position; the parser is now exhausted
		}
		// handle ev
	}

Once a lexical error has been returned the Parser is poisoned: no
further events are produced and subsequent calls return io.EOF. Errors
are terminal, never retryable.
*/
package parser
