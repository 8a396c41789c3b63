/*
Package sxml is a set of streaming XML processing libraries.

Doing the heavy lifting of lexical analysis (a character-driven,
pull-based tokenizer with precise line/column diagnostics and in-scan
namespace resolution), tree building and namespace-correct
re-serialization, these libraries allow both SAX-style event consumption
and whole-document tree manipulation.

The parser package consumes any io.Reader and produces a sequence of
lexical events. The builder package reduces those events to an element
tree, and the document package holds the tree representation together
with a serializer that reconstructs namespace prefix declarations for
structurally modified trees.

See the parser and builder sub-directories for more information about
event streams and the tree construction entry points.
*/
package sxml
