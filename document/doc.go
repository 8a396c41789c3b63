/*
Package document provides the in-memory XML element tree and its
serializer.

An Element owns its child nodes exclusively; children hold no reference
back to their parent, so trees are acyclic and freely mutable once
construction completes. The serializer re-derives namespace prefixes
while rendering, emitting xmlns declarations only where an element's
default namespace differs from its parent's, so structurally modified
trees still render as namespace-correct XML.
*/
package document
