package xmlutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitQName(t *testing.T) {
	for _, tc := range []struct {
		qname     string
		prefix    string
		local     string
		hasPrefix bool
	}{
		{qname: "a", local: "a"},
		{qname: "foo:a", prefix: "foo", local: "a", hasPrefix: true},
		{qname: "xmlns:foo", prefix: "xmlns", local: "foo", hasPrefix: true},
		{qname: ":a", prefix: "", local: "a", hasPrefix: true},
		{qname: "a:", prefix: "a", local: "", hasPrefix: true},
		{qname: "", local: ""},
	} {
		t.Run(tc.qname, func(t *testing.T) {
			prefix, local, hasPrefix := SplitQName(tc.qname)
			assert.Equal(t, tc.prefix, prefix)
			assert.Equal(t, tc.local, local)
			assert.Equal(t, tc.hasPrefix, hasPrefix)
		})
	}
}
