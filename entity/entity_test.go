package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscape(t *testing.T) {
	for _, tc := range []struct {
		input string
		want  string
	}{
		{input: "", want: ""},
		{input: "plain text", want: "plain text"},
		{input: "&", want: "&amp;"},
		{input: "<>", want: "&lt;&gt;"},
		{input: `'"`, want: "&apos;&quot;"},
		{input: "a < b && c > d", want: "a &lt; b &amp;&amp; c &gt; d"},
		{input: "päse", want: "päse"},
	} {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.want, Escape(tc.input))
		})
	}
}

func TestUnescape(t *testing.T) {
	for _, tc := range []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "", want: ""},
		{input: "no entities here", want: "no entities here"},
		{input: "&amp;&lt;&gt;&apos;&quot;", want: `&<>'"`},
		{input: "it&apos;s", want: "it's"},
		{input: "&#65;&#66;", want: "AB"},
		{input: "&#x41;&#x2764;", want: "A❤"},
		{input: "&#xg;", wantErr: true},
		{input: "&#;", wantErr: true},
		{input: "&unknown;", wantErr: true},
		{input: "&amp", wantErr: true},
		{input: "a & b; c", wantErr: true},
		{input: "&#x110000;", wantErr: true},
	} {
		t.Run(tc.input, func(t *testing.T) {
			got, err := Unescape(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidEntity)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEscapeUnescapeRoundTrip(t *testing.T) {
	for _, s := range []string{
		"",
		"plain",
		`<a href='x'>"b" & c</a>`,
		"&amp; already escaped",
		"multi\nline\ttext",
	} {
		got, err := Unescape(Escape(s))
		assert.NoError(t, err)
		assert.Equal(t, s, got)
	}
}
