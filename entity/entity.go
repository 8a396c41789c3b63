// Package entity escapes and unescapes the five predefined XML
// entities and numeric character references.
package entity

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// ErrInvalidEntity indicates a '&' not followed by a recognized,
// ';'-terminated entity or character reference.
var ErrInvalidEntity = errors.New("invalid entity")

const escapable = `&<>'"`

// Escape returns text with '&', '<', '>', '\'' and '"' replaced by
// their predefined entities. Text without any of those characters is
// returned unchanged.
func Escape(text string) string {
	if !strings.ContainsAny(text, escapable) {
		return text
	}
	var b strings.Builder
	b.Grow(len(text) + 4*5)
	for i := 0; i < len(text); i++ {
		switch c := text[i]; c {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '\'':
			b.WriteString("&apos;")
		case '"':
			b.WriteString("&quot;")
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Unescape expands the predefined entities and decimal ("&#NNN;") or
// hexadecimal ("&#xHHH;") character references in text. Input
// containing no '&' is returned as is without allocating.
func Unescape(text string) (string, error) {
	if strings.IndexByte(text, '&') < 0 {
		return text, nil
	}
	var b strings.Builder
	b.Grow(len(text))
	for {
		i := strings.IndexByte(text, '&')
		if i < 0 {
			b.WriteString(text)
			break
		}
		b.WriteString(text[:i])
		text = text[i:]
		end := strings.IndexByte(text, ';')
		if end < 0 {
			return "", errors.WithStack(ErrInvalidEntity)
		}
		switch ent := text[1:end]; {
		case ent == "amp":
			b.WriteByte('&')
		case ent == "lt":
			b.WriteByte('<')
		case ent == "gt":
			b.WriteByte('>')
		case ent == "apos":
			b.WriteByte('\'')
		case ent == "quot":
			b.WriteByte('"')
		case strings.HasPrefix(ent, "#x"):
			r, err := parseCharRef(ent[2:], 16)
			if err != nil {
				return "", err
			}
			b.WriteRune(r)
		case strings.HasPrefix(ent, "#"):
			r, err := parseCharRef(ent[1:], 10)
			if err != nil {
				return "", err
			}
			b.WriteRune(r)
		default:
			return "", errors.WithStack(ErrInvalidEntity)
		}
		text = text[end+1:]
	}
	return b.String(), nil
}

func parseCharRef(digits string, base int) (rune, error) {
	n, err := strconv.ParseUint(digits, base, 32)
	if err != nil || n > utf8.MaxRune {
		return 0, errors.WithStack(ErrInvalidEntity)
	}
	return rune(n), nil
}
