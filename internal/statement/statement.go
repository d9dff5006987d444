// Package statement turns SQL text plus named parameters into one
// fully-inlined statement string, and classifies statements by their
// leading keyword so the caller knows what shape of result to expect.
package statement

import (
	"fmt"
	"strings"

	"github.com/koustreak/EasySQL/internal/engine"
	"github.com/koustreak/EasySQL/internal/errs"
	"github.com/koustreak/EasySQL/internal/literal"
)

// Kind is the classified statement kind. It decides the result shape:
// rows for SELECT, a generated key for INSERT, an affected-row count for
// UPDATE and DELETE, and a success flag for everything else.
type Kind int

const (
	KindOther Kind = iota
	KindSelect
	KindInsert
	KindUpdate
	KindDelete
)

func (k Kind) String() string {
	switch k {
	case KindSelect:
		return "select"
	case KindInsert:
		return "insert"
	case KindUpdate:
		return "update"
	case KindDelete:
		return "delete"
	default:
		return "other"
	}
}

// Classify inspects the leading keyword of a statement. Matching is
// case-insensitive and ignores leading whitespace; the keyword must be
// followed by whitespace to count.
func Classify(sql string) Kind {
	trimmed := strings.ToLower(strings.TrimSpace(sql))

	switch {
	case hasKeyword(trimmed, "select"):
		return KindSelect
	case hasKeyword(trimmed, "insert"):
		return KindInsert
	case hasKeyword(trimmed, "update"):
		return KindUpdate
	case hasKeyword(trimmed, "delete"):
		return KindDelete
	}
	return KindOther
}

func hasKeyword(trimmed, kw string) bool {
	if !strings.HasPrefix(trimmed, kw) {
		return false
	}
	rest := trimmed[len(kw):]
	return rest != "" && isSpace(rest[0])
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// Bind replaces every :name placeholder in text with the escaped literal
// rendering of params[name]. Placeholders inside string literals, quoted
// identifiers, comments, and postgres :: casts are left untouched.
//
// A placeholder without a matching parameter, and a parameter without a
// matching placeholder, are both hard errors.
func Bind(d engine.Dialect, text string, params map[string]any) (string, error) {
	var out strings.Builder
	out.Grow(len(text))

	used := make(map[string]bool, len(params))

	for i := 0; i < len(text); {
		c := text[i]

		switch {
		case c == '\'':
			i = copyQuoted(&out, text, i, '\'')
		case c == '"':
			i = copyQuoted(&out, text, i, '"')
		case c == '`':
			i = copyQuoted(&out, text, i, '`')
		case c == '-' && i+1 < len(text) && text[i+1] == '-':
			i = copyLineComment(&out, text, i)
		case c == '/' && i+1 < len(text) && text[i+1] == '*':
			i = copyBlockComment(&out, text, i)
		case c == ':':
			// A double colon is a postgres cast, not a parameter.
			if i+1 < len(text) && text[i+1] == ':' {
				out.WriteString("::")
				i += 2
				continue
			}
			name, next := readName(text, i+1)
			if name == "" {
				out.WriteByte(c)
				i++
				continue
			}
			value, ok := params[name]
			if !ok {
				return "", errs.New(errs.ErrKindInvalidInput,
					fmt.Sprintf("statement references :%s but no such parameter was given", name))
			}
			rendered, err := literal.Render(d, value)
			if err != nil {
				return "", err
			}
			out.WriteString(rendered)
			used[name] = true
			i = next
		default:
			out.WriteByte(c)
			i++
		}
	}

	for name := range params {
		if !used[name] {
			return "", errs.New(errs.ErrKindInvalidInput,
				fmt.Sprintf("parameter %q does not appear in the statement", name))
		}
	}

	return out.String(), nil
}

// readName reads a parameter name starting at position i. Names begin with
// a letter or underscore and continue with letters, digits, or underscores.
func readName(text string, i int) (string, int) {
	start := i
	if i >= len(text) || !isNameStart(text[i]) {
		return "", i
	}
	for i < len(text) && isNameChar(text[i]) {
		i++
	}
	return text[start:i], i
}

func isNameStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameChar(c byte) bool {
	return isNameStart(c) || (c >= '0' && c <= '9')
}

// copyQuoted copies a quoted region verbatim, honoring doubled quote
// characters as escapes. Returns the position after the closing quote.
func copyQuoted(out *strings.Builder, text string, i int, quote byte) int {
	out.WriteByte(text[i])
	i++
	for i < len(text) {
		out.WriteByte(text[i])
		if text[i] == quote {
			// Doubled quote: still inside the region.
			if i+1 < len(text) && text[i+1] == quote {
				out.WriteByte(text[i+1])
				i += 2
				continue
			}
			return i + 1
		}
		i++
	}
	return i
}

func copyLineComment(out *strings.Builder, text string, i int) int {
	for i < len(text) && text[i] != '\n' {
		out.WriteByte(text[i])
		i++
	}
	return i
}

func copyBlockComment(out *strings.Builder, text string, i int) int {
	out.WriteString("/*")
	i += 2
	for i < len(text) {
		if text[i] == '*' && i+1 < len(text) && text[i+1] == '/' {
			out.WriteString("*/")
			return i + 2
		}
		out.WriteByte(text[i])
		i++
	}
	return i
}
