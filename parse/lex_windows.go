package parse

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Split splits a command string into arguments following cmd.exe conventions:
// double quotes group, ^ escapes the next character outside quotes and
// backslashes are literal unless they precede a double quote.
func Split(s string) ([]string, error) {
	tokens := []string{}
	var arg strings.Builder
	inQuotes := false
	pending := false

	flush := func() {
		if arg.Len() > 0 || pending {
			tokens = append(tokens, arg.String())
			arg.Reset()
		}
		pending = false
	}

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return nil, fmt.Errorf("invalid UTF-8 encoding at position %d", i)
		}

		switch {
		case r == '^' && !inQuotes:
			i += size
			if i < len(s) {
				next, nextSize := utf8.DecodeRuneInString(s[i:])
				arg.WriteRune(next)
				i += nextSize
			}
			continue
		case r == '"':
			inQuotes = !inQuotes
			pending = true
		case r == '\\':
			n := 0
			for i < len(s) && s[i] == '\\' {
				n++
				i++
			}
			if i < len(s) && s[i] == '"' {
				arg.WriteString(strings.Repeat("\\", n/2))
				if n%2 == 0 {
					inQuotes = !inQuotes
					pending = true
				} else {
					arg.WriteByte('"')
				}
				i++
			} else {
				arg.WriteString(strings.Repeat("\\", n))
			}
			continue
		case !inQuotes && (r == ' ' || r == '\t' || r == '\n' || r == '\r'):
			flush()
		default:
			arg.WriteRune(r)
		}
		i += size
	}

	if inQuotes {
		return nil, fmt.Errorf("unterminated quote in %q", s)
	}
	flush()

	return tokens, nil
}
