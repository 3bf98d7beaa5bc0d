package bill

import "strings"

type tokenKind int

const (
	tokText tokenKind = iota
	tokComma
	tokOpen
	tokClose
)

func (k tokenKind) String() string {
	switch k {
	case tokComma:
		return "','"
	case tokOpen:
		return "'['"
	case tokClose:
		return "']'"
	default:
		return "text"
	}
}

type token struct {
	kind tokenKind
	text string
}

// lex splits an item line on its delimiters. Text between delimiters is
// trimmed and whitespace-only runs produce no token.
func lex(s string) []token {
	var tokens []token
	start := 0
	flush := func(end int) {
		if text := strings.TrimSpace(s[start:end]); text != "" {
			tokens = append(tokens, token{kind: tokText, text: text})
		}
	}
	for i, r := range s {
		var kind tokenKind
		switch r {
		case ',':
			kind = tokComma
		case '[':
			kind = tokOpen
		case ']':
			kind = tokClose
		default:
			continue
		}
		flush(i)
		tokens = append(tokens, token{kind: kind, text: string(r)})
		start = i + 1
	}
	flush(len(s))
	return tokens
}
