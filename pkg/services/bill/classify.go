package bill

import (
	"fmt"
	"strings"

	"github.com/de-tools/billsplit/pkg/models/domain"
)

type LineKind int

const (
	ItemLine LineKind = iota + 1
	ChargeLine
	DiscountLine
)

func (k LineKind) String() string {
	switch k {
	case ItemLine:
		return "item"
	case ChargeLine:
		return "charge"
	case DiscountLine:
		return "discount"
	default:
		return fmt.Sprintf("LineKind(%d)", int(k))
	}
}

// directiveKeywords maps a lower-cased keyword to its line kind.
// "disount" is a misspelling found in real bill files.
var directiveKeywords = map[string]LineKind{
	"charge":   ChargeLine,
	"discount": DiscountLine,
	"disount":  DiscountLine,
}

// Line is a classified input line.
type Line struct {
	Kind LineKind
	Text string

	// Body is the text after the directive keyword and colon.
	Body string

	// Item fields, set for ItemLine only.
	Name         string
	Participants []string
	Price        string
}

// Classify tags a trimmed, non-blank line as an item, charge or discount
// line. Item lines must match `<name>,[<p>(,<p>)*],<price>`.
func Classify(text string) (Line, error) {
	if keyword, body, ok := strings.Cut(text, ":"); ok {
		if kind, found := directiveKeywords[strings.ToLower(strings.TrimSpace(keyword))]; found {
			return Line{Kind: kind, Text: text, Body: strings.TrimSpace(body)}, nil
		}
	}

	line := Line{Kind: ItemLine, Text: text}
	p := &itemScanner{tokens: lex(text), text: text}
	if err := p.scan(&line); err != nil {
		return Line{}, err
	}
	return line, nil
}

type itemScanner struct {
	tokens []token
	pos    int
	text   string
}

func (p *itemScanner) peek() (token, bool) {
	if p.pos >= len(p.tokens) {
		return token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *itemScanner) expect(kind tokenKind, what string) (token, error) {
	tok, ok := p.peek()
	if !ok {
		return token{}, p.fail("expected %s, got end of line", what)
	}
	if tok.kind != kind {
		return token{}, p.fail("expected %s, got %q", what, tok.text)
	}
	p.pos++
	return tok, nil
}

func (p *itemScanner) fail(format string, args ...any) error {
	return &domain.MalformedLineError{Text: p.text, Reason: fmt.Sprintf(format, args...)}
}

func (p *itemScanner) scan(line *Line) error {
	if tok, ok := p.peek(); ok && tok.kind == tokText {
		line.Name = tok.text
		p.pos++
	}
	if _, err := p.expect(tokComma, "',' after item name"); err != nil {
		return err
	}
	if _, err := p.expect(tokOpen, "'[' opening the participant list"); err != nil {
		return err
	}

	participants := []string{}
	if tok, ok := p.peek(); !ok || tok.kind != tokClose {
		for {
			name, err := p.expect(tokText, "participant name")
			if err != nil {
				return err
			}
			participants = append(participants, name.text)

			tok, ok := p.peek()
			if !ok {
				return p.fail("unterminated participant list")
			}
			if tok.kind == tokClose {
				break
			}
			if _, err := p.expect(tokComma, "',' or ']' in participant list"); err != nil {
				return err
			}
		}
	}
	line.Participants = participants

	if _, err := p.expect(tokClose, "']' closing the participant list"); err != nil {
		return err
	}
	if _, err := p.expect(tokComma, "',' before price"); err != nil {
		return err
	}
	price, err := p.expect(tokText, "price")
	if err != nil {
		return err
	}
	line.Price = price.text

	if tok, ok := p.peek(); ok {
		return p.fail("unexpected %s after price", tok.kind)
	}
	return nil
}
