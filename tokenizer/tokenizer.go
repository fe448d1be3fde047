package tokenizer

import (
	"strings"

	domerrors "github.com/veryhappydom/happydom/errors"
)

// Tokenizer streams Tokens from a complete HTML source string (spec.md
// §4.2). It holds no callback/sink state; Next is called in a loop until
// it returns an EOF token or an error.
type Tokenizer struct {
	src []byte
	pos int
	// line/col track the 1-based position of the next character to be
	// consumed, used only to annotate MalformedHTMLError.
	line, col int
}

// New creates a tokenizer over src.
func New(src string) *Tokenizer {
	return &Tokenizer{src: []byte(src), line: 1, col: 1}
}

func isNameByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9') || b == '_' || b == ':' || b == '-'
}

func isAsciiLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f'
}

func (t *Tokenizer) eof() bool { return t.pos >= len(t.src) }

func (t *Tokenizer) peekAt(offset int) byte {
	i := t.pos + offset
	if i >= len(t.src) {
		return 0
	}
	return t.src[i]
}

func (t *Tokenizer) advance() byte {
	b := t.src[t.pos]
	t.pos++
	if b == '\n' {
		t.line++
		t.col = 1
	} else {
		t.col++
	}
	return b
}

func (t *Tokenizer) skipSpaces() {
	for !t.eof() && isSpace(t.src[t.pos]) {
		t.advance()
	}
}

// angleKind classifies what a '<' at the current position begins.
type angleKind int

const (
	angleNone angleKind = iota
	angleTagOpen
	angleEndTagOpen
	angleCommentOpen
)

// classifyAngle reports what kind of construct begins at t.pos, which
// must hold '<'. It never advances t.pos.
func (t *Tokenizer) classifyAngle() angleKind {
	if t.peekAt(1) == '/' && isAsciiLetter(t.peekAt(2)) {
		return angleEndTagOpen
	}
	if isAsciiLetter(t.peekAt(1)) {
		return angleTagOpen
	}
	if t.peekAt(1) == '!' && t.peekAt(2) == '-' && t.peekAt(3) == '-' {
		return angleCommentOpen
	}
	return angleNone
}

// Next returns the next token. At end of input it returns a Kind: EOF
// token with a nil error. The only error Next ever returns is
// MalformedHTMLError, for an unterminated comment (spec.md §4.2/§7); all
// other malformed input degrades to text or is silently dropped.
func (t *Tokenizer) Next() (Token, error) {
	if t.eof() {
		return Token{Kind: EOF}, nil
	}

	var text strings.Builder
	for !t.eof() {
		if t.src[t.pos] == '<' && t.classifyAngle() != angleNone {
			break
		}
		text.WriteByte(t.advance())
	}
	if text.Len() > 0 {
		return Token{Kind: Character, Data: text.String()}, nil
	}

	if t.eof() {
		return Token{Kind: EOF}, nil
	}

	switch t.classifyAngle() {
	case angleCommentOpen:
		return t.readComment()
	case angleEndTagOpen:
		return t.readEndTag()
	case angleTagOpen:
		return t.readStartTag()
	default:
		// Unreachable: the scan loop above only stops on a recognized
		// angle kind or EOF.
		return Token{Kind: EOF}, nil
	}
}

// readComment consumes `<!--…-->`. An unterminated comment is the one
// tokenizer failure spec.md promotes to MalformedHTMLError instead of
// silent recovery.
func (t *Tokenizer) readComment() (Token, error) {
	startLine, startCol := t.line, t.col
	t.pos += 4 // consume "<!--"
	t.col += 4

	start := t.pos
	for !t.eof() {
		if t.peekAt(0) == '-' && t.peekAt(1) == '-' && t.peekAt(2) == '>' {
			data := string(t.src[start:t.pos])
			t.advance()
			t.advance()
			t.advance()
			return Token{Kind: Comment, Data: data}, nil
		}
		t.advance()
	}
	return Token{}, &domerrors.MalformedHTMLError{
		Message: "unterminated comment",
		Line:    startLine,
		Column:  startCol,
	}
}

// readEndTag consumes `</name>`, discarding any trailing garbage up to
// '>'. An end tag left unterminated at EOF is dropped entirely (no
// token produced for it).
func (t *Tokenizer) readEndTag() (Token, error) {
	savedPos, savedLine, savedCol := t.pos, t.line, t.col
	t.advance() // '<'
	t.advance() // '/'

	var name strings.Builder
	for !t.eof() && isNameByte(t.src[t.pos]) {
		name.WriteByte(t.advance())
	}
	for !t.eof() && t.src[t.pos] != '>' {
		t.advance()
	}
	if t.eof() {
		t.pos, t.line, t.col = savedPos, savedLine, savedCol
		t.pos = len(t.src)
		return t.Next()
	}
	t.advance() // '>'
	return Token{Kind: EndTag, Name: strings.ToLower(name.String())}, nil
}

// readStartTag consumes `<name attrs…>` or `<name attrs… />`. An open
// tag left unterminated at EOF is dropped entirely, per spec.md §4.2.
func (t *Tokenizer) readStartTag() (Token, error) {
	savedPos, savedLine, savedCol := t.pos, t.line, t.col
	t.advance() // '<'

	var name strings.Builder
	for !t.eof() && isNameByte(t.src[t.pos]) {
		name.WriteByte(t.advance())
	}

	var attrs []Attr
	selfClosing := false
	ok := t.readAttrs(&attrs, &selfClosing)
	if !ok {
		t.pos, t.line, t.col = savedPos, savedLine, savedCol
		t.pos = len(t.src)
		return t.Next()
	}

	return Token{
		Kind:        StartTag,
		Name:        strings.ToLower(name.String()),
		Attrs:       attrs,
		SelfClosing: selfClosing,
	}, nil
}

// readAttrs parses zero or more attr-name[=attr-value] pairs up to the
// tag's closing '>' or '/>'. It returns false if EOF is reached before
// the tag closes.
func (t *Tokenizer) readAttrs(attrs *[]Attr, selfClosing *bool) bool {
	for {
		t.skipSpaces()
		if t.eof() {
			return false
		}
		if t.src[t.pos] == '/' && t.peekAt(1) == '>' {
			t.advance()
			t.advance()
			*selfClosing = true
			return true
		}
		if t.src[t.pos] == '>' {
			t.advance()
			return true
		}
		if !isNameByte(t.src[t.pos]) {
			// Tolerant recovery: skip one unrecognized byte rather than
			// failing the whole tag.
			t.advance()
			continue
		}

		var name strings.Builder
		for !t.eof() && isNameByte(t.src[t.pos]) {
			name.WriteByte(t.advance())
		}
		t.skipSpaces()

		value := ""
		if !t.eof() && t.src[t.pos] == '=' {
			t.advance()
			t.skipSpaces()
			if t.eof() {
				return false
			}
			switch t.src[t.pos] {
			case '"':
				t.advance()
				v, ok := t.readQuoted('"')
				if !ok {
					return false
				}
				value = v
			case '\'':
				t.advance()
				v, ok := t.readQuoted('\'')
				if !ok {
					return false
				}
				value = v
			default:
				var sb strings.Builder
				for !t.eof() && !isSpace(t.src[t.pos]) && t.src[t.pos] != '>' {
					sb.WriteByte(t.advance())
				}
				value = sb.String()
			}
		}
		*attrs = append(*attrs, Attr{Name: strings.ToLower(name.String()), Value: value})
	}
}

func (t *Tokenizer) readQuoted(quote byte) (string, bool) {
	var sb strings.Builder
	for !t.eof() {
		if t.src[t.pos] == quote {
			t.advance()
			return sb.String(), true
		}
		sb.WriteByte(t.advance())
	}
	return "", false
}

// Tokenize runs Next to completion and returns every token up to but
// not including the terminal EOF token.
func Tokenize(src string) ([]Token, error) {
	t := New(src)
	var out []Token
	for {
		tok, err := t.Next()
		if err != nil {
			return out, err
		}
		if tok.Kind == EOF {
			return out, nil
		}
		out = append(out, tok)
	}
}
