package parser

import "strings"

// Lexer turns VB6 source text into a stream of tokens. It never fails:
// bytes it cannot classify come back as Unknown tokens so the caller can
// keep going and still reproduce the input byte for byte.
type Lexer struct {
	input  []byte
	file   string
	pos    int
	line   int
	column int
}

func NewLexer(file string, input []byte) *Lexer {
	return &Lexer{
		input:  input,
		file:   file,
		line:   1,
		column: 1,
	}
}

// Tokenize lexes src to completion, including the final EOF token.
func Tokenize(file, src string) []Token {
	lexer := NewLexer(file, []byte(src))
	var tokens []Token
	for {
		tok := lexer.Next()
		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			return tokens
		}
	}
}

func (l *Lexer) position() Position {
	return Position{File: l.file, Offset: l.pos, Line: l.line, Column: l.column}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekN(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) advance() byte {
	c := l.input[l.pos]
	l.pos++
	if c == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return c
}

func (l *Lexer) token(kind TokenKind, start Position) Token {
	return Token{
		Kind:    kind,
		Span:    Span{Start: start, End: l.position()},
		Literal: string(l.input[start.Offset:l.pos]),
	}
}

// Next returns the next token. After the input is exhausted it returns
// EOF tokens forever.
func (l *Lexer) Next() Token {
	start := l.position()
	c := l.peek()
	switch {
	case l.pos >= len(l.input):
		return l.token(TokenEOF, start)
	case c == ' ' || c == '\t':
		return l.scanWhitespace(start)
	case c == '_' && l.continuesLine(0):
		return l.scanWhitespace(start)
	case c == '\r' || c == '\n':
		return l.scanNewline(start)
	case c == '\'':
		return l.scanLineComment(start, TokenEndOfLineComment)
	case c == '"':
		return l.scanString(start)
	case isDigit(c) || (c == '.' && isDigit(l.peekN(1))):
		return l.scanNumber(start)
	case c == '&' && isRadixPrefix(l.peekN(1)):
		return l.scanRadixNumber(start)
	case c == '#' && isDigit(l.peekN(1)):
		return l.scanDateLiteral(start)
	case isLetter(c):
		return l.scanWord(start)
	default:
		return l.scanSymbol(start)
	}
}

// continuesLine reports whether the underscore at offset l.pos+skip is a
// line continuation: nothing but blanks between it and the line end.
func (l *Lexer) continuesLine(skip int) bool {
	if l.peekN(skip) != '_' {
		return false
	}
	for i := skip + 1; ; i++ {
		switch l.peekN(i) {
		case ' ', '\t':
			continue
		case '\r', '\n':
			return true
		default:
			return false
		}
	}
}

// scanWhitespace consumes a run of blanks. A line continuation and the
// newline it hides are folded into the same run, so Newline tokens only
// ever mark logical line ends.
func (l *Lexer) scanWhitespace(start Position) Token {
	for l.pos < len(l.input) {
		switch c := l.peek(); {
		case c == ' ' || c == '\t':
			l.advance()
		case c == '_' && l.continuesLine(0):
			l.advance()
			for l.peek() == ' ' || l.peek() == '\t' {
				l.advance()
			}
			if l.peek() == '\r' {
				l.advance()
			}
			if l.peek() == '\n' {
				l.advance()
			}
		default:
			return l.token(TokenWhitespace, start)
		}
	}
	return l.token(TokenWhitespace, start)
}

func (l *Lexer) scanNewline(start Position) Token {
	if l.peek() == '\r' {
		l.advance()
	}
	if l.peek() == '\n' {
		l.advance()
	}
	return l.token(TokenNewline, start)
}

func (l *Lexer) scanLineComment(start Position, kind TokenKind) Token {
	for l.pos < len(l.input) && l.peek() != '\r' && l.peek() != '\n' {
		l.advance()
	}
	return l.token(kind, start)
}

// scanString consumes a double-quoted string. A doubled quote is the
// escape for a literal quote. An unterminated string ends at the line
// end; the parser reports it, the lexer just keeps the bytes.
func (l *Lexer) scanString(start Position) Token {
	l.advance()
	for l.pos < len(l.input) {
		c := l.peek()
		if c == '\r' || c == '\n' {
			break
		}
		l.advance()
		if c == '"' {
			if l.peek() == '"' {
				l.advance()
				continue
			}
			break
		}
	}
	return l.token(TokenStringLiteral, start)
}

func (l *Lexer) scanNumber(start Position) Token {
	floating := false
	for isDigit(l.peek()) {
		l.advance()
	}
	if l.peek() == '.' && isDigit(l.peekN(1)) {
		floating = true
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}
	if c := l.peek(); c == 'e' || c == 'E' {
		next := l.peekN(1)
		if isDigit(next) || ((next == '+' || next == '-') && isDigit(l.peekN(2))) {
			floating = true
			l.advance()
			if l.peek() == '+' || l.peek() == '-' {
				l.advance()
			}
			for isDigit(l.peek()) {
				l.advance()
			}
		}
	}
	switch l.peek() {
	case '%':
		l.advance()
		return l.token(TokenIntegerLiteral, start)
	case '&':
		l.advance()
		return l.token(TokenLongLiteral, start)
	case '!':
		l.advance()
		return l.token(TokenSingleLiteral, start)
	case '#':
		l.advance()
		return l.token(TokenDoubleLiteral, start)
	case '@':
		l.advance()
		return l.token(TokenCurrencyLiteral, start)
	}
	if floating {
		return l.token(TokenDoubleLiteral, start)
	}
	return l.token(TokenIntegerLiteral, start)
}

// scanRadixNumber consumes &H (hex) and &O (octal) literals.
func (l *Lexer) scanRadixNumber(start Position) Token {
	l.advance()
	prefix := l.advance()
	if prefix == 'h' || prefix == 'H' {
		for isHexDigit(l.peek()) {
			l.advance()
		}
	} else {
		for l.peek() >= '0' && l.peek() <= '7' {
			l.advance()
		}
	}
	if l.peek() == '&' {
		l.advance()
		return l.token(TokenLongLiteral, start)
	}
	if l.peek() == '%' {
		l.advance()
	}
	return l.token(TokenIntegerLiteral, start)
}

// scanDateLiteral consumes #...# on a single line. The opening # is only
// treated as a date when a closing # follows on the same line and the
// span holds a date or time separator, so file number lists like
// `#1, #2` in Close statements stay separate tokens.
func (l *Lexer) scanDateLiteral(start Position) Token {
	end := l.pos + 1
	dateLike := false
	for end < len(l.input) && l.input[end] != '\r' && l.input[end] != '\n' && l.input[end] != '#' {
		c := l.input[end]
		if c == '/' || c == '-' || c == ':' || isLetter(c) {
			dateLike = true
		}
		end++
	}
	if end >= len(l.input) || l.input[end] != '#' || !dateLike {
		l.advance()
		return l.token(TokenOctothorpe, start)
	}
	for l.pos <= end {
		l.advance()
	}
	return l.token(TokenDateLiteral, start)
}

// scanWord consumes a keyword or identifier. Rem starts a comment that
// runs to the end of the line. A non-reserved word directly followed by
// a type suffix ($, %, &, !, #, @) absorbs it into a single Identifier
// token; reserved words leave the suffix for the parser to deal with.
func (l *Lexer) scanWord(start Position) Token {
	for isLetter(l.peek()) || isDigit(l.peek()) || l.peek() == '_' {
		l.advance()
	}
	word := string(l.input[start.Offset:l.pos])
	if strings.EqualFold(word, "rem") {
		return l.scanLineComment(start, TokenRemComment)
	}
	kind := LookupKeyword(word)
	if kind == TokenIdentifier {
		switch l.peek() {
		case '$':
			l.advance()
		case '%', '&', '!', '#', '@':
			// rs!Name is a bang member access, not a suffixed rs!.
			if !isLetter(l.peekN(1)) && l.peekN(1) != '_' {
				l.advance()
			}
		}
	}
	return l.token(kind, start)
}

var symbols = map[byte]TokenKind{
	'$': TokenDollarSign,
	'_': TokenUnderscore,
	'&': TokenAmpersand,
	'%': TokenPercent,
	'#': TokenOctothorpe,
	'(': TokenLeftParenthesis,
	')': TokenRightParenthesis,
	'{': TokenLeftCurlyBrace,
	'}': TokenRightCurlyBrace,
	'[': TokenLeftSquareBracket,
	']': TokenRightSquareBracket,
	',': TokenComma,
	';': TokenSemicolon,
	'@': TokenAtSign,
	'!': TokenExclamationMark,
	'=': TokenEqualityOperator,
	'<': TokenLessThanOperator,
	'>': TokenGreaterThanOperator,
	'*': TokenMultiplicationOperator,
	'-': TokenSubtractionOperator,
	'+': TokenAdditionOperator,
	'/': TokenDivisionOperator,
	'\\': TokenBackwardSlashOperator,
	'.': TokenPeriodOperator,
	':': TokenColonOperator,
	'^': TokenExponentiationOperator,
}

func (l *Lexer) scanSymbol(start Position) Token {
	c := l.advance()
	switch c {
	case '<':
		switch l.peek() {
		case '>':
			l.advance()
			return l.token(TokenInequalityOperator, start)
		case '=':
			l.advance()
			return l.token(TokenLessThanOrEqualOperator, start)
		}
	case '>':
		if l.peek() == '=' {
			l.advance()
			return l.token(TokenGreaterThanOrEqualOperator, start)
		}
	}
	if kind, ok := symbols[c]; ok {
		return l.token(kind, start)
	}
	return l.token(TokenUnknown, start)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isRadixPrefix(c byte) bool {
	return c == 'h' || c == 'H' || c == 'o' || c == 'O'
}
