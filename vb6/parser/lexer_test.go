package parser

import (
	"strings"
	"testing"
)

func significantKinds(tokens []Token) []TokenKind {
	var kinds []TokenKind
	for _, tok := range tokens {
		if tok.Kind.IsTrivia() {
			continue
		}
		kinds = append(kinds, tok.Kind)
	}
	return kinds
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		input    string
		expected []TokenKind
	}{
		{"", []TokenKind{TokenEOF}},
		{"Dim", []TokenKind{TokenDimKeyword, TokenEOF}},
		{"Dim x As Long", []TokenKind{TokenDimKeyword, TokenIdentifier, TokenAsKeyword, TokenLongKeyword, TokenEOF}},
		{"123", []TokenKind{TokenIntegerLiteral, TokenEOF}},
		{"123&", []TokenKind{TokenLongLiteral, TokenEOF}},
		{"123%", []TokenKind{TokenIntegerLiteral, TokenEOF}},
		{"3.14", []TokenKind{TokenDoubleLiteral, TokenEOF}},
		{"1.5!", []TokenKind{TokenSingleLiteral, TokenEOF}},
		{"2@", []TokenKind{TokenCurrencyLiteral, TokenEOF}},
		{"1E3", []TokenKind{TokenDoubleLiteral, TokenEOF}},
		{"&HFF", []TokenKind{TokenIntegerLiteral, TokenEOF}},
		{"&HFF&", []TokenKind{TokenLongLiteral, TokenEOF}},
		{"&O17", []TokenKind{TokenIntegerLiteral, TokenEOF}},
		{`"hello"`, []TokenKind{TokenStringLiteral, TokenEOF}},
		{`"say ""hi"""`, []TokenKind{TokenStringLiteral, TokenEOF}},
		{"#1/15/2026#", []TokenKind{TokenDateLiteral, TokenEOF}},
		{"= <> < > <= >=", []TokenKind{TokenEqualityOperator, TokenInequalityOperator, TokenLessThanOperator, TokenGreaterThanOperator, TokenLessThanOrEqualOperator, TokenGreaterThanOrEqualOperator, TokenEOF}},
		{"+ - * / \\ ^ &", []TokenKind{TokenAdditionOperator, TokenSubtractionOperator, TokenMultiplicationOperator, TokenDivisionOperator, TokenBackwardSlashOperator, TokenExponentiationOperator, TokenAmpersand, TokenEOF}},
		{"( ) , . : ; !", []TokenKind{TokenLeftParenthesis, TokenRightParenthesis, TokenComma, TokenPeriodOperator, TokenColonOperator, TokenSemicolon, TokenExclamationMark, TokenEOF}},
		{"a And b Or Not c", []TokenKind{TokenIdentifier, TokenAndKeyword, TokenIdentifier, TokenOrKeyword, TokenNotKeyword, TokenIdentifier, TokenEOF}},
		{"x Mod y", []TokenKind{TokenIdentifier, TokenModKeyword, TokenIdentifier, TokenEOF}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := significantKinds(Tokenize("test.bas", tt.input))
			if len(got) != len(tt.expected) {
				t.Fatalf("got %d tokens %v, want %d", len(got), got, len(tt.expected))
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("token %d: got %v, want %v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestLexerKeywordsCaseInsensitive(t *testing.T) {
	tests := []struct {
		input string
		kind  TokenKind
	}{
		{"Sub", TokenSubKeyword},
		{"sub", TokenSubKeyword},
		{"SUB", TokenSubKeyword},
		{"end", TokenEndKeyword},
		{"ELSEIF", TokenElseIfKeyword},
		{"WithEvents", TokenWithEventsKeyword},
		{"with", TokenWithKeyword},
		{"setattr", TokenSetAttrKeyword},
		{"set", TokenSetKeyword},
		{"double", TokenDoubleKeyword},
		{"do", TokenDoKeyword},
		{"typeof", TokenTypeOfKeyword},
		{"type", TokenTypeKeyword},
		{"myVariable", TokenIdentifier},
		{"subtotal", TokenIdentifier},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tok := NewLexer("test.bas", []byte(tt.input)).Next()
			if tok.Kind != tt.kind {
				t.Errorf("got %v, want %v", tok.Kind, tt.kind)
			}
		})
	}
}

func TestLexerDollarSuffix(t *testing.T) {
	// Environ is not reserved: the suffix fuses into one identifier.
	tokens := Tokenize("test.bas", "Environ$")
	if tokens[0].Kind != TokenIdentifier || tokens[0].Literal != "Environ$" {
		t.Errorf("Environ$: got %v %q", tokens[0].Kind, tokens[0].Literal)
	}

	// Time is reserved: the keyword and the suffix stay separate.
	tokens = Tokenize("test.bas", "Time$")
	if tokens[0].Kind != TokenTimeKeyword {
		t.Errorf("Time$: first token got %v, want TimeKeyword", tokens[0].Kind)
	}
	if tokens[1].Kind != TokenDollarSign {
		t.Errorf("Time$: second token got %v, want DollarSign", tokens[1].Kind)
	}

	// Mid is reserved too; fusing Mid$ is the parser's job.
	tokens = Tokenize("test.bas", "Mid$")
	if tokens[0].Kind != TokenMidKeyword || tokens[1].Kind != TokenDollarSign {
		t.Errorf("Mid$: got %v, %v", tokens[0].Kind, tokens[1].Kind)
	}
}

func TestLexerTypeSuffixes(t *testing.T) {
	tests := []string{"count%", "total&", "ratio!", "avg#", "price@"}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			tok := NewLexer("test.bas", []byte(input)).Next()
			if tok.Kind != TokenIdentifier || tok.Literal != input {
				t.Errorf("got %v %q, want Identifier %q", tok.Kind, tok.Literal, input)
			}
		})
	}

	// A bang followed by a name is member access, not a suffix.
	tokens := Tokenize("test.bas", "rs!Name")
	if tokens[0].Literal != "rs" || tokens[1].Kind != TokenExclamationMark {
		t.Errorf("rs!Name: got %q then %v", tokens[0].Literal, tokens[1].Kind)
	}

	// A suffix only fuses when it touches the word.
	tokens = Tokenize("test.bas", "x % y")
	if tokens[0].Literal != "x" || tokens[2].Kind != TokenPercent {
		t.Errorf("x %% y: got %q then %v", tokens[0].Literal, tokens[2].Kind)
	}
}

func TestLexerFileNumbersAreNotDates(t *testing.T) {
	tokens := Tokenize("test.bas", "Close #1, #2")
	var hashes int
	for _, tok := range tokens {
		switch tok.Kind {
		case TokenDateLiteral:
			t.Errorf("unexpected date literal %q", tok.Literal)
		case TokenOctothorpe:
			hashes++
		}
	}
	if hashes != 2 {
		t.Errorf("got %d Octothorpe tokens, want 2", hashes)
	}
}

func TestLexerLineContinuation(t *testing.T) {
	input := "x = 1 + _\n    2\n"
	tokens := Tokenize("test.bas", input)

	var newlines int
	var joined string
	for _, tok := range tokens {
		if tok.Kind == TokenNewline {
			newlines++
		}
		if tok.Kind == TokenWhitespace && strings.Contains(tok.Literal, "_") {
			joined = tok.Literal
		}
	}
	if newlines != 1 {
		t.Errorf("got %d Newline tokens, want 1 (continuation folds into whitespace)", newlines)
	}
	if joined != " _\n    " {
		t.Errorf("continuation run = %q, want %q", joined, " _\n    ")
	}
}

func TestLexerUnderscoreNotContinuation(t *testing.T) {
	tokens := Tokenize("test.bas", "my_name _x")
	if tokens[0].Kind != TokenIdentifier || tokens[0].Literal != "my_name" {
		t.Errorf("got %v %q, want Identifier my_name", tokens[0].Kind, tokens[0].Literal)
	}
	// A lone underscore with more text on the line is not a continuation.
	kinds := significantKinds(tokens)
	if kinds[1] != TokenUnderscore {
		t.Errorf("got %v, want Underscore", kinds[1])
	}
}

func TestLexerComments(t *testing.T) {
	tokens := Tokenize("test.bas", "x = 1 ' trailing note\n")
	var comment *Token
	for i := range tokens {
		if tokens[i].Kind == TokenEndOfLineComment {
			comment = &tokens[i]
		}
	}
	if comment == nil {
		t.Fatal("no EndOfLineComment token")
	}
	if comment.Literal != "' trailing note" {
		t.Errorf("comment literal = %q", comment.Literal)
	}

	tokens = Tokenize("test.bas", "Rem whole line\nx = 1")
	if tokens[0].Kind != TokenRemComment || tokens[0].Literal != "Rem whole line" {
		t.Errorf("got %v %q, want RemComment", tokens[0].Kind, tokens[0].Literal)
	}

	// Rem is only a comment as a whole word.
	tok := NewLexer("test.bas", []byte("Remote")).Next()
	if tok.Kind != TokenIdentifier {
		t.Errorf("Remote: got %v, want Identifier", tok.Kind)
	}
}

func TestLexerRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"Dim x As Long\n",
		"x = 1 + _\n    2\n",
		"s = \"a \"\"quoted\"\" part\"\r\nt = s\r\n",
		"' only a comment",
		"Rem old style\n\n\nBeep\n",
		"If x Then y = 1: z = 2 Else Beep\n",
		"d = #1/15/2026#\nn = &HFF&\n",
		"weird \x01 bytes",
	}
	for _, input := range inputs {
		var b strings.Builder
		for _, tok := range Tokenize("test.bas", input) {
			b.WriteString(tok.Literal)
		}
		if b.String() != input {
			t.Errorf("round trip failed:\n got %q\nwant %q", b.String(), input)
		}
	}
}

func TestLexerPositions(t *testing.T) {
	tokens := Tokenize("test.bas", "a = 1\nbb = 2")
	byLiteral := map[string]Token{}
	for _, tok := range tokens {
		byLiteral[tok.Literal] = tok
	}

	a := byLiteral["a"]
	if a.Span.Start.Line != 1 || a.Span.Start.Column != 1 || a.Span.Start.Offset != 0 {
		t.Errorf("a starts at %+v", a.Span.Start)
	}
	bb := byLiteral["bb"]
	if bb.Span.Start.Line != 2 || bb.Span.Start.Column != 1 || bb.Span.Start.Offset != 6 {
		t.Errorf("bb starts at %+v", bb.Span.Start)
	}
	if bb.Span.End.Column != 3 {
		t.Errorf("bb ends at column %d, want 3", bb.Span.End.Column)
	}
	if a.Span.Start.File != "test.bas" {
		t.Errorf("File = %q", a.Span.Start.File)
	}
}

func TestLexerUnknownBytes(t *testing.T) {
	tokens := Tokenize("test.bas", "x \x01 y")
	kinds := significantKinds(tokens)
	want := []TokenKind{TokenIdentifier, TokenUnknown, TokenIdentifier, TokenEOF}
	if len(kinds) != len(want) {
		t.Fatalf("got %v", kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, kinds[i], want[i])
		}
	}
}
