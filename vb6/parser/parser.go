package parser

import "fmt"

// Parser builds a lossless concrete syntax tree from a token stream.
// It never fails outright: problems are collected as Failures and the
// offending tokens end up in Unknown nodes, so every byte of the input
// is somewhere in the tree.
type Parser struct {
	tokens   []Token
	pos      int
	failures []Failure

	// inlineIf is set while parsing the body of a single-line If, where
	// Else and the physical line end close the inner statement.
	inlineIf bool
}

// ParseText parses a whole VB6 source file. The returned failures slice
// is the same one carried by the tree.
func ParseText(fileName, source string) (*Tree, []Failure) {
	p := &Parser{tokens: Tokenize(fileName, source)}
	root := newNode(KindRoot)
	start := p.peek().Span.Start
	root.Span = Span{Start: start, End: start}
	p.parseStatementsInto(root, func() bool { return false })
	return &Tree{root: root, failures: p.failures}, p.failures
}

// ParseExpressionText parses a standalone expression fragment.
func ParseExpressionText(fileName, source string) (*Node, []Failure) {
	p := &Parser{tokens: Tokenize(fileName, source)}
	node := p.parseExpression()
	if tok := p.peekSkip(); tok.Kind != TokenEOF && tok.Kind != TokenNewline {
		p.fail(fmt.Sprintf("unexpected %s after expression", tok.Kind))
	}
	return node, p.failures
}

func (p *Parser) peek() Token {
	return p.peekAt(0)
}

func (p *Parser) peekAt(n int) Token {
	if p.pos+n >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos+n]
}

// skipBlank returns the index of the first token at or after i that is
// not whitespace or a comment. Newlines are not skipped.
func (p *Parser) skipBlank(i int) int {
	for i < len(p.tokens) {
		switch p.tokens[i].Kind {
		case TokenWhitespace, TokenEndOfLineComment, TokenRemComment:
			i++
		default:
			return i
		}
	}
	return len(p.tokens) - 1
}

// peekSkip returns the next token that is not whitespace or a comment.
func (p *Parser) peekSkip() Token {
	return p.tokens[p.skipBlank(p.pos)]
}

// peekSkip2 returns the significant token after peekSkip.
func (p *Parser) peekSkip2() Token {
	i := p.skipBlank(p.pos)
	if p.tokens[i].Kind == TokenEOF {
		return p.tokens[i]
	}
	return p.tokens[p.skipBlank(i+1)]
}

func (p *Parser) next() Token {
	tok := p.peek()
	if tok.Kind != TokenEOF {
		p.pos++
	}
	return tok
}

// consume appends the current token to n as a leaf and advances.
func (p *Parser) consume(n *Node) Token {
	tok := p.peek()
	if tok.Kind == TokenEOF {
		return tok
	}
	p.pos++
	n.AddChild(leaf(tok))
	return tok
}

// eatBlank moves whitespace and comments into n, stopping at newlines.
func (p *Parser) eatBlank(n *Node) {
	for {
		switch p.peek().Kind {
		case TokenWhitespace, TokenEndOfLineComment, TokenRemComment:
			p.consume(n)
		default:
			return
		}
	}
}

// eatLayout moves whitespace, comments, and newlines into n. Used
// between statements, where blank lines belong to the enclosing list.
func (p *Parser) eatLayout(n *Node) {
	for {
		switch p.peek().Kind {
		case TokenWhitespace, TokenEndOfLineComment, TokenRemComment, TokenNewline:
			p.consume(n)
		default:
			return
		}
	}
}

func (p *Parser) at(kind TokenKind) bool {
	return p.peekSkip().Kind == kind
}

// match consumes the next significant token into n when it has the
// given kind, together with the blanks before it.
func (p *Parser) match(n *Node, kind TokenKind) bool {
	if !p.at(kind) {
		return false
	}
	p.eatBlank(n)
	p.consume(n)
	return true
}

// expect is match plus a recorded failure when the token is missing.
// Nothing is consumed on failure.
func (p *Parser) expect(n *Node, kind TokenKind, context string) bool {
	if p.match(n, kind) {
		return true
	}
	p.fail(fmt.Sprintf("expected %s in %s, found %s", kind, context, p.peekSkip().Kind))
	return false
}

func (p *Parser) fail(message string) {
	p.failures = append(p.failures, Failure{Span: p.peekSkip().Span, Message: message})
}

// consumeName consumes the next token as a name, reclassifying reserved
// words as identifiers. A reserved word from the keyword-dollar set that
// touches a following $ is fused with it into one Identifier leaf.
func (p *Parser) consumeName(n *Node, context string) bool {
	word := p.peekSkip()
	if !IsNameLike(word.Kind) {
		p.fail(fmt.Sprintf("expected a name in %s, found %s", context, word.Kind))
		return false
	}
	p.eatBlank(n)
	word = p.next()
	dollar := p.peek()
	if IsKeywordDollar(word.Kind) && dollar.Kind == TokenDollarSign &&
		dollar.Span.Start.Offset == word.Span.End.Offset {
		p.next()
		n.AddChild(leaf(fuseIdentifier(word, dollar)))
		return true
	}
	n.AddChild(leaf(asIdentifier(word)))
	return true
}

// atLineEnd reports whether the next significant token ends the current
// logical line.
func (p *Parser) atLineEnd() bool {
	switch p.peekSkip().Kind {
	case TokenNewline, TokenEOF, TokenColonOperator:
		return true
	case TokenElseKeyword:
		return p.inlineIf
	}
	return false
}

// endLine finishes a statement: trailing blanks and comment go into n,
// then the newline if there is one. A colon stays for the enclosing
// statement list. Anything else is swept into an Unknown child.
func (p *Parser) endLine(n *Node, context string) {
	p.eatBlank(n)
	switch p.peek().Kind {
	case TokenNewline:
		if !p.inlineIf {
			p.consume(n)
		}
		return
	case TokenEOF, TokenColonOperator:
		return
	case TokenElseKeyword:
		if p.inlineIf {
			return
		}
	}
	p.fail(fmt.Sprintf("unexpected %s after %s", p.peek().Kind, context))
	unknown := newNode(KindUnknown)
	for !p.atLineEnd() {
		p.consume(unknown)
		p.eatBlank(unknown)
	}
	n.AddChild(unknown)
	if p.peek().Kind == TokenNewline {
		p.consume(n)
	}
}

// errorNode records a failure, sweeps tokens into an Unknown node until
// a safe resynchronization point, and attaches it to parent. At least
// one token is consumed so the parser always makes progress.
func (p *Parser) errorNode(parent *Node, message string) {
	p.fail(message)
	unknown := newNode(KindUnknown)
	p.eatBlank(unknown)
	if p.peek().Kind != TokenEOF {
		p.consume(unknown)
	}
	for {
		tok := p.peekSkip()
		if tok.Kind == TokenEOF || tok.Kind == TokenNewline ||
			tok.Kind == TokenColonOperator || IsStatementKeyword(tok.Kind) {
			break
		}
		p.eatBlank(unknown)
		p.consume(unknown)
	}
	if len(unknown.Children) > 0 {
		parent.AddChild(unknown)
	}
}

// parseStatementsInto fills list with statements until done reports the
// next significant token closes the enclosing block, or the input ends.
// Colons separating statements on one line become leaves of the list.
func (p *Parser) parseStatementsInto(list *Node, done func() bool) {
	for {
		p.eatLayout(list)
		if p.peek().Kind == TokenEOF || done() {
			return
		}
		if p.peek().Kind == TokenColonOperator {
			p.consume(list)
			continue
		}
		before := p.pos
		stmt := p.parseStatement()
		list.AddChild(stmt)
		if p.pos == before {
			p.errorNode(list, fmt.Sprintf("cannot parse %s as a statement", p.peek().Kind))
		}
	}
}

// parseStatementList parses a block body, stopping when done reports
// the closing construct.
func (p *Parser) parseStatementList(done func() bool) *Node {
	list := newNode(KindStatementList)
	start := p.peek().Span.Start
	list.Span = Span{Start: start, End: start}
	p.parseStatementsInto(list, done)
	return list
}

// atBlockEnd reports whether the upcoming tokens are the End keyword
// followed by one of the given keywords.
func (p *Parser) atBlockEnd(kinds ...TokenKind) bool {
	if p.peekSkip().Kind != TokenEndKeyword {
		return false
	}
	second := p.peekSkip2().Kind
	for _, kind := range kinds {
		if second == kind {
			return true
		}
	}
	return false
}
