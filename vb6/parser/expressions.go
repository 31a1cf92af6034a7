package parser

import "fmt"

// binaryPrecedence returns the binding strength of a binary operator,
// or 0 for anything else. Higher binds tighter. All binary operators
// are left-associative.
func binaryPrecedence(kind TokenKind) int {
	switch kind {
	case TokenImpKeyword:
		return 1
	case TokenEqvKeyword:
		return 2
	case TokenXorKeyword:
		return 3
	case TokenOrKeyword:
		return 4
	case TokenAndKeyword:
		return 5
	case TokenEqualityOperator, TokenInequalityOperator,
		TokenLessThanOperator, TokenGreaterThanOperator,
		TokenLessThanOrEqualOperator, TokenGreaterThanOrEqualOperator,
		TokenLikeKeyword, TokenIsKeyword:
		return 7
	case TokenAmpersand:
		return 8
	case TokenAdditionOperator, TokenSubtractionOperator:
		return 9
	case TokenModKeyword:
		return 10
	case TokenBackwardSlashOperator:
		return 11
	case TokenMultiplicationOperator, TokenDivisionOperator:
		return 12
	case TokenExponentiationOperator:
		return 14
	}
	return 0
}

// Not sits between And and the comparisons; unary minus sits between
// multiplication and exponentiation, so -2 ^ 2 is -(2 ^ 2).
const (
	notPrecedence   = 6
	minusPrecedence = 13
)

func (p *Parser) parseExpression() *Node {
	return p.parseBinaryExpr(1)
}

// parseBinaryExpr climbs the precedence ladder. Trivia between an
// operand and its operator joins the binary node only once the operator
// is confirmed; the lookahead never crosses a line end.
func (p *Parser) parseBinaryExpr(minPrec int) *Node {
	left := p.parseUnaryExpr()
	for {
		prec := binaryPrecedence(p.peekSkip().Kind)
		if prec == 0 || prec < minPrec {
			return left
		}
		n := newNode(KindBinaryExpression)
		n.AddChild(left)
		p.eatBlank(n)
		p.consume(n)
		p.eatBlank(n)
		n.AddChild(p.parseBinaryExpr(prec + 1))
		left = n
	}
}

func (p *Parser) parseUnaryExpr() *Node {
	switch p.peekSkip().Kind {
	case TokenNotKeyword:
		n := newNode(KindUnaryExpression)
		p.match(n, TokenNotKeyword)
		p.eatBlank(n)
		n.AddChild(p.parseBinaryExpr(notPrecedence + 1))
		return n
	case TokenSubtractionOperator, TokenAdditionOperator:
		n := newNode(KindUnaryExpression)
		p.eatBlank(n)
		p.consume(n)
		p.eatBlank(n)
		n.AddChild(p.parseBinaryExpr(minusPrecedence + 1))
		return n
	case TokenAddressOfKeyword:
		n := newNode(KindAddressOfExpression)
		p.match(n, TokenAddressOfKeyword)
		p.eatBlank(n)
		n.AddChild(p.parsePostfixExpression())
		return n
	case TokenTypeOfKeyword:
		n := newNode(KindTypeOfExpression)
		p.match(n, TokenTypeOfKeyword)
		p.eatBlank(n)
		n.AddChild(p.parsePostfixExpression())
		return n
	case TokenNewKeyword:
		n := newNode(KindNewExpression)
		p.match(n, TokenNewKeyword)
		p.consumeName(n, "New expression")
		for p.match(n, TokenPeriodOperator) {
			p.consumeName(n, "New expression")
		}
		return n
	}
	return p.parsePostfixExpression()
}

// parsePostfixExpression parses a primary followed by member accesses
// and call parentheses.
func (p *Parser) parsePostfixExpression() *Node {
	left := p.parsePrimaryExpr()
	for {
		switch p.peekSkip().Kind {
		case TokenPeriodOperator, TokenExclamationMark:
			m := newNode(KindMemberAccessExpression)
			m.AddChild(left)
			p.eatBlank(m)
			p.consume(m)
			p.consumeName(m, "member access")
			left = m
		case TokenLeftParenthesis:
			m := newNode(KindCallExpression)
			p.hoistCallee(m, left)
			p.match(m, TokenLeftParenthesis)
			args := p.emptyList(KindArgumentList)
			if !p.at(TokenRightParenthesis) {
				p.parseArguments(args, true)
			}
			m.AddChild(args)
			p.expect(m, TokenRightParenthesis, "call")
			left = m
		default:
			return left
		}
	}
}

// hoistCallee attaches the callee to a call node. A single bare name
// loses its IdentifierExpression wrapper: the call owns the name leaf
// directly.
func (p *Parser) hoistCallee(call, callee *Node) {
	if callee.Kind == KindIdentifierExpression && len(callee.Children) == 1 {
		call.AddChild(callee.Children[0])
		return
	}
	call.AddChild(callee)
}

func isLiteralToken(kind TokenKind) bool {
	switch kind {
	case TokenStringLiteral, TokenIntegerLiteral, TokenLongLiteral,
		TokenSingleLiteral, TokenDoubleLiteral, TokenCurrencyLiteral,
		TokenDateLiteral:
		return true
	}
	return false
}

func (p *Parser) parsePrimaryExpr() *Node {
	tok := p.peekSkip()
	switch {
	case isLiteralToken(tok.Kind):
		n := newNode(KindLiteralExpression)
		p.eatBlank(n)
		p.consume(n)
		return n
	case tok.Kind == TokenLeftParenthesis:
		n := newNode(KindParenthesizedExpression)
		p.match(n, TokenLeftParenthesis)
		p.eatBlank(n)
		n.AddChild(p.parseExpression())
		p.expect(n, TokenRightParenthesis, "parenthesized expression")
		return n
	case tok.Kind == TokenMeKeyword:
		n := newNode(KindIdentifierExpression)
		p.match(n, TokenMeKeyword)
		return n
	case IsValueKeyword(tok.Kind):
		n := newNode(KindLiteralExpression)
		p.eatBlank(n)
		p.consume(n)
		return n
	case tok.Kind == TokenPeriodOperator:
		// with-relative member access
		n := newNode(KindMemberAccessExpression)
		p.match(n, TokenPeriodOperator)
		p.consumeName(n, "member access")
		return n
	case IsNameLike(tok.Kind) && !IsStatementKeyword(tok.Kind) && binaryPrecedence(tok.Kind) == 0 &&
		tok.Kind != TokenNotKeyword:
		return p.parseNameExpr()
	}
	p.fail(fmt.Sprintf("cannot parse %s as an expression", tok.Kind))
	n := newNode(KindUnknown)
	if !p.atLineEnd() {
		p.eatBlank(n)
		p.consume(n)
	} else {
		pos := p.peek().Span.Start
		n.Span = Span{Start: pos, End: pos}
	}
	return n
}

// parseNameExpr parses an identifier in value position. Reserved words
// keep their keyword kind here: Time$ stays TimeKeyword plus DollarSign,
// while the keyword-dollar built-ins like Mid$ fuse into one Identifier
// leaf.
func (p *Parser) parseNameExpr() *Node {
	n := newNode(KindIdentifierExpression)
	p.eatBlank(n)
	word := p.next()
	dollar := p.peek()
	adjacent := dollar.Kind == TokenDollarSign && dollar.Span.Start.Offset == word.Span.End.Offset
	switch {
	case IsKeywordDollar(word.Kind) && adjacent:
		p.next()
		n.AddChild(leaf(fuseIdentifier(word, dollar)))
	case word.Kind.IsKeyword() && adjacent:
		n.AddChild(leaf(word))
		p.next()
		n.AddChild(leaf(dollar))
	default:
		n.AddChild(leaf(word))
	}
	return n
}

// atNamedArgument reports whether the next tokens form `name := value`.
// The := is two tokens and they must touch.
func (p *Parser) atNamedArgument() bool {
	i := p.skipBlank(p.pos)
	if !IsNameLike(p.tokens[i].Kind) {
		return false
	}
	j := p.skipBlank(i + 1)
	if p.tokens[j].Kind != TokenColonOperator || j+1 >= len(p.tokens) {
		return false
	}
	eq := p.tokens[j+1]
	return eq.Kind == TokenEqualityOperator && eq.Span.Start.Offset == p.tokens[j].Span.End.Offset
}

// parseArguments fills list with comma-separated Argument nodes. With
// inParens set it stops at the closing parenthesis, otherwise at the
// line end. Omitted arguments leave only the comma behind.
func (p *Parser) parseArguments(list *Node, inParens bool) {
	for {
		p.eatBlank(list)
		if inParens {
			switch p.peekSkip().Kind {
			case TokenRightParenthesis, TokenNewline, TokenEOF:
				return
			}
		} else if p.atLineEnd() {
			return
		}
		if !p.at(TokenComma) {
			arg := newNode(KindArgument)
			if p.atNamedArgument() {
				p.consumeName(arg, "named argument")
				p.match(arg, TokenColonOperator)
				p.match(arg, TokenEqualityOperator)
			}
			p.eatBlank(arg)
			arg.AddChild(p.parseExpression())
			list.AddChild(arg)
		}
		if !p.match(list, TokenComma) {
			return
		}
	}
}

// emptyList creates a zero-width node anchored at the current position.
// Call forms always carry an ArgumentList even when nothing was written.
func (p *Parser) emptyList(kind NodeKind) *Node {
	n := newNode(kind)
	pos := p.peek().Span.Start
	n.Span = Span{Start: pos, End: pos}
	return n
}
