package parser

import (
	"fmt"
	"strings"
)

// assignableKeywords are reserved words that may appear on the left of
// an assignment, like Date = d or Mid(s, 1, 2) = part.
var assignableKeywords = map[TokenKind]bool{
	TokenDateKeyword:  true,
	TokenTimeKeyword:  true,
	TokenMidKeyword:   true,
	TokenMidBKeyword:  true,
	TokenNameKeyword:  true,
	TokenErrorKeyword: true,
}

// parseStatement parses one statement. It always returns a node and
// always consumes at least one token unless the input is exhausted.
func (p *Parser) parseStatement() *Node {
	tok := p.peekSkip()

	if tok.Kind == TokenIdentifier || tok.Kind == TokenMeKeyword ||
		tok.Kind == TokenPeriodOperator || assignableKeywords[tok.Kind] {
		if p.looksLikeAssignment() {
			return p.parseAssignment()
		}
	}

	switch tok.Kind {
	case TokenOptionKeyword:
		return p.parseOption()
	case TokenAttributeKeyword:
		return p.parseAttribute()
	case TokenDimKeyword:
		return p.parseVariableStatement()
	case TokenConstKeyword:
		return p.parseConst()
	case TokenStaticKeyword, TokenPublicKeyword, TokenPrivateKeyword, TokenFriendKeyword:
		return p.parseModified()
	case TokenReDimKeyword:
		return p.parseReDim()
	case TokenEraseKeyword:
		return p.parseErase()
	case TokenIfKeyword:
		return p.parseIf()
	case TokenSelectKeyword:
		return p.parseSelect()
	case TokenForKeyword:
		if p.peekSkip2().Kind == TokenEachKeyword {
			return p.parseForEach()
		}
		return p.parseFor()
	case TokenDoKeyword:
		return p.parseDo()
	case TokenWhileKeyword:
		return p.parseWhile()
	case TokenWithKeyword:
		return p.parseWith()
	case TokenGotoKeyword:
		return p.parseJump(KindGotoStatement, TokenGotoKeyword)
	case TokenGoSubKeyword:
		return p.parseJump(KindGoSubStatement, TokenGoSubKeyword)
	case TokenReturnKeyword:
		return p.parseKeywordLine(KindReturnStatement, TokenReturnKeyword)
	case TokenStopKeyword:
		return p.parseKeywordLine(KindStopStatement, TokenStopKeyword)
	case TokenEndKeyword:
		return p.parseEnd()
	case TokenResumeKeyword:
		return p.parseResume()
	case TokenExitKeyword:
		return p.parseExit()
	case TokenOnKeyword:
		return p.parseOnError()
	case TokenCallKeyword:
		return p.parseCall()
	case TokenSetKeyword:
		return p.parseSet()
	case TokenLetKeyword, TokenLSetKeyword, TokenRSetKeyword:
		return p.parseLet()
	case TokenRaiseEventKeyword:
		return p.parseRaiseEvent()
	case TokenImplementsKeyword:
		return p.parseImplements()
	case TokenDeclareKeyword:
		return p.parseDeclare()
	case TokenSubKeyword:
		return p.parseProcedure(KindSubStatement)
	case TokenFunctionKeyword:
		return p.parseProcedure(KindFunctionStatement)
	case TokenPropertyKeyword:
		return p.parseProcedure(KindPropertyStatement)
	case TokenTypeKeyword:
		return p.parseTypeBlock()
	case TokenEnumKeyword:
		return p.parseEnum()
	case TokenEventKeyword:
		return p.parseEvent()
	case TokenOpenKeyword:
		return p.parseOpen()
	case TokenCloseKeyword:
		return p.parseClose()
	case TokenPrintKeyword:
		return p.parsePrint()
	case TokenLineKeyword:
		if p.peekSkip2().Kind == TokenInputKeyword {
			return p.parseLineInput()
		}
		return p.parseFileStatement()
	case TokenNameKeyword:
		return p.parseName()
	case TokenMkDirKeyword:
		return p.parseMkDir()
	case TokenPutKeyword, TokenGetKeyword, TokenInputKeyword, TokenWriteKeyword,
		TokenSeekKeyword, TokenLockKeyword, TokenUnlockKeyword, TokenWidthKeyword:
		return p.parseFileStatement()
	}

	if builtinCommands[tok.Kind] {
		return p.parseCommand()
	}
	if (tok.Kind == TokenIdentifier || tok.Kind == TokenIntegerLiteral) &&
		p.peekSkip2().Kind == TokenColonOperator && p.atLineStart() {
		return p.parseLabel()
	}
	if (IsNameLike(tok.Kind) && !IsStatementKeyword(tok.Kind)) || tok.Kind == TokenPeriodOperator {
		return p.parseImplicitCall()
	}
	return p.sweepUnknownStatement(fmt.Sprintf("cannot parse %s as a statement", tok.Kind))
}

// atLineStart reports whether the parser stands at the beginning of a
// physical line, ignoring indentation.
func (p *Parser) atLineStart() bool {
	for i := p.pos - 1; i >= 0; i-- {
		switch p.tokens[i].Kind {
		case TokenWhitespace, TokenEndOfLineComment, TokenRemComment:
		case TokenNewline:
			return true
		default:
			return false
		}
	}
	return true
}

// looksLikeAssignment scans ahead on the current line for a top-level
// `=` with nothing but an assignment target in front of it.
func (p *Parser) looksLikeAssignment() bool {
	depth := 0
	for i := p.skipBlank(p.pos); ; i = p.skipBlank(i + 1) {
		tok := p.tokens[i]
		switch tok.Kind {
		case TokenNewline, TokenEOF:
			return false
		case TokenLeftParenthesis:
			depth++
		case TokenRightParenthesis:
			depth--
		case TokenEqualityOperator:
			if depth == 0 {
				return true
			}
		case TokenColonOperator:
			if depth == 0 {
				return false
			}
		case TokenPeriodOperator, TokenExclamationMark, TokenDollarSign:
		default:
			if depth == 0 && !IsNameLike(tok.Kind) {
				return false
			}
		}
	}
}

func (p *Parser) sweepUnknownStatement(message string) *Node {
	p.fail(message)
	n := newNode(KindUnknown)
	p.eatBlank(n)
	if p.peek().Kind != TokenEOF {
		p.consume(n)
	}
	p.sweepLine(n)
	if p.peek().Kind == TokenNewline && !p.inlineIf {
		p.consume(n)
	}
	return n
}

// sweepLine moves everything up to the line end into n as raw leaves.
func (p *Parser) sweepLine(n *Node) {
	for !p.atLineEnd() {
		p.eatBlank(n)
		p.consume(n)
	}
}

func (p *Parser) matchAny(n *Node, kinds ...TokenKind) bool {
	for _, kind := range kinds {
		if p.match(n, kind) {
			return true
		}
	}
	return false
}

// matchModifiers consumes leading access and lifetime modifiers.
func (p *Parser) matchModifiers(n *Node) {
	for p.matchAny(n, TokenPublicKeyword, TokenPrivateKeyword, TokenFriendKeyword, TokenStaticKeyword) {
	}
}

// parseModified dispatches a statement that starts with Public, Private,
// Friend, or Static on what follows the modifier.
func (p *Parser) parseModified() *Node {
	switch p.peekSkip2().Kind {
	case TokenSubKeyword:
		return p.parseProcedure(KindSubStatement)
	case TokenFunctionKeyword:
		return p.parseProcedure(KindFunctionStatement)
	case TokenPropertyKeyword:
		return p.parseProcedure(KindPropertyStatement)
	case TokenStaticKeyword:
		return p.parseProcedure(p.procedureKindAfterModifiers())
	case TokenConstKeyword:
		return p.parseConst()
	case TokenDeclareKeyword:
		return p.parseDeclare()
	case TokenTypeKeyword:
		return p.parseTypeBlock()
	case TokenEnumKeyword:
		return p.parseEnum()
	case TokenEventKeyword:
		return p.parseEvent()
	}
	return p.parseVariableStatement()
}

// procedureKindAfterModifiers peeks past the modifier run to find which
// procedure form follows, defaulting to Sub.
func (p *Parser) procedureKindAfterModifiers() NodeKind {
	i := p.skipBlank(p.pos)
	for {
		switch p.tokens[i].Kind {
		case TokenPublicKeyword, TokenPrivateKeyword, TokenFriendKeyword, TokenStaticKeyword:
			i = p.skipBlank(i + 1)
		case TokenFunctionKeyword:
			return KindFunctionStatement
		case TokenPropertyKeyword:
			return KindPropertyStatement
		default:
			return KindSubStatement
		}
	}
}

func (p *Parser) parseKeywordLine(kind NodeKind, keyword TokenKind) *Node {
	n := newNode(kind)
	p.expect(n, keyword, kind.String())
	p.endLine(n, kind.String())
	return n
}

func (p *Parser) parseJump(kind NodeKind, keyword TokenKind) *Node {
	n := newNode(kind)
	p.expect(n, keyword, kind.String())
	if !p.match(n, TokenIntegerLiteral) {
		p.consumeName(n, kind.String())
	}
	p.endLine(n, kind.String())
	return n
}

func (p *Parser) parseLabel() *Node {
	n := newNode(KindLabelStatement)
	p.eatBlank(n)
	p.consume(n)
	p.match(n, TokenColonOperator)
	return n
}

// parseEnd handles the End statement. A stray block closer like End Sub
// reaching this point has no matching opener and is swept as Unknown.
func (p *Parser) parseEnd() *Node {
	switch p.peekSkip2().Kind {
	case TokenSubKeyword, TokenFunctionKeyword, TokenPropertyKeyword, TokenIfKeyword,
		TokenSelectKeyword, TokenWithKeyword, TokenTypeKeyword, TokenEnumKeyword:
		return p.sweepUnknownStatement(
			fmt.Sprintf("End %s without a matching opener", p.peekSkip2().Literal))
	}
	return p.parseKeywordLine(KindEndStatement, TokenEndKeyword)
}

func (p *Parser) parseResume() *Node {
	n := newNode(KindResumeStatement)
	p.expect(n, TokenResumeKeyword, "Resume statement")
	if !p.match(n, TokenNextKeyword) && !p.match(n, TokenIntegerLiteral) && !p.atLineEnd() {
		p.consumeName(n, "Resume statement")
	}
	p.endLine(n, "Resume statement")
	return n
}

func (p *Parser) parseExit() *Node {
	n := newNode(KindExitStatement)
	p.expect(n, TokenExitKeyword, "Exit statement")
	if !p.matchAny(n, TokenSubKeyword, TokenFunctionKeyword, TokenPropertyKeyword,
		TokenForKeyword, TokenDoKeyword) {
		p.fail(fmt.Sprintf("expected Sub, Function, Property, For, or Do after Exit, found %s",
			p.peekSkip().Kind))
	}
	p.endLine(n, "Exit statement")
	return n
}

func (p *Parser) parseOnError() *Node {
	n := newNode(KindOnErrorStatement)
	p.expect(n, TokenOnKeyword, "On Error statement")
	if p.match(n, TokenErrorKeyword) {
		switch {
		case p.match(n, TokenResumeKeyword):
			p.expect(n, TokenNextKeyword, "On Error Resume")
		case p.match(n, TokenGotoKeyword):
			if !p.match(n, TokenIntegerLiteral) {
				p.consumeName(n, "On Error GoTo")
			}
		default:
			p.fail(fmt.Sprintf("expected Resume or GoTo after On Error, found %s", p.peekSkip().Kind))
		}
	} else {
		// computed On expr GoTo/GoSub target list
		p.sweepLine(n)
	}
	p.endLine(n, "On Error statement")
	return n
}

func (p *Parser) parseOption() *Node {
	n := newNode(KindOptionStatement)
	p.expect(n, TokenOptionKeyword, "Option statement")
	switch {
	case p.match(n, TokenExplicitKeyword):
	case p.match(n, TokenBaseKeyword):
		p.expect(n, TokenIntegerLiteral, "Option Base")
	case p.match(n, TokenCompareKeyword):
		if !p.matchAny(n, TokenBinaryKeyword, TokenTextKeyword, TokenDatabaseKeyword) {
			p.fail(fmt.Sprintf("expected Binary, Text, or Database after Option Compare, found %s",
				p.peekSkip().Kind))
		}
	case p.match(n, TokenPrivateKeyword):
		p.expect(n, TokenModuleKeyword, "Option Private")
	default:
		p.fail(fmt.Sprintf("unsupported option %s", p.peekSkip().Kind))
		p.sweepLine(n)
	}
	p.endLine(n, "Option statement")
	return n
}

func (p *Parser) parseAttribute() *Node {
	n := newNode(KindAttributeStatement)
	p.expect(n, TokenAttributeKeyword, "Attribute statement")
	p.sweepLine(n)
	p.endLine(n, "Attribute statement")
	return n
}

// parseFileStatement sweeps the file I/O statements that have no
// dedicated production (Get, Put, Input #, Write #, Seek, Lock, Unlock,
// Width, the graphics Line method). Their operands are kept as raw
// leaves: the tree stays lossless without modeling every clause.
func (p *Parser) parseFileStatement() *Node {
	n := newNode(KindLineStatement)
	p.eatBlank(n)
	p.consume(n)
	p.sweepLine(n)
	p.endLine(n, "file statement")
	return n
}

// parseFileNumber consumes the optional # and the file number
// expression into n.
func (p *Parser) parseFileNumber(n *Node) {
	if p.at(TokenOctothorpe) {
		p.eatBlank(n)
		p.consume(n)
	}
	p.eatBlank(n)
	n.AddChild(p.parseExpression())
}

// parseOpen parses
// Open pathname For mode [Access access] [lock] As [#]filenumber [Len = reclength].
func (p *Parser) parseOpen() *Node {
	n := newNode(KindOpenStatement)
	p.expect(n, TokenOpenKeyword, "Open statement")
	p.eatBlank(n)
	n.AddChild(p.parseExpression())
	p.expect(n, TokenForKeyword, "Open statement")
	if !p.matchAny(n, TokenInputKeyword, TokenOutputKeyword, TokenAppendKeyword,
		TokenRandomKeyword, TokenBinaryKeyword) {
		p.fail(fmt.Sprintf("expected Input, Output, Append, Random, or Binary after For, found %s",
			p.peekSkip().Kind))
	}
	if p.match(n, TokenAccessKeyword) {
		if !p.matchAny(n, TokenReadKeyword, TokenWriteKeyword) {
			p.fail(fmt.Sprintf("expected Read or Write after Access, found %s", p.peekSkip().Kind))
		}
		p.match(n, TokenWriteKeyword)
	}
	switch {
	case p.match(n, TokenLockKeyword):
		p.match(n, TokenReadKeyword)
		p.match(n, TokenWriteKeyword)
	case p.at(TokenIdentifier) && strings.EqualFold(p.peekSkip().Literal, "Shared"):
		p.eatBlank(n)
		p.consume(n)
	}
	p.expect(n, TokenAsKeyword, "Open statement")
	p.parseFileNumber(n)
	if p.match(n, TokenLenKeyword) {
		p.expect(n, TokenEqualityOperator, "record length")
		p.eatBlank(n)
		n.AddChild(p.parseExpression())
	}
	p.endLine(n, "Open statement")
	return n
}

// parseClose parses Close with an optional file number list.
func (p *Parser) parseClose() *Node {
	n := newNode(KindCloseStatement)
	p.expect(n, TokenCloseKeyword, "Close statement")
	if !p.atLineEnd() {
		for {
			p.parseFileNumber(n)
			if !p.match(n, TokenComma) {
				break
			}
		}
	}
	p.endLine(n, "Close statement")
	return n
}

// parsePrint parses Print [#filenumber,] [outputlist]. Output items
// are separated by commas or semicolons; a bare separator before the
// line end prints a blank field, so none of them requires another item.
func (p *Parser) parsePrint() *Node {
	n := newNode(KindPrintStatement)
	p.expect(n, TokenPrintKeyword, "Print statement")
	if p.at(TokenOctothorpe) {
		p.parseFileNumber(n)
		p.expect(n, TokenComma, "Print statement")
	}
	for !p.atLineEnd() {
		p.eatBlank(n)
		n.AddChild(p.parseExpression())
		if !p.matchAny(n, TokenComma, TokenSemicolon) {
			break
		}
	}
	p.endLine(n, "Print statement")
	return n
}

// parseLineInput parses Line Input #filenumber, variable.
func (p *Parser) parseLineInput() *Node {
	n := newNode(KindLineInputStatement)
	p.expect(n, TokenLineKeyword, "Line Input statement")
	p.expect(n, TokenInputKeyword, "Line Input statement")
	p.parseFileNumber(n)
	p.expect(n, TokenComma, "Line Input statement")
	p.eatBlank(n)
	n.AddChild(p.parsePostfixExpression())
	p.endLine(n, "Line Input statement")
	return n
}

// parseMkDir parses MkDir path.
func (p *Parser) parseMkDir() *Node {
	n := newNode(KindMkDirStatement)
	p.expect(n, TokenMkDirKeyword, "MkDir statement")
	p.eatBlank(n)
	n.AddChild(p.parseExpression())
	p.endLine(n, "MkDir statement")
	return n
}

// parseName parses Name oldpathname As newpathname.
func (p *Parser) parseName() *Node {
	n := newNode(KindNameStatement)
	p.expect(n, TokenNameKeyword, "Name statement")
	p.eatBlank(n)
	n.AddChild(p.parseExpression())
	p.expect(n, TokenAsKeyword, "Name statement")
	p.eatBlank(n)
	n.AddChild(p.parseExpression())
	p.endLine(n, "Name statement")
	return n
}

// parseCommand covers built-in commands like Beep or Kill "tmp" whose
// arguments run to the end of the line without parentheses.
func (p *Parser) parseCommand() *Node {
	n := newNode(KindCallStatement)
	p.eatBlank(n)
	p.consume(n)
	args := p.emptyList(KindArgumentList)
	if !p.atLineEnd() {
		p.parseArguments(args, false)
	}
	n.AddChild(args)
	p.endLine(n, "statement")
	return n
}

// parseCall parses an explicit Call statement. The argument list is
// always present, even when the call carries no parentheses.
func (p *Parser) parseCall() *Node {
	n := newNode(KindCallStatement)
	p.expect(n, TokenCallKeyword, "Call statement")
	p.parseCallee(n)
	if p.at(TokenLeftParenthesis) {
		p.match(n, TokenLeftParenthesis)
		args := p.emptyList(KindArgumentList)
		if !p.at(TokenRightParenthesis) {
			p.parseArguments(args, true)
		}
		n.AddChild(args)
		p.expect(n, TokenRightParenthesis, "Call statement")
	} else {
		n.AddChild(p.emptyList(KindArgumentList))
	}
	p.endLine(n, "Call statement")
	return n
}

// parseImplicitCall parses a procedure call written without the Call
// keyword: `Foo`, `Foo()`, or `Foo 1, 2`. All three forms produce the
// same CallStatement shape.
func (p *Parser) parseImplicitCall() *Node {
	n := newNode(KindCallStatement)
	p.parseCallee(n)
	if p.at(TokenLeftParenthesis) {
		p.match(n, TokenLeftParenthesis)
		args := p.emptyList(KindArgumentList)
		if !p.at(TokenRightParenthesis) {
			p.parseArguments(args, true)
		}
		n.AddChild(args)
		p.expect(n, TokenRightParenthesis, "call")
	} else {
		args := p.emptyList(KindArgumentList)
		if !p.atLineEnd() {
			p.parseArguments(args, false)
		}
		n.AddChild(args)
	}
	p.endLine(n, "call")
	return n
}

// parseCallee consumes the called name. A plain name becomes a bare
// Identifier leaf; a dotted or banged chain becomes a member access.
func (p *Parser) parseCallee(n *Node) {
	leading := p.at(TokenPeriodOperator)
	chained := p.peekSkip2().Kind == TokenPeriodOperator || p.peekSkip2().Kind == TokenExclamationMark
	if !leading && !chained {
		p.consumeName(n, "call target")
		return
	}
	m := newNode(KindMemberAccessExpression)
	if leading {
		p.eatBlank(m)
		p.consume(m)
	}
	p.consumeName(m, "call target")
	for p.at(TokenPeriodOperator) || p.at(TokenExclamationMark) {
		p.eatBlank(m)
		p.consume(m)
		p.consumeName(m, "member access")
	}
	n.AddChild(m)
}

func (p *Parser) parseAssignment() *Node {
	n := newNode(KindAssignmentStatement)
	p.parseAssignmentInto(n)
	return n
}

// parseLet parses assignments with a leading Let, LSet, or RSet.
func (p *Parser) parseLet() *Node {
	n := newNode(KindAssignmentStatement)
	p.eatBlank(n)
	p.consume(n)
	p.parseAssignmentInto(n)
	return n
}

func (p *Parser) parseAssignmentInto(n *Node) {
	p.eatBlank(n)
	n.AddChild(p.parsePostfixExpression())
	p.expect(n, TokenEqualityOperator, "assignment")
	p.eatBlank(n)
	n.AddChild(p.parseExpression())
	p.endLine(n, "assignment")
}

func (p *Parser) parseSet() *Node {
	n := newNode(KindSetStatement)
	p.expect(n, TokenSetKeyword, "Set statement")
	p.eatBlank(n)
	n.AddChild(p.parsePostfixExpression())
	p.expect(n, TokenEqualityOperator, "Set statement")
	p.eatBlank(n)
	n.AddChild(p.parseExpression())
	p.endLine(n, "Set statement")
	return n
}

func (p *Parser) parseRaiseEvent() *Node {
	n := newNode(KindRaiseEventStatement)
	p.expect(n, TokenRaiseEventKeyword, "RaiseEvent statement")
	p.consumeName(n, "RaiseEvent statement")
	if p.match(n, TokenLeftParenthesis) {
		args := p.emptyList(KindArgumentList)
		if !p.at(TokenRightParenthesis) {
			p.parseArguments(args, true)
		}
		n.AddChild(args)
		p.expect(n, TokenRightParenthesis, "RaiseEvent statement")
	}
	p.endLine(n, "RaiseEvent statement")
	return n
}

func (p *Parser) parseImplements() *Node {
	n := newNode(KindImplementsStatement)
	p.expect(n, TokenImplementsKeyword, "Implements statement")
	p.parseCallee(n)
	p.endLine(n, "Implements statement")
	return n
}

// parseVariableStatement parses Dim and module-level variable
// declarations, including WithEvents fields.
func (p *Parser) parseVariableStatement() *Node {
	n := newNode(KindDimStatement)
	p.matchModifiers(n)
	p.match(n, TokenDimKeyword)
	p.match(n, TokenWithEventsKeyword)
	for {
		n.AddChild(p.parseDeclarator())
		if !p.match(n, TokenComma) {
			return p.finishDeclaration(n)
		}
	}
}

func (p *Parser) finishDeclaration(n *Node) *Node {
	p.endLine(n, "declaration")
	return n
}

// parseDeclarator parses one `name(bounds) As Type` element.
func (p *Parser) parseDeclarator() *Node {
	d := newNode(KindVariableDeclarator)
	p.consumeName(d, "declaration")
	if p.at(TokenLeftParenthesis) {
		d.AddChild(p.parseArrayBounds())
	}
	if p.at(TokenAsKeyword) {
		d.AddChild(p.parseAsClause())
	}
	return d
}

func (p *Parser) parseArrayBounds() *Node {
	b := newNode(KindArrayBounds)
	p.expect(b, TokenLeftParenthesis, "array bounds")
	if !p.at(TokenRightParenthesis) {
		for {
			p.eatBlank(b)
			b.AddChild(p.parseExpression())
			if p.match(b, TokenToKeyword) {
				p.eatBlank(b)
				b.AddChild(p.parseExpression())
			}
			if !p.match(b, TokenComma) {
				break
			}
		}
	}
	p.expect(b, TokenRightParenthesis, "array bounds")
	return b
}

// parseAsClause parses `As [New] Type`, including fixed-length strings
// and dotted library types.
func (p *Parser) parseAsClause() *Node {
	a := newNode(KindAsClause)
	p.expect(a, TokenAsKeyword, "As clause")
	p.match(a, TokenNewKeyword)
	if IsTypeKeyword(p.peekSkip().Kind) {
		p.eatBlank(a)
		p.consume(a)
		if p.match(a, TokenMultiplicationOperator) {
			p.expect(a, TokenIntegerLiteral, "fixed-length string")
		}
		return a
	}
	p.consumeName(a, "As clause")
	for p.match(a, TokenPeriodOperator) {
		p.consumeName(a, "As clause")
	}
	return a
}

func (p *Parser) parseConst() *Node {
	n := newNode(KindConstStatement)
	p.matchModifiers(n)
	p.expect(n, TokenConstKeyword, "Const statement")
	for {
		d := newNode(KindVariableDeclarator)
		p.consumeName(d, "Const statement")
		if p.at(TokenAsKeyword) {
			d.AddChild(p.parseAsClause())
		}
		p.expect(d, TokenEqualityOperator, "Const statement")
		p.eatBlank(d)
		d.AddChild(p.parseExpression())
		n.AddChild(d)
		if !p.match(n, TokenComma) {
			break
		}
	}
	p.endLine(n, "Const statement")
	return n
}

func (p *Parser) parseReDim() *Node {
	n := newNode(KindReDimStatement)
	p.expect(n, TokenReDimKeyword, "ReDim statement")
	p.match(n, TokenPreserveKeyword)
	for {
		n.AddChild(p.parseDeclarator())
		if !p.match(n, TokenComma) {
			break
		}
	}
	p.endLine(n, "ReDim statement")
	return n
}

func (p *Parser) parseErase() *Node {
	n := newNode(KindEraseStatement)
	p.expect(n, TokenEraseKeyword, "Erase statement")
	for {
		p.parseCallee(n)
		if !p.match(n, TokenComma) {
			break
		}
	}
	p.endLine(n, "Erase statement")
	return n
}

func (p *Parser) parseIf() *Node {
	n := newNode(KindIfStatement)
	p.expect(n, TokenIfKeyword, "If statement")
	p.eatBlank(n)
	n.AddChild(p.parseExpression())
	p.expect(n, TokenThenKeyword, "If statement")
	if p.atLineEnd() {
		return p.parseBlockIf(n)
	}
	return p.parseInlineIf(n)
}

func (p *Parser) parseBlockIf(n *Node) *Node {
	p.endLine(n, "If statement")
	branchDone := func() bool {
		return p.at(TokenElseIfKeyword) || p.at(TokenElseKeyword) || p.atBlockEnd(TokenIfKeyword)
	}
	n.AddChild(p.parseStatementList(branchDone))
	for p.at(TokenElseIfKeyword) {
		c := newNode(KindElseIfClause)
		p.match(c, TokenElseIfKeyword)
		p.eatBlank(c)
		c.AddChild(p.parseExpression())
		p.expect(c, TokenThenKeyword, "ElseIf clause")
		p.endLine(c, "ElseIf clause")
		c.AddChild(p.parseStatementList(branchDone))
		n.AddChild(c)
	}
	if p.at(TokenElseKeyword) {
		c := newNode(KindElseClause)
		p.match(c, TokenElseKeyword)
		p.endLine(c, "Else clause")
		c.AddChild(p.parseStatementList(func() bool { return p.atBlockEnd(TokenIfKeyword) }))
		n.AddChild(c)
	}
	p.expect(n, TokenEndKeyword, "If statement")
	p.expect(n, TokenIfKeyword, "If statement")
	p.endLine(n, "If statement")
	return n
}

// parseInlineIf parses the single-line form, where the branches are
// statements on the Then line itself.
func (p *Parser) parseInlineIf(n *Node) *Node {
	wasInline := p.inlineIf
	p.inlineIf = true
	n.AddChild(p.parseInlineBody())
	if p.at(TokenElseKeyword) {
		c := newNode(KindElseClause)
		p.match(c, TokenElseKeyword)
		c.AddChild(p.parseInlineBody())
		n.AddChild(c)
	}
	p.inlineIf = wasInline
	p.endLine(n, "If statement")
	return n
}

func (p *Parser) parseInlineBody() *Node {
	list := newNode(KindStatementList)
	start := p.peek().Span.Start
	list.Span = Span{Start: start, End: start}
	for {
		p.eatBlank(list)
		switch p.peek().Kind {
		case TokenNewline, TokenEOF, TokenElseKeyword:
			return list
		case TokenColonOperator:
			p.consume(list)
			continue
		}
		before := p.pos
		list.AddChild(p.parseStatement())
		if p.pos == before {
			p.errorNode(list, fmt.Sprintf("cannot parse %s as a statement", p.peek().Kind))
		}
	}
}

func (p *Parser) parseFor() *Node {
	n := newNode(KindForStatement)
	p.expect(n, TokenForKeyword, "For statement")
	p.consumeName(n, "For statement")
	p.expect(n, TokenEqualityOperator, "For statement")
	p.eatBlank(n)
	n.AddChild(p.parseExpression())
	p.expect(n, TokenToKeyword, "For statement")
	p.eatBlank(n)
	n.AddChild(p.parseExpression())
	if p.match(n, TokenStepKeyword) {
		p.eatBlank(n)
		n.AddChild(p.parseExpression())
	}
	p.endLine(n, "For statement")
	n.AddChild(p.parseStatementList(func() bool { return p.at(TokenNextKeyword) }))
	p.expect(n, TokenNextKeyword, "For statement")
	p.finishNext(n)
	return n
}

func (p *Parser) parseForEach() *Node {
	n := newNode(KindForEachStatement)
	p.expect(n, TokenForKeyword, "For Each statement")
	p.expect(n, TokenEachKeyword, "For Each statement")
	p.consumeName(n, "For Each statement")
	p.expect(n, TokenInKeyword, "For Each statement")
	p.eatBlank(n)
	n.AddChild(p.parseExpression())
	p.endLine(n, "For Each statement")
	n.AddChild(p.parseStatementList(func() bool { return p.at(TokenNextKeyword) }))
	p.expect(n, TokenNextKeyword, "For Each statement")
	p.finishNext(n)
	return n
}

// finishNext consumes the optional counter names after Next.
func (p *Parser) finishNext(n *Node) {
	if !p.atLineEnd() && IsNameLike(p.peekSkip().Kind) {
		p.consumeName(n, "Next")
		for p.match(n, TokenComma) {
			p.consumeName(n, "Next")
		}
	}
	p.endLine(n, "For statement")
}

func (p *Parser) parseDo() *Node {
	n := newNode(KindDoStatement)
	p.expect(n, TokenDoKeyword, "Do statement")
	if p.matchAny(n, TokenWhileKeyword, TokenUntilKeyword) {
		p.eatBlank(n)
		n.AddChild(p.parseExpression())
	}
	p.endLine(n, "Do statement")
	n.AddChild(p.parseStatementList(func() bool { return p.at(TokenLoopKeyword) }))
	p.expect(n, TokenLoopKeyword, "Do statement")
	if p.matchAny(n, TokenWhileKeyword, TokenUntilKeyword) {
		p.eatBlank(n)
		n.AddChild(p.parseExpression())
	}
	p.endLine(n, "Do statement")
	return n
}

func (p *Parser) parseWhile() *Node {
	n := newNode(KindWhileStatement)
	p.expect(n, TokenWhileKeyword, "While statement")
	p.eatBlank(n)
	n.AddChild(p.parseExpression())
	p.endLine(n, "While statement")
	n.AddChild(p.parseStatementList(func() bool { return p.at(TokenWendKeyword) }))
	p.expect(n, TokenWendKeyword, "While statement")
	p.endLine(n, "While statement")
	return n
}

func (p *Parser) parseWith() *Node {
	n := newNode(KindWithStatement)
	p.expect(n, TokenWithKeyword, "With statement")
	p.eatBlank(n)
	n.AddChild(p.parseExpression())
	p.endLine(n, "With statement")
	n.AddChild(p.parseStatementList(func() bool { return p.atBlockEnd(TokenWithKeyword) }))
	p.expect(n, TokenEndKeyword, "With statement")
	p.expect(n, TokenWithKeyword, "With statement")
	p.endLine(n, "With statement")
	return n
}

func (p *Parser) parseSelect() *Node {
	n := newNode(KindSelectStatement)
	p.expect(n, TokenSelectKeyword, "Select statement")
	p.expect(n, TokenCaseKeyword, "Select statement")
	p.eatBlank(n)
	n.AddChild(p.parseExpression())
	p.endLine(n, "Select statement")
	for {
		p.eatLayout(n)
		if p.at(TokenCaseKeyword) {
			n.AddChild(p.parseCaseClause())
			continue
		}
		if p.peek().Kind == TokenEOF || p.atBlockEnd(TokenSelectKeyword) {
			break
		}
		p.errorNode(n, fmt.Sprintf("expected Case or End Select, found %s", p.peekSkip().Kind))
	}
	p.expect(n, TokenEndKeyword, "Select statement")
	p.expect(n, TokenSelectKeyword, "Select statement")
	p.endLine(n, "Select statement")
	return n
}

func (p *Parser) parseCaseClause() *Node {
	c := newNode(KindCaseClause)
	p.expect(c, TokenCaseKeyword, "Case clause")
	if !p.match(c, TokenElseKeyword) {
		for {
			if p.match(c, TokenIsKeyword) {
				if !p.matchAny(c, TokenEqualityOperator, TokenInequalityOperator,
					TokenLessThanOperator, TokenGreaterThanOperator,
					TokenLessThanOrEqualOperator, TokenGreaterThanOrEqualOperator) {
					p.fail(fmt.Sprintf("expected a comparison after Case Is, found %s",
						p.peekSkip().Kind))
				}
			}
			p.eatBlank(c)
			c.AddChild(p.parseExpression())
			if p.match(c, TokenToKeyword) {
				p.eatBlank(c)
				c.AddChild(p.parseExpression())
			}
			if !p.match(c, TokenComma) {
				break
			}
		}
	}
	p.endLine(c, "Case clause")
	c.AddChild(p.parseStatementList(func() bool {
		return p.at(TokenCaseKeyword) || p.atBlockEnd(TokenSelectKeyword)
	}))
	return c
}

func (p *Parser) parseProcedure(kind NodeKind) *Node {
	n := newNode(kind)
	p.matchModifiers(n)
	var closer TokenKind
	switch kind {
	case KindFunctionStatement:
		closer = TokenFunctionKeyword
		p.expect(n, TokenFunctionKeyword, "Function statement")
	case KindPropertyStatement:
		closer = TokenPropertyKeyword
		p.expect(n, TokenPropertyKeyword, "Property statement")
		if !p.matchAny(n, TokenGetKeyword, TokenLetKeyword, TokenSetKeyword) {
			p.fail(fmt.Sprintf("expected Get, Let, or Set after Property, found %s",
				p.peekSkip().Kind))
		}
	default:
		closer = TokenSubKeyword
		p.expect(n, TokenSubKeyword, "Sub statement")
	}
	p.consumeName(n, "procedure name")
	if p.at(TokenLeftParenthesis) {
		n.AddChild(p.parseParameterList())
	}
	if kind != KindSubStatement && p.at(TokenAsKeyword) {
		n.AddChild(p.parseAsClause())
	}
	p.endLine(n, "procedure signature")
	n.AddChild(p.parseStatementList(func() bool { return p.atBlockEnd(closer) }))
	p.expect(n, TokenEndKeyword, "procedure")
	p.expect(n, closer, "procedure")
	p.endLine(n, "procedure")
	return n
}

func (p *Parser) parseParameterList() *Node {
	pl := newNode(KindParameterList)
	p.expect(pl, TokenLeftParenthesis, "parameter list")
	if !p.at(TokenRightParenthesis) {
		for {
			pl.AddChild(p.parseParameter())
			if !p.match(pl, TokenComma) {
				break
			}
		}
	}
	p.expect(pl, TokenRightParenthesis, "parameter list")
	return pl
}

func (p *Parser) parseParameter() *Node {
	par := newNode(KindParameter)
	for p.matchAny(par, TokenOptionalKeyword, TokenByValKeyword, TokenByRefKeyword,
		TokenParamArrayKeyword) {
	}
	p.consumeName(par, "parameter")
	if p.at(TokenLeftParenthesis) {
		p.match(par, TokenLeftParenthesis)
		p.expect(par, TokenRightParenthesis, "array parameter")
	}
	if p.at(TokenAsKeyword) {
		par.AddChild(p.parseAsClause())
	}
	if p.match(par, TokenEqualityOperator) {
		p.eatBlank(par)
		par.AddChild(p.parseExpression())
	}
	return par
}

func (p *Parser) parseDeclare() *Node {
	n := newNode(KindDeclareStatement)
	p.matchModifiers(n)
	p.expect(n, TokenDeclareKeyword, "Declare statement")
	if !p.matchAny(n, TokenSubKeyword, TokenFunctionKeyword) {
		p.fail(fmt.Sprintf("expected Sub or Function after Declare, found %s", p.peekSkip().Kind))
	}
	p.consumeName(n, "Declare statement")
	p.expect(n, TokenLibKeyword, "Declare statement")
	p.expect(n, TokenStringLiteral, "Declare statement")
	if p.match(n, TokenAliasKeyword) {
		p.expect(n, TokenStringLiteral, "Declare statement")
	}
	if p.at(TokenLeftParenthesis) {
		n.AddChild(p.parseParameterList())
	}
	if p.at(TokenAsKeyword) {
		n.AddChild(p.parseAsClause())
	}
	p.endLine(n, "Declare statement")
	return n
}

func (p *Parser) parseTypeBlock() *Node {
	n := newNode(KindTypeStatement)
	p.matchModifiers(n)
	p.expect(n, TokenTypeKeyword, "Type statement")
	p.consumeName(n, "Type statement")
	p.endLine(n, "Type statement")
	list := newNode(KindStatementList)
	start := p.peek().Span.Start
	list.Span = Span{Start: start, End: start}
	for {
		p.eatLayout(list)
		if p.peek().Kind == TokenEOF || p.atBlockEnd(TokenTypeKeyword) {
			break
		}
		before := p.pos
		d := p.parseDeclarator()
		p.endLine(d, "Type member")
		list.AddChild(d)
		if p.pos == before {
			p.errorNode(list, fmt.Sprintf("cannot parse %s as a Type member", p.peek().Kind))
		}
	}
	n.AddChild(list)
	p.expect(n, TokenEndKeyword, "Type statement")
	p.expect(n, TokenTypeKeyword, "Type statement")
	p.endLine(n, "Type statement")
	return n
}

func (p *Parser) parseEnum() *Node {
	n := newNode(KindEnumStatement)
	p.matchModifiers(n)
	p.expect(n, TokenEnumKeyword, "Enum statement")
	p.consumeName(n, "Enum statement")
	p.endLine(n, "Enum statement")
	list := newNode(KindStatementList)
	start := p.peek().Span.Start
	list.Span = Span{Start: start, End: start}
	for {
		p.eatLayout(list)
		if p.peek().Kind == TokenEOF || p.atBlockEnd(TokenEnumKeyword) {
			break
		}
		before := p.pos
		d := newNode(KindVariableDeclarator)
		p.consumeName(d, "Enum member")
		if p.match(d, TokenEqualityOperator) {
			p.eatBlank(d)
			d.AddChild(p.parseExpression())
		}
		p.endLine(d, "Enum member")
		list.AddChild(d)
		if p.pos == before {
			p.errorNode(list, fmt.Sprintf("cannot parse %s as an Enum member", p.peek().Kind))
		}
	}
	n.AddChild(list)
	p.expect(n, TokenEndKeyword, "Enum statement")
	p.expect(n, TokenEnumKeyword, "Enum statement")
	p.endLine(n, "Enum statement")
	return n
}

func (p *Parser) parseEvent() *Node {
	n := newNode(KindEventStatement)
	p.matchModifiers(n)
	p.expect(n, TokenEventKeyword, "Event statement")
	p.consumeName(n, "Event statement")
	if p.at(TokenLeftParenthesis) {
		n.AddChild(p.parseParameterList())
	}
	p.endLine(n, "Event statement")
	return n
}
