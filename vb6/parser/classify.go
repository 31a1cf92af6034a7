package parser

// keywordDollar lists the reserved words that combine with a directly
// following $ into a single built-in function name, e.g. Mid$ or Error$.
// Time$ and the other non-reserved built-ins are handled by the lexer.
var keywordDollar = map[TokenKind]bool{
	TokenErrorKeyword:  true,
	TokenLenKeyword:    true,
	TokenMidKeyword:    true,
	TokenMidBKeyword:   true,
	TokenDateKeyword:   true,
	TokenStringKeyword: true,
}

func IsKeywordDollar(kind TokenKind) bool {
	return keywordDollar[kind]
}

// fuseIdentifier joins a word token and its $ suffix into one Identifier
// token covering both.
func fuseIdentifier(word, dollar Token) Token {
	return Token{
		Kind:    TokenIdentifier,
		Span:    Span{Start: word.Span.Start, End: dollar.Span.End},
		Literal: word.Literal + dollar.Literal,
	}
}

// IsNameLike reports whether a token may serve as a name where the
// grammar expects one. VB6 lets most reserved words double as variable,
// member, and procedure names, so the decision belongs to the parser
// position, not the lexer.
func IsNameLike(kind TokenKind) bool {
	return kind == TokenIdentifier || kind.IsKeyword()
}

// asIdentifier reclassifies a name-like token as an Identifier, keeping
// its span and text.
func asIdentifier(tok Token) Token {
	tok.Kind = TokenIdentifier
	return tok
}

// IsValueKeyword reports whether the keyword is a literal value in
// expression position.
func IsValueKeyword(kind TokenKind) bool {
	switch kind {
	case TokenTrueKeyword, TokenFalseKeyword, TokenNothingKeyword,
		TokenNullKeyword, TokenEmptyKeyword, TokenMeKeyword:
		return true
	}
	return false
}

// IsTypeKeyword reports whether the keyword names a built-in type in an
// As clause.
func IsTypeKeyword(kind TokenKind) bool {
	switch kind {
	case TokenBooleanKeyword, TokenByteKeyword, TokenCurrencyKeyword,
		TokenDateKeyword, TokenDoubleKeyword, TokenIntegerKeyword,
		TokenLongKeyword, TokenObjectKeyword, TokenSingleKeyword,
		TokenStringKeyword, TokenVariantKeyword, TokenAnyKeyword:
		return true
	}
	return false
}

// builtinCommands are keywords that start a simple command statement
// whose arguments, if any, run to the end of the line.
var builtinCommands = map[TokenKind]bool{
	TokenAppActivateKeyword:   true,
	TokenBeepKeyword:          true,
	TokenChDirKeyword:         true,
	TokenChDriveKeyword:       true,
	TokenDeleteSettingKeyword: true,
	TokenFileCopyKeyword:      true,
	TokenKillKeyword:          true,
	TokenLoadKeyword:          true,
	TokenRandomizeKeyword:     true,
	TokenResetKeyword:         true,
	TokenRmDirKeyword:         true,
	TokenSavePictureKeyword:   true,
	TokenSaveSettingKeyword:   true,
	TokenSendKeysKeyword:      true,
	TokenSetAttrKeyword:       true,
	TokenUnloadKeyword:        true,
}

// statementKeywords are the keywords that can only open a statement.
// Error recovery resynchronizes on them, and call detection refuses to
// treat them as a callee.
var statementKeywords = map[TokenKind]bool{
	TokenAttributeKeyword:  true,
	TokenCallKeyword:       true,
	TokenCaseKeyword:       true,
	TokenConstKeyword:      true,
	TokenDeclareKeyword:    true,
	TokenDimKeyword:        true,
	TokenDoKeyword:         true,
	TokenElseIfKeyword:     true,
	TokenElseKeyword:       true,
	TokenEndKeyword:        true,
	TokenEnumKeyword:       true,
	TokenEraseKeyword:      true,
	TokenEventKeyword:      true,
	TokenExitKeyword:       true,
	TokenForKeyword:        true,
	TokenFriendKeyword:     true,
	TokenFunctionKeyword:   true,
	TokenGoSubKeyword:      true,
	TokenGotoKeyword:       true,
	TokenIfKeyword:         true,
	TokenImplementsKeyword: true,
	TokenLetKeyword:        true,
	TokenLoopKeyword:       true,
	TokenMkDirKeyword:      true,
	TokenNextKeyword:       true,
	TokenOnKeyword:         true,
	TokenOptionKeyword:     true,
	TokenPrivateKeyword:    true,
	TokenPropertyKeyword:   true,
	TokenPublicKeyword:     true,
	TokenRaiseEventKeyword: true,
	TokenReDimKeyword:      true,
	TokenResumeKeyword:     true,
	TokenReturnKeyword:     true,
	TokenSelectKeyword:     true,
	TokenSetKeyword:        true,
	TokenStaticKeyword:     true,
	TokenStopKeyword:       true,
	TokenSubKeyword:        true,
	TokenThenKeyword:       true,
	TokenTypeKeyword:       true,
	TokenWendKeyword:       true,
	TokenWhileKeyword:      true,
	TokenWithKeyword:       true,
}

func IsStatementKeyword(kind TokenKind) bool {
	return statementKeywords[kind] || builtinCommands[kind]
}
