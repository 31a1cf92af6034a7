package parser

import (
	"fmt"
	"strings"
)

type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	if p.File == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

type Span struct {
	Start Position
	End   Position
}

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenUnknown

	// Trivia
	TokenWhitespace
	TokenNewline
	TokenEndOfLineComment
	TokenRemComment

	// Literals and identifiers
	TokenIdentifier
	TokenStringLiteral
	TokenIntegerLiteral
	TokenLongLiteral
	TokenSingleLiteral
	TokenDoubleLiteral
	TokenCurrencyLiteral
	TokenDateLiteral

	// Keywords
	TokenAccessKeyword
	TokenAddressOfKeyword
	TokenAliasKeyword
	TokenAndKeyword
	TokenAnyKeyword
	TokenAppActivateKeyword
	TokenAppendKeyword
	TokenAsKeyword
	TokenAttributeKeyword
	TokenBaseKeyword
	TokenBeepKeyword
	TokenBeginKeyword
	TokenBinaryKeyword
	TokenBooleanKeyword
	TokenByRefKeyword
	TokenByteKeyword
	TokenByValKeyword
	TokenCallKeyword
	TokenCaseKeyword
	TokenChDirKeyword
	TokenChDriveKeyword
	TokenClassKeyword
	TokenCloseKeyword
	TokenCompareKeyword
	TokenConstKeyword
	TokenCurrencyKeyword
	TokenDatabaseKeyword
	TokenDateKeyword
	TokenDecimalKeyword
	TokenDeclareKeyword
	TokenDefBoolKeyword
	TokenDefByteKeyword
	TokenDefCurKeyword
	TokenDefDateKeyword
	TokenDefDblKeyword
	TokenDefDecKeyword
	TokenDefIntKeyword
	TokenDefLngKeyword
	TokenDefObjKeyword
	TokenDefSngKeyword
	TokenDefStrKeyword
	TokenDefVarKeyword
	TokenDeleteSettingKeyword
	TokenDimKeyword
	TokenDoKeyword
	TokenDoubleKeyword
	TokenEachKeyword
	TokenElseIfKeyword
	TokenElseKeyword
	TokenEmptyKeyword
	TokenEndKeyword
	TokenEnumKeyword
	TokenEqvKeyword
	TokenEraseKeyword
	TokenErrorKeyword
	TokenEventKeyword
	TokenExitKeyword
	TokenExplicitKeyword
	TokenFalseKeyword
	TokenFileCopyKeyword
	TokenForKeyword
	TokenFriendKeyword
	TokenFunctionKeyword
	TokenGetKeyword
	TokenGoSubKeyword
	TokenGotoKeyword
	TokenIfKeyword
	TokenImpKeyword
	TokenImplementsKeyword
	TokenInKeyword
	TokenInputKeyword
	TokenIntegerKeyword
	TokenIsKeyword
	TokenKillKeyword
	TokenLenKeyword
	TokenLetKeyword
	TokenLibKeyword
	TokenLikeKeyword
	TokenLineKeyword
	TokenLoadKeyword
	TokenLockKeyword
	TokenLongKeyword
	TokenLoopKeyword
	TokenLSetKeyword
	TokenMeKeyword
	TokenMidBKeyword
	TokenMidKeyword
	TokenMkDirKeyword
	TokenModKeyword
	TokenModuleKeyword
	TokenNameKeyword
	TokenNewKeyword
	TokenNextKeyword
	TokenNotKeyword
	TokenNothingKeyword
	TokenNullKeyword
	TokenObjectKeyword
	TokenOffKeyword
	TokenOnKeyword
	TokenOpenKeyword
	TokenOptionalKeyword
	TokenOptionKeyword
	TokenOrKeyword
	TokenOutputKeyword
	TokenParamArrayKeyword
	TokenPreserveKeyword
	TokenPrintKeyword
	TokenPrivateKeyword
	TokenPropertyKeyword
	TokenPublicKeyword
	TokenPutKeyword
	TokenRaiseEventKeyword
	TokenRandomKeyword
	TokenRandomizeKeyword
	TokenReadKeyword
	TokenReDimKeyword
	TokenResetKeyword
	TokenResumeKeyword
	TokenReturnKeyword
	TokenRmDirKeyword
	TokenRSetKeyword
	TokenSavePictureKeyword
	TokenSaveSettingKeyword
	TokenSeekKeyword
	TokenSelectKeyword
	TokenSendKeysKeyword
	TokenSetAttrKeyword
	TokenSetKeyword
	TokenSingleKeyword
	TokenStaticKeyword
	TokenStepKeyword
	TokenStopKeyword
	TokenStringKeyword
	TokenSubKeyword
	TokenTextKeyword
	TokenThenKeyword
	TokenTimeKeyword
	TokenToKeyword
	TokenTrueKeyword
	TokenTypeKeyword
	TokenTypeOfKeyword
	TokenUnloadKeyword
	TokenUnlockKeyword
	TokenUntilKeyword
	TokenVariantKeyword
	TokenVersionKeyword
	TokenWendKeyword
	TokenWhileKeyword
	TokenWidthKeyword
	TokenWithEventsKeyword
	TokenWithKeyword
	TokenWriteKeyword
	TokenXorKeyword

	// Operators and punctuation
	TokenDollarSign
	TokenUnderscore
	TokenAmpersand
	TokenPercent
	TokenOctothorpe
	TokenLeftParenthesis
	TokenRightParenthesis
	TokenLeftCurlyBrace
	TokenRightCurlyBrace
	TokenLeftSquareBracket
	TokenRightSquareBracket
	TokenComma
	TokenSemicolon
	TokenAtSign
	TokenExclamationMark
	TokenEqualityOperator
	TokenInequalityOperator
	TokenLessThanOrEqualOperator
	TokenGreaterThanOrEqualOperator
	TokenLessThanOperator
	TokenGreaterThanOperator
	TokenMultiplicationOperator
	TokenSubtractionOperator
	TokenAdditionOperator
	TokenDivisionOperator
	TokenBackwardSlashOperator
	TokenPeriodOperator
	TokenColonOperator
	TokenExponentiationOperator
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:              "EOF",
	TokenUnknown:          "Unknown",
	TokenWhitespace:       "Whitespace",
	TokenNewline:          "Newline",
	TokenEndOfLineComment: "EndOfLineComment",
	TokenRemComment:       "RemComment",

	TokenIdentifier:      "Identifier",
	TokenStringLiteral:   "StringLiteral",
	TokenIntegerLiteral:  "IntegerLiteral",
	TokenLongLiteral:     "LongLiteral",
	TokenSingleLiteral:   "SingleLiteral",
	TokenDoubleLiteral:   "DoubleLiteral",
	TokenCurrencyLiteral: "CurrencyLiteral",
	TokenDateLiteral:     "DateLiteral",

	TokenAccessKeyword:        "AccessKeyword",
	TokenAddressOfKeyword:     "AddressOfKeyword",
	TokenAliasKeyword:         "AliasKeyword",
	TokenAndKeyword:           "AndKeyword",
	TokenAnyKeyword:           "AnyKeyword",
	TokenAppActivateKeyword:   "AppActivateKeyword",
	TokenAppendKeyword:        "AppendKeyword",
	TokenAsKeyword:            "AsKeyword",
	TokenAttributeKeyword:     "AttributeKeyword",
	TokenBaseKeyword:          "BaseKeyword",
	TokenBeepKeyword:          "BeepKeyword",
	TokenBeginKeyword:         "BeginKeyword",
	TokenBinaryKeyword:        "BinaryKeyword",
	TokenBooleanKeyword:       "BooleanKeyword",
	TokenByRefKeyword:         "ByRefKeyword",
	TokenByteKeyword:          "ByteKeyword",
	TokenByValKeyword:         "ByValKeyword",
	TokenCallKeyword:          "CallKeyword",
	TokenCaseKeyword:          "CaseKeyword",
	TokenChDirKeyword:         "ChDirKeyword",
	TokenChDriveKeyword:       "ChDriveKeyword",
	TokenClassKeyword:         "ClassKeyword",
	TokenCloseKeyword:         "CloseKeyword",
	TokenCompareKeyword:       "CompareKeyword",
	TokenConstKeyword:         "ConstKeyword",
	TokenCurrencyKeyword:      "CurrencyKeyword",
	TokenDatabaseKeyword:      "DatabaseKeyword",
	TokenDateKeyword:          "DateKeyword",
	TokenDecimalKeyword:       "DecimalKeyword",
	TokenDeclareKeyword:       "DeclareKeyword",
	TokenDefBoolKeyword:       "DefBoolKeyword",
	TokenDefByteKeyword:       "DefByteKeyword",
	TokenDefCurKeyword:        "DefCurKeyword",
	TokenDefDateKeyword:       "DefDateKeyword",
	TokenDefDblKeyword:        "DefDblKeyword",
	TokenDefDecKeyword:        "DefDecKeyword",
	TokenDefIntKeyword:        "DefIntKeyword",
	TokenDefLngKeyword:        "DefLngKeyword",
	TokenDefObjKeyword:        "DefObjKeyword",
	TokenDefSngKeyword:        "DefSngKeyword",
	TokenDefStrKeyword:        "DefStrKeyword",
	TokenDefVarKeyword:        "DefVarKeyword",
	TokenDeleteSettingKeyword: "DeleteSettingKeyword",
	TokenDimKeyword:           "DimKeyword",
	TokenDoKeyword:            "DoKeyword",
	TokenDoubleKeyword:        "DoubleKeyword",
	TokenEachKeyword:          "EachKeyword",
	TokenElseIfKeyword:        "ElseIfKeyword",
	TokenElseKeyword:          "ElseKeyword",
	TokenEmptyKeyword:         "EmptyKeyword",
	TokenEndKeyword:           "EndKeyword",
	TokenEnumKeyword:          "EnumKeyword",
	TokenEqvKeyword:           "EqvKeyword",
	TokenEraseKeyword:         "EraseKeyword",
	TokenErrorKeyword:         "ErrorKeyword",
	TokenEventKeyword:         "EventKeyword",
	TokenExitKeyword:          "ExitKeyword",
	TokenExplicitKeyword:      "ExplicitKeyword",
	TokenFalseKeyword:         "FalseKeyword",
	TokenFileCopyKeyword:      "FileCopyKeyword",
	TokenForKeyword:           "ForKeyword",
	TokenFriendKeyword:        "FriendKeyword",
	TokenFunctionKeyword:      "FunctionKeyword",
	TokenGetKeyword:           "GetKeyword",
	TokenGoSubKeyword:         "GoSubKeyword",
	TokenGotoKeyword:          "GotoKeyword",
	TokenIfKeyword:            "IfKeyword",
	TokenImpKeyword:           "ImpKeyword",
	TokenImplementsKeyword:    "ImplementsKeyword",
	TokenInKeyword:            "InKeyword",
	TokenInputKeyword:         "InputKeyword",
	TokenIntegerKeyword:       "IntegerKeyword",
	TokenIsKeyword:            "IsKeyword",
	TokenKillKeyword:          "KillKeyword",
	TokenLenKeyword:           "LenKeyword",
	TokenLetKeyword:           "LetKeyword",
	TokenLibKeyword:           "LibKeyword",
	TokenLikeKeyword:          "LikeKeyword",
	TokenLineKeyword:          "LineKeyword",
	TokenLoadKeyword:          "LoadKeyword",
	TokenLockKeyword:          "LockKeyword",
	TokenLongKeyword:          "LongKeyword",
	TokenLoopKeyword:          "LoopKeyword",
	TokenLSetKeyword:          "LSetKeyword",
	TokenMeKeyword:            "MeKeyword",
	TokenMidBKeyword:          "MidBKeyword",
	TokenMidKeyword:           "MidKeyword",
	TokenMkDirKeyword:         "MkDirKeyword",
	TokenModKeyword:           "ModKeyword",
	TokenModuleKeyword:        "ModuleKeyword",
	TokenNameKeyword:          "NameKeyword",
	TokenNewKeyword:           "NewKeyword",
	TokenNextKeyword:          "NextKeyword",
	TokenNotKeyword:           "NotKeyword",
	TokenNothingKeyword:       "NothingKeyword",
	TokenNullKeyword:          "NullKeyword",
	TokenObjectKeyword:        "ObjectKeyword",
	TokenOffKeyword:           "OffKeyword",
	TokenOnKeyword:            "OnKeyword",
	TokenOpenKeyword:          "OpenKeyword",
	TokenOptionalKeyword:      "OptionalKeyword",
	TokenOptionKeyword:        "OptionKeyword",
	TokenOrKeyword:            "OrKeyword",
	TokenOutputKeyword:        "OutputKeyword",
	TokenParamArrayKeyword:    "ParamArrayKeyword",
	TokenPreserveKeyword:      "PreserveKeyword",
	TokenPrintKeyword:         "PrintKeyword",
	TokenPrivateKeyword:       "PrivateKeyword",
	TokenPropertyKeyword:      "PropertyKeyword",
	TokenPublicKeyword:        "PublicKeyword",
	TokenPutKeyword:           "PutKeyword",
	TokenRaiseEventKeyword:    "RaiseEventKeyword",
	TokenRandomKeyword:        "RandomKeyword",
	TokenRandomizeKeyword:     "RandomizeKeyword",
	TokenReadKeyword:          "ReadKeyword",
	TokenReDimKeyword:         "ReDimKeyword",
	TokenResetKeyword:         "ResetKeyword",
	TokenResumeKeyword:        "ResumeKeyword",
	TokenReturnKeyword:        "ReturnKeyword",
	TokenRmDirKeyword:         "RmDirKeyword",
	TokenRSetKeyword:          "RSetKeyword",
	TokenSavePictureKeyword:   "SavePictureKeyword",
	TokenSaveSettingKeyword:   "SaveSettingKeyword",
	TokenSeekKeyword:          "SeekKeyword",
	TokenSelectKeyword:        "SelectKeyword",
	TokenSendKeysKeyword:      "SendKeysKeyword",
	TokenSetAttrKeyword:       "SetAttrKeyword",
	TokenSetKeyword:           "SetKeyword",
	TokenSingleKeyword:        "SingleKeyword",
	TokenStaticKeyword:        "StaticKeyword",
	TokenStepKeyword:          "StepKeyword",
	TokenStopKeyword:          "StopKeyword",
	TokenStringKeyword:        "StringKeyword",
	TokenSubKeyword:           "SubKeyword",
	TokenTextKeyword:          "TextKeyword",
	TokenThenKeyword:          "ThenKeyword",
	TokenTimeKeyword:          "TimeKeyword",
	TokenToKeyword:            "ToKeyword",
	TokenTrueKeyword:          "TrueKeyword",
	TokenTypeKeyword:          "TypeKeyword",
	TokenTypeOfKeyword:        "TypeOfKeyword",
	TokenUnloadKeyword:        "UnloadKeyword",
	TokenUnlockKeyword:        "UnlockKeyword",
	TokenUntilKeyword:         "UntilKeyword",
	TokenVariantKeyword:       "VariantKeyword",
	TokenVersionKeyword:       "VersionKeyword",
	TokenWendKeyword:          "WendKeyword",
	TokenWhileKeyword:         "WhileKeyword",
	TokenWidthKeyword:         "WidthKeyword",
	TokenWithEventsKeyword:    "WithEventsKeyword",
	TokenWithKeyword:          "WithKeyword",
	TokenWriteKeyword:         "WriteKeyword",
	TokenXorKeyword:           "XorKeyword",

	TokenDollarSign:                 "DollarSign",
	TokenUnderscore:                 "Underscore",
	TokenAmpersand:                  "Ampersand",
	TokenPercent:                    "Percent",
	TokenOctothorpe:                 "Octothorpe",
	TokenLeftParenthesis:            "LeftParenthesis",
	TokenRightParenthesis:           "RightParenthesis",
	TokenLeftCurlyBrace:             "LeftCurlyBrace",
	TokenRightCurlyBrace:            "RightCurlyBrace",
	TokenLeftSquareBracket:          "LeftSquareBracket",
	TokenRightSquareBracket:         "RightSquareBracket",
	TokenComma:                      "Comma",
	TokenSemicolon:                  "Semicolon",
	TokenAtSign:                     "AtSign",
	TokenExclamationMark:            "ExclamationMark",
	TokenEqualityOperator:           "EqualityOperator",
	TokenInequalityOperator:         "InequalityOperator",
	TokenLessThanOrEqualOperator:    "LessThanOrEqualOperator",
	TokenGreaterThanOrEqualOperator: "GreaterThanOrEqualOperator",
	TokenLessThanOperator:           "LessThanOperator",
	TokenGreaterThanOperator:        "GreaterThanOperator",
	TokenMultiplicationOperator:     "MultiplicationOperator",
	TokenSubtractionOperator:        "SubtractionOperator",
	TokenAdditionOperator:           "AdditionOperator",
	TokenDivisionOperator:           "DivisionOperator",
	TokenBackwardSlashOperator:      "BackwardSlashOperator",
	TokenPeriodOperator:             "PeriodOperator",
	TokenColonOperator:              "ColonOperator",
	TokenExponentiationOperator:     "ExponentiationOperator",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsTrivia reports whether the token carries no grammatical meaning of its
// own (whitespace, line ends, comments). Trivia is still kept in the tree.
func (k TokenKind) IsTrivia() bool {
	switch k {
	case TokenWhitespace, TokenNewline, TokenEndOfLineComment, TokenRemComment:
		return true
	}
	return false
}

func (k TokenKind) IsKeyword() bool {
	return k >= TokenAccessKeyword && k <= TokenXorKeyword
}

// Token is a single lexical unit. Concatenating the Literal of every token
// in source order reproduces the input exactly.
type Token struct {
	Kind    TokenKind
	Span    Span
	Literal string
}

// VB6 is case-insensitive; the table is keyed by the lowercased lexeme.
var keywords = map[string]TokenKind{
	"access":        TokenAccessKeyword,
	"addressof":     TokenAddressOfKeyword,
	"alias":         TokenAliasKeyword,
	"and":           TokenAndKeyword,
	"any":           TokenAnyKeyword,
	"appactivate":   TokenAppActivateKeyword,
	"append":        TokenAppendKeyword,
	"as":            TokenAsKeyword,
	"attribute":     TokenAttributeKeyword,
	"base":          TokenBaseKeyword,
	"beep":          TokenBeepKeyword,
	"begin":         TokenBeginKeyword,
	"binary":        TokenBinaryKeyword,
	"boolean":       TokenBooleanKeyword,
	"byref":         TokenByRefKeyword,
	"byte":          TokenByteKeyword,
	"byval":         TokenByValKeyword,
	"call":          TokenCallKeyword,
	"case":          TokenCaseKeyword,
	"chdir":         TokenChDirKeyword,
	"chdrive":       TokenChDriveKeyword,
	"class":         TokenClassKeyword,
	"close":         TokenCloseKeyword,
	"compare":       TokenCompareKeyword,
	"const":         TokenConstKeyword,
	"currency":      TokenCurrencyKeyword,
	"database":      TokenDatabaseKeyword,
	"date":          TokenDateKeyword,
	"decimal":       TokenDecimalKeyword,
	"declare":       TokenDeclareKeyword,
	"defbool":       TokenDefBoolKeyword,
	"defbyte":       TokenDefByteKeyword,
	"defcur":        TokenDefCurKeyword,
	"defdate":       TokenDefDateKeyword,
	"defdbl":        TokenDefDblKeyword,
	"defdec":        TokenDefDecKeyword,
	"defint":        TokenDefIntKeyword,
	"deflng":        TokenDefLngKeyword,
	"defobj":        TokenDefObjKeyword,
	"defsng":        TokenDefSngKeyword,
	"defstr":        TokenDefStrKeyword,
	"defvar":        TokenDefVarKeyword,
	"deletesetting": TokenDeleteSettingKeyword,
	"dim":           TokenDimKeyword,
	"do":            TokenDoKeyword,
	"double":        TokenDoubleKeyword,
	"each":          TokenEachKeyword,
	"elseif":        TokenElseIfKeyword,
	"else":          TokenElseKeyword,
	"empty":         TokenEmptyKeyword,
	"end":           TokenEndKeyword,
	"enum":          TokenEnumKeyword,
	"eqv":           TokenEqvKeyword,
	"erase":         TokenEraseKeyword,
	"error":         TokenErrorKeyword,
	"event":         TokenEventKeyword,
	"exit":          TokenExitKeyword,
	"explicit":      TokenExplicitKeyword,
	"false":         TokenFalseKeyword,
	"filecopy":      TokenFileCopyKeyword,
	"for":           TokenForKeyword,
	"friend":        TokenFriendKeyword,
	"function":      TokenFunctionKeyword,
	"get":           TokenGetKeyword,
	"gosub":         TokenGoSubKeyword,
	"goto":          TokenGotoKeyword,
	"if":            TokenIfKeyword,
	"imp":           TokenImpKeyword,
	"implements":    TokenImplementsKeyword,
	"in":            TokenInKeyword,
	"input":         TokenInputKeyword,
	"integer":       TokenIntegerKeyword,
	"is":            TokenIsKeyword,
	"kill":          TokenKillKeyword,
	"len":           TokenLenKeyword,
	"let":           TokenLetKeyword,
	"lib":           TokenLibKeyword,
	"like":          TokenLikeKeyword,
	"line":          TokenLineKeyword,
	"load":          TokenLoadKeyword,
	"lock":          TokenLockKeyword,
	"long":          TokenLongKeyword,
	"loop":          TokenLoopKeyword,
	"lset":          TokenLSetKeyword,
	"me":            TokenMeKeyword,
	"midb":          TokenMidBKeyword,
	"mid":           TokenMidKeyword,
	"mkdir":         TokenMkDirKeyword,
	"mod":           TokenModKeyword,
	"module":        TokenModuleKeyword,
	"name":          TokenNameKeyword,
	"new":           TokenNewKeyword,
	"next":          TokenNextKeyword,
	"not":           TokenNotKeyword,
	"nothing":       TokenNothingKeyword,
	"null":          TokenNullKeyword,
	"object":        TokenObjectKeyword,
	"off":           TokenOffKeyword,
	"on":            TokenOnKeyword,
	"open":          TokenOpenKeyword,
	"optional":      TokenOptionalKeyword,
	"option":        TokenOptionKeyword,
	"or":            TokenOrKeyword,
	"output":        TokenOutputKeyword,
	"paramarray":    TokenParamArrayKeyword,
	"preserve":      TokenPreserveKeyword,
	"print":         TokenPrintKeyword,
	"private":       TokenPrivateKeyword,
	"property":      TokenPropertyKeyword,
	"public":        TokenPublicKeyword,
	"put":           TokenPutKeyword,
	"raiseevent":    TokenRaiseEventKeyword,
	"random":        TokenRandomKeyword,
	"randomize":     TokenRandomizeKeyword,
	"read":          TokenReadKeyword,
	"redim":         TokenReDimKeyword,
	"reset":         TokenResetKeyword,
	"resume":        TokenResumeKeyword,
	"return":        TokenReturnKeyword,
	"rmdir":         TokenRmDirKeyword,
	"rset":          TokenRSetKeyword,
	"savepicture":   TokenSavePictureKeyword,
	"savesetting":   TokenSaveSettingKeyword,
	"seek":          TokenSeekKeyword,
	"select":        TokenSelectKeyword,
	"sendkeys":      TokenSendKeysKeyword,
	"setattr":       TokenSetAttrKeyword,
	"set":           TokenSetKeyword,
	"single":        TokenSingleKeyword,
	"static":        TokenStaticKeyword,
	"step":          TokenStepKeyword,
	"stop":          TokenStopKeyword,
	"string":        TokenStringKeyword,
	"sub":           TokenSubKeyword,
	"text":          TokenTextKeyword,
	"then":          TokenThenKeyword,
	"time":          TokenTimeKeyword,
	"to":            TokenToKeyword,
	"true":          TokenTrueKeyword,
	"type":          TokenTypeKeyword,
	"typeof":        TokenTypeOfKeyword,
	"unload":        TokenUnloadKeyword,
	"unlock":        TokenUnlockKeyword,
	"until":         TokenUntilKeyword,
	"variant":       TokenVariantKeyword,
	"version":       TokenVersionKeyword,
	"wend":          TokenWendKeyword,
	"while":         TokenWhileKeyword,
	"width":         TokenWidthKeyword,
	"withevents":    TokenWithEventsKeyword,
	"with":          TokenWithKeyword,
	"write":         TokenWriteKeyword,
	"xor":           TokenXorKeyword,
}

// LookupKeyword classifies a lexeme as a reserved word or a plain
// identifier. The lookup is case-insensitive.
func LookupKeyword(lexeme string) TokenKind {
	if kind, ok := keywords[strings.ToLower(lexeme)]; ok {
		return kind
	}
	return TokenIdentifier
}
