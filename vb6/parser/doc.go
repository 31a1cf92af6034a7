// Package parser provides a lossless, error-tolerant parser for VB6
// source code.
//
// # Overview
//
// The parser produces a concrete syntax tree (CST) that keeps every
// byte of the input: whitespace, line continuations, and comments are
// first-class tokens in the tree. Concatenating the leaves of any node
// in order reproduces the covered source exactly, which makes the tree
// safe for rewriting tools and formatters.
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│   Source    │────▶│   Lexer     │────▶│   Parser    │
//	│  (string)   │     │  (tokens)   │     │   (CST)     │
//	└─────────────┘     └─────────────┘     └─────────────┘
//	                           │                   │
//	                           ▼                   ▼
//	                    ┌─────────────┐     ┌─────────────┐
//	                    │  Position   │     │   Unknown   │
//	                    │  Tracking   │     │  Recovery   │
//	                    └─────────────┘     └─────────────┘
//
// # Entry Points
//
//	// ParseText parses a whole source file.
//	func ParseText(fileName, source string) (*Tree, []Failure)
//
//	// ParseExpressionText parses a standalone expression fragment.
//	func ParseExpressionText(fileName, source string) (*Node, []Failure)
//
// # Keywords as Identifiers
//
// VB6 reserves well over a hundred words, yet lets most of them double
// as procedure, member, and variable names: `Sub Text()` is legal. The
// lexer therefore classifies words with a single keyword table, and the
// parser reinterprets keywords as identifiers wherever the grammar
// position calls for a name.
//
// The type suffixes ($, %, &, !, #, @) follow the same split. `Environ$`
// and `count%` are not reserved words, so the lexer fuses the suffix
// into one Identifier token.
// `Mid$`, `Date$`, and the other reserved built-ins lex as a keyword
// followed by a DollarSign, and the parser fuses the pair into one
// Identifier leaf. `Time$` stays two leaves: TimeKeyword, DollarSign.
//
// # Error Recovery
//
// The parser never fails and never panics. Problems are collected as
// Failure values, each with a span and a message, and the offending
// tokens are swept into Unknown nodes so the tree still covers the
// whole input. Recovery resynchronizes at line ends, colons, and
// statement keywords, consuming at least one token per failure so a
// parse is always linear in the input size.
//
// # Debug Output
//
// Tree.DebugTree renders the structure with two-space indentation,
// composites by kind and leaves as quoted literals:
//
//	AssignmentStatement
//	  IdentifierExpression
//	    Identifier "args"
//	  Whitespace " "
//	  EqualityOperator "="
//	  Whitespace " "
//	  CallExpression
//	    Identifier "Command"
//	    LeftParenthesis "("
//	    ArgumentList
//	    RightParenthesis ")"
//	  Newline "\n"
//
// # Structural Matching
//
// Match checks a node against a Pattern, skipping trivia unless the
// pattern names a trivia token, and reports the first divergence with
// its tree path. Tests use it to pin down tree shapes without quoting
// whitespace.
//
// # Thread Safety
//
// Trees and nodes are immutable after parsing and safe to share. A
// Parser instance itself is single-use.
package parser
