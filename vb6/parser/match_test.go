package parser

import (
	"strings"
	"testing"
)

func TestMatchLeaf(t *testing.T) {
	tree := parseClean(t, "x = 1")
	stmt := tree.Root().SignificantChildren()[0]
	pattern := Shape(KindAssignmentStatement,
		Shape(KindIdentifierExpression, Leaf(TokenIdentifier, "x")),
		Leaf(TokenEqualityOperator, "="),
		Shape(KindLiteralExpression, Leaf(TokenIntegerLiteral, "1")))
	if err := Match(stmt, pattern); err != nil {
		t.Errorf("match failed: %v", err)
	}
}

func TestMatchSkipsTrivia(t *testing.T) {
	// Extra spaces and a comment change the leaves but not the shape.
	tree := parseClean(t, "x   =   1 ' trailing\n")
	stmt := tree.Root().SignificantChildren()[0]
	pattern := Shape(KindAssignmentStatement,
		Shape(KindIdentifierExpression, Leaf(TokenIdentifier, "x")),
		Leaf(TokenEqualityOperator, ""),
		Shape(KindLiteralExpression, Leaf(TokenIntegerLiteral, "1")))
	if err := Match(stmt, pattern); err != nil {
		t.Errorf("match failed: %v", err)
	}
}

func TestMatchExplicitTrivia(t *testing.T) {
	tree := parseClean(t, "x = 1")
	stmt := tree.Root().SignificantChildren()[0]
	pattern := Shape(KindAssignmentStatement,
		Shape(KindIdentifierExpression, Leaf(TokenIdentifier, "x")),
		Leaf(TokenWhitespace, " "),
		Leaf(TokenEqualityOperator, ""),
		Leaf(TokenWhitespace, " "),
		Shape(KindLiteralExpression, Leaf(TokenIntegerLiteral, "1")))
	if err := Match(stmt, pattern); err != nil {
		t.Errorf("explicit trivia match failed: %v", err)
	}
}

func TestMatchTextOnComposite(t *testing.T) {
	tree := parseClean(t, "x = 1 + 2")
	stmt := tree.Root().SignificantChildren()[0]
	pattern := Shape(KindAssignmentStatement,
		Pattern{Kind: KindIdentifierExpression},
		Leaf(TokenEqualityOperator, ""),
		Pattern{Kind: KindBinaryExpression, Text: "1 + 2"})
	if err := Match(stmt, pattern); err != nil {
		t.Errorf("match failed: %v", err)
	}
}

func TestMatchUnconstrainedChildren(t *testing.T) {
	tree := parseClean(t, "Call Foo(1, 2, 3)")
	stmt := tree.Root().SignificantChildren()[0]
	// Nil children: only the kind is checked.
	if err := Match(stmt, Pattern{Kind: KindCallStatement}); err != nil {
		t.Errorf("match failed: %v", err)
	}
}

func TestMatchDivergenceReportsPath(t *testing.T) {
	tree := parseClean(t, "x = 1")
	stmt := tree.Root().SignificantChildren()[0]

	tests := []struct {
		name    string
		pattern Pattern
		want    string
	}{
		{
			"wrong kind",
			Shape(KindCallStatement),
			"expected CallStatement, found AssignmentStatement",
		},
		{
			"wrong literal",
			Shape(KindAssignmentStatement,
				Shape(KindIdentifierExpression, Leaf(TokenIdentifier, "y")),
				Leaf(TokenEqualityOperator, ""),
				Pattern{Kind: KindLiteralExpression}),
			`expected literal "y", found "x"`,
		},
		{
			"missing child",
			Shape(KindAssignmentStatement,
				Pattern{Kind: KindIdentifierExpression},
				Leaf(TokenEqualityOperator, ""),
				Pattern{Kind: KindLiteralExpression},
				Leaf(TokenNewline, "")),
			"missing child 3",
		},
		{
			"extra child",
			Shape(KindAssignmentStatement,
				Pattern{Kind: KindIdentifierExpression},
				Leaf(TokenEqualityOperator, "")),
			"unexpected extra child LiteralExpression",
		},
		{
			"token for composite",
			Shape(KindAssignmentStatement,
				Leaf(TokenIdentifier, "x"),
				Leaf(TokenEqualityOperator, ""),
				Pattern{Kind: KindLiteralExpression}),
			"expected token Identifier, found IdentifierExpression node",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Match(stmt, tt.pattern)
			if err == nil {
				t.Fatal("expected a mismatch")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestMatchPathNamesAncestors(t *testing.T) {
	tree := parseClean(t, "If a Then\n    x = 1\nEnd If\n")
	stmt := tree.Root().SignificantChildren()[0]
	pattern := Shape(KindIfStatement,
		Leaf(TokenIfKeyword, ""),
		Pattern{Kind: KindIdentifierExpression},
		Leaf(TokenThenKeyword, ""),
		Shape(KindStatementList,
			Shape(KindAssignmentStatement,
				Pattern{Kind: KindIdentifierExpression},
				Leaf(TokenEqualityOperator, ""),
				Shape(KindLiteralExpression, Leaf(TokenIntegerLiteral, "99")))),
		Leaf(TokenEndKeyword, ""),
		Leaf(TokenIfKeyword, ""))
	err := Match(stmt, pattern)
	if err == nil {
		t.Fatal("expected a mismatch")
	}
	msg := err.Error()
	if !strings.Contains(msg, "IfStatement/") || !strings.Contains(msg, "StatementList") {
		t.Errorf("error %q does not show the path to the mismatch", msg)
	}
}
