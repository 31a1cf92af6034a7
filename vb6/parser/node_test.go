package parser

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNodeText(t *testing.T) {
	input := "x = 1 ' set x\n"
	tree := parseClean(t, input)
	if got := tree.Text(); got != input {
		t.Errorf("tree text = %q, want %q", got, input)
	}
	stmt := tree.Root().SignificantChildren()[0]
	if got := stmt.Text(); got != input {
		t.Errorf("statement text = %q, want %q", got, input)
	}
}

func TestNodeHelpers(t *testing.T) {
	tree := parseClean(t, "If a Then\n    x = 1\n    y = 2\nEnd If\n")
	stmt := tree.Root().SignificantChildren()[0]

	body := stmt.FirstChildOfKind(KindStatementList)
	if body == nil {
		t.Fatal("no StatementList child")
	}
	if stmt.FirstChildOfKind(KindElseClause) != nil {
		t.Error("found an Else clause that is not there")
	}

	tok := stmt.FirstToken()
	if tok == nil || tok.Kind != TokenIfKeyword {
		t.Errorf("first token = %v, want IfKeyword", tok)
	}

	assignments := stmt.DescendantsOfKind(KindAssignmentStatement)
	if len(assignments) != 2 {
		t.Fatalf("got %d assignments, want 2", len(assignments))
	}
	if assignments[0].Span.Start.Offset >= assignments[1].Span.Start.Offset {
		t.Error("descendants out of source order")
	}
}

func TestWalkSkipsChildren(t *testing.T) {
	tree := parseClean(t, "Sub Foo()\n    x = 1\nEnd Sub\n")
	var sawAssignment bool
	tree.Root().Walk(func(n *Node) bool {
		if n.Kind == KindAssignmentStatement {
			sawAssignment = true
		}
		// Do not descend into statement lists.
		return n.Kind != KindStatementList
	})
	if sawAssignment {
		t.Error("walk descended into a skipped subtree")
	}
}

func TestDebugTreeLeafQuoting(t *testing.T) {
	tree := parseClean(t, "x = \"a\"\"b\"\n")
	dump := tree.DebugTree()
	if !strings.Contains(dump, `StringLiteral "\"a\"\"b\""`) {
		t.Errorf("string literal not quoted in dump:\n%s", dump)
	}
	if !strings.Contains(dump, `Newline "\n"`) {
		t.Errorf("newline not escaped in dump:\n%s", dump)
	}
}

func TestTreeMarshalJSON(t *testing.T) {
	tree := parseClean(t, "x = 1")
	data, err := json.Marshal(tree)
	if err != nil {
		t.Fatal(err)
	}
	var decoded struct {
		Root struct {
			Kind     string `json:"kind"`
			Children []struct {
				Kind string `json:"kind"`
				Span struct {
					Start struct {
						Offset int `json:"offset"`
						Line   int `json:"line"`
						Column int `json:"column"`
					} `json:"start"`
				} `json:"span"`
			} `json:"children"`
		} `json:"root"`
		Failures []json.RawMessage `json:"failures"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.Root.Kind != "Root" {
		t.Errorf("root kind = %q", decoded.Root.Kind)
	}
	if len(decoded.Root.Children) != 1 || decoded.Root.Children[0].Kind != "AssignmentStatement" {
		t.Errorf("unexpected children: %+v", decoded.Root.Children)
	}
	if decoded.Failures == nil {
		t.Error("failures should marshal as an empty array, not null")
	}
	if pos := decoded.Root.Children[0].Span.Start; pos.Line != 1 || pos.Column != 1 {
		t.Errorf("span start = %+v", pos)
	}
}

func TestLeafJSONCarriesToken(t *testing.T) {
	tree := parseClean(t, "x = 1")
	stmt := tree.Root().SignificantChildren()[0]
	data, err := json.Marshal(stmt.FirstChildOfKind(KindIdentifierExpression).Children[0])
	if err != nil {
		t.Fatal(err)
	}
	var decoded struct {
		Kind  string `json:"kind"`
		Token *struct {
			Kind    string `json:"kind"`
			Literal string `json:"literal"`
		} `json:"token"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.Kind != "Identifier" || decoded.Token == nil || decoded.Token.Literal != "x" {
		t.Errorf("leaf json = %s", data)
	}
}

func TestFailureString(t *testing.T) {
	f := Failure{
		Span:    Span{Start: Position{Offset: 4, Line: 1, Column: 5}},
		Message: "expected an expression",
	}
	if got := f.String(); got != "1:5: expected an expression" {
		t.Errorf("failure string = %q", got)
	}
}
