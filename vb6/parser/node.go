package parser

import (
	"strconv"
	"strings"
)

type NodeKind int

const (
	KindRoot NodeKind = iota
	KindToken
	KindUnknown

	// Statements
	KindAssignmentStatement
	KindAttributeStatement
	KindCallStatement
	KindCloseStatement
	KindConstStatement
	KindDeclareStatement
	KindDimStatement
	KindDoStatement
	KindEndStatement
	KindEnumStatement
	KindEraseStatement
	KindEventStatement
	KindExitStatement
	KindForEachStatement
	KindForStatement
	KindFunctionStatement
	KindGoSubStatement
	KindGotoStatement
	KindIfStatement
	KindImplementsStatement
	KindLabelStatement
	KindLineInputStatement
	KindLineStatement
	KindMkDirStatement
	KindNameStatement
	KindOnErrorStatement
	KindOpenStatement
	KindOptionStatement
	KindPrintStatement
	KindPropertyStatement
	KindRaiseEventStatement
	KindReDimStatement
	KindResumeStatement
	KindReturnStatement
	KindSelectStatement
	KindSetStatement
	KindStopStatement
	KindSubStatement
	KindTypeStatement
	KindWhileStatement
	KindWithStatement

	// Clauses
	KindCaseClause
	KindElseClause
	KindElseIfClause

	// Expressions
	KindAddressOfExpression
	KindBinaryExpression
	KindCallExpression
	KindIdentifierExpression
	KindLiteralExpression
	KindMemberAccessExpression
	KindNewExpression
	KindParenthesizedExpression
	KindTypeOfExpression
	KindUnaryExpression

	// Structure
	KindArgument
	KindArgumentList
	KindArrayBounds
	KindAsClause
	KindParameter
	KindParameterList
	KindStatementList
	KindVariableDeclarator
)

var nodeKindNames = map[NodeKind]string{
	KindRoot:    "Root",
	KindToken:   "Token",
	KindUnknown: "Unknown",

	KindAssignmentStatement: "AssignmentStatement",
	KindAttributeStatement:  "AttributeStatement",
	KindCallStatement:       "CallStatement",
	KindCloseStatement:      "CloseStatement",
	KindConstStatement:      "ConstStatement",
	KindDeclareStatement:    "DeclareStatement",
	KindDimStatement:        "DimStatement",
	KindDoStatement:         "DoStatement",
	KindEndStatement:        "EndStatement",
	KindEnumStatement:       "EnumStatement",
	KindEraseStatement:      "EraseStatement",
	KindEventStatement:      "EventStatement",
	KindExitStatement:       "ExitStatement",
	KindForEachStatement:    "ForEachStatement",
	KindForStatement:        "ForStatement",
	KindFunctionStatement:   "FunctionStatement",
	KindGoSubStatement:      "GoSubStatement",
	KindGotoStatement:       "GotoStatement",
	KindIfStatement:         "IfStatement",
	KindImplementsStatement: "ImplementsStatement",
	KindLabelStatement:      "LabelStatement",
	KindLineInputStatement:  "LineInputStatement",
	KindLineStatement:       "LineStatement",
	KindMkDirStatement:      "MkDirStatement",
	KindNameStatement:       "NameStatement",
	KindOnErrorStatement:    "OnErrorStatement",
	KindOpenStatement:       "OpenStatement",
	KindOptionStatement:     "OptionStatement",
	KindPrintStatement:      "PrintStatement",
	KindPropertyStatement:   "PropertyStatement",
	KindRaiseEventStatement: "RaiseEventStatement",
	KindReDimStatement:      "ReDimStatement",
	KindResumeStatement:     "ResumeStatement",
	KindReturnStatement:     "ReturnStatement",
	KindSelectStatement:     "SelectStatement",
	KindSetStatement:        "SetStatement",
	KindStopStatement:       "StopStatement",
	KindSubStatement:        "SubStatement",
	KindTypeStatement:       "TypeStatement",
	KindWhileStatement:      "WhileStatement",
	KindWithStatement:       "WithStatement",

	KindCaseClause:   "CaseClause",
	KindElseClause:   "ElseClause",
	KindElseIfClause: "ElseIfClause",

	KindAddressOfExpression:     "AddressOfExpression",
	KindBinaryExpression:        "BinaryExpression",
	KindCallExpression:          "CallExpression",
	KindIdentifierExpression:    "IdentifierExpression",
	KindLiteralExpression:       "LiteralExpression",
	KindMemberAccessExpression:  "MemberAccessExpression",
	KindNewExpression:           "NewExpression",
	KindParenthesizedExpression: "ParenthesizedExpression",
	KindTypeOfExpression:        "TypeOfExpression",
	KindUnaryExpression:         "UnaryExpression",

	KindArgument:           "Argument",
	KindArgumentList:       "ArgumentList",
	KindArrayBounds:        "ArrayBounds",
	KindAsClause:           "AsClause",
	KindParameter:          "Parameter",
	KindParameterList:      "ParameterList",
	KindStatementList:      "StatementList",
	KindVariableDeclarator: "VariableDeclarator",
}

func (k NodeKind) String() string {
	if name, ok := nodeKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Node is a concrete syntax tree node. Leaves have Kind == KindToken and
// carry the token; all other nodes own an ordered child list that covers
// the node's span without gaps.
type Node struct {
	Kind     NodeKind
	Span     Span
	Children []*Node
	Token    *Token
}

func newNode(kind NodeKind) *Node {
	return &Node{Kind: kind}
}

func leaf(tok Token) *Node {
	t := tok
	return &Node{Kind: KindToken, Span: tok.Span, Token: &t}
}

func (n *Node) IsLeaf() bool { return n.Token != nil }

// AddChild appends child and widens the parent's span to cover it.
func (n *Node) AddChild(child *Node) {
	if child == nil {
		return
	}
	if len(n.Children) == 0 && n.Token == nil {
		n.Span = child.Span
	} else if child.Span.End.Offset > n.Span.End.Offset {
		n.Span.End = child.Span.End
	}
	n.Children = append(n.Children, child)
}

// Text reproduces the exact source text covered by this node.
func (n *Node) Text() string {
	var b strings.Builder
	n.writeText(&b)
	return b.String()
}

func (n *Node) writeText(b *strings.Builder) {
	if n.Token != nil {
		b.WriteString(n.Token.Literal)
		return
	}
	for _, child := range n.Children {
		child.writeText(b)
	}
}

// FirstChildOfKind returns the first direct child with the given kind,
// or nil.
func (n *Node) FirstChildOfKind(kind NodeKind) *Node {
	for _, child := range n.Children {
		if child.Kind == kind {
			return child
		}
	}
	return nil
}

// FirstToken returns the first leaf token under this node, or nil for an
// empty composite.
func (n *Node) FirstToken() *Token {
	if n.Token != nil {
		return n.Token
	}
	for _, child := range n.Children {
		if tok := child.FirstToken(); tok != nil {
			return tok
		}
	}
	return nil
}

// SignificantChildren returns the direct children that are not trivia.
func (n *Node) SignificantChildren() []*Node {
	var out []*Node
	for _, child := range n.Children {
		if child.Token != nil && child.Token.Kind.IsTrivia() {
			continue
		}
		out = append(out, child)
	}
	return out
}

// DescendantsOfKind returns every node of the given kind under n, in
// source order, including n itself.
func (n *Node) DescendantsOfKind(kind NodeKind) []*Node {
	var out []*Node
	n.Walk(func(m *Node) bool {
		if m.Kind == kind {
			out = append(out, m)
		}
		return true
	})
	return out
}

// Walk calls visit for this node and every descendant in source order.
// Returning false skips the node's children.
func (n *Node) Walk(visit func(*Node) bool) {
	if !visit(n) {
		return
	}
	for _, child := range n.Children {
		child.Walk(visit)
	}
}

func (n *Node) String() string {
	var b strings.Builder
	n.stringIndent(&b, 0)
	return b.String()
}

func (n *Node) stringIndent(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
	if n.Token != nil {
		b.WriteString(n.Token.Kind.String())
		b.WriteByte(' ')
		b.WriteString(strconv.Quote(n.Token.Literal))
		b.WriteByte('\n')
		return
	}
	b.WriteString(n.Kind.String())
	b.WriteByte('\n')
	for _, child := range n.Children {
		child.stringIndent(b, depth+1)
	}
}

// Failure records one place the parser could not make sense of the
// input. The surrounding tree is still produced.
type Failure struct {
	Span    Span
	Message string
}

func (f Failure) String() string {
	return f.Span.Start.String() + ": " + f.Message
}

// Tree is the result of parsing one source file. The tree is lossless:
// Text() returns the original input exactly.
type Tree struct {
	root     *Node
	failures []Failure
}

func (t *Tree) Root() *Node { return t.root }

func (t *Tree) Failures() []Failure { return t.failures }

func (t *Tree) Text() string { return t.root.Text() }

// DebugTree renders the tree with two-space indentation, one node per
// line, leaves as quoted literals.
func (t *Tree) DebugTree() string {
	return t.root.String()
}
