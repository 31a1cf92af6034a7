package parser

import "fmt"

// Pattern describes the shape a node is expected to have. A pattern
// with Kind KindToken matches a leaf with token kind Tok; any other
// Kind matches a composite. Text, when set, must equal the leaf literal
// or the composite's source text. A nil Children slice leaves the
// children unconstrained; a non-nil slice must account for every
// significant child in order. Trivia children of the node are skipped
// unless the pattern asks for a trivia token explicitly.
type Pattern struct {
	Kind     NodeKind
	Tok      TokenKind
	Text     string
	Children []Pattern
}

// Leaf builds a token pattern.
func Leaf(kind TokenKind, text string) Pattern {
	return Pattern{Kind: KindToken, Tok: kind, Text: text}
}

// Shape builds a composite pattern with the given children.
func Shape(kind NodeKind, children ...Pattern) Pattern {
	if children == nil {
		children = []Pattern{}
	}
	return Pattern{Kind: kind, Children: children}
}

// Match checks node against pattern and reports the first divergence,
// naming the path from the root to the mismatched node.
func Match(node *Node, pattern Pattern) error {
	return matchAt(node, pattern, describe(node))
}

func describe(n *Node) string {
	if n.Token != nil {
		return n.Token.Kind.String()
	}
	return n.Kind.String()
}

func matchAt(node *Node, pat Pattern, path string) error {
	if pat.Kind == KindToken {
		if node.Token == nil {
			return fmt.Errorf("%s: expected token %s, found %s node", path, pat.Tok, node.Kind)
		}
		if node.Token.Kind != pat.Tok {
			return fmt.Errorf("%s: expected token %s, found %s", path, pat.Tok, node.Token.Kind)
		}
		if pat.Text != "" && node.Token.Literal != pat.Text {
			return fmt.Errorf("%s: expected literal %q, found %q", path, pat.Text, node.Token.Literal)
		}
		return nil
	}
	if node.Token != nil {
		return fmt.Errorf("%s: expected %s node, found token %s", path, pat.Kind, node.Token.Kind)
	}
	if node.Kind != pat.Kind {
		return fmt.Errorf("%s: expected %s, found %s", path, pat.Kind, node.Kind)
	}
	if pat.Text != "" && node.Text() != pat.Text {
		return fmt.Errorf("%s: expected text %q, found %q", path, pat.Text, node.Text())
	}
	if pat.Children == nil {
		return nil
	}
	i := 0
	for ci, pc := range pat.Children {
		wantTrivia := pc.Kind == KindToken && pc.Tok.IsTrivia()
		if !wantTrivia {
			for i < len(node.Children) && isTriviaNode(node.Children[i]) {
				i++
			}
		}
		if i >= len(node.Children) {
			return fmt.Errorf("%s: missing child %d, expected %s", path, ci, describePattern(pc))
		}
		child := node.Children[i]
		childPath := fmt.Sprintf("%s/%s[%d]", path, describe(child), ci)
		if err := matchAt(child, pc, childPath); err != nil {
			return err
		}
		i++
	}
	for i < len(node.Children) {
		if !isTriviaNode(node.Children[i]) {
			return fmt.Errorf("%s: unexpected extra child %s", path, describe(node.Children[i]))
		}
		i++
	}
	return nil
}

func isTriviaNode(n *Node) bool {
	return n.Token != nil && n.Token.Kind.IsTrivia()
}

func describePattern(pat Pattern) string {
	if pat.Kind == KindToken {
		if pat.Text != "" {
			return fmt.Sprintf("%s %q", pat.Tok, pat.Text)
		}
		return pat.Tok.String()
	}
	return pat.Kind.String()
}
