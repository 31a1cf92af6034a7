package parser

import "encoding/json"

type jsonPosition struct {
	Offset int `json:"offset"`
	Line   int `json:"line"`
	Column int `json:"column"`
}

type jsonSpan struct {
	Start jsonPosition `json:"start"`
	End   jsonPosition `json:"end"`
}

type jsonToken struct {
	Kind    string `json:"kind"`
	Literal string `json:"literal"`
}

type jsonNode struct {
	Kind     string      `json:"kind"`
	Span     jsonSpan    `json:"span"`
	Token    *jsonToken  `json:"token,omitempty"`
	Children []*jsonNode `json:"children,omitempty"`
}

type jsonFailure struct {
	Span    jsonSpan `json:"span"`
	Message string   `json:"message"`
}

func toJSONPosition(p Position) jsonPosition {
	return jsonPosition{Offset: p.Offset, Line: p.Line, Column: p.Column}
}

func toJSONSpan(s Span) jsonSpan {
	return jsonSpan{Start: toJSONPosition(s.Start), End: toJSONPosition(s.End)}
}

func toJSONNode(n *Node) *jsonNode {
	out := &jsonNode{Span: toJSONSpan(n.Span)}
	if n.Token != nil {
		out.Kind = n.Token.Kind.String()
		out.Token = &jsonToken{Kind: n.Token.Kind.String(), Literal: n.Token.Literal}
		return out
	}
	out.Kind = n.Kind.String()
	for _, child := range n.Children {
		out.Children = append(out.Children, toJSONNode(child))
	}
	return out
}

func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(toJSONNode(n))
}

func (f Failure) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonFailure{Span: toJSONSpan(f.Span), Message: f.Message})
}

func (t *Tree) MarshalJSON() ([]byte, error) {
	out := struct {
		Root     *jsonNode     `json:"root"`
		Failures []jsonFailure `json:"failures"`
	}{Root: toJSONNode(t.root), Failures: []jsonFailure{}}
	for _, f := range t.failures {
		out.Failures = append(out.Failures, jsonFailure{Span: toJSONSpan(f.Span), Message: f.Message})
	}
	return json.Marshal(out)
}
