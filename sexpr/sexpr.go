// Package sexpr reads the s-expression command format the CLI consumes.
package sexpr

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// Node is either an atom (Atom set, List nil) or a list.
type Node struct {
	Atom string
	List []*Node
	Line int
}

func (n *Node) IsAtom() bool { return n.List == nil }

func (n *Node) String() string {
	if n.IsAtom() {
		return n.Atom
	}
	parts := make([]string, len(n.List))
	for i, c := range n.List {
		parts[i] = c.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}

type token struct {
	text string
	line int
}

// Parse reads a sequence of top-level s-expressions. Comments run from
// ';' to end of line.
func Parse(input string) ([]*Node, error) {
	tokens := tokenize(input)
	var nodes []*Node
	pos := 0
	for pos < len(tokens) {
		node, next, err := parseOne(tokens, pos)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
		pos = next
	}
	return nodes, nil
}

func parseOne(tokens []token, pos int) (*Node, int, error) {
	tok := tokens[pos]
	switch tok.text {
	case "(":
		node := &Node{List: []*Node{}, Line: tok.line}
		pos++
		for {
			if pos >= len(tokens) {
				return nil, 0, errors.Errorf("line %d: unclosed list", tok.line)
			}
			if tokens[pos].text == ")" {
				return node, pos + 1, nil
			}
			child, next, err := parseOne(tokens, pos)
			if err != nil {
				return nil, 0, errors.Wrapf(err, "in list starting at line %d", tok.line)
			}
			node.List = append(node.List, child)
			pos = next
		}
	case ")":
		return nil, 0, errors.Errorf("line %d: unexpected ')'", tok.line)
	default:
		return &Node{Atom: tok.text, Line: tok.line}, pos + 1, nil
	}
}

func tokenize(input string) []token {
	var tokens []token
	line := 1
	atom := strings.Builder{}
	atomLine := 0
	flush := func() {
		if atom.Len() > 0 {
			tokens = append(tokens, token{text: atom.String(), line: atomLine})
			atom.Reset()
		}
	}
	inComment := false
	for _, r := range input {
		if r == '\n' {
			line++
		}
		if inComment {
			inComment = r != '\n'
			continue
		}
		switch {
		case r == ';':
			flush()
			inComment = true
		case r == '(' || r == ')':
			flush()
			tokens = append(tokens, token{text: string(r), line: line})
		case unicode.IsSpace(r):
			flush()
		default:
			if atom.Len() == 0 {
				atomLine = line
			}
			atom.WriteRune(r)
		}
	}
	flush()
	return tokens
}
