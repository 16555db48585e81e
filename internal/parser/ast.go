package parser

import (
	"fmt"
	"strings"
)

// Span is a half-open byte range [Start, End) over the parsed input.
type Span struct {
	Start int
	End   int
}

func (s Span) Contains(o Span) bool {
	return s.Start <= o.Start && o.End <= s.End
}

// Node is one successful rule application. Text is a substring of the
// input, so the input must outlive the node.
type Node struct {
	Rule     Rule
	Text     string
	Span     Span
	Children []*Node
}

// Pairs is the success value of Parse.
type Pairs []*Node

func newNode(rule Rule, input string, start, end int, children ...*Node) *Node {
	return &Node{
		Rule:     rule,
		Text:     input[start:end],
		Span:     Span{Start: start, End: end},
		Children: children,
	}
}

// Child returns the first direct child produced by rule, or nil.
func (n *Node) Child(rule Rule) *Node {
	for _, c := range n.Children {
		if c.Rule == rule {
			return c
		}
	}
	return nil
}

// Walk calls fn for n and every descendant in depth-first order. Returning
// false from fn skips that node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

func (n *Node) String() string {
	var b strings.Builder
	n.format(&b, 0)
	return b.String()
}

func (n *Node) format(b *strings.Builder, depth int) {
	fmt.Fprintf(b, "%s%s %d..%d", strings.Repeat("  ", depth), n.Rule, n.Span.Start, n.Span.End)
	if len(n.Children) == 0 {
		fmt.Fprintf(b, " %q", n.Text)
	}
	b.WriteByte('\n')
	for _, c := range n.Children {
		c.format(b, depth+1)
	}
}

// Find returns every node produced by rule, searching the whole forest.
func (p Pairs) Find(rule Rule) []*Node {
	var found []*Node
	for _, n := range p {
		n.Walk(func(c *Node) bool {
			if c.Rule == rule {
				found = append(found, c)
			}
			return true
		})
	}
	return found
}
