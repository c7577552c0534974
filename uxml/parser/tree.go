package parser

import (
	"fmt"
	"strings"
)

// Walk visits n and its descendants in pre-order. Returning false from fn
// skips the children of the visited node.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, child := range n.Children() {
		Walk(child, fn)
	}
}

// CollectErrors gathers the errors of n and its descendants in pre-order.
func CollectErrors(n Node) []*Error {
	var errs []*Error
	Walk(n, func(n Node) bool {
		errs = append(errs, n.Errors()...)
		return true
	})
	return errs
}

// NodesEncasing returns the chain of nodes whose span contains offset,
// inclusive at both ends, innermost first and ending with n.
func NodesEncasing(n Node, offset int) []Node {
	if n == nil || offset < n.Start() || offset > n.End() {
		return nil
	}
	for _, child := range n.Children() {
		if chain := NodesEncasing(child, offset); chain != nil {
			return append(chain, n)
		}
	}
	return []Node{n}
}

// Sprint renders an indented outline of the tree, one node per line.
func Sprint(n Node) string {
	var sb strings.Builder
	sprintNode(&sb, n, 0)
	return sb.String()
}

func sprintNode(sb *strings.Builder, n Node, depth int) {
	if n == nil {
		return
	}
	sb.WriteString(strings.Repeat("  ", depth))
	fmt.Fprintf(sb, "%s [%d,%d)", n.Kind(), n.Start(), n.End())
	if label := nodeLabel(n); label != "" {
		fmt.Fprintf(sb, " %q", label)
	}
	for _, err := range n.Errors() {
		fmt.Fprintf(sb, " !%s", err.Message)
	}
	sb.WriteByte('\n')
	for _, child := range n.Children() {
		sprintNode(sb, child, depth+1)
	}
}

func nodeLabel(n Node) string {
	switch n := n.(type) {
	case *Name:
		return n.Text
	case *Namespace:
		return n.Text
	case *AttributeValue:
		return n.Text
	case *Comment:
		return n.Body
	}
	return ""
}
