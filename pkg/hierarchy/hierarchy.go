// Package hierarchy provides the rooted-tree input boundary for networkD3.
//
// Tree-layout visualizations consume a recursive node shape: every node has a
// name and an ordered (possibly empty) sequence of children. The normalizer
// checks only that the top-level value is hierarchical; malformed deeper
// nodes are passed through and surface when the rendering runtime walks the
// payload, matching the behavior callers already rely on.
package hierarchy

import (
	"fmt"

	"github.com/csese/networkD3/pkg/errors"
)

// Node is a single node in a rooted tree. A root with no children is a valid
// degenerate tree. Size is an optional leaf weight used by some layouts.
type Node struct {
	Name     string   `json:"name" yaml:"name"`
	Children []Node   `json:"children,omitempty" yaml:"children,omitempty"`
	Size     *float64 `json:"size,omitempty" yaml:"size,omitempty"`
}

// Normalize accepts a single root value and verifies it is of hierarchical
// shape. Accepted inputs are *Node, Node, and a generic map decoded from
// JSON or YAML. Tables, sequences, scalars, and nil fail immediately with
// INVALID_INPUT; nothing partial is returned.
//
// Normalize does not recursively validate children. Child entries that are
// not node-shaped are carried as name-only leaves rather than repaired or
// rejected here.
func Normalize(v any) (*Node, error) {
	switch root := v.(type) {
	case *Node:
		if root == nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "root must be hierarchical, got nil")
		}
		return root, nil
	case Node:
		return &root, nil
	case map[string]any:
		n := convertNode(root)
		return &n, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"root must be hierarchical, got %T", v)
	}
}

// convertNode maps a generic decoded object onto the Node shape.
// Only the top level was validated; children convert best-effort.
func convertNode(m map[string]any) Node {
	n := Node{}
	if name, ok := m["name"]; ok {
		n.Name = fmt.Sprint(name)
	}
	if size, ok := m["size"].(float64); ok {
		n.Size = &size
	}

	children, ok := m["children"].([]any)
	if !ok {
		return n
	}
	for _, c := range children {
		switch child := c.(type) {
		case map[string]any:
			n.Children = append(n.Children, convertNode(child))
		default:
			// Not node-shaped; carry it as a leaf and let the renderer complain.
			n.Children = append(n.Children, Node{Name: fmt.Sprint(child)})
		}
	}
	return n
}

// Count returns the total number of nodes in the tree rooted at n,
// including n itself.
func Count(n *Node) int {
	total := 1
	for i := range n.Children {
		total += Count(&n.Children[i])
	}
	return total
}

// Depth returns the height of the tree rooted at n. A childless root has
// depth 1.
func Depth(n *Node) int {
	deepest := 0
	for i := range n.Children {
		if d := Depth(&n.Children[i]); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}
