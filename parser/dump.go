/*
File    : cortado/parser/dump.go
Package : parser

Dump renders an AST as an indented, deterministic text tree, used by
cmd/cortado's --dump-ast flag and by the package's snapshot tests
(grounded on CWBudde-go-dws's fixture_test.go use of go-snaps against
its own interpreter's debug dump).
*/
package parser

import (
	"fmt"
	"strings"

	"github.com/bencinn/cortado/ast"
)

// Dump renders node as a human-readable indented tree rooted at node.
func Dump(node ast.Node) string {
	var b strings.Builder
	dumpNode(&b, node, 0)
	return b.String()
}

func indent(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
}

func dumpNode(b *strings.Builder, node ast.Node, depth int) {
	indent(b, depth)
	if node == nil {
		b.WriteString("<nil>\n")
		return
	}
	switch n := node.(type) {
	case *ast.Int:
		fmt.Fprintf(b, "Int(%s)\n", n.Text)
	case *ast.Str:
		fmt.Fprintf(b, "Str(%q)\n", n.Text)
	case *ast.Bool:
		fmt.Fprintf(b, "Bool(%v)\n", n.Value)
	case *ast.Identifier:
		fmt.Fprintf(b, "Identifier(%s)\n", n.Name)
	case *ast.Array:
		fmt.Fprintf(b, "Array[\n")
		for _, e := range n.Elements {
			dumpNode(b, e, depth+1)
		}
		indent(b, depth)
		b.WriteString("]\n")
	case *ast.BinaryOp:
		fmt.Fprintf(b, "BinaryOp(%s)\n", n.Op)
		dumpNode(b, n.Left, depth+1)
		if n.Right != nil {
			dumpNode(b, n.Right, depth+1)
		}
	case *ast.Set:
		b.WriteString("Set\n")
		dumpNode(b, n.Target, depth+1)
		dumpNode(b, n.Expr, depth+1)
	case *ast.ArrayAccess:
		b.WriteString("ArrayAccess\n")
		dumpNode(b, n.Expr, depth+1)
		dumpNode(b, n.Whereto, depth+1)
	case *ast.Slice:
		fmt.Fprintf(b, "Slice\n")
		dumpNode(b, n.From, depth+1)
		dumpNode(b, n.To, depth+1)
	case *ast.If:
		b.WriteString("If\n")
		dumpNode(b, n.Condition, depth+1)
		dumpNode(b, n.Block, depth+1)
	case *ast.ForLoop:
		fmt.Fprintf(b, "ForLoop(%s)\n", n.Element.Name)
		dumpNode(b, n.Elements, depth+1)
		dumpNode(b, n.Block, depth+1)
	case *ast.FunctionDefinition:
		fmt.Fprintf(b, "FunctionDefinition(%s)\n", n.Name)
		for _, p := range n.Params {
			indent(b, depth+1)
			fmt.Fprintf(b, "Param(%s: %s)\n", p.Name, p.TypeTag)
		}
		dumpNode(b, n.Body, depth+1)
	case *ast.FunctionCall:
		fmt.Fprintf(b, "FunctionCall(%s)\n", n.Name)
		for _, a := range n.Args {
			dumpNode(b, a, depth+1)
		}
	case *ast.Block:
		b.WriteString("Block\n")
		for _, s := range n.Statements {
			dumpNode(b, s, depth+1)
		}
	default:
		fmt.Fprintf(b, "Unknown(%T)\n", n)
	}
}
