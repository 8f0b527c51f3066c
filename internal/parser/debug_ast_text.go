package parser

import (
	"fmt"
	"minilisp/internal/object"
	"strings"
)

// RenderASTAsText produces an indented tree, one node per line, which makes
// the paren nesting of a form easy to eyeball.
func RenderASTAsText(e object.Expr, indent int) string {
	sp := strings.Repeat("  ", indent)

	switch n := e.(type) {
	case object.List:
		if len(n.Elements) == 0 {
			return sp + "List ()"
		}
		var sb strings.Builder
		fmt.Fprintf(&sb, "%sList[%d]", sp, len(n.Elements))
		for _, el := range n.Elements {
			sb.WriteString("\n")
			sb.WriteString(RenderASTAsText(el, indent+1))
		}
		return sb.String()
	case nil:
		return sp + "nil"
	default:
		return fmt.Sprintf("%s%s %s", sp, titleCase(string(n.Type())), n.Inspect())
	}
}

func RenderProgramAsText(program []object.Expr) string {
	parts := make([]string, len(program))
	for i, e := range program {
		parts[i] = RenderASTAsText(e, 0)
	}
	return strings.Join(parts, "\n")
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return s[:1] + strings.ToLower(s[1:])
}
