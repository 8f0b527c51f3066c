package parser

import (
	"encoding/json"
	"minilisp/internal/object"
)

// WalkAST recursively serializes a parsed form into a map structure for
// tool-chain consumption.
func WalkAST(e object.Expr) interface{} {
	switch n := e.(type) {
	case object.Number:
		// NaN and infinities have no JSON number form
		return map[string]interface{}{
			"type":  "Number",
			"value": n.Inspect(),
		}
	case object.Bool:
		return map[string]interface{}{
			"type":  "Bool",
			"value": n.Value,
		}
	case object.Symbol:
		return map[string]interface{}{
			"type": "Symbol",
			"name": n.Name,
		}
	case object.List:
		elements := make([]interface{}, len(n.Elements))
		for i, el := range n.Elements {
			elements[i] = WalkAST(el)
		}
		return map[string]interface{}{
			"type":     "List",
			"elements": elements,
		}
	case nil:
		return nil
	default:
		// values that cannot come out of the parser
		return map[string]interface{}{
			"type":  string(n.Type()),
			"value": n.Inspect(),
		}
	}
}

// RenderASTAsJSON renders a program (its top-level forms) as indented JSON.
func RenderASTAsJSON(program []object.Expr) (string, error) {
	forms := make([]interface{}, len(program))
	for i, e := range program {
		forms[i] = WalkAST(e)
	}
	b, err := json.MarshalIndent(map[string]interface{}{
		"type":  "Program",
		"forms": forms,
	}, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
