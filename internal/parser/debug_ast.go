package parser

import (
	"encoding/json"
	"fmt"
	"os"

	"moss/internal/object"
)

// WalkAST recursively traverses a parsed expression tree and serializes it
// into a map structure for JSON output.
func WalkAST(obj object.Object) interface{} {
	switch n := obj.(type) {
	case *object.List:
		elements := make([]interface{}, len(n.Elements))
		for i, el := range n.Elements {
			elements[i] = WalkAST(el)
		}
		return map[string]interface{}{
			"0.type":     "List",
			"1.elements": elements,
		}

	case *object.Symbol:
		return map[string]interface{}{
			"0.type": "Symbol",
			"1.name": n.Name,
		}

	case *object.Integer:
		return map[string]interface{}{
			"0.type":  "Integer",
			"1.value": n.Value,
		}

	case *object.Boolean:
		return map[string]interface{}{
			"0.type":  "Boolean",
			"1.value": n.Value,
		}

	case *object.Nil:
		return map[string]interface{}{
			"0.type": "Nil",
		}

	default:
		return map[string]interface{}{
			"0.type": "Unknown: " + n.Inspect(),
		}
	}
}

// WriteASTToJSON takes a root expression and writes it to a JSON file.
func WriteASTToJSON(obj object.Object, filename string) error {
	astMap := WalkAST(obj)

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create JSON file: %v", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(astMap); err != nil {
		return fmt.Errorf("failed to write JSON: %v", err)
	}
	return nil
}
