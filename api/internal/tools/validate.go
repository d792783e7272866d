package tools

import (
	"encoding/json"
	"fmt"
)

// validateArgs checks an argument map against a descriptor's schema:
// required fields present, declared types honored, enum membership,
// numeric bounds. Validation failures never reach an engine.
func validateArgs(d Descriptor, args map[string]any) error {
	for _, req := range d.InputSchema.Required {
		if v, ok := args[req]; !ok || v == nil {
			return fmt.Errorf("missing required argument: %s", req)
		}
	}

	for name, prop := range d.InputSchema.Properties {
		v, ok := args[name]
		if !ok || v == nil {
			continue
		}
		switch prop.Type {
		case "string":
			s, ok := v.(string)
			if !ok {
				return fmt.Errorf("argument %s must be a string", name)
			}
			if len(prop.Enum) > 0 && !contains(prop.Enum, s) {
				return fmt.Errorf("argument %s must be one of %v", name, prop.Enum)
			}
		case "number":
			n, ok := toNumber(v)
			if !ok {
				return fmt.Errorf("argument %s must be a number", name)
			}
			if prop.Minimum != nil && n < *prop.Minimum {
				return fmt.Errorf("argument %s must be >= %v", name, *prop.Minimum)
			}
			if prop.Maximum != nil && n > *prop.Maximum {
				return fmt.Errorf("argument %s must be <= %v", name, *prop.Maximum)
			}
		case "boolean":
			if _, ok := v.(bool); !ok {
				return fmt.Errorf("argument %s must be a boolean", name)
			}
		}
	}
	return nil
}

func contains(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}

// toNumber accepts the numeric shapes encoding/json produces.
func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// Typed argument accessors with schema defaults. Shapes were validated
// already, so they only need to pick values out.

func stringArg(args map[string]any, name, def string) string {
	if v, ok := args[name].(string); ok && v != "" {
		return v
	}
	return def
}

func numberArg(args map[string]any, name string, def float64) float64 {
	if v, ok := args[name]; ok {
		if n, ok := toNumber(v); ok {
			return n
		}
	}
	return def
}

func boolArg(args map[string]any, name string, def bool) bool {
	if v, ok := args[name].(bool); ok {
		return v
	}
	return def
}
