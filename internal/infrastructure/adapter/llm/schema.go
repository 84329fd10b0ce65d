package llm

import "fmt"

// unsupportedSchemaKeys are JSON schema keywords Gemini rejects
var unsupportedSchemaKeys = map[string]struct{}{
	"$schema":              {},
	"$id":                  {},
	"$ref":                 {},
	"$defs":                {},
	"definitions":          {},
	"additionalProperties": {},
	"default":              {},
	"examples":             {},
	"title":                {},
	"const":                {},
	"patternProperties":    {},
}

// CleanSchema returns a copy of a JSON schema reduced to the subset Gemini accepts.
// Combinators collapse to their first non-null branch and type unions to their first non-null type.
func CleanSchema(schema map[string]any) map[string]any {
	if schema == nil {
		return nil
	}
	out := make(map[string]any, len(schema))

	for _, key := range []string{"oneOf", "anyOf", "allOf"} {
		branches, ok := schema[key].([]any)
		if !ok {
			continue
		}
		if branch := firstNonNullBranch(branches); branch != nil {
			for k, v := range CleanSchema(branch) {
				out[k] = v
			}
		}
	}

	for k, v := range schema {
		if _, skip := unsupportedSchemaKeys[k]; skip {
			continue
		}
		switch k {
		case "oneOf", "anyOf", "allOf":
			continue
		case "type":
			if t := schemaType(v); t != "" {
				out["type"] = t
			}
		case "properties":
			props, ok := v.(map[string]any)
			if !ok {
				continue
			}
			cleaned := make(map[string]any, len(props))
			for name, p := range props {
				if pm, ok := p.(map[string]any); ok {
					cleaned[name] = CleanSchema(pm)
				}
			}
			out["properties"] = cleaned
		case "items":
			if im, ok := v.(map[string]any); ok {
				out["items"] = CleanSchema(im)
			}
		case "enum":
			if values, ok := v.([]any); ok {
				enum := make([]any, 0, len(values))
				for _, e := range values {
					if e == nil {
						continue
					}
					enum = append(enum, fmt.Sprint(e))
				}
				out["enum"] = enum
			}
		default:
			out[k] = v
		}
	}

	if _, ok := out["enum"]; ok {
		out["type"] = "string"
	}
	fixRequired(out)
	if out["type"] == "array" {
		if _, ok := out["items"]; !ok {
			out["items"] = map[string]any{"type": "string"}
		}
	}
	return out
}

// fixRequired keeps only required names that exist as properties
func fixRequired(schema map[string]any) {
	required, ok := schema["required"]
	if !ok {
		return
	}
	props, _ := schema["properties"].(map[string]any)
	if len(props) == 0 {
		delete(schema, "required")
		return
	}
	var names []any
	switch r := required.(type) {
	case []any:
		names = r
	case []string:
		for _, s := range r {
			names = append(names, s)
		}
	}
	kept := make([]any, 0, len(names))
	for _, n := range names {
		s, ok := n.(string)
		if !ok {
			continue
		}
		if _, exists := props[s]; exists {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		delete(schema, "required")
		return
	}
	schema["required"] = kept
}

func schemaType(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []any:
		for _, e := range t {
			if s, ok := e.(string); ok && s != "null" {
				return s
			}
		}
	case []string:
		for _, s := range t {
			if s != "null" {
				return s
			}
		}
	}
	return ""
}

func firstNonNullBranch(branches []any) map[string]any {
	for _, b := range branches {
		m, ok := b.(map[string]any)
		if !ok {
			continue
		}
		if m["type"] == "null" {
			continue
		}
		return m
	}
	return nil
}
