package catalog

// InputSchema renders the operation's parameter spec as a JSON Schema object
// suitable for a tools/list response.
func (op *Operation) InputSchema() map[string]any {
	props := make(map[string]any)
	var required []string

	for _, p := range op.Params() {
		prop := map[string]any{
			"type": p.Type,
		}
		if p.Description != "" {
			prop["description"] = p.Description
		}
		if len(p.Enum) > 0 {
			prop["enum"] = p.Enum
		}
		if p.Items != nil {
			prop["items"] = p.Items
		}
		props[p.Name] = prop

		if p.Required {
			required = append(required, p.Name)
		}
	}

	schema := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}
