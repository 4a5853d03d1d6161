package schema

// Built-in schemas.
var (
	Email      = reg.builtin("email")
	Phone      = reg.builtin("phone")
	URL        = reg.builtin("url")
	Date       = reg.builtin("date")
	User       = reg.builtin("user")
	Pagination = reg.builtin("pagination")
	Config     = reg.builtin("config")
)

// APIResponse returns the envelope schema
// {success, data?, message?, errors?} with data validated by data.
func APIResponse(data *Schema) *Schema {
	return reg.wrap("api-response", data, map[string]any{
		"$schema":  "https://json-schema.org/draft/2020-12/schema",
		"type":     "object",
		"required": []string{"success"},
		"properties": map[string]any{
			"success": map[string]any{"type": "boolean"},
			"data":    map[string]any{"$ref": data.url},
			"message": map[string]any{"type": "string"},
			"errors": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
	})
}

// PaginatedResponse returns the schema {data: [item...], pagination}.
func PaginatedResponse(item *Schema) *Schema {
	return reg.wrap("paginated-response", item, map[string]any{
		"$schema":  "https://json-schema.org/draft/2020-12/schema",
		"type":     "object",
		"required": []string{"data", "pagination"},
		"properties": map[string]any{
			"data": map[string]any{
				"type":  "array",
				"items": map[string]any{"$ref": item.url},
			},
			"pagination": map[string]any{"$ref": Pagination.url},
		},
	})
}
