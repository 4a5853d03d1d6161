// Package schema validates structured data against JSON Schemas and decodes
// it into typed Go values.
//
// Built-in schemas cover common shapes: Email, Phone, URL, Date, User,
// Pagination and Config. APIResponse and PaginatedResponse wrap any schema in
// a response envelope. Custom documents are registered with Compile and every
// registered schema is reachable by name through Lookup.
//
//	page, err := schema.Validate[schema.Page](schema.Pagination, map[string]any{
//	    "total":    42,
//	    "lastPage": 3,
//	})
//	// page.Page == 1, page.PerPage == 15: absent properties take the
//	// schema's "default".
//
//	res := schema.SafeValidate[schema.UserRecord](schema.User, input)
//	if !res.Success {
//	    fmt.Println(strings.Join(res.Errors, "\n")) // "email: ..."
//	}
//
// Decode reads JSON, YAML or TOML documents into plain values ready for
// validation.
//
// Validation failures are validator.ValidationErrors and therefore match
// validator.ErrValidationFailed under errors.Is. Schemas are compiled with
// github.com/santhosh-tekuri/jsonschema/v5 with format assertions enabled.
package schema
