// Package validator builds declarative, field-level validation out of small
// Rule values.
//
// A Rule couples a deferred Check with the ValidationError reported when the
// check fails. Apply evaluates rules in order and aggregates failures into
// ValidationErrors, which implements error:
//
//	err := validator.Apply(
//	    validator.Required("name", in.Name),
//	    validator.MaxLen("name", in.Name, 100),
//	    validator.Email("email", in.Email),
//	    validator.Min("age", in.Age, 18),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, msg := range verrs.Messages() {
//	        fmt.Println(msg) // "email: must be a valid email address"
//	    }
//	}
//
// Format rules (Email, URL, UUID, Numeric, Filled) share their semantics with
// package check, so a rule and the matching predicate never disagree.
//
// Every ValidationErrors value matches ErrValidationFailed under errors.Is.
package validator
