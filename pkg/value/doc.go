// Package value models a value of unconstrained shape as a closed tagged union.
//
// Helpers elsewhere in the module (predicates, emptiness policy, formatters)
// accept a Value and switch on its Kind instead of reflecting over arbitrary
// interfaces. The union is closed: every Value is exactly one of
//
//   - Undefined – the absent marker (also the zero Value)
//   - Null      – the explicit null marker
//   - Bool, Int, Float, String
//   - Seq       – ordered, index-addressable sequence of Values
//   - Map       – string-keyed mapping of Values
//   - Func      – a callable reference
//   - Date      – a calendar instant, possibly the invalid-date sentinel
//   - Other     – anything else
//
// # Usage
//
//	v := value.Of(map[string]any{"tags": []string{"a", "b"}})
//	v.Kind()            // value.KindMap
//	v.Get("tags").Len() // 2
//
//	value.Undefined().Kind() == value.KindUndefined
//	value.InvalidDate().Kind() == value.KindDate
//
// Of is the only place where reflection is used; it converts native Go values
// at the boundary. Values are immutable and safe for concurrent use.
package value
