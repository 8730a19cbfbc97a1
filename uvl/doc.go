// Package uvl serializes a feature model in a UVL-like text format:
//
//	features
//		"root"
//			mandatory
//				"A"
//			alternative
//				"B"
//				"C"
//	constraints
//		"B" => !"C"
//
// Indentation is one tab per level; a feature sits one level below its
// group keyword. Abstract features carry a trailing {abstract}. The
// constraints section is omitted when there are none. Implications render
// as `"A" => "B"`, exclusions as `"A" => !"B"`.
//
// The output depends only on the model, so equal models encode to equal
// bytes.
package uvl
