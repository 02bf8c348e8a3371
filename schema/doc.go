// Package schema implements type descriptors for the formula language.
//
// A [Descriptor] describes a set of values: a simple kind (int, string,
// ...), any value, instances of a nominal class, a union of
// descriptors, lists and maps with typed contents, and functions with
// typed signatures. Descriptors are parsed from annotation text with
// [Parse]:
//
//	int|null
//	[string]
//	{string -> [class unit]}
//	def(int, decimal=1.5) -> bool
//
// and used in three ways: [Descriptor.Match] tests a concrete value,
// [IsCompatible] tests whether values of one descriptor may be used where
// another is expected, and [IsEqual] tests structural equality.
//
// Class names are resolved at parse time against the [ClassRegistry] of
// a [Context]. The registry is populated, possibly from class files,
// then frozen.
package schema
