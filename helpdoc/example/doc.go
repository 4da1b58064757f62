// Package example models CLI usage examples and the two operations the merge
// relies on: deriving a parameter signature from an example invocation, and
// rendering an example as an entry of a YAML help block.
//
// Two examples with the same Signature describe the same invocation shape.
// GroupBySignature buckets records by signature in first-seen order, and
// Formatter writes a record in the exact layout that help files use,
// wrapping long invocations one flag per continuation line.
package example
