// Package helpblock merges generated examples into the YAML body of a single
// command help block.
//
// A block is handled as raw lines so that nothing already written is touched:
// new examples are only ever appended after the last line, indented the way
// the block's existing examples (or its first line) are indented.
package helpblock
