// Package helpfile rewrites command help source files. A help file is a
// source file that assigns YAML documents to command names:
//
//	helps['vm create'] = """
//	    type: command
//	    short-summary: Create a VM.
//	"""
//
// Scan splits a file into plain text and such blocks without losing a byte,
// Merger appends generated examples to the blocks of the commands it knows
// about, and MergeFile replaces the file atomically. Discover resolves the
// list of help files to process from explicit paths and glob patterns.
package helpfile
