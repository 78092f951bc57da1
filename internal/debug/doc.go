// Package debug provides optional file-based debug logging.
//
// When the FLEX_DEBUG environment variable is set to a file path, layout
// traces (query results, shrink and grow rounds) are appended to that file.
// Otherwise the logger discards everything.
package debug
