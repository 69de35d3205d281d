// Package categorize implements the interactive sorting session that tags
// each row of a comparison report with one or more user-chosen groups.
//
// The session reads answers line by line from an io.Reader and writes prompts
// to an io.Writer, so it can be driven by a terminal or by tests alike.
package categorize
