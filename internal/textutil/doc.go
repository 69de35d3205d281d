// Package textutil provides the small text helpers shared by the report
// builders: comma-list splitting, natural ordering of identifiers such as
// "1_Poss_10", and derivation of report file names from input paths.
package textutil
