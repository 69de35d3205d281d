// Package xliff decodes XLF/XLIFF documents exported by Crowdin into a small,
// namespace-agnostic element tree and exposes the views the report builders
// need: every trans-unit as a TranslationUnit, and the semantic-domain groups
// (groups carrying a guid child) with their abbreviation and units.
//
// Element names are matched on their local part only, so files with and
// without the XLIFF namespace behave the same. Text is taken from all
// descendant character data, trimmed, mirroring how inline markup inside
// <source> and <target> is flattened for tabular output.
package xliff
