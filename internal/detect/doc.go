// Package detect flags suspicious translations in a Crowdin XLIFF export.
//
// CommaLists finds _Name units whose comma-separated source and target lists
// have different lengths, which usually means a synonym was dropped or
// invented. Identical finds units whose target merely repeats the source,
// bucketed by the unit's approved and translate flags so reviewers can tell
// deliberate copies from forgotten ones.
package detect
