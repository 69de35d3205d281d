package detect

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/abadojack/whatlanggo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"xlftools/internal/identifier"
	langutil "xlftools/internal/language"
	"xlftools/internal/logging"
	"xlftools/internal/textutil"
	"xlftools/internal/xliff"
)

// Bucket classifies a flagged unit by its approved and translate flags.
type Bucket int

const (
	// ApprovedTranslatable units are approved and translatable; they are
	// flagged when any comma piece of the target occurs in the source.
	ApprovedTranslatable Bucket = iota + 1
	// ApprovedLocked units are approved with translate="no".
	ApprovedLocked
	// Unapproved units are not approved, whatever their translate flag.
	Unapproved
)

func (b Bucket) String() string {
	switch b {
	case ApprovedTranslatable:
		return "approved (comma-split)"
	case ApprovedLocked:
		return "approved + translate=no (identical)"
	case Unapproved:
		return "not approved (identical)"
	default:
		return "unknown"
	}
}

// BucketFor returns the bucket a unit falls into.
func BucketFor(u xliff.TranslationUnit) Bucket {
	switch {
	case u.Approved && u.Translatable:
		return ApprovedTranslatable
	case u.Approved:
		return ApprovedLocked
	default:
		return Unapproved
	}
}

// Finding is one flagged unit.
type Finding struct {
	ID             string
	Resname        string
	Source         string
	Target         string
	MatchingPieces []string
	Bucket         Bucket
	// DetectedLanguage is the ISO 639-1 code detected in Target, when requested.
	DetectedLanguage string
}

// IdenticalOptions controls Identical.
type IdenticalOptions struct {
	DetectLanguage bool
}

// Identical flags units whose trimmed target repeats the source. Abbreviation
// units, units missing a source or target, and targets that still need
// translation are ignored. Findings are ordered by bucket, then document order.
func Identical(units []xliff.TranslationUnit, opts IdenticalOptions, logger *slog.Logger) []Finding {
	logger = logging.NewComponentLogger(logger, "identical")

	var findings []Finding
	for _, u := range units {
		if identifier.Classify(u.Identifier()) == identifier.Abbreviation {
			continue
		}
		if !u.HasSource || !u.HasTarget || u.State == xliff.StateNeedsTranslation {
			continue
		}
		source := strings.TrimSpace(u.Source)
		target := strings.TrimSpace(u.Target)
		bucket := BucketFor(u)

		var pieces []string
		if bucket == ApprovedTranslatable {
			pieces = matchingPieces(source, target)
		} else if source == target {
			pieces = []string{source}
		}
		if len(pieces) == 0 {
			continue
		}

		f := Finding{
			ID:             u.ID,
			Resname:        u.Resname,
			Source:         source,
			Target:         target,
			MatchingPieces: pieces,
			Bucket:         bucket,
		}
		if opts.DetectLanguage {
			f.DetectedLanguage = detectLanguage(target)
		}
		findings = append(findings, f)
	}

	sort.SliceStable(findings, func(i, j int) bool {
		return findings[i].Bucket < findings[j].Bucket
	})

	logger.Info("identical scan complete", logging.Int("findings", len(findings)))
	return findings
}

// matchingPieces returns the non-empty comma pieces of target that occur in source.
func matchingPieces(source, target string) []string {
	var out []string
	for _, piece := range textutil.SplitList(target) {
		if piece != "" && strings.Contains(source, piece) {
			out = append(out, piece)
		}
	}
	return out
}

func detectLanguage(text string) string {
	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return ""
	}
	return info.Lang.Iso6391()
}

// RenderIdentical formats findings as the plain-text analysis report.
func RenderIdentical(findings []Finding) []byte {
	var b strings.Builder
	rule := strings.Repeat("=", 80)
	caser := cases.Upper(language.Und)
	fmt.Fprintf(&b, "Found %d trans-unit(s)\n", len(findings))
	b.WriteString(rule + "\n\n")

	var current Bucket
	for i, f := range findings {
		if f.Bucket != current {
			current = f.Bucket
			fmt.Fprintf(&b, "\n%s\n", rule)
			fmt.Fprintf(&b, "CASE: %s\n", caser.String(current.String()))
			fmt.Fprintf(&b, "%s\n\n", rule)
		}
		id := f.ID
		if id == "" {
			id = "N/A"
		}
		fmt.Fprintf(&b, "%d. ID: %s\n", i+1, id)
		fmt.Fprintf(&b, "   resname: %s\n", f.Resname)
		fmt.Fprintf(&b, "   Source: %s\n", f.Source)
		fmt.Fprintf(&b, "   Target: %s\n", f.Target)
		fmt.Fprintf(&b, "   Matching pieces: %s\n", strings.Join(f.MatchingPieces, ", "))
		if f.DetectedLanguage != "" {
			fmt.Fprintf(&b, "   Detected language: %s\n", langutil.DisplayName(f.DetectedLanguage))
		}
		b.WriteByte('\n')
	}
	return []byte(b.String())
}
