package synthesis

import (
	"fmt"
	"regexp"
	"strings"

	"chem-synthesis-be/internal/pkg/logger"
)

// Field regexes are line-scoped: a label match runs to the end of its line.
// The experimental method is the one multi-line field and is handled
// separately in extractMethod.
var (
	articleMarkerRe = regexp.MustCompile(`\*\*Article \d+:`)

	journalRe    = regexp.MustCompile(`Journal:\s*([^\n]+)`)
	doiRe        = regexp.MustCompile(`DOI:\s*([^\n]+)`)
	urlRe        = regexp.MustCompile(`URL:\s*([^\n]+)`)
	reagentsRe   = regexp.MustCompile(`Starting Materials:\s*([^\n]+)`)
	solventsRe   = regexp.MustCompile(`Solvents:\s*([^\n]+)`)
	conditionsRe = regexp.MustCompile(`Reaction Conditions:\s*([^\n]+)`)
	yieldRe      = regexp.MustCompile(`Yield:\s*([^\n]+)`)
	methodRe     = regexp.MustCompile(`Experimental Method:\s*([^\n]+)`)

	listSepRe = regexp.MustCompile(`[,;]`)
	tempRe    = regexp.MustCompile(`\d+(?:\.\d+)?\s*°?[CK]`)
	timeRe    = regexp.MustCompile(`(?i)\d+(?:\.\d+)?\s*(?:h|hr|hour|min|minute)s?`)
)

type Extractor struct {
	logger logger.ILogger
}

// NewExtractor builds an extractor. The logger may be nil; section-level
// failures are then skipped silently.
func NewExtractor(log logger.ILogger) *Extractor {
	return &Extractor{logger: log}
}

// Extract converts a free-text completion reply into ordered Records, one per
// "**Article N:" section. Everything before the first marker is discarded.
// A section that fails to parse is skipped and logged; the rest continue.
// An empty result is valid: zero markers means zero records, and no cap is
// applied even though the prompt asks for three articles.
func (e *Extractor) Extract(text string) []Record {
	sections := articleMarkerRe.Split(text, -1)
	if len(sections) < 2 {
		return nil
	}

	records := make([]Record, 0, len(sections)-1)
	for i, section := range sections[1:] {
		rec, err := e.parseSection(section, text, i+1)
		if err != nil {
			if e.logger != nil {
				e.logger.Warn("EXTRACTOR", "Failed to parse article section", map[string]interface{}{
					"article": i + 1,
					"error":   err.Error(),
				})
			}
			continue
		}
		records = append(records, rec)
	}
	return records
}

// parseSection extracts one Record from a section. Every sub-field is a
// per-field miss: an absent label leaves the empty default. n is the
// section's 1-based position, used to recover the title from the full text.
func (e *Extractor) parseSection(section, fullText string, n int) (Record, error) {
	var rec Record

	rec.Source.Journal = matchLine(journalRe, section)
	rec.Source.DOI = matchLine(doiRe, section)
	rec.Source.PaperURL = matchLine(urlRe, section)

	if materials := matchLine(reagentsRe, section); materials != "" {
		rec.Reagents = append(rec.Reagents, splitList(materials)...)
	}
	// Solvents and reagents are not distinguished in the output model.
	if solvents := matchLine(solventsRe, section); solvents != "" {
		rec.Reagents = append(rec.Reagents, splitList(solvents)...)
	}

	if conditions := matchLine(conditionsRe, section); conditions != "" {
		rec.Conditions = conditions
		rec.Temp = tempRe.FindString(conditions)
		rec.Time = timeRe.FindString(conditions)
	}

	rec.Yield = matchLine(yieldRe, section)
	rec.Source.Summary = extractMethod(section)

	// The citation header itself was consumed by the marker split, so the
	// title comes from re-matching the full text at this section's index.
	titleRe, err := regexp.Compile(fmt.Sprintf(`\*\*Article %d:\s*([^\n]+)`, n))
	if err != nil {
		return Record{}, fmt.Errorf("compile title pattern: %w", err)
	}
	rec.Source.Title = matchLine(titleRe, fullText)

	return rec, nil
}

// extractMethod captures the Experimental Method value, continuing across
// line breaks until a line that begins with the bold marker.
func extractMethod(section string) string {
	m := methodRe.FindStringSubmatchIndex(section)
	if m == nil {
		return ""
	}

	captured := []string{section[m[2]:m[3]]}
	rest := section[m[1]:]
	if rest != "" {
		for _, line := range strings.Split(strings.TrimPrefix(rest, "\n"), "\n") {
			if strings.HasPrefix(line, "**") {
				break
			}
			captured = append(captured, line)
		}
	}
	return strings.TrimSpace(strings.Join(captured, "\n"))
}

func matchLine(re *regexp.Regexp, s string) string {
	if m := re.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

func splitList(s string) []string {
	parts := listSepRe.Split(s, -1)
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
