package synthesis

import "regexp"

// SourceInfo carries the bibliographic metadata of one article. Authors and
// Year are placeholders the upstream reply does not label separately; they
// stay empty until the citation format carries them.
type SourceInfo struct {
	Title    string
	Authors  string
	Journal  string
	Year     string
	DOI      string
	PaperURL string
	Summary  string
}

// Record is one parsed synthesis procedure. Reagents holds starting
// materials and solvents merged into a single ordered list; downstream
// consumers depend on the merged shape. Every field defaults to its zero
// value when the reply omits the corresponding label.
type Record struct {
	Reagents   []string
	Conditions string
	Time       string
	Temp       string
	Yield      string
	Source     SourceInfo
}

var casNumberRe = regexp.MustCompile(`^\d{2,7}-\d{2}-\d$`)

// IsValidCASNumber reports whether s is a well-formed CAS registry number
// (XXXXXXX-XX-X, 2-7 digits in the first block).
func IsValidCASNumber(s string) bool {
	return casNumberRe.MatchString(s)
}
