package parser

import (
	"regexp"
	"strings"
)

// editionSuffixes lists edition markers that appear at the end of a
// title and confuse provider search. Longest patterns are tried first
// so "extended director's cut" goes before "extended".
var editionSuffixes = []string{
	`DIRECTOR['’]?S?\s*(CUT|EDITION|VERSION)`,
	`EXTENDED\s*(CUT|EDITION|VERSION)?`,
	`UNRATED\s*(CUT|EDITION|VERSION)?`,
	`UNCUT\s*(EDITION|VERSION)?`,
	`THEATRICAL\s*(CUT|EDITION|VERSION|RELEASE)?`,
	`REMASTERED\s*(EDITION|VERSION)?`,
	`SPECIAL\s*EDITION`,
	`\d+\s*(TH|ST|ND|RD)?\s*ANNIVERSARY\s*(EDITION)?`,
	`ULTIMATE\s*(CUT|EDITION)`,
	`DEFINITIVE\s*(CUT|EDITION)`,
	`FINAL\s*CUT`,
	`REDUX`,
	`IMAX\s*(EDITION)?`,
}

var (
	editionStripPatterns []*regexp.Regexp
	editionFindPatterns  []*regexp.Regexp
	editionSeparators    = strings.NewReplacer(".", " ", "_", " ", "-", " ", "[", " ", "]", " ", "(", " ", ")", " ")
)

func init() {
	for _, suffix := range editionSuffixes {
		editionStripPatterns = append(editionStripPatterns,
			regexp.MustCompile(`(?i)[\s([-]*(`+suffix+`)[)\]]?\s*$`))
		editionFindPatterns = append(editionFindPatterns,
			regexp.MustCompile(`(?i)\b(`+suffix+`)\b`))
	}
}

// StripEditionSuffix removes a trailing edition marker from a title.
// Markers are matched case-insensitively, with or without surrounding
// parentheses, longest pattern first.
func StripEditionSuffix(title string) string {
	for _, pattern := range editionStripPatterns {
		if stripped := pattern.ReplaceAllString(title, ""); stripped != title {
			return strings.TrimSpace(stripped)
		}
	}
	return strings.TrimSpace(title)
}

// StripLeadingArticle removes a leading "The ", "A ", or "An ".
func StripLeadingArticle(title string) string {
	lower := strings.ToLower(title)
	for _, article := range []string{"the ", "an ", "a "} {
		if strings.HasPrefix(lower, article) {
			return strings.TrimSpace(title[len(article):])
		}
	}
	return title
}

// DetectEdition reports the edition marker embedded in a release name,
// or "" when none is present. Separator characters are normalized to
// spaces first so dotted names match the same patterns as titles.
func DetectEdition(name string) string {
	spaced := editionSeparators.Replace(name)
	for _, pattern := range editionFindPatterns {
		match := pattern.FindStringSubmatch(spaced)
		if match == nil {
			continue
		}
		return strings.TrimSpace(match[1])
	}
	return ""
}
