package resolve

import (
	"strings"
)

type variation struct {
	label string
	title string
}

// stripTrailingNumber removes a purely numeric final word, the usual
// shape of a sequel suffix ("Iron Man 2").
func stripTrailingNumber(title string) (string, bool) {
	fields := strings.Fields(title)
	if len(fields) < 2 {
		return title, false
	}
	last := fields[len(fields)-1]
	for i := 0; i < len(last); i++ {
		if last[i] < '0' || last[i] > '9' {
			return title, false
		}
	}
	return strings.Join(fields[:len(fields)-1], " "), true
}

// titleVariations generates the alternate spellings the variation
// strategy tries, in order: toggle the leading "The", then drop a
// trailing sequel number. Variants identical to the input are skipped.
func titleVariations(title string) []variation {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil
	}
	var out []variation
	add := func(label, value string) {
		value = strings.TrimSpace(value)
		if value == "" || strings.EqualFold(value, title) {
			return
		}
		for _, existing := range out {
			if strings.EqualFold(existing.title, value) {
				return
			}
		}
		out = append(out, variation{label: label, title: value})
	}

	if strings.HasPrefix(strings.ToLower(title), "the ") {
		add("strip_the", title[4:])
	} else {
		add("add_the", "The "+title)
	}
	if stripped, ok := stripTrailingNumber(title); ok {
		add("strip_sequel_number", stripped)
	}
	return out
}
