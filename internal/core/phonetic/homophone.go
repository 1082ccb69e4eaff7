package phonetic

import "strings"

// blacklistEntry is one known negative-sounding reading. Readings are stored
// in normalized toneless pinyin. The list is curated reference data.
type blacklistEntry struct {
	reading string
	note    string
}

var homophoneBlacklist = []blacklistEntry{
	{"shibai", "sounds like 'failure'"},
	{"shiye", "sounds like 'unemployment'"},
	{"duanming", "sounds like 'short-lived'"},
	{"meiqian", "sounds like 'penniless'"},
	{"wuyong", "sounds like 'useless'"},
	{"daomei", "sounds like 'bad luck'"},
	{"bensi", "sounds like 'run to death'"},
	{"shengbing", "sounds like 'fall ill'"},
	{"poulu", "sounds like 'broken road'"},
	{"fanwei", "sounds like 'dull and bland'"},
	{"yaowan", "sounds like 'medicine pill'"},
	{"shuren", "sounds like 'loser'"},
}

// NormalizeReading lowercases a pinyin reading and strips separators and
// tone digits so blacklist matching is stable.
func NormalizeReading(reading string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(reading) {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		default:
			// drop spaces, apostrophes, and tone digits
		}
	}
	return b.String()
}

// MatchHomophones returns one warning per blacklist entry matched by the
// normalized reading, exact or embedded.
func MatchHomophones(reading string) []string {
	normalized := NormalizeReading(reading)
	if normalized == "" {
		return nil
	}

	var warnings []string
	for _, entry := range homophoneBlacklist {
		if normalized == entry.reading || strings.Contains(normalized, entry.reading) {
			warnings = append(warnings, "reading '"+entry.reading+"' "+entry.note)
		}
	}
	return warnings
}
