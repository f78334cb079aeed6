package research

import "strings"

const maxKeywords = 6

// Function words plus generic product nouns that say nothing about the domain.
var stopWords = map[string]struct{}{
	"that": {}, "this": {}, "with": {}, "from": {}, "have": {}, "will": {},
	"what": {}, "when": {}, "where": {}, "which": {}, "your": {}, "their": {},
	"them": {}, "they": {}, "there": {}, "then": {}, "than": {}, "about": {},
	"into": {}, "would": {}, "could": {}, "should": {}, "because": {}, "being": {},
	"every": {}, "some": {}, "also": {}, "just": {}, "like": {}, "want": {},
	"need": {}, "needs": {}, "make": {}, "makes": {}, "using": {}, "used": {},
	"help": {}, "helps": {}, "more": {}, "most": {}, "based": {}, "powered": {},
	"platform": {}, "solution": {}, "solutions": {}, "users": {}, "user": {},
	"people": {}, "service": {}, "services": {}, "software": {}, "product": {},
	"products": {}, "application": {}, "system": {}, "tool": {}, "tools": {},
	"website": {}, "online": {}, "startup": {}, "idea": {}, "ideas": {},
	"business": {},
}

// ExtractKeywords derives up to six salient lowercase tokens from free text.
// Tokens shorter than four characters and stop-words are dropped; the original
// order is preserved. Callers deduplicate when combining multiple extractions.
func ExtractKeywords(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return r
		}
		return ' '
	}, strings.ToLower(text))

	var keywords []string
	for _, token := range strings.Fields(cleaned) {
		if len(token) < 4 {
			continue
		}
		if _, stop := stopWords[token]; stop {
			continue
		}
		keywords = append(keywords, token)
		if len(keywords) == maxKeywords {
			break
		}
	}
	return keywords
}
