package chat

import "strings"

var (
	leagueKeywords    = []string{"mpl", "mobile legends", "mlbb"}
	allKeywords       = []string{"semua", "seluruh", "all"}
	rosterKeywords    = []string{"pemain", "player", "roster", "skuad", "squad", "member", "anggota", "lineup"}
	standingsKeywords = []string{"klasemen", "standing"}
	scheduleKeywords  = []string{"jadwal", "schedule"}
)

// scopeVocabulary is every word a deterministic rule can act on, plus the
// league names. The "all" keywords are left out: on their own they answer nothing.
var scopeVocabulary = buildScopeVocabulary()

func buildScopeVocabulary() []string {
	var words []string
	words = append(words, leagueKeywords...)
	words = append(words, TeamAliases.Words()...)
	words = append(words, RoleAliases.Words()...)
	words = append(words, rosterKeywords...)
	words = append(words, standingsKeywords...)
	words = append(words, scheduleKeywords...)
	return words
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// InScope reports whether normalized text mentions anything the bot covers.
func InScope(text string) bool {
	return containsAny(text, scopeVocabulary)
}

// IsTopicAdjacent is the narrower test for delegating to text generation:
// the league itself or one of its teams must be named.
func IsTopicAdjacent(text string) bool {
	if containsAny(text, leagueKeywords) {
		return true
	}
	_, ok := TeamAliases.Resolve(text)
	return ok
}
