package textproc

import "github.com/talentohub/search/internal/domain/content"

// Stop-word sets are fixed per language. Index building keeps stop
// words so exact phrase matches still see them; query term extraction
// filters them out.
var spanishStopWords = toSet([]string{
	"el", "la", "los", "las", "un", "una", "unos", "unas",
	"de", "del", "al", "a", "en", "por", "para", "con", "sin",
	"y", "o", "u", "e", "que", "como", "pero", "mas", "muy",
	"es", "son", "ser", "esta", "estan", "fue", "hay",
	"se", "su", "sus", "lo", "le", "les", "mi", "tu", "te", "me",
	"no", "si", "ya", "este", "esta", "estos", "estas", "eso",
	"sobre", "entre", "hasta", "desde", "donde", "cuando",
})

var englishStopWords = toSet([]string{
	"the", "a", "an", "and", "or", "but", "not", "no",
	"to", "in", "of", "on", "for", "with", "as", "at", "by", "from",
	"is", "are", "was", "were", "be", "been", "being",
	"this", "that", "these", "those", "it", "its",
	"i", "we", "you", "he", "she", "they", "them", "their",
	"do", "does", "did", "have", "has", "had",
	"can", "could", "will", "would", "should", "may",
	"if", "then", "than", "so", "about", "into", "over", "under",
	"there", "here", "when", "where", "how", "what", "who",
})

func toSet(words []string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

// IsStopWord reports whether the normalized word is a stop word in lang.
func IsStopWord(word string, lang content.Language) bool {
	set := englishStopWords
	if lang == content.Spanish {
		set = spanishStopWords
	}
	_, ok := set[word]
	return ok
}
