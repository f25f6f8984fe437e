// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textproc

// stopwords combines general English function words with terms that occur
// in nearly every research abstract and carry no topical signal.
var stopwords = toSet([]string{
	// general English
	"a", "about", "above", "after", "again", "against", "all", "also", "am", "an",
	"and", "any", "are", "as", "at", "be", "because", "been", "before", "being",
	"below", "between", "both", "but", "by", "can", "could", "did", "do", "does",
	"doing", "down", "during", "each", "either", "few", "for", "from", "further",
	"had", "has", "have", "having", "he", "her", "here", "hers", "herself", "him",
	"himself", "his", "how", "however", "i", "if", "in", "into", "is", "it", "its",
	"itself", "just", "may", "me", "might", "more", "most", "must", "my", "myself",
	"neither", "no", "nor", "not", "now", "of", "off", "on", "once", "only", "or",
	"other", "our", "ours", "ourselves", "out", "over", "own", "same", "she",
	"should", "so", "some", "such", "than", "that", "the", "their", "theirs",
	"them", "themselves", "then", "there", "these", "they", "this", "those",
	"through", "thus", "to", "too", "under", "until", "up", "upon", "very", "was",
	"we", "were", "what", "when", "where", "whether", "which", "while", "who",
	"whom", "why", "will", "with", "within", "without", "would", "yet", "you",
	"your", "yours", "yourself", "yourselves",

	// research boilerplate
	"abstract", "analysis", "approach", "associated", "background", "based",
	"conclusion", "conclusions", "data", "effect", "effects", "evidence",
	"findings", "group", "groups", "increased", "introduction", "measured",
	"method", "methods", "objective", "observed", "outcome", "outcomes", "paper",
	"patient", "patients", "performed", "present", "proposed", "reported",
	"research", "result", "results", "review", "showed", "shown", "significant",
	"significantly", "studies", "study", "suggest", "total", "use", "used",
	"using", "versus", "work",
})

// IsStopword reports whether the lowercase token is in the stopword set.
func IsStopword(token string) bool {
	_, ok := stopwords[token]
	return ok
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
