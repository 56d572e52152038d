package analysis

// englishStopWords are function words dropped from description tokens.
// Contraction stems (don, isn, ll, re, ve) are listed separately because the
// tokenizer splits "don't" into "don" and "t".
var englishStopWords = []string{
	"a", "about", "above", "after", "again", "against", "all", "also", "am",
	"an", "and", "any", "are", "aren", "as", "at", "be", "because", "been",
	"before", "being", "below", "between", "both", "but", "by", "can",
	"cannot", "could", "couldn", "did", "didn", "do", "does", "doesn",
	"doing", "don", "down", "during", "each", "few", "for", "from",
	"further", "had", "hadn", "has", "hasn", "have", "haven", "having",
	"he", "her", "here", "hers", "herself", "him", "himself", "his", "how",
	"i", "if", "in", "into", "is", "isn", "it", "its", "itself", "just",
	"ll", "me", "more", "most", "mustn", "my", "myself", "no", "nor", "not",
	"now", "of", "off", "on", "once", "only", "or", "other", "our", "ours",
	"ourselves", "out", "over", "own", "re", "s", "same", "shan", "she",
	"should", "shouldn", "so", "some", "such", "t", "than", "that", "the",
	"their", "theirs", "them", "themselves", "then", "there", "these",
	"they", "this", "those", "through", "to", "too", "under", "until", "up",
	"ve", "very", "was", "wasn", "we", "were", "weren", "what", "when",
	"where", "which", "while", "who", "whom", "why", "will", "with", "won",
	"would", "wouldn", "you", "your", "yours", "yourself", "yourselves",
}

// defaultStopWords returns a fresh copy of the built-in stop list so user
// additions never leak between analyzers.
func defaultStopWords() map[string]struct{} {
	words := make(map[string]struct{}, len(englishStopWords))
	for _, w := range englishStopWords {
		words[w] = struct{}{}
	}
	return words
}
