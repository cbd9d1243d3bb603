package corpus

// stopwords contains English function words and high-frequency
// auxiliaries that carry no topical signal in movie reviews.
var stopwords = map[string]struct{}{
	// articles and determiners
	"the": {}, "this": {}, "that": {}, "these": {}, "those": {},
	"some": {}, "any": {}, "each": {}, "every": {}, "all": {}, "both": {},
	// pronouns
	"you": {}, "your": {}, "yours": {}, "she": {}, "her": {}, "hers": {},
	"him": {}, "his": {}, "its": {}, "they": {}, "them": {}, "their": {},
	"theirs": {}, "who": {}, "whom": {}, "whose": {}, "which": {}, "what": {},
	"himself": {}, "herself": {}, "itself": {},
	"themselves": {}, "myself": {}, "yourself": {}, "ourselves": {},
	// conjunctions
	"and": {}, "but": {}, "for": {}, "nor": {}, "yet": {}, "because": {},
	"although": {}, "though": {}, "while": {}, "whereas": {}, "since": {},
	// prepositions
	"about": {}, "above": {}, "after": {}, "against": {}, "along": {},
	"among": {}, "around": {}, "before": {}, "behind": {}, "below": {},
	"beneath": {}, "beside": {}, "between": {}, "beyond": {}, "down": {},
	"during": {}, "from": {}, "into": {}, "near": {}, "off": {}, "onto": {},
	"out": {}, "over": {}, "through": {}, "toward": {}, "under": {},
	"until": {}, "upon": {}, "with": {}, "within": {}, "without": {},
	// auxiliaries and copulas
	"are": {}, "was": {}, "were": {}, "been": {}, "being": {}, "have": {},
	"has": {}, "had": {}, "having": {}, "does": {}, "did": {}, "doing": {},
	"will": {}, "would": {}, "shall": {}, "should": {}, "can": {},
	"could": {}, "may": {}, "might": {}, "must": {}, "isn": {}, "aren": {},
	"wasn": {}, "weren": {}, "don": {}, "doesn": {}, "didn": {},
	// adverbs and qualifiers
	"not": {}, "very": {}, "too": {}, "also": {}, "just": {}, "only": {},
	"then": {}, "than": {}, "there": {}, "here": {}, "when": {},
	"where": {}, "why": {}, "how": {}, "again": {}, "further": {},
	"once": {}, "more": {}, "most": {}, "other": {}, "such": {},
	"own": {}, "same": {}, "now": {}, "ever": {}, "never": {},
	// high-frequency review vocabulary with no topical value
	"movie": {}, "film": {}, "one": {}, "even": {}, "get": {}, "like": {},
	"really": {}, "much": {}, "many": {}, "well": {},
}

func isStopword(token string) bool {
	_, ok := stopwords[token]
	return ok
}
