// Package products resolves free-text product mentions to canonical product
// ids. Resolution is deliberately literal: an id is only returned when an
// alias actually occurs in the text or clears a high fuzzy threshold, so an
// upstream classifier can never invent a product that was not asked for.
package products

import (
	"regexp"
	"sort"
	"strings"

	"github.com/thinktank-analytics/thinktank-engine/pkg/textmatch"
)

// DefaultFuzzyThreshold is the minimum token-set score for the fuzzy
// fallback pass. Call sites that need stricter matching can raise it.
const DefaultFuzzyThreshold = 75

// Stop words stripped before fuzzy scoring; without this, filler words
// drag real product tokens below the threshold.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "of": {}, "for": {}, "in": {}, "on": {},
	"is": {}, "are": {}, "was": {}, "me": {}, "my": {}, "show": {},
	"give": {}, "get": {}, "how": {}, "many": {}, "much": {}, "what": {},
	"number": {}, "count": {}, "total": {}, "leads": {}, "lead": {},
	"bookings": {}, "booking": {}, "revenue": {}, "premium": {},
	"today": {}, "yesterday": {}, "week": {}, "month": {}, "year": {},
	"this": {}, "last": {}, "wise": {},
}

// Marketing-channel words that look like product tokens but never are.
var channelWords = map[string]struct{}{
	"crm": {}, "sms": {}, "email": {}, "organic": {}, "paid": {},
	"referral": {}, "campaign": {}, "whatsapp": {}, "inbound": {},
	"outbound": {}, "online": {}, "offline": {},
}

var allProductPhrases = []string{
	"all products", "all subproducts", "across products",
	"overall products", "overall subproducts",
}

type aliasEntry struct {
	alias   string
	id      int
	pattern *regexp.Regexp
}

// Resolver maps free-text aliases to canonical product ids.
type Resolver struct {
	entries   []aliasEntry // sorted longest alias first
	multiWord []aliasEntry // exact-phrase pass candidates
	byID      map[int][]string
	names     map[int]string
	aliasList []string
}

// NewResolver builds a resolver over the built-in alias map.
func NewResolver() *Resolver {
	return NewResolverWithAliases(nil)
}

// NewResolverWithAliases builds a resolver over the built-in alias map
// merged with extra aliases (extra entries win on conflict).
func NewResolverWithAliases(extra map[string]int) *Resolver {
	merged := make(map[string]int, len(defaultAliases)+len(extra))
	for a, id := range defaultAliases {
		merged[strings.ToLower(a)] = id
	}
	for a, id := range extra {
		a = strings.TrimSpace(strings.ToLower(a))
		if a != "" {
			merged[a] = id
		}
	}

	r := &Resolver{
		byID:  make(map[int][]string),
		names: make(map[int]string),
	}
	for alias, id := range merged {
		entry := aliasEntry{
			alias:   alias,
			id:      id,
			pattern: regexp.MustCompile(`\b` + regexp.QuoteMeta(alias) + `\b`),
		}
		r.entries = append(r.entries, entry)
		r.aliasList = append(r.aliasList, alias)
		r.byID[id] = append(r.byID[id], alias)
		if strings.Contains(alias, " ") {
			r.multiWord = append(r.multiWord, entry)
		}
		// Display name: the longest alias wins, title-cased.
		if len(alias) > len(r.names[id]) {
			r.names[id] = alias
		}
	}

	// Longest-first so a specific alias beats a shorter colliding one.
	sortLongestFirst(r.entries)
	sortLongestFirst(r.multiWord)
	for id := range r.byID {
		aliases := r.byID[id]
		sort.Slice(aliases, func(i, j int) bool {
			if len(aliases[i]) != len(aliases[j]) {
				return len(aliases[i]) > len(aliases[j])
			}
			return aliases[i] < aliases[j]
		})
	}
	sort.Strings(r.aliasList)
	return r
}

func sortLongestFirst(entries []aliasEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if len(entries[i].alias) != len(entries[j].alias) {
			return len(entries[i].alias) > len(entries[j].alias)
		}
		return entries[i].alias < entries[j].alias
	})
}

// Resolve returns the canonical product ids mentioned in text, in ascending
// order. Empty input yields an empty result, never an error.
func (r *Resolver) Resolve(text string) []int {
	return r.ResolveFuzzy(text, DefaultFuzzyThreshold)
}

// ResolveFuzzy is Resolve with an explicit fuzzy-pass threshold.
func (r *Resolver) ResolveFuzzy(text string, threshold int) []int {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return nil
	}

	// Pass 1: exact multi-word phrases. A verbatim phrase hit settles the
	// answer so a later fuzzy single-word hit cannot override it.
	if ids := matchEntries(r.multiWord, t); len(ids) > 0 {
		return ids
	}

	// Pass 2: word-boundary pass over every alias, longest first.
	if ids := matchEntries(r.entries, t); len(ids) > 0 {
		return ids
	}

	// Pass 3: fuzzy fallback over the de-noised phrase.
	phrase := stripNoiseWords(t)
	if phrase == "" {
		return nil
	}
	alias, _, ok := textmatch.BestMatch(phrase, r.aliasList, threshold)
	if !ok {
		return nil
	}
	return []int{r.idOf(alias)}
}

// ContainsAlias reports whether any alias of the product occurs in text with
// word-boundary semantics. Aliases shorter than three characters are skipped
// to avoid false hits inside unrelated words.
func (r *Resolver) ContainsAlias(text string, id int) bool {
	t := strings.ToLower(text)
	for _, alias := range r.byID[id] {
		if len(alias) < 3 {
			continue
		}
		if regexp.MustCompile(`\b` + regexp.QuoteMeta(alias) + `\b`).MatchString(t) {
			return true
		}
	}
	return false
}

// AllProductsRequested reports whether the user explicitly asked for all
// products, which clears any product filter rather than guessing one.
func AllProductsRequested(text string) bool {
	t := strings.ToLower(text)
	for _, phrase := range allProductPhrases {
		if strings.Contains(t, phrase) {
			return true
		}
	}
	return false
}

// Name returns a display name for a product id ("Fire Insurance" for 5).
func (r *Resolver) Name(id int) string {
	return titleCase(r.names[id])
}

// IDNames returns product id -> display name for every known product.
func (r *Resolver) IDNames() map[int]string {
	out := make(map[int]string, len(r.names))
	for id, name := range r.names {
		out[id] = titleCase(name)
	}
	return out
}

// IDs returns every known product id in ascending order.
func (r *Resolver) IDs() []int {
	ids := make([]int, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// PrimaryAlias returns the longest alias registered for the id.
func (r *Resolver) PrimaryAlias(id int) string {
	return r.names[id]
}

func (r *Resolver) idOf(alias string) int {
	for _, e := range r.entries {
		if e.alias == alias {
			return e.id
		}
	}
	return 0
}

func matchEntries(entries []aliasEntry, text string) []int {
	seen := make(map[int]struct{})
	var ids []int
	for _, e := range entries {
		if _, dup := seen[e.id]; dup {
			continue
		}
		if e.pattern.MatchString(text) {
			seen[e.id] = struct{}{}
			ids = append(ids, e.id)
		}
	}
	sort.Ints(ids)
	return ids
}

func stripNoiseWords(text string) string {
	var kept []string
	for _, tok := range strings.Fields(text) {
		tok = strings.Trim(tok, ".,!?")
		if tok == "" {
			continue
		}
		if _, stop := stopWords[tok]; stop {
			continue
		}
		if _, channel := channelWords[tok]; channel {
			continue
		}
		kept = append(kept, tok)
	}
	return strings.Join(kept, " ")
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if len(w) <= 3 && (w == "ghi" || w == "wc" || w == "opd" || w == "ict") {
			words[i] = strings.ToUpper(w)
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
