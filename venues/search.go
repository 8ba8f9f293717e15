package venues

import "strings"

// Search returns the venues of list that match every whitespace-separated
// token of query, in list order.
//
// Matching is a case-insensitive substring test against a haystack made of
// the venue identifier and every alias registered for it in aliases, which
// may be nil. Tokens match independently, so "lt 17" finds "LT17". An empty
// or blank query returns list itself.
func Search(list OrderedList, query string, aliases AliasMap) OrderedList {
	tokens := tokenize(query)
	if len(tokens) == 0 {
		return list
	}

	out := make(OrderedList, 0, len(list))
	for _, v := range list {
		if matchesAll(haystack(v.ID, aliases[v.ID]), tokens) {
			out = append(out, v)
		}
	}
	return out
}

// tokenize lowercases query and splits it on whitespace, dropping repeats.
func tokenize(query string) []string {
	fields := strings.Fields(strings.ToLower(query))
	seen := make(map[string]struct{}, len(fields))
	tokens := fields[:0]
	for _, f := range fields {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		tokens = append(tokens, f)
	}
	return tokens
}

// haystack joins id and its aliases with a single space. Tokens never hold
// whitespace, so no token can match across two fields.
func haystack(id string, aliases []string) string {
	if len(aliases) == 0 {
		return strings.ToLower(id)
	}
	var b strings.Builder
	b.WriteString(strings.ToLower(id))
	for _, a := range aliases {
		b.WriteByte(' ')
		b.WriteString(strings.ToLower(a))
	}
	return b.String()
}

func matchesAll(hay string, tokens []string) bool {
	for _, t := range tokens {
		if !strings.Contains(hay, t) {
			return false
		}
	}
	return true
}
