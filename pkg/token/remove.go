package token

// Remove scans tokens linearly for the first token whose stripped name
// equals name under cfg's comparer, splices it out of *tokens, and
// returns its value (nil if the token carried no delimiter) along with
// whether a match was found at all. Matching is exact on the name
// including any embedded whitespace — only case is folded by the default
// comparer — so "four" and "four " are distinct names. Repeated calls
// remove successive occurrences.
func Remove(tokens *[]string, name string, cfg TokenizerConfig) (value *string, found bool) {
	cmp := cfg.comparer()

	for i, tok := range *tokens {
		if tok == "" || !cfg.hasPrefix(tok[0]) {
			continue
		}

		stripped := tok[1:]
		tname, tvalue := splitNameValue(stripped, cfg.DelimiterChars)

		if !cmp(tname, name) {
			continue
		}

		*tokens = append((*tokens)[:i:i], (*tokens)[i+1:]...)
		return tvalue, true
	}

	return nil, false
}
