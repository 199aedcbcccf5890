package validate

import "github.com/lithammer/fuzzysearch/fuzzy"

// reservedWords are the keyword spellings a quoted identifier might be a
// typo of.
var reservedWords = []string{"if", "then", "else"}

// suggestKeywordTip returns a "did you mean" tip when text is a close
// near-miss of a reserved keyword, the same fuzzy-rank technique the
// reference planner uses to suggest a decorator name
// (_examples/opal-lang-opal/runtime/planner/planner.go's findClosestMatch).
// A keyword is a candidate only when text's characters appear in it in
// order, ignoring case (fuzzy.RankFindFold's match rule): a dropped letter
// such as `thn` is matched, an added one such as `iff` is not. An exact match is not a typo — backtick-quoting a keyword is a deliberate
// escape hatch to use it as an identifier — so only distances in (0, 2] are
// offered.
func suggestKeywordTip(text string) (string, bool) {
	if text == "" {
		return "", false
	}
	ranks := fuzzy.RankFindFold(text, reservedWords)
	if len(ranks) == 0 {
		return "", false
	}
	best := ranks[0]
	if best.Distance == 0 || best.Distance > 2 {
		return "", false
	}
	return "did you mean the keyword `" + best.Target + "`?", true
}
