package problemgen

import (
	"strconv"
	"strings"
)

// CheckAnswer compares a response against the question's option set.
// Returns true if the response selects the correct option.
//
// Accepted forms:
// - an option letter ("b", "B")
// - the option text, case-insensitive ("Profit of ₹25")
// - for plain numeric answers, the number alone ("25", "025", "25%")
func CheckAnswer(response string, q *Question, set OptionSet) bool {
	response = strings.TrimSpace(response)
	if response == "" {
		return false
	}

	if o, ok := set.Lookup(response); ok {
		return o.Correct
	}

	for _, o := range set.Options {
		if strings.EqualFold(strings.TrimSpace(o.Text), response) {
			return o.Correct
		}
	}

	if q.Answer.Pair != nil || q.Tag != TagNone {
		return false
	}
	trimmed := strings.TrimSpace(strings.TrimSuffix(response, strings.TrimSpace(q.Suffix)))
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return false
	}
	return n == q.Answer.Value
}
