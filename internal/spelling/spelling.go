// Package spelling judges free-text answers with a small typo tolerance.
package spelling

import "strings"

// MaxEditDistance is the fixed tolerance for accepting a misspelled answer.
// It is deliberately not scaled by word length, so very short answers are
// easy to fuzz-match; that trade-off is inherited behavior, not a bug.
const MaxEditDistance = 2

// Normalize lowercases and trims an answer before comparison.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// IsAcceptable reports whether a learner's answer matches the correct word,
// allowing up to MaxEditDistance character edits after normalization.
func IsAcceptable(userAnswer, correctAnswer string) bool {
	user := Normalize(userAnswer)
	correct := Normalize(correctAnswer)

	if user == correct {
		return true
	}
	return Distance(user, correct) <= MaxEditDistance
}

// Distance computes the Levenshtein edit distance between two strings with
// unit costs for insertion, deletion, and substitution. Rune-based, single
// rolling row.
func Distance(a, b string) int {
	ar := []rune(a)
	br := []rune(b)
	n, m := len(ar), len(br)
	if n == 0 {
		return m
	}
	if m == 0 {
		return n
	}

	dp := make([]int, m+1)
	for j := 0; j <= m; j++ {
		dp[j] = j
	}
	for i := 1; i <= n; i++ {
		prev := dp[0]
		dp[0] = i
		for j := 1; j <= m; j++ {
			tmp := dp[j]
			cost := 0
			if ar[i-1] != br[j-1] {
				cost = 1
			}
			ins := dp[j] + 1
			del := dp[j-1] + 1
			sub := prev + cost
			dp[j] = min3(ins, del, sub)
			prev = tmp
		}
	}
	return dp[m]
}

func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
