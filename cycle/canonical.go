package cycle

import (
	"slices"
	"strings"
)

// canonical returns the signature and closed form of a closed cycle
// [v0, ..., vk, v0]: the lexicographically smaller of the minimal rotation
// of the cycle and the minimal rotation of its reverse, closed again.
// Undirected cycles traversed in either direction and from any start node
// therefore share one signature.
func canonical(closed []string) (string, []string) {
	base := slices.Clone(closed[:len(closed)-1]) // drop the repeated first node

	pick := MinimalRotation(base)
	slices.Reverse(base)
	if backward := MinimalRotation(base); slices.Compare(backward, pick) < 0 {
		pick = backward
	}

	out := append(pick, pick[0])

	return signature(out), out
}

// signature is the comma-joined form of a closed cycle.
func signature(c []string) string { return strings.Join(c, ",") }

// MinimalRotation returns the lexicographically minimal rotation of s using
// Booth's algorithm over the doubled sequence. The input is not modified.
// Complexity: O(n).
func MinimalRotation(s []string) []string {
	n := len(s)
	if n == 0 {
		return nil
	}
	doubled := make([]string, 0, 2*n)
	doubled = append(doubled, s...)
	doubled = append(doubled, s...)

	fail := make([]int, 2*n) // failure function, -1 = no border
	for i := range fail {
		fail[i] = -1
	}
	k := 0 // start of the best rotation so far
	for j := 1; j < 2*n; j++ {
		i := fail[j-k-1]
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k+i+1] {
				k = j - i - 1
			}
			i = fail[i]
		}
		if doubled[j] != doubled[k+i+1] { // here i == -1
			if doubled[j] < doubled[k] {
				k = j
			}
			fail[j-k] = -1
		} else {
			fail[j-k] = i + 1
		}
	}

	out := make([]string, n)
	copy(out, doubled[k:k+n])

	return out
}
