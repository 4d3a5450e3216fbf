// Package lcse computes the Longest Common balanced Subsequence Embedding
// between two balanced token sequences.
//
// A balanced sequence is built from an alphabet partitioned into open/close
// token pairs (think "(", ")", "[", "]") such that the running depth never
// goes negative and returns to zero at the end, with every close matching
// the open that started its depth level. LCSE finds the longest pair of
// subsequences — one drawn from each input, themselves balanced under the
// same pairing — that can be aligned position by position under a
// caller-supplied affinity score.
//
// This is the dynamic-programming core underlying ordered-subtree-minor
// matching: encode two ordered labeled trees as balanced parenthesis
// sequences and LCSE on those encodings yields the largest common ordered
// embedded subtree. That encoding step is deliberately not part of this
// package; lcse only ever sees token buffers.
//
// Usage:
//
//	res, err := lcse.Compute(buf1, buf2, pairs, lcse.DefaultOptions())
//	if err != nil {
//		// ErrInvalidAlphabet, ErrUnknownToken, ErrUnbalanced, ErrResourceExhausted
//	}
//	fmt.Println(res.Score, res.Out1, res.Out2)
//
// Complexity: the memo holds one entry per distinct pair of sub-views
// reached. Views are keyed by identity, not content, and every head⊕tail is
// a fresh buffer, so the distinct sub-views of an input include these fresh
// buffers as well as slices of the input itself. Each memoized pair makes up
// to four recursive sub-solves; decomposing a view (once per distinct view)
// and building an output embedding take time linear in the lengths involved.
package lcse
