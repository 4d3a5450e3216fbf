package lcse

// decomposition is the record of a non-empty balanced Sequence S split at
// its first open's matching close: a = S[0], b = pair(a), head = S[1,k),
// tail = S[k+1,len(S)), and headTail = head⊕tail materialized fresh because
// recursion slices into it and needs its own stable backing storage.
type decomposition struct {
	a, b     Token
	head     Sequence
	tail     Sequence
	headTail Sequence
}

// decompositionCache memoizes decompose by view identity: each distinct
// sub-view presented to decompose is scanned at most once.
type decompositionCache struct {
	alphabet *Alphabet
	entries  map[viewIdentity]*decomposition
}

func newDecompositionCache(a *Alphabet) *decompositionCache {
	return &decompositionCache{alphabet: a, entries: make(map[viewIdentity]*decomposition)}
}

// decompose returns the decomposition of the non-empty balanced view s,
// computing and caching it on first access. Callers never invoke decompose
// on an empty view (guarded by the recursion's base case).
func (c *decompositionCache) decompose(s Sequence) (*decomposition, error) {
	key := s.identity()
	if d, ok := c.entries[key]; ok {
		return d, nil
	}

	a := s.At(0)
	b, _ := c.alphabet.CloseOf(a) // s is balanced, so a is an open token

	depth := 1
	k := -1
	for i := 1; i < s.Len(); i++ {
		t := s.At(i)
		if c.alphabet.IsOpen(t) {
			depth++
		} else {
			depth--
		}
		if depth == 0 {
			if t != b {
				return nil, &unbalancedError{Offset: s.start}
			}
			k = i
			break
		}
	}
	if k < 0 {
		return nil, &unbalancedError{Offset: s.start}
	}

	head := s.Slice(1, k)
	tail := s.Slice(k+1, s.Len())
	d := &decomposition{a: a, b: b, head: head, tail: tail, headTail: concat(head, tail)}

	c.entries[key] = d
	return d, nil
}
