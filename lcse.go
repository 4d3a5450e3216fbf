package lcse

// memoEntry is the value half of a memo record: the best score found for a
// pair of views, plus the two aligned output embeddings that achieve it.
type memoEntry struct {
	score float64
	out1  Sequence
	out2  Sequence
}

// pairKey is the memo key: an ordered pair of view identities. Two equal-
// content views from different buffers never collide here, by construction
// of viewIdentity.
type pairKey struct {
	s1, s2 viewIdentity
}

// engine owns the decomposition cache and memo table for exactly one
// Compute call. It is never shared or reused across calls.
type engine struct {
	alphabet *Alphabet
	affinity AffinityFunc
	decomp   *decompositionCache
	memo     map[pairKey]memoEntry

	maxMemoEntries int
	maxDepth       int
}

func newEngine(alphabet *Alphabet, affinity AffinityFunc, opts Options) *engine {
	return &engine{
		alphabet:       alphabet,
		affinity:       affinity,
		decomp:         newDecompositionCache(alphabet),
		memo:           make(map[pairKey]memoEntry),
		maxMemoEntries: opts.MaxMemoEntries,
		maxDepth:       opts.MaxDepth,
	}
}

var emptySequence = Sequence{}

// solve implements the lcse(S1, S2) recursion of the spec: base case on
// either view empty, memo check, then the three-candidate max-selection
// (drop S1's root, drop S2's root, match both roots), evaluated in that
// order with strict '>' against the incumbent so earlier candidates win
// ties.
func (e *engine) solve(s1, s2 Sequence, depth int) (memoEntry, error) {
	if s1.Len() == 0 || s2.Len() == 0 {
		return memoEntry{score: 0, out1: emptySequence, out2: emptySequence}, nil
	}

	if e.maxDepth > 0 && depth > e.maxDepth {
		return memoEntry{}, &resourceError{Reason: "recursion depth exceeded MaxDepth"}
	}

	key := pairKey{s1: s1.identity(), s2: s2.identity()}
	if entry, ok := e.memo[key]; ok {
		return entry, nil
	}

	d1, err := e.decomp.decompose(s1)
	if err != nil {
		return memoEntry{}, err
	}
	d2, err := e.decomp.decompose(s2)
	if err != nil {
		return memoEntry{}, err
	}

	best, err := e.solve(d1.headTail, s2, depth+1)
	if err != nil {
		return memoEntry{}, err
	}

	cand2, err := e.solve(s1, d2.headTail, depth+1)
	if err != nil {
		return memoEntry{}, err
	}
	if cand2.score > best.score {
		best = cand2
	}

	a := e.affinity(d1.a, d2.a)
	if a > 0 {
		vh, err := e.solve(d1.head, d2.head, depth+1)
		if err != nil {
			return memoEntry{}, err
		}
		vt, err := e.solve(d1.tail, d2.tail, depth+1)
		if err != nil {
			return memoEntry{}, err
		}

		cand3Score := a + vh.score + vt.score
		if cand3Score > best.score {
			out1 := joinRootPair(d1.a, d1.b, vh.out1, vt.out1)
			out2 := joinRootPair(d2.a, d2.b, vh.out2, vt.out2)
			best = memoEntry{score: cand3Score, out1: out1, out2: out2}
		}
	}

	if e.maxMemoEntries > 0 && len(e.memo) >= e.maxMemoEntries {
		return memoEntry{}, &resourceError{Reason: "memo size exceeded MaxMemoEntries"}
	}
	e.memo[key] = best

	return best, nil
}

// joinRootPair builds [a] ⊕ h ⊕ [b] ⊕ t as a single fresh owned buffer.
func joinRootPair(a, b Token, h, t Sequence) Sequence {
	out := make([]Token, 0, 2+h.Len()+t.Len())
	out = append(out, a)
	out = append(out, h.ToSlice()...)
	out = append(out, b)
	out = append(out, t.ToSlice()...)
	return newSequence(out)
}
