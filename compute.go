package lcse

// Result is the outcome of a Compute call: the optimal affinity score and
// the two aligned, balanced output embeddings that achieve it. Out1 is an
// embedding (subsequence) of buf1; Out2 is an embedding of buf2. They have
// equal length and are token-aligned open-for-open.
type Result struct {
	Score float64
	Out1  []Token
	Out2  []Token
}

// Compute finds the Longest Common balanced Subsequence Embedding between
// buf1 and buf2 under the given pairing and Options.
//
// buf1, buf2 must each be balanced with respect to pairs; every token
// they contain must be a key or a value of pairs. Errors are one of
// ErrInvalidAlphabet, ErrUnknownToken, ErrUnbalanced, ErrInvalidOptions, or
// ErrResourceExhausted; there is no partial success.
func Compute(buf1, buf2 []Token, pairs map[Token]Token, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}

	alphabet, err := NewAlphabet(pairs)
	if err != nil {
		return Result{}, err
	}
	if err := alphabet.Validate(buf1); err != nil {
		return Result{}, err
	}
	if err := alphabet.Validate(buf2); err != nil {
		return Result{}, err
	}

	affinity, err := opts.Affinity.resolve(opts.CustomAffinity)
	if err != nil {
		return Result{}, err
	}

	s1 := newSequence(append([]Token(nil), buf1...))
	s2 := newSequence(append([]Token(nil), buf2...))

	e := newEngine(alphabet, affinity, opts)
	entry, err := e.solve(s1, s2, 0)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Score: entry.score,
		Out1:  entry.out1.ToSlice(),
		Out2:  entry.out2.ToSlice(),
	}, nil
}
