package lcse

// Token is an abstract alphabet symbol. Concretely a small integer; callers
// are free to treat raw bytes as Tokens via a simple widening conversion.
type Token int32

// Alphabet represents the open→close pairing of a balanced-sequence
// alphabet and the open/close partition it induces.
//
// Construct with NewAlphabet; the zero value is not usable.
type Alphabet struct {
	closeOf map[Token]Token
	isClose map[Token]struct{}
}

// NewAlphabet builds an Alphabet from a finite open→close map.
//
// Rejects (ErrInvalidAlphabet):
//   - two distinct opens mapping to the same close (non-injective),
//   - any token that appears as both an open (a key) and a close (a value).
func NewAlphabet(pairs map[Token]Token) (*Alphabet, error) {
	closeOf := make(map[Token]Token, len(pairs))
	isClose := make(map[Token]struct{}, len(pairs))

	seenClose := make(map[Token]struct{}, len(pairs))
	for open, close := range pairs {
		if _, dup := seenClose[close]; dup {
			return nil, ErrInvalidAlphabet
		}
		seenClose[close] = struct{}{}

		closeOf[open] = close
		isClose[close] = struct{}{}
	}

	for open := range closeOf {
		if _, both := isClose[open]; both {
			return nil, ErrInvalidAlphabet
		}
	}

	return &Alphabet{closeOf: closeOf, isClose: isClose}, nil
}

// IsOpen reports whether t is an open token of this alphabet.
func (a *Alphabet) IsOpen(t Token) bool {
	_, ok := a.closeOf[t]
	return ok
}

// IsClose reports whether t is a close token of this alphabet.
func (a *Alphabet) IsClose(t Token) bool {
	_, ok := a.isClose[t]
	return ok
}

// CloseOf returns the close token paired with open, and false if open is not
// a known open token.
func (a *Alphabet) CloseOf(open Token) (Token, bool) {
	c, ok := a.closeOf[open]
	return c, ok
}

// Validate reports ErrUnknownToken (with the offending offset) for the
// first token in buf that is neither an open nor a close of a.
func (a *Alphabet) Validate(buf []Token) error {
	for i, t := range buf {
		if !a.IsOpen(t) && !a.IsClose(t) {
			return &unknownTokenError{Token: t, Offset: i}
		}
	}
	return nil
}
