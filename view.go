package lcse

import "sync/atomic"

// bufferSeq mints stable identities for token buffers, the same role
// core.Graph.nextEdgeID plays for edge IDs: a monotonic counter so two
// buffers never collide even when allocated from concurrent call paths.
var bufferSeq uint64

// tokenBuffer is an immutable backing array for one or more Sequence views.
// Its id is what gives two views with identical content but different
// provenance distinct memo identities.
type tokenBuffer struct {
	id     uint64
	tokens []Token
}

func newTokenBuffer(tokens []Token) *tokenBuffer {
	return &tokenBuffer{id: atomic.AddUint64(&bufferSeq, 1), tokens: tokens}
}

// Sequence is a borrowed, non-owning window over an immutable tokenBuffer:
// a pointer plus an offset and a length. Sequences are cheap to copy and
// never mutate the underlying buffer.
type Sequence struct {
	buf    *tokenBuffer
	start  int
	length int
}

// newSequence wraps an entire token slice as a fresh, owned buffer.
func newSequence(tokens []Token) Sequence {
	return Sequence{buf: newTokenBuffer(tokens), start: 0, length: len(tokens)}
}

// Len returns the number of tokens in the view.
func (s Sequence) Len() int { return s.length }

// At returns the token at offset i within the view, 0 <= i < s.Len().
func (s Sequence) At(i int) Token {
	return s.buf.tokens[s.start+i]
}

// Slice returns a sub-view [i,j) over the same backing buffer.
func (s Sequence) Slice(i, j int) Sequence {
	return Sequence{buf: s.buf, start: s.start + i, length: j - i}
}

// ToSlice materializes the view into a freshly owned []Token, safe for the
// caller to retain past the lifetime of this package's caches.
func (s Sequence) ToSlice() []Token {
	out := make([]Token, s.length)
	if s.length > 0 {
		copy(out, s.buf.tokens[s.start:s.start+s.length])
	}
	return out
}

// viewIdentity is the memoization key for a Sequence: it compares by
// (buffer identity, offset, length), never by content, per the package's
// identity-not-content memo rule.
type viewIdentity struct {
	bufID  uint64
	start  int
	length int
}

func (s Sequence) identity() viewIdentity {
	return viewIdentity{bufID: s.buf.id, start: s.start, length: s.length}
}

// concat materializes a fresh, owned buffer holding head's tokens followed
// by tail's tokens. Used to build the head⊕tail view of a decomposition.
func concat(head, tail Sequence) Sequence {
	out := make([]Token, head.length+tail.length)
	copy(out, head.buf.tokens[head.start:head.start+head.length])
	copy(out[head.length:], tail.buf.tokens[tail.start:tail.start+tail.length])
	return newSequence(out)
}
