package slider

// Store is the ownership mode of a controller's value pair. It is either
// Owned (the engine keeps the authoritative pair) or Reflected (the host owns
// it and pushes it in). The set of implementations is closed.
type Store interface {
	// Current returns the authoritative pair.
	Current() Pair
	// accept is called with a candidate that passed the interaction pipeline.
	accept(p Pair)
	// sync replaces the reflected pair; it reports false for owned stores.
	sync(p Pair) bool
}

// Owned is the uncontrolled store: accepted candidates are retained.
type Owned struct {
	pair Pair
}

// Current implements Store.
func (s *Owned) Current() Pair { return s.pair }

func (s *Owned) accept(p Pair) { s.pair = p }

func (s *Owned) sync(Pair) bool { return false }

// Reflected is the controlled store: it mirrors the pair last pushed by the
// host and never retains a candidate on its own.
type Reflected struct {
	pair Pair
}

// Current implements Store.
func (s *Reflected) Current() Pair { return s.pair }

func (s *Reflected) accept(Pair) {}

func (s *Reflected) sync(p Pair) bool {
	if s.pair == p {
		return false
	}
	s.pair = p
	return true
}

var (
	_ Store = (*Owned)(nil)
	_ Store = (*Reflected)(nil)
)
