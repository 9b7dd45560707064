package sudoku

// Mask81 is an 81-bit set of cells, used to represent unavoidable sets (see
// the Sieve interface) and the board-level Mask/EmptyMask. Cell ci maps to
// bit (80-ci), per the package-wide big-endian convention: the top row
// occupies the high bits. 81 bits exceed a machine word, so the mask is
// split across two uint64 halves rather than reached for math/big -- the
// set operations below are plain bitwise ops and never need arbitrary
// precision.
type Mask81 struct {
	lo uint64 // bits 0..63
	hi uint64 // bits 64..80 (low 17 bits used)
}

// full81Mask has every one of the 81 cell bits set.
var full81Mask = Mask81{lo: ^uint64(0), hi: (1 << 17) - 1}

// Set marks bit pos (0..80) as present.
func (m *Mask81) Set(pos int) {
	if pos < 64 {
		m.lo |= 1 << uint(pos)
	} else {
		m.hi |= 1 << uint(pos-64)
	}
}

// Clear removes bit pos (0..80).
func (m *Mask81) Clear(pos int) {
	if pos < 64 {
		m.lo &^= 1 << uint(pos)
	} else {
		m.hi &^= 1 << uint(pos-64)
	}
}

// Test reports whether bit pos (0..80) is set.
func (m Mask81) Test(pos int) bool {
	if pos < 64 {
		return m.lo&(1<<uint(pos)) != 0
	}
	return m.hi&(1<<uint(pos-64)) != 0
}

// And returns the bitwise AND of m and other.
func (m Mask81) And(other Mask81) Mask81 {
	return Mask81{lo: m.lo & other.lo, hi: m.hi & other.hi}
}

// Or returns the bitwise OR of m and other.
func (m Mask81) Or(other Mask81) Mask81 {
	return Mask81{lo: m.lo | other.lo, hi: m.hi | other.hi}
}

// AndNot returns m with every bit set in other cleared.
func (m Mask81) AndNot(other Mask81) Mask81 {
	return Mask81{lo: m.lo &^ other.lo, hi: m.hi &^ other.hi}
}

// IsZero reports whether no bit is set.
func (m Mask81) IsZero() bool {
	return m.lo == 0 && m.hi == 0
}

// Equal reports whether m and other have the same bits set.
func (m Mask81) Equal(other Mask81) bool {
	return m.lo == other.lo && m.hi == other.hi
}

// PopCount returns the number of set bits.
func (m Mask81) PopCount() int {
	return popcount64(m.lo) + popcount64(m.hi)
}

// Bits returns the sorted list of set bit positions (0..80).
func (m Mask81) Bits() []int {
	var out []int
	for pos := 0; pos < 81; pos++ {
		if m.Test(pos) {
			out = append(out, pos)
		}
	}
	return out
}

// MaskFromCells builds a Mask81 with bit (80-ci) set for every cell index in
// cells.
func MaskFromCells(cells ...Index) Mask81 {
	var m Mask81
	for _, ci := range cells {
		m.Set(80 - ci)
	}
	return m
}

func popcount64(x uint64) int {
	count := 0
	for x != 0 {
		x &= x - 1
		count++
	}
	return count
}

// Sieve is the external collaborator this package consumes: an ordered
// collection of unavoidable-set masks for some fully-solved configuration.
// The sieve producer (populateSieve/searchForSieve2 in the originating
// system) is out of scope here; this package only reads a prebuilt Sieve.
type Sieve interface {
	// Items returns the unavoidable-set masks currently held.
	Items() []Mask81
	// Length returns len(Items()).
	Length() int
	// Add appends items to the sieve.
	Add(items ...Mask81)
	// RemoveOverlapping removes and returns every item that shares a set bit
	// with mask.
	RemoveOverlapping(mask Mask81) []Mask81
	// First returns the first item, or the zero Mask81 if empty.
	First() Mask81
	// GenerateMaskCells proposes a minimal keep-cell list intersecting every
	// item, as a (possibly faster) alternative to cellsToKeepFromSieve.
	GenerateMaskCells() []Index
	// Config returns the configuration this sieve is keyed to.
	Config() *Board
}

// BasicSieve is a minimal slice-backed Sieve implementation, suitable for
// tests and for callers that already have a list of unavoidable-set masks
// computed by an external producer.
type BasicSieve struct {
	items  []Mask81
	config *Board
}

// NewBasicSieve builds a Sieve over config holding the given unavoidable-set
// masks.
func NewBasicSieve(config *Board, items ...Mask81) *BasicSieve {
	return &BasicSieve{items: append([]Mask81(nil), items...), config: config}
}

func (s *BasicSieve) Items() []Mask81 { return s.items }
func (s *BasicSieve) Length() int     { return len(s.items) }
func (s *BasicSieve) Add(items ...Mask81) {
	s.items = append(s.items, items...)
}

func (s *BasicSieve) RemoveOverlapping(mask Mask81) []Mask81 {
	var removed, kept []Mask81
	for _, m := range s.items {
		if !m.And(mask).IsZero() {
			removed = append(removed, m)
		} else {
			kept = append(kept, m)
		}
	}
	s.items = kept
	return removed
}

func (s *BasicSieve) First() Mask81 {
	if len(s.items) == 0 {
		return Mask81{}
	}
	return s.items[0]
}

func (s *BasicSieve) GenerateMaskCells() []Index {
	return cellsToKeepFromSieve(s.config, s, newRng(0))
}

func (s *BasicSieve) Config() *Board { return s.config }

// cellsToKeepFromSieve returns a minimal list of cell indices that
// intersects every item in sieve, via greedy max-cover (spec §4.4): at each
// round, the cell that is a member of the most remaining unavoidable sets is
// picked (ties broken uniformly at random via rng), appended to the result,
// and every set it belongs to is dropped from further consideration.
func cellsToKeepFromSieve(config *Board, sieve Sieve, rng *Rng) []Index {
	_ = config // config fixes which cells exist; geometry is board-size-independent here
	working := append([]Mask81(nil), sieve.Items()...)

	var result []Index
	for len(working) > 0 {
		var tally [81]int
		for _, m := range working {
			for _, pos := range m.Bits() {
				tally[80-pos]++
			}
		}

		max := 0
		for _, c := range tally {
			if c > max {
				max = c
			}
		}
		if max == 0 {
			break
		}

		var tied []Index
		for ci, c := range tally {
			if c == max {
				tied = append(tied, ci)
			}
		}
		pick := tied[rng.Intn(len(tied))]
		result = append(result, pick)

		bitpos := 80 - pick
		var remaining []Mask81
		for _, m := range working {
			if !m.Test(bitpos) {
				remaining = append(remaining, m)
			}
		}
		working = remaining
	}
	return result
}
