package plan

//go:generate go tool stringer -type=PayloadKind,Derive -linecomment -output=kind_string.go

// PayloadKind classifies how a variant's payload is stored in the word.
type PayloadKind int

const (
	_ PayloadKind = iota // skip zero value, use it as a default (invalid) value for PayloadKind

	KindScalar // scalar
	KindUnit   // unit
	KindBox    // box
	KindOption // option
	KindCustom // custom
)

// Derive is one structural behavior an enum can ask for.
type Derive int

const (
	DeriveDebug Derive = iota // debug
	DeriveClone               // clone
	DeriveEqual               // equal

	deriveTotal = int(iota)
)

// DeriveSet is a set of Derive values.
type DeriveSet uint8

// Add returns the set with d added.
func (s DeriveSet) Add(d Derive) DeriveSet {
	return s | 1<<d
}

// Has reports whether d is in the set.
func (s DeriveSet) Has(d Derive) bool {
	return s&(1<<d) != 0
}

// List returns the derives in the set in declaration order.
func (s DeriveSet) List() []Derive {
	var out []Derive

	for d := Derive(0); int(d) < deriveTotal; d++ {
		if s.Has(d) {
			out = append(out, d)
		}
	}

	return out
}

// ParseDerive maps a declaration derive name to its Derive.
func ParseDerive(name string) (Derive, bool) {
	for d := Derive(0); int(d) < deriveTotal; d++ {
		if d.String() == name {
			return d, true
		}
	}

	return 0, false
}
