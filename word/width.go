package word

// Width fixes the number of tag bits of a Word. Implementations are
// zero-size types; the method must return a constant between 1 and 16.
type Width interface {
	Bits() uint
}

// Predefined tag widths.
type (
	Bits1  struct{}
	Bits2  struct{}
	Bits3  struct{}
	Bits4  struct{}
	Bits5  struct{}
	Bits6  struct{}
	Bits7  struct{}
	Bits8  struct{}
	Bits9  struct{}
	Bits10 struct{}
	Bits11 struct{}
	Bits12 struct{}
	Bits13 struct{}
	Bits14 struct{}
	Bits15 struct{}
	Bits16 struct{}
)

func (Bits1) Bits() uint { return 1 }
func (Bits2) Bits() uint { return 2 }
func (Bits3) Bits() uint { return 3 }
func (Bits4) Bits() uint { return 4 }
func (Bits5) Bits() uint { return 5 }
func (Bits6) Bits() uint { return 6 }
func (Bits7) Bits() uint { return 7 }
func (Bits8) Bits() uint { return 8 }
func (Bits9) Bits() uint { return 9 }
func (Bits10) Bits() uint { return 10 }
func (Bits11) Bits() uint { return 11 }
func (Bits12) Bits() uint { return 12 }
func (Bits13) Bits() uint { return 13 }
func (Bits14) Bits() uint { return 14 }
func (Bits15) Bits() uint { return 15 }
func (Bits16) Bits() uint { return 16 }

// MaxBits is the widest supported tag region.
const MaxBits = 16

func tagBits[W Width]() uint {
	var w W
	return w.Bits()
}

func shift[W Width]() uint {
	return wordBits - tagBits[W]()
}

// MaxTag returns the largest tag that fits in W.
func MaxTag[W Width]() Tag {
	return Tag(uint64(1)<<tagBits[W]() - 1)
}

// PayloadBits returns the number of low bits available to the payload.
func PayloadBits[W Width]() uint {
	return shift[W]()
}
