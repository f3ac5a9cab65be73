package bigint

// Tristate is the outcome of a comparison. Comparisons involving an
// empty operand are Undefined: comparing an undefined value is
// meaningless, which is deliberately distinct from False.
type Tristate uint8

const (
	// False means the compared relation does not hold.
	False Tristate = iota
	// True means the compared relation holds.
	True
	// Undefined means at least one operand was empty and the relation
	// is not meaningful.
	Undefined
)

// String returns the name of the tristate value.
func (t Tristate) String() string {
	switch t {
	case False:
		return "false"
	case True:
		return "true"
	case Undefined:
		return "undefined"
	default:
		return "invalid"
	}
}

// tristate converts a Go bool into the corresponding Tristate.
func tristate(b bool) Tristate {
	if b {
		return True
	}
	return False
}
