package rtl

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Bit identifies a single bit of a named wire. The zero Index addresses the
// least significant bit. Bit is comparable and safe to use as a map key.
type Bit struct {
	Wire  string
	Index int
}

// String renders the bit as "wire[index]".
func (b Bit) String() string {
	return fmt.Sprintf("%s[%d]", b.Wire, b.Index)
}

// Sig is an ordered sequence of bits, LSB first. A Sig is a value: callers
// own their copies and may share underlying storage only when neither side
// mutates elements in place.
type Sig []Bit

// String renders the signal bit-by-bit, braced when wider than one bit.
func (s Sig) String() string {
	if len(s) == 1 {
		return s[0].String()
	}
	parts := make([]string, len(s))
	for i, b := range s {
		parts[i] = b.String()
	}
	return "{ " + strings.Join(parts, " ") + " }"
}

// Equal reports whether two signals have identical bits in identical order.
func (s Sig) Equal(t Sig) bool {
	if len(s) != len(t) {
		return false
	}
	for i := range s {
		if s[i] != t[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the signal.
func (s Sig) Clone() Sig {
	if s == nil {
		return nil
	}
	out := make(Sig, len(s))
	copy(out, s)
	return out
}

// nameRe matches legal wire and cell identifiers. Yosys-style generated
// names ("$auto$equiv$3") are covered by allowing '$' and '.' anywhere.
var nameRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$.]*$`)

// ValidName reports whether s is acceptable as a wire, cell or module name.
// Square brackets are excluded so that "w[3]" bit tokens stay unambiguous.
func ValidName(s string) bool {
	return nameRe.MatchString(s)
}

// parseBitToken splits a "wire[index]" token. The second return is false for
// plain "wire" tokens, which address the whole wire.
func parseBitToken(tok string) (wire string, index int, indexed bool, err error) {
	open := strings.IndexByte(tok, '[')
	if open < 0 {
		if !ValidName(tok) {
			return "", 0, false, fmt.Errorf("invalid signal token %q", tok)
		}
		return tok, 0, false, nil
	}
	if !strings.HasSuffix(tok, "]") {
		return "", 0, false, fmt.Errorf("invalid signal token %q: missing ']'", tok)
	}
	wire = tok[:open]
	if !ValidName(wire) {
		return "", 0, false, fmt.Errorf("invalid signal token %q", tok)
	}
	idx, convErr := strconv.Atoi(tok[open+1 : len(tok)-1])
	if convErr != nil || idx < 0 {
		return "", 0, false, fmt.Errorf("invalid bit index in signal token %q", tok)
	}
	return wire, idx, true, nil
}
