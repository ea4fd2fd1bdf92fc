package rtl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitString(t *testing.T) {
	assert.Equal(t, "a[0]", Bit{Wire: "a", Index: 0}.String())
	assert.Equal(t, "data[7]", Bit{Wire: "data", Index: 7}.String())
}

func TestSigString_SingleBit(t *testing.T) {
	s := Sig{{Wire: "a", Index: 0}}
	assert.Equal(t, "a[0]", s.String())
}

func TestSigString_MultiBit(t *testing.T) {
	s := Sig{{Wire: "a", Index: 0}, {Wire: "b", Index: 3}}
	assert.Equal(t, "{ a[0] b[3] }", s.String())
}

func TestSigEqual(t *testing.T) {
	a := Sig{{Wire: "x", Index: 0}, {Wire: "x", Index: 1}}
	b := Sig{{Wire: "x", Index: 0}, {Wire: "x", Index: 1}}
	c := Sig{{Wire: "x", Index: 1}, {Wire: "x", Index: 0}}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c), "bit order matters")
	assert.False(t, a.Equal(a[:1]), "length matters")
	assert.True(t, Sig{}.Equal(nil), "empty and nil signals are equal")
}

func TestSigClone_Independent(t *testing.T) {
	orig := Sig{{Wire: "x", Index: 0}, {Wire: "x", Index: 1}}
	clone := orig.Clone()

	clone[0] = Bit{Wire: "y", Index: 5}

	assert.Equal(t, Bit{Wire: "x", Index: 0}, orig[0], "mutating the clone must not touch the original")
}

func TestSigClone_Nil(t *testing.T) {
	var s Sig
	assert.Nil(t, s.Clone())
}

func TestValidName(t *testing.T) {
	valid := []string{"a", "_x", "w1", "$and", "$auto$merge$1", "a.b.c", "alu_gold", "$_NOT_"}
	for _, name := range valid {
		assert.True(t, ValidName(name), "expected %q to be a valid name", name)
	}

	invalid := []string{"", "1a", "w[3]", "a b", "a-b", "café", "(y)"}
	for _, name := range invalid {
		assert.False(t, ValidName(name), "expected %q to be rejected", name)
	}
}

func TestParseBitToken_WholeWire(t *testing.T) {
	wire, idx, indexed, err := parseBitToken("data")
	require.NoError(t, err)
	assert.Equal(t, "data", wire)
	assert.Equal(t, 0, idx)
	assert.False(t, indexed)
}

func TestParseBitToken_Indexed(t *testing.T) {
	wire, idx, indexed, err := parseBitToken("data[3]")
	require.NoError(t, err)
	assert.Equal(t, "data", wire)
	assert.Equal(t, 3, idx)
	assert.True(t, indexed)
}

func TestParseBitToken_GeneratedName(t *testing.T) {
	wire, idx, indexed, err := parseBitToken("$auto$merge$2[0]")
	require.NoError(t, err)
	assert.Equal(t, "$auto$merge$2", wire)
	assert.Equal(t, 0, idx)
	assert.True(t, indexed)
}

func TestParseBitToken_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"leading digit", "1w"},
		{"missing close bracket", "w[3"},
		{"trailing garbage", "w[3]x"},
		{"empty index", "w[]"},
		{"non-numeric index", "w[x]"},
		{"negative index", "w[-1]"},
		{"missing wire", "[3]"},
		{"double index", "w[1][2]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := parseBitToken(tt.token)
			assert.Error(t, err)
		})
	}
}
