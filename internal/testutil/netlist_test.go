package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azidar/yosys/internal/rtl"
)

func TestDupPairDesign_Shape(t *testing.T) {
	d := DupPairDesign("top")
	m := d.Module("top")
	require.NotNil(t, m)
	require.NoError(t, d.Check())

	assert.Equal(t, 2, m.CellCount())
	gold := m.Cell("g_gold")
	gate := m.Cell("g_gate")
	require.NotNil(t, gold)
	require.NotNil(t, gate)

	// Same type and inputs, distinct outputs.
	assert.Equal(t, gold.Type, gate.Type)
	goldA, _ := gold.PortSig("A")
	gateA, _ := gate.PortSig("A")
	assert.True(t, goldA.Equal(gateA))
	goldY, _ := gold.PortSig("Y")
	gateY, _ := gate.PortSig("Y")
	assert.False(t, goldY.Equal(gateY))
}

func TestMiterDesign_Shape(t *testing.T) {
	d := MiterDesign("top")
	m := d.Module("top")
	require.NotNil(t, m)
	require.NoError(t, d.Check())

	assert.Equal(t, 3, m.CellCount())
	eq := m.Cell("e_out")
	require.NotNil(t, eq)
	assert.Equal(t, rtl.EquivType, eq.Type)

	a, ok := eq.PortBit(rtl.EquivPortA)
	require.True(t, ok)
	b, ok := eq.PortBit(rtl.EquivPortB)
	require.True(t, ok)
	goldY, _ := m.Cell("c_gold").PortSig("Y")
	gateY, _ := m.Cell("c_gate").PortSig("Y")
	assert.Equal(t, goldY[0], a)
	assert.Equal(t, gateY[0], b)
}
