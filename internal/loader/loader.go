package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
	"gopkg.in/yaml.v3"

	"github.com/azidar/yosys/internal/rtl"
)

// designDoc mirrors the on-disk layout of a netlist document.
type designDoc struct {
	Modules map[string]moduleDoc `yaml:"modules" json:"modules"`
}

type moduleDoc struct {
	Wires    []wireDoc    `yaml:"wires,omitempty" json:"wires,omitempty"`
	Cells    []cellDoc    `yaml:"cells,omitempty" json:"cells,omitempty"`
	Connects []connectDoc `yaml:"connects,omitempty" json:"connects,omitempty"`
}

type wireDoc struct {
	Name  string `yaml:"name" json:"name"`
	Width int    `yaml:"width" json:"width"`
}

type cellDoc struct {
	Name   string              `yaml:"name" json:"name"`
	Type   string              `yaml:"type" json:"type"`
	Params map[string]string   `yaml:"params,omitempty" json:"params,omitempty"`
	Ports  map[string]portDoc  `yaml:"ports,omitempty" json:"ports,omitempty"`
	Attrs  map[string][]string `yaml:"attrs,omitempty" json:"attrs,omitempty"`
}

type portDoc struct {
	Dir  string   `yaml:"dir" json:"dir"`
	Bits []string `yaml:"bits" json:"bits"`
}

type connectDoc struct {
	LHS []string `yaml:"lhs" json:"lhs"`
	RHS []string `yaml:"rhs" json:"rhs"`
}

// Load parses, validates and builds a design from document bytes.
func Load(data []byte) (*rtl.Design, error) {
	doc, err := decode(data)
	if err != nil {
		return nil, err
	}

	v, err := NewValidator()
	if err != nil {
		return nil, err
	}
	if err := v.Validate(doc); err != nil {
		return nil, err
	}

	d, err := buildDesign(doc)
	if err != nil {
		return nil, err
	}
	if err := d.Check(); err != nil {
		return nil, fmt.Errorf("netlist failed integrity check: %w", err)
	}
	return d, nil
}

// LoadFile reads and loads a netlist document from disk.
func LoadFile(path string) (*rtl.Design, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read netlist file: %w", err)
	}
	d, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

func decode(data []byte) (*designDoc, error) {
	var doc designDoc
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true) // reject unknown fields
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("netlist document is empty")
		}
		return nil, fmt.Errorf("failed to parse netlist document: %w", err)
	}
	return &doc, nil
}

func buildDesign(doc *designDoc) (*rtl.Design, error) {
	d := rtl.NewDesign()
	for _, name := range sortedKeys(doc.Modules) {
		m := d.AddModule(name)
		if err := buildModule(m, doc.Modules[name]); err != nil {
			return nil, fmt.Errorf("module %s: %w", name, err)
		}
	}
	return d, nil
}

func buildModule(m *rtl.Module, doc moduleDoc) error {
	for _, w := range doc.Wires {
		if m.Wire(w.Name) != nil {
			return fmt.Errorf("duplicate wire %s", w.Name)
		}
		m.AddWire(w.Name, w.Width)
	}

	for _, c := range doc.Cells {
		if m.Cell(c.Name) != nil {
			return fmt.Errorf("duplicate cell %s", c.Name)
		}
		cell := m.AddCell(c.Name, c.Type)
		for _, p := range sortedKeys(c.Params) {
			cell.SetParam(p, c.Params[p])
		}
		for _, p := range sortedKeys(c.Ports) {
			pd := c.Ports[p]
			dir, err := rtl.ParseDir(pd.Dir)
			if err != nil {
				return fmt.Errorf("cell %s port %s: %w", c.Name, p, err)
			}
			sig, err := m.SigFromTokens(pd.Bits)
			if err != nil {
				return fmt.Errorf("cell %s port %s: %w", c.Name, p, err)
			}
			cell.AddPort(p, dir, sig)
		}
		for _, a := range sortedKeys(c.Attrs) {
			cell.AddStrPoolAttr(a, mapset.NewSet(c.Attrs[a]...))
		}
	}

	for i, cn := range doc.Connects {
		lhs, err := m.SigFromTokens(cn.LHS)
		if err != nil {
			return fmt.Errorf("connect %d lhs: %w", i, err)
		}
		rhs, err := m.SigFromTokens(cn.RHS)
		if err != nil {
			return fmt.Errorf("connect %d rhs: %w", i, err)
		}
		if len(lhs) != len(rhs) {
			return fmt.Errorf("connect %d: lhs has %d bits, rhs has %d", i, len(lhs), len(rhs))
		}
		m.Connect(lhs, rhs)
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
