package loader

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/azidar/yosys/internal/canon"
	"github.com/azidar/yosys/internal/rtl"
)

// documentDomain separates netlist document digests from fingerprint
// digests and anything else hashed in this codebase.
const documentDomain = "equiv/netlist/v1"

// SourceDigest returns the content digest of raw document bytes, recorded
// alongside sweep runs so results stay traceable to their input.
func SourceDigest(raw []byte) string {
	return canon.DigestBytes(documentDomain, raw)
}

// Save serializes a design as a netlist document. Output is deterministic:
// wires, cells, params, ports and attributes in sorted order, connects in
// recorded order. Load(Save(d)) rebuilds a design that dumps identically.
func Save(d *rtl.Design) ([]byte, error) {
	doc := designDoc{Modules: make(map[string]moduleDoc, len(d.ModuleNames()))}
	for _, name := range d.ModuleNames() {
		doc.Modules[name] = moduleToDoc(d.Module(name))
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return nil, fmt.Errorf("failed to encode netlist document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish netlist document: %w", err)
	}
	return buf.Bytes(), nil
}

// SaveFile writes the serialized design to disk.
func SaveFile(path string, d *rtl.Design) error {
	data, err := Save(d)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write netlist file: %w", err)
	}
	return nil
}

func moduleToDoc(m *rtl.Module) moduleDoc {
	var md moduleDoc
	for _, wn := range m.WireNames() {
		w := m.Wire(wn)
		md.Wires = append(md.Wires, wireDoc{Name: w.Name, Width: w.Width})
	}
	for _, cn := range m.CellNames() {
		c := m.Cell(cn)
		cd := cellDoc{Name: c.Name, Type: c.Type}
		if len(c.Params) > 0 {
			cd.Params = make(map[string]string, len(c.Params))
			for k, v := range c.Params {
				cd.Params[k] = v
			}
		}
		if names := c.PortNames(); len(names) > 0 {
			cd.Ports = make(map[string]portDoc, len(names))
			for _, pn := range names {
				dir, _ := c.PortDir(pn)
				sig, _ := c.PortSig(pn)
				tokens := m.SigTokens(sig)
				if tokens == nil {
					tokens = []string{}
				}
				cd.Ports[pn] = portDoc{Dir: dir.String(), Bits: tokens}
			}
		}
		if names := c.AttrNames(); len(names) > 0 {
			cd.Attrs = make(map[string][]string, len(names))
			for _, an := range names {
				vals := c.StrPoolAttr(an).ToSlice()
				sort.Strings(vals)
				cd.Attrs[an] = vals
			}
		}
		md.Cells = append(md.Cells, cd)
	}
	for _, pair := range m.Connections() {
		md.Connects = append(md.Connects, connectDoc{
			LHS: m.SigTokens(pair[0]),
			RHS: m.SigTokens(pair[1]),
		})
	}
	return md
}
