package store

import "strings"

// RunFilter narrows a run listing. The zero value selects every run. All
// fields are exact matches; combining fields conjoins them.
type RunFilter struct {
	// Module keeps only runs of this module.
	Module string

	// Netlist keeps only runs recorded against this document path.
	Netlist string

	// NetlistDigest keeps only runs of documents with this content digest.
	NetlistDigest string

	// Limit caps the number of returned runs. Zero or negative means all.
	Limit int
}

// compile renders the filter as the SQL suffix after the FROM clause.
// Values are always bound as parameters, never interpolated, and every
// query carries the same deterministic ORDER BY: newest run first, the id
// breaking started_at ties bytewise.
func (f RunFilter) compile() (string, []any) {
	var preds []string
	var params []any

	if f.Module != "" {
		preds = append(preds, "module = ?")
		params = append(params, f.Module)
	}
	if f.Netlist != "" {
		preds = append(preds, "netlist = ?")
		params = append(params, f.Netlist)
	}
	if f.NetlistDigest != "" {
		preds = append(preds, "netlist_digest = ?")
		params = append(params, f.NetlistDigest)
	}

	var b strings.Builder
	if len(preds) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(preds, " AND "))
	}
	b.WriteString(" ORDER BY started_at DESC, id COLLATE BINARY ASC")
	if f.Limit > 0 {
		b.WriteString(" LIMIT ?")
		params = append(params, f.Limit)
	}

	return b.String(), params
}
