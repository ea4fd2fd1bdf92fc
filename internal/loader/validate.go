package loader

import (
	"embed"
	"encoding/json"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

//go:embed netlist.cue
var schemaFS embed.FS

// Validator checks decoded netlist documents against the embedded CUE
// schema. It catches shape errors the YAML decoder cannot express: bad
// identifiers, bad directions, missing or non-positive widths.
type Validator struct {
	ctx    *cue.Context
	schema cue.Value
}

// NewValidator compiles the embedded schema.
func NewValidator() (*Validator, error) {
	ctx := cuecontext.New()

	schemaBytes, err := schemaFS.ReadFile("netlist.cue")
	if err != nil {
		return nil, fmt.Errorf("loading embedded schema: %w", err)
	}

	schema := ctx.CompileBytes(schemaBytes)
	if schema.Err() != nil {
		return nil, fmt.Errorf("compiling schema: %w", schema.Err())
	}

	return &Validator{ctx: ctx, schema: schema}, nil
}

// Validate checks that the document conforms to the #Design definition.
// Returns nil if valid, or an error explaining what failed.
func (v *Validator) Validate(doc any) error {
	jsonBytes, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling document to JSON: %w", err)
	}

	dataValue := v.ctx.CompileBytes(jsonBytes)
	if dataValue.Err() != nil {
		return fmt.Errorf("compiling document as CUE: %w", dataValue.Err())
	}

	def := v.schema.LookupPath(cue.ParsePath("#Design"))
	if def.Err() != nil {
		return fmt.Errorf("looking up #Design definition: %w", def.Err())
	}

	unified := def.Unify(dataValue)
	// Concrete validation enforces the schema's required fields; without it
	// a document missing a width or a dir would unify cleanly.
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}

	return nil
}
