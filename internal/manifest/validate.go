// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package manifest

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/manifest-v8.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// ValidationError reports the first structural violation found in a
// manifest record. Validation is fail-fast: one violation is reported
// even when several exist.
type ValidationError struct {
	Path    string // JSON pointer of the offending value, "" for the root
	Message string
}

func (e *ValidationError) Error() string {
	if e.Path == "" {
		return "invalid manifest: " + e.Message
	}
	return fmt.Sprintf("invalid manifest: %s at %q", e.Message, e.Path)
}

// getSchema compiles the embedded manifest schema once and returns it.
func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshal manifest schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("manifest-v8.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("manifest-v8.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compile manifest schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// Parse validates raw JSON bytes against the manifest schema and decodes
// them into a typed Manifest. Expected validation failures come back as
// *ValidationError; any other error means malformed input encoding or a
// broken embedded schema. Unknown fields are ignored.
func Parse(data []byte) (*Manifest, error) {
	schema, err := getSchema()
	if err != nil {
		return nil, fmt.Errorf("load manifest schema: %w", err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, &ValidationError{Message: "not a JSON document: " + err.Error()}
	}

	if err := schema.Validate(inst); err != nil {
		ve, ok := err.(*jsonschema.ValidationError)
		if !ok {
			return nil, fmt.Errorf("manifest schema validation: %w", err)
		}
		return nil, firstViolation(ve)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode validated manifest: %w", err)
	}
	return &m, nil
}

// Validate checks an already-decoded JSON-like value (generic maps and
// slices, as produced by encoding/json or the synthesizer) against the
// manifest schema.
func Validate(raw any) (*Manifest, error) {
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, &ValidationError{Message: "not JSON-encodable: " + err.Error()}
	}
	return Parse(data)
}

// firstViolation walks the validation error tree depth-first and returns
// the first leaf violation encountered.
func firstViolation(ve *jsonschema.ValidationError) *ValidationError {
	if len(ve.Causes) == 0 {
		path := ""
		if len(ve.InstanceLocation) > 0 {
			path = "/" + strings.Join(ve.InstanceLocation, "/")
		}
		msg := ve.Error()
		if ve.ErrorKind != nil {
			msg = ve.ErrorKind.LocalizedString(printer)
		}
		return &ValidationError{Path: path, Message: msg}
	}
	return firstViolation(ve.Causes[0])
}
