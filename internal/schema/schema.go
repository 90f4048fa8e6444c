// Package schema validates request bodies against the bundled JSON schemas.
package schema

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"github.com/goccy/go-json"
	"github.com/xeipuuv/gojsonschema"
)

const base = "https://property-management.local/"

// Schema ids of the request bodies accepted by the API.
const (
	PropertyManagerCreate = base + "property_manager.create.json"
	PropertyManagerUpdate = base + "property_manager.update.json"
	PropertyCreate        = base + "property.create.json"
	PropertyUpdate        = base + "property.update.json"
	TenancyCreate         = base + "tenancy.create.json"
	TenancyUpdate         = base + "tenancy.update.json"
	TenantCreate          = base + "tenant.create.json"
	TenantUpdate          = base + "tenant.update.json"
	SupportWorkerCreate   = base + "support_worker.create.json"
	SupportWorkerUpdate   = base + "support_worker.update.json"
	Link                  = base + "link.json"
	Concurrency           = base + "concurrency.json"
)

//go:embed *.json refs/*.json
var bundled embed.FS

// ValidationError lists every reason a document was rejected.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, "; ")
}

// Validator holds compiled schemas keyed by their $id.
type Validator struct {
	schemas map[string]*gojsonschema.Schema
}

// NewDefault compiles the schemas bundled with the binary.
func NewDefault() (*Validator, error) {
	return NewValidatorFromFS(bundled)
}

// NewValidatorFromFS uses json files at the root of fsys as top level schemas
// and json files under refs/ as shared references.
func NewValidatorFromFS(fsys fs.FS) (*Validator, error) {
	readDir := func(dir string) ([]string, error) {
		entries, err := fs.ReadDir(fsys, dir)
		if err != nil {
			return nil, fmt.Errorf("cannot read dir %s: %w", dir, err)
		}
		var docs []string
		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
				continue
			}
			path := e.Name()
			if dir != "." {
				path = dir + "/" + e.Name()
			}
			b, err := fs.ReadFile(fsys, path)
			if err != nil {
				return nil, fmt.Errorf("cannot read file %s: %w", path, err)
			}
			docs = append(docs, string(b))
		}
		return docs, nil
	}

	top, err := readDir(".")
	if err != nil {
		return nil, err
	}
	refs, err := readDir("refs")
	if err != nil {
		return nil, err
	}
	return NewValidator(top, refs)
}

// NewValidator compiles each top level schema with refs available for $ref
// resolution. Top level schemas cannot reference each other.
func NewValidator(schemas, refs []string) (*Validator, error) {
	v := &Validator{schemas: make(map[string]*gojsonschema.Schema, len(schemas))}
	for _, doc := range schemas {
		var head struct {
			ID string `json:"$id"`
		}
		if err := json.Unmarshal([]byte(doc), &head); err != nil {
			return nil, fmt.Errorf("parse schema: %w", err)
		}
		if head.ID == "" {
			return nil, fmt.Errorf("schema does not contain $id: %.60s", doc)
		}

		sl := gojsonschema.NewSchemaLoader()
		for _, ref := range refs {
			if err := sl.AddSchemas(gojsonschema.NewStringLoader(ref)); err != nil {
				return nil, fmt.Errorf("cannot add ref: %w", err)
			}
		}
		compiled, err := sl.Compile(gojsonschema.NewStringLoader(doc))
		if err != nil {
			return nil, fmt.Errorf("cannot compile schema %s: %w", head.ID, err)
		}
		v.schemas[head.ID] = compiled
	}
	return v, nil
}

// Validate checks body against the schema id. A rejected document yields a
// *ValidationError.
func (v *Validator) Validate(body []byte, id string) error {
	s, ok := v.schemas[id]
	if !ok {
		return fmt.Errorf("there is no schema %s", id)
	}
	result, err := s.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return &ValidationError{Problems: []string{"malformed JSON: " + err.Error()}}
	}
	if result.Valid() {
		return nil
	}
	problems := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		problems = append(problems, e.String())
	}
	return &ValidationError{Problems: problems}
}
