package schema

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"net/url"
	"path"
	"slices"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// baseURL identifies schema resources inside the compiler. Nothing is
// fetched from it.
const baseURL = "https://zairakai.dev/schemas/helpers/"

//go:embed schemas/*.json
var builtinFS embed.FS

// Schema is a compiled JSON Schema. It is safe for concurrent use.
type Schema struct {
	name     string
	url      string
	compiled *jsonschema.Schema
}

// Name returns the registry name of the schema.
func (s *Schema) Name() string { return s.name }

// Validate checks data and returns validator.ValidationErrors on failure.
// Missing properties with a declared default are filled in before the check.
func (s *Schema) Validate(data any) error {
	_, err := s.validate(data)
	return err
}

type registry struct {
	mu       sync.Mutex
	compiler *jsonschema.Compiler
	schemas  map[string]*Schema
}

var reg = newRegistry()

func newRegistry() *registry {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true
	compiler.ExtractAnnotations = true

	entries, err := fs.ReadDir(builtinFS, "schemas")
	if err != nil {
		panic(fmt.Sprintf("schema: read embedded schemas: %v", err))
	}
	for _, e := range entries {
		b, err := fs.ReadFile(builtinFS, path.Join("schemas", e.Name()))
		if err != nil {
			panic(fmt.Sprintf("schema: read %s: %v", e.Name(), err))
		}
		if err := compiler.AddResource(baseURL+e.Name(), bytes.NewReader(b)); err != nil {
			panic(fmt.Sprintf("schema: add %s: %v", e.Name(), err))
		}
	}

	return &registry{
		compiler: compiler,
		schemas:  make(map[string]*Schema),
	}
}

func (r *registry) compile(name, url string) (*Schema, error) {
	if s, ok := r.schemas[name]; ok {
		return s, nil
	}
	compiled, err := r.compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrCompile, name, err)
	}
	s := &Schema{name: name, url: url, compiled: compiled}
	r.schemas[name] = s
	return s, nil
}

func (r *registry) add(name string, doc []byte) (*Schema, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.schemas[name]; ok {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateSchema, name)
	}
	loc := baseURL + "custom/" + url.PathEscape(name) + ".json"
	if err := r.compiler.AddResource(loc, bytes.NewReader(doc)); err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrCompile, name, err)
	}
	return r.compile(name, loc)
}

func (r *registry) builtin(name string) *Schema {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, err := r.compile(name, baseURL+name+".json")
	if err != nil {
		panic(err)
	}
	return s
}

// wrap compiles a schema generated around inner, once per inner schema.
func (r *registry) wrap(kind string, inner *Schema, doc map[string]any) *Schema {
	name := kind + "(" + inner.name + ")"

	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.schemas[name]; ok {
		return s
	}
	b, err := json.Marshal(doc)
	if err != nil {
		panic(fmt.Sprintf("schema: marshal %s: %v", name, err))
	}
	url := baseURL + "generated/" + kind + "/" + strings.ReplaceAll(inner.name, "/", "_") + ".json"
	if err := r.compiler.AddResource(url, bytes.NewReader(b)); err != nil {
		panic(fmt.Sprintf("schema: add %s: %v", name, err))
	}
	s, err := r.compile(name, url)
	if err != nil {
		panic(err)
	}
	return s
}

func (r *registry) lookup(name string) (*Schema, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.schemas[name]
	return s, ok
}

func (r *registry) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.schemas))
	for name := range r.schemas {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

// Compile registers a custom JSON Schema document under name. Names are
// case-insensitive. The document can reference built-in schemas relatively,
// e.g. {"$ref": "../email.json"}.
func Compile(name string, doc []byte) (*Schema, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, fmt.Errorf("%w: empty schema name", ErrCompile)
	}
	return reg.add(name, doc)
}

// Lookup returns a registered schema: a built-in ("email", "phone", "url",
// "date", "user", "pagination", "config"), a generated wrapper or one added
// with Compile.
func Lookup(name string) (*Schema, bool) {
	return reg.lookup(strings.ToLower(strings.TrimSpace(name)))
}

// Names lists every registered schema in sorted order.
func Names() []string {
	return reg.names()
}
