package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/zairakai/helpers/pkg/check"
	"github.com/zairakai/helpers/pkg/logger"
	"github.com/zairakai/helpers/pkg/schema"
	"github.com/zairakai/helpers/pkg/validator"
	"github.com/zairakai/helpers/pkg/value"
)

type verdict struct {
	name string
	fn   func(value.Value) bool
}

var verdicts = []verdict{
	{"empty", check.IsEmpty},
	{"blank", check.IsBlank},
	{"numeric", check.IsNumeric},
	{"integer", check.IsInteger},
	{"float", check.IsFloat},
	{"email", check.IsEmail},
	{"url", check.IsURL},
	{"uuid", check.IsUUID},
}

// runInspect decodes one JSON value and prints its kind and predicate verdicts.
func runInspect(_ context.Context, a *App, args []string) error {
	fs := a.flagSet("inspect")
	asJSON := fs.Bool("json", false, "print the report as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	s, err := a.text(fs)
	if err != nil {
		return err
	}

	doc, err := schema.Decode(schema.FormatJSON, []byte(s))
	if err != nil {
		return fmt.Errorf("inspect: %w", err)
	}
	v := value.Of(doc)

	if *asJSON {
		report := map[string]any{"kind": v.Kind().String()}
		for _, vd := range verdicts {
			report[vd.name] = vd.fn(v)
		}
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	tw := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "kind\t%s\n", v.Kind())
	for _, vd := range verdicts {
		fmt.Fprintf(tw, "%s\t%t\n", vd.name, vd.fn(v))
	}
	return tw.Flush()
}

// runValidate checks a document against a named schema or a schema file.
func runValidate(ctx context.Context, a *App, args []string) error {
	fs := a.flagSet("validate")
	schemaName := fs.String("schema", "", "built-in schema name or path to a JSON Schema file")
	formatName := fs.String("format", "", "document format: json, yaml or toml (default: from file extension)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *schemaName == "" {
		return fmt.Errorf("validate: -schema is required (one of %s)", strings.Join(schema.Names(), ", "))
	}

	s, err := resolveSchema(*schemaName)
	if err != nil {
		return err
	}

	path := fs.Arg(0)
	data, err := a.readInput(path)
	if err != nil {
		return err
	}

	format := schema.FormatFromPath(path)
	if *formatName != "" {
		if format, err = schema.ParseFormat(*formatName); err != nil {
			return err
		}
	}

	doc, err := schema.Decode(format, data)
	if err != nil {
		return err
	}

	log := a.log.With(logger.Schema(s.Name()))
	if err := s.Validate(doc); err != nil {
		if verrs := validator.ExtractValidationErrors(err); verrs != nil {
			for _, msg := range verrs.Messages() {
				fmt.Fprintln(a.stdout, msg)
			}
			log.InfoContext(ctx, "document is invalid", logger.Count(len(verrs)))
		}
		return err
	}

	log.DebugContext(ctx, "document is valid")
	fmt.Fprintln(a.stdout, "valid")
	return nil
}

// resolveSchema returns a registered schema, or compiles a .json file under
// its base name.
func resolveSchema(name string) (*schema.Schema, error) {
	if s, ok := schema.Lookup(name); ok {
		return s, nil
	}
	if filepath.Ext(name) != ".json" {
		return nil, fmt.Errorf("validate: unknown schema %q (one of %s)", name, strings.Join(schema.Names(), ", "))
	}

	b, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("validate: read schema: %w", err)
	}
	return schema.Compile("file:"+filepath.Base(name), b)
}

func (a *App) readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		b, err := io.ReadAll(a.stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return b, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return b, nil
}
