package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/coltools/internal/cliutil"
	"github.com/erraggy/coltools/schema"
)

// SchemaFlags contains flags for the schema command
type SchemaFlags struct {
	Output string
	Format string
}

// SetupSchemaFlags creates and configures a FlagSet for the schema command.
// Returns the FlagSet and a SchemaFlags struct with bound flag variables.
func SetupSchemaFlags() (*flag.FlagSet, *SchemaFlags) {
	fs := flag.NewFlagSet("schema", flag.ContinueOnError)
	flags := &SchemaFlags{}

	fs.StringVar(&flags.Output, "o", "", "output file path; format chosen by extension (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path; format chosen by extension (default: stdout)")
	fs.StringVar(&flags.Format, "f", "json", "stdout format: json or yaml")
	fs.StringVar(&flags.Format, "format", "json", "stdout format: json or yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: coltools schema [flags] <file>\n\n")
		cliutil.Writef(fs.Output(), "Read a schema file (JSON or YAML by extension) and write it back out,\n")
		cliutil.Writef(fs.Output(), "preserving column order. Useful for validating and converting schemas.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  coltools schema trades.json\n")
		cliutil.Writef(fs.Output(), "  coltools schema -f yaml trades.json\n")
		cliutil.Writef(fs.Output(), "  coltools schema -o trades.yaml trades.json\n")
	}

	return fs, flags
}

// HandleSchema executes the schema command
func HandleSchema(args []string) error {
	fs, flags := SetupSchemaFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("schema command requires exactly one file path")
	}

	s, err := schema.ReadFile(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("reading schema: %w", err)
	}

	if flags.Output != "" {
		if err := s.WriteFile(flags.Output); err != nil {
			return fmt.Errorf("writing schema: %w", err)
		}
		return nil
	}

	switch flags.Format {
	case "json":
		if err := s.EncodeJSON(os.Stdout); err != nil {
			return fmt.Errorf("encoding schema: %w", err)
		}
	case "yaml":
		if err := s.EncodeYAML(os.Stdout); err != nil {
			return fmt.Errorf("encoding schema: %w", err)
		}
	default:
		return fmt.Errorf("unknown format %q (expected json or yaml)", flags.Format)
	}
	return nil
}
