package commands

import (
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/coltools/internal/cliutil"
	"github.com/erraggy/coltools/xmlnorm"
)

// XMLFlags contains flags for the xml command
type XMLFlags struct {
	RecordPath   string
	Explode      bool
	NoAttributes bool
}

// SetupXMLFlags creates and configures a FlagSet for the xml command.
// Returns the FlagSet and a XMLFlags struct with bound flag variables.
func SetupXMLFlags() (*flag.FlagSet, *XMLFlags) {
	fs := flag.NewFlagSet("xml", flag.ContinueOnError)
	flags := &XMLFlags{}

	fs.StringVar(&flags.RecordPath, "record-path", "", "dot-separated path to record elements (default: children of the root)")
	fs.BoolVar(&flags.Explode, "explode", false, "expand repeated sibling elements into multiple rows")
	fs.BoolVar(&flags.NoAttributes, "no-attributes", false, "omit attribute columns")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: coltools xml [flags] <file>\n\n")
		cliutil.Writef(fs.Output(), "Flatten an XML document into CSV, one row per record element.\n")
		cliutil.Writef(fs.Output(), "Null cells are written as empty fields.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  coltools xml orders.xml\n")
		cliutil.Writef(fs.Output(), "  coltools xml -record-path orders.order -explode orders.xml\n")
	}

	return fs, flags
}

// HandleXML executes the xml command
func HandleXML(args []string) error {
	fs, flags := SetupXMLFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("xml command requires exactly one file path")
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	n := xmlnorm.New()
	n.RecordPath = flags.RecordPath
	n.Explode = flags.Explode
	n.IncludeAttributes = !flags.NoAttributes

	f, err := n.Normalize(data)
	if err != nil {
		return fmt.Errorf("normalizing: %w", err)
	}

	w := csv.NewWriter(os.Stdout)
	if err := w.Write(f.Columns()); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i := 0; i < f.Len(); i++ {
		rec := make([]string, f.Width())
		for j := 0; j < f.Width(); j++ {
			if v, ok := f.ColumnAt(j).StrAt(i); ok {
				rec[j] = v
			}
		}
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}
