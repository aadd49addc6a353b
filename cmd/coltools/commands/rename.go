package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/coltools/internal/cliutil"
	"github.com/erraggy/coltools/naming"
)

// RenameFlags contains flags for the rename command
type RenameFlags struct {
	Case   string
	Format string
}

// SetupRenameFlags creates and configures a FlagSet for the rename command.
// Returns the FlagSet and a RenameFlags struct with bound flag variables.
func SetupRenameFlags() (*flag.FlagSet, *RenameFlags) {
	fs := flag.NewFlagSet("rename", flag.ContinueOnError)
	flags := &RenameFlags{}

	fs.StringVar(&flags.Case, "c", "snake", "target case: snake, camel, pascal, kebab, train, pascal_snake")
	fs.StringVar(&flags.Case, "case", "snake", "target case: snake, camel, pascal, kebab, train, pascal_snake")
	fs.StringVar(&flags.Format, "f", "text", "output format: text, json, or yaml")
	fs.StringVar(&flags.Format, "format", "text", "output format: text, json, or yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: coltools rename [flags] <name> [name...]\n\n")
		cliutil.Writef(fs.Output(), "Convert names between naming conventions.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  coltools rename -c camel user_name created_at\n")
		cliutil.Writef(fs.Output(), "  coltools rename -c snake -f json HTTPServerPort apiV2Client\n")
	}

	return fs, flags
}

// HandleRename executes the rename command
func HandleRename(args []string) error {
	fs, flags := SetupRenameFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("rename command requires at least one name")
	}

	c, err := naming.ParseCase(flags.Case)
	if err != nil {
		return fmt.Errorf("parsing case: %w", err)
	}

	switch flags.Format {
	case "text":
		for _, name := range fs.Args() {
			fmt.Printf("%s\t%s\n", name, c.Convert(name))
		}
		return nil
	case "json", "yaml":
		// Ordered pairs, not a map: renames should print in argument order.
		type renamed struct {
			From string `json:"from" yaml:"from"`
			To   string `json:"to" yaml:"to"`
		}
		pairs := make([]renamed, 0, fs.NArg())
		for _, name := range fs.Args() {
			pairs = append(pairs, renamed{From: name, To: c.Convert(name)})
		}
		if flags.Format == "json" {
			return cliutil.WriteJSON(os.Stdout, pairs)
		}
		return cliutil.WriteYAML(os.Stdout, pairs)
	default:
		return fmt.Errorf("unknown format %q (expected text, json, or yaml)", flags.Format)
	}
}
