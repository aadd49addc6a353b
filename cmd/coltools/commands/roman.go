package commands

import (
	"errors"
	"flag"
	"fmt"
	"strconv"

	"github.com/erraggy/coltools/internal/cliutil"
	"github.com/erraggy/coltools/numeric"
)

// RomanFlags contains flags for the roman command
type RomanFlags struct {
	Decode bool
}

// SetupRomanFlags creates and configures a FlagSet for the roman command.
// Returns the FlagSet and a RomanFlags struct with bound flag variables.
func SetupRomanFlags() (*flag.FlagSet, *RomanFlags) {
	fs := flag.NewFlagSet("roman", flag.ContinueOnError)
	flags := &RomanFlags{}

	fs.BoolVar(&flags.Decode, "d", false, "decode roman numerals to integers")
	fs.BoolVar(&flags.Decode, "decode", false, "decode roman numerals to integers")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: coltools roman [flags] <value> [value...]\n\n")
		cliutil.Writef(fs.Output(), "Convert integers to roman numerals, or decode roman numerals with -d.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  coltools roman 1994 42\n")
		cliutil.Writef(fs.Output(), "  coltools roman -d MCMXCIV XLII\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - Encoding accepts integers from 1 to 3999\n")
		cliutil.Writef(fs.Output(), "  - Decoding is case-insensitive and accepts non-canonical forms\n")
	}

	return fs, flags
}

// HandleRoman executes the roman command
func HandleRoman(args []string) error {
	fs, flags := SetupRomanFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("roman command requires at least one value")
	}

	for _, arg := range fs.Args() {
		if flags.Decode {
			n, err := numeric.FromRoman(arg)
			if err != nil {
				return fmt.Errorf("decoding %q: %w", arg, err)
			}
			fmt.Printf("%s\t%d\n", arg, n)
			continue
		}
		n, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("parsing %q: %w", arg, err)
		}
		r, err := numeric.ToRoman(n)
		if err != nil {
			return fmt.Errorf("encoding %d: %w", n, err)
		}
		fmt.Printf("%d\t%s\n", n, r)
	}
	return nil
}
