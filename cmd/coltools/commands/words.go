package commands

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/erraggy/coltools/internal/cliutil"
	"github.com/erraggy/coltools/numeric"
)

// SetupWordsFlags creates and configures a FlagSet for the words command.
func SetupWordsFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("words", flag.ContinueOnError)

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: coltools words <phrase...>\n\n")
		cliutil.Writef(fs.Output(), "Convert an English number phrase to its integer value.\n")
		cliutil.Writef(fs.Output(), "All arguments are joined into a single phrase.\n\n")
		cliutil.Writef(fs.Output(), "Examples:\n")
		cliutil.Writef(fs.Output(), "  coltools words one hundred twenty-three\n")
		cliutil.Writef(fs.Output(), "  coltools words \"four hundred and four\"\n")
		cliutil.Writef(fs.Output(), "  coltools words negative seven thousand\n")
	}

	return fs
}

// HandleWords executes the words command
func HandleWords(args []string) error {
	fs := SetupWordsFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("words command requires a phrase")
	}

	phrase := strings.Join(fs.Args(), " ")
	n, err := numeric.WordsToNumber(phrase)
	if err != nil {
		return fmt.Errorf("parsing %q: %w", phrase, err)
	}
	fmt.Printf("%d\n", n)
	return nil
}
