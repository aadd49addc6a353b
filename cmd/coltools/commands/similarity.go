package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/coltools/internal/cliutil"
	"github.com/erraggy/coltools/similarity"
)

// SimilarityFlags contains flags for the similarity command
type SimilarityFlags struct {
	Metric string
	NGram  int
}

// SetupSimilarityFlags creates and configures a FlagSet for the similarity command.
// Returns the FlagSet and a SimilarityFlags struct with bound flag variables.
func SetupSimilarityFlags() (*flag.FlagSet, *SimilarityFlags) {
	fs := flag.NewFlagSet("similarity", flag.ContinueOnError)
	flags := &SimilarityFlags{}

	fs.StringVar(&flags.Metric, "m", "levenshtein", "metric: levenshtein or jaccard")
	fs.StringVar(&flags.Metric, "metric", "levenshtein", "metric: levenshtein or jaccard")
	fs.IntVar(&flags.NGram, "n", 2, "n-gram size for the jaccard metric")
	fs.IntVar(&flags.NGram, "ngram", 2, "n-gram size for the jaccard metric")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: coltools similarity [flags] <left> <right>\n\n")
		cliutil.Writef(fs.Output(), "Score the similarity of two strings.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  coltools similarity kitten sitting\n")
		cliutil.Writef(fs.Output(), "  coltools similarity -m jaccard -n 3 apple apples\n")
		cliutil.Writef(fs.Output(), "\nOutput:\n")
		cliutil.Writef(fs.Output(), "  - levenshtein prints the integer edit distance\n")
		cliutil.Writef(fs.Output(), "  - jaccard prints a score between 0 and 1\n")
	}

	return fs, flags
}

// HandleSimilarity executes the similarity command
func HandleSimilarity(args []string) error {
	fs, flags := SetupSimilarityFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("similarity command requires exactly two strings")
	}

	left, right := fs.Arg(0), fs.Arg(1)

	switch flags.Metric {
	case "levenshtein":
		fmt.Printf("%d\n", similarity.Levenshtein(left, right))
	case "jaccard":
		score, err := similarity.JaccardNGram(left, right, flags.NGram)
		if err != nil {
			return fmt.Errorf("scoring: %w", err)
		}
		fmt.Printf("%g\n", score)
	default:
		return fmt.Errorf("unknown metric %q (expected levenshtein or jaccard)", flags.Metric)
	}
	return nil
}
