package commands

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/coltools/internal/cliutil"
	"github.com/erraggy/coltools/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: coltools mcp\n\n")
		cliutil.Writef(fs.Output(), "Run the MCP server over stdio until the client disconnects\n")
		cliutil.Writef(fs.Output(), "or the process receives SIGINT/SIGTERM.\n\n")
		cliutil.Writef(fs.Output(), "Environment:\n")
		cliutil.Writef(fs.Output(), "  COLTOOLS_SIMILARITY_NGRAM  default n-gram size for the similarity tool\n")
		cliutil.Writef(fs.Output(), "  COLTOOLS_RENAME_CASE       default target case for the rename_case tool\n")
	}

	return fs
}

// HandleMCP executes the mcp command
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return mcpserver.Run(ctx)
}
