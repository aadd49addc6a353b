package main

import (
	"fmt"
	"os"

	"github.com/erraggy/coltools"
	"github.com/erraggy/coltools/cmd/coltools/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("coltools v%s\n", coltools.Version())
	case "help", "-h", "--help":
		printUsage()
	case "roman":
		if err := commands.HandleRoman(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "words":
		if err := commands.HandleWords(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "rename":
		if err := commands.HandleRename(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "similarity":
		if err := commands.HandleSimilarity(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "schema":
		if err := commands.HandleSchema(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "xml":
		if err := commands.HandleXML(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := commands.HandleMCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("coltools - column-wise conversion utilities")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  coltools <command> [flags] [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  roman       Convert integers to roman numerals (or decode with -d)")
	fmt.Println("  words       Convert an English number phrase to an integer")
	fmt.Println("  rename      Convert names between naming conventions")
	fmt.Println("  similarity  Score the similarity of two strings")
	fmt.Println("  schema      Inspect or convert a schema file (JSON or YAML)")
	fmt.Println("  xml         Flatten an XML document into CSV")
	fmt.Println("  mcp         Run the MCP server over stdio")
	fmt.Println("  version     Print version information")
	fmt.Println("  help        Print this help message")
	fmt.Println()
	fmt.Println("Run 'coltools <command> -h' for command-specific help.")
}
