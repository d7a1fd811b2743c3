package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	redsimmcp "github.com/baboonytim/redsim/internal/mcp"
)

func main() {
	decks := flag.String("decks", "decks.yaml", "path to decklist YAML file")
	library := flag.String("library", "cards.yaml", "path to card library YAML file")
	flag.Parse()

	redsimmcp.SetDecklistFile(*decks)
	redsimmcp.SetLibraryFile(*library)

	s := server.NewMCPServer("redsim", "1.0.0")
	redsimmcp.RegisterTools(s)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
