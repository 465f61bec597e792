package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	spirexmcp "github.com/peterkuimelis/spirex/internal/mcp"
)

func main() {
	decks := flag.String("decks", "", "path to decks YAML file (optional)")
	encounters := flag.String("encounters", "", "path to encounters YAML file (optional)")
	flag.Parse()

	spirexmcp.SetDeckFile(*decks)
	spirexmcp.SetEncounterFile(*encounters)

	s := server.NewMCPServer("spirex", "1.0.0")
	spirexmcp.RegisterTools(s)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
