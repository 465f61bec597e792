package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/peterkuimelis/spirex/internal/web"
)

func main() {
	port := flag.Int("port", 8080, "HTTP port to listen on")
	decksFile := flag.String("decks", "", "path to decks YAML file (optional)")
	encountersFile := flag.String("encounters", "", "path to encounters YAML file (optional)")
	flag.Parse()

	srv := web.NewServer(*decksFile, *encountersFile)

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("spirex web UI listening on http://localhost:%d", *port)
	if err := srv.ListenAndServe(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
