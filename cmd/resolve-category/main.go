package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/jmlim/smartstore-lister/config"
	"github.com/jmlim/smartstore-lister/smartstore"
)

// Resolves a free-text category path against the live tree and prints the
// leaf id. Lets operators check what a spreadsheet value will resolve to
// before uploading.
func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: resolve-category <category path or id>")
		os.Exit(2)
	}

	config.LoadEnvFile()
	cfg := config.FromEnv()

	client := smartstore.NewClient(smartstore.ClientOpts{
		BaseURL:      cfg.BaseURL,
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Token:        cfg.Token,
	})

	resolver := smartstore.NewCategoryResolver(smartstore.NewCategoryIndex(client, nil))
	id, err := resolver.Resolve(context.Background(), flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(id)
}
