package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/jmlim/smartstore-lister/config"
	"github.com/jmlim/smartstore-lister/smartstore"
)

// Fetches the live category tree and prints every leaf path with its id.
// Useful for checking what the resolver will actually match against.
func main() {
	var baseURL string
	flag.StringVar(&baseURL, "base-url", "", "API base URL override")
	flag.Parse()

	config.LoadEnvFile()
	cfg := config.FromEnv()
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	client := smartstore.NewClient(smartstore.ClientOpts{
		BaseURL:      cfg.BaseURL,
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Token:        cfg.Token,
	})

	index := smartstore.NewCategoryIndex(client, nil)
	if err := index.EnsureBuilt(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error building category index: %v\n", err)
		os.Exit(1)
	}
	if index.Degraded() {
		fmt.Fprintln(os.Stderr, "Warning: index built from fallback data")
	}

	count := 0
	index.Each(func(path, id string) bool {
		// Skip the tight-delimiter duplicate keys.
		if strings.Contains(path, ">") && !strings.Contains(path, smartstore.PathDelimiter) {
			return true
		}
		fmt.Printf("%s\t%s\n", id, path)
		count++
		return true
	})
	fmt.Fprintf(os.Stderr, "%d leaf categories\n", count)
}
