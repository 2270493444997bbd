package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lithammer/dedent"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jmlim/smartstore-lister/config"
	"github.com/jmlim/smartstore-lister/smartstore"
	"github.com/jmlim/smartstore-lister/storage"
)

const platformSmartstore = "smartstore"

var usage = dedent.Dedent(`
	usage: smartstore-lister [flags] <rows.json>

	Reads flat listing rows from a JSON file, normalizes them into the
	marketplace listing schema and registers them. Rows sharing a 그룹명
	value are folded into one grouped listing.

	flags:
	  -platform   target platform (default "smartstore")
	  -dry-run    assemble and print payloads without submitting
`)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	config.LoadEnvFile()

	platform := flag.String("platform", platformSmartstore, "target platform")
	dryRun := flag.Bool("dry-run", false, "assemble and print payloads without submitting")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.FromEnv()
	if !*dryRun && (cfg.ClientID == "" || cfg.ClientSecret == "") {
		log.Fatal().Msg("SMARTSTORE_CLIENT_ID and SMARTSTORE_CLIENT_SECRET are not set")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	rows, err := readRows(flag.Arg(0))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read rows")
	}

	singles, groups, err := FoldRows(rows)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to parse rows")
	}
	log.Info().
		Int("singles", len(singles)).
		Int("groups", len(groups)).
		Msg("parsed listing rows")

	client := smartstore.NewClient(smartstore.ClientOpts{
		BaseURL:      cfg.BaseURL,
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Token:        cfg.Token,
	})

	var snapshots smartstore.SnapshotStore
	store, err := storage.NewSnapshotStore(cfg.SnapshotDB)
	if err != nil {
		log.Warn().Err(err).Msg("category snapshot store unavailable")
	} else {
		defer store.Close()
		snapshots = store
	}

	index := smartstore.NewCategoryIndex(client, snapshots)
	assembler := smartstore.NewAssembler(
		smartstore.NewCategoryResolver(index),
		smartstore.NewComplianceAdvisor(),
		smartstore.NewOriginResolver(client, cfg.Defaults.ImporterName),
		client,
		cfg.Defaults,
	)
	service := smartstore.NewService(assembler, client)

	registry := NewRegistry()
	registry.Add(platformSmartstore, service)

	handler, err := registry.Get(*platform)
	if err != nil {
		log.Fatal().Err(err).Msg("unknown platform")
	}

	if *dryRun {
		runDry(ctx, service, singles, groups)
		return
	}

	failed := 0
	for _, input := range singles {
		if _, err := handler.Register(ctx, input); err != nil {
			failed++
			logListingError(err, input.Name)
		}
	}
	for _, input := range groups {
		if _, err := handler.RegisterGroup(ctx, input); err != nil {
			failed++
			logListingError(err, input.GroupName)
		}
	}

	if failed > 0 {
		log.Error().Int("failed", failed).Msg("some listings were not registered")
		os.Exit(1)
	}
	log.Info().Msg("all listings registered")
}

func readRows(path string) ([]Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rows []Row
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func runDry(ctx context.Context, service *smartstore.Service, singles []smartstore.ListingInput, groups []smartstore.GroupListingInput) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	for _, input := range singles {
		payload, err := service.Assemble(ctx, input)
		if err != nil {
			logListingError(err, input.Name)
			continue
		}
		enc.Encode(payload)
	}
	for _, input := range groups {
		payload, err := service.AssembleGroup(ctx, input)
		if err != nil {
			logListingError(err, input.GroupName)
			continue
		}
		enc.Encode(payload)
	}
}

func logListingError(err error, name string) {
	if errs, ok := smartstore.AsValidationErrors(err); ok {
		for _, e := range errs {
			log.Error().Str("listing", name).Str("field", e.Field).Msg(e.Reason)
		}
		return
	}
	log.Error().Str("listing", name).Err(err).Msg("registration failed")
}
