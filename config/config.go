package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/jmlim/smartstore-lister/smartstore"
)

const (
	AppName     = "smartstore-lister"
	EnvFileName = "config.env"
)

// Defaults for seller-level values when the corresponding env var is unset.
// The importer placeholder is deliberately conspicuous so operators notice
// listings that still need a real importer name.
const (
	defaultImporterName   = "수입업체 확인요망"
	defaultASTelephone    = "070-0000-0000"
	defaultASGuide        = "판매자에게 문의해주세요"
	defaultReturnFee      = 3000
	defaultExchangeFee    = 6000
	defaultSnapshotDBName = "categories.db"
)

// Config holds everything main needs to wire the engine.
type Config struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	Token        string
	SnapshotDB   string
	Defaults     smartstore.Defaults
}

// LoadEnvFile loads environment variables from the config file in the user's
// config directory. Errors are ignored since the file may not exist.
func LoadEnvFile() {
	configBase, err := os.UserConfigDir()
	if err != nil {
		return
	}
	configPath := filepath.Join(configBase, AppName, EnvFileName)
	_ = godotenv.Load(configPath)
}

// FromEnv builds a Config from the environment.
func FromEnv() Config {
	return Config{
		BaseURL:      os.Getenv("SMARTSTORE_BASE_URL"),
		ClientID:     os.Getenv("SMARTSTORE_CLIENT_ID"),
		ClientSecret: os.Getenv("SMARTSTORE_CLIENT_SECRET"),
		Token:        os.Getenv("SMARTSTORE_TOKEN"),
		SnapshotDB:   envOr("SMARTSTORE_SNAPSHOT_DB", defaultSnapshotDBName),
		Defaults: smartstore.Defaults{
			ImporterName:        envOr("SELLER_IMPORTER_NAME", defaultImporterName),
			ASTelephoneNumber:   envOr("SELLER_AS_TELEPHONE", defaultASTelephone),
			ASGuideContent:      envOr("SELLER_AS_GUIDE", defaultASGuide),
			ReturnDeliveryFee:   envIntOr("SELLER_RETURN_FEE", defaultReturnFee),
			ExchangeDeliveryFee: envIntOr("SELLER_EXCHANGE_FEE", defaultExchangeFee),
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
