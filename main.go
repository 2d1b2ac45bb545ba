package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/digkill/tarot-app/internal/adapters/driven/catalog"
	configfile "github.com/digkill/tarot-app/internal/adapters/driven/config/file"
	"github.com/digkill/tarot-app/internal/adapters/driven/insight/openai"
	storagefile "github.com/digkill/tarot-app/internal/adapters/driven/storage/file"
	"github.com/digkill/tarot-app/internal/adapters/driven/storage/sqlite"
	"github.com/digkill/tarot-app/internal/adapters/driving/cli"
	"github.com/digkill/tarot-app/internal/core/domain"
	"github.com/digkill/tarot-app/internal/core/ports/driven"
	"github.com/digkill/tarot-app/internal/core/services"
	"github.com/digkill/tarot-app/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	if level := configStore.GetString(driven.ConfigLogLevel); level != "" {
		logger.SetLevel(level)
	}

	kv, err := openKVStore(configStore)
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}
	defer kv.Close()

	decks, err := catalog.LoadDecks()
	if err != nil {
		return fmt.Errorf("loading deck catalog: %w", err)
	}
	spreads, err := catalog.LoadSpreads()
	if err != nil {
		return fmt.Errorf("loading spread catalog: %w", err)
	}

	insight := openInsightService(configStore)
	if insight != nil {
		defer insight.Close()
	}

	readings := services.NewReadingStore(kv)
	settings := services.NewSettingsStore(kv)
	divination := services.NewDivination(
		decks, spreads, insight,
		services.NewDrawEngine(nil), services.NewAssembler(),
		readings, settings,
	)

	cli.Initialize(cli.Dependencies{
		Divination: divination,
		Readings:   readings,
		Settings:   settings,
		Spreads:    spreads,
		Decks:      decks,
		Config:     configStore,
		Version:    version,
	})
	return cli.Execute()
}

// openKVStore selects the durable backend from configuration.
// The file store is the default; sqlite suits setups with concurrent
// invocations.
func openKVStore(config driven.ConfigStore) (driven.KVStore, error) {
	dataDir := config.GetString(driven.ConfigStorageDir)
	switch backend := config.GetString(driven.ConfigStorageBackend); backend {
	case "", "file":
		return storagefile.NewKVStore(dataDir)
	case "sqlite":
		return sqlite.NewStore(dataDir)
	default:
		return nil, fmt.Errorf("unknown storage backend %q: %w", backend, domain.ErrInvalidInput)
	}
}

// openInsightService builds the narrative client when a key is
// available. A missing key is the normal unconfigured state, not an
// error; Augment reports it when asked.
func openInsightService(config driven.ConfigStore) driven.InsightService {
	cfg := openai.Config{
		APIKey:  config.GetString(driven.ConfigInsightAPIKey),
		BaseURL: config.GetString(driven.ConfigInsightBaseURL),
		Model:   config.GetString(driven.ConfigInsightModel),
	}
	if seconds := config.GetInt(driven.ConfigInsightTimeoutSeconds); seconds > 0 {
		cfg.Timeout = time.Duration(seconds) * time.Second
	}

	svc, err := openai.NewInsightService(cfg)
	if err != nil {
		if !errors.Is(err, domain.ErrInsightKeyMissing) {
			logger.Warn().Err(err).Msg("insight service unavailable")
		}
		return nil
	}
	return svc
}
