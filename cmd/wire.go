package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/greendaybank/greenday-cli/internal/adapters/ledger/resthttp"
	tomlprofile "github.com/greendaybank/greenday-cli/internal/adapters/profile/toml"
	"github.com/greendaybank/greenday-cli/internal/application"
	"github.com/greendaybank/greenday-cli/internal/ports"
)

const (
	ledgerURLKey     = "ledger.url"
	ledgerURLEnv     = "GDAY_LEDGER_URL"
	defaultLedgerURL = "http://localhost:7070"
)

type app struct {
	service  *application.Service
	gateway  ports.LedgerGateway
	profiles ports.ProfileRepository
	logger   *zap.Logger
	now      func() time.Time

	// flag values, bound before wiring runs
	ledgerURL string
	verbose   bool
}

// wire builds the dependency graph once per invocation. Resolution order for
// the ledger URL: --ledger-url flag, then GDAY_LEDGER_URL, then
// ~/.greenday/config.toml, then the built-in default.
func (a *app) wire() error {
	logger := zap.NewNop()
	if a.verbose {
		dev, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("build logger: %w", err)
		}
		logger = dev
	}

	cfg := viper.New()
	cfg.SetDefault(ledgerURLKey, defaultLedgerURL)
	if err := cfg.BindEnv(ledgerURLKey, ledgerURLEnv); err != nil {
		return fmt.Errorf("bind ledger url env: %w", err)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolve home directory: %w", err)
	}

	cfg.SetConfigFile(filepath.Join(homeDir, ".greenday", "config.toml"))
	cfg.SetConfigType("toml")
	if err := cfg.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("read config: %w", err)
	}

	baseURL := cfg.GetString(ledgerURLKey)
	if a.ledgerURL != "" {
		baseURL = a.ledgerURL
	}

	profiles, err := tomlprofile.NewRepository(cfg)
	if err != nil {
		return fmt.Errorf("wire profile repository: %w", err)
	}

	gateway := resthttp.NewClient(baseURL, http.DefaultClient, logger)

	a.service = application.NewService(gateway, ports.SystemClock{}, logger)
	a.gateway = gateway
	a.profiles = profiles
	a.logger = logger
	a.now = time.Now

	return nil
}
