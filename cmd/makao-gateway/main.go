package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/makaolabs/makao/internal/advisor"
	"github.com/makaolabs/makao/internal/api"
	"github.com/makaolabs/makao/internal/auth"
	"github.com/makaolabs/makao/internal/catalog"
	"github.com/makaolabs/makao/internal/config"
	"github.com/makaolabs/makao/internal/explain"
	"github.com/makaolabs/makao/internal/risk"
	"github.com/makaolabs/makao/internal/session"
)

func main() {
	_ = godotenv.Load()
	if err := runFn(os.Args[1:], os.Getenv, listenAndServe, newServer); err != nil {
		fatalf("server error: %v", err)
	}
}

var runFn = run
var fatalf = log.Fatalf

func newServer(cfg config.Config) (*http.Server, error) {
	rulebook := risk.DefaultRulebook()
	if cfg.RulebookPath != "" {
		loaded, err := risk.LoadRulebook(cfg.RulebookPath)
		if err != nil {
			return nil, err
		}
		rulebook = loaded
	}

	source := catalog.Source(catalog.Default())
	if cfg.CatalogPath != "" {
		loaded, err := catalog.LoadFile(cfg.CatalogPath)
		if err != nil {
			return nil, err
		}
		source = loaded
	}

	provider, err := explain.ProviderFromName(cfg.AI.Provider, cfg.AI.APIKey, cfg.AI.Model, nil)
	if err != nil {
		return nil, err
	}

	var store session.Store = session.NewMemoryStore()
	if cfg.DB.Driver == "sqlite" {
		store, err = session.OpenSQLite(cfg.DB.DSN)
		if err != nil {
			return nil, err
		}
	}

	authn := auth.NewAuthenticatorFromEnv()
	if cfg.DevToken != "" {
		authn.DevToken = cfg.DevToken
	}

	h := &api.Handler{
		Auth:     authn,
		Advisor:  advisor.NewService(risk.NewEngine(rulebook), explain.New(provider, cfg.AI.RequestTimeout), source),
		Sessions: store,
	}
	return &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           api.NewRouter(h),
		ReadHeaderTimeout: 5 * time.Second,
	}, nil
}

type envFn func(string) string
type listenFn func(*http.Server) error
type serverFactory func(cfg config.Config) (*http.Server, error)

func run(args []string, getenv envFn, listen listenFn, factory serverFactory) error {
	fs := flag.NewFlagSet("makao-gateway", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to makao config file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfgFile := *configPath
	if cfgFile == "" {
		cfgFile = getenv("MAKAO_CONFIG_PATH")
	}

	var cfg config.Config
	if cfgFile != "" {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	cfg.ListenAddr = firstNonEmpty(getenv("MAKAO_LISTEN_ADDR"), cfg.ListenAddr, ":8080")
	cfg.RulebookPath = firstNonEmpty(getenv("MAKAO_RULEBOOK_PATH"), cfg.RulebookPath)
	cfg.CatalogPath = firstNonEmpty(getenv("MAKAO_CATALOG_PATH"), cfg.CatalogPath)
	cfg.AI.Provider = firstNonEmpty(getenv("MAKAO_AI_PROVIDER"), cfg.AI.Provider)
	cfg.AI.APIKey = firstNonEmpty(getenv("MAKAO_AI_API_KEY"), cfg.AI.APIKey)
	cfg.AI.Model = firstNonEmpty(getenv("MAKAO_AI_MODEL"), cfg.AI.Model)
	cfg.DB.Driver = firstNonEmpty(getenv("MAKAO_DB_DRIVER"), cfg.DB.Driver)
	cfg.DB.DSN = firstNonEmpty(getenv("MAKAO_DB_DSN"), cfg.DB.DSN)

	server, err := factory(cfg)
	if err != nil {
		return err
	}

	log.Printf("makao-gateway listening on %s", cfg.ListenAddr)
	if err := listen(server); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func listenAndServe(server *http.Server) error {
	return server.ListenAndServe()
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
