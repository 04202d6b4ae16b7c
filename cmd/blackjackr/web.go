package main

import (
	"github.com/fadedpez/blackjackr/internal/web"
)

// WebCmd serves the browser adapter
type WebCmd struct {
	Addr          string   `help:"Listen address (overrides HTTP_ADDR)"`
	AssetDir      string   `help:"Directory served under /static/ (overrides ASSET_DIR)"`
	SecureCookies bool     `help:"Mark the session cookie Secure"`
	AllowOrigin   []string `help:"Extra origins allowed to open the event stream"`
}

func (c *WebCmd) Run(cli *CLI) error {
	cfg, logger, err := setup(cli)
	if err != nil {
		return err
	}
	if c.Addr != "" {
		cfg.HTTPAddr = c.Addr
	}
	if c.AssetDir != "" {
		cfg.AssetDir = c.AssetDir
	}
	if err := cfg.ValidateWeb(); err != nil {
		return err
	}

	ctx, cancel := signalContext(logger)
	defer cancel()

	server := web.NewServer(newManager(ctx, cfg, logger), web.Options{
		AssetDir:       cfg.AssetDir,
		AssetBaseURL:   cfg.AssetBaseURL,
		SecureCookies:  c.SecureCookies,
		OriginPatterns: c.AllowOrigin,
	}, logger.WithField("adapter", "web"))

	return server.ListenAndServe(ctx, cfg.HTTPAddr)
}
