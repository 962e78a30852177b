package cli

import (
	"fmt"
	"log/slog"

	"github.com/abdidvp/repohealth/internal/adapters/outbound/config"
	"github.com/abdidvp/repohealth/internal/adapters/outbound/github"
	"github.com/abdidvp/repohealth/internal/application"
	"github.com/abdidvp/repohealth/internal/domain"
)

// loadConfig reads .repohealth.yaml and the environment from the working
// directory, then applies flag overrides.
func loadConfig(flags *globalFlags) (domain.Config, error) {
	var loader domain.ConfigLoader = config.New()
	cfg, err := loader.Load(".")
	if err != nil {
		return domain.Config{}, err
	}
	if flags.token != "" {
		cfg.Token = flags.token
	}
	if flags.apiURL != "" {
		cfg.APIBaseURL = flags.apiURL
	}
	return cfg, nil
}

func newAnalysisService(cfg domain.Config, logger *slog.Logger) (*application.AnalysisService, error) {
	client, err := github.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating github client: %w", err)
	}
	return application.NewAnalysisService(client, logger, cfg.MaxConcurrency), nil
}
