package cli

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/abdidvp/repohealth/internal/adapters/inbound/mcp"
	"github.com/abdidvp/repohealth/internal/adapters/outbound/cache"
)

func newMCPCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the repohealth MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd(flags))
	return cmd
}

func newMCPServeCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start repohealth MCP server (stdio)",
		Long:  "Start the repohealth MCP server using stdio transport. This lets AI coding assistants analyse GitHub repositories and read the resulting findings.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			// stdout carries the protocol, so logs must stay on stderr.
			svc, err := newAnalysisService(cfg, newLogger(cmd, flags))
			if err != nil {
				return err
			}
			store, err := cache.New(cfg.CacheSize)
			if err != nil {
				return fmt.Errorf("creating result cache: %w", err)
			}

			s := mcpadapter.NewRepoHealthMCPServer(svc, store, version)
			return server.ServeStdio(s)
		},
	}
}
