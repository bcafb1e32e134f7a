package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/catalog"
	"github.com/nikolayk812/storefront/internal/fakestore"
	"github.com/nikolayk812/storefront/internal/tui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse the catalog and fill a cart in the terminal",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	client := fakestore.NewClient(cfg.CatalogURL, cfg.CurrencyUnit(), cfg.FetchTimeout, logger)
	loader := catalog.NewLoader(client, logger)

	sessionID := uuid.NewString()
	logger.Info("session started", zap.String("session", sessionID))

	model := tui.New(ctx, loader, sessionID, cfg.CurrencyUnit(), logger)

	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("program.Run: %w", err)
	}

	logger.Info("session ended", zap.String("session", sessionID))
	return nil
}
