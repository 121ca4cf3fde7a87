package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/melissaiman/portfolio/internal/content"
	"github.com/melissaiman/portfolio/internal/preview"
)

func runPreviewCmd(_ *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("preview needs an interactive terminal")
	}
	site, err := content.Load()
	if err != nil {
		return err
	}
	m := preview.New(site, preview.Options{Reduced: previewReduced})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("preview failed: %w", err)
	}
	return nil
}
