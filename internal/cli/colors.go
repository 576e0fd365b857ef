package cli

import (
	"github.com/agbru/tsapredictor/internal/ui"
)

// CLIColorProvider adapts the ui package's active theme to the minimal
// apperrors.ColorProvider interface, breaking the import cycle between
// apperrors and ui.
type CLIColorProvider struct{}

func (CLIColorProvider) Yellow() string { return ui.ColorYellow() }
func (CLIColorProvider) Reset() string  { return ui.ColorReset() }
