package util

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mpapenbr/paceviz/pkg/config"
	"github.com/mpapenbr/paceviz/pkg/model"
	"github.com/mpapenbr/paceviz/pkg/series"
)

// CategoryStyle colors text like the series of the category
func CategoryStyle(cat model.Category) lipgloss.Style {
	s := lipgloss.NewStyle()
	if config.NoColor {
		return s
	}
	if c, ok := series.DefaultColors[cat]; ok {
		s = s.Foreground(lipgloss.Color(c))
	}
	return s
}

func HeaderStyle() lipgloss.Style {
	if config.NoColor {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Bold(true)
}

func MutedStyle() lipgloss.Style {
	if config.NoColor {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Faint(true)
}
