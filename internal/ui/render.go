// Package ui renders menus, panels, and artifacts for the terminal.
package ui

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"examgen/internal/models"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
	optionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("36"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	panelStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("33")).
			Padding(0, 1)
)

type menuEntry struct {
	option      string
	feature     string
	description string
}

var menuEntries = []menuEntry{
	{"1", "Generate Questions", "Create from content"},
	{"2", "Bloom's Taxonomy", "Questions by level"},
	{"3", "Practice Exam", "Full practice test"},
	{"4", "Flashcards", "Generate flashcards"},
	{"5", "Check Answer", "Evaluate your answer"},
	{"6", "View Bank", "See saved questions"},
	{"0", "Exit", "Close application"},
}

// Banner renders the startup header with the active model name.
func Banner(model string) string {
	lines := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Exam Preparation Question Generator"),
		labelStyle.Render("AI-powered practice question creation"),
		dimStyle.Render("model: "+model),
	)
	return panelStyle.Render(lines)
}

// Menu renders the operation table shown before every selection.
func Menu() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Main Menu"))
	b.WriteString("\n")
	for _, e := range menuEntries {
		b.WriteString(fmt.Sprintf("  %s  %s  %s\n",
			optionStyle.Render(e.option),
			labelStyle.Render(fmt.Sprintf("%-20s", e.feature)),
			dimStyle.Render(e.description),
		))
	}
	return b.String()
}

// Panel renders an artifact as indented JSON inside a titled box. Fallback
// artifacts are shown as plain text so raw model output stays readable.
func Panel(title string, artifact models.Artifact) string {
	var body string
	if artifact.IsFallback() {
		raw, _ := artifact[models.RawResponseKey].(string)
		body = strings.TrimSpace(raw)
	} else {
		pretty, err := json.MarshalIndent(artifact, "", "  ")
		if err != nil {
			body = fmt.Sprintf("%v", artifact)
		} else {
			body = string(pretty)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		panelStyle.Render(body),
	)
}

// Dim renders de-emphasized helper text.
func Dim(s string) string {
	return dimStyle.Render(s)
}

// Label renders an emphasized inline label.
func Label(s string) string {
	return labelStyle.Render(s)
}

// Error renders an operation failure.
func Error(err error) string {
	return errorStyle.Render("error: " + err.Error())
}
