package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/rogersnm/taskpad/internal/model"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	openStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	overdueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	highStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

func RenderMarkdown(content string) (string, error) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return "", fmt.Errorf("creating renderer: %w", err)
	}
	out, err := r.Render(content)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}

func RenderField(label, value string) string {
	return labelStyle.Render(label+":") + " " + value
}

// RenderCompleted shows the completion flag, flagging open tasks past due.
func RenderCompleted(completed, overdue bool) string {
	if completed {
		return doneStyle.Render("yes")
	}
	s := openStyle.Render("no")
	if overdue {
		s += " " + overdueStyle.Render("(overdue)")
	}
	return s
}

func RenderPriority(p string) string {
	if p == "" {
		return "-"
	}
	if model.PriorityRank(p) == 0 {
		return highStyle.Render(p)
	}
	return p
}

func RenderDue(due string) string {
	if due == "" {
		return "-"
	}
	return due
}

func RenderEntityHeader(title string, fields []string) string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render(title))
	sb.WriteString("\n")
	for _, f := range fields {
		sb.WriteString("  " + f + "\n")
	}
	return sb.String()
}
