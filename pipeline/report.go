package pipeline

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// StoryResult records what happened to one story group during a run.
type StoryResult struct {
	Anchor    string   `json:"anchor"`
	Title     string   `json:"title"`
	Members   int      `json:"members"`
	Sources   []string `json:"sources,omitempty"`
	Summary   string   `json:"summary"`
	AudioPath string   `json:"audio_path,omitempty"`
	Uploaded  bool     `json:"uploaded,omitempty"`
	Error     string   `json:"error,omitempty"`
}

// Report is the outcome of one pipeline run.
type Report struct {
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at"`
	Fetched    int           `json:"fetched"`
	Relevant   int           `json:"relevant"`
	Groups     int           `json:"groups"`
	Narrated   int           `json:"narrated"`
	Stories    []StoryResult `json:"stories"`
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	statStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	storyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	summaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).PaddingLeft(4).Width(76)
)

// Render formats the report for the terminal.
func (r *Report) Render() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("tunebot run report"))
	b.WriteString("\n")
	b.WriteString(statStyle.Render(fmt.Sprintf(
		"fetched %d · relevant %d · stories %d · narrated %d · took %s",
		r.Fetched, r.Relevant, r.Groups, r.Narrated,
		r.FinishedAt.Sub(r.StartedAt).Round(time.Millisecond),
	)))
	b.WriteString("\n")

	for i, s := range r.Stories {
		mark := okStyle.Render("✓")
		if s.Error != "" {
			mark = failStyle.Render("✗")
		} else if s.AudioPath == "" {
			mark = statStyle.Render("·")
		}
		line := fmt.Sprintf("%s %d. %s", mark, i+1, s.Title)
		if s.Members > 1 {
			line += statStyle.Render(fmt.Sprintf(" (%d reports: %s)", s.Members, strings.Join(s.Sources, ", ")))
		}
		b.WriteString(storyStyle.Render(line))
		b.WriteString("\n")
		if s.Summary != "" && s.Summary != s.Title {
			b.WriteString(summaryStyle.Render(s.Summary))
			b.WriteString("\n")
		}
	}

	return b.String()
}
