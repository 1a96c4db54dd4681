package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/noorjournal/noor/internal/models"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	hijriStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("108")).
			Italic(true)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	refStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 2)
)

func renderDay(e models.DailyEntry) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(e.Date))
	if e.HijriDate != "" {
		b.WriteString("  " + hijriStyle.Render(e.HijriDate))
	}
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Prayers") + "\n")
	for _, name := range models.PrayerNames() {
		done, _ := e.Prayers.Get(name)
		b.WriteString("  " + checkbox(done) + " " + name + "\n")
	}

	b.WriteString("\n" + sectionStyle.Render("Habits") + "\n")
	b.WriteString(fmt.Sprintf("  quran:   %s\n", e.Quran))
	b.WriteString(fmt.Sprintf("  workout: %s\n", e.Workout))
	b.WriteString(fmt.Sprintf("  skill:   %s", e.Skill.Done))
	if e.Skill.Notes != "" {
		b.WriteString(": " + e.Skill.Notes)
	}
	b.WriteString("\n")

	if len(e.CustomTasks) > 0 {
		b.WriteString("\n" + sectionStyle.Render("Tasks") + "\n")
		for _, t := range e.CustomTasks {
			b.WriteString(fmt.Sprintf("  %s %s  (%s)\n", checkbox(t.Done), t.Text, shortID(t.ID)))
		}
	}

	if e.Diary != "" {
		b.WriteString("\n" + sectionStyle.Render("Diary") + "\n")
		b.WriteString("  " + e.Diary + "\n")
	}

	return panelStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func renderInspiration(data models.DailyInspiration) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Ayah") + "\n")
	b.WriteString(data.Ayah.Arabic + "\n")
	if data.Ayah.Urdu != "" {
		b.WriteString(data.Ayah.Urdu + "\n")
	}
	b.WriteString(refStyle.Render(data.Ayah.Ref) + "\n\n")

	b.WriteString(sectionStyle.Render("Hadith") + "\n")
	b.WriteString(data.Hadith.Arabic + "\n")
	if data.Hadith.Urdu != "" {
		b.WriteString(data.Hadith.Urdu + "\n")
	}
	b.WriteString(refStyle.Render(data.Hadith.Ref))

	return panelStyle.Render(b.String())
}

func checkbox(done bool) string {
	if done {
		return doneStyle.Render("[x]")
	}
	return pendingStyle.Render("[ ]")
}

// shortID keeps day-view output readable; full ids still work everywhere
// an id is accepted.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
