package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/heartmarshall/vocab-helper/internal/domain"
)

// Styles holds the lipgloss styles used for terminal output.
type Styles struct {
	Box      lipgloss.Style
	Word     lipgloss.Style
	POS      lipgloss.Style
	Gloss    lipgloss.Style
	Phonetic lipgloss.Style
	Audio    lipgloss.Style
	NotFound lipgloss.Style
	Pending  lipgloss.Style
}

// NewStyles returns the default terminal styles.
func NewStyles() Styles {
	return Styles{
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		Word:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		POS:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33")),
		Gloss:    lipgloss.NewStyle(),
		Phonetic: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("78")),
		Audio:    lipgloss.NewStyle().Faint(true),
		NotFound: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Pending:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
	}
}

// Terminal renders lookup results as boxed terminal text.
type Terminal struct {
	styles   Styles
	language string
}

// NewTerminal creates a Terminal renderer. language is a language code
// used in the pending line.
func NewTerminal(styles Styles, language string) *Terminal {
	return &Terminal{styles: styles, language: language}
}

// Pending renders the line shown while a lookup is in flight.
func (t *Terminal) Pending(word string) string {
	return t.styles.Pending.Render(fmt.Sprintf("%s: searching for %s meaning...", word, LanguageName(t.language)))
}

// Result renders a settled lookup.
func (t *Terminal) Result(result *domain.LookupResult) string {
	if result == nil {
		return ""
	}

	lines := []string{t.styles.Word.Render(result.Word)}

	if p := result.Pronunciation; p != nil && p.Transcription != nil {
		phon := *p.Transcription
		if p.Region != nil {
			phon += " (" + *p.Region + ")"
		}
		lines = append(lines, t.styles.Phonetic.Render(phon))
	}
	if result.HasAudio() {
		lines = append(lines, t.styles.Audio.Render(result.Pronunciation.AudioURL))
	} else {
		lines = append(lines, t.styles.NotFound.Render(PronunciationNotFound))
	}

	lines = append(lines, "")
	if !result.HasMeanings() {
		lines = append(lines, t.styles.NotFound.Render(MeaningNotFound))
	}
	for _, m := range result.Meanings {
		lines = append(lines, t.styles.POS.Render(m.PartOfSpeech+":"))
		for i, g := range m.Glosses {
			lines = append(lines, t.styles.Gloss.Render(fmt.Sprintf("  %d. %s", i+1, g)))
		}
	}

	return t.styles.Box.Render(strings.Join(lines, "\n"))
}
