package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nlpgym/tagdrill/internal/ui/theme"
)

// TagInput wraps bubbles/textinput for entering a line of POS tags.
type TagInput struct {
	Model     textinput.Model
	submitted bool
	valid     bool
}

// NewTagInput creates a new styled tag input.
func NewTagInput(placeholder string, charLimit int) TagInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	if charLimit > 0 {
		ti.CharLimit = charLimit
	}

	return TagInput{Model: ti}
}

// Init returns the initial command.
func (t TagInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t TagInput) Update(msg tea.Msg) (TagInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the input.
func (t TagInput) View() string {
	view := t.Model.View()
	if t.submitted {
		if t.valid {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	return view
}

// Value returns the current input value.
func (t TagInput) Value() string {
	return t.Model.Value()
}

// Reset clears the input for the next sentence.
func (t *TagInput) Reset() {
	t.Model.SetValue("")
	t.submitted = false
	t.valid = false
}

// Submit marks the input as submitted with a validation result.
func (t *TagInput) Submit(valid bool) {
	t.submitted = true
	t.valid = valid
}
