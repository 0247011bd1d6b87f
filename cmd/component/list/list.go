package list

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dotupsh/dotup-cli/cmd/browser"
)

var docStyle = lipgloss.NewStyle().Margin(3, 3)

// Item is one plan step in the browser.
type Item struct {
	TitleText       string
	DescriptionText string
	// Command is what 'c' copies to the clipboard; empty hides the action.
	Command string
	// URL is opened by 'o'; set for clone steps with a browsable repo.
	URL string
}

var _ list.DefaultItem = Item{}

func (i Item) Title() string       { return i.TitleText }
func (i Item) Description() string { return i.DescriptionText }
func (i Item) FilterValue() string {
	return strings.Join([]string{i.TitleText, i.DescriptionText, i.Command}, " ")
}

type Model struct {
	list        list.Model
	copyBinding key.Binding
	openBinding key.Binding
}

func NewModelWithDelegate(items []Item, title string, delegate list.ItemDelegate) Model {
	var listItems []list.Item
	for _, i := range items {
		listItems = append(listItems, i)
	}

	m := Model{
		list: list.New(listItems, delegate, 0, 0),
	}
	m.list.Title = title

	m.copyBinding = key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy command"))
	m.openBinding = key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open repo"))
	m.list.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{m.copyBinding, m.openBinding}
	}

	m.list.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{m.copyBinding, m.openBinding}
	}

	return m
}

func NewModel(items []Item, title string) Model {
	return NewModelWithDelegate(items, title, list.NewDefaultDelegate())
}

func (m Model) Init() tea.Cmd {
	return nil
}

// OpenBrowser fires the platform opener for url and reports back with one of
// the two messages.
func OpenBrowser(url string, onComplete tea.Msg, onErr tea.Msg) tea.Cmd {
	cmd := browser.OpenCmd(url)
	if cmd == nil {
		return func() tea.Msg {
			return onErr
		}
	}

	if err := cmd.Start(); err != nil {
		return func() tea.Msg {
			return onErr
		}
	}

	return func() tea.Msg {
		return onComplete
	}
}

type NopMsg struct{}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.list.FilterState() == list.Unfiltered {
			switch msg.String() {
			case "c":
				if item, ok := m.list.SelectedItem().(Item); ok && item.Command != "" {
					if err := clipboard.WriteAll(item.Command); err == nil {
						return m, m.list.NewStatusMessage("copied: " + item.Command)
					}
				}
			case "o":
				if item, ok := m.list.SelectedItem().(Item); ok && item.URL != "" {
					return m, OpenBrowser(item.URL, NopMsg{}, NopMsg{})
				}
			}
		}

	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
	case NopMsg:
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return docStyle.Render(m.list.View())
}
