package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"hrdesk/internal/domain"
)

// Model is the Bubble Tea model for the chat interface. It owns the
// conversation transcript; the answering core receives only the current
// query and stays stateless across turns.
type Model struct {
	assistant domain.Assistant
	input     textinput.Model
	viewport  viewport.Model
	messages  []domain.Message
	summary   string
	status    string
	ready     bool
}

// New creates a new chat model. summary is a short knowledge-base digest
// shown under the header; it may be empty.
func New(assistant domain.Assistant, summary string) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Ask about leave, holidays, reimbursements, org charts or HR forms"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	if summary == "" {
		summary = "HR knowledge base loaded."
	}
	return Model{
		assistant: assistant,
		input:     ti,
		viewport:  vp,
		summary:   summary,
		status:    "Ready. Type a question and press Enter.",
	}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, th := transcriptBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		reserved := 2 + 1 + qh + 1 // header + summary, status, input frame, spacer
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-th)
		m.viewport.SetContent(m.renderTranscript())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		if msg.String() == "enter" {
			q := strings.TrimSpace(m.input.Value())
			if q != "" {
				m.messages = append(m.messages, domain.Message{Role: domain.RoleUser, Content: q})
				answer := m.assistant.Answer(context.Background(), q)
				m.messages = append(m.messages, domain.Message{Role: domain.RoleAssistant, Content: answer})
				m.input.SetValue("")
				m.status = "Answered. Ask another question or press Ctrl+C to quit."
				m.viewport.SetContent(m.renderTranscript())
				m.viewport.GotoBottom()
				return m, nil
			}
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the chat layout.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("HR Desk Assistant")
	summary := summaryStyle.Render(m.summary)
	transcript := transcriptBoxStyle.Render(m.viewport.View())
	input := queryBoxStyle.Render(m.input.View())
	status := statusStyle.Render(m.status)
	return header + "\n" + summary + "\n" + transcript + "\n" + input + "\n" + status
}

func (m Model) renderTranscript() string {
	if len(m.messages) == 0 {
		return "No messages yet. Ask your first HR question below."
	}
	var sb strings.Builder
	for i, msg := range m.messages {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		if msg.Role == domain.RoleUser {
			sb.WriteString(userStyle.Render("You: "))
		} else {
			sb.WriteString(assistantStyle.Render("Assistant: "))
		}
		sb.WriteString(msg.Content)
	}
	return sb.String()
}

var (
	transcriptBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	summaryStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	userStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	assistantStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
)

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
