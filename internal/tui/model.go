package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"faqbot/internal/domain"
	"faqbot/internal/knowledge"
)

// BotPort is the TUI-facing subset of the responder.
type BotPort interface {
	Respond(message string) string
	RebuildCache()
	SetStore(store domain.KnowledgeStore)
}

// SnapshotChangedMsg signals that the knowledge snapshot on disk was edited
// externally. It is sent via Program.Send so the store swap and cache rebuild
// run on the update loop, never concurrently with a response.
type SnapshotChangedMsg struct{}

type botReplyMsg string

// replyDelay is a short thinking pause before the bot's reply appears.
const replyDelay = 300 * time.Millisecond

// Model is the Bubble Tea model for the chat window.
type Model struct {
	bot      BotPort
	store    domain.KnowledgeStore
	snapshot string
	input    textinput.Model
	viewport viewport.Model
	lines    []string
	status   string
	ready    bool
}

// New creates a new chat model over the given responder and store.
func New(bot BotPort, store domain.KnowledgeStore, snapshotPath string) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Ask me something and press Enter"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	m := Model{bot: bot, store: store, snapshot: snapshotPath, input: ti, viewport: vp, status: "Ready. /train, /kb, /save, /load, /clear, /quit"}
	m.appendBot("Hello! Ask me something, or teach me with /train question => answer.")
	return m
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key, window and snapshot events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, th := transcriptBoxStyle.GetFrameSize()
		_, ih := inputBoxStyle.GetFrameSize()
		reserved := 1 + 1 + ih + 1 // header + status + input frame + spacer
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-th)
		m.refreshTranscript()
		return m, nil
	case botReplyMsg:
		m.appendBot(string(msg))
		return m, nil
	case SnapshotChangedMsg:
		return m.reloadSnapshot(), nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		if msg.String() == "enter" {
			text := strings.TrimSpace(m.input.Value())
			if text != "" {
				m.input.SetValue("")
				return m.handleSubmit(text)
			}
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleSubmit(text string) (tea.Model, tea.Cmd) {
	if strings.HasPrefix(text, "/") {
		return m.handleCommand(text)
	}
	m.appendUser(text)
	// Respond runs here on the update loop, so training and reloads can never
	// overlap a match in flight; only the display of the reply is delayed.
	reply := m.bot.Respond(text)
	return m, tea.Tick(replyDelay, func(time.Time) tea.Msg { return botReplyMsg(reply) })
}

func (m Model) handleCommand(text string) (tea.Model, tea.Cmd) {
	cmd, args, _ := strings.Cut(text, " ")
	switch cmd {
	case "/quit":
		return m, tea.Quit
	case "/clear":
		m.lines = nil
		m.refreshTranscript()
	case "/kb":
		if m.store.IsEmpty() {
			m.appendBot("My knowledge base is empty. Teach me with /train.")
			break
		}
		var sb strings.Builder
		for i, p := range m.store.All() {
			fmt.Fprintf(&sb, "%d) Q: %s\n   A: %s\n", i+1, p.Question, p.Answer)
		}
		m.appendBot("Here is everything I know:\n" + strings.TrimRight(sb.String(), "\n"))
	case "/save":
		if err := knowledge.Save(m.snapshot, m.store); err != nil {
			m.status = "Save failed: " + err.Error()
			break
		}
		m.appendBot(fmt.Sprintf("Knowledge saved to disk (%s).", m.snapshot))
	case "/load":
		return m.reloadSnapshot(), nil
	case "/train":
		question, answer, ok := parseTrain(args)
		if !ok {
			m.appendBot("Usage: /train question => answer (both parts are required).")
			break
		}
		if _, err := m.store.Add(question, answer); err != nil {
			m.status = "Train failed: " + err.Error()
			break
		}
		m.bot.RebuildCache()
		m.appendBot("Thanks — I've learned a new Q/A pair.")
	default:
		m.appendBot("Unknown command. Try /train, /kb, /save, /load, /clear or /quit.")
	}
	return m, nil
}

func (m Model) reloadSnapshot() Model {
	loaded, err := knowledge.Load(m.snapshot)
	if err != nil {
		m.status = "Load failed: " + err.Error()
		return m
	}
	m.store = loaded
	m.bot.SetStore(loaded)
	m.appendBot("Knowledge loaded from disk.")
	return m
}

// parseTrain splits a "/train" argument on the first "=>" separator.
func parseTrain(args string) (question, answer string, ok bool) {
	q, a, found := strings.Cut(args, "=>")
	if !found {
		return "", "", false
	}
	question = strings.TrimSpace(q)
	answer = strings.TrimSpace(a)
	return question, answer, question != "" && answer != ""
}

func (m *Model) appendBot(text string) {
	m.lines = append(m.lines, botPrefixStyle.Render("Bot: ")+text)
	m.refreshTranscript()
}

func (m *Model) appendUser(text string) {
	m.lines = append(m.lines, userPrefixStyle.Render("You: ")+text)
	m.refreshTranscript()
}

func (m *Model) refreshTranscript() {
	m.viewport.SetContent(strings.Join(m.lines, "\n"))
	m.viewport.GotoBottom()
}

// View renders the chat layout: header, transcript, input, status line.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("faqbot")
	transcript := transcriptBoxStyle.Render(m.viewport.View())
	input := inputBoxStyle.Render(m.input.View())
	status := statusStyle.Render(m.status)
	return header + "\n" + transcript + "\n" + input + "\n" + status
}

var (
	transcriptBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	inputBoxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	botPrefixStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	userPrefixStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	statusStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
