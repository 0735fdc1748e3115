package main

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	AgentName       = "DM"
	PlaceHolderText = "Type a command (e.g., 'look', 'go east')..."
)

// chatEntry is one line of the session transcript.
type chatEntry struct {
	fromPlayer bool
	content    string
}

// ConsoleUI is the BubbleTea model that runs the UI.
// https://github.com/charmbracelet/bubbletea
type ConsoleUI struct {
	config      *ConsoleConfig
	client      *http.Client
	characterID string
	state       *StateResponse
	history     []chatEntry
	lastReply   string

	chatViewport viewport.Model
	metaViewport viewport.Model
	textarea     textarea.Model
	ready        bool
	width        int
	height       int
	err          error
	loading      bool

	// Quit confirmation state
	showQuitModal bool

	// Progress bar state
	progressTick int
}

type turnResponseMsg struct {
	response *TurnResponse
	err      error
}

type progressTickMsg struct{}

var (
	chatPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(1).
			PaddingLeft(3).
			PaddingRight(0)

	metaPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(0).
			PaddingLeft(0).
			PaddingRight(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	narratorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Align(lipgloss.Center)

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey
)

var titleCaser = cases.Title(language.English)

func NewConsoleUI(cfg *ConsoleConfig, client *http.Client, characterID string, state *StateResponse) ConsoleUI {
	ta := textarea.New()
	ta.Placeholder = PlaceHolderText
	ta.Focus()
	ta.Prompt = promptStyle.Render("> ")
	ta.CharLimit = 200
	ta.SetWidth(50)
	ta.SetHeight(1)
	ta.ShowLineNumbers = false

	chatVp := viewport.New(50, 20)
	chatVp.MouseWheelEnabled = true

	metaVp := viewport.New(20, 20)

	return ConsoleUI{
		config:       cfg,
		client:       client,
		characterID:  characterID,
		state:        state,
		textarea:     ta,
		chatViewport: chatVp,
		metaViewport: metaVp,
	}
}

// writeChatContent rebuilds the transcript for the current viewport width.
func (m *ConsoleUI) writeChatContent() {
	chatWidth := m.chatViewport.Width - 6

	var content strings.Builder
	content.WriteString(titleStyle.Render("WARREN") + "\n\n")
	content.WriteString("You stand at the mouth of a goblin warren. Type commands to explore.\n")
	content.WriteString("Try 'look' to get your bearings.\n\n")
	content.WriteString(separatorStyle.Render(strings.Repeat("─", max(chatWidth-6, 10))) + "\n\n")

	for _, entry := range m.history {
		if entry.fromPlayer {
			content.WriteString(userStyle.Render("You: ") + wordwrap.String(entry.content, chatWidth-6) + "\n\n")
		} else {
			content.WriteString(narratorStyle.Render(AgentName+": ") + wordwrap.String(entry.content, chatWidth-6) + "\n\n")
		}
	}

	if m.loading {
		content.WriteString(m.renderProgressBar())
	}

	m.chatViewport.SetContent(content.String())
	m.chatViewport.GotoBottom()
}

// writeMetadata rebuilds the side panel from the latest state snapshot.
func (m *ConsoleUI) writeMetadata() {
	if m.state == nil {
		return
	}
	st := m.state

	var content strings.Builder
	content.WriteString(titleStyle.Render("CHARACTER") + "\n\n")
	content.WriteString(fmt.Sprintf("ID: %s\n", m.characterID))
	content.WriteString(fmt.Sprintf("HP: %d/%d\n", st.CharacterStatus.HP, st.CharacterStatus.MaxHP))
	content.WriteString(fmt.Sprintf("Level: %d\n", st.CharacterStatus.Level))
	content.WriteString(fmt.Sprintf("XP: %d/%d\n\n", st.CharacterStatus.XP, st.CharacterStatus.XPNeeded))

	content.WriteString("Location:\n")
	content.WriteString(st.LocationName + "\n\n")

	content.WriteString("Inventory:\n")
	if len(st.Inventory) == 0 {
		content.WriteString("(empty)\n")
	} else {
		for _, item := range st.Inventory {
			content.WriteString("• " + item + "\n")
		}
	}
	content.WriteString("\n")

	content.WriteString("Quests:\n")
	if len(st.ActiveQuests) == 0 {
		content.WriteString("(none)\n")
	} else {
		for _, quest := range st.ActiveQuests {
			content.WriteString("• " + quest + "\n")
		}
	}
	content.WriteString("\n")

	content.WriteString(fmt.Sprintf("Actions: %d/%d\n", len(st.DiscoveredActions), st.TotalActions))
	for _, verb := range st.DiscoveredActions {
		content.WriteString("• " + titleCaser.String(verb) + "\n")
	}
	if n := len(st.DiscoveredNarrateVerbs); n > 0 {
		content.WriteString(fmt.Sprintf("\nFlavor verbs found: %d\n", n))
	}

	content.WriteString("\n")
	content.WriteString("Commands:\n")
	content.WriteString("• Ctrl+C: Quit\n")
	content.WriteString("• Ctrl+Y: Copy reply\n")
	content.WriteString("• Enter: Send\n")

	m.metaViewport.SetContent(content.String())
}

func (m ConsoleUI) Init() tea.Cmd {
	return textarea.Blink
}

func (m ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}

	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		mvCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.MouseMsg:
		m.chatViewport, vpCmd = m.chatViewport.Update(msg)
		m.textarea, tiCmd = m.textarea.Update(msg)
		m.metaViewport, mvCmd = m.metaViewport.Update(msg)
		return m, tea.Batch(tiCmd, vpCmd, mvCmd)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		chatWidth := int(float64(m.width)*0.75) - 4
		metaWidth := m.width - chatWidth - 6

		m.chatViewport.Width = chatWidth - 2
		m.chatViewport.Height = m.height - 7
		m.metaViewport.Width = metaWidth - 2
		m.metaViewport.Height = m.height - 4
		m.textarea.SetWidth(chatWidth - 4)

		m.ready = true
		m.writeChatContent()
		m.writeMetadata()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.showQuitModal = true
			return m, nil
		case tea.KeyCtrlY:
			if m.lastReply != "" {
				// Best effort; clipboard may be unavailable over ssh.
				_ = clipboard.WriteAll(m.lastReply)
			}
			return m, nil
		case tea.KeyEnter:
			if m.loading {
				return m, nil
			}

			input := strings.TrimSpace(m.textarea.Value())
			if input == "" {
				return m, nil
			}

			m.textarea.Reset()
			m.loading = true
			m.progressTick = 0

			m.history = append(m.history, chatEntry{fromPlayer: true, content: input})
			m.writeChatContent()

			return m, tea.Batch(m.sendTurn(input), progressTick())
		}

	case turnResponseMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			m.history = append(m.history, chatEntry{content: errorStyle.Render("Error: " + msg.err.Error())})
		} else {
			m.lastReply = msg.response.Reply
			m.history = append(m.history, chatEntry{content: msg.response.Reply})
			m.state = &msg.response.StateResponse
			m.writeMetadata()
		}
		m.writeChatContent()
		return m, nil

	case progressTickMsg:
		if m.loading {
			m.progressTick++
			m.writeChatContent()
			return m, progressTick()
		}
	}

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.chatViewport, vpCmd = m.chatViewport.Update(msg)
	m.metaViewport, mvCmd = m.metaViewport.Update(msg)

	return m, tea.Batch(tiCmd, vpCmd, mvCmd)
}

func (m ConsoleUI) sendTurn(input string) tea.Cmd {
	return func() tea.Msg {
		resp, err := postTurn(m.client, m.config.APIBaseURL, m.characterID, input)
		return turnResponseMsg{resp, err}
	}
}

func (m ConsoleUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc, tea.KeyEnter:
			return m, tea.Quit
		default:
			switch msg.String() {
			case "y", "Y":
				return m, tea.Quit
			case "n", "N":
				m.showQuitModal = false
				m.textarea.Focus()
				return m, textarea.Blink
			}
		}
	}

	return m, nil
}

func (m ConsoleUI) renderQuitModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Quit Game?"))
	content.WriteString("\n\n")
	content.WriteString("Your progress is saved after every turn.")
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Press Y to quit, N to continue"))

	modal := modalStyle.Width(50).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m ConsoleUI) View() string {
	if m.showQuitModal {
		return m.renderQuitModal()
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	chatWidth := int(float64(m.width)*0.75) - 4
	metaWidth := m.width - chatWidth - 6

	chatPanel := chatPanelStyle.Width(chatWidth).Height(m.height - 3).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.chatViewport.View(),
			"",
			separatorStyle.Render(strings.Repeat("─", max(chatWidth-4, 10))),
			m.textarea.View(),
		),
	)

	metaPanel := metaPanelStyle.Width(metaWidth).Height(m.height - 2).Render(
		m.metaViewport.View(),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, chatPanel, metaPanel)
}

// renderProgressBar creates an animated progress bar for loading states
func (m ConsoleUI) renderProgressBar() string {
	usable := m.chatViewport.Width - 6
	if usable <= 0 {
		usable = 30
	}
	if usable > 80 {
		usable = 80
	} else if usable < 10 {
		usable = 10
	}

	const totalFrames = 40
	frame := m.progressTick % totalFrames
	filled := (frame * usable) / totalFrames

	var bar strings.Builder
	for i := 0; i < usable; i++ {
		if i < filled {
			bar.WriteString("█")
		} else if i == filled && frame%4 < 2 {
			bar.WriteString("▓")
		} else {
			bar.WriteString("░")
		}
	}
	return separatorStyle.Render(bar.String())
}

// progressTick creates a command that sends a progress tick message
func progressTick() tea.Cmd {
	return tea.Tick(time.Millisecond*200, func(time.Time) tea.Msg {
		return progressTickMsg{}
	})
}
