// Package display provides the terminal storefront using Bubble Tea.
//
// The [UI] type manages a status bar (clock, open/closed, order count)
// and an input prompt at the bottom of the terminal. All application
// output is printed above the rendered area via Program.Println /
// Printf, so concurrent writes never garble the display.
package display

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/pizzaco/internal/domain"
)

// ── Styles ───────────────────────────────────────────────────────

var (
	barBg = lipgloss.NewStyle().
		Background(lipgloss.Color("#27272a")).
		Foreground(lipgloss.Color("#a1a1aa"))

	barOpenStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#27272a")).
			Foreground(lipgloss.Color("#bbf7d0"))

	barClosedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#27272a")).
			Foreground(lipgloss.Color("#fca5a5"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	// BannerStyle is the muted slate used for the startup banner.
	BannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fdba74")).
			Bold(true)

	chatStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bae6fd"))

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0"))

	primaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8"))

	secondaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	urgentOutputStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#fca5a5"))

	userInputEchoStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#a1a1aa"))
)

const prompt = "pizza> "

// ── UI ───────────────────────────────────────────────────────────

// UI manages the terminal through Bubble Tea.
//
// Call [NewUI] then [UI.Run] (blocking). Other goroutines may safely
// call [UI.Println], [UI.Printf], [UI.Refresh] and read from
// [UI.InputChan] at any time.
type UI struct {
	program *tea.Program
	title   string
	inputCh chan string
	readyCh chan struct{}
	quitCh  chan struct{}
	ready   atomic.Bool
	done    atomic.Bool
}

// NewUI creates the display with the shop name and the status to show
// until the first Refresh. Call Run() to start.
func NewUI(title string, initial domain.ShopStatus) *UI {
	u := &UI{
		title:   title,
		inputCh: make(chan string, 16),
		readyCh: make(chan struct{}),
		quitCh:  make(chan struct{}),
	}

	ti := textinput.New()
	// Plain-text prompt keeps the textinput width math correct; styled
	// prompts add ANSI bytes that break its offset calculations.
	ti.Prompt = prompt
	ti.PromptStyle = promptStyle
	ti.TextStyle = userInputEchoStyle
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8"))
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 60 // updated on first WindowSizeMsg

	m := model{
		title:   title,
		status:  initial,
		input:   ti,
		inputCh: u.inputCh,
		onReady: func() {
			u.ready.Store(true)
			close(u.readyCh)
		},
		echoFn: u.PrintUserInput,
	}
	u.program = tea.NewProgram(m)
	return u
}

// live reports whether the Bubble Tea loop is accepting messages.
func (u *UI) live() bool {
	return u.ready.Load() && !u.done.Load()
}

// Println prints a line above the prompt. Thread-safe.
// Falls back to fmt.Println before the program starts or after it exits.
func (u *UI) Println(a ...interface{}) {
	if u.live() {
		u.program.Println(a...)
	} else {
		fmt.Println(a...)
	}
}

// Printf prints formatted text above the prompt on its own line. Thread-safe.
func (u *UI) Printf(format string, a ...interface{}) {
	if u.live() {
		u.program.Printf(format, a...)
	} else {
		fmt.Printf(format+"\n", a...)
	}
}

// Refresh pushes a new status snapshot to the status bar. Snapshots sent
// before the program is running are dropped; the next one catches up.
func (u *UI) Refresh(st domain.ShopStatus) {
	if u.live() {
		u.program.Send(statusMsg(st))
	}
}

// InputChan returns completed user-input lines.
func (u *UI) InputChan() <-chan string { return u.inputCh }

// ── Styled print helpers ─────────────────────────────────────────

// PrintTitle prints the shop header.
func (u *UI) PrintTitle(text string) {
	u.Println(titleStyle.Render("  " + text))
}

// PrintChat prints a conversational line from the shop.
func (u *UI) PrintChat(text string) {
	u.Println(chatStyle.Render("  " + text))
}

// PrintSection prints a section heading like "Our Menu".
func (u *UI) PrintSection(text string) {
	u.Println(sectionStyle.Render("  " + text))
}

// PrintItem prints a primary line such as a menu row.
func (u *UI) PrintItem(text string) {
	u.Println(primaryStyle.Render("  " + text))
}

// PrintHint prints a secondary/dimmed line.
func (u *UI) PrintHint(text string) {
	u.Println(secondaryStyle.Render("    " + text))
}

// PrintUrgent prints an error or warning line.
func (u *UI) PrintUrgent(text string) {
	u.Println(urgentOutputStyle.Render("  " + text))
}

// PrintUserInput echoes the user's typed command into the scrollback.
func (u *UI) PrintUserInput(text string) {
	u.Println(promptStyle.Render("pizza") + secondaryStyle.Render("> ") + userInputEchoStyle.Render(text))
}

// WaitReady blocks until the Bubble Tea event loop is running.
func (u *UI) WaitReady() { <-u.readyCh }

// Quit tells Bubble Tea to exit.
func (u *UI) Quit() {
	u.program.Quit()
}

// QuitChan is closed when Run returns.
func (u *UI) QuitChan() <-chan struct{} { return u.quitCh }

// Run starts the Bubble Tea event loop. Blocks until quit.
func (u *UI) Run() error {
	_, err := u.program.Run()
	u.done.Store(true)
	close(u.quitCh)
	return err
}

// ── Bubble Tea model ─────────────────────────────────────────────

type model struct {
	title   string
	status  domain.ShopStatus
	input   textinput.Model
	inputCh chan<- string
	onReady func()
	echoFn  func(string) // prints user input into scrollback
	width   int
}

// statusMsg carries a fresh snapshot from the clock or a gesture.
type statusMsg domain.ShopStatus

func (m model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		signalReady(m.onReady),
		tea.SetWindowTitle(m.windowTitle()),
	)
}

func signalReady(fn func()) tea.Cmd {
	return func() tea.Msg {
		fn()
		return nil
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEnter:
			v := m.input.Value()
			m.input.Reset()
			if strings.TrimSpace(v) != "" {
				m.inputCh <- v
				// Echo from a Cmd so it runs outside Update.
				echoFn := m.echoFn
				return m, func() tea.Msg {
					echoFn(v)
					return nil
				}
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		if msg.Width > len(prompt) {
			m.input.Width = msg.Width - len(prompt)
		}
		return m, nil

	case statusMsg:
		was := m.status.Open
		m.status = domain.ShopStatus(msg)
		if was != m.status.Open {
			return m, tea.SetWindowTitle(m.windowTitle())
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) windowTitle() string {
	return m.title + " · " + FooterLine(m.status.Open)
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(m.renderBar())
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	return b.String()
}

func (m model) renderBar() string {
	avail := barClosedStyle
	if m.status.Open {
		avail = barOpenStyle
	}
	sep := barBg.Render("  │  ")

	content := barBg.Render(" "+m.status.Now.Format("15:04:05")) +
		sep + avail.Render(FooterLine(m.status.Open)) +
		sep + barBg.Render(orderCount(m.status.Orders)+" ")

	w := m.width
	if w <= 0 {
		w = 80
	}
	return barBg.Width(w).Render(content)
}

func orderCount(n int) string {
	switch n {
	case 0:
		return "no orders"
	case 1:
		return "1 order"
	default:
		return fmt.Sprintf("%d orders", n)
	}
}
