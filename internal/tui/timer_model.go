package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/giglog/giglog/internal/models"
	"github.com/giglog/giglog/internal/timeclock"
)

// SessionGateway is what the timer needs from a session backend. Both the
// local database service and the HTTP client satisfy it, so the TUI never
// knows which one it is talking to.
type SessionGateway interface {
	PauseSession(sessionID string) (*models.WorkSession, error)
	ResumeSession(sessionID string) (*models.WorkSession, error)
	CompleteSession(sessionID string) (*models.WorkSession, error)
}

// TimerModel is the TUI model for a live work session. It holds no timer
// state of its own: the displayed status and elapsed time are re-derived
// from the session record on every render.
type TimerModel struct {
	gateway SessionGateway
	session *models.WorkSession

	jobTitle    string
	companyName string

	width  int
	height int
	now    time.Time

	// Each gateway call gets a sequence number; responses carrying an older
	// number than the latest request are dropped so an earlier slow call can
	// never overwrite the result of a later one.
	seq     int
	pending bool
	notice  string

	exiting bool // user left with the session still on the server
}

// timerTickMsg drives the once-a-second clock refresh.
type timerTickMsg time.Time

// sessionActionMsg carries the result of a pause/resume/complete call.
type sessionActionMsg struct {
	seq     int
	action  string
	session *models.WorkSession
	err     error
}

// NewTimerModel creates a timer model for an existing session.
func NewTimerModel(gateway SessionGateway, session *models.WorkSession, jobTitle, companyName string) TimerModel {
	return TimerModel{
		gateway:     gateway,
		session:     session,
		jobTitle:    jobTitle,
		companyName: companyName,
		now:         time.Now(),
	}
}

func (m TimerModel) status() timeclock.Status {
	return m.session.Status()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

func (m TimerModel) Init() tea.Cmd {
	if m.status() == timeclock.StatusRunning {
		return tick()
	}
	return nil
}

// dispatch runs a gateway call off the update loop, tagged with the next
// sequence number.
func (m *TimerModel) dispatch(action string, call func(string) (*models.WorkSession, error)) tea.Cmd {
	m.seq++
	m.pending = true
	seq := m.seq
	sessionID := m.session.ID
	return func() tea.Msg {
		session, err := call(sessionID)
		return sessionActionMsg{seq: seq, action: action, session: session, err: err}
	}
}

func (m TimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		m.now = time.Time(msg)
		// Only a running session keeps the tick chain alive; paused and
		// completed sessions have a fixed reading.
		if m.status() == timeclock.StatusRunning && !m.exiting {
			return m, tick()
		}
		return m, nil

	case sessionActionMsg:
		if msg.seq != m.seq {
			// Stale response from a superseded request.
			return m, nil
		}
		m.pending = false
		if msg.err != nil {
			// Displayed state stays as-is; the record was not changed.
			m.notice = fmt.Sprintf("Failed to %s", msg.action)
			return m, nil
		}
		m.notice = ""
		m.session = msg.session
		m.now = time.Now()
		if m.status() == timeclock.StatusRunning {
			return m, tick()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.pending {
			// One transition in flight at a time.
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			}
			return m, nil
		}
		switch msg.String() {
		case "p", "P":
			if m.status() == timeclock.StatusRunning {
				return m, m.dispatch("Pause", m.gateway.PauseSession)
			}
		case "r", "R":
			if m.status() == timeclock.StatusPaused {
				return m, m.dispatch("Resume", m.gateway.ResumeSession)
			}
		case "s", "S":
			switch m.status() {
			case timeclock.StatusRunning, timeclock.StatusPaused:
				return m, m.dispatch("Complete", m.gateway.CompleteSession)
			case timeclock.StatusCompleted:
				return m, tea.Quit
			}
		case "q", "Q", "esc":
			if m.status() != timeclock.StatusCompleted {
				m.exiting = true
			}
			return m, tea.Quit
		case "ctrl+c":
			m.exiting = m.status() != timeclock.StatusCompleted
			return m, tea.Quit
		case "enter":
			if m.status() == timeclock.StatusCompleted {
				return m, tea.Quit
			}
		}
	}

	return m, nil
}

func (m TimerModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	helpBar := m.renderHelpBar()
	contentHeight := m.height - 2

	panel := m.renderTimerPanel(m.width, contentHeight)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		panel,
		helpBar,
	)
}

func (m TimerModel) renderTimerPanel(width, height int) string {
	var components []string

	centered := func(style lipgloss.Style) lipgloss.Style {
		return style.Align(lipgloss.Center).Width(width)
	}

	headerStyle := centered(lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true))
	components = append(components, headerStyle.Render("GIGLOG"))

	// Status label, colored per state.
	status := m.status()
	label, color := statusLabel(status)
	statusStyle := centered(lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Bold(true))
	components = append(components, statusStyle.Render(label))

	// Job and company.
	titleText := m.jobTitle
	if m.companyName != "" {
		titleText = fmt.Sprintf("%s · %s", m.jobTitle, m.companyName)
	}
	if len(titleText) > width-4 && width > 7 {
		titleText = titleText[:width-7] + "..."
	}
	titleStyle := centered(lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Bold(true))
	components = append(components, titleStyle.Render(titleText))

	// Big clock, re-derived from the record every render.
	elapsed := m.session.ElapsedSeconds(m.now)
	clockColor := ColorAccentBright
	if status == timeclock.StatusPaused {
		clockColor = ColorWarning
	} else if status == timeclock.StatusCompleted {
		clockColor = ColorSuccess
	}
	clockDisplay := renderBigClock(timeclock.FormatSeconds(elapsed), clockColor)
	var clockLines []string
	for _, line := range strings.Split(clockDisplay, "\n") {
		clockLines = append(clockLines, centered(lipgloss.NewStyle()).Render(line))
	}
	components = append(components, strings.Join(clockLines, "\n"))

	if m.session.StartTime != nil {
		sessionInfo := fmt.Sprintf("Started at %s", m.session.StartTime.Local().Format("15:04:05"))
		sessionStyle := centered(lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Italic(true))
		components = append(components, sessionStyle.Render(sessionInfo))
	}

	if m.notice != "" {
		noticeStyle := centered(lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError)).
			Bold(true))
		components = append(components, noticeStyle.Render(m.notice))
	} else if m.pending {
		pendingStyle := centered(lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDisabledText)))
		components = append(components, pendingStyle.Render("..."))
	}

	content := strings.Join(components, "\n\n")

	panelStyle := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center)

	return panelStyle.Render(content)
}

func statusLabel(status timeclock.Status) (label, color string) {
	switch status {
	case timeclock.StatusRunning:
		return "● TRACKING TIME", ColorAccentBright
	case timeclock.StatusPaused:
		return "‖ PAUSED", ColorWarning
	case timeclock.StatusCompleted:
		return "✔ COMPLETED", ColorSuccess
	default:
		return "IDLE", ColorDisabledText
	}
}

func (m TimerModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)

	var helpText string
	switch m.status() {
	case timeclock.StatusRunning:
		helpText = "p pause · s stop & save · esc/q exit (keep running)"
	case timeclock.StatusPaused:
		helpText = "r resume · s stop & save · esc/q exit (keep paused)"
	case timeclock.StatusCompleted:
		helpText = "enter/q close"
	default:
		helpText = "esc/q exit"
	}

	return helpStyle.Render(helpText)
}
