package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/giglog/giglog/internal/models"
	"github.com/giglog/giglog/internal/timeclock"
)

// RunTimerTUI runs the live timer for a session and prints a closing summary
// once the user leaves.
func RunTimerTUI(gateway SessionGateway, session *models.WorkSession, jobTitle, companyName string) error {
	model := NewTimerModel(gateway, session, jobTitle, companyName)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	timerModel, ok := finalModel.(TimerModel)
	if !ok {
		return nil
	}

	final := timerModel.session
	switch final.Status() {
	case timeclock.StatusCompleted:
		fmt.Printf("Completed work session for %s: %s\n",
			jobTitle, timeclock.FormatSeconds(final.ElapsedSeconds(timerModel.now)))
	case timeclock.StatusRunning:
		fmt.Printf("Timer is still running for %s.\n", jobTitle)
		fmt.Println("Use 'giglog status' to check it or 'giglog stop' to finish.")
	case timeclock.StatusPaused:
		fmt.Printf("Session for %s left paused.\n", jobTitle)
		fmt.Println("Use 'giglog resume' to continue or 'giglog stop' to finish.")
	}

	return nil
}

// RunLoginTUI collects credentials interactively. ok is false when the user
// cancelled the form.
func RunLoginTUI() (email, password string, ok bool, err error) {
	p := tea.NewProgram(NewLoginModel())
	finalModel, err := p.Run()
	if err != nil {
		return "", "", false, err
	}

	m, isLogin := finalModel.(LoginModel)
	if !isLogin || !m.submitted {
		return "", "", false, nil
	}
	return m.Email(), m.Password(), true, nil
}
