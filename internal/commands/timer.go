package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/giglog/giglog/internal/models"
	"github.com/giglog/giglog/internal/timeclock"
	"github.com/giglog/giglog/internal/tui"
)

var startCmd = &cobra.Command{
	Use:   "start [job-id]",
	Short: "Start a work session on a job",
	Long: `Start a work session. Opens the interactive timer by default, use --no-ui
for a simple start.

Examples:
  giglog start 4f1c...        # Start session with interactive timer
  giglog start 4f1c... --no-ui # Start session and return to the shell`,
	Args: cobra.ExactArgs(1),
	Run: withBackend(func(b backend, cmd *cobra.Command, args []string) {
		session, err := b.StartSession(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		title, company := jobLabel(b, session.JobID)

		noUI, _ := cmd.Flags().GetBool("no-ui")
		if noUI {
			fmt.Printf("⏱️  Started tracking time for %s\n", title)
			if session.StartTime != nil {
				fmt.Printf("Started at: %s\n", session.StartTime.Local().Format("15:04:05"))
			}
			return
		}

		if err := tui.RunTimerTUI(b, session, title, company); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}),
}

var pauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Pause the active work session",
	Run: withBackend(func(b backend, cmd *cobra.Command, args []string) {
		session := requireActiveSession(b)
		if session == nil {
			return
		}

		paused, err := b.PauseSession(session.ID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		title, _ := jobLabel(b, paused.JobID)
		fmt.Printf("⏸️  Paused %s at %s\n", title, elapsedDisplay(paused))
	}),
}

var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Resume the paused work session",
	Run: withBackend(func(b backend, cmd *cobra.Command, args []string) {
		session := requireActiveSession(b)
		if session == nil {
			return
		}

		resumed, err := b.ResumeSession(session.ID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		title, _ := jobLabel(b, resumed.JobID)
		fmt.Printf("▶️  Resumed %s at %s\n", title, elapsedDisplay(resumed))
	}),
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Complete the active work session",
	Run: withBackend(func(b backend, cmd *cobra.Command, args []string) {
		session := requireActiveSession(b)
		if session == nil {
			return
		}

		completed, err := b.CompleteSession(session.ID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		title, _ := jobLabel(b, completed.JobID)
		fmt.Printf("⏹️  Completed work session for %s\n", title)
		fmt.Printf("Session duration: %s\n", elapsedDisplay(completed))
	}),
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current work session",
	Run: withBackend(func(b backend, cmd *cobra.Command, args []string) {
		session, err := b.ActiveSession()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if session == nil {
			fmt.Println("No active work session")
			return
		}

		title, company := jobLabel(b, session.JobID)

		if ui, _ := cmd.Flags().GetBool("ui"); ui {
			if err := tui.RunTimerTUI(b, session, title, company); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		switch session.Status() {
		case timeclock.StatusPaused:
			fmt.Printf("⏸️  Paused: %s\n", title)
		default:
			fmt.Printf("⏱️  Currently tracking: %s\n", title)
		}
		if session.StartTime != nil {
			fmt.Printf("Started at: %s\n", session.StartTime.Local().Format("15:04:05"))
		}
		fmt.Printf("Elapsed time: %s\n", elapsedDisplay(session))
	}),
}

// requireActiveSession fetches the active session or prints why there is
// nothing to act on.
func requireActiveSession(b backend) *models.WorkSession {
	session, err := b.ActiveSession()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return nil
	}
	if session == nil {
		fmt.Println("No active work session")
		return nil
	}
	return session
}

// jobLabel resolves a job id to its title and company name for display.
// Lookups are best effort; the raw id is better than failing the command.
func jobLabel(b backend, jobID string) (title, company string) {
	jobs, err := b.ListJobs("")
	if err != nil {
		return jobID, ""
	}
	for _, job := range jobs {
		if job.ID != jobID {
			continue
		}
		title = job.Title
		if companies, err := b.ListCompanies(); err == nil {
			for _, c := range companies {
				if c.ID == job.CompanyID {
					company = c.Name
					break
				}
			}
		}
		return title, company
	}
	return jobID, ""
}

func elapsedDisplay(session *models.WorkSession) string {
	return timeclock.FormatSeconds(session.ElapsedSeconds(time.Now()))
}

func init() {
	startCmd.Flags().Bool("no-ui", false, "Start the session without the interactive timer")
	statusCmd.Flags().Bool("ui", false, "Open the interactive timer for the active session")
}
