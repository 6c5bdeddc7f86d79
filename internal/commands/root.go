package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "giglog",
	Short: "Freelancer bookkeeping and time tracking",
	Long: `giglog keeps a freelancer's books from the terminal: companies, jobs,
payments, and a live work session timer. Run 'giglog serve' to host the API
server, or use the timer commands directly against the local database.`,
}

// withBackend wraps a command function, resolving the local-or-remote
// session store first.
func withBackend(fn func(b backend, cmd *cobra.Command, args []string)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		b, err := newBackend()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fn(b, cmd, args)
	}
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("giglog %s (commit %s, built %s)\n", version, commit, date)
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(pauseCmd)
	rootCmd.AddCommand(resumeCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(companyCmd)
	rootCmd.AddCommand(jobCmd)
	rootCmd.AddCommand(paymentCmd)
	rootCmd.AddCommand(versionCmd)
}
