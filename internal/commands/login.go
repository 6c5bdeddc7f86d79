package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/giglog/giglog/internal/api"
	"github.com/giglog/giglog/internal/config"
	"github.com/giglog/giglog/internal/tui"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to a giglog server",
	Long: `Log in to a giglog server. Credentials are exchanged for a token stored
in ~/.giglog/config.yml; once logged in, all commands operate against the
server instead of the local database.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		serverURL, _ := cmd.Flags().GetString("server")
		if serverURL == "" {
			serverURL = cfg.ServerURL
		}
		if serverURL == "" {
			serverURL = "http://localhost:8080"
		}

		email, password, ok, err := tui.RunLoginTUI()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if !ok {
			fmt.Println("Login cancelled.")
			return
		}

		client := api.NewClient(serverURL, "")
		token, err := client.LogIn(email, password)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		cfg.ServerURL = serverURL
		cfg.Token = token
		cfg.Email = email
		if err := config.Save(cfg); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("✅ Logged in to %s as %s\n", serverURL, email)
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and return to the local database",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if !cfg.Remote() {
			fmt.Println("Not logged in to a server.")
			return
		}

		// Best effort; the token is discarded locally either way.
		if err := api.NewClient(cfg.ServerURL, cfg.Token).LogOut(); err != nil {
			fmt.Printf("Warning: failed to revoke token on server: %v\n", err)
		}

		cfg.Token = ""
		cfg.Email = ""
		if err := config.Save(cfg); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Println("Logged out. Commands now use the local database.")
	},
}

func init() {
	loginCmd.Flags().String("server", "", "Server URL (defaults to the configured one, then http://localhost:8080)")
}
