package commands

import (
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/giglog/giglog/internal/config"
	"github.com/giglog/giglog/internal/db"
	"github.com/giglog/giglog/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the giglog API server",
	Long: `Run the REST API server. The listen port comes from --port, the
GIGLOG_PORT environment variable, or defaults to 8080. GIGLOG_DB overrides
the database location.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := db.Initialize(); err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}

		addr := config.ServerAddr()
		if port, _ := cmd.Flags().GetString("port"); port != "" {
			addr = ":" + port
		}

		router := server.NewRouter()

		log.Printf("giglog server listening on %s", addr)
		if err := http.ListenAndServe(addr, router); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	},
}

func init() {
	serveCmd.Flags().String("port", "", "Port to listen on (overrides GIGLOG_PORT)")
}
