package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/Conte777/MediaGrab/internal/app"
)

var version = "0.1.0"

func main() {
	root := &cobra.Command{
		Use:   "mediagrab",
		Short: "Telegram bot that downloads YouTube and Instagram media",
		Long: `MediaGrab answers YouTube links with a video or audio download and
Instagram post links with the post media. Running without a subcommand starts the bot.`,
		SilenceUsage: true,
		RunE:         runBot,
	}

	root.AddCommand(serveCmd())
	root.AddCommand(doctorCmd())
	root.AddCommand(versionCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the Telegram bot",
		RunE:  runBot,
	}
}

// runBot blocks until SIGINT or SIGTERM
func runBot(cmd *cobra.Command, args []string) error {
	fx.New(app.CreateApp()).Run()
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "mediagrab %s\n", version)
		},
	}
}
