package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tagdeck/tagdeck-cli/cmd/commands"
	"github.com/tagdeck/tagdeck-cli/pkg/models"
	"github.com/tagdeck/tagdeck-cli/pkg/tui"
)

// version is set during build with -ldflags
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "tagdeck",
	Short: "Terminal admin console for a QR identity tag fleet",
	Long: `Tagdeck is a terminal admin console for managing a fleet of QR identity
tags (car, bike, pet and kid safety tags) issued on behalf of sponsoring
vendors. It talks to the tag catalog backend; run 'tagdeck login' first
to store a session token.`,
	Run: func(cmd *cobra.Command, args []string) {
		c, settings, err := commands.NewClient()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		startType, err := models.ParseDomainType(settings.UI.DefaultType)
		if err != nil {
			startType = models.DomainCar
		}

		app := tui.NewApp(c, startType)
		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to start the terminal user interface: %v\n", err)
			fmt.Fprintf(os.Stderr, "This could be due to terminal compatibility issues. Try running in a different terminal.\n")
			os.Exit(1)
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Tagdeck",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Tagdeck version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(commands.NewListCommand())
	rootCmd.AddCommand(commands.NewUpdateCommand())
	rootCmd.AddCommand(commands.NewDeleteCommand())
	rootCmd.AddCommand(commands.NewVendorsCommand())
	rootCmd.AddCommand(commands.NewLoginCommand())
	rootCmd.AddCommand(commands.NewLogoutCommand())
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
