package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tagdeck/tagdeck-cli/pkg/config"
)

var loginToken string

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store the admin session token",
		Long: `Store the admin session token used on every catalog request.
Session establishment itself (OTP flow) happens outside this console;
paste the token it produced here.

Examples:
  tagdeck login --token eyJhbGci...`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if loginToken == "" {
				return fmt.Errorf("a token is required: tagdeck login --token <token>")
			}
			if err := config.SaveToken(loginToken); err != nil {
				return err
			}
			fmt.Println("✓ Session token stored")
			return nil
		},
	}

	cmd.Flags().StringVar(&loginToken, "token", "", "Session token issued by the auth flow")

	return cmd
}

// NewLogoutCommand creates the logout command
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.ClearToken(); err != nil {
				return err
			}
			fmt.Println("✓ Session token cleared")
			return nil
		},
	}
}
