package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tagdeck/tagdeck-cli/internal/cli"
	"github.com/tagdeck/tagdeck-cli/pkg/models"
)

var deleteForce bool

// NewDeleteCommand creates the delete command
func NewDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <type> <id|code>",
		Short: "Permanently delete a tag",
		Long: `Permanently delete a tag from the catalog.

This action cannot be undone; there is no soft delete. Without --force
an interactive confirmation is required, and nothing is sent to the
backend until it is given.

Examples:
  # Delete with confirmation
  tagdeck delete car TD-0001

  # Delete without confirmation
  tagdeck delete car TD-0001 --force`,
		Args: cobra.ExactArgs(2),
		RunE: runDelete,
	}

	cmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Delete without confirmation")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	domainType, err := models.ParseDomainType(args[0])
	if err != nil {
		return err
	}

	c, _, err := NewClient()
	if err != nil {
		return err
	}

	tag, err := findTag(cmd.Context(), c, domainType, args[1])
	if err != nil {
		return err
	}

	if !deleteForce {
		message := fmt.Sprintf("Delete tag %s? This cannot be undone.", tag.Code)
		if !cli.ConfirmDestructive(os.Stdin, os.Stdout, message) {
			fmt.Println("Cancelled. Nothing was deleted.")
			return nil
		}
	}

	if err := c.DeleteTag(cmd.Context(), tag.ID); err != nil {
		return err
	}

	fmt.Printf("✓ Deleted tag %s\n", tag.Code)
	return nil
}
