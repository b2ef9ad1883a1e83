package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tagdeck/tagdeck-cli/pkg/catalog"
	"github.com/tagdeck/tagdeck-cli/pkg/models"
)

var (
	updateNickname string
	updateStatus   string
	updateSet      []string
)

// NewUpdateCommand creates the update command
func NewUpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <type> <id|code>",
		Short: "Update a tag's nickname, status or profile fields",
		Long: `Update one tag. The tag is loaded from the catalog first, so the
submitted body always carries the complete editable field set; anything
not overridden keeps its current value.

Examples:
  # Rename a tag
  tagdeck update car TD-0001 --nickname "Daily ride"

  # Suspend a tag
  tagdeck update pet TD-0214 --status SUSPENDED

  # Change profile fields
  tagdeck update car TD-0001 --set vehicleNumber=TN01AB1234 --set vehicleType=Sedan`,
		Args: cobra.ExactArgs(2),
		RunE: runUpdate,
	}

	cmd.Flags().StringVar(&updateNickname, "nickname", "", "New nickname")
	cmd.Flags().StringVar(&updateStatus, "status", "", "New status (MINTED, ACTIVE, SUSPENDED, REVOKED)")
	cmd.Flags().StringArrayVar(&updateSet, "set", nil, "Profile field override as name=value (repeatable)")

	return cmd
}

// parseSetArgs parses repeated --set name=value flags.
func parseSetArgs(args []string) (map[string]string, error) {
	values := make(map[string]string, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --set value %q (expected name=value)", arg)
		}
		values[name] = value
	}
	return values, nil
}

func runUpdate(cmd *cobra.Command, args []string) error {
	domainType, err := models.ParseDomainType(args[0])
	if err != nil {
		return err
	}
	overrides, err := parseSetArgs(updateSet)
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

	form := catalog.NewEditForm(*tag)
	if cmd.Flags().Changed("nickname") {
		form.Nickname = updateNickname
	}
	if updateStatus != "" {
		form.Status = models.Status(strings.ToUpper(updateStatus))
	}
	for name, value := range overrides {
		if err := form.Set(name, value); err != nil {
			return err
		}
	}
	if err := form.Validate(); err != nil {
		return err
	}

	if err := c.UpdateTag(cmd.Context(), form.TagID, form.Body()); err != nil {
		return err
	}

	fmt.Printf("✓ Updated tag %s\n", tag.Code)
	return nil
}
