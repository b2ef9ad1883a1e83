package commands

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/tagdeck/tagdeck-cli/internal/cli"
)

var vendorsOutput string

// NewVendorsCommand creates the vendors command
func NewVendorsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vendors",
		Short: "List sponsoring vendors",
		Long: `List the sponsoring vendors whose branding appears on issued tags.
Vendors are read-only here; vendor management is a separate workflow.

Examples:
  tagdeck vendors
  tagdeck vendors -o json`,
		Args: cobra.NoArgs,
		RunE: runVendors,
	}

	cmd.Flags().StringVarP(&vendorsOutput, "output", "o", "text", "Output format: text, json, yaml")

	return cmd
}

func runVendors(cmd *cobra.Command, args []string) error {
	c, _, err := NewClient()
	if err != nil {
		return err
	}

	vendors, err := c.ListVendors(cmd.Context())
	if err != nil {
		return err
	}

	if cli.OutputFormat(vendorsOutput) != cli.FormatText {
		return cli.OutputResults(os.Stdout, vendorsOutput, vendors)
	}

	if len(vendors) == 0 {
		fmt.Println("No vendors found.")
		return nil
	}

	table := cli.NewTableFormatter(os.Stdout)
	table.Header("ID", "NAME", "CONTACT", "CREATED")
	for _, v := range vendors {
		contact := v.ContactEmail
		if contact == "" {
			contact = "-"
		}
		table.Row(v.ID, v.Name, contact, humanize.Time(v.CreatedAt))
	}
	table.Flush()
	return nil
}
