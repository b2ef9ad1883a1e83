package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tagdeck/tagdeck-cli/internal/cli"
	"github.com/tagdeck/tagdeck-cli/pkg/catalog"
	"github.com/tagdeck/tagdeck-cli/pkg/models"
)

// ListResult is the output structure for the list command
type ListResult struct {
	Type  string     `json:"type" yaml:"type"`
	Items []ListItem `json:"items" yaml:"items"`
	Count int        `json:"count" yaml:"count"`
	Total int        `json:"total,omitempty" yaml:"total,omitempty"`
	Page  int        `json:"page,omitempty" yaml:"page,omitempty"`
	Pages int        `json:"pages,omitempty" yaml:"pages,omitempty"`
}

// ListItem is a single tag in the listing
type ListItem struct {
	ID       string `json:"id" yaml:"id"`
	Code     string `json:"code" yaml:"code"`
	Nickname string `json:"nickname,omitempty" yaml:"nickname,omitempty"`
	Status   string `json:"status" yaml:"status"`
	Profile  string `json:"profile,omitempty" yaml:"profile,omitempty"`
	VendorID string `json:"vendorId,omitempty" yaml:"vendorId,omitempty"`
}

var (
	listSearch string
	listStatus string
	listVendor string
	listPage   int
	listOutput string
)

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <type>",
		Short: "List tags of one type",
		Long: `List tags of one domain type with server-side filtering and pagination.

Types: car, bike, pet, kid

Examples:
  # First page of car tags
  tagdeck list car

  # Search pet tags by owner or profile text
  tagdeck list pet --search "Bruno"

  # Active bike tags for one vendor, page 2
  tagdeck list bike --status ACTIVE --vendor v-001 --page 2

  # JSON output
  tagdeck list kid -o json`,
		Args: cobra.ExactArgs(1),
		RunE: runList,
	}

	cmd.Flags().StringVar(&listSearch, "search", "", "Free-text search on owner/profile fields")
	cmd.Flags().StringVar(&listStatus, "status", "", "Filter by status (MINTED, ACTIVE, SUSPENDED, REVOKED)")
	cmd.Flags().StringVar(&listVendor, "vendor", "", "Filter by vendor id")
	cmd.Flags().IntVar(&listPage, "page", 1, "Page number (1-based)")
	cmd.Flags().StringVarP(&listOutput, "output", "o", "text", "Output format: text, json, yaml")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	domainType, err := models.ParseDomainType(args[0])
	if err != nil {
		return err
	}
	if listStatus != "" && !models.Status(listStatus).Valid() {
		return fmt.Errorf("invalid status: %s", listStatus)
	}

	c, _, err := NewClient()
	if err != nil {
		return err
	}

	filter := catalog.NewFilterState()
	filter.SetSearch(listSearch)
	filter.SetStatus(listStatus)
	filter.SetVendor(listVendor)
	if listPage > 1 {
		filter.Page = listPage
	}

	page, err := c.FetchPage(cmd.Context(), domainType, filter)
	if err != nil {
		return err
	}

	result := ListResult{Type: string(domainType), Count: len(page.Tags)}
	for _, tag := range page.Tags {
		result.Items = append(result.Items, ListItem{
			ID:       tag.ID,
			Code:     tag.Code,
			Nickname: tag.Nickname,
			Status:   string(tag.Status),
			Profile:  tag.ProfileSummary(),
			VendorID: tag.VendorID,
		})
	}
	if page.Meta != nil {
		result.Total = page.Meta.Total
		result.Page = page.Meta.Page
		result.Pages = page.Meta.TotalPages
	}

	if cli.OutputFormat(listOutput) != cli.FormatText {
		return cli.OutputResults(os.Stdout, listOutput, result)
	}

	if len(result.Items) == 0 {
		fmt.Printf("No %s tags found.\n", args[0])
		return nil
	}

	table := cli.NewTableFormatter(os.Stdout)
	table.Header("CODE", "NICKNAME", "STATUS", "PROFILE", "VENDOR")
	for _, item := range result.Items {
		nickname := item.Nickname
		if nickname == "" {
			nickname = "-"
		}
		table.Row(item.Code, nickname, item.Status, item.Profile, item.VendorID)
	}
	table.Flush()

	if page.Meta != nil {
		fmt.Printf("\npage %d/%d · %d total\n", filter.Page, page.Meta.TotalPages, page.Meta.Total)
	}
	return nil
}
