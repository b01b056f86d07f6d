package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"filesavant/internal/fsmeta"
)

var (
	listOutput string
	listLong   bool
)

var listCmd = &cobra.Command{
	Use:   "list [directory]",
	Short: "List a directory's metadata",
	Long: `List the visible entries of a directory with the same semantics as
the MCP list_files tool: hidden entries are skipped and unreadable entries
are silently omitted.

Examples:
  filesavant list                  # list the current directory
  filesavant list /var/log --long  # include permissions and ownership
  filesavant list data -o json     # machine-readable output`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listOutput, "output", "o", "table",
		"Output format: table, json, or yaml")
	listCmd.Flags().BoolVarP(&listLong, "long", "l", false,
		"Show permissions, owner, and group (table output only)")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	records, err := fsmeta.List(dir)
	if err != nil {
		return err
	}

	switch listOutput {
	case "json":
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return err
		}
		cmd.Println(string(data))
	case "yaml":
		data, err := yaml.Marshal(records)
		if err != nil {
			return err
		}
		cmd.Print(string(data))
	case "table":
		for _, rec := range records {
			if listLong {
				cmd.Printf("%s  %s %s  %10d  %s\n",
					rec.PermissionsReadable, rec.Owner, rec.Group, rec.Size, rec.Name)
			} else {
				cmd.Printf("%d bytes  %s\n", rec.Size, rec.Name)
			}
		}
	default:
		return fmt.Errorf("unknown output format: %s", listOutput)
	}

	return nil
}
