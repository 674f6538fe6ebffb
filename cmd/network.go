package cmd

import (
	"encoding/json"
	"io"
	"os"

	"easy-ftp/core/netinfo"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// configCmd prints the saved server configuration.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the saved server configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newOfflineService()
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "    ")
		return enc.Encode(svc.LoadConfig())
	},
}

// networkCmd lists addresses the FTP server can be reached on.
var networkCmd = &cobra.Command{
	Use:   "network",
	Short: "List reachable IPv4 addresses",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newOfflineService()
		if err != nil {
			return err
		}

		candidates, err := svc.Network()
		if err != nil {
			return err
		}
		return renderCandidates(os.Stdout, candidates)
	},
}

// renderCandidates writes candidates as a table, marking the advertised one.
func renderCandidates(w io.Writer, candidates []netinfo.Candidate) error {
	table := tablewriter.NewWriter(w)
	table.Header("Interface", "Address")
	for i, c := range candidates {
		addr := c.IP
		if i == 0 {
			addr += " (advertised)"
		}
		if err := table.Append([]string{c.Interface, addr}); err != nil {
			return err
		}
	}
	return table.Render()
}

func init() {
	RootCmd.AddCommand(configCmd)
	RootCmd.AddCommand(networkCmd)
}
