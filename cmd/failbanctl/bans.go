package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func newBansCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bans",
		Short: "Inspect and lift subnet bans",
	}
	cmd.AddCommand(newBansListCmd(), newBansUnbanCmd())
	return cmd
}

func newBansListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List active bans",
		RunE: func(cmd *cobra.Command, _ []string) error {
			bans, err := getClient(cmd).ListBans(cmd.Context())
			if err != nil {
				return err
			}
			if len(bans) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no active bans")
				return nil
			}

			now := time.Now()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "SUBNET\tEXPIRES AT\tEXPIRES IN")
			for _, b := range bans {
				fmt.Fprintf(tw, "%s\t%s\t%s\n",
					b.Subnet, b.ExpiresAt.Local().Format(time.DateTime), b.Remaining(now).Round(time.Second))
			}
			return tw.Flush()
		},
	}
}

func newBansUnbanCmd() *cobra.Command {
	var subnet string
	c := &cobra.Command{
		Use:   "unban",
		Short: "Lift the ban from a subnet",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := getClient(cmd).Unban(cmd.Context(), subnet); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s unbanned\n", subnet)
			return nil
		},
	}

	c.Flags().StringVar(&subnet, "subnet", "", "subnet to unban, e.g. 203.0.113.0/24")
	_ = c.MarkFlagRequired("subnet")
	return c
}
