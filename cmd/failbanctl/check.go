package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var ip string
	c := &cobra.Command{
		Use:   "check",
		Short: "Check if the subnet of an IP is blocked",
		RunE: func(cmd *cobra.Command, _ []string) error {
			blocked, err := getClient(cmd).Check(cmd.Context(), ip)
			if err != nil {
				return err
			}
			if blocked {
				fmt.Fprintln(cmd.OutOrStdout(), color.RedString("%s: blocked", ip))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("%s: not blocked", ip))
			}
			return nil
		},
	}

	c.Flags().StringVar(&ip, "ip", "", "IP address to check")
	_ = c.MarkFlagRequired("ip")
	return c
}

func newFailCmd() *cobra.Command {
	var ip string
	c := &cobra.Command{
		Use:   "fail",
		Short: "Report a failed login attempt from an IP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			banned, err := getClient(cmd).ReportFailure(cmd.Context(), ip)
			if err != nil {
				return err
			}
			if banned {
				fmt.Fprintln(cmd.OutOrStdout(), color.YellowString("failure recorded, subnet of %s is banned", ip))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "failure recorded")
			}
			return nil
		},
	}

	c.Flags().StringVar(&ip, "ip", "", "IP address of the failed attempt")
	_ = c.MarkFlagRequired("ip")
	return c
}
