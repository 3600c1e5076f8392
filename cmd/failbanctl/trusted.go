package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errClearNotConfirmed = errors.New("refusing to clear trusted list without --yes")

func newTrustedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trusted",
		Short: "Manage trusted subnets (never counted, never banned)",
	}

	cmd.AddCommand(
		newCIDRCmd("add", "Add CIDR to trusted list", func(cmd *cobra.Command, cidr string) error {
			return getClient(cmd).AddTrusted(cmd.Context(), cidr)
		}),
		newCIDRCmd("remove", "Remove CIDR from trusted list", func(cmd *cobra.Command, cidr string) error {
			return getClient(cmd).RemoveTrusted(cmd.Context(), cidr)
		}),
		&cobra.Command{
			Use:   "list",
			Short: "List trusted subnets",
			RunE: func(cmd *cobra.Command, _ []string) error {
				cidrs, err := getClient(cmd).ListTrusted(cmd.Context())
				if err != nil {
					return err
				}
				for _, c := range cidrs {
					fmt.Fprintln(cmd.OutOrStdout(), c)
				}
				return nil
			},
		},
		newClearCmd(),
	)

	return cmd
}

func newCIDRCmd(use, short string, fn func(cmd *cobra.Command, cidr string) error) *cobra.Command {
	var cidr string

	c := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return fn(cmd, cidr)
		},
	}

	c.Flags().StringVar(&cidr, "cidr", "", "CIDR, e.g. 192.168.1.0/24")
	_ = c.MarkFlagRequired("cidr")
	return c
}

func newClearCmd() *cobra.Command {
	var yes bool

	c := &cobra.Command{
		Use:   "clear",
		Short: "Remove all trusted subnets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return errClearNotConfirmed
			}
			if err := getClient(cmd).ClearTrusted(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "trusted list cleared")
			return nil
		},
	}

	c.Flags().BoolVar(&yes, "yes", false, "confirm removal of all trusted subnets")
	return c
}
