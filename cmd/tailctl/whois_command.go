package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"tailctl/localapi"
)

func newWhoisCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "whois <ip>",
		Short: "Look up the node and user that own a tailnet address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *localapi.Client) error {
				who, err := client.WhoIs(cmd.Context(), args[0])
				if localapi.IsNotFound(err) {
					return fmt.Errorf("no tailnet node owns %s", args[0])
				}
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, who)
				}
				renderWhois(cmd.OutOrStdout(), who)
				return nil
			})
		},
	}
}

func renderWhois(w io.Writer, who *localapi.WhoisResponse) {
	if who.Node != nil {
		fmt.Fprintf(w, "node:      %s\n", strings.TrimSuffix(who.Node.Name, "."))
		fmt.Fprintf(w, "stable id: %s\n", who.Node.StableID)
		if len(who.Node.Addresses) > 0 {
			fmt.Fprintf(w, "addresses: %s\n", strings.Join(who.Node.Addresses, ", "))
		}
		if len(who.Node.Tags) > 0 {
			fmt.Fprintf(w, "tags:      %s\n", strings.Join(who.Node.Tags, ", "))
		}
	}
	if who.UserProfile != nil {
		fmt.Fprintf(w, "user:      %s", who.UserProfile.LoginName)
		if who.UserProfile.DisplayName != "" {
			fmt.Fprintf(w, " (%s)", who.UserProfile.DisplayName)
		}
		fmt.Fprintln(w)
	}
}
