package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tailctl/localapi"
)

func newCertCommand(ctx *commandContext) *cobra.Command {
	var certFile string
	var keyFile string

	cmd := &cobra.Command{
		Use:   "cert <domain>",
		Short: "Fetch the TLS certificate and key for one of the node's domains",
		Long: `Fetch the TLS certificate chain and private key the daemon holds for one
of the node's cert domains. By default the pair is written next to the
working directory as <domain>.crt and <domain>.key; pass "-" as a file
name to write to stdout instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			domain := args[0]
			return ctx.withClient(func(client *localapi.Client) error {
				pair, err := client.CertPair(cmd.Context(), domain)
				if err != nil {
					return err
				}

				if certFile == "" {
					certFile = domain + ".crt"
				}
				if keyFile == "" {
					keyFile = domain + ".key"
				}

				if err := writePEM(cmd, certFile, pair.CertPEM, 0o644); err != nil {
					return err
				}
				if err := writePEM(cmd, keyFile, pair.KeyPEM, 0o600); err != nil {
					return err
				}
				if certFile != "-" {
					fmt.Fprintf(cmd.OutOrStdout(), "wrote %s and %s\n", certFile, keyFile)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&certFile, "cert-file", "", "Destination for the certificate chain (\"-\" for stdout)")
	cmd.Flags().StringVar(&keyFile, "key-file", "", "Destination for the private key (\"-\" for stdout)")

	return cmd
}

func writePEM(cmd *cobra.Command, path string, payload []byte, mode os.FileMode) error {
	if path == "-" {
		_, err := cmd.OutOrStdout().Write(payload)
		return err
	}
	if err := os.WriteFile(path, payload, mode); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
