package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.osec.io/solverify/internal/core/domain"
)

func (c *CLI) newExecutableHashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get-executable-hash <filepath>",
		Short: "Print the digest of a local executable file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			digest, err := c.app.ExecutableHash(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(c.out, digest)
			return nil
		},
	}
}

func (c *CLI) newProgramHashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get-program-hash <program-id>",
		Short: "Print the digest of a deployed program's on-chain data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := domain.ParsePubkey(args[0])
			if err != nil {
				return err
			}
			rpcURL, _ := cmd.Flags().GetString("url")
			digest, err := c.app.ProgramHash(cmd.Context(), id, rpcURL)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.out, digest)
			return nil
		},
	}
	cmd.Flags().StringP("url", "u", "", "RPC endpoint override")
	return cmd
}

func (c *CLI) newBufferHashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get-buffer-hash <buffer-address>",
		Short: "Print the digest of a buffer account's contents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			address, err := domain.ParsePubkey(args[0])
			if err != nil {
				return err
			}
			rpcURL, _ := cmd.Flags().GetString("url")
			digest, err := c.app.BufferHash(cmd.Context(), address, rpcURL)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.out, digest)
			return nil
		},
	}
	cmd.Flags().StringP("url", "u", "", "RPC endpoint override")
	return cmd
}
