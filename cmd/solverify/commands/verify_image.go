package commands

import (
	"github.com/spf13/cobra"
	"go.osec.io/solverify/internal/app"
	"go.osec.io/solverify/internal/core/domain"
)

func (c *CLI) newVerifyFromImageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify-from-image",
		Short: "Verify a deployed program against a cached build image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			programID, _ := cmd.Flags().GetString("program-id")
			id, err := domain.ParsePubkey(programID)
			if err != nil {
				return err
			}

			image, _ := cmd.Flags().GetString("image")
			execPath, _ := cmd.Flags().GetString("executable-path-in-image")
			rpcURL, _ := cmd.Flags().GetString("url")

			return c.app.VerifyFromImage(cmd.Context(), app.VerifyImageOptions{
				Image:          image,
				ExecutablePath: execPath,
				ProgramID:      id,
				RPCURL:         rpcURL,
			})
		},
	}
	cmd.Flags().String("image", "", "Docker image holding the build artifacts")
	cmd.Flags().String("executable-path-in-image", "", "Path of the executable inside the image")
	cmd.Flags().String("program-id", "", "Base58 address of the deployed program")
	cmd.Flags().StringP("url", "u", "", "RPC endpoint override")
	_ = cmd.MarkFlagRequired("image")
	_ = cmd.MarkFlagRequired("executable-path-in-image")
	_ = cmd.MarkFlagRequired("program-id")
	return cmd
}
