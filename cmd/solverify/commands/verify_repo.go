package commands

import (
	"github.com/spf13/cobra"
	"go.osec.io/solverify/internal/app"
	"go.osec.io/solverify/internal/core/domain"
)

func (c *CLI) newVerifyFromRepoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify-from-repo <repo-url>",
		Short: "Verify a deployed program against a source repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			programID, _ := cmd.Flags().GetString("program-id")
			id, err := domain.ParsePubkey(programID)
			if err != nil {
				return err
			}

			libName, _ := cmd.Flags().GetString("library-name")
			commitHash, _ := cmd.Flags().GetString("commit-hash")
			mountPath, _ := cmd.Flags().GetString("mount-path")
			baseImage, _ := cmd.Flags().GetString("base-image")
			bpf, _ := cmd.Flags().GetBool("bpf")
			cargoArgs, _ := cmd.Flags().GetStringSlice("cargo-args")
			remote, _ := cmd.Flags().GetBool("remote")
			rpcURL, _ := cmd.Flags().GetString("url")
			outputMode, _ := cmd.Flags().GetString("output-mode")

			return c.app.VerifyFromRepo(cmd.Context(), app.VerifyRepoOptions{
				Request: domain.VerificationRequest{
					Repository:  args[0],
					CommitHash:  commitHash,
					ProgramID:   id,
					LibraryName: libName,
					BPFFlag:     bpf,
					MountPath:   mountPath,
					BaseImage:   baseImage,
					CargoArgs:   cargoArgs,
				},
				Remote:     remote,
				OutputMode: outputMode,
				RPCURL:     rpcURL,
			})
		},
	}
	cmd.Flags().String("program-id", "", "Base58 address of the deployed program")
	cmd.Flags().String("library-name", "", "Library name when the repository builds multiple programs")
	cmd.Flags().String("commit-hash", "", "Commit to verify; defaults to the repository head")
	cmd.Flags().String("mount-path", "", "Path of the program within the repository")
	cmd.Flags().String("base-image", "", "Docker base image for the build")
	cmd.Flags().Bool("bpf", false, "Use cargo build-bpf instead of cargo build-sbf")
	cmd.Flags().StringSlice("cargo-args", nil, "Extra arguments passed to cargo")
	cmd.Flags().Bool("remote", false, "Submit the job to the remote verification service")
	cmd.Flags().StringP("url", "u", "", "RPC endpoint override")
	cmd.Flags().String("output-mode", "auto", "Progress rendering: auto, tui or linear")
	_ = cmd.MarkFlagRequired("program-id")
	return cmd
}
