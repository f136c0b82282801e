package commands

import (
	"github.com/spf13/cobra"
	"go.osec.io/solverify/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [mount-dir]",
		Short: "Deterministically build the program in a docker container",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mount := ""
			if len(args) == 1 {
				mount = args[0]
			}
			baseImage, _ := cmd.Flags().GetString("base-image")
			bpf, _ := cmd.Flags().GetBool("bpf")
			cargoArgs, _ := cmd.Flags().GetStringSlice("cargo-args")
			return c.app.Build(cmd.Context(), app.BuildOptions{
				MountPath: mount,
				BaseImage: baseImage,
				BPF:       bpf,
				CargoArgs: cargoArgs,
			})
		},
	}
	cmd.Flags().String("base-image", "", "Docker base image for the build")
	cmd.Flags().Bool("bpf", false, "Use cargo build-bpf instead of cargo build-sbf")
	cmd.Flags().StringSlice("cargo-args", nil, "Extra arguments passed to cargo")
	return cmd
}
