package ports

import "context"

// BuildSpec describes one deterministic container build.
type BuildSpec struct {
	// MountPath is the host directory mounted into the build container.
	MountPath string
	// BaseImage is the builder image; empty selects the default.
	BaseImage string
	// BPF selects the legacy BPF target toolchain instead of SBF.
	BPF bool
	// CargoArgs are extra arguments passed through to the build tool.
	CargoArgs []string
}

// Builder drives the external container build collaborator.
//
//go:generate mockgen -destination=mocks/builder_mock.go -package=mocks -source=builder.go
type Builder interface {
	// Build runs the deterministic build with MountPath mounted at the
	// container's build root. Failures propagate the tool's diagnostics.
	Build(ctx context.Context, spec BuildSpec) error

	// Extract copies an executable out of a cached build image into destDir
	// and returns the local path of the copied file.
	Extract(ctx context.Context, image, pathInImage, destDir string) (string, error)
}
