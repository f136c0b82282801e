// Package docker drives deterministic builds through the docker CLI.
package docker

import (
	"context"
	"os/exec"
	"path/filepath"
	"strings"

	"go.osec.io/solverify/internal/core/domain"
	"go.osec.io/solverify/internal/core/ports"
	"go.trai.ch/zerr"
)

// containerBuildRoot is where the source tree is mounted inside the builder
// image and where artifacts are collected from.
const containerBuildRoot = "/build"

// runCaptureFunc runs a command and returns its trimmed stdout.
type runCaptureFunc func(ctx context.Context, name string, args ...string) (string, error)

// runStreamFunc runs a command streaming its output to the logger.
type runStreamFunc func(ctx context.Context, name string, args ...string) error

// Builder implements ports.Builder using the docker CLI.
type Builder struct {
	logger  ports.Logger
	capture runCaptureFunc
	stream  runStreamFunc
}

var _ ports.Builder = (*Builder)(nil)

// NewBuilder creates a Builder that shells out to docker.
func NewBuilder(logger ports.Logger) *Builder {
	b := &Builder{logger: logger}
	b.capture = b.execCapture
	b.stream = b.execStream
	return b
}

// WithRunners overrides command execution. Used in tests.
func (b *Builder) WithRunners(capture runCaptureFunc, stream runStreamFunc) *Builder {
	b.capture = capture
	b.stream = stream
	return b
}

// Build starts a detached builder container with the source mounted at
// /build, then follows its logs until the build exits. Tool diagnostics pass
// through to the logger verbatim.
func (b *Builder) Build(ctx context.Context, spec ports.BuildSpec) error {
	image := spec.BaseImage
	if image == "" {
		image = domain.DefaultBaseImage
	}

	containerID, err := b.capture(ctx, "docker",
		"run",
		"--rm",
		"-v", spec.MountPath+":"+containerBuildRoot,
		"-dit", image,
		"sh", "-c", buildCommand(spec),
	)
	if err != nil {
		return zerr.With(zerr.With(zerr.Wrap(domain.ErrBuildFailed, err.Error()),
			"mount_path", spec.MountPath),
			"image", image,
		)
	}

	if err := b.stream(ctx, "docker", "logs", "--follow", containerID); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrBuildFailed, err.Error()),
			"container_id", containerID,
		)
	}
	return nil
}

// buildCommand composes the in-container build invocation. The BPF flag
// selects the legacy toolchain; extra cargo arguments are appended after the
// reproducibility flags.
func buildCommand(spec ports.BuildSpec) string {
	tool := "cargo build-sbf"
	if spec.BPF {
		tool = "cargo build-bpf"
	}
	parts := append([]string{tool, "--", "--locked", "--frozen"}, spec.CargoArgs...)
	return strings.Join(parts, " ")
}

// Extract starts a throwaway container for the image, copies the executable
// out of it and kills the container again.
func (b *Builder) Extract(ctx context.Context, image, pathInImage, destDir string) (string, error) {
	containerID, err := b.capture(ctx, "docker", "run", "--rm", "-dit", image)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to start image"), "image", image)
	}
	defer func() {
		if _, killErr := b.capture(ctx, "docker", "kill", containerID); killErr != nil {
			b.logger.Warn("failed to kill extraction container " + containerID)
		}
	}()

	dest := filepath.Join(destDir, "program.so")
	src := containerID + ":" + containerBuildRoot + "/" + strings.TrimPrefix(pathInImage, "/")
	if _, err := b.capture(ctx, "docker", "cp", src, dest); err != nil {
		return "", zerr.With(zerr.With(zerr.Wrap(err, "failed to copy executable from image"),
			"image", image),
			"path", pathInImage,
		)
	}
	return dest, nil
}

func (b *Builder) execCapture(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output() //nolint:gosec // Arguments are assembled above
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", zerr.With(zerr.With(zerr.Wrap(err, "command failed"),
				"exit_code", exitErr.ExitCode()),
				"stderr", string(exitErr.Stderr),
			)
		}
		return "", zerr.Wrap(err, "command failed")
	}
	return strings.TrimSpace(string(out)), nil
}

func (b *Builder) execStream(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // Arguments are assembled above
	cmd.Stdout = &logWriter{logger: b.logger, level: "info"}
	cmd.Stderr = &logWriter{logger: b.logger, level: "error"}

	if err := cmd.Run(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitCode)
	}
	return nil
}

// logWriter forwards command output line by line to the logger.
type logWriter struct {
	logger ports.Logger
	level  string
}

func (w *logWriter) Write(p []byte) (int, error) {
	lines := strings.Split(strings.TrimSuffix(string(p), "\n"), "\n")
	for _, line := range lines {
		if w.level == "info" {
			w.logger.Info(line)
		} else {
			w.logger.Error(zerr.New(line))
		}
	}
	return len(p), nil
}
