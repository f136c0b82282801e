package docker_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.osec.io/solverify/internal/adapters/docker"
	"go.osec.io/solverify/internal/core/domain"
	"go.osec.io/solverify/internal/core/ports"
	"go.osec.io/solverify/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newTestLogger(t *testing.T) *mocks.MockLogger {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()
	return log
}

type call struct {
	name string
	args []string
}

func TestBuilder_Build_CommandShape(t *testing.T) {
	var captured []call

	b := docker.NewBuilder(newTestLogger(t)).WithRunners(
		func(_ context.Context, name string, args ...string) (string, error) {
			captured = append(captured, call{name, args})
			return "container-1", nil
		},
		func(_ context.Context, name string, args ...string) error {
			captured = append(captured, call{name, args})
			return nil
		},
	)

	err := b.Build(context.Background(), ports.BuildSpec{
		MountPath: "/src/program",
		BaseImage: "custom/solana:1.18",
		CargoArgs: []string{"--features", "mainnet"},
	})
	require.NoError(t, err)
	require.Len(t, captured, 2)

	run := captured[0]
	assert.Equal(t, "docker", run.name)
	assert.Equal(t, []string{
		"run", "--rm",
		"-v", "/src/program:/build",
		"-dit", "custom/solana:1.18",
		"sh", "-c", "cargo build-sbf -- --locked --frozen --features mainnet",
	}, run.args)

	logs := captured[1]
	assert.Equal(t, []string{"logs", "--follow", "container-1"}, logs.args)
}

func TestBuilder_Build_Defaults(t *testing.T) {
	var runArgs []string
	b := docker.NewBuilder(newTestLogger(t)).WithRunners(
		func(_ context.Context, _ string, args ...string) (string, error) {
			runArgs = args
			return "c", nil
		},
		func(context.Context, string, ...string) error { return nil },
	)

	require.NoError(t, b.Build(context.Background(), ports.BuildSpec{MountPath: "/src"}))
	assert.Contains(t, runArgs, domain.DefaultBaseImage)
	assert.Contains(t, runArgs, "cargo build-sbf -- --locked --frozen")
}

func TestBuilder_Build_BPFToolchain(t *testing.T) {
	var runArgs []string
	b := docker.NewBuilder(newTestLogger(t)).WithRunners(
		func(_ context.Context, _ string, args ...string) (string, error) {
			runArgs = args
			return "c", nil
		},
		func(context.Context, string, ...string) error { return nil },
	)

	require.NoError(t, b.Build(context.Background(), ports.BuildSpec{MountPath: "/src", BPF: true}))
	assert.Contains(t, runArgs, "cargo build-bpf -- --locked --frozen")
}

func TestBuilder_Build_StartFailure(t *testing.T) {
	b := docker.NewBuilder(newTestLogger(t)).WithRunners(
		func(context.Context, string, ...string) (string, error) {
			return "", errors.New("no such image")
		},
		func(context.Context, string, ...string) error {
			t.Fatal("logs must not be followed when the container never started")
			return nil
		},
	)

	err := b.Build(context.Background(), ports.BuildSpec{MountPath: "/src"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBuildFailed))
}

func TestBuilder_Build_ToolFailure(t *testing.T) {
	b := docker.NewBuilder(newTestLogger(t)).WithRunners(
		func(context.Context, string, ...string) (string, error) { return "c", nil },
		func(context.Context, string, ...string) error { return errors.New("exit 1") },
	)

	err := b.Build(context.Background(), ports.BuildSpec{MountPath: "/src"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBuildFailed))
}

func TestBuilder_Extract(t *testing.T) {
	var captured []call
	b := docker.NewBuilder(newTestLogger(t)).WithRunners(
		func(_ context.Context, name string, args ...string) (string, error) {
			captured = append(captured, call{name, args})
			return "container-2", nil
		},
		func(context.Context, string, ...string) error { return nil },
	)

	destDir := t.TempDir()
	path, err := b.Extract(context.Background(), "cache/image:1", "target/deploy/my_program.so", destDir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(destDir, "program.so"), path)

	require.Len(t, captured, 3)
	assert.Equal(t, []string{"run", "--rm", "-dit", "cache/image:1"}, captured[0].args)
	assert.Equal(t, []string{
		"cp",
		"container-2:/build/target/deploy/my_program.so",
		filepath.Join(destDir, "program.so"),
	}, captured[1].args)
	assert.Equal(t, []string{"kill", "container-2"}, captured[2].args)
}

func TestBuilder_Extract_KillsContainerOnCopyFailure(t *testing.T) {
	var killed bool
	b := docker.NewBuilder(newTestLogger(t)).WithRunners(
		func(_ context.Context, _ string, args ...string) (string, error) {
			switch args[0] {
			case "run":
				return "container-3", nil
			case "cp":
				return "", errors.New("no such file")
			case "kill":
				killed = true
				return "", nil
			}
			t.Fatalf("unexpected docker subcommand %q", args[0])
			return "", nil
		},
		func(context.Context, string, ...string) error { return nil },
	)

	_, err := b.Extract(context.Background(), "cache/image:1", "missing.so", t.TempDir())
	require.Error(t, err)
	assert.True(t, killed, "the throwaway container must be killed on every exit path")
}
