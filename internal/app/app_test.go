package app_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.osec.io/solverify/internal/adapters/detector"
	"go.osec.io/solverify/internal/app"
	"go.osec.io/solverify/internal/core/domain"
	"go.osec.io/solverify/internal/core/ports"
	"go.osec.io/solverify/internal/core/ports/mocks"
	"go.osec.io/solverify/internal/engine/poller"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	remote    *mocks.MockRemoteVerifier
	builder   *mocks.MockBuilder
	chain     *mocks.MockChainReader
	hasher    *mocks.MockHasher
	workspace *mocks.MockWorkspace
	store     *mocks.MockResultStore
	reporter  *mocks.MockReporter
	out       bytes.Buffer
	app       *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		remote:    mocks.NewMockRemoteVerifier(ctrl),
		builder:   mocks.NewMockBuilder(ctrl),
		chain:     mocks.NewMockChainReader(ctrl),
		hasher:    mocks.NewMockHasher(ctrl),
		workspace: mocks.NewMockWorkspace(ctrl),
		store:     mocks.NewMockResultStore(ctrl),
		reporter:  mocks.NewMockReporter(ctrl),
	}

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	jobPoller := poller.New(f.remote, poller.WithPolicy(poller.Policy{Interval: time.Millisecond}))

	f.app = app.New(
		domain.DefaultConfig(),
		log,
		f.remote,
		jobPoller,
		f.builder,
		f.chain,
		f.hasher,
		f.workspace,
		f.store,
		nil,
	).
		WithOutput(&f.out).
		WithReporterFactory(func(detector.OutputMode) ports.Reporter { return f.reporter })

	return f
}

func testRequest(t *testing.T) domain.VerificationRequest {
	t.Helper()
	id, err := domain.ParsePubkey(strings.Repeat("1", 32))
	require.NoError(t, err)
	return domain.VerificationRequest{
		Repository:  "https://github.com/example/program",
		CommitHash:  "abc123",
		ProgramID:   id,
		LibraryName: "my_program",
	}
}

func TestApp_VerifyLocal_Match(t *testing.T) {
	f := newFixture(t)
	req := testRequest(t)
	dir := t.TempDir()
	cleaned := false

	executable := []byte{0x7f, 'E', 'L', 'F'}
	onChain := append([]byte{0x7f, 'E', 'L', 'F'}, make([]byte, 2048)...)

	f.store.EXPECT().Get(req.Fingerprint()).Return(nil, nil)
	f.workspace.EXPECT().Clone(gomock.Any(), req.Repository, req.CommitHash).
		Return(dir, func() error { cleaned = true; return nil }, nil)
	f.builder.EXPECT().Build(gomock.Any(), gomock.Any()).Return(nil)
	f.hasher.EXPECT().FindExecutable(dir, "my_program").Return(dir+"/target/deploy/my_program.so", nil)
	f.hasher.EXPECT().HashFile(gomock.Any()).Return(domain.HashProgramData(executable), nil)
	f.chain.EXPECT().ProgramData(gomock.Any(), req.ProgramID).Return(onChain, nil)
	f.store.EXPECT().Put(gomock.Any()).DoAndReturn(func(rec domain.VerificationRecord) error {
		assert.True(t, rec.Verified)
		assert.False(t, rec.Remote)
		return nil
	})

	err := f.app.VerifyFromRepo(context.Background(), app.VerifyRepoOptions{Request: req})
	require.NoError(t, err)
	assert.True(t, cleaned, "workspace must be removed on success")
	assert.Contains(t, f.out.String(), "matches on-chain program data")
}

func TestApp_VerifyLocal_Mismatch(t *testing.T) {
	f := newFixture(t)
	req := testRequest(t)
	cleaned := false

	f.store.EXPECT().Get(gomock.Any()).Return(nil, nil)
	f.workspace.EXPECT().Clone(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(t.TempDir(), func() error { cleaned = true; return nil }, nil)
	f.builder.EXPECT().Build(gomock.Any(), gomock.Any()).Return(nil)
	f.hasher.EXPECT().FindExecutable(gomock.Any(), gomock.Any()).Return("x.so", nil)
	f.hasher.EXPECT().HashFile("x.so").Return(domain.HashProgramData([]byte{0x01, 0x02}), nil)
	f.chain.EXPECT().ProgramData(gomock.Any(), gomock.Any()).Return([]byte{0x01, 0x03}, nil)
	f.store.EXPECT().Put(gomock.Any()).DoAndReturn(func(rec domain.VerificationRecord) error {
		assert.False(t, rec.Verified)
		return nil
	})

	err := f.app.VerifyFromRepo(context.Background(), app.VerifyRepoOptions{Request: req})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrVerificationMismatch))
	assert.True(t, cleaned, "workspace must be removed on mismatch too")
}

func TestApp_VerifyLocal_BuildFailureStillCleansUp(t *testing.T) {
	f := newFixture(t)
	req := testRequest(t)
	cleaned := false

	f.store.EXPECT().Get(gomock.Any()).Return(nil, nil)
	f.workspace.EXPECT().Clone(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(t.TempDir(), func() error { cleaned = true; return nil }, nil)
	f.builder.EXPECT().Build(gomock.Any(), gomock.Any()).Return(domain.ErrBuildFailed)
	// The concurrent on-chain fetch may or may not have started.
	f.chain.EXPECT().ProgramData(gomock.Any(), gomock.Any()).Return([]byte{1}, nil).AnyTimes()

	err := f.app.VerifyFromRepo(context.Background(), app.VerifyRepoOptions{Request: req})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBuildFailed))
	assert.True(t, cleaned, "workspace must be removed on build failure")
}

func TestApp_VerifyLocal_MountPathJoinsWorkspace(t *testing.T) {
	f := newFixture(t)
	req := testRequest(t)
	req.MountPath = "programs/my_program"
	dir := t.TempDir()

	f.store.EXPECT().Get(gomock.Any()).Return(nil, nil)
	f.workspace.EXPECT().Clone(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(dir, func() error { return nil }, nil)
	f.builder.EXPECT().Build(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, spec ports.BuildSpec) error {
			assert.Equal(t, dir+"/programs/my_program", spec.MountPath)
			return nil
		})
	f.hasher.EXPECT().FindExecutable(dir+"/programs/my_program", "my_program").Return("x.so", nil)
	f.hasher.EXPECT().HashFile("x.so").Return(domain.HashProgramData([]byte{1}), nil)
	f.chain.EXPECT().ProgramData(gomock.Any(), gomock.Any()).Return([]byte{1}, nil)
	f.store.EXPECT().Put(gomock.Any()).Return(nil)

	require.NoError(t, f.app.VerifyFromRepo(context.Background(), app.VerifyRepoOptions{Request: req}))
}

func TestApp_VerifyRemote_CompletedJob(t *testing.T) {
	f := newFixture(t)
	req := testRequest(t)
	handle := domain.JobHandle{RequestID: "req-42"}

	f.store.EXPECT().Get(gomock.Any()).Return(nil, nil)
	f.remote.EXPECT().Submit(gomock.Any(), req).Return(domain.SubmitOutcome{
		Kind:   domain.SubmitAccepted,
		Handle: handle,
	}, nil)

	gomock.InOrder(
		f.reporter.EXPECT().Start(gomock.Any()),
		f.reporter.EXPECT().Finish(true),
	)

	gomock.InOrder(
		f.remote.EXPECT().Poll(gomock.Any(), handle).Return(domain.PollResult{Status: domain.JobInProgress}, nil),
		f.remote.EXPECT().Poll(gomock.Any(), handle).Return(domain.PollResult{
			Status: domain.JobCompleted,
			Outcome: &domain.JobOutcome{
				OnChainHash:    "aa",
				ExecutableHash: "aa",
				RepoURL:        req.Repository,
			},
		}, nil),
	)

	f.store.EXPECT().Put(gomock.Any()).DoAndReturn(func(rec domain.VerificationRecord) error {
		assert.True(t, rec.Verified)
		assert.True(t, rec.Remote)
		return nil
	})

	err := f.app.VerifyFromRepo(context.Background(), app.VerifyRepoOptions{Request: req, Remote: true})
	require.NoError(t, err)

	out := f.out.String()
	assert.Contains(t, out, "Verification request sent.")
	assert.Contains(t, out, "has been verified.")
	assert.Contains(t, out, req.Repository)
}

func TestApp_VerifyRemote_FailedJob(t *testing.T) {
	f := newFixture(t)
	req := testRequest(t)
	handle := domain.JobHandle{RequestID: "req-43"}

	f.store.EXPECT().Get(gomock.Any()).Return(nil, nil)
	f.remote.EXPECT().Submit(gomock.Any(), req).Return(domain.SubmitOutcome{
		Kind:   domain.SubmitAccepted,
		Handle: handle,
	}, nil)
	f.remote.EXPECT().Poll(gomock.Any(), handle).Return(domain.PollResult{
		Status:  domain.JobFailed,
		Outcome: &domain.JobOutcome{Message: "docker build failed"},
	}, nil)

	f.reporter.EXPECT().Start(gomock.Any())
	f.reporter.EXPECT().Finish(false)
	f.store.EXPECT().Put(gomock.Any()).Return(nil)

	err := f.app.VerifyFromRepo(context.Background(), app.VerifyRepoOptions{Request: req, Remote: true})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrVerificationFailed))

	out := f.out.String()
	assert.Contains(t, out, "Error message: docker build failed")
	assert.Contains(t, out, "has not been verified.")
}

func TestApp_VerifyRemote_AlreadyVerifiedShortcut(t *testing.T) {
	f := newFixture(t)
	req := testRequest(t)

	f.store.EXPECT().Get(gomock.Any()).Return(nil, nil)
	f.remote.EXPECT().Submit(gomock.Any(), req).Return(domain.SubmitOutcome{
		Kind: domain.SubmitAlreadyVerified,
		Outcome: &domain.JobOutcome{
			OnChainHash:    "aa",
			ExecutableHash: "aa",
		},
	}, nil)
	f.store.EXPECT().Put(gomock.Any()).Return(nil)
	// No Poll expectation: the shortcut must never enter the polling loop,
	// and no reporter expectations: no progress is shown either.

	err := f.app.VerifyFromRepo(context.Background(), app.VerifyRepoOptions{Request: req, Remote: true})
	require.NoError(t, err)
	assert.Contains(t, f.out.String(), "has already been verified.")
}

func TestApp_VerifyRemote_AlreadyProcessedFails(t *testing.T) {
	f := newFixture(t)
	req := testRequest(t)

	f.store.EXPECT().Get(gomock.Any()).Return(nil, nil)
	f.remote.EXPECT().Submit(gomock.Any(), req).Return(domain.SubmitOutcome{
		Kind: domain.SubmitAlreadyProcessed,
	}, nil)

	err := f.app.VerifyFromRepo(context.Background(), app.VerifyRepoOptions{Request: req, Remote: true})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrVerificationFailed))

	out := f.out.String()
	assert.Contains(t, out, "already been processed")
	assert.Contains(t, out, "has not been verified.")
}

func TestApp_VerifyRemote_ConflictError(t *testing.T) {
	f := newFixture(t)
	req := testRequest(t)

	f.store.EXPECT().Get(gomock.Any()).Return(nil, nil)
	f.remote.EXPECT().Submit(gomock.Any(), req).Return(domain.SubmitOutcome{
		Kind: domain.SubmitConflictError,
		Err:  "unsupported repository host",
	}, nil)

	err := f.app.VerifyFromRepo(context.Background(), app.VerifyRepoOptions{Request: req, Remote: true})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrVerificationFailed))
}

func TestApp_VerifyRemote_SubmitTransportError(t *testing.T) {
	f := newFixture(t)
	req := testRequest(t)

	f.store.EXPECT().Get(gomock.Any()).Return(nil, nil)
	f.remote.EXPECT().Submit(gomock.Any(), req).Return(domain.SubmitOutcome{}, domain.ErrSubmitRejected)

	err := f.app.VerifyFromRepo(context.Background(), app.VerifyRepoOptions{Request: req, Remote: true})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSubmitRejected))
}

func TestApp_VerifyRemote_PollErrorJoinsReporter(t *testing.T) {
	f := newFixture(t)
	req := testRequest(t)
	handle := domain.JobHandle{RequestID: "req-44"}

	f.store.EXPECT().Get(gomock.Any()).Return(nil, nil)
	f.remote.EXPECT().Submit(gomock.Any(), req).Return(domain.SubmitOutcome{
		Kind:   domain.SubmitAccepted,
		Handle: handle,
	}, nil)
	f.remote.EXPECT().Poll(gomock.Any(), handle).Return(domain.PollResult{}, domain.ErrPollFailed)

	f.reporter.EXPECT().Start(gomock.Any())
	f.reporter.EXPECT().Finish(false)

	err := f.app.VerifyFromRepo(context.Background(), app.VerifyRepoOptions{Request: req, Remote: true})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrPollFailed))
}

func TestApp_ProgramHash(t *testing.T) {
	f := newFixture(t)
	req := testRequest(t)

	onChain := append([]byte{0x01, 0x02}, make([]byte, 512)...)
	f.chain.EXPECT().ProgramData(gomock.Any(), req.ProgramID).Return(onChain, nil)

	digest, err := f.app.ProgramHash(context.Background(), req.ProgramID, "")
	require.NoError(t, err)
	assert.Equal(t, domain.HashProgramData([]byte{0x01, 0x02}), digest)
}

func TestApp_BufferHash(t *testing.T) {
	f := newFixture(t)
	req := testRequest(t)

	f.chain.EXPECT().BufferData(gomock.Any(), req.ProgramID).Return([]byte{0xde, 0xad}, nil)

	digest, err := f.app.BufferHash(context.Background(), req.ProgramID, "")
	require.NoError(t, err)
	assert.Equal(t, domain.HashProgramData([]byte{0xde, 0xad}), digest)
}

func TestApp_VerifyFromImage_Match(t *testing.T) {
	f := newFixture(t)
	req := testRequest(t)

	f.builder.EXPECT().Extract(gomock.Any(), "cache/image:1", "target/deploy/my_program.so", gomock.Any()).
		Return("/tmp/extracted/program.so", nil)
	f.hasher.EXPECT().HashFile("/tmp/extracted/program.so").Return(domain.HashProgramData([]byte{1}), nil)
	f.chain.EXPECT().ProgramData(gomock.Any(), req.ProgramID).Return([]byte{1, 0, 0}, nil)

	err := f.app.VerifyFromImage(context.Background(), app.VerifyImageOptions{
		Image:          "cache/image:1",
		ExecutablePath: "target/deploy/my_program.so",
		ProgramID:      req.ProgramID,
	})
	require.NoError(t, err)
}

func TestApp_VerifyFromImage_Mismatch(t *testing.T) {
	f := newFixture(t)
	req := testRequest(t)

	f.builder.EXPECT().Extract(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("/tmp/extracted/program.so", nil)
	f.hasher.EXPECT().HashFile(gomock.Any()).Return(domain.HashProgramData([]byte{1}), nil)
	f.chain.EXPECT().ProgramData(gomock.Any(), gomock.Any()).Return([]byte{2}, nil)

	err := f.app.VerifyFromImage(context.Background(), app.VerifyImageOptions{
		Image:          "cache/image:1",
		ExecutablePath: "x.so",
		ProgramID:      req.ProgramID,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrVerificationMismatch))
}

func TestApp_Build_UsesConfiguredDefaults(t *testing.T) {
	f := newFixture(t)

	f.builder.EXPECT().Build(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, spec ports.BuildSpec) error {
			assert.Equal(t, "/src/program", spec.MountPath)
			assert.Equal(t, domain.DefaultBaseImage, spec.BaseImage)
			return nil
		})

	require.NoError(t, f.app.Build(context.Background(), app.BuildOptions{MountPath: "/src/program"}))
	assert.Contains(t, f.out.String(), "Mounting path: /src/program")
}
