// Package app implements the verification orchestrator.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.osec.io/solverify/internal/adapters/detector"
	"go.osec.io/solverify/internal/adapters/progress"
	"go.osec.io/solverify/internal/core/domain"
	"go.osec.io/solverify/internal/core/ports"
	"go.osec.io/solverify/internal/engine/poller"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App composes the adapters into the two verification pipelines.
type App struct {
	cfg       *domain.Config
	logger    ports.Logger
	remote    ports.RemoteVerifier
	poller    *poller.Poller
	builder   ports.Builder
	chain     ports.ChainReader
	hasher    ports.Hasher
	workspace ports.Workspace
	store     ports.ResultStore
	tracer    trace.Tracer

	out         io.Writer
	newReporter func(mode detector.OutputMode) ports.Reporter
	chainFor    func(rpcURL string) ports.ChainReader
}

// New creates a new App instance.
func New(
	cfg *domain.Config,
	log ports.Logger,
	remote ports.RemoteVerifier,
	jobPoller *poller.Poller,
	builder ports.Builder,
	chain ports.ChainReader,
	hasher ports.Hasher,
	workspace ports.Workspace,
	store ports.ResultStore,
	tracer trace.Tracer,
) *App {
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("solverify")
	}
	return &App{
		cfg:       cfg,
		logger:    log,
		remote:    remote,
		poller:    jobPoller,
		builder:   builder,
		chain:     chain,
		hasher:    hasher,
		workspace: workspace,
		store:     store,
		tracer:    tracer,
		out:       os.Stdout,
		newReporter: func(mode detector.OutputMode) ports.Reporter {
			return progress.New(mode, os.Stderr)
		},
		chainFor: func(string) ports.ChainReader { return chain },
	}
}

// WithOutput redirects report output. Used in tests.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// WithReporterFactory overrides reporter construction. Used in tests.
func (a *App) WithReporterFactory(f func(mode detector.OutputMode) ports.Reporter) *App {
	a.newReporter = f
	return a
}

// WithChainResolver installs a resolver that maps an RPC URL override to a
// chain reader. The default ignores the override and uses the wired reader.
func (a *App) WithChainResolver(f func(rpcURL string) ports.ChainReader) *App {
	a.chainFor = f
	return a
}

// BuildOptions configures a standalone deterministic build.
type BuildOptions struct {
	MountPath string
	BaseImage string
	BPF       bool
	CargoArgs []string
}

// Build runs the deterministic container build for a mount path.
func (a *App) Build(ctx context.Context, opts BuildOptions) error {
	ctx, span := a.tracer.Start(ctx, "build")
	defer span.End()

	mount := opts.MountPath
	if mount == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return zerr.Wrap(err, "failed to resolve working directory")
		}
		mount = cwd
	}
	image := opts.BaseImage
	if image == "" {
		image = a.cfg.BaseImage
	}

	fmt.Fprintf(a.out, "Mounting path: %s\n", mount)
	if err := a.builder.Build(ctx, ports.BuildSpec{
		MountPath: mount,
		BaseImage: image,
		BPF:       opts.BPF,
		CargoArgs: opts.CargoArgs,
	}); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// ExecutableHash digests a local executable file.
func (a *App) ExecutableHash(_ context.Context, path string) (domain.Digest, error) {
	return a.hasher.HashFile(path)
}

// ProgramHash digests the on-chain program data of a deployed program.
func (a *App) ProgramHash(ctx context.Context, programID domain.Pubkey, rpcURL string) (domain.Digest, error) {
	data, err := a.chainFor(rpcURL).ProgramData(ctx, programID)
	if err != nil {
		return domain.Digest{}, err
	}
	return domain.HashProgramData(data), nil
}

// BufferHash digests the contents of a buffer account.
func (a *App) BufferHash(ctx context.Context, address domain.Pubkey, rpcURL string) (domain.Digest, error) {
	data, err := a.chainFor(rpcURL).BufferData(ctx, address)
	if err != nil {
		return domain.Digest{}, err
	}
	return domain.HashProgramData(data), nil
}

// VerifyImageOptions configures verification of a cached build image.
type VerifyImageOptions struct {
	Image          string
	ExecutablePath string
	ProgramID      domain.Pubkey
	// RPCURL overrides the configured RPC endpoint when non-empty.
	RPCURL string
}

// VerifyFromImage extracts the executable from a cached build image and
// compares it with the deployed program data.
func (a *App) VerifyFromImage(ctx context.Context, opts VerifyImageOptions) error {
	ctx, span := a.tracer.Start(ctx, "verify.image")
	defer span.End()

	fmt.Fprintf(a.out, "Verifying image %s against program %s\n", opts.Image, opts.ProgramID)

	destDir, err := os.MkdirTemp("", "solverify-image-*")
	if err != nil {
		return zerr.Wrap(err, "failed to create extraction directory")
	}
	defer func() {
		if rmErr := os.RemoveAll(destDir); rmErr != nil {
			a.logger.Warn("failed to remove extraction directory " + destDir)
		}
	}()

	executable, err := a.builder.Extract(ctx, opts.Image, opts.ExecutablePath, destDir)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	executableDigest, err := a.hasher.HashFile(executable)
	if err != nil {
		return err
	}

	data, err := a.chainFor(opts.RPCURL).ProgramData(ctx, opts.ProgramID)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	onChainDigest := domain.HashProgramData(data)

	printLocalComparison(a.out, executableDigest, onChainDigest)
	if !executableDigest.Equal(onChainDigest) {
		span.SetStatus(codes.Error, "hash mismatch")
		return zerr.With(zerr.Wrap(domain.ErrVerificationMismatch, ""), "program_id", opts.ProgramID.String())
	}
	return nil
}

// VerifyRepoOptions configures repository verification.
type VerifyRepoOptions struct {
	Request domain.VerificationRequest
	// Remote submits the request to the verification service instead of
	// building locally.
	Remote bool
	// OutputMode overrides progress rendering: auto, tui or linear.
	OutputMode string
	// RPCURL overrides the configured RPC endpoint for the local pipeline.
	RPCURL string
}

// VerifyFromRepo runs the remote or local verification pipeline.
func (a *App) VerifyFromRepo(ctx context.Context, opts VerifyRepoOptions) error {
	if opts.Remote {
		return a.verifyRemote(ctx, opts)
	}
	return a.verifyLocal(ctx, opts.Request, opts.RPCURL)
}

func (a *App) recordOutcome(req domain.VerificationRequest, onChain, executable string, verified, wasRemote bool) {
	if a.store == nil {
		return
	}
	rec := domain.VerificationRecord{
		Fingerprint:    req.Fingerprint(),
		ProgramID:      req.ProgramID.String(),
		Repository:     req.Repository,
		CommitHash:     req.CommitHash,
		OnChainHash:    onChain,
		ExecutableHash: executable,
		Verified:       verified,
		Remote:         wasRemote,
		CheckedAt:      time.Now().UTC(),
	}
	if err := a.store.Put(rec); err != nil {
		a.logger.Warn("failed to record verification outcome: " + err.Error())
	}
}

func (a *App) hintPriorResult(req domain.VerificationRequest) {
	if a.store == nil {
		return
	}
	rec, err := a.store.Get(req.Fingerprint())
	if err != nil || rec == nil {
		return
	}
	if rec.Verified {
		a.logger.Info(fmt.Sprintf("this request verified previously at %s", rec.CheckedAt.Format(time.RFC3339)))
	}
}

// verifyLocal clones the repository into a scoped workspace, builds it
// deterministically and compares digests with no trust in a third party. The
// workspace is removed on every exit path.
func (a *App) verifyLocal(ctx context.Context, req domain.VerificationRequest, rpcURL string) error {
	ctx, span := a.tracer.Start(ctx, "verify.local")
	defer span.End()

	a.hintPriorResult(req)

	dir, cleanup, err := a.workspace.Clone(ctx, req.Repository, req.CommitHash)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	defer func() {
		if cleanErr := cleanup(); cleanErr != nil {
			a.logger.Warn("failed to remove workspace " + dir)
		}
	}()

	mount := dir
	if req.MountPath != "" {
		mount = filepath.Join(dir, req.MountPath)
	}
	fmt.Fprintf(a.out, "Build path: %s\n", mount)

	var executableDigest, onChainDigest domain.Digest

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := a.builder.Build(gctx, ports.BuildSpec{
			MountPath: mount,
			BaseImage: a.baseImage(req),
			BPF:       req.BPFFlag,
			CargoArgs: req.CargoArgs,
		}); err != nil {
			return err
		}
		executable, err := a.hasher.FindExecutable(mount, req.LibraryName)
		if err != nil {
			return err
		}
		executableDigest, err = a.hasher.HashFile(executable)
		return err
	})
	g.Go(func() error {
		data, err := a.chainFor(rpcURL).ProgramData(gctx, req.ProgramID)
		if err != nil {
			return err
		}
		onChainDigest = domain.HashProgramData(data)
		return nil
	})
	if err := g.Wait(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	printLocalComparison(a.out, executableDigest, onChainDigest)

	verified := executableDigest.Equal(onChainDigest)
	a.recordOutcome(req, onChainDigest.String(), executableDigest.String(), verified, false)
	if !verified {
		span.SetStatus(codes.Error, "hash mismatch")
		return zerr.With(zerr.With(zerr.With(zerr.Wrap(domain.ErrVerificationMismatch, ""),
			"program_id", req.ProgramID.String()),
			"on_chain", onChainDigest.String()),
			"executable", executableDigest.String(),
		)
	}
	fmt.Fprintf(a.out, "Executable matches on-chain program data %s\n", checkIcon)
	return nil
}

// verifyRemote submits the request and drives the poll/report loop. The
// service performs the comparison; its verdict is trusted as-is.
func (a *App) verifyRemote(ctx context.Context, opts VerifyRepoOptions) error {
	ctx, span := a.tracer.Start(ctx, "verify.remote")
	defer span.End()

	req := opts.Request
	a.hintPriorResult(req)

	outcome, err := a.remote.Submit(ctx, req)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	switch outcome.Kind {
	case domain.SubmitAlreadyVerified:
		printAlreadyVerified(a.out, req.ProgramID, outcome.Outcome)
		onChain, executable := outcomeHashes(outcome.Outcome)
		a.recordOutcome(req, onChain, executable, true, true)
		return nil

	case domain.SubmitAlreadyProcessed:
		printNotVerified(a.out, req.ProgramID, "This request has already been processed.")
		return zerr.With(zerr.Wrap(domain.ErrVerificationFailed, ""), "program_id", req.ProgramID.String())

	case domain.SubmitConflictError:
		span.SetStatus(codes.Error, outcome.Err)
		return zerr.With(zerr.With(zerr.Wrap(domain.ErrVerificationFailed, ""),
			"program_id", req.ProgramID.String()),
			"error", outcome.Err,
		)

	case domain.SubmitAccepted:
		return a.awaitJob(ctx, req, outcome.Handle, opts.OutputMode)

	default:
		return zerr.With(zerr.Wrap(domain.ErrSubmitRejected, ""), "kind", int(outcome.Kind))
	}
}

// awaitJob polls the accepted job with the reporter ticking alongside. The
// reporter is always joined before the detailed report is printed so output
// lines never interleave.
func (a *App) awaitJob(ctx context.Context, req domain.VerificationRequest, handle domain.JobHandle, outputMode string) error {
	fmt.Fprintf(a.out, "Verification request sent. %s\n", checkIcon)

	mode := detector.ResolveMode(detector.DetectEnvironment(), outputMode)
	reporter := a.newReporter(mode)
	reporter.Start(ctx)

	result, err := a.poller.Run(ctx, handle)
	if err != nil {
		reporter.Finish(false)
		return err
	}

	switch result.Status {
	case domain.JobCompleted:
		reporter.Finish(true)
		printRemoteSuccess(a.out, req.ProgramID, result.Outcome)
		onChain, executable := outcomeHashes(result.Outcome)
		a.recordOutcome(req, onChain, executable, true, true)
		return nil

	case domain.JobFailed:
		reporter.Finish(false)
		message := outcomeMessage(result.Outcome)
		detail := ""
		if message != "" {
			detail = "Error message: " + message
		}
		printNotVerified(a.out, req.ProgramID, detail)
		onChain, executable := outcomeHashes(result.Outcome)
		a.recordOutcome(req, onChain, executable, false, true)
		return zerr.With(zerr.With(zerr.Wrap(domain.ErrVerificationFailed, ""),
			"program_id", req.ProgramID.String()),
			"message", message,
		)

	default:
		reporter.Finish(false)
		printNotVerified(a.out, req.ProgramID, "")
		return zerr.With(zerr.Wrap(domain.ErrVerificationFailed, ""), "program_id", req.ProgramID.String())
	}
}

func outcomeHashes(o *domain.JobOutcome) (onChain, executable string) {
	if o == nil {
		return "", ""
	}
	return o.OnChainHash, o.ExecutableHash
}

func outcomeMessage(o *domain.JobOutcome) string {
	if o == nil {
		return ""
	}
	return o.Message
}

func (a *App) baseImage(req domain.VerificationRequest) string {
	if req.BaseImage != "" {
		return req.BaseImage
	}
	return a.cfg.BaseImage
}
