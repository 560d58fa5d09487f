// Package pipeline orchestrates the four stages that take an icon catalog to
// a validated generated source file: generate, relocate, normalize, validate.
//
// Stages run strictly in order and the first failure stops the run. There is
// no retry and no rollback; whatever the failing stage left on disk stays
// there for inspection.
package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/forgeworks/glyphgen/config"
	"github.com/forgeworks/glyphgen/logger"
)

// State is the pipeline's position in its lifecycle.
type State string

const (
	StateStart      State = "start"
	StateGenerated  State = "generated"
	StateRelocated  State = "relocated"
	StateNormalized State = "normalized"
	StateValidated  State = "validated"
	StateFailed     State = "failed"
)

// StepResult records one stage's outcome.
type StepResult struct {
	Stage    string        // stage name: generate, relocate, normalize, validate
	State    State         // pipeline state after this stage
	Duration time.Duration // wall time spent in the stage
	Output   string        // verbatim diagnostic output, if any
	Err      error         // nil on success
}

// RunResult is the outcome of a full pipeline run.
type RunResult struct {
	RunID    string       // unique id carried through logs
	State    State        // final state, StateValidated on success
	Steps    []StepResult // stages in execution order, ends at first failure
	Artifact string       // canonical location of the installed artifact
	Icons    int          // icons in the generated table
	Duration time.Duration
}

// Err returns the first failing stage's error, or nil.
func (r *RunResult) Err() error {
	for _, step := range r.Steps {
		if step.Err != nil {
			return step.Err
		}
	}
	return nil
}

// FailedStage returns the name of the failing stage, or "".
func (r *RunResult) FailedStage() string {
	for _, step := range r.Steps {
		if step.Err != nil {
			return step.Stage
		}
	}
	return ""
}

// Runner executes pipeline runs against one configuration.
//
// The workspace directory is supplied by the caller, not created here: the
// caller decides whether it is a throwaway temp dir or a kept directory, and
// owns its cleanup.
type Runner struct {
	cfg       *config.Config
	workspace string
	emitter   Emitter
}

// NewRunner creates a runner. The workspace must be an existing writable
// directory; emitter may be nil for silent runs.
func NewRunner(cfg *config.Config, workspace string, emitter Emitter) *Runner {
	if emitter == nil {
		emitter = quietEmitter{}
	}
	return &Runner{cfg: cfg, workspace: workspace, emitter: emitter}
}

// Run executes the full pipeline once. The returned result always carries a
// run ID and the steps that executed; inspect result.Err() for failure.
func (r *Runner) Run(ctx context.Context) *RunResult {
	runID := uuid.New().String()
	log := logger.ChildLogger(logger.ComponentLogger("pipeline"), logger.FieldRunID, runID)

	result := &RunResult{RunID: runID, State: StateStart}
	started := time.Now()
	defer func() { result.Duration = time.Since(started) }()

	if ok := r.step(ctx, result, "generate", StateGenerated, func(ctx context.Context) (string, error) {
		artifact, icons, err := r.generate(ctx, runID)
		result.Icons = icons
		result.Artifact = artifact
		return "", err
	}); !ok {
		return result
	}

	if ok := r.step(ctx, result, "relocate", StateRelocated, func(ctx context.Context) (string, error) {
		dest, err := r.relocate(result.Artifact)
		result.Artifact = dest
		return "", err
	}); !ok {
		return result
	}

	if ok := r.step(ctx, result, "normalize", StateNormalized, func(ctx context.Context) (string, error) {
		return "", r.normalize(result.Artifact)
	}); !ok {
		return result
	}

	if ok := r.step(ctx, result, "validate", StateValidated, func(ctx context.Context) (string, error) {
		return r.validate(ctx)
	}); !ok {
		return result
	}

	log.Infow("pipeline complete",
		logger.FieldState, string(result.State),
		logger.FieldArtifact, result.Artifact,
		logger.FieldIcons, result.Icons,
		logger.FieldDurationMS, result.Duration.Milliseconds())
	r.emitter.EmitComplete(map[string]interface{}{
		"run_id":   runID,
		"artifact": result.Artifact,
		"icons":    result.Icons,
	})
	return result
}

// step runs one stage, records its StepResult, and reports whether the
// pipeline may continue.
func (r *Runner) step(ctx context.Context, result *RunResult, stage string, next State, fn func(context.Context) (string, error)) bool {
	r.emitter.EmitStage(stage, "running")
	log := logger.ChildLogger(logger.ComponentLogger("pipeline"), logger.FieldRunID, result.RunID)

	started := time.Now()
	output, err := fn(ctx)
	elapsed := time.Since(started)

	step := StepResult{Stage: stage, Duration: elapsed, Output: output, Err: err}
	if err != nil {
		step.State = StateFailed
		result.State = StateFailed
		result.Steps = append(result.Steps, step)
		log.Errorw("stage failed",
			logger.FieldStage, stage,
			logger.FieldDurationMS, elapsed.Milliseconds(),
			logger.FieldError, err)
		r.emitter.EmitError(stage, err)
		return false
	}

	step.State = next
	result.State = next
	result.Steps = append(result.Steps, step)
	log.Debugw("stage complete",
		logger.FieldStage, stage,
		logger.FieldState, string(next),
		logger.FieldDurationMS, elapsed.Milliseconds())
	return true
}
