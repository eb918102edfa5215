package assetgen

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"
)

const (
	// DefaultMaxAttempts bounds the requests made for one task.
	DefaultMaxAttempts = 3

	// DefaultDelay is the pause between retries and between tasks.
	DefaultDelay = 4 * time.Second
)

// Runner drives tasks through generate, extract and persist, one at a time,
// retrying each task a bounded number of times with a fixed pause.
type Runner struct {
	gen      ImageGenerator
	storage  Storage
	reporter *Reporter
	logger   *slog.Logger
	config   *GenerateConfig

	maxAttempts int
	retryDelay  time.Duration
	taskDelay   time.Duration

	sleep func(ctx context.Context, d time.Duration) error
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithMaxAttempts sets the attempt bound per task. Values below 1 mean 1.
func WithMaxAttempts(n int) RunnerOption {
	return func(r *Runner) {
		r.maxAttempts = max(n, 1)
	}
}

// WithRetryDelay sets the pause between attempts of the same task.
func WithRetryDelay(d time.Duration) RunnerOption {
	return func(r *Runner) {
		r.retryDelay = d
	}
}

// WithTaskDelay sets the pause between consecutive tasks.
func WithTaskDelay(d time.Duration) RunnerOption {
	return func(r *Runner) {
		r.taskDelay = d
	}
}

// WithDelay sets both the retry and the inter-task pause.
func WithDelay(d time.Duration) RunnerOption {
	return func(r *Runner) {
		r.retryDelay = d
		r.taskDelay = d
	}
}

// WithGenerateConfig sets the config sent with every request.
func WithGenerateConfig(config *GenerateConfig) RunnerOption {
	return func(r *Runner) {
		r.config = config
	}
}

// WithOutput directs progress lines to w.
func WithOutput(w io.Writer) RunnerOption {
	return func(r *Runner) {
		r.reporter = NewReporter(w)
	}
}

// WithRunnerLogger sets a structured logger for the runner.
func WithRunnerLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = logger
	}
}

// NewRunner creates a Runner that generates with gen and persists to storage.
func NewRunner(gen ImageGenerator, storage Storage, opts ...RunnerOption) (*Runner, error) {
	if gen == nil {
		return nil, fmt.Errorf("%w: no image generator", ErrProviderNotConfigured)
	}
	if storage == nil {
		return nil, ErrStorageNotConfigured
	}

	r := &Runner{
		gen:         gen,
		storage:     storage,
		reporter:    NewReporter(io.Discard),
		logger:      slog.Default(),
		config:      DefaultConfig(),
		maxAttempts: DefaultMaxAttempts,
		retryDelay:  DefaultDelay,
		taskDelay:   DefaultDelay,
		sleep:       sleepContext,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Summary is the outcome of a full run.
type Summary struct {
	Succeeded []Task
	Failed    []Task
}

// Total returns the number of tasks run.
func (s Summary) Total() int {
	return len(s.Succeeded) + len(s.Failed)
}

// Run executes tasks in order, pausing between them. A failed task never stops
// the run; a cancelled context does, and the tasks not yet started are left out
// of the summary.
func (r *Runner) Run(ctx context.Context, tasks []Task) Summary {
	var summary Summary
	for i, task := range tasks {
		if i > 0 {
			if err := r.sleep(ctx, r.taskDelay); err != nil {
				r.logger.Warn("run interrupted", "remaining", len(tasks)-i, "error", err.Error())
				return summary
			}
			r.reporter.Println()
		}

		r.reporter.TaskStarted(i+1, len(tasks), task)
		if r.Execute(ctx, task) {
			summary.Succeeded = append(summary.Succeeded, task)
		} else {
			summary.Failed = append(summary.Failed, task)
		}
	}
	return summary
}

// Execute runs one task until an image is saved or the attempts are used up.
// It reports success; failures are printed and logged, never returned.
func (r *Runner) Execute(ctx context.Context, task Task) bool {
	log := r.logger.With("task", task.Title, "path", task.Path)

	attempts := 0
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		attempts = attempt
		r.reporter.Attempt(task, attempt)

		size, err := r.attempt(ctx, task)
		if err == nil {
			r.reporter.Saved(task, size)
			log.Info("asset saved", "attempt", attempt, "bytes", size)
			return true
		}

		if errors.Is(err, ErrNoImage) {
			r.reporter.NoImage()
		} else {
			r.reporter.Error(err)
		}
		log.Warn("attempt failed", "attempt", attempt, "error", err.Error())

		if attempt < r.maxAttempts {
			if err := r.sleep(ctx, r.retryDelay); err != nil {
				log.Warn("retry wait interrupted", "error", err.Error())
				break
			}
		}
	}

	r.reporter.GaveUp(task, attempts)
	log.Error("task failed", "attempts", attempts)
	return false
}

// attempt makes one request and persists the first image in the response.
func (r *Runner) attempt(ctx context.Context, task Task) (int, error) {
	result, err := r.gen.Generate(ctx, task.Prompt, r.config)
	if err != nil {
		return 0, err
	}

	img, ok := result.FirstImage()
	if !ok {
		return 0, ErrNoImage
	}
	if want := GetMIMEType(task.Path); img.MIMEType != want {
		r.logger.Debug("image type differs from file extension",
			"path", task.Path,
			"mime_type", img.MIMEType,
			"extension_type", want,
		)
	}

	if _, err := r.storage.SaveFile(ctx, img.Data, task.Path, img.MIMEType); err != nil {
		return 0, fmt.Errorf("saving %s: %w", task.Path, err)
	}
	return len(img.Data), nil
}

// sleepContext pauses for d or until ctx is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
