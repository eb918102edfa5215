package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/mhpenta/assetgen"
	"github.com/mhpenta/assetgen/internal/catalog"
	"github.com/mhpenta/assetgen/internal/settings"
	"github.com/mhpenta/assetgen/provider/gemini"
)

// generatorFactory builds the image service client once the credential is known.
type generatorFactory func(ctx context.Context, apiKey string) (assetgen.ImageGenerator, error)

type app struct {
	settingsPath string
	assetRoot    string
	out          io.Writer
	logger       *slog.Logger
	newGenerator generatorFactory
	runnerOpts   []assetgen.RunnerOption
}

func newApp(out, errOut io.Writer) (*app, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolving working directory: %w", err)
	}

	settingsPath, err := settings.DefaultPath()
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: slog.LevelWarn})).
		With("run_id", uuid.NewString())

	return &app{
		settingsPath: settingsPath,
		assetRoot:    filepath.Join(wd, "assets"),
		out:          out,
		logger:       logger,
		newGenerator: newGeminiGenerator,
	}, nil
}

func newGeminiGenerator(ctx context.Context, apiKey string) (assetgen.ImageGenerator, error) {
	return gemini.NewWithAPIKey(ctx, apiKey)
}

// run loads the credential and catalog, generates every asset and prints the manifest.
// Only startup failures are returned; task failures are reported and swallowed.
func (a *app) run(ctx context.Context) error {
	cred, err := settings.LoadCredential(a.settingsPath)
	if err != nil {
		return fmt.Errorf("loading credential: %w", err)
	}

	cat, err := catalog.Default()
	if err != nil {
		return err
	}

	gen, err := a.newGenerator(ctx, cred.Secret())
	if err != nil {
		return err
	}
	manager := assetgen.NewManager(gen, assetgen.WithLogger(a.logger))
	defer func() {
		if err := manager.Close(); err != nil {
			a.logger.Warn("closing image generator", "error", err.Error())
		}
	}()

	store := assetgen.NewDirStorage(a.assetRoot)
	if err := store.Prepare(cat.Directories...); err != nil {
		return err
	}

	opts := append([]assetgen.RunnerOption{
		assetgen.WithOutput(a.out),
		assetgen.WithRunnerLogger(a.logger),
	}, a.runnerOpts...)
	runner, err := assetgen.NewRunner(manager, store, opts...)
	if err != nil {
		return err
	}

	report := assetgen.NewReporter(a.out)
	report.Banner("Village Assets: Pixel Art Generation")

	summary := runner.Run(ctx, cat.Tasks)

	report.Banner("Asset generation complete!")
	fmt.Fprintf(a.out, "Generated %d/%d assets\n", len(summary.Succeeded), summary.Total())
	for _, task := range summary.Failed {
		fmt.Fprintf(a.out, "Failed: %s (%s)\n", task.Title, task.Path)
	}
	fmt.Fprintf(a.out, "Assets saved to: %s%c\n", a.assetRoot, filepath.Separator)

	entries, err := assetgen.BuildManifest(a.assetRoot)
	if err != nil {
		a.logger.Error("listing assets", "error", err.Error())
		return nil
	}
	assetgen.WriteManifest(a.out, entries)
	return nil
}
