package app

import (
	"context"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/agragregra/jw/internal/core/domain"
	"go.trai.ch/zerr"
)

// registry builds the fixed task table. The insertion order here is the
// canonical command order shown in the CLI usage.
func (a *App) registry(cfg *domain.Config) (*domain.Registry, error) {
	reg := domain.NewRegistry()
	for _, task := range []*domain.Task{
		{
			Name:          "dev",
			Summary:       "Serve the site with live reload and bundle JS in watch mode",
			Tools:         []string{"jekyll", "esbuild"},
			Interruptible: true,
			Action:        a.devAction(cfg),
		},
		{
			Name:    "build",
			Summary: "Bundle JS and build the production site",
			Tools:   []string{"esbuild", "jekyll"},
			Action:  a.buildAction(cfg),
		},
		{
			Name:          "deploy",
			Summary:       "Build the site and sync it to the remote host",
			Tools:         []string{"jekyll", "esbuild", "rsync"},
			Interruptible: true,
			Action:        a.deployAction(cfg),
		},
		{
			Name:    "backup",
			Summary: "Archive the project into a dated zip file",
			Tools:   []string{"zip"},
			Action:  a.backupAction(cfg),
		},
		{
			Name:          "preview",
			Summary:       "Build the site and serve it without watching",
			Tools:         []string{"esbuild", "jekyll"},
			Interruptible: true,
			Action:        a.previewAction(cfg),
		},
		{
			Name:          "watch",
			Summary:       "Rebuild the site and the JS bundle as sources change",
			Tools:         []string{"jekyll", "esbuild"},
			Interruptible: true,
			Action:        a.watchAction(cfg),
		},
		{
			Name:    "clean",
			Summary: "Remove generated build artifacts",
			Tools:   []string{"jekyll"},
			Action:  a.cleanAction(cfg),
		},
		{
			Name:    "up",
			Summary: "Start the container environment",
			Tools:   []string{"docker"},
			Action:  a.composeAction("up", "-d"),
		},
		{
			Name:    "down",
			Summary: "Stop the container environment",
			Tools:   []string{"docker"},
			Action:  a.composeAction("down"),
		},
		{
			Name:    "bash",
			Summary: "Open a shell inside the app container",
			Tools:   []string{"docker"},
			Action:  a.composeAction("exec", cfg.ComposeService, "bash"),
		},
		{
			Name:    "prune",
			Summary: "Remove unused container data",
			Tools:   []string{"docker"},
			Action: func(ctx context.Context) error {
				return a.invoke(ctx, &domain.Invocation{
					Tool: "docker",
					Args: []string{"system", "prune", "-af"},
				})
			},
		},
	} {
		if err := reg.Add(task); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

func (a *App) devAction(cfg *domain.Config) domain.Action {
	return func(ctx context.Context) error {
		return a.runPair(ctx, jekyllServe(cfg), esbuildWatch(cfg))
	}
}

func (a *App) buildAction(cfg *domain.Config) domain.Action {
	return func(ctx context.Context) error {
		if err := a.invoke(ctx, esbuildBundle(cfg)); err != nil {
			return err
		}
		return a.invoke(ctx, jekyllBuild(cfg))
	}
}

func (a *App) deployAction(cfg *domain.Config) domain.Action {
	return func(ctx context.Context) error {
		if err := a.invoke(ctx, jekyllClean()); err != nil {
			return err
		}
		if err := a.buildAction(cfg)(ctx); err != nil {
			return err
		}

		syncErr := a.invoke(ctx, rsyncMirror(cfg))
		if syncErr != nil {
			syncErr = zerr.Wrap(syncErr, "Deploy failed: rsync error")
		}

		// The trailing clean runs even when the sync failed.
		if err := a.invoke(ctx, jekyllClean()); err != nil && syncErr == nil {
			syncErr = err
		}
		return syncErr
	}
}

func (a *App) backupAction(cfg *domain.Config) domain.Action {
	return func(ctx context.Context) error {
		archive := cfg.BackupPrefix + "-" + time.Now().Format(cfg.BackupDateLayout) + ".zip"

		args := []string{"-r", "-" + strconv.Itoa(cfg.BackupLevel), archive, "."}
		if len(cfg.BackupExcludes) > 0 {
			args = append(args, "-x")
			args = append(args, cfg.BackupExcludes...)
		}

		if err := a.invoke(ctx, &domain.Invocation{Tool: "zip", Args: args}); err != nil {
			return err
		}

		digest, err := a.hasher.ComputeFileHash(archive)
		if err != nil {
			return zerr.Wrap(err, "failed to hash backup archive")
		}
		a.logger.Info("wrote " + archive + " (xxh64 " + digest + ")")
		return nil
	}
}

func (a *App) previewAction(cfg *domain.Config) domain.Action {
	return func(ctx context.Context) error {
		if err := a.buildAction(cfg)(ctx); err != nil {
			return err
		}
		return a.invoke(ctx, &domain.Invocation{
			Tool: "jekyll",
			Args: []string{
				"serve", "--no-watch", "--skip-initial-build",
				"--host", cfg.PreviewHost,
				"--port", strconv.Itoa(cfg.PreviewPort),
			},
		})
	}
}

func (a *App) watchAction(cfg *domain.Config) domain.Action {
	return func(ctx context.Context) error {
		return a.runPair(ctx, jekyllWatch(cfg), esbuildWatch(cfg))
	}
}

func (a *App) cleanAction(cfg *domain.Config) domain.Action {
	return func(ctx context.Context) error {
		return a.invoke(ctx, jekyllClean())
	}
}

func (a *App) composeAction(args ...string) domain.Action {
	return func(ctx context.Context) error {
		return a.invoke(ctx, &domain.Invocation{
			Tool: "docker",
			Args: append([]string{"compose"}, args...),
		})
	}
}

func jekyllBuild(cfg *domain.Config) *domain.Invocation {
	return &domain.Invocation{
		Tool: "jekyll",
		Args: []string{"build", "--config", strings.Join(cfg.JekyllConfigs, ",")},
	}
}

func jekyllServe(cfg *domain.Config) *domain.Invocation {
	return &domain.Invocation{
		Tool: "jekyll",
		Args: []string{"serve", "--livereload", "--config", strings.Join(cfg.JekyllDevConfigs, ",")},
	}
}

func jekyllWatch(cfg *domain.Config) *domain.Invocation {
	return &domain.Invocation{
		Tool: "jekyll",
		Args: []string{"build", "--watch", "--config", strings.Join(cfg.JekyllConfigs, ",")},
	}
}

func jekyllClean() *domain.Invocation {
	return &domain.Invocation{Tool: "jekyll", Args: []string{"clean"}}
}

func esbuildBundle(cfg *domain.Config) *domain.Invocation {
	args := append(jsEntries(cfg), "--bundle", "--minify", "--outdir="+cfg.JSOutDir)
	return &domain.Invocation{Tool: "esbuild", Args: args}
}

func esbuildWatch(cfg *domain.Config) *domain.Invocation {
	args := append(jsEntries(cfg), "--bundle", "--watch", "--outdir="+cfg.JSOutDir)
	return &domain.Invocation{Tool: "esbuild", Args: args}
}

// jsEntries expands the entry glob the way a shell would. When nothing
// matches, the raw pattern is passed through and esbuild reports the error.
func jsEntries(cfg *domain.Config) []string {
	matches, err := filepath.Glob(cfg.JSEntry)
	if err != nil || len(matches) == 0 {
		return []string{cfg.JSEntry}
	}
	return matches
}

func rsyncMirror(cfg *domain.Config) *domain.Invocation {
	args := append([]string{}, cfg.RsyncFlags...)
	args = append(args, cfg.OutputDir+"/", cfg.DeployTarget())
	return &domain.Invocation{Tool: "rsync", Args: args}
}
