package kernel

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thanzeeha/portfolio4/metal/env"
	"github.com/thanzeeha/portfolio4/pkg/scheduler"
	"github.com/thanzeeha/portfolio4/remote"
	"github.com/thanzeeha/portfolio4/storage"
)

// MakeBackupScheduler wires the periodic backup job: on each tick the
// committed document is pushed to the remote store through the versioned
// write path. Returns nil when no schedule or no remote store is configured.
func MakeBackupScheduler(environment *env.Environment, store *storage.Store, remoteStore *remote.GithubStore) (*scheduler.Scheduler, error) {
	if !environment.Backup.Enabled() {
		return nil, nil
	}

	if remoteStore == nil {
		return nil, fmt.Errorf("backup schedule is set but no remote write credential is configured")
	}

	coords := remote.Coordinates{
		Owner:  environment.Remote.Owner,
		Repo:   environment.Remote.Repo,
		Path:   environment.Remote.Path,
		Branch: environment.Remote.GetBranch(),
	}

	message := environment.Remote.Message
	if message == "" {
		message = "Scheduled backup"
	}

	job := func(ctx context.Context) error {
		doc := store.Load()

		content, err := doc.Canonical()
		if err != nil {
			return fmt.Errorf("serialize document: %w", err)
		}

		result, err := remoteStore.Sync(ctx, coords, content, message)
		if err != nil {
			return fmt.Errorf("push backup: %w", err)
		}

		slog.Info("backup pushed to remote store",
			"change", result.ChangeID,
			"version", doc.Version(),
		)

		return nil
	}

	return scheduler.New(environment.Backup.Schedule, job)
}
