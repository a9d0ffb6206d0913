package job

import (
	"context"
	"log/slog"

	"github.com/psaswat/testyourmodels/internal/repository"
	"github.com/psaswat/testyourmodels/internal/staticposts"
)

// SnapshotRefreshJob periodically replaces the fallback dataset with the
// latest successful full listing, so a store outage serves the freshest posts
// seen instead of only the compiled-in seed.
type SnapshotRefreshJob struct {
	pr       repository.PostRepository
	snapshot *staticposts.Snapshot
}

func NewSnapshotRefreshJob(pr repository.PostRepository, snapshot *staticposts.Snapshot) *SnapshotRefreshJob {
	return &SnapshotRefreshJob{
		pr:       pr,
		snapshot: snapshot,
	}
}

func (j *SnapshotRefreshJob) Refresh() {
	ctx := context.Background()

	posts, err := j.pr.ListRemote(ctx)
	if err != nil {
		// Keep the previous snapshot; a failed refresh must not clobber it.
		slog.Info(err.Error())
		return
	}

	if len(posts) == 0 {
		return
	}

	j.snapshot.Set(posts)
}
