package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/spanner"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/marquee-pricing-service/internal/config"
	"github.com/light-bringer/marquee-pricing-service/internal/models/m_outbox"
	"github.com/light-bringer/marquee-pricing-service/internal/pkg/committer"
	"github.com/light-bringer/marquee-pricing-service/internal/pkg/logger"
	"github.com/light-bringer/marquee-pricing-service/internal/pkg/query"
)

// deleteBatchSize keeps each commit well under Spanner's mutation limit.
const deleteBatchSize = 500

// Options for the outbox cleanup job.
type Options struct {
	SpannerDB              string
	CompletedRetentionDays int
	FailedRetentionDays    int
	DryRun                 bool
}

// retention is the cutoff for one terminal event status.
type retention struct {
	status string
	cutoff time.Time
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	opts := Options{}
	flag.StringVar(&opts.SpannerDB, "database", cfg.Spanner.Database, "Spanner database (projects/PROJECT/instances/INSTANCE/databases/DATABASE)")
	flag.IntVar(&opts.CompletedRetentionDays, "completed-retention", cfg.Outbox.CompletedRetentionDays, "Retention days for completed events")
	flag.IntVar(&opts.FailedRetentionDays, "failed-retention", cfg.Outbox.FailedRetentionDays, "Retention days for failed events")
	flag.BoolVar(&opts.DryRun, "dry-run", false, "Show what would be deleted without actually deleting")
	flag.Parse()

	zlog, err := logger.New(cfg.Log.Level, cfg.App.Env)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	if opts.CompletedRetentionDays <= 0 || opts.FailedRetentionDays <= 0 {
		zlog.Fatal("retention days must be positive",
			zap.Int("completed", opts.CompletedRetentionDays),
			zap.Int("failed", opts.FailedRetentionDays))
	}

	if err := cleanupOutbox(context.Background(), opts, zlog); err != nil {
		zlog.Fatal("cleanup failed", zap.Error(err))
	}

	zlog.Info("cleanup completed successfully")
}

func retentions(opts Options, now time.Time) []retention {
	return []retention{
		{status: m_outbox.StatusCompleted, cutoff: now.AddDate(0, 0, -opts.CompletedRetentionDays)},
		{status: m_outbox.StatusFailed, cutoff: now.AddDate(0, 0, -opts.FailedRetentionDays)},
	}
}

// expiredQuery selects events of one status processed before its cutoff.
func expiredQuery(r retention) *query.Builder {
	return query.From(m_outbox.TableName).
		Select(m_outbox.EventID).
		Where(query.Eq(m_outbox.Status, r.status)).
		Where(query.Lt(m_outbox.ProcessedAt, r.cutoff))
}

func cleanupOutbox(ctx context.Context, opts Options, zlog *zap.Logger) error {
	client, err := spanner.NewClient(ctx, opts.SpannerDB)
	if err != nil {
		return fmt.Errorf("failed to create Spanner client: %w", err)
	}
	defer client.Close()

	zlog.Info("starting outbox cleanup", zap.Bool("dry_run", opts.DryRun))

	comm := committer.NewCommitter(client)
	var total int64
	for _, r := range retentions(opts, time.Now().UTC()) {
		zlog.Info("retention cutoff", zap.String("status", r.status), zap.Time("cutoff", r.cutoff))

		if opts.DryRun {
			count, err := countExpired(ctx, client, r)
			if err != nil {
				return err
			}
			zlog.Info("would delete events", zap.String("status", r.status), zap.Int64("count", count))
			total += count
			continue
		}

		deleted, err := deleteExpired(ctx, client, comm, r)
		if err != nil {
			return err
		}
		zlog.Info("deleted events", zap.String("status", r.status), zap.Int64("count", deleted))
		total += deleted
	}

	if opts.DryRun {
		zlog.Info("dry run finished, run without -dry-run to delete", zap.Int64("total", total))
	} else {
		zlog.Info("outbox cleanup finished", zap.Int64("total", total))
	}
	return nil
}

func countExpired(ctx context.Context, client *spanner.Client, r retention) (int64, error) {
	iter := client.Single().Query(ctx, expiredQuery(r).Count().Build())
	defer iter.Stop()

	row, err := iter.Next()
	if err != nil {
		return 0, fmt.Errorf("failed to count %s events: %w", r.status, err)
	}
	var count int64
	if err := row.Columns(&count); err != nil {
		return 0, fmt.Errorf("failed to parse count: %w", err)
	}
	return count, nil
}

// deleteExpired reads the expired keys, then deletes them in batches.
func deleteExpired(ctx context.Context, client *spanner.Client, comm *committer.Committer, r retention) (int64, error) {
	iter := client.Single().Query(ctx, expiredQuery(r).Build())
	defer iter.Stop()

	var deleted int64
	plan := committer.NewPlan()
	flush := func() error {
		if plan.IsEmpty() {
			return nil
		}
		if err := comm.Apply(ctx, plan); err != nil {
			return fmt.Errorf("failed to delete %s events: %w", r.status, err)
		}
		deleted += int64(plan.Count())
		plan = committer.NewPlan()
		return nil
	}

	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return deleted, fmt.Errorf("failed to read %s events: %w", r.status, err)
		}

		var eventID string
		if err := row.Columns(&eventID); err != nil {
			return deleted, fmt.Errorf("failed to parse event id: %w", err)
		}
		plan.Add(spanner.Delete(m_outbox.TableName, spanner.Key{eventID}))

		if plan.Count() >= deleteBatchSize {
			if err := flush(); err != nil {
				return deleted, err
			}
		}
	}

	if err := flush(); err != nil {
		return deleted, err
	}
	return deleted, nil
}
