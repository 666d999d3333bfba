// Package committer collects Spanner mutations produced by repositories into a plan and
// applies the plan atomically.
//
// Use cases never write directly. The flow is:
//
//	plan := committer.NewPlan()
//	plan.Add(calcRepo.UpsertMut(calc))
//	plan.Add(outboxRepo.InsertMut(outboxRepo.EnrichEvent(event, payload)))
//	return c.Apply(ctx, plan)
//
// so a stored price calculation and the event announcing it land in the same commit.
package committer

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"
)

// ErrVersionConflict is returned when the row changed since it was read.
var ErrVersionConflict = errors.New("optimistic lock conflict")

// ErrRowNotFound is returned when the row guarded by a version check does not exist.
var ErrRowNotFound = errors.New("versioned row not found")

// CommitPlan is a typed wrapper around Spanner mutations.
type CommitPlan struct {
	mutations []*spanner.Mutation
}

// NewPlan creates a new empty CommitPlan.
func NewPlan() *CommitPlan {
	return &CommitPlan{
		mutations: make([]*spanner.Mutation, 0, 4),
	}
}

// Add adds a mutation to the plan. Nil mutations are ignored.
func (cp *CommitPlan) Add(mut *spanner.Mutation) {
	if mut != nil {
		cp.mutations = append(cp.mutations, mut)
	}
}

// AddMultiple adds multiple mutations to the plan.
func (cp *CommitPlan) AddMultiple(muts []*spanner.Mutation) {
	for _, mut := range muts {
		cp.Add(mut)
	}
}

// Mutations returns all collected mutations.
func (cp *CommitPlan) Mutations() []*spanner.Mutation {
	return cp.mutations
}

// IsEmpty returns true if the plan has no mutations.
func (cp *CommitPlan) IsEmpty() bool {
	return len(cp.mutations) == 0
}

// Count returns the number of mutations in the plan.
func (cp *CommitPlan) Count() int {
	return len(cp.mutations)
}

// VersionCheck names the row and column an optimistic lock is taken on.
type VersionCheck struct {
	Table    string
	Key      spanner.Key
	Column   string
	Expected int64
}

// Committer provides transaction execution for CommitPlans.
type Committer struct {
	client *spanner.Client
}

// NewCommitter creates a new Committer.
func NewCommitter(client *spanner.Client) *Committer {
	return &Committer{client: client}
}

// Apply executes the CommitPlan atomically. An insert that collides with a row written
// since it was read is reported as ErrVersionConflict.
func (c *Committer) Apply(ctx context.Context, plan *CommitPlan) error {
	if plan.IsEmpty() {
		return nil
	}

	if _, err := c.client.Apply(ctx, plan.Mutations()); err != nil {
		return conflictOr(err, "failed to apply commit plan")
	}
	return nil
}

// conflictOr maps a duplicate-key failure to ErrVersionConflict and wraps anything else.
func conflictOr(err error, msg string) error {
	if spanner.ErrCode(err) == codes.AlreadyExists {
		return fmt.Errorf("%w: %v", ErrVersionConflict, err)
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// ApplyWithVersionCheck applies the plan only if the guarded row still carries the
// expected version. It returns ErrVersionConflict when it does not and ErrRowNotFound
// when the row is gone.
func (c *Committer) ApplyWithVersionCheck(ctx context.Context, check VersionCheck, plan *CommitPlan) error {
	if plan.IsEmpty() {
		return nil
	}

	_, err := c.client.ReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		row, err := txn.ReadRow(ctx, check.Table, check.Key, []string{check.Column})
		if err != nil {
			if spanner.ErrCode(err) == codes.NotFound {
				return ErrRowNotFound
			}
			return fmt.Errorf("failed to read %s.%s: %w", check.Table, check.Column, err)
		}

		var current int64
		if err := row.Column(0, &current); err != nil {
			return fmt.Errorf("failed to parse version: %w", err)
		}
		if current != check.Expected {
			return fmt.Errorf("%w: %s %v expected version %d, found %d",
				ErrVersionConflict, check.Table, check.Key, check.Expected, current)
		}

		return txn.BufferWrite(plan.Mutations())
	})
	if err != nil {
		if errors.Is(err, ErrVersionConflict) || errors.Is(err, ErrRowNotFound) {
			return err
		}
		return conflictOr(err, "failed to apply commit plan with version check")
	}
	return nil
}
