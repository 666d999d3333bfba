package contracts

import (
	"context"

	"github.com/light-bringer/marquee-pricing-service/internal/pkg/committer"
)

// Committer applies commit plans. *committer.Committer satisfies it.
type Committer interface {
	Apply(ctx context.Context, plan *committer.CommitPlan) error
	ApplyWithVersionCheck(ctx context.Context, check committer.VersionCheck, plan *committer.CommitPlan) error
}
