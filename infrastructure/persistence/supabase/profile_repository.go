package supabase

import (
	"context"

	"linkvault/application/ports"
	"linkvault/pkg/retry"

	supa "github.com/supabase-community/supabase-go"
	"go.uber.org/zap"
)

// ProfileRepository reads the per-user profile rows kept alongside the
// identity provider's user records. A user without a profile row is simply
// not an admin.
type ProfileRepository struct {
	client      *supa.Client
	table       string
	retryConfig retry.Config
	logger      *zap.Logger
}

// NewProfileRepository creates a PostgREST-backed profile repository
func NewProfileRepository(client *supa.Client, table string, logger *zap.Logger) *ProfileRepository {
	return &ProfileRepository{
		client:      client,
		table:       table,
		retryConfig: retry.DefaultConfig(),
		logger:      logger,
	}
}

var _ ports.ProfileRepository = (*ProfileRepository)(nil)

// IsAdmin reports whether the user's profile carries the admin flag
func (r *ProfileRepository) IsAdmin(ctx context.Context, userID string) (bool, error) {
	var rows []profileRow
	err := retry.Do(ctx, r.retryConfig, func() error {
		_, err := r.client.From(r.table).
			Select("id,is_admin", "", false).
			Eq("id", userID).
			ExecuteTo(&rows)
		return collaboratorErr("get_profile", err)
	})
	if err != nil {
		return false, err
	}
	if len(rows) == 0 {
		return false, nil
	}
	return rows[0].IsAdmin, nil
}
