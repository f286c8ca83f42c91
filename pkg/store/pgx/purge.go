package pgx

import (
	"context"

	pgxv5 "github.com/jackc/pgx/v5"
)

// PurgeNode permanently removes a soft-deleted node. Edges referencing the
// node go with it through the foreign key cascade. Nodes that are still live,
// or already gone, are left alone so redelivered purge messages are harmless.
func (s *GraphStore) PurgeNode(ctx context.Context, publicID string) error {
	return s.WriteTx(ctx, func(tx pgxv5.Tx) error {
		_, err := tx.Exec(ctx,
			"DELETE FROM nodes WHERE public_id = $1 AND deleted_at IS NOT NULL",
			publicID)
		return err
	})
}

// PurgeExpired removes every node soft-deleted before the retention cutoff.
// It backs the sweep the worker runs on a timer in case individual purge
// messages were lost.
func (s *GraphStore) PurgeExpired(ctx context.Context, retentionDays int) (int64, error) {
	var purged int64
	err := s.WriteTx(ctx, func(tx pgxv5.Tx) error {
		tag, err := tx.Exec(ctx,
			"DELETE FROM nodes WHERE deleted_at IS NOT NULL AND deleted_at < now() - make_interval(days => $1)",
			retentionDays)
		if err != nil {
			return err
		}
		purged = tag.RowsAffected()
		return nil
	})
	return purged, err
}
