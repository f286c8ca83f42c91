package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/loreforge/loreforge/backend/pkg/leaselock"
	"github.com/loreforge/loreforge/backend/pkg/logger"
	storepgx "github.com/loreforge/loreforge/backend/pkg/store/pgx"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PurgeMsg is the payload published to the purge queue after a delete
// commits. NodeID is the public id of the soft-deleted node.
type PurgeMsg struct {
	NodeID string `json:"node_id"`
	Kind   string `json:"kind"`
}

// ProcessPurgeMessage hard-deletes one soft-deleted node. The lease lock
// serializes purges for the same node, so a redelivered message finds nothing
// left to do and succeeds.
func ProcessPurgeMessage(
	ctx context.Context,
	conn *pgxpool.Pool,
	msg string,
) error {
	data := new(PurgeMsg)
	if err := json.Unmarshal([]byte(msg), data); err != nil {
		return err
	}
	if data.NodeID == "" {
		return fmt.Errorf("purge message without node_id")
	}

	lockClient := leaselock.New(conn)
	lease, err := lockClient.Acquire(ctx, fmt.Sprintf("purge:%s", data.NodeID), leaselock.Options{
		TTL:        time.Minute,
		RenewEvery: 20 * time.Second,
		Wait:       true,
	})
	if err != nil {
		return err
	}
	defer func() {
		_ = lease.Release(context.Background())
	}()

	store := storepgx.NewGraphStore(conn)
	if err := store.PurgeNode(lease.Context, data.NodeID); err != nil {
		return err
	}

	logger.Info("[Queue] Purged node", "node_id", data.NodeID, "kind", data.Kind)
	return nil
}

// SweepExpired removes any soft-deleted node older than the retention window.
// It covers purge messages that never arrived.
func SweepExpired(ctx context.Context, conn *pgxpool.Pool, retentionDays int) error {
	lockClient := leaselock.New(conn)
	return lockClient.WithLease(ctx, "purge:sweep", leaselock.Options{
		TTL:        5 * time.Minute,
		RenewEvery: 2 * time.Minute,
	}, func(ctx context.Context) error {
		store := storepgx.NewGraphStore(conn)
		purged, err := store.PurgeExpired(ctx, retentionDays)
		if err != nil {
			return err
		}
		if purged > 0 {
			logger.Info("[Queue] Sweep purged expired nodes", "count", purged)
		}
		return nil
	})
}
