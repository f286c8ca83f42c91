package queue

import (
	"context"
	"testing"
)

// Malformed payloads must be rejected before any database work happens, so a
// nil pool is safe here.
func TestProcessPurgeMessageRejectsBadPayload(t *testing.T) {
	tests := []struct {
		name string
		msg  string
	}{
		{name: "not json", msg: "purge it"},
		{name: "empty object", msg: "{}"},
		{name: "missing node id", msg: `{"kind":"Campaign"}`},
		{name: "blank node id", msg: `{"node_id":"","kind":"User"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ProcessPurgeMessage(context.Background(), nil, tt.msg); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}
