package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/hypejab/triage/internal/board"
)

// Bridge mirrors board snapshots into the KV store, scoped by the bound
// user's identity. It subscribes to the store and writes the full snapshot
// after every mutation; with no user bound the write is skipped entirely, so
// nothing is ever persisted to an unscoped key.
//
// Persistence is best-effort, not transactional: a failed write is logged and
// the in-memory mutation stands. In-memory state may therefore run ahead of
// persisted state, which is acceptable for a single-session board.
type Bridge struct {
	kv        KV
	namespace string
	store     *board.Store
	userID    string
}

// NewBridge wires a bridge between store and kv and subscribes it to the
// store's mutation notifications.
func NewBridge(kv KV, namespace string, store *board.Store) *Bridge {
	b := &Bridge{kv: kv, namespace: namespace, store: store}
	store.Subscribe(b.persist)
	return b
}

// BoardKey returns the snapshot key for a user.
func (b *Bridge) BoardKey(userID string) string {
	return fmt.Sprintf("%s_%s_board", b.namespace, userID)
}

// UserID returns the currently bound user identity, or "" if none.
func (b *Bridge) UserID() string {
	return b.userID
}

// BindUser switches the bridge to a user: the previous user's in-memory state
// is never carried over. The new user's snapshot is loaded if one exists and
// parses; otherwise the board resets to defaults. The user is bound only
// after the load finishes, so the load itself does not echo a write.
func (b *Bridge) BindUser(userID string) {
	b.userID = ""

	raw, ok, err := b.kv.Get(b.BoardKey(userID))
	if err != nil {
		slog.Error("failed to read board snapshot", "user", userID, "error", err)
		ok = false
	}

	if ok {
		var snap board.Snapshot
		if err := json.Unmarshal([]byte(raw), &snap); err != nil {
			slog.Warn("corrupt board snapshot, falling back to defaults", "user", userID, "error", err)
			ok = false
		} else if !snap.Usable() {
			slog.Warn("snapshot missing columns, falling back to defaults", "user", userID)
			ok = false
		} else {
			b.store.LoadSnapshot(snap)
		}
	}
	if !ok {
		b.store.ResetToDefaults()
	}

	b.userID = userID
}

// Unbind detaches the current user and resets the in-memory board to
// defaults. The user's persisted snapshot is retained so a later login
// restores it; only DeleteUserData wipes stored state. The user is unbound
// before the reset so the defaults are not written over the snapshot.
func (b *Bridge) Unbind() {
	b.userID = ""
	b.store.ResetToDefaults()
}

// DeleteUserData removes every persisted key for the user. This is the
// account-deletion path, never triggered by ordinary logout.
func (b *Bridge) DeleteUserData(userID string) error {
	prefix := fmt.Sprintf("%s_%s_", b.namespace, userID)
	if err := b.kv.DeleteByPrefix(prefix); err != nil {
		return fmt.Errorf("failed to delete data for user %s: %w", userID, err)
	}
	return nil
}

// persist is the store subscriber: serialize the snapshot and write it under
// the bound user's key. Failures are logged, never propagated back into the
// mutation path.
func (b *Bridge) persist() {
	if b.userID == "" {
		return
	}

	data, err := json.Marshal(b.store.Snapshot())
	if err != nil {
		slog.Error("failed to serialize board snapshot", "user", b.userID, "error", err)
		return
	}
	if err := b.kv.Set(b.BoardKey(b.userID), string(data)); err != nil {
		slog.Error("failed to persist board snapshot", "user", b.userID, "error", err)
	}
}
