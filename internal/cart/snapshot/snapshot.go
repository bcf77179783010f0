// Package snapshot persists cart state as a whole-list snapshot under a
// single named slot. The container writes through after every mutation and
// loads once at construction; backends never see individual mutations.
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"

	"lustre/internal/cart/models"
)

// FormatVersion is stamped into every persisted envelope so future layouts
// can be detected. Unknown versions are treated as an absent snapshot rather
// than an error.
const FormatVersion = 1

// Store is the persistence strategy injected into the cart container.
// Load returns sentinel.ErrNotFound when the slot has never been written.
type Store interface {
	Load(ctx context.Context) ([]models.LineItem, error)
	Save(ctx context.Context, items []models.LineItem) error
}

// envelope is the serialized layout shared by all backends.
type envelope struct {
	Version int               `json:"version"`
	Items   []models.LineItem `json:"items"`
}

// Encode serializes an item list into the versioned envelope.
func Encode(items []models.LineItem) ([]byte, error) {
	payload, err := json.Marshal(envelope{Version: FormatVersion, Items: items})
	if err != nil {
		return nil, fmt.Errorf("encode cart snapshot: %w", err)
	}
	return payload, nil
}

// Decode parses a persisted envelope. A payload with an unexpected version
// or shape yields ok=false so callers fall back to an empty cart instead of
// failing startup.
func Decode(payload []byte) ([]models.LineItem, bool) {
	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return nil, false
	}
	if env.Version != FormatVersion {
		return nil, false
	}
	return env.Items, true
}
