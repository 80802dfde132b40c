package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// SetItemPhoto stores (or replaces) the photo evidence for an item.
func (a *Adapter) SetItemPhoto(ctx context.Context, itemID string, data []byte, mime string) error {
	_, err := a.db.ExecContext(ctx,
		`INSERT INTO photos (item_id, data, mime) VALUES (?, ?, ?)
		 ON CONFLICT (item_id) DO UPDATE SET data = excluded.data, mime = excluded.mime,
		     uploaded_at = CURRENT_TIMESTAMP`,
		itemID, data, mime,
	)
	if err != nil {
		return fmt.Errorf("storing photo for item %s: %w", itemID, err)
	}
	return nil
}

// ItemPhoto returns an item's photo data and MIME type, or nil data when
// no photo is stored.
func (a *Adapter) ItemPhoto(ctx context.Context, itemID string) ([]byte, string, error) {
	var data []byte
	var mime string
	err := a.db.QueryRowContext(ctx,
		`SELECT data, mime FROM photos WHERE item_id = ?`, itemID,
	).Scan(&data, &mime)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("reading photo for item %s: %w", itemID, err)
	}
	return data, mime, nil
}

// DeleteItemPhoto removes an item's photo. Deleting a missing photo is a
// no-op.
func (a *Adapter) DeleteItemPhoto(ctx context.Context, itemID string) error {
	_, err := a.db.ExecContext(ctx,
		`DELETE FROM photos WHERE item_id = ?`, itemID,
	)
	if err != nil {
		return fmt.Errorf("deleting photo for item %s: %w", itemID, err)
	}
	return nil
}
