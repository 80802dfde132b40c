// Package storage is the persistence layer: it round-trips the inventory
// collections to a local key-value table, including the one-time
// migration from the v1 record schema.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/naphat/floodkit/internal/model"
	"github.com/naphat/floodkit/internal/valuation"
)

// Keys names the kv entries the adapter reads and writes.
type Keys struct {
	Items       string
	LegacyItems string
	Categories  string
	Progress    string
}

// Adapter persists whole collections as JSON values under well-known
// keys, write-through on every mutation. There is a single writer by
// construction, so "last write wins" per key is the only discipline.
type Adapter struct {
	db   *sql.DB
	keys Keys
}

// New creates a persistence adapter over an opened database.
func New(db *sql.DB, keys Keys) *Adapter {
	return &Adapter{db: db, keys: keys}
}

// CorruptDataError reports a stored value that failed to parse. It is
// recoverable: callers fall back to an empty collection and keep going.
type CorruptDataError struct {
	Key string
	Err error
}

func (e *CorruptDataError) Error() string {
	return fmt.Sprintf("corrupt data under key %q: %v", e.Key, e.Err)
}

func (e *CorruptDataError) Unwrap() error { return e.Err }

// getValue reads a raw kv entry. The second return is false when the key
// does not exist.
func (a *Adapter) getValue(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := a.db.QueryRowContext(ctx,
		`SELECT value FROM kv WHERE key = ?`, key,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading key %q: %w", key, err)
	}
	return value, true, nil
}

// setValue upserts a raw kv entry.
func (a *Adapter) setValue(ctx context.Context, key, value string) error {
	_, err := a.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("writing key %q: %w", key, err)
	}
	return nil
}

// loadSlice decodes the JSON array stored under key into dst. A missing
// key leaves dst untouched and returns false. A parse failure returns a
// *CorruptDataError.
func (a *Adapter) loadSlice(ctx context.Context, key string, dst any) (bool, error) {
	raw, ok, err := a.getValue(ctx, key)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return false, &CorruptDataError{Key: key, Err: err}
	}
	return true, nil
}

// saveJSON serializes v and writes it under key.
func (a *Adapter) saveJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding value for key %q: %w", key, err)
	}
	return a.setValue(ctx, key, string(data))
}

// LoadItems reads the item collection. When the current-version key is
// absent but a legacy-version key exists, each legacy record is mapped
// into the current schema; the legacy entry itself is left untouched so
// the migration can never destroy data. Corrupt JSON surfaces as a
// *CorruptDataError for the caller to log and recover from.
func (a *Adapter) LoadItems(ctx context.Context) ([]model.InventoryItem, error) {
	var items []model.InventoryItem
	ok, err := a.loadSlice(ctx, a.keys.Items, &items)
	if err != nil {
		return nil, err
	}
	if ok {
		return items, nil
	}

	var legacy []model.LegacyItem
	ok, err = a.loadSlice(ctx, a.keys.LegacyItems, &legacy)
	if err != nil || !ok {
		return nil, err
	}

	migrated := make([]model.InventoryItem, 0, len(legacy))
	for _, l := range legacy {
		migrated = append(migrated, MigrateLegacyItem(l))
	}
	return migrated, nil
}

// SaveItems writes the full item collection.
func (a *Adapter) SaveItems(ctx context.Context, items []model.InventoryItem) error {
	if items == nil {
		items = []model.InventoryItem{}
	}
	return a.saveJSON(ctx, a.keys.Items, items)
}

// LoadCategories reads the category registry. Missing key returns nil,
// meaning "use the seed defaults".
func (a *Adapter) LoadCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if _, err := a.loadSlice(ctx, a.keys.Categories, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// SaveCategories writes the full category registry.
func (a *Adapter) SaveCategories(ctx context.Context, categories []model.Category) error {
	if categories == nil {
		categories = []model.Category{}
	}
	return a.saveJSON(ctx, a.keys.Categories, categories)
}

// LoadProgress reads the checklist completion map.
func (a *Adapter) LoadProgress(ctx context.Context) (map[string]bool, error) {
	raw, ok, err := a.getValue(ctx, a.keys.Progress)
	if err != nil {
		return nil, err
	}
	if !ok {
		return map[string]bool{}, nil
	}
	done := map[string]bool{}
	if err := json.Unmarshal([]byte(raw), &done); err != nil {
		return nil, &CorruptDataError{Key: a.keys.Progress, Err: err}
	}
	return done, nil
}

// SaveProgress writes the checklist completion map.
func (a *Adapter) SaveProgress(ctx context.Context, done map[string]bool) error {
	if done == nil {
		done = map[string]bool{}
	}
	return a.saveJSON(ctx, a.keys.Progress, done)
}

// Legacy records predate the damage-assessment fields, so the migration
// fills them with flood defaults.
const (
	legacyUnit       = "เครื่อง"
	legacyDamageType = "น้ำท่วม"
)

// MigrateLegacyItem maps a v1 record into the current schema. An
// irreparable v1 status means a total loss; everything else lands on the
// moderate midpoint. The total damage value is recomputed rather than
// copied so the valuation invariant holds for migrated records too.
func MigrateLegacyItem(l model.LegacyItem) model.InventoryItem {
	level := model.DamageLevelModerate
	usability := model.UsabilityPartial
	if l.Status == model.RepairStatusIrreparable {
		level = model.DamageLevelTotal
		usability = model.UsabilityUnusable
	}
	percent := valuation.DefaultDamagePercent(level)

	repairStatus := l.Status
	if repairStatus == "" {
		repairStatus = model.RepairStatusPending
	}

	return model.InventoryItem{
		ID:                  l.ID,
		CategoryID:          l.CategoryID,
		SubCategory:         l.SubCategory,
		Name:                l.Name,
		Description:         l.Description,
		Quantity:            l.Quantity,
		Unit:                legacyUnit,
		DamageType:          legacyDamageType,
		DamageLevel:         level,
		Usability:           usability,
		RepairStatus:        repairStatus,
		CurrentValuePerUnit: l.PricePerUnit,
		DamagePercent:       percent,
		TotalDamageValue:    valuation.TotalDamageValue(l.PricePerUnit, percent, l.Quantity),
		Note:                l.Note,
	}
}
