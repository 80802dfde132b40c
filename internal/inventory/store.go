// Package inventory holds the damage-inventory collections: item CRUD
// with derived filtering and aggregates, and the category registry.
// State lives in memory in insertion order and is written through to the
// persistence adapter on every accepted mutation.
package inventory

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/naphat/floodkit/internal/model"
	"github.com/naphat/floodkit/internal/storage"
	"github.com/naphat/floodkit/internal/valuation"
)

// Creation defaults for fields the draft leaves blank, matching the
// original entry form.
const (
	defaultUnit       = "ชิ้น"
	defaultDamageType = "น้ำท่วม"
)

// FilterOptions narrows the item listing. Empty strings and the "all"
// sentinel match everything for their predicate; the three predicates
// are conjunctive.
type FilterOptions struct {
	Search       string
	CategoryID   string
	RepairStatus string
}

// CategorySummary aggregates the items of one category.
type CategorySummary struct {
	CategoryID       string  `json:"categoryId"`
	Name             string  `json:"name"`
	ItemCount        int     `json:"itemCount"`
	TotalQuantity    int     `json:"totalQuantity"`
	TotalDamageValue float64 `json:"totalDamageValue"`
}

// Totals aggregates the whole inventory.
type Totals struct {
	ItemCount        int     `json:"itemCount"`
	TotalQuantity    int     `json:"totalQuantity"`
	TotalDamageValue float64 `json:"totalDamageValue"`
}

// Store holds the item collection and category registry. A single mutex
// serializes access; there is one writer by construction (the local UI),
// the lock just keeps the HTTP surface honest.
type Store struct {
	mu        sync.Mutex
	adapter   *storage.Adapter
	defaults  []model.Category
	protected map[string]bool
	log       *zap.Logger

	items      []model.InventoryItem
	categories []model.Category
	loaded     bool

	now func() time.Time
}

// NewStore creates a store over the given adapter. The default
// categories are seeded on first load and protected from deletion.
func NewStore(adapter *storage.Adapter, defaults []model.Category, log *zap.Logger) *Store {
	protected := make(map[string]bool, len(defaults))
	for _, c := range defaults {
		protected[c.ID] = true
	}
	return &Store{
		adapter:   adapter,
		defaults:  defaults,
		protected: protected,
		log:       log,
		now:       time.Now,
	}
}

// Load rehydrates the collections from storage. Corrupt stored data is
// reported and replaced with an empty collection (or the seed defaults
// for categories); it never crashes the load. Mutations are rejected
// with ErrNotReady until Load has completed.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.adapter.LoadItems(ctx)
	if err != nil {
		var corrupt *storage.CorruptDataError
		if !errors.As(err, &corrupt) {
			return err
		}
		s.log.Warn("stored items unreadable, starting with empty inventory",
			zap.String("key", corrupt.Key), zap.Error(corrupt.Err))
		items = nil
	}

	categories, err := s.adapter.LoadCategories(ctx)
	if err != nil {
		var corrupt *storage.CorruptDataError
		if !errors.As(err, &corrupt) {
			return err
		}
		s.log.Warn("stored categories unreadable, reseeding defaults",
			zap.String("key", corrupt.Key), zap.Error(corrupt.Err))
		categories = nil
	}

	if len(categories) == 0 {
		categories = append([]model.Category(nil), s.defaults...)
		if err := s.adapter.SaveCategories(ctx, categories); err != nil {
			return err
		}
	}

	s.items = items
	s.categories = categories
	s.loaded = true

	s.log.Info("inventory loaded",
		zap.Int("items", len(items)),
		zap.Int("categories", len(categories)))
	return nil
}

// Items returns a copy of the item collection in insertion order.
func (s *Store) Items() []model.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.InventoryItem(nil), s.items...)
}

// Item returns the item with the given id.
func (s *Store) Item(id string) (model.InventoryItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return model.InventoryItem{}, false
}

// CreateItem validates a draft, fills creation defaults, computes the
// damage value, appends the item, and persists the collection.
func (s *Store) CreateItem(ctx context.Context, draft model.ItemDraft) (model.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return model.InventoryItem{}, ErrNotReady
	}
	if err := validateDraft(draft); err != nil {
		return model.InventoryItem{}, err
	}

	item := s.itemFromDraft(uuid.NewString(), draft, nil)

	s.items = append(s.items, item)
	if err := s.adapter.SaveItems(ctx, s.items); err != nil {
		s.items = s.items[:len(s.items)-1]
		return model.InventoryItem{}, err
	}

	s.log.Info("item created",
		zap.String("id", item.ID),
		zap.String("name", item.Name),
		zap.Float64("totalDamageValue", item.TotalDamageValue))
	return item, nil
}

// UpdateItem replaces the item with the given id wholesale from the
// draft, recomputing the damage value, and persists. Returns ErrNotFound
// for an unknown id.
func (s *Store) UpdateItem(ctx context.Context, id string, draft model.ItemDraft) (model.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return model.InventoryItem{}, ErrNotReady
	}

	idx := -1
	for i, it := range s.items {
		if it.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return model.InventoryItem{}, ErrNotFound
	}

	if err := validateDraft(draft); err != nil {
		return model.InventoryItem{}, err
	}

	prev := s.items[idx]
	item := s.itemFromDraft(id, draft, &prev)

	s.items[idx] = item
	if err := s.adapter.SaveItems(ctx, s.items); err != nil {
		s.items[idx] = prev
		return model.InventoryItem{}, err
	}

	s.log.Info("item updated", zap.String("id", id), zap.String("name", item.Name))
	return item, nil
}

// DeleteItem removes the item with the given id and persists. Deleting
// an unknown id is a no-op. Any stored photo goes with the item.
func (s *Store) DeleteItem(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return ErrNotReady
	}

	idx := -1
	for i, it := range s.items {
		if it.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil
	}

	removed := s.items[idx]
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	if err := s.adapter.SaveItems(ctx, s.items); err != nil {
		return err
	}
	if err := s.adapter.DeleteItemPhoto(ctx, id); err != nil {
		s.log.Warn("deleting item photo", zap.String("id", id), zap.Error(err))
	}

	s.log.Info("item deleted", zap.String("id", id), zap.String("name", removed.Name))
	return nil
}

// Filter returns the items matching all three predicates, preserving
// insertion order.
func (s *Store) Filter(opts FilterOptions) []model.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	search := strings.ToLower(strings.TrimSpace(opts.Search))

	var matched []model.InventoryItem
	for _, it := range s.items {
		if search != "" &&
			!strings.Contains(strings.ToLower(it.Name), search) &&
			!strings.Contains(strings.ToLower(it.Description), search) {
			continue
		}
		if opts.CategoryID != "" && opts.CategoryID != "all" && it.CategoryID != opts.CategoryID {
			continue
		}
		if opts.RepairStatus != "" && opts.RepairStatus != "all" && it.RepairStatus != opts.RepairStatus {
			continue
		}
		matched = append(matched, it)
	}
	return matched
}

// SummaryByCategory aggregates items per category. Categories with no
// items are omitted. Items whose categoryId no longer resolves are still
// summarized, labeled with the raw id.
func (s *Store) SummaryByCategory() []CategorySummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	byCategory := make(map[string]*CategorySummary)
	var order []string

	add := func(id, name string) *CategorySummary {
		if sum, ok := byCategory[id]; ok {
			return sum
		}
		sum := &CategorySummary{CategoryID: id, Name: name}
		byCategory[id] = sum
		order = append(order, id)
		return sum
	}

	// Registry order first, then dangling category ids as encountered.
	names := make(map[string]string, len(s.categories))
	for _, c := range s.categories {
		names[c.ID] = c.Name
	}

	for _, it := range s.items {
		name, ok := names[it.CategoryID]
		if !ok {
			name = it.CategoryID // category was deleted, raw id as label
		}
		sum := add(it.CategoryID, name)
		sum.ItemCount++
		sum.TotalQuantity += it.Quantity
		sum.TotalDamageValue += it.TotalDamageValue
	}

	result := make([]CategorySummary, 0, len(order))
	for _, c := range s.categories {
		if sum, ok := byCategory[c.ID]; ok {
			result = append(result, *sum)
			delete(byCategory, c.ID)
		}
	}
	for _, id := range order {
		if sum, ok := byCategory[id]; ok {
			result = append(result, *sum)
		}
	}
	return result
}

// GrandTotal sums damage value and quantity across all items.
func (s *Store) GrandTotal() Totals {
	s.mu.Lock()
	defer s.mu.Unlock()

	var t Totals
	for _, it := range s.items {
		t.ItemCount++
		t.TotalQuantity += it.Quantity
		t.TotalDamageValue += it.TotalDamageValue
	}
	return t
}

// AttachPhoto stores photo evidence for an item and records the serving
// path in the item's photoRef.
func (s *Store) AttachPhoto(ctx context.Context, id string, data []byte, mime string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return ErrNotReady
	}

	idx := -1
	for i, it := range s.items {
		if it.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrNotFound
	}

	if err := s.adapter.SetItemPhoto(ctx, id, data, mime); err != nil {
		return err
	}

	prev := s.items[idx].PhotoRef
	s.items[idx].PhotoRef = "/api/items/" + id + "/photo"
	if err := s.adapter.SaveItems(ctx, s.items); err != nil {
		s.items[idx].PhotoRef = prev
		return err
	}
	return nil
}

// Photo returns an item's stored photo, or nil data when none exists.
func (s *Store) Photo(ctx context.Context, id string) ([]byte, string, error) {
	return s.adapter.ItemPhoto(ctx, id)
}

// validateDraft enforces the boundary invariants: non-blank name,
// quantity at least 1, and known enum values when provided.
func validateDraft(draft model.ItemDraft) error {
	if strings.TrimSpace(draft.Name) == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if draft.Quantity < 1 {
		return &ValidationError{Field: "quantity", Reason: "must be at least 1"}
	}
	if draft.DamageLevel != "" && !model.ValidDamageLevel(draft.DamageLevel) {
		return &ValidationError{Field: "damageLevel", Reason: "unknown level " + draft.DamageLevel}
	}
	if draft.Usability != "" && !model.ValidUsability(draft.Usability) {
		return &ValidationError{Field: "usability", Reason: "unknown status " + draft.Usability}
	}
	if draft.RepairStatus != "" && !model.ValidRepairStatus(draft.RepairStatus) {
		return &ValidationError{Field: "repairStatus", Reason: "unknown status " + draft.RepairStatus}
	}
	return nil
}

// itemFromDraft builds the stored record from a validated draft. prev is
// the existing record on update, nil on create.
func (s *Store) itemFromDraft(id string, draft model.ItemDraft, prev *model.InventoryItem) model.InventoryItem {
	level := draft.DamageLevel
	if level == "" {
		level = model.DamageLevelModerate
	}
	usability := draft.Usability
	if usability == "" {
		usability = model.UsabilityPartial
	}
	repairStatus := draft.RepairStatus
	if repairStatus == "" {
		repairStatus = model.RepairStatusPending
	}
	unit := draft.Unit
	if unit == "" {
		unit = defaultUnit
	}
	damageType := draft.DamageType
	if damageType == "" {
		damageType = defaultDamageType
	}

	// Damage percent: an omitted value means "use the level default". A
	// supplied value is an override, except when the level changed and
	// the percent merely repeats the old record: then the new level's
	// default wins.
	var percent float64
	switch {
	case draft.DamagePercent == nil:
		percent = valuation.DefaultDamagePercent(level)
	case prev != nil && level != prev.DamageLevel && *draft.DamagePercent == prev.DamagePercent:
		percent = valuation.DefaultDamagePercent(level)
	default:
		percent = valuation.ClampPercent(*draft.DamagePercent)
	}

	ageYears := draft.AgeYears
	if ageYears == nil && draft.PurchaseDate != "" {
		ageYears = valuation.AgeYears(draft.PurchaseDate, s.now())
	}

	item := model.InventoryItem{
		ID:                  id,
		CategoryID:          draft.CategoryID,
		SubCategory:         draft.SubCategory,
		Name:                strings.TrimSpace(draft.Name),
		Description:         draft.Description,
		Quantity:            draft.Quantity,
		Unit:                unit,
		DamageType:          damageType,
		DamageLevel:         level,
		DamageDetail:        draft.DamageDetail,
		IncidentDate:        draft.IncidentDate,
		PhotoRef:            draft.PhotoRef,
		Usability:           usability,
		RepairStatus:        repairStatus,
		RepairCostEstimate:  draft.RepairCostEstimate,
		OriginalPrice:       draft.OriginalPrice,
		PurchaseDate:        draft.PurchaseDate,
		AgeYears:            ageYears,
		ExpectedLifespan:    draft.ExpectedLifespan,
		CurrentValuePerUnit: draft.CurrentValuePerUnit,
		DamagePercent:       percent,
		TotalDamageValue:    valuation.TotalDamageValue(draft.CurrentValuePerUnit, percent, draft.Quantity),
		Note:                draft.Note,
	}

	if prev != nil && item.PhotoRef == "" {
		item.PhotoRef = prev.PhotoRef
	}
	return item
}
