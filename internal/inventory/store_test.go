package inventory

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/naphat/floodkit/internal/config"
	"github.com/naphat/floodkit/internal/db"
	"github.com/naphat/floodkit/internal/model"
	"github.com/naphat/floodkit/internal/storage"
)

func testKeys() storage.Keys {
	return storage.Keys{
		Items:       "flood-inventory-items-v2",
		LegacyItems: "flood-inventory-items",
		Categories:  "flood-inventory-categories-v2",
		Progress:    "flood-playbook-progress",
	}
}

// newTestStore returns a loaded store plus its adapter for reuse in
// persistence assertions.
func newTestStore(t *testing.T) (*Store, *storage.Adapter) {
	t.Helper()
	adapter := storage.New(db.NewTestDB(t), testKeys())
	store := NewStore(adapter, config.DefaultCategories(), zap.NewNop())
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return store, adapter
}

func fridgeDraft() model.ItemDraft {
	return model.ItemDraft{
		CategoryID:          "electrical",
		Name:                "ตู้เย็น",
		Quantity:            1,
		DamageLevel:         model.DamageLevelSevere,
		CurrentValuePerUnit: 10000,
	}
}

func TestCreateAppliesLevelDefaultAndComputesTotal(t *testing.T) {
	store, _ := newTestStore(t)

	item, err := store.CreateItem(context.Background(), fridgeDraft())
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	if item.ID == "" {
		t.Error("expected generated id")
	}
	if item.DamagePercent != 80 {
		t.Errorf("expected severe default 80, got %v", item.DamagePercent)
	}
	if item.TotalDamageValue != 8000 {
		t.Errorf("expected 8000, got %v", item.TotalDamageValue)
	}
	// Blank fields get the entry-form defaults.
	if item.Unit != "ชิ้น" || item.DamageType != "น้ำท่วม" {
		t.Errorf("expected defaults, got unit=%q type=%q", item.Unit, item.DamageType)
	}
	if item.RepairStatus != model.RepairStatusPending || item.Usability != model.UsabilityPartial {
		t.Errorf("expected pending/partial, got %s/%s", item.RepairStatus, item.Usability)
	}
}

func TestCreateRejectsInvalidDraft(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	cases := []model.ItemDraft{
		{Name: "", Quantity: 1},
		{Name: "   ", Quantity: 1},
		{Name: "พัดลม", Quantity: 0},
		{Name: "พัดลม", Quantity: -3},
		{Name: "พัดลม", Quantity: 1, DamageLevel: "melted"},
	}
	for _, draft := range cases {
		_, err := store.CreateItem(ctx, draft)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("draft %+v: expected ValidationError, got %v", draft, err)
		}
	}

	// A rejected create must not mutate the store.
	if n := len(store.Items()); n != 0 {
		t.Errorf("expected empty store after rejected creates, got %d items", n)
	}
}

func TestDamagePercentOverride(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	override := 35.0
	draft := fridgeDraft()
	draft.DamagePercent = &override

	item, err := store.CreateItem(ctx, draft)
	if err != nil {
		t.Fatal(err)
	}
	if item.DamagePercent != 35 {
		t.Errorf("expected override 35, got %v", item.DamagePercent)
	}
	if item.TotalDamageValue != 3500 {
		t.Errorf("expected 3500, got %v", item.TotalDamageValue)
	}

	// Out-of-range overrides clamp.
	over := 250.0
	draft.DamagePercent = &over
	item, err = store.CreateItem(ctx, draft)
	if err != nil {
		t.Fatal(err)
	}
	if item.DamagePercent != 100 {
		t.Errorf("expected clamp to 100, got %v", item.DamagePercent)
	}
}

func TestUpdateRecomputesTotalAndPersists(t *testing.T) {
	store, adapter := newTestStore(t)
	ctx := context.Background()

	item, _ := store.CreateItem(ctx, fridgeDraft())

	draft := fridgeDraft()
	draft.Quantity = 2
	draft.DamagePercent = &item.DamagePercent

	updated, err := store.UpdateItem(ctx, item.ID, draft)
	if err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	if updated.TotalDamageValue != 16000 {
		t.Errorf("expected 16000, got %v", updated.TotalDamageValue)
	}

	// The write went through to storage.
	persisted, err := adapter.LoadItems(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(persisted) != 1 || persisted[0].TotalDamageValue != 16000 {
		t.Errorf("persisted state stale: %+v", persisted)
	}
}

func TestUpdateUnknownIDFails(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.UpdateItem(context.Background(), "ghost", fridgeDraft())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDamageLevelChangeResetsDefaultUnlessOverridden(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	item, _ := store.CreateItem(ctx, fridgeDraft()) // severe, 80

	// Level changes, percent repeats the old record: reset to new default.
	draft := fridgeDraft()
	draft.DamageLevel = model.DamageLevelTotal
	draft.DamagePercent = &item.DamagePercent
	updated, err := store.UpdateItem(ctx, item.ID, draft)
	if err != nil {
		t.Fatal(err)
	}
	if updated.DamagePercent != 100 {
		t.Errorf("expected reset to 100, got %v", updated.DamagePercent)
	}

	// Level changes and the user overrides at the same time: override wins.
	override := 60.0
	draft.DamageLevel = model.DamageLevelMinor
	draft.DamagePercent = &override
	updated, err = store.UpdateItem(ctx, item.ID, draft)
	if err != nil {
		t.Fatal(err)
	}
	if updated.DamagePercent != 60 {
		t.Errorf("expected override 60, got %v", updated.DamagePercent)
	}

	// Same level, percent kept: no reset.
	draft.DamagePercent = &updated.DamagePercent
	updated, err = store.UpdateItem(ctx, item.ID, draft)
	if err != nil {
		t.Fatal(err)
	}
	if updated.DamagePercent != 60 {
		t.Errorf("expected 60 preserved, got %v", updated.DamagePercent)
	}
}

func TestDeleteUnknownIDIsNoOp(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	store.CreateItem(ctx, fridgeDraft())

	if err := store.DeleteItem(ctx, "ghost"); err != nil {
		t.Fatalf("expected no-op, got %v", err)
	}
	if n := len(store.Items()); n != 1 {
		t.Errorf("expected 1 item, got %d", n)
	}
}

func TestFilterConjunctive(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	tv := fridgeDraft()
	tv.Name = "ทีวี Samsung"
	tv.Description = "จอ 55 นิ้ว"
	store.CreateItem(ctx, tv)

	sofa := fridgeDraft()
	sofa.CategoryID = "furniture"
	sofa.Name = "โซฟา"
	sofa.RepairStatus = model.RepairStatusRepairable
	store.CreateItem(ctx, sofa)

	fridge := fridgeDraft()
	fridge.Description = "Samsung Inverter"
	store.CreateItem(ctx, fridge)

	// All sentinels match everything in insertion order.
	all := store.Filter(FilterOptions{Search: "", CategoryID: "all", RepairStatus: "all"})
	if len(all) != 3 {
		t.Fatalf("expected 3, got %d", len(all))
	}
	if all[0].Name != "ทีวี Samsung" || all[2].Name != "ตู้เย็น" {
		t.Error("insertion order not preserved")
	}

	// Search matches name or description, case-insensitively.
	matched := store.Filter(FilterOptions{Search: "samsung"})
	if len(matched) != 2 {
		t.Errorf("expected 2 samsung matches, got %d", len(matched))
	}

	// Predicates are conjunctive.
	matched = store.Filter(FilterOptions{Search: "samsung", CategoryID: "electrical", RepairStatus: model.RepairStatusPending})
	if len(matched) != 2 {
		t.Errorf("expected 2, got %d", len(matched))
	}
	matched = store.Filter(FilterOptions{CategoryID: "furniture", RepairStatus: model.RepairStatusPending})
	if len(matched) != 0 {
		t.Errorf("expected 0, got %d", len(matched))
	}
}

func TestSummaryByCategory(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	a := fridgeDraft() // electrical, 10000 * 80% * 1 = 8000
	store.CreateItem(ctx, a)

	full := 100.0
	b := model.ItemDraft{
		CategoryID: "electrical", Name: "ทีวี", Quantity: 2,
		DamageLevel: model.DamageLevelTotal, DamagePercent: &full,
		CurrentValuePerUnit: 5000,
	}
	store.CreateItem(ctx, b) // 10000

	summaries := store.SummaryByCategory()
	if len(summaries) != 1 {
		t.Fatalf("expected 1 category with items, got %d", len(summaries))
	}
	sum := summaries[0]
	if sum.CategoryID != "electrical" || sum.Name != "เครื่องใช้ไฟฟ้า" {
		t.Errorf("unexpected category: %+v", sum)
	}
	if sum.ItemCount != 2 || sum.TotalQuantity != 3 || sum.TotalDamageValue != 18000 {
		t.Errorf("unexpected aggregates: %+v", sum)
	}
}

func TestSummaryDropsEmptiedCategory(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	item, _ := store.CreateItem(ctx, fridgeDraft())
	if len(store.SummaryByCategory()) != 1 {
		t.Fatal("expected category in summary")
	}

	store.DeleteItem(ctx, item.ID)
	if len(store.SummaryByCategory()) != 0 {
		t.Error("expected no categories after deleting the sole item")
	}
}

func TestSummaryKeepsDanglingCategoryWithRawLabel(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	cat, _ := store.AddCategory(ctx, "ของสะสม")
	draft := fridgeDraft()
	draft.CategoryID = cat.ID
	store.CreateItem(ctx, draft)
	store.RemoveCategory(ctx, cat.ID)

	summaries := store.SummaryByCategory()
	if len(summaries) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(summaries))
	}
	if summaries[0].Name != cat.ID {
		t.Errorf("expected raw id fallback label, got %q", summaries[0].Name)
	}
}

func TestGrandTotalScenario(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	full, half := 100.0, 50.0
	store.CreateItem(ctx, model.ItemDraft{
		Name: "ตู้เสื้อผ้า", Quantity: 2, CurrentValuePerUnit: 5000, DamagePercent: &full,
	})
	store.CreateItem(ctx, model.ItemDraft{
		Name: "โต๊ะ", Quantity: 1, CurrentValuePerUnit: 3000, DamagePercent: &half,
	})

	totals := store.GrandTotal()
	if totals.TotalDamageValue != 11500 {
		t.Errorf("expected 11500, got %v", totals.TotalDamageValue)
	}
	if totals.TotalQuantity != 3 || totals.ItemCount != 2 {
		t.Errorf("unexpected totals: %+v", totals)
	}
}

func TestWriteThroughVisibleToFreshStore(t *testing.T) {
	store, adapter := newTestStore(t)
	ctx := context.Background()

	created, _ := store.CreateItem(ctx, fridgeDraft())

	second := NewStore(adapter, config.DefaultCategories(), zap.NewNop())
	if err := second.Load(ctx); err != nil {
		t.Fatal(err)
	}
	items := second.Items()
	if len(items) != 1 || items[0].ID != created.ID {
		t.Errorf("expected persisted item visible to a fresh store, got %+v", items)
	}
}

func TestMutationsRejectedBeforeLoad(t *testing.T) {
	adapter := storage.New(db.NewTestDB(t), testKeys())
	store := NewStore(adapter, config.DefaultCategories(), zap.NewNop())

	_, err := store.CreateItem(context.Background(), fridgeDraft())
	if !errors.Is(err, ErrNotReady) {
		t.Errorf("expected ErrNotReady, got %v", err)
	}
	if err := store.DeleteItem(context.Background(), "x"); !errors.Is(err, ErrNotReady) {
		t.Errorf("expected ErrNotReady, got %v", err)
	}
}

func TestLoadRecoversFromCorruptStorage(t *testing.T) {
	database := db.NewTestDB(t)
	adapter := storage.New(database, testKeys())
	database.Exec(`INSERT INTO kv (key, value) VALUES (?, ?)`, testKeys().Items, `{broken`)

	store := NewStore(adapter, config.DefaultCategories(), zap.NewNop())
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("expected corruption to be recovered, got %v", err)
	}
	if n := len(store.Items()); n != 0 {
		t.Errorf("expected empty inventory, got %d", n)
	}
	// The store must still be usable.
	if _, err := store.CreateItem(context.Background(), fridgeDraft()); err != nil {
		t.Errorf("store unusable after recovery: %v", err)
	}
}

func TestAttachPhotoSetsPhotoRef(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	item, _ := store.CreateItem(ctx, fridgeDraft())
	if err := store.AttachPhoto(ctx, item.ID, []byte("jpeg"), "image/jpeg"); err != nil {
		t.Fatalf("AttachPhoto: %v", err)
	}

	got, _ := store.Item(item.ID)
	if got.PhotoRef != "/api/items/"+item.ID+"/photo" {
		t.Errorf("unexpected photoRef %q", got.PhotoRef)
	}

	data, mime, err := store.Photo(ctx, item.ID)
	if err != nil || string(data) != "jpeg" || mime != "image/jpeg" {
		t.Errorf("photo round trip: %q %q %v", data, mime, err)
	}

	if err := store.AttachPhoto(ctx, "ghost", []byte("x"), "image/jpeg"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
