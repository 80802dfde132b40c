package web

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/naphat/floodkit/internal/config"
	"github.com/naphat/floodkit/internal/db"
	"github.com/naphat/floodkit/internal/inventory"
	"github.com/naphat/floodkit/internal/model"
	"github.com/naphat/floodkit/internal/playbook"
	"github.com/naphat/floodkit/internal/storage"
)

func TestBaht(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{500, "500"},
		{1500, "1,500"},
		{1234567, "1,234,567"},
		{12500.5, "12,500.50"},
	}
	for _, c := range cases {
		if got := baht(c.in); got != c.want {
			t.Errorf("baht(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestReportPages(t *testing.T) {
	adapter := storage.New(db.NewTestDB(t), storage.Keys{
		Items:       "flood-inventory-items-v2",
		LegacyItems: "flood-inventory-items",
		Categories:  "flood-inventory-categories-v2",
		Progress:    "flood-playbook-progress",
	})

	ctx := context.Background()
	store := inventory.NewStore(adapter, config.DefaultCategories(), zap.NewNop())
	if err := store.Load(ctx); err != nil {
		t.Fatal(err)
	}
	tracker := playbook.NewTracker(adapter, zap.NewNop())
	if err := tracker.Load(ctx); err != nil {
		t.Fatal(err)
	}

	store.CreateItem(ctx, model.ItemDraft{
		CategoryID:          "electrical",
		Name:                "ตู้เย็น",
		Quantity:            1,
		DamageLevel:         model.DamageLevelSevere,
		CurrentValuePerUnit: 10000,
	})
	tracker.SetDone(ctx, "s1-1", true)

	router, err := NewRouter(store, tracker)
	if err != nil {
		t.Fatalf("NewRouter: %v", err)
	}
	server := httptest.NewServer(router)
	defer server.Close()

	checks := []struct {
		path     string
		contains []string
	}{
		{"/report", []string{"ตู้เย็น", "เครื่องใช้ไฟฟ้า", "8,000", "รุนแรง", "ผู้สำรวจ"}},
		{"/checklist", []string{"ความปลอดภัยก่อน", "ความคืบหน้ารวม"}},
	}
	for _, c := range checks {
		resp, err := http.Get(server.URL + c.path)
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", c.path, resp.StatusCode)
		}
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			t.Fatal(err)
		}
		for _, want := range c.contains {
			if !strings.Contains(string(body), want) {
				t.Errorf("%s: missing %q in rendered page", c.path, want)
			}
		}
	}
}
