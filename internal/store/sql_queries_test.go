package store

import (
	"testing"
	"time"

	"github.com/mkhalitov/shoplist/models"
)

func TestBuildUpdateItemQuery_AllFields(t *testing.T) {
	name := "Oat milk"
	quantity := models.StringQuantity("2 packs")
	purchased := true
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	query, args, err := buildUpdateItemQuery(models.ItemUpdate{
		ID:        "i-1",
		UserID:    "u-1",
		Name:      &name,
		Quantity:  &quantity,
		Purchased: &purchased,
	}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "UPDATE items SET updated_at = $1, name = $2, quantity = $3, purchased = $4 WHERE id = $5 AND user_id = $6"
	if query != want {
		t.Errorf("unexpected query:\n got:  %s\n want: %s", query, want)
	}

	if len(args) != 6 {
		t.Fatalf("expected 6 args, got %d", len(args))
	}
	if args[0] != any(now) {
		t.Errorf("expected updated_at arg first, got %v", args[0])
	}
	if args[1] != "Oat milk" {
		t.Errorf("expected name arg, got %v", args[1])
	}
	if args[4] != "i-1" || args[5] != "u-1" {
		t.Errorf("expected id and user_id last, got %v, %v", args[4], args[5])
	}
}

func TestBuildUpdateItemQuery_EmptyUpdateStillTouchesTimestamp(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	query, args, err := buildUpdateItemQuery(models.ItemUpdate{ID: "i-1", UserID: "u-1"}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "UPDATE items SET updated_at = $1 WHERE id = $2 AND user_id = $3"
	if query != want {
		t.Errorf("unexpected query:\n got:  %s\n want: %s", query, want)
	}
	if len(args) != 3 {
		t.Fatalf("expected 3 args, got %d", len(args))
	}
}

func TestBuildUpdateItemQuery_SingleField(t *testing.T) {
	purchased := false
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	query, _, err := buildUpdateItemQuery(models.ItemUpdate{
		ID:        "i-1",
		UserID:    "u-1",
		Purchased: &purchased,
	}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "UPDATE items SET updated_at = $1, purchased = $2 WHERE id = $3 AND user_id = $4"
	if query != want {
		t.Errorf("unexpected query:\n got:  %s\n want: %s", query, want)
	}
}
