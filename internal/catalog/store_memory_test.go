package catalog

import (
	"context"
	"testing"
)

func ptr[T any](v T) *T { return &v }

func TestMemStore_ListReturnsSeedSet(t *testing.T) {
	s := NewMemStore()

	got, err := s.List(context.Background(), Filter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 8 {
		t.Fatalf("seed count=%d want 8", len(got))
	}
	if got[0].ID != "1" || got[7].ID != "8" {
		t.Fatalf("insertion order broken: first=%s last=%s", got[0].ID, got[7].ID)
	}
}

func TestMemStore_ListFilters(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	tests := []struct {
		name    string
		filter  Filter
		wantIDs []string
	}{
		{
			name:    "category exact match",
			filter:  Filter{Category: "Diagnostic Equipment"},
			wantIDs: []string{"1", "5"},
		},
		{
			name:    "unknown category matches nothing",
			filter:  Filter{Category: "Imaginary"},
			wantIDs: []string{},
		},
		{
			name:    "price bounds are inclusive",
			filter:  Filter{MinPrice: ptr(1800.0), MaxPrice: ptr(2500.0)},
			wantIDs: []string{"1", "2"},
		},
		{
			name:    "min only",
			filter:  Filter{MinPrice: ptr(35000.0)},
			wantIDs: []string{"3", "5", "7"},
		},
		{
			name:    "category and price combine conjunctively",
			filter:  Filter{Category: "Diagnostic Equipment", MinPrice: ptr(2000.0), MaxPrice: ptr(3000.0)},
			wantIDs: []string{"1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.List(ctx, tt.filter)
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %d products, want %d: %+v", len(got), len(tt.wantIDs), got)
			}
			for i, p := range got {
				if p.ID != tt.wantIDs[i] {
					t.Fatalf("product[%d].ID=%s want %s", i, p.ID, tt.wantIDs[i])
				}
				if !tt.filter.Matches(p) {
					t.Fatalf("product %s does not satisfy filter %+v", p.ID, tt.filter)
				}
			}
		})
	}
}

func TestMemStore_GetAbsentIsNotAnError(t *testing.T) {
	s := NewMemStore()

	_, ok, err := s.Get(context.Background(), "no-such-id")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatalf("expected not found")
	}
}

func TestMemStore_AddDefaultsInStock(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	p, err := s.Add(ctx, InsertProduct{
		Name:        "Pulse Oximeter",
		Description: "Fingertip pulse oximeter",
		Category:    "Diagnostic Equipment",
		Price:       350,
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if p.ID == "" {
		t.Fatalf("empty generated id")
	}
	if !p.InStock {
		t.Fatalf("inStock should default to true")
	}

	got, ok, err := s.Get(ctx, p.ID)
	if err != nil || !ok {
		t.Fatalf("get after add: ok=%v err=%v", ok, err)
	}
	if got.Name != "Pulse Oximeter" {
		t.Fatalf("name=%q", got.Name)
	}

	all, err := s.List(ctx, Filter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 9 || all[8].ID != p.ID {
		t.Fatalf("added product should be last in listing order")
	}
}

func TestMemStore_AddExplicitOutOfStock(t *testing.T) {
	s := NewMemStore()

	p, err := s.Add(context.Background(), InsertProduct{
		Name:        "Discontinued Probe",
		Description: "No longer manufactured",
		Category:    "Laboratory Equipment",
		Price:       90,
		InStock:     ptr(false),
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if p.InStock {
		t.Fatalf("explicit inStock=false was overridden")
	}
}

func TestMemStore_UpdateMergesOnlySetFields(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	p, ok, err := s.Update(ctx, "2", ProductPatch{Price: ptr(1950.0), InStock: ptr(false)})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !ok {
		t.Fatalf("product 2 should exist")
	}
	if p.Price != 1950 || p.InStock {
		t.Fatalf("patched fields not applied: %+v", p)
	}
	if p.Name != "Surgical Forceps Set" || p.Category != "Surgical Instruments" {
		t.Fatalf("unpatched fields changed: %+v", p)
	}

	_, ok, err = s.Update(ctx, "absent", ProductPatch{Price: ptr(1.0)})
	if err != nil {
		t.Fatalf("update absent: %v", err)
	}
	if ok {
		t.Fatalf("update of absent id should report not found")
	}
}
