package service

import (
	"context"
	"testing"
	"time"

	"github.com/TungTran2095/medform/internal/plan/entity"
)

// fakeStore serves a fixed submission set.
type fakeStore struct {
	subs    []entity.PlanSubmission
	created []*entity.PlanSubmission
	err     error
}

func (f *fakeStore) Create(ctx context.Context, sub *entity.PlanSubmission) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, sub)
	return nil
}

func (f *fakeStore) ListAll(ctx context.Context) ([]entity.PlanSubmission, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.subs, nil
}

func (f *fakeStore) FindByID(ctx context.Context, id string) (*entity.PlanSubmission, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.subs {
		if f.subs[i].ID == id {
			return &f.subs[i], nil
		}
	}
	return nil, nil
}

func sampleSubmissions() []entity.PlanSubmission {
	base := time.Date(2025, 11, 1, 9, 0, 0, 0, time.UTC)
	return []entity.PlanSubmission{
		{
			ID:         "s3",
			UnitName:   "Khoa Dược",
			UnitLeader: "Phạm Văn C",
			Commitment: true,
			FinancialForecast: entity.FinancialForecast{
				Revenue: "5,000,000 VND",
				Costs:   "3,000,000 VND",
				Profit:  "2,000,000 VND",
			},
			CreatedAt: base.Add(48 * time.Hour),
		},
		{
			ID:         "s2",
			UnitName:   "Khoa Xét nghiệm",
			UnitLeader: "Trần Thị B",
			Commitment: false,
			FinancialForecast: entity.FinancialForecast{
				Revenue: "không rõ",
			},
			CreatedAt: base.Add(24 * time.Hour),
		},
		{
			ID:         "s1",
			UnitName:   "Khoa Nội",
			UnitLeader: "Nguyễn Văn A",
			Commitment: true,
			Swot: entity.SwotItems{
				{Type: entity.SwotStrengths, Description: "Đội ngũ mạnh"},
				{Type: entity.SwotThreats, Description: "Cạnh tranh"},
			},
			FinancialForecast: entity.FinancialForecast{
				Revenue: "12,500,000 VND",
				Costs:   "9,000,000 VND",
				Profit:  "3,500,000 VND",
			},
			CreatedAt: base,
		},
	}
}

func TestRevenueValue(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"12,500,000 VND", 12500000},
		{"12500000", 12500000},
		{"", 0},
		{"không rõ", 0},
		{"abc", 0},
		{"1.500.000", 1.5},
		{"5.000.000", 5},
		{"2,5 tỷ", 25},
		{"...", 0},
	}
	for _, tt := range tests {
		if got := RevenueValue(tt.in); got != tt.want {
			t.Errorf("RevenueValue(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNextSortState(t *testing.T) {
	s := NextSortState(SortState{}, SortUnitName)
	if s.Field != SortUnitName || s.Direction != SortAsc {
		t.Fatalf("fresh column: got %+v", s)
	}

	s = NextSortState(s, SortUnitName)
	if s.Direction != SortDesc {
		t.Fatalf("second click: got %+v", s)
	}

	s = NextSortState(s, SortUnitName)
	if s.Field != "" || s.Direction != SortNone {
		t.Fatalf("third click must clear sorting: got %+v", s)
	}

	// Switching columns mid-cycle restarts at ascending.
	s = NextSortState(SortState{Field: SortUnitName, Direction: SortDesc}, SortRevenue)
	if s.Field != SortRevenue || s.Direction != SortAsc {
		t.Fatalf("column switch: got %+v", s)
	}
}

func TestFilter(t *testing.T) {
	subs := sampleSubmissions()

	if got := Filter(subs, ""); len(got) != 3 {
		t.Errorf("empty filter: got %d rows", len(got))
	}
	if got := Filter(subs, "all"); len(got) != 3 {
		t.Errorf("all filter: got %d rows", len(got))
	}

	got := Filter(subs, "Khoa Nội")
	if len(got) != 1 || got[0].ID != "s1" {
		t.Errorf("unit filter: got %+v", got)
	}

	if got := Filter(subs, "Khoa Không Tồn Tại"); len(got) != 0 {
		t.Errorf("unknown unit: got %d rows", len(got))
	}
}

func TestSortDirections(t *testing.T) {
	subs := sampleSubmissions()

	asc := Sort(subs, SortState{Field: SortRevenue, Direction: SortAsc})
	if asc[0].ID != "s2" || asc[2].ID != "s1" {
		t.Errorf("revenue asc: got %s,%s,%s", asc[0].ID, asc[1].ID, asc[2].ID)
	}

	desc := Sort(subs, SortState{Field: SortRevenue, Direction: SortDesc})
	if desc[0].ID != "s1" || desc[2].ID != "s2" {
		t.Errorf("revenue desc: got %s,%s,%s", desc[0].ID, desc[1].ID, desc[2].ID)
	}

	byDate := Sort(subs, SortState{Field: SortCreatedAt, Direction: SortAsc})
	if byDate[0].ID != "s1" || byDate[2].ID != "s3" {
		t.Errorf("created_at asc: got %s,%s,%s", byDate[0].ID, byDate[1].ID, byDate[2].ID)
	}

	// Unsorted state preserves the fetch order.
	none := Sort(subs, SortState{})
	for i := range subs {
		if none[i].ID != subs[i].ID {
			t.Fatalf("unsorted state reordered rows at %d", i)
		}
	}

	// Sorting must not mutate the input slice.
	if subs[0].ID != "s3" {
		t.Errorf("input slice mutated: first is %s", subs[0].ID)
	}
}

func TestSortVietnameseCollation(t *testing.T) {
	subs := []entity.PlanSubmission{
		{ID: "a", UnitName: "Khoa Điều dưỡng"},
		{ID: "b", UnitName: "Khoa Dược"},
	}
	// Đ collates after D in Vietnamese.
	got := Sort(subs, SortState{Field: SortUnitName, Direction: SortAsc})
	if got[0].ID != "b" {
		t.Errorf("collation order: got %s first", got[0].UnitName)
	}
}

func TestAggregate(t *testing.T) {
	stats := Aggregate(sampleSubmissions())
	if stats.TotalUnits != 3 {
		t.Errorf("TotalUnits = %d", stats.TotalUnits)
	}
	if stats.CommittedUnits != 2 {
		t.Errorf("CommittedUnits = %d", stats.CommittedUnits)
	}
	if want := float64(2) / 3 * 100; stats.CommittedPct != want {
		t.Errorf("CommittedPct = %v, want %v", stats.CommittedPct, want)
	}
	if stats.TotalRevenue != 17500000 {
		t.Errorf("TotalRevenue = %v", stats.TotalRevenue)
	}
}

func TestAggregateEmpty(t *testing.T) {
	stats := Aggregate(nil)
	if stats.TotalUnits != 0 || stats.CommittedPct != 0 || stats.TotalRevenue != 0 {
		t.Errorf("empty stats: %+v", stats)
	}
}

func TestLoad(t *testing.T) {
	store := &fakeStore{subs: sampleSubmissions()}
	svc := NewDashboardService(store, nil, nil, nil)

	view, err := svc.Load(context.Background(), Query{Unit: "all"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(view.Rows) != 3 {
		t.Fatalf("rows: %d", len(view.Rows))
	}
	if view.Rows[0].RevenueValue != 5000000 {
		t.Errorf("row revenue value: %v", view.Rows[0].RevenueValue)
	}
	if len(view.UnitNames) != 3 {
		t.Errorf("unit names: %v", view.UnitNames)
	}

	// Filtering narrows rows and stats but keeps the full option list.
	filtered, err := svc.Load(context.Background(), Query{Unit: "Khoa Nội"})
	if err != nil {
		t.Fatalf("Load filtered: %v", err)
	}
	if len(filtered.Rows) != 1 || filtered.Stats.TotalUnits != 1 {
		t.Errorf("filtered view: rows=%d stats=%+v", len(filtered.Rows), filtered.Stats)
	}
	if len(filtered.UnitNames) != 3 {
		t.Errorf("filter options must come from the full set: %v", filtered.UnitNames)
	}
}

func TestDetailIdempotent(t *testing.T) {
	sub := sampleSubmissions()[2]

	first := Detail(&sub)
	second := Detail(&sub)

	if len(first) != len(entity.Categories) {
		t.Fatalf("sections: %d", len(first))
	}
	for i := range first {
		if first[i].Category != second[i].Category || len(first[i].Lines) != len(second[i].Lines) {
			t.Fatalf("detail not stable at section %s", first[i].Category)
		}
		for j := range first[i].Lines {
			if first[i].Lines[j] != second[i].Lines[j] {
				t.Fatalf("detail line differs: %q vs %q", first[i].Lines[j], second[i].Lines[j])
			}
		}
	}
}
