package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/TungTran2095/medform/internal/plan/entity"
)

// SortField is a dashboard column the report can be ordered by.
type SortField string

const (
	SortUnitName   SortField = "unit_name"
	SortUnitLeader SortField = "unit_leader"
	SortCreatedAt  SortField = "created_at"
	SortRevenue    SortField = "revenue"
)

// SortDirection is asc, desc or empty (original fetch order, newest first).
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
	SortNone SortDirection = ""
)

// SortState is the current column/direction pair of the report table.
type SortState struct {
	Field     SortField     `json:"field"`
	Direction SortDirection `json:"direction"`
}

// NextSortState advances the three-state toggle: activating a new column sorts
// ascending; the same column cycles asc, desc, then back to unsorted.
func NextSortState(current SortState, clicked SortField) SortState {
	if current.Field != clicked || current.Direction == SortNone {
		return SortState{Field: clicked, Direction: SortAsc}
	}
	if current.Direction == SortAsc {
		return SortState{Field: clicked, Direction: SortDesc}
	}
	return SortState{}
}

// RevenueValue derives a number from free-form revenue text by stripping every
// rune except digits and "." and parsing the rest as a float. Empty or
// unparsable text yields 0. The rule is intentionally lossy: "1.500.000" with
// thousands-separator dots parses as 1.5.
func RevenueValue(revenue string) float64 {
	var b strings.Builder
	for _, r := range revenue {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	// Only the first decimal point counts; anything from a second dot on is
	// dropped, which is how "1.500.000" ends up as 1.5.
	if i := strings.Index(cleaned, "."); i >= 0 {
		if j := strings.Index(cleaned[i+1:], "."); j >= 0 {
			cleaned = cleaned[:i+1+j]
		}
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}

// Query selects and orders the report's working set. Unit is a unit name or
// "all"/empty for the full set.
type Query struct {
	Unit string
	Sort SortState
}

// Row is one dashboard table line.
type Row struct {
	ID           string  `json:"id"`
	UnitName     string  `json:"unit_name"`
	UnitLeader   string  `json:"unit_leader"`
	Revenue      string  `json:"revenue"`
	RevenueValue float64 `json:"revenue_value"`
	Commitment   bool    `json:"commitment"`
	CreatedAt    string  `json:"created_at"`
}

// Stats aggregates the filtered set.
type Stats struct {
	TotalUnits     int     `json:"total_units"`
	CommittedUnits int     `json:"committed_units"`
	CommittedPct   float64 `json:"committed_pct"`
	TotalRevenue   float64 `json:"total_revenue"`
}

// View is one dashboard load: filtered rows, aggregates and the filter options.
type View struct {
	Rows      []Row     `json:"rows"`
	Stats     Stats     `json:"stats"`
	UnitNames []string  `json:"unit_names"`
	Sort      SortState `json:"sort"`
}

// DashboardService derives the aggregate report from the submission set. Each
// load re-fetches; there is no state shared with the submission path.
type DashboardService struct {
	store  SubmissionStore
	ai     TextGenerator
	cache  SummaryCache
	logger *zap.Logger

	// Monotonic sequence per summary slot; late completions for a stale
	// token must not overwrite the cache.
	mu  sync.Mutex
	seq map[string]uint64
}

func NewDashboardService(store SubmissionStore, ai TextGenerator, cache SummaryCache, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cache == nil {
		cache = NewMemorySummaryCache()
	}
	return &DashboardService{
		store:  store,
		ai:     ai,
		cache:  cache,
		logger: logger,
		seq:    make(map[string]uint64),
	}
}

// Load fetches the full submission set and derives the filtered, sorted view.
func (s *DashboardService) Load(ctx context.Context, q Query) (*View, error) {
	subs, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load submissions: %w", err)
	}

	filtered := Filter(subs, q.Unit)
	sorted := Sort(filtered, q.Sort)

	rows := make([]Row, 0, len(sorted))
	for _, sub := range sorted {
		rows = append(rows, Row{
			ID:           sub.ID,
			UnitName:     sub.UnitName,
			UnitLeader:   sub.UnitLeader,
			Revenue:      sub.FinancialForecast.Revenue,
			RevenueValue: RevenueValue(sub.FinancialForecast.Revenue),
			Commitment:   sub.Commitment,
			CreatedAt:    sub.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	return &View{
		Rows:      rows,
		Stats:     Aggregate(filtered),
		UnitNames: unitNames(subs),
		Sort:      q.Sort,
	}, nil
}

// Filter restricts subs to one unit name, or returns the full set for
// "all"/empty.
func Filter(subs []entity.PlanSubmission, unit string) []entity.PlanSubmission {
	if unit == "" || unit == "all" {
		return subs
	}
	var out []entity.PlanSubmission
	for _, sub := range subs {
		if sub.UnitName == unit {
			out = append(out, sub)
		}
	}
	return out
}

// Sort orders subs by the given state. An unsorted state returns the input
// order unchanged. Name columns use Vietnamese collation.
func Sort(subs []entity.PlanSubmission, state SortState) []entity.PlanSubmission {
	if state.Direction == SortNone {
		return subs
	}
	out := make([]entity.PlanSubmission, len(subs))
	copy(out, subs)

	coll := collate.New(language.Vietnamese)
	less := func(a, b *entity.PlanSubmission) bool {
		switch state.Field {
		case SortUnitName:
			return coll.CompareString(a.UnitName, b.UnitName) < 0
		case SortUnitLeader:
			return coll.CompareString(a.UnitLeader, b.UnitLeader) < 0
		case SortCreatedAt:
			return a.CreatedAt.Before(b.CreatedAt)
		case SortRevenue:
			return RevenueValue(a.FinancialForecast.Revenue) < RevenueValue(b.FinancialForecast.Revenue)
		}
		return false
	}

	sort.SliceStable(out, func(i, j int) bool {
		if state.Direction == SortDesc {
			return less(&out[j], &out[i])
		}
		return less(&out[i], &out[j])
	})
	return out
}

// Aggregate computes the statistics cards over the filtered set.
func Aggregate(subs []entity.PlanSubmission) Stats {
	stats := Stats{TotalUnits: len(subs)}
	for _, sub := range subs {
		if sub.Commitment {
			stats.CommittedUnits++
		}
		stats.TotalRevenue += RevenueValue(sub.FinancialForecast.Revenue)
	}
	if stats.TotalUnits > 0 {
		stats.CommittedPct = float64(stats.CommittedUnits) / float64(stats.TotalUnits) * 100
	}
	return stats
}

func unitNames(subs []entity.PlanSubmission) []string {
	seen := make(map[string]bool, len(subs))
	var names []string
	for _, sub := range subs {
		if !seen[sub.UnitName] {
			seen[sub.UnitName] = true
			names = append(names, sub.UnitName)
		}
	}
	coll := collate.New(language.Vietnamese)
	coll.SortStrings(names)
	return names
}

// DetailSection is one grouped block of the single-submission detail view.
type DetailSection struct {
	Category entity.Category `json:"category"`
	Label    string          `json:"label"`
	Lines    []string        `json:"lines"`
}

// Detail projects one submission into its category-grouped rendering. Pure
// function of the submission; calling it twice yields identical sections.
func Detail(sub *entity.PlanSubmission) []DetailSection {
	sections := make([]DetailSection, 0, len(entity.Categories))
	for _, cat := range entity.Categories {
		text := formatFull([]entity.PlanSubmission{*sub}, cat)
		var lines []string
		for _, line := range strings.Split(text, "\n") {
			if trimmed := strings.TrimRight(line, " "); trimmed != "" {
				lines = append(lines, trimmed)
			}
		}
		sections = append(sections, DetailSection{
			Category: cat,
			Label:    cat.Label(),
			Lines:    lines,
		})
	}
	return sections
}
