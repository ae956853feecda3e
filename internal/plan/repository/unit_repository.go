package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/TungTran2095/medform/internal/plan/entity"
)

// UnitRepository reads the externally owned don_vi reference table. The table
// is never written by this service, and its column names vary between
// environments, so rows are read untyped and normalized through a declared
// alias set instead of retrying multiple query shapes.
type UnitRepository struct {
	db *gorm.DB
}

func NewUnitRepository(db *gorm.DB) *UnitRepository {
	return &UnitRepository{db: db}
}

// Column aliases accepted for each canonical field, lowercased.
var (
	unitCodeAliases   = []string{"don_vi", "donvi", "unit_code", "unit_name", "ten_don_vi"}
	leaderNameAliases = []string{"ho_va_ten", "hovaten", "leader_name", "truong_don_vi", "full_name"}
)

// List returns every directory entry sorted by unit code.
func (r *UnitRepository) List(ctx context.Context) ([]entity.UnitDirectoryEntry, error) {
	var rows []map[string]interface{}
	if err := r.db.WithContext(ctx).Table("don_vi").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("read don_vi: %w", err)
	}

	entries := make([]entity.UnitDirectoryEntry, 0, len(rows))
	for _, row := range rows {
		entry, ok := NormalizeUnitRow(row)
		if !ok {
			continue
		}
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].UnitCode < entries[j].UnitCode
	})
	return entries, nil
}

// NormalizeUnitRow maps one untyped don_vi row to the canonical entry shape.
// Keys are matched case-insensitively against the alias sets; a row without a
// recognizable unit code is skipped.
func NormalizeUnitRow(row map[string]interface{}) (entity.UnitDirectoryEntry, bool) {
	lowered := make(map[string]string, len(row))
	for k, v := range row {
		if s := stringValue(v); s != "" {
			lowered[strings.ToLower(k)] = s
		}
	}

	entry := entity.UnitDirectoryEntry{}
	for _, alias := range unitCodeAliases {
		if s, ok := lowered[alias]; ok {
			entry.UnitCode = s
			break
		}
	}
	for _, alias := range leaderNameAliases {
		if s, ok := lowered[alias]; ok {
			entry.LeaderName = s
			break
		}
	}
	if entry.UnitCode == "" {
		return entity.UnitDirectoryEntry{}, false
	}
	return entry, true
}

func stringValue(v interface{}) string {
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case []byte:
		return strings.TrimSpace(string(s))
	default:
		return ""
	}
}
