package entity

// UnitDirectoryEntry maps a unit to its leader. The backing don_vi table is
// externally owned and read-only here; column names vary between environments,
// so rows are normalized in the repository instead of being mapped by gorm tags.
type UnitDirectoryEntry struct {
	UnitCode   string `json:"unit_code"`
	LeaderName string `json:"leader_name"`
}
