package entity

import (
	"testing"
)

func TestSwotByType(t *testing.T) {
	sub := &PlanSubmission{Swot: SwotItems{
		{Type: SwotStrengths, Description: "Đội ngũ mạnh"},
		{Type: SwotThreats, Description: "Cạnh tranh"},
		{Type: SwotStrengths, Description: "Thương hiệu tốt"},
	}}

	got := sub.SwotByType(SwotStrengths)
	if len(got) != 2 || got[0] != "Đội ngũ mạnh" || got[1] != "Thương hiệu tốt" {
		t.Errorf("SwotByType(strengths) = %v", got)
	}
	if got := sub.SwotByType(SwotWeaknesses); len(got) != 0 {
		t.Errorf("SwotByType(weaknesses) = %v", got)
	}
}

func TestBSCByPerspective(t *testing.T) {
	sub := &PlanSubmission{BSC: BSCItems{
		{Perspective: BSCFinancial, Objective: "Tăng doanh thu", KPI: "Doanh thu quý"},
		{Perspective: BSCCustomer, Objective: "Hài lòng bệnh nhân", KPI: "Điểm khảo sát"},
	}}

	got := sub.BSCByPerspective(BSCFinancial)
	if len(got) != 1 || got[0].Objective != "Tăng doanh thu" {
		t.Errorf("BSCByPerspective(financial) = %v", got)
	}
}

func TestContentByCategory(t *testing.T) {
	sub := &PlanSubmission{
		Recruitment: ContentItems{{Name: "Bác sĩ CK1", Detail: "2 vị trí"}},
	}

	if got := sub.ContentByCategory(CategoryRecruitment); len(got) != 1 {
		t.Errorf("ContentByCategory(recruitment) = %v", got)
	}
	if got := sub.ContentByCategory(CategoryConferences); len(got) != 0 {
		t.Errorf("ContentByCategory(conferences) = %v", got)
	}
	// Structured categories have no free-form item list.
	if got := sub.ContentByCategory(CategorySwot); got != nil {
		t.Errorf("ContentByCategory(swot) = %v", got)
	}
}

func TestParseCategory(t *testing.T) {
	for _, cat := range Categories {
		got, ok := ParseCategory(string(cat))
		if !ok || got != cat {
			t.Errorf("ParseCategory(%q) = %v, %v", cat, got, ok)
		}
		if cat.Label() == "" {
			t.Errorf("missing label for %q", cat)
		}
	}
	if _, ok := ParseCategory("SWOT"); ok {
		t.Errorf("category identifiers are case sensitive")
	}
	if _, ok := ParseCategory("typo"); ok {
		t.Errorf("unknown category must not parse")
	}
}

func TestJSONBRoundTrip(t *testing.T) {
	items := SwotItems{{Type: SwotStrengths, Description: "Đội ngũ mạnh"}}

	raw, err := items.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}

	var decoded SwotItems
	if err := decoded.Scan(raw); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(decoded) != 1 || decoded[0].Description != "Đội ngũ mạnh" {
		t.Errorf("roundtrip = %v", decoded)
	}

	// NULL column scans to an empty list.
	var fromNull SwotItems
	if err := fromNull.Scan(nil); err != nil {
		t.Fatalf("Scan(nil): %v", err)
	}
	if len(fromNull) != 0 {
		t.Errorf("Scan(nil) = %v", fromNull)
	}
}
