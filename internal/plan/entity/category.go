package entity

// Category identifies one dashboard content section. Summary caches are keyed
// by these identifiers, never by display labels.
type Category string

const (
	CategorySwot                    Category = "swot"
	CategoryBSC                     Category = "bsc"
	CategoryActionPlans             Category = "actionPlans"
	CategoryFinancialForecast       Category = "financialForecast"
	CategoryProfessionalOrientation Category = "professionalOrientation"
	CategoryStrategicProducts       Category = "strategicProducts"
	CategoryNewServices2026         Category = "newServices2026"
	CategoryRecruitment             Category = "recruitment"
	CategoryConferences             Category = "conferences"
	CategoryCommunityPrograms       Category = "communityPrograms"
	CategoryRevenueRecommendations  Category = "revenueRecommendations"
)

// Categories lists every content category in dashboard display order.
var Categories = []Category{
	CategorySwot,
	CategoryBSC,
	CategoryActionPlans,
	CategoryFinancialForecast,
	CategoryProfessionalOrientation,
	CategoryStrategicProducts,
	CategoryNewServices2026,
	CategoryRecruitment,
	CategoryConferences,
	CategoryCommunityPrograms,
	CategoryRevenueRecommendations,
}

var categoryLabels = map[Category]string{
	CategorySwot:                    "Phân tích SWOT",
	CategoryBSC:                     "Mục tiêu BSC",
	CategoryActionPlans:             "Kế hoạch hành động",
	CategoryFinancialForecast:       "Dự báo tài chính",
	CategoryProfessionalOrientation: "Định hướng chuyên môn",
	CategoryStrategicProducts:       "Sản phẩm chiến lược",
	CategoryNewServices2026:         "Dịch vụ mới 2026",
	CategoryRecruitment:             "Tuyển dụng",
	CategoryConferences:             "Hội nghị hội thảo",
	CategoryCommunityPrograms:       "Chương trình cộng đồng",
	CategoryRevenueRecommendations:  "Kiến nghị và đề xuất",
}

// Label returns the Vietnamese display label shown on dashboard cards and
// passed to the summarizer as the content type.
func (c Category) Label() string {
	return categoryLabels[c]
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// ParseCategory maps a request path/query value to a Category.
func ParseCategory(s string) (Category, bool) {
	c := Category(s)
	return c, c.Valid()
}
