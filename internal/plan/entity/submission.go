package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// SWOT item types.
const (
	SwotStrengths     = "strengths"
	SwotWeaknesses    = "weaknesses"
	SwotOpportunities = "opportunities"
	SwotThreats       = "threats"
)

// BSC perspectives.
const (
	BSCFinancial = "financial"
	BSCCustomer  = "customer"
	BSCInternal  = "internal"
	BSCLearning  = "learning"
)

// SwotTypes lists the four SWOT categories in display order.
var SwotTypes = []string{SwotStrengths, SwotWeaknesses, SwotOpportunities, SwotThreats}

// BSCPerspectives lists the four scorecard perspectives in display order.
var BSCPerspectives = []string{BSCFinancial, BSCCustomer, BSCInternal, BSCLearning}

// SwotItem 1 dòng phân tích SWOT
type SwotItem struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// BSCItem 1 mục tiêu theo thẻ điểm cân bằng
type BSCItem struct {
	Perspective string `json:"perspective"`
	Objective   string `json:"objective"`
	KPI         string `json:"kpi"`
}

// ActionPlanItem 1 dòng kế hoạch hành động
type ActionPlanItem struct {
	Plan   string `json:"plan"`
	Lead   string `json:"lead"`
	Time   string `json:"time"`
	Budget string `json:"budget"`
	KPI    string `json:"kpi"`
}

// ContentItem 1 dòng nội dung tự do (tên + chi tiết)
type ContentItem struct {
	Name   string `json:"name"`
	Detail string `json:"detail"`
}

// Attachment metadata for one uploaded forecast file.
type Attachment struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
	Type string `json:"type,omitempty"`
	URL  string `json:"url,omitempty"`
}

// FinancialForecast free-form currency text plus optional attachments.
// Values are deliberately not parsed to numbers at write time.
type FinancialForecast struct {
	Revenue     string       `json:"revenue"`
	Costs       string       `json:"costs"`
	Profit      string       `json:"profit"`
	Investment  string       `json:"investment,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

type SwotItems []SwotItem
type BSCItems []BSCItem
type ActionPlanItems []ActionPlanItem
type ContentItems []ContentItem

func jsonbValue(v interface{}) (driver.Value, error) {
	return json.Marshal(v)
}

func jsonbScan(dst interface{}, value interface{}) error {
	if value == nil {
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		if s, ok := value.(string); ok {
			bytes = []byte(s)
		} else {
			return fmt.Errorf("unsupported jsonb source type %T", value)
		}
	}
	return json.Unmarshal(bytes, dst)
}

func (v SwotItems) Value() (driver.Value, error)  { return jsonbValue(v) }
func (v *SwotItems) Scan(value interface{}) error { return jsonbScan(v, value) }

func (v BSCItems) Value() (driver.Value, error)  { return jsonbValue(v) }
func (v *BSCItems) Scan(value interface{}) error { return jsonbScan(v, value) }

func (v ActionPlanItems) Value() (driver.Value, error)  { return jsonbValue(v) }
func (v *ActionPlanItems) Scan(value interface{}) error { return jsonbScan(v, value) }

func (v ContentItems) Value() (driver.Value, error)  { return jsonbValue(v) }
func (v *ContentItems) Scan(value interface{}) error { return jsonbScan(v, value) }

func (v FinancialForecast) Value() (driver.Value, error)  { return jsonbValue(v) }
func (v *FinancialForecast) Scan(value interface{}) error { return jsonbScan(v, value) }

// PlanSubmission kế hoạch năm của 1 đơn vị. Append-only: created once,
// never updated or deleted by this service.
type PlanSubmission struct {
	ID         string `json:"id" gorm:"primaryKey;size:36"`
	UnitName   string `json:"unit_name" gorm:"size:256;not null"`
	UnitLeader string `json:"unit_leader" gorm:"size:256;not null"`

	Swot        SwotItems       `json:"swot" gorm:"type:jsonb;not null;default:'[]'"`
	BSC         BSCItems        `json:"bsc" gorm:"type:jsonb;not null;default:'[]'"`
	ActionPlans ActionPlanItems `json:"action_plans" gorm:"type:jsonb;not null;default:'[]'"`

	FinancialForecast FinancialForecast `json:"financial_forecast" gorm:"type:jsonb;not null;default:'{}'"`

	ProfessionalOrientation ContentItems `json:"professional_orientation" gorm:"type:jsonb;not null;default:'[]'"`
	StrategicProducts       ContentItems `json:"strategic_products" gorm:"type:jsonb;not null;default:'[]'"`
	NewServices2026         ContentItems `json:"new_services_2026" gorm:"type:jsonb;not null;default:'[]'"`
	Recruitment             ContentItems `json:"recruitment" gorm:"type:jsonb;not null;default:'[]'"`
	Conferences             ContentItems `json:"conferences" gorm:"type:jsonb;not null;default:'[]'"`
	CommunityPrograms       ContentItems `json:"community_programs" gorm:"type:jsonb;not null;default:'[]'"`
	RevenueRecommendations  ContentItems `json:"revenue_recommendations" gorm:"type:jsonb;not null;default:'[]'"`

	Commitment bool      `json:"commitment" gorm:"not null;default:false"`
	CreatedAt  time.Time `json:"created_at"`
}

func (PlanSubmission) TableName() string {
	return "plan_submissions"
}

// SwotByType returns the descriptions of the given SWOT type, in entry order.
func (s *PlanSubmission) SwotByType(typ string) []string {
	var out []string
	for _, item := range s.Swot {
		if item.Type == typ {
			out = append(out, item.Description)
		}
	}
	return out
}

// BSCByPerspective returns the scorecard entries of one perspective, in entry order.
func (s *PlanSubmission) BSCByPerspective(perspective string) []BSCItem {
	var out []BSCItem
	for _, item := range s.BSC {
		if item.Perspective == perspective {
			out = append(out, item)
		}
	}
	return out
}

// ContentByCategory returns the free-form list backing one content category,
// or nil for the structured categories.
func (s *PlanSubmission) ContentByCategory(cat Category) ContentItems {
	switch cat {
	case CategoryProfessionalOrientation:
		return s.ProfessionalOrientation
	case CategoryStrategicProducts:
		return s.StrategicProducts
	case CategoryNewServices2026:
		return s.NewServices2026
	case CategoryRecruitment:
		return s.Recruitment
	case CategoryConferences:
		return s.Conferences
	case CategoryCommunityPrograms:
		return s.CommunityPrograms
	case CategoryRevenueRecommendations:
		return s.RevenueRecommendations
	}
	return nil
}
