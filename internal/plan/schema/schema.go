// Package schema defines the shape of one plan submission and checks its
// invariants. Validation is pure: no I/O, all-or-nothing.
package schema

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/TungTran2095/medform/internal/plan/entity"
)

// MaxAttachments caps the forecast attachment list.
const MaxAttachments = 3

// SubmissionInput is the wire shape of one plan submission as the form posts it.
type SubmissionInput struct {
	UnitName   string `json:"unitName" validate:"required"`
	UnitLeader string `json:"unitLeader" validate:"required"`

	SwotItems []SwotItemInput `json:"swotItems" validate:"min=4,dive"`
	BscItems  []BscItemInput  `json:"bscItems" validate:"min=4,dive"`

	ActionPlans []ActionPlanInput `json:"actionPlans" validate:"dive"`

	Revenue     string            `json:"revenue" validate:"required"`
	Costs       string            `json:"costs" validate:"required"`
	Profit      string            `json:"profit" validate:"required"`
	Investment  string            `json:"investment"`
	Attachments []AttachmentInput `json:"attachments" validate:"max=3,dive"`

	ProfessionalOrientation []ContentItemInput `json:"professionalOrientation" validate:"dive"`
	StrategicProducts       []ContentItemInput `json:"strategicProducts" validate:"dive"`
	NewServices2026         []ContentItemInput `json:"newServices2026" validate:"dive"`
	Recruitment             []ContentItemInput `json:"recruitment" validate:"dive"`
	Conferences             []ContentItemInput `json:"conferences" validate:"dive"`
	CommunityPrograms       []ContentItemInput `json:"communityPrograms" validate:"dive"`
	RevenueRecommendations  []ContentItemInput `json:"revenueRecommendations" validate:"dive"`

	Commitment bool `json:"commitment" validate:"eq=true"`
}

type SwotItemInput struct {
	Type        string `json:"type" validate:"required,oneof=strengths weaknesses opportunities threats"`
	Description string `json:"description" validate:"required"`
}

type BscItemInput struct {
	Perspective string `json:"perspective" validate:"required,oneof=financial customer internal learning"`
	Objective   string `json:"objective" validate:"required"`
	KPI         string `json:"kpi" validate:"required"`
}

type ActionPlanInput struct {
	Plan   string `json:"plan" validate:"required"`
	Lead   string `json:"lead" validate:"required"`
	Time   string `json:"time" validate:"required"`
	Budget string `json:"budget" validate:"required"`
	KPI    string `json:"kpi" validate:"required"`
}

type ContentItemInput struct {
	Name   string `json:"name" validate:"required"`
	Detail string `json:"detail" validate:"required"`
}

type AttachmentInput struct {
	Name string `json:"name" validate:"required"`
	Size int64  `json:"size"`
	Type string `json:"type,omitempty"`
	URL  string `json:"url,omitempty"`
}

// FieldError is one validation failure, addressed by its JSON field path.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report field paths by json tag so errors address the wire shape.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Messages mirror the original Vietnamese form texts, keyed by leaf field.
var requiredMessages = map[string]string{
	"unitName":    "Vui lòng nhập tên đơn vị.",
	"unitLeader":  "Vui lòng nhập tên trưởng đơn vị.",
	"type":        "Vui lòng chọn loại SWOT.",
	"description": "Vui lòng nhập mô tả.",
	"perspective": "Vui lòng chọn góc nhìn BSC.",
	"objective":   "Vui lòng nhập mục tiêu.",
	"kpi":         "Vui lòng nhập KPI.",
	"plan":        "Vui lòng nhập việc cần làm.",
	"lead":        "Vui lòng nhập người phụ trách.",
	"time":        "Vui lòng nhập thời gian.",
	"budget":      "Vui lòng nhập ngân sách.",
	"revenue":     "Vui lòng nhập doanh thu dự kiến.",
	"costs":       "Vui lòng nhập tổng chi phí dự kiến.",
	"profit":      "Vui lòng nhập lợi nhuận dự kiến.",
	"name":        "Vui lòng nhập tên nội dung.",
	"detail":      "Vui lòng nhập chi tiết.",
}

const (
	msgSwotMin      = "Vui lòng thêm đủ 4 yếu tố SWOT (Điểm mạnh, Điểm yếu, Cơ hội, Thách thức)."
	msgSwotCoverage = "Vui lòng thêm đủ 4 yếu tố SWOT: Điểm mạnh, Điểm yếu, Cơ hội, và Thách thức."
	msgBscMin       = "Vui lòng thêm ít nhất 4 góc nhìn BSC."
	msgBscCoverage  = "Vui lòng thêm ít nhất 1 mục tiêu cho mỗi góc nhìn BSC (Tài chính, Khách hàng, Quy trình nội bộ, Học tập & Phát triển)."
	msgCommitment   = "Bạn phải cam kết để gửi kế hoạch."
	msgAttachMax    = "Chỉ được đính kèm tối đa 3 tệp."
)

// Validate checks every invariant of one submission and returns the full list
// of failures, or nil when the candidate is valid. It never persists anything.
func Validate(in *SubmissionInput) []FieldError {
	var errs []FieldError

	if err := validate.Struct(in); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return []FieldError{{Field: "", Message: err.Error()}}
		}
		for _, fe := range verrs {
			errs = append(errs, FieldError{
				Field:   fieldPath(fe.Namespace()),
				Message: messageFor(fe),
			})
		}
	}

	// Cross-field refinements the tag language cannot express.
	if len(in.SwotItems) >= 4 && !swotCovered(in.SwotItems) {
		errs = append(errs, FieldError{Field: "swotItems", Message: msgSwotCoverage})
	}
	if len(in.BscItems) >= 4 && !bscCovered(in.BscItems) {
		errs = append(errs, FieldError{Field: "bscItems", Message: msgBscCoverage})
	}

	return errs
}

func swotCovered(items []SwotItemInput) bool {
	seen := make(map[string]bool, 4)
	for _, item := range items {
		seen[item.Type] = true
	}
	for _, typ := range entity.SwotTypes {
		if !seen[typ] {
			return false
		}
	}
	return true
}

func bscCovered(items []BscItemInput) bool {
	seen := make(map[string]bool, 4)
	for _, item := range items {
		seen[item.Perspective] = true
	}
	return len(seen) >= 4
}

// fieldPath strips the root struct name from a validator namespace, leaving
// the json path, e.g. "swotItems[0].description".
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "oneof":
		if msg, ok := requiredMessages[fe.Field()]; ok {
			return msg
		}
	case "min":
		switch fe.Field() {
		case "swotItems":
			return msgSwotMin
		case "bscItems":
			return msgBscMin
		}
	case "max":
		if fe.Field() == "attachments" {
			return msgAttachMax
		}
	case "eq":
		if fe.Field() == "commitment" {
			return msgCommitment
		}
	}
	return fmt.Sprintf("Giá trị không hợp lệ (%s).", fe.Tag())
}

// ToEntity maps a validated input to the stored row shape. The server assigns
// id and created_at; callers must not.
func (in *SubmissionInput) ToEntity() *entity.PlanSubmission {
	sub := &entity.PlanSubmission{
		UnitName:   in.UnitName,
		UnitLeader: in.UnitLeader,
		FinancialForecast: entity.FinancialForecast{
			Revenue:    in.Revenue,
			Costs:      in.Costs,
			Profit:     in.Profit,
			Investment: in.Investment,
		},
		Commitment: in.Commitment,
	}
	for _, item := range in.SwotItems {
		sub.Swot = append(sub.Swot, entity.SwotItem{Type: item.Type, Description: item.Description})
	}
	for _, item := range in.BscItems {
		sub.BSC = append(sub.BSC, entity.BSCItem{Perspective: item.Perspective, Objective: item.Objective, KPI: item.KPI})
	}
	for _, item := range in.ActionPlans {
		sub.ActionPlans = append(sub.ActionPlans, entity.ActionPlanItem{
			Plan: item.Plan, Lead: item.Lead, Time: item.Time, Budget: item.Budget, KPI: item.KPI,
		})
	}
	for _, att := range in.Attachments {
		sub.FinancialForecast.Attachments = append(sub.FinancialForecast.Attachments, entity.Attachment{
			Name: att.Name, Size: att.Size, Type: att.Type, URL: att.URL,
		})
	}
	sub.ProfessionalOrientation = contentItems(in.ProfessionalOrientation)
	sub.StrategicProducts = contentItems(in.StrategicProducts)
	sub.NewServices2026 = contentItems(in.NewServices2026)
	sub.Recruitment = contentItems(in.Recruitment)
	sub.Conferences = contentItems(in.Conferences)
	sub.CommunityPrograms = contentItems(in.CommunityPrograms)
	sub.RevenueRecommendations = contentItems(in.RevenueRecommendations)
	return sub
}

func contentItems(in []ContentItemInput) entity.ContentItems {
	out := make(entity.ContentItems, 0, len(in))
	for _, item := range in {
		out = append(out, entity.ContentItem{Name: item.Name, Detail: item.Detail})
	}
	return out
}
