package schema

import (
	"testing"
)

func validInput() *SubmissionInput {
	return &SubmissionInput{
		UnitName:   "Khoa Xét nghiệm",
		UnitLeader: "Nguyễn Văn A",
		SwotItems: []SwotItemInput{
			{Type: "strengths", Description: "Đội ngũ giàu kinh nghiệm"},
			{Type: "weaknesses", Description: "Thiết bị cũ"},
			{Type: "opportunities", Description: "Nhu cầu khám tăng"},
			{Type: "threats", Description: "Cạnh tranh khu vực"},
		},
		BscItems: []BscItemInput{
			{Perspective: "financial", Objective: "Tăng doanh thu 15%", KPI: "Doanh thu quý"},
			{Perspective: "customer", Objective: "Hài lòng bệnh nhân", KPI: "Điểm khảo sát >= 4.5"},
			{Perspective: "internal", Objective: "Rút ngắn thời gian trả kết quả", KPI: "TAT < 2h"},
			{Perspective: "learning", Objective: "Đào tạo nhân sự mới", KPI: "2 khóa/quý"},
		},
		ActionPlans: []ActionPlanInput{
			{Plan: "Nâng cấp LIS", Lead: "Trần B", Time: "Q1/2026", Budget: "500 triệu", KPI: "Go-live Q1"},
		},
		Revenue:    "12,500,000,000 VND",
		Costs:      "9,000,000,000 VND",
		Profit:     "3,500,000,000 VND",
		Commitment: true,
	}
}

func hasField(errs []FieldError, field string) bool {
	for _, e := range errs {
		if e.Field == field {
			return true
		}
	}
	return false
}

func TestValidateAccepts(t *testing.T) {
	if errs := Validate(validInput()); len(errs) != 0 {
		t.Fatalf("expected valid input, got errors: %v", errs)
	}
}

func TestValidateRequiredFields(t *testing.T) {
	in := validInput()
	in.UnitName = ""
	in.Revenue = ""

	errs := Validate(in)
	if !hasField(errs, "unitName") {
		t.Errorf("expected unitName error, got %v", errs)
	}
	if !hasField(errs, "revenue") {
		t.Errorf("expected revenue error, got %v", errs)
	}
	for _, e := range errs {
		if e.Field == "unitName" && e.Message != "Vui lòng nhập tên đơn vị." {
			t.Errorf("unexpected unitName message %q", e.Message)
		}
	}
}

func TestValidateCommitmentRequired(t *testing.T) {
	in := validInput()
	in.Commitment = false

	errs := Validate(in)
	if !hasField(errs, "commitment") {
		t.Fatalf("expected commitment error, got %v", errs)
	}
	for _, e := range errs {
		if e.Field == "commitment" && e.Message != "Bạn phải cam kết để gửi kế hoạch." {
			t.Errorf("unexpected commitment message %q", e.Message)
		}
	}
}

func TestValidateSwotCoverage(t *testing.T) {
	in := validInput()
	// Four items but no threats entry.
	in.SwotItems[3] = SwotItemInput{Type: "strengths", Description: "Thêm một điểm mạnh"}

	errs := Validate(in)
	if !hasField(errs, "swotItems") {
		t.Fatalf("expected swotItems coverage error, got %v", errs)
	}
}

func TestValidateSwotTooFew(t *testing.T) {
	in := validInput()
	in.SwotItems = in.SwotItems[:3]

	errs := Validate(in)
	if !hasField(errs, "swotItems") {
		t.Fatalf("expected swotItems min error, got %v", errs)
	}
}

func TestValidateBscCoverage(t *testing.T) {
	in := validInput()
	in.BscItems[3] = BscItemInput{Perspective: "financial", Objective: "Mục tiêu phụ", KPI: "KPI phụ"}

	errs := Validate(in)
	if !hasField(errs, "bscItems") {
		t.Fatalf("expected bscItems coverage error, got %v", errs)
	}
}

func TestValidateSwotItemFields(t *testing.T) {
	in := validInput()
	in.SwotItems[1].Description = ""

	errs := Validate(in)
	if !hasField(errs, "swotItems[1].description") {
		t.Fatalf("expected nested description error, got %v", errs)
	}
}

func TestValidateAttachmentLimit(t *testing.T) {
	in := validInput()
	for i := 0; i < 4; i++ {
		in.Attachments = append(in.Attachments, AttachmentInput{Name: "bang-du-toan.xlsx", Size: 1024})
	}

	errs := Validate(in)
	if !hasField(errs, "attachments") {
		t.Fatalf("expected attachments max error, got %v", errs)
	}
}

func TestValidateInvalidSwotType(t *testing.T) {
	in := validInput()
	in.SwotItems[0].Type = "advantages"

	errs := Validate(in)
	if !hasField(errs, "swotItems[0].type") {
		t.Fatalf("expected swot type error, got %v", errs)
	}
}

func TestToEntity(t *testing.T) {
	in := validInput()
	in.Attachments = []AttachmentInput{{Name: "forecast.pdf", Size: 2048, URL: "http://example/forecast.pdf"}}

	sub := in.ToEntity()
	if sub.ID != "" {
		t.Errorf("ToEntity must not assign an id, got %q", sub.ID)
	}
	if !sub.CreatedAt.IsZero() {
		t.Errorf("ToEntity must not set created_at")
	}
	if sub.UnitName != in.UnitName || sub.UnitLeader != in.UnitLeader {
		t.Errorf("unit fields not mapped: %+v", sub)
	}
	if len(sub.Swot) != 4 || len(sub.BSC) != 4 || len(sub.ActionPlans) != 1 {
		t.Errorf("list fields not mapped: swot=%d bsc=%d plans=%d", len(sub.Swot), len(sub.BSC), len(sub.ActionPlans))
	}
	if sub.FinancialForecast.Revenue != in.Revenue {
		t.Errorf("revenue not mapped: %q", sub.FinancialForecast.Revenue)
	}
	if len(sub.FinancialForecast.Attachments) != 1 || sub.FinancialForecast.Attachments[0].Name != "forecast.pdf" {
		t.Errorf("attachments not mapped: %+v", sub.FinancialForecast.Attachments)
	}
	if !sub.Commitment {
		t.Errorf("commitment not mapped")
	}
}
