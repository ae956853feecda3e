package service

import (
	"context"
	"errors"
	"testing"

	"github.com/TungTran2095/medform/internal/plan/schema"
)

func validSubmissionInput() *schema.SubmissionInput {
	return &schema.SubmissionInput{
		UnitName:   "Khoa A",
		UnitLeader: "Nguyễn Văn A",
		SwotItems: []schema.SwotItemInput{
			{Type: "strengths", Description: "Đội ngũ giàu kinh nghiệm"},
			{Type: "weaknesses", Description: "Thiết bị cũ"},
			{Type: "opportunities", Description: "Nhu cầu khám tăng"},
			{Type: "threats", Description: "Cạnh tranh khu vực"},
		},
		BscItems: []schema.BscItemInput{
			{Perspective: "financial", Objective: "Tăng doanh thu", KPI: "Doanh thu quý"},
			{Perspective: "customer", Objective: "Hài lòng bệnh nhân", KPI: "Điểm khảo sát"},
			{Perspective: "internal", Objective: "Chuẩn hóa quy trình", KPI: "Số quy trình"},
			{Perspective: "learning", Objective: "Đào tạo", KPI: "Số khóa học"},
		},
		ActionPlans: []schema.ActionPlanInput{
			{Plan: "Nâng cấp hệ thống", Lead: "Trần B", Time: "Q1/2026", Budget: "500 triệu", KPI: "Hoàn thành Q1"},
		},
		Revenue:    "5.000.000",
		Costs:      "3.000.000",
		Profit:     "2.000.000",
		Commitment: true,
	}
}

func TestSubmissionCreate(t *testing.T) {
	store := &fakeStore{}
	svc := NewSubmissionService(store, nil)

	sub, fieldErrs, err := svc.Create(context.Background(), validSubmissionInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(fieldErrs) != 0 {
		t.Fatalf("unexpected field errors: %v", fieldErrs)
	}
	if sub.ID == "" {
		t.Errorf("server must assign an id")
	}
	if sub.CreatedAt.IsZero() {
		t.Errorf("server must assign created_at")
	}
	if len(store.created) != 1 || store.created[0].ID != sub.ID {
		t.Errorf("store not called with the created row")
	}
}

func TestSubmissionCreateRejectedBeforeStore(t *testing.T) {
	store := &fakeStore{}
	svc := NewSubmissionService(store, nil)

	in := validSubmissionInput()
	in.Commitment = false

	sub, fieldErrs, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if sub != nil {
		t.Errorf("rejected input must not yield a row")
	}
	if len(fieldErrs) == 0 {
		t.Fatalf("expected field errors")
	}
	if len(store.created) != 0 {
		t.Errorf("store must not be called for rejected input")
	}
}

func TestSubmissionCreateStoreError(t *testing.T) {
	store := &fakeStore{err: errors.New("connection refused")}
	svc := NewSubmissionService(store, nil)

	_, fieldErrs, err := svc.Create(context.Background(), validSubmissionInput())
	if err == nil {
		t.Fatalf("expected store error")
	}
	if len(fieldErrs) != 0 {
		t.Errorf("store failure is not a validation failure: %v", fieldErrs)
	}
}

func TestSubmissionGetMissing(t *testing.T) {
	svc := NewSubmissionService(&fakeStore{}, nil)

	sub, err := svc.Get(context.Background(), "does-not-exist")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if sub != nil {
		t.Errorf("missing id must yield nil, got %+v", sub)
	}
}
