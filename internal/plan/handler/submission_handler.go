package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/TungTran2095/medform/internal/plan/schema"
	"github.com/TungTran2095/medform/internal/plan/service"
)

// SubmissionHandler accepts plan submissions and serves the detail view.
type SubmissionHandler struct {
	svc *service.SubmissionService
}

func NewSubmissionHandler(svc *service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{svc: svc}
}

// Create handles POST /api/v1/plans. Validation failures return the per-field
// list and persist nothing.
func (h *SubmissionHandler) Create(c *gin.Context) {
	var in schema.SubmissionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		BadRequest(c, "Dữ liệu gửi lên không hợp lệ: "+err.Error())
		return
	}

	sub, fieldErrs, err := h.svc.Create(c.Request.Context(), &in)
	if err != nil {
		InternalError(c, "Không thể gửi kế hoạch.")
		return
	}
	if len(fieldErrs) > 0 {
		ValidationFailed(c, fieldErrs)
		return
	}

	Created(c, gin.H{
		"id":      sub.ID,
		"message": "Kế hoạch đã được gửi thành công!",
	})
}

// Detail handles GET /api/v1/plans/:id and returns the category-grouped
// projection of one submission.
func (h *SubmissionHandler) Detail(c *gin.Context) {
	sub, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		InternalError(c, "Không thể tải kế hoạch.")
		return
	}
	if sub == nil {
		NotFound(c, "Không tìm thấy kế hoạch.")
		return
	}
	Success(c, gin.H{
		"submission": sub,
		"sections":   service.Detail(sub),
	})
}
