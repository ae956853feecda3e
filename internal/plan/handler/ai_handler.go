package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/TungTran2095/medform/internal/shared/gemini"
)

// AIHandler serves the optional form-assist endpoints. Both populate editable
// text fields; a failure must leave the caller's field untouched, so errors
// carry a message only.
type AIHandler struct {
	ai AIClient
}

func NewAIHandler(ai AIClient) *AIHandler {
	return &AIHandler{ai: ai}
}

// Initiatives handles POST /api/v1/ai/initiatives: SWOT free text in, a
// prioritized list of 5-7 initiatives plus reasoning out.
func (h *AIHandler) Initiatives(c *gin.Context) {
	if h.ai == nil {
		Unavailable(c, "Chức năng AI chưa được cấu hình.")
		return
	}

	var in gemini.InitiativesInput
	if err := c.ShouldBindJSON(&in); err != nil {
		BadRequest(c, "Dữ liệu gửi lên không hợp lệ: "+err.Error())
		return
	}

	out, err := h.ai.PrioritizeInitiatives(c.Request.Context(), in)
	if err != nil {
		BadGateway(c, "Không thể tạo sáng kiến.")
		return
	}
	Success(c, out)
}

type kpiRequest struct {
	Objectives string `json:"objectives" binding:"required"`
}

// KPIs handles POST /api/v1/ai/kpis: objectives text in, KPI suggestions out.
func (h *AIHandler) KPIs(c *gin.Context) {
	if h.ai == nil {
		Unavailable(c, "Chức năng AI chưa được cấu hình.")
		return
	}

	var req kpiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Dữ liệu gửi lên không hợp lệ: "+err.Error())
		return
	}

	suggested, err := h.ai.SuggestKPIs(c.Request.Context(), req.Objectives)
	if err != nil {
		BadGateway(c, "Không thể đề xuất KPI.")
		return
	}
	Success(c, gin.H{"suggestedKPIs": suggested})
}
