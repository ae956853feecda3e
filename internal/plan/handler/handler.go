package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/TungTran2095/medform/internal/plan/entity"
	"github.com/TungTran2095/medform/internal/plan/service"
	"github.com/TungTran2095/medform/internal/shared/gemini"
	"github.com/TungTran2095/medform/internal/shared/storage"
)

// AIClient is the generative-text surface the form-assist endpoints use.
type AIClient interface {
	PrioritizeInitiatives(ctx context.Context, in gemini.InitiativesInput) (*gemini.InitiativesOutput, error)
	SuggestKPIs(ctx context.Context, objectives string) (string, error)
}

// UnitDirectory lists the read-only unit/leader reference entries.
type UnitDirectory interface {
	List(ctx context.Context) ([]entity.UnitDirectoryEntry, error)
}

// Handlers bundles the HTTP handlers.
type Handlers struct {
	Submission *SubmissionHandler
	Dashboard  *DashboardHandler
	Upload     *UploadHandler
	Unit       *UnitHandler
	AI         *AIHandler
}

// NewHandlers creates the handler set. uploader and ai may be nil; the
// corresponding endpoints then answer with a service-unavailable message.
func NewHandlers(svc *service.Services, units UnitDirectory, uploader *storage.Uploader, ai AIClient) *Handlers {
	return &Handlers{
		Submission: NewSubmissionHandler(svc.Submission),
		Dashboard:  NewDashboardHandler(svc.Dashboard, svc.Export),
		Upload:     NewUploadHandler(uploader),
		Unit:       NewUnitHandler(units),
		AI:         NewAIHandler(ai),
	}
}

// Response is the uniform JSON envelope.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success 200 envelope
func Success(c *gin.Context, data interface{}) {
	c.JSON(200, Response{Code: 0, Message: "success", Data: data})
}

// Created 201 envelope
func Created(c *gin.Context, data interface{}) {
	c.JSON(201, Response{Code: 0, Message: "success", Data: data})
}

// Error maps an application code to its HTTP status (code/100).
func Error(c *gin.Context, code int, message string) {
	statusCode := code / 100
	if statusCode < 100 || statusCode > 599 {
		statusCode = 500
	}
	c.JSON(statusCode, Response{Code: code, Message: message})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, 40000, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, 40400, message)
}

func InternalError(c *gin.Context, message string) {
	Error(c, 50000, message)
}

// BadGateway reports an upstream (AI service) failure.
func BadGateway(c *gin.Context, message string) {
	Error(c, 50200, message)
}

// Unavailable reports a feature whose collaborator is not configured.
func Unavailable(c *gin.Context, message string) {
	Error(c, 50300, message)
}

// ValidationFailed returns the per-field error list alongside a summary message.
func ValidationFailed(c *gin.Context, errs interface{}) {
	c.JSON(400, Response{
		Code:    40001,
		Message: "Không thể gửi kế hoạch.",
		Data:    gin.H{"errors": errs},
	})
}
