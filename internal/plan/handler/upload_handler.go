package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/TungTran2095/medform/internal/plan/entity"
	"github.com/TungTran2095/medform/internal/plan/schema"
	"github.com/TungTran2095/medform/internal/shared/storage"
)

// UploadHandler stores forecast attachments. A failed upload leaves the rest
// of the submission unaffected; the form simply omits the attachment.
type UploadHandler struct {
	uploader *storage.Uploader
}

func NewUploadHandler(uploader *storage.Uploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

// Upload handles POST /api/v1/uploads with up to 3 multipart files.
func (h *UploadHandler) Upload(c *gin.Context) {
	if h.uploader == nil {
		Unavailable(c, "Chức năng đính kèm tệp chưa được cấu hình.")
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		BadRequest(c, "Không thể đọc tệp tải lên: "+err.Error())
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		files = form.File["file"]
	}
	if len(files) == 0 {
		BadRequest(c, "Không có tệp tải lên.")
		return
	}
	if len(files) > schema.MaxAttachments {
		BadRequest(c, "Chỉ được đính kèm tối đa 3 tệp.")
		return
	}

	var uploaded []entity.Attachment
	for _, fileHeader := range files {
		src, err := fileHeader.Open()
		if err != nil {
			InternalError(c, "Không thể đọc tệp tải lên: "+err.Error())
			return
		}

		att, err := h.uploader.Upload(
			c.Request.Context(),
			src,
			fileHeader.Filename,
			fileHeader.Size,
			fileHeader.Header.Get("Content-Type"),
		)
		src.Close()
		if err != nil {
			InternalError(c, "Không thể lưu tệp: "+err.Error())
			return
		}
		uploaded = append(uploaded, *att)
	}

	Success(c, gin.H{"attachments": uploaded})
}
