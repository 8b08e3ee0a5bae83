package handler

import (
	"os"
	"path/filepath"

	"github.com/adilhusain01/aadil-rasheed-server/internal/api/config"
	"github.com/adilhusain01/aadil-rasheed-server/internal/api/dto"
	"github.com/adilhusain01/aadil-rasheed-server/internal/model"
	"github.com/adilhusain01/aadil-rasheed-server/internal/pkg/response"
	"github.com/adilhusain01/aadil-rasheed-server/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UploadHandler struct {
	uploadSvc service.UploadService
}

func NewUploadHandler(uploadSvc service.UploadService) *UploadHandler {
	return &UploadHandler{uploadSvc: uploadSvc}
}

// Upload accepts a multipart batch under the "files" field, spools each
// part to the temp dir, and hands the batch to the service. Spool
// failures count as per-file failures, not batch failures.
func (s *UploadHandler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.Error(c, service.ErrNoFiles)
		return
	}
	parts := form.File["files"]
	if len(parts) == 0 {
		parts = form.File["file"]
	}
	if len(parts) == 0 {
		response.Error(c, service.ErrNoFiles)
		return
	}

	// Reject oversized batches before anything touches the disk.
	if maxFiles := config.Cfg.Upload.MaxFiles; maxFiles > 0 && len(parts) > maxFiles {
		response.Error(c, service.ErrTooManyFiles)
		return
	}

	tempDir := config.Cfg.Upload.TempDir
	if tempDir == "" {
		tempDir = os.TempDir()
	}

	files := make([]*service.IncomingFile, 0, len(parts))
	spoolFailures := make([]*dto.UploadFailureDTO, 0)
	for _, part := range parts {
		tempPath := filepath.Join(tempDir, uuid.NewString()+filepath.Ext(part.Filename))
		if err = c.SaveUploadedFile(part, tempPath); err != nil {
			_ = os.Remove(tempPath)
			spoolFailures = append(spoolFailures, &dto.UploadFailureDTO{Name: part.Filename, Error: "could not read file"})
			continue
		}
		files = append(files, &service.IncomingFile{
			OriginalName: part.Filename,
			TempPath:     tempPath,
			Size:         part.Size,
			MimeType:     part.Header.Get("Content-Type"),
		})
	}

	if len(files) == 0 {
		response.Created(c, &dto.UploadBatchDTO{Uploaded: []*model.Upload{}, Failed: spoolFailures})
		return
	}

	result, err := s.uploadSvc.ProcessBatch(c.Request.Context(), files)
	if err != nil {
		response.Error(c, err)
		return
	}
	result.Failed = append(result.Failed, spoolFailures...)
	response.Created(c, result)
}

func (s *UploadHandler) List(c *gin.Context) {
	uploads, err := s.uploadSvc.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, uploads, len(uploads))
}

func (s *UploadHandler) Get(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	upload, err := s.uploadSvc.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, upload)
}

func (s *UploadHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = s.uploadSvc.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"message": "Upload deleted"})
}
