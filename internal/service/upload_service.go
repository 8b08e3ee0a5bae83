package service

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adilhusain01/aadil-rasheed-server/internal/api/config"
	"github.com/adilhusain01/aadil-rasheed-server/internal/api/dto"
	"github.com/adilhusain01/aadil-rasheed-server/internal/model"
	"github.com/adilhusain01/aadil-rasheed-server/internal/repository"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// IncomingFile is one file of an upload batch, already spooled to a
// temp path by the transport layer.
type IncomingFile struct {
	OriginalName string
	TempPath     string
	Size         int64
	MimeType     string
}

type UploadService interface {
	ProcessBatch(ctx context.Context, files []*IncomingFile) (*dto.UploadBatchDTO, error)
	List(ctx context.Context) ([]*model.Upload, error)
	Get(ctx context.Context, id uint64) (*model.Upload, error)
	Delete(ctx context.Context, id uint64) error
}

type uploadServiceImpl struct {
	uploadRepo repository.UploadRepo
	store      ObjectStore
}

func NewUploadService(uploadRepo repository.UploadRepo, store ObjectStore) UploadService {
	return &uploadServiceImpl{uploadRepo: uploadRepo, store: store}
}

var allowedMimeTypes = map[string]bool{
	"image/jpeg":         true,
	"image/png":          true,
	"image/gif":          true,
	"image/webp":         true,
	"video/mp4":          true,
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"text/plain": true,
}

// ProcessBatch uploads each file independently. One bad file lands in
// the failed list without aborting its siblings, and every temp file is
// removed no matter which path it took.
func (s *uploadServiceImpl) ProcessBatch(ctx context.Context, files []*IncomingFile) (*dto.UploadBatchDTO, error) {
	if len(files) == 0 {
		return nil, ErrNoFiles
	}
	if maxFiles := config.Cfg.Upload.MaxFiles; maxFiles > 0 && len(files) > maxFiles {
		// A rejected batch must not leave its spooled files behind.
		for _, file := range files {
			if removeErr := os.Remove(file.TempPath); removeErr != nil && !os.IsNotExist(removeErr) {
				slog.Warn("temp file cleanup failed", "path", file.TempPath, "error", removeErr)
			}
		}
		return nil, ErrTooManyFiles
	}

	result := &dto.UploadBatchDTO{
		Uploaded: make([]*model.Upload, 0, len(files)),
	}
	for _, file := range files {
		upload, err := s.processOne(ctx, file)
		if removeErr := os.Remove(file.TempPath); removeErr != nil && !os.IsNotExist(removeErr) {
			slog.Warn("temp file cleanup failed", "path", file.TempPath, "error", removeErr)
		}
		if err != nil {
			result.Failed = append(result.Failed, &dto.UploadFailureDTO{
				Name:  file.OriginalName,
				Error: err.Error(),
			})
			continue
		}
		result.Uploaded = append(result.Uploaded, upload)
	}
	return result, nil
}

func (s *uploadServiceImpl) processOne(ctx context.Context, file *IncomingFile) (*model.Upload, error) {
	if !allowedMimeTypes[file.MimeType] {
		return nil, ErrFileNotSupported
	}
	if maxSize := config.Cfg.Upload.MaxFileSize; maxSize > 0 && file.Size > maxSize {
		return nil, fmt.Errorf("file exceeds the %d byte limit", maxSize)
	}

	var width, height int
	if strings.HasPrefix(file.MimeType, "image/") {
		if img, err := imaging.Open(file.TempPath); err == nil {
			bounds := img.Bounds()
			width, height = bounds.Dx(), bounds.Dy()
		}
	}

	reader, err := os.Open(file.TempPath)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	objectName := time.Now().Format("2006/01/02/") + uuid.NewString() + strings.ToLower(filepath.Ext(file.OriginalName))
	key, err := s.store.Upload(ctx, objectName, reader, file.Size, file.MimeType)
	if err != nil {
		return nil, err
	}

	upload := &model.Upload{
		Filename:     key,
		OriginalName: file.OriginalName,
		MimeType:     file.MimeType,
		Size:         file.Size,
		URL:          s.store.PublicURL(key),
		Width:        width,
		Height:       height,
	}
	if err = s.uploadRepo.CreateUpload(ctx, upload); err != nil {
		// The object is already remote; drop it so metadata and storage
		// do not drift apart.
		if removeErr := s.store.Remove(ctx, key); removeErr != nil {
			slog.Warn("orphaned object cleanup failed", "key", key, "error", removeErr)
		}
		return nil, err
	}
	return upload, nil
}

func (s *uploadServiceImpl) List(ctx context.Context) ([]*model.Upload, error) {
	return s.uploadRepo.ListUploads(ctx)
}

func (s *uploadServiceImpl) Get(ctx context.Context, id uint64) (*model.Upload, error) {
	upload, err := s.uploadRepo.GetUploadByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if upload == nil {
		return nil, ErrUploadNotFound
	}
	return upload, nil
}

// Delete removes the remote object first; the metadata row survives a
// failed remote delete so the object stays discoverable.
func (s *uploadServiceImpl) Delete(ctx context.Context, id uint64) error {
	upload, err := s.uploadRepo.GetUploadByID(ctx, id)
	if err != nil {
		return err
	}
	if upload == nil {
		return ErrUploadNotFound
	}

	if err = s.store.Remove(ctx, upload.Filename); err != nil {
		return err
	}
	return s.uploadRepo.DeleteUpload(ctx, id)
}
