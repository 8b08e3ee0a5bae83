package service_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/adilhusain01/aadil-rasheed-server/internal/api/config"
	"github.com/adilhusain01/aadil-rasheed-server/internal/mocks"
	"github.com/adilhusain01/aadil-rasheed-server/internal/service"
)

func uploadTestConfig(t *testing.T) {
	t.Helper()
	prev := config.Cfg
	config.Cfg = &config.Config{
		Upload: config.UploadConfig{MaxFileSize: 1 << 20, MaxFiles: 3},
	}
	t.Cleanup(func() { config.Cfg = prev })
}

func tempUploadFile(t *testing.T, name string, content []byte) *service.IncomingFile {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return &service.IncomingFile{
		OriginalName: name,
		TempPath:     path,
		Size:         int64(len(content)),
		MimeType:     "text/plain",
	}
}

func TestUploadService_ProcessBatch_Isolation(t *testing.T) {
	uploadTestConfig(t)
	uploadRepo := mocks.NewMockUploadRepo()
	store := mocks.NewMockObjectStore()
	svc := service.NewUploadService(uploadRepo, store)

	good := tempUploadFile(t, "notes.txt", []byte("hello"))
	bad := tempUploadFile(t, "script.sh", []byte("#!/bin/sh"))
	bad.MimeType = "application/x-sh"

	result, err := svc.ProcessBatch(context.Background(), []*service.IncomingFile{good, bad})
	if err != nil {
		t.Fatalf("ProcessBatch failed: %v", err)
	}
	if len(result.Uploaded) != 1 {
		t.Fatalf("expected 1 success, got %d", len(result.Uploaded))
	}
	if len(result.Failed) != 1 || result.Failed[0].Name != "script.sh" {
		t.Fatalf("expected script.sh in failed list, got %+v", result.Failed)
	}

	// Temp files are gone on both paths.
	for _, file := range []*service.IncomingFile{good, bad} {
		if _, statErr := os.Stat(file.TempPath); !os.IsNotExist(statErr) {
			t.Errorf("temp file %s not cleaned up", file.TempPath)
		}
	}

	upload := result.Uploaded[0]
	if upload.OriginalName != "notes.txt" {
		t.Errorf("unexpected original name %q", upload.OriginalName)
	}
	if upload.URL == "" || upload.Filename == "" {
		t.Error("stored record must carry object key and URL")
	}
	if _, ok := store.Objects[upload.Filename]; !ok {
		t.Error("object bytes missing from store")
	}
}

func TestUploadService_ProcessBatch_Oversize(t *testing.T) {
	uploadTestConfig(t)
	config.Cfg.Upload.MaxFileSize = 4
	svc := service.NewUploadService(mocks.NewMockUploadRepo(), mocks.NewMockObjectStore())

	big := tempUploadFile(t, "big.txt", []byte("too large"))
	result, err := svc.ProcessBatch(context.Background(), []*service.IncomingFile{big})
	if err != nil {
		t.Fatalf("ProcessBatch failed: %v", err)
	}
	if len(result.Uploaded) != 0 || len(result.Failed) != 1 {
		t.Fatalf("oversize file must fail alone: %+v", result)
	}
}

func TestUploadService_ProcessBatch_Limits(t *testing.T) {
	uploadTestConfig(t)
	svc := service.NewUploadService(mocks.NewMockUploadRepo(), mocks.NewMockObjectStore())

	if _, err := svc.ProcessBatch(context.Background(), nil); !errors.Is(err, service.ErrNoFiles) {
		t.Fatalf("expected ErrNoFiles, got %v", err)
	}

	files := make([]*service.IncomingFile, 4)
	for i := range files {
		files[i] = tempUploadFile(t, "f.txt", []byte("x"))
	}
	if _, err := svc.ProcessBatch(context.Background(), files); !errors.Is(err, service.ErrTooManyFiles) {
		t.Fatalf("expected ErrTooManyFiles, got %v", err)
	}
	for _, file := range files {
		if _, err := os.Stat(file.TempPath); !os.IsNotExist(err) {
			t.Errorf("rejected batch left temp file %s behind", file.TempPath)
		}
	}
}

func TestUploadService_ProcessBatch_PersistFailureCleansRemote(t *testing.T) {
	uploadTestConfig(t)
	uploadRepo := mocks.NewMockUploadRepo()
	uploadRepo.CreateErr = errors.New("db down")
	store := mocks.NewMockObjectStore()
	svc := service.NewUploadService(uploadRepo, store)

	file := tempUploadFile(t, "doc.txt", []byte("x"))
	result, err := svc.ProcessBatch(context.Background(), []*service.IncomingFile{file})
	if err != nil {
		t.Fatalf("ProcessBatch failed: %v", err)
	}
	if len(result.Failed) != 1 {
		t.Fatalf("expected 1 failure, got %+v", result)
	}
	if len(store.Objects) != 0 {
		t.Error("orphaned remote object left behind after persist failure")
	}
}

func TestUploadService_Delete_RemoteFirst(t *testing.T) {
	uploadTestConfig(t)
	uploadRepo := mocks.NewMockUploadRepo()
	store := mocks.NewMockObjectStore()
	svc := service.NewUploadService(uploadRepo, store)

	file := tempUploadFile(t, "keep.txt", []byte("x"))
	result, err := svc.ProcessBatch(context.Background(), []*service.IncomingFile{file})
	if err != nil || len(result.Uploaded) != 1 {
		t.Fatalf("setup upload failed: %v %+v", err, result)
	}
	id := result.Uploaded[0].ID

	// Failed remote delete keeps the record.
	store.RemoveErr = errors.New("store down")
	if err = svc.Delete(context.Background(), id); err == nil {
		t.Fatal("expected error when the remote delete fails")
	}
	if _, ok := uploadRepo.Uploads[id]; !ok {
		t.Fatal("record must survive a failed remote delete")
	}

	store.RemoveErr = nil
	if err = svc.Delete(context.Background(), id); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok := uploadRepo.Uploads[id]; ok {
		t.Error("record must be removed after successful remote delete")
	}

	if err = svc.Delete(context.Background(), id); !errors.Is(err, service.ErrUploadNotFound) {
		t.Fatalf("expected ErrUploadNotFound, got %v", err)
	}
}
