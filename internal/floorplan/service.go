package floorplan

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/WORQ-Incompleteness-Theorem-Sdn-Bhd/private-suite-dashboard-sub000/internal/office"
	"github.com/WORQ-Incompleteness-Theorem-Sdn-Bhd/private-suite-dashboard-sub000/internal/pkg/storage"
)

type UploadRequest struct {
	OfficeID string
	Floor    string
	UserID   string
}

type Service interface {
	Upload(ctx context.Context, header *multipart.FileHeader, req UploadRequest) (*Floorplan, error)
	Get(ctx context.Context, id string) (*Floorplan, error)
	ListByOffice(ctx context.Context, officeID string) ([]*Floorplan, error)
	Download(ctx context.Context, id string) (io.ReadCloser, *Floorplan, error)
	DownloadPreview(ctx context.Context, id string) (io.ReadCloser, *Floorplan, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo          Repository
	storage       storage.Storage
	imgProc       *storage.ImageProcessor
	officeService office.Service
}

func NewService(repo Repository, store storage.Storage, officeService office.Service) Service {
	return &service{
		repo:          repo,
		storage:       store,
		imgProc:       storage.NewImageProcessor(),
		officeService: officeService,
	}
}

func (s *service) Upload(ctx context.Context, header *multipart.FileHeader, req UploadRequest) (*Floorplan, error) {
	if _, err := s.officeService.GetByID(ctx, req.OfficeID); err != nil {
		return nil, err
	}

	contentType := header.Header.Get("Content-Type")
	if contentType != "image/svg+xml" && !strings.HasPrefix(contentType, "image/") {
		return nil, ErrUnsupported
	}

	src, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	// Floorplans are small; buffer once so the preview pass can re-read.
	fileBytes, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read file content: %w", err)
	}

	planID := uuid.New().String()
	ext := strings.ToLower(filepath.Ext(header.Filename))

	shard := planID[:2]
	storagePath := fmt.Sprintf("floorplans/%s/%s%s", shard, planID, ext)

	if err := s.storage.Save(ctx, storagePath, bytes.NewReader(fileBytes)); err != nil {
		return nil, fmt.Errorf("failed to save floorplan: %w", err)
	}

	// Raster uploads get a bounded preview; SVG renders natively in the
	// dashboard and needs none. Preview failure never fails the upload.
	var previewPath *string
	if contentType != "image/svg+xml" {
		if preview, err := s.imgProc.GeneratePreview(bytes.NewReader(fileBytes), 480, 480); err == nil {
			pPath := fmt.Sprintf("floorplans/%s/%s_preview.jpg", shard, planID)
			if err := s.storage.Save(ctx, pPath, preview); err == nil {
				previewPath = &pPath
			}
		}
	}

	f := &Floorplan{
		ID:          planID,
		OfficeID:    req.OfficeID,
		Floor:       req.Floor,
		Filename:    header.Filename,
		StoragePath: storagePath,
		PreviewPath: previewPath,
		ContentType: contentType,
		Size:        header.Size,
		UploadedBy:  req.UserID,
	}
	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *service) Get(ctx context.Context, id string) (*Floorplan, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListByOffice(ctx context.Context, officeID string) ([]*Floorplan, error) {
	if _, err := s.officeService.GetByID(ctx, officeID); err != nil {
		return nil, err
	}
	return s.repo.ListByOffice(ctx, officeID)
}

func (s *service) Download(ctx context.Context, id string) (io.ReadCloser, *Floorplan, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	rc, err := s.storage.Get(ctx, f.StoragePath)
	if err != nil {
		return nil, nil, ErrNotFound.WithCause(err)
	}
	return rc, f, nil
}

func (s *service) DownloadPreview(ctx context.Context, id string) (io.ReadCloser, *Floorplan, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if f.PreviewPath == nil {
		return nil, nil, ErrNotFound
	}
	rc, err := s.storage.Get(ctx, *f.PreviewPath)
	if err != nil {
		return nil, nil, ErrNotFound.WithCause(err)
	}
	return rc, f, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	// Storage cleanup is best effort; the row is already gone.
	_ = s.storage.Delete(ctx, f.StoragePath)
	if f.PreviewPath != nil {
		_ = s.storage.Delete(ctx, *f.PreviewPath)
	}
	return nil
}
