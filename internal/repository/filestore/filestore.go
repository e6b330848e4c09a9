package filestore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/twincities-service/internal/domain/repository"
	"github.com/twincities-service/internal/pkg/errors"
)

// Per-entity subdirectories of the uploads tree.
const (
	EntityDocuments      = "documents"
	EntityGallery        = "gallery"
	EntityLocations      = "locations"
	EntityCollaborations = "collaborations"
)

type store struct {
	baseDir string
	logger  *zap.Logger
}

func New(baseDir string, logger *zap.Logger) (repository.FileStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &store{baseDir: baseDir, logger: logger}, nil
}

func (s *store) Save(entity, originalName string, src io.Reader) (string, int64, error) {
	dir := filepath.Join(s.baseDir, entity)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		s.logger.Error("Failed to create entity dir", zap.String("dir", dir), zap.Error(err))
		return "", 0, errors.ErrStorageError
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(originalName))
	relPath := filepath.Join(entity, name)

	dst, err := os.Create(filepath.Join(s.baseDir, relPath))
	if err != nil {
		s.logger.Error("Failed to create file", zap.String("path", relPath), zap.Error(err))
		return "", 0, errors.ErrStorageError
	}
	defer dst.Close()

	size, err := io.Copy(dst, src)
	if err != nil {
		os.Remove(dst.Name())
		s.logger.Error("Failed to write file", zap.String("path", relPath), zap.Error(err))
		return "", 0, errors.ErrStorageError
	}

	return filepath.ToSlash(relPath), size, nil
}

func (s *store) AbsPath(relPath string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(relPath))
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", errors.ErrFileNotFound
	}

	abs := filepath.Join(s.baseDir, clean)
	if _, err := os.Stat(abs); err != nil {
		return "", errors.ErrFileNotFound
	}
	return abs, nil
}

func (s *store) Remove(relPath string) error {
	abs, err := s.AbsPath(relPath)
	if err != nil {
		return err
	}
	if err := os.Remove(abs); err != nil {
		s.logger.Error("Failed to remove file", zap.String("path", relPath), zap.Error(err))
		return errors.ErrStorageError
	}
	return nil
}
