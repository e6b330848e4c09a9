package usecase_test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/twincities-service/internal/domain"
)

type MockDocumentRepository struct {
	mock.Mock
}

func (m *MockDocumentRepository) Create(ctx context.Context, doc *domain.Document, tags []string) (*domain.Document, error) {
	args := m.Called(ctx, doc, tags)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentRepository) Update(ctx context.Context, doc *domain.Document, tags []string) (*domain.Document, error) {
	args := m.Called(ctx, doc, tags)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentRepository) GetByID(ctx context.Context, id int64) (*domain.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentRepository) List(ctx context.Context, filter domain.DocumentFilter) ([]*domain.Document, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Document), args.Int(1), args.Error(2)
}

func (m *MockDocumentRepository) GetByTwinCity(ctx context.Context, twinCityID int64) ([]*domain.Document, error) {
	args := m.Called(ctx, twinCityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Document), args.Error(1)
}

func (m *MockDocumentRepository) GetByLocation(ctx context.Context, locationID int64) ([]*domain.Document, error) {
	args := m.Called(ctx, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Document), args.Error(1)
}

func (m *MockDocumentRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDocumentRepository) CountByTwinCity(ctx context.Context, twinCityID int64) (int, error) {
	args := m.Called(ctx, twinCityID)
	return args.Int(0), args.Error(1)
}

func (m *MockDocumentRepository) CountByLocation(ctx context.Context, locationID int64) (int, error) {
	args := m.Called(ctx, locationID)
	return args.Int(0), args.Error(1)
}

type MockTwinCityRepository struct {
	mock.Mock
}

func (m *MockTwinCityRepository) List(ctx context.Context) ([]*domain.TwinCity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TwinCity), args.Error(1)
}

func (m *MockTwinCityRepository) GetByID(ctx context.Context, id int64) (*domain.TwinCity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TwinCity), args.Error(1)
}

func (m *MockTwinCityRepository) Create(ctx context.Context, tc *domain.TwinCity) (*domain.TwinCity, error) {
	args := m.Called(ctx, tc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TwinCity), args.Error(1)
}

func (m *MockTwinCityRepository) Update(ctx context.Context, tc *domain.TwinCity) (*domain.TwinCity, error) {
	args := m.Called(ctx, tc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TwinCity), args.Error(1)
}

func (m *MockTwinCityRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockIndicatorRepository struct {
	mock.Mock
}

func (m *MockIndicatorRepository) List(ctx context.Context, twinCityID int64) ([]*domain.Indicator, error) {
	args := m.Called(ctx, twinCityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Indicator), args.Error(1)
}

func (m *MockIndicatorRepository) GetByID(ctx context.Context, id int64) (*domain.Indicator, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Indicator), args.Error(1)
}

func (m *MockIndicatorRepository) Create(ctx context.Context, ind *domain.Indicator) (*domain.Indicator, error) {
	args := m.Called(ctx, ind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Indicator), args.Error(1)
}

func (m *MockIndicatorRepository) Update(ctx context.Context, ind *domain.Indicator) (*domain.Indicator, error) {
	args := m.Called(ctx, ind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Indicator), args.Error(1)
}

func (m *MockIndicatorRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockIndicatorRepository) CountByTwinCity(ctx context.Context, twinCityID int64) (int, error) {
	args := m.Called(ctx, twinCityID)
	return args.Int(0), args.Error(1)
}

type MockLocationRepository struct {
	mock.Mock
}

func (m *MockLocationRepository) List(ctx context.Context) ([]*domain.Location, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Location), args.Error(1)
}

func (m *MockLocationRepository) GetByID(ctx context.Context, id int64) (*domain.Location, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Location), args.Error(1)
}

func (m *MockLocationRepository) Create(ctx context.Context, loc *domain.Location) (*domain.Location, error) {
	args := m.Called(ctx, loc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Location), args.Error(1)
}

func (m *MockLocationRepository) Update(ctx context.Context, loc *domain.Location) (*domain.Location, error) {
	args := m.Called(ctx, loc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Location), args.Error(1)
}

func (m *MockLocationRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockGalleryRepository struct {
	mock.Mock
}

func (m *MockGalleryRepository) List(ctx context.Context) ([]*domain.Gallery, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Gallery), args.Error(1)
}

func (m *MockGalleryRepository) GetByID(ctx context.Context, id int64) (*domain.Gallery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Gallery), args.Error(1)
}

func (m *MockGalleryRepository) Create(ctx context.Context, g *domain.Gallery) (*domain.Gallery, error) {
	args := m.Called(ctx, g)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Gallery), args.Error(1)
}

func (m *MockGalleryRepository) Update(ctx context.Context, g *domain.Gallery, replaceItems bool) (*domain.Gallery, error) {
	args := m.Called(ctx, g, replaceItems)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Gallery), args.Error(1)
}

func (m *MockGalleryRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockGalleryRepository) CountByLocation(ctx context.Context, locationID int64) (int, error) {
	args := m.Called(ctx, locationID)
	return args.Int(0), args.Error(1)
}

type MockCollaborationRepository struct {
	mock.Mock
}

func (m *MockCollaborationRepository) List(ctx context.Context, status string, page, limit int) ([]*domain.Collaboration, int, error) {
	args := m.Called(ctx, status, page, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Collaboration), args.Int(1), args.Error(2)
}

func (m *MockCollaborationRepository) GetByID(ctx context.Context, id int64) (*domain.Collaboration, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Collaboration), args.Error(1)
}

func (m *MockCollaborationRepository) GetFile(ctx context.Context, collaborationID, fileID int64) (*domain.CollaborationFile, error) {
	args := m.Called(ctx, collaborationID, fileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CollaborationFile), args.Error(1)
}

func (m *MockCollaborationRepository) Create(ctx context.Context, c *domain.Collaboration) (*domain.Collaboration, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Collaboration), args.Error(1)
}

func (m *MockCollaborationRepository) AddFile(ctx context.Context, f *domain.CollaborationFile) (*domain.CollaborationFile, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CollaborationFile), args.Error(1)
}

func (m *MockCollaborationRepository) Update(ctx context.Context, c *domain.Collaboration) (*domain.Collaboration, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Collaboration), args.Error(1)
}

func (m *MockCollaborationRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) Save(entity, originalName string, src io.Reader) (string, int64, error) {
	args := m.Called(entity, originalName, src)
	return args.String(0), args.Get(1).(int64), args.Error(2)
}

func (m *MockFileStore) AbsPath(relPath string) (string, error) {
	args := m.Called(relPath)
	return args.String(0), args.Error(1)
}

func (m *MockFileStore) Remove(relPath string) error {
	args := m.Called(relPath)
	return args.Error(0)
}
