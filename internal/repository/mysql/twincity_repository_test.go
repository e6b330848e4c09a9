package mysql_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/twincities-service/internal/domain"
	"github.com/twincities-service/internal/domain/repository"
	"github.com/twincities-service/internal/pkg/errors"
	"github.com/twincities-service/internal/repository/mysql"
	"github.com/twincities-service/internal/repository/mysql/testhelpers"
)

type TwinCityRepositorySuite struct {
	suite.Suite
	testDB *testhelpers.TestDB
	repo   repository.TwinCityRepository
	ctx    context.Context
}

func (s *TwinCityRepositorySuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())

	err := testhelpers.ApplyMigrations(s.testDB.DB, "../../../migrations")
	s.Require().NoError(err, "Failed to apply migrations")

	s.repo = mysql.NewTwinCityRepository(mysql.NewDBForTest(s.testDB.DB, s.testDB.Logger))
}

func (s *TwinCityRepositorySuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

func (s *TwinCityRepositorySuite) SetupTest() {
	s.ctx = context.Background()
	s.Require().NoError(s.testDB.Cleanup(s.ctx))
}

func (s *TwinCityRepositorySuite) TestCreateAndGet() {
	desc := "Fronteira Brasil-Guiana Francesa"
	created, err := s.repo.Create(s.ctx, &domain.TwinCity{
		CityAName:   "Oiapoque",
		CityALat:    3.8417,
		CityALon:    -51.8331,
		CityBName:   "Saint-Georges",
		CityBLat:    3.8908,
		CityBLon:    -51.8036,
		Description: &desc,
	})
	s.NoError(err)
	s.NotZero(created.ID)

	got, err := s.repo.GetByID(s.ctx, created.ID)
	s.NoError(err)
	s.Equal("Oiapoque", got.CityAName)
	s.Equal("Saint-Georges", got.CityBName)
	s.Require().NotNil(got.Description)
	s.Equal(desc, *got.Description)
}

func (s *TwinCityRepositorySuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(s.ctx, 999999)
	s.ErrorIs(err, errors.ErrTwinCityNotFound)
}

func (s *TwinCityRepositorySuite) TestUpdate() {
	created, err := s.repo.Create(s.ctx, &domain.TwinCity{
		CityAName: "Tabatinga",
		CityALat:  -4.2523,
		CityALon:  -69.9381,
		CityBName: "Leticia",
		CityBLat:  -4.2150,
		CityBLon:  -69.9406,
	})
	s.Require().NoError(err)

	created.CityBName = "Letícia"
	updated, err := s.repo.Update(s.ctx, created)
	s.NoError(err)
	s.Equal("Letícia", updated.CityBName)
}

func (s *TwinCityRepositorySuite) TestDelete() {
	created, err := s.repo.Create(s.ctx, &domain.TwinCity{
		CityAName: "Tabatinga",
		CityALat:  -4.2523,
		CityALon:  -69.9381,
		CityBName: "Leticia",
		CityBLat:  -4.2150,
		CityBLon:  -69.9406,
	})
	s.Require().NoError(err)

	s.NoError(s.repo.Delete(s.ctx, created.ID))
	s.ErrorIs(s.repo.Delete(s.ctx, created.ID), errors.ErrTwinCityNotFound)
}

func TestTwinCityRepositorySuite(t *testing.T) {
	suite.Run(t, new(TwinCityRepositorySuite))
}
