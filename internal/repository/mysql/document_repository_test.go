package mysql_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/twincities-service/internal/domain"
	"github.com/twincities-service/internal/domain/repository"
	"github.com/twincities-service/internal/pkg/errors"
	"github.com/twincities-service/internal/repository/mysql"
	"github.com/twincities-service/internal/repository/mysql/testhelpers"
)

// DocumentRepositorySuite exercises the transactional document+tags write
// path against a real database.
type DocumentRepositorySuite struct {
	suite.Suite
	testDB       *testhelpers.TestDB
	repo         repository.DocumentRepository
	twinCityRepo repository.TwinCityRepository
	ctx          context.Context

	pair *domain.TwinCity
}

func (s *DocumentRepositorySuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())

	err := testhelpers.ApplyMigrations(s.testDB.DB, "../../../migrations")
	s.Require().NoError(err, "Failed to apply migrations")

	db := mysql.NewDBForTest(s.testDB.DB, s.testDB.Logger)
	s.repo = mysql.NewDocumentRepository(db)
	s.twinCityRepo = mysql.NewTwinCityRepository(db)
}

func (s *DocumentRepositorySuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

func (s *DocumentRepositorySuite) SetupTest() {
	s.ctx = context.Background()
	s.Require().NoError(s.testDB.Cleanup(s.ctx))

	pair, err := s.twinCityRepo.Create(s.ctx, &domain.TwinCity{
		CityAName: "Oiapoque",
		CityALat:  3.8417,
		CityALon:  -51.8331,
		CityBName: "Saint-Georges",
		CityBLat:  3.8908,
		CityBLon:  -51.8036,
	})
	s.Require().NoError(err)
	s.pair = pair
}

func (s *DocumentRepositorySuite) newDocument(title string) *domain.Document {
	return &domain.Document{
		Title:       title,
		Author:      "IEPA",
		Category:    "reports",
		Kind:        domain.DocumentKindExternal,
		ExternalURL: "http://example.org/doc.pdf",
		TwinCityID:  s.pair.ID,
	}
}

func (s *DocumentRepositorySuite) TestCreate_ReturnsFullDocument() {
	doc, err := s.repo.Create(s.ctx, s.newDocument("Report A"), []string{"fronteira", "saúde"})
	s.NoError(err)
	s.Require().NotNil(doc)
	s.NotZero(doc.ID)
	s.Equal("Report A", doc.Title)
	s.Equal("Oiapoque - Saint-Georges", doc.TwinCityName)
	s.ElementsMatch([]string{"fronteira", "saúde"}, doc.Tags)
	s.Equal("", doc.FileURL)
	s.Equal(int64(0), doc.FileSize)
}

func (s *DocumentRepositorySuite) TestCreate_UnknownTwinCityPersistsNothing() {
	bad := s.newDocument("Orphan")
	bad.TwinCityID = s.pair.ID + 1000

	_, err := s.repo.Create(s.ctx, bad, []string{"fronteira"})
	s.ErrorIs(err, errors.ErrTwinCityNotFound)

	docs, total, err := s.repo.List(s.ctx, domain.DocumentFilter{Page: 1, Limit: 10})
	s.NoError(err)
	s.Empty(docs)
	s.Equal(0, total)

	// The tag insert rolled back with the document.
	var tagCount int
	s.NoError(s.testDB.DB.Get(&tagCount, "SELECT COUNT(*) FROM tags"))
	s.Equal(0, tagCount)
}

func (s *DocumentRepositorySuite) TestCreate_ReusesExistingTag() {
	_, err := s.repo.Create(s.ctx, s.newDocument("First"), []string{"fronteira"})
	s.Require().NoError(err)
	_, err = s.repo.Create(s.ctx, s.newDocument("Second"), []string{"fronteira"})
	s.Require().NoError(err)

	var tagCount int
	s.NoError(s.testDB.DB.Get(&tagCount, "SELECT COUNT(*) FROM tags WHERE name = 'fronteira'"))
	s.Equal(1, tagCount)
}

func (s *DocumentRepositorySuite) TestUpdate_ReplacesTagSet() {
	created, err := s.repo.Create(s.ctx, s.newDocument("Report A"), []string{"fronteira", "saúde"})
	s.Require().NoError(err)

	created.Title = "Report A (rev)"
	updated, err := s.repo.Update(s.ctx, created, []string{"saúde"})
	s.NoError(err)
	s.Equal("Report A (rev)", updated.Title)
	s.Equal([]string{"saúde"}, updated.Tags)

	// The replaced tag survives in the tags table, only the link is gone.
	var tagCount int
	s.NoError(s.testDB.DB.Get(&tagCount, "SELECT COUNT(*) FROM tags"))
	s.Equal(2, tagCount)
}

func (s *DocumentRepositorySuite) TestUpdate_EmptyTagListClearsAssociations() {
	created, err := s.repo.Create(s.ctx, s.newDocument("Report A"), []string{"fronteira"})
	s.Require().NoError(err)

	updated, err := s.repo.Update(s.ctx, created, nil)
	s.NoError(err)
	s.Empty(updated.Tags)
}

func (s *DocumentRepositorySuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(s.ctx, 424242)
	s.ErrorIs(err, errors.ErrDocumentNotFound)
}

func (s *DocumentRepositorySuite) TestList_PaginationAndTotal() {
	for i := 0; i < 15; i++ {
		doc := s.newDocument(fmt.Sprintf("Book %02d", i))
		doc.Category = "books"
		_, err := s.repo.Create(s.ctx, doc, nil)
		s.Require().NoError(err)
	}

	docs, total, err := s.repo.List(s.ctx, domain.DocumentFilter{
		Category: "books",
		Page:     2,
		Limit:    10,
	})
	s.NoError(err)
	s.Len(docs, 5)
	s.Equal(15, total)
}

func (s *DocumentRepositorySuite) TestList_NoMatchesIsEmptyNotError() {
	docs, total, err := s.repo.List(s.ctx, domain.DocumentFilter{
		Category: "maps",
		Search:   "nada",
		Page:     1,
		Limit:    10,
	})
	s.NoError(err)
	s.NotNil(docs)
	s.Empty(docs)
	s.Equal(0, total)
}

func (s *DocumentRepositorySuite) TestList_SearchMatchesTagName() {
	_, err := s.repo.Create(s.ctx, s.newDocument("Report A"), []string{"fronteira"})
	s.Require().NoError(err)
	_, err = s.repo.Create(s.ctx, s.newDocument("Report B"), []string{"comércio"})
	s.Require().NoError(err)

	docs, total, err := s.repo.List(s.ctx, domain.DocumentFilter{
		Search: "fronteira",
		Page:   1,
		Limit:  10,
	})
	s.NoError(err)
	s.Equal(1, total)
	s.Require().Len(docs, 1)
	s.Equal("Report A", docs[0].Title)
}

func (s *DocumentRepositorySuite) TestDelete_RemovesLinks() {
	created, err := s.repo.Create(s.ctx, s.newDocument("Report A"), []string{"fronteira"})
	s.Require().NoError(err)

	s.NoError(s.repo.Delete(s.ctx, created.ID))

	_, err = s.repo.GetByID(s.ctx, created.ID)
	s.ErrorIs(err, errors.ErrDocumentNotFound)

	var linkCount int
	s.NoError(s.testDB.DB.Get(&linkCount,
		"SELECT COUNT(*) FROM document_tags WHERE document_id = ?", created.ID))
	s.Equal(0, linkCount)
}

func TestDocumentRepositorySuite(t *testing.T) {
	suite.Run(t, new(DocumentRepositorySuite))
}
