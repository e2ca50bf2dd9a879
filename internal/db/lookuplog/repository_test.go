package lookuplog_test

import (
	"context"
	"database/sql"
	"errors"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"testing"
	"time"
	"ulascansenturk/city-weather/internal/db/lookuplog"
)

type LookupRepositorySuite struct {
	suite.Suite
	DB   *gorm.DB
	mock sqlmock.Sqlmock
	repo lookuplog.Repository
	ctx  context.Context
}

func (s *LookupRepositorySuite) SetupSuite() {
	var err error

	var db *sql.DB
	db, s.mock, err = sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	s.Require().NoError(err)

	dialector := postgres.New(postgres.Config{
		DSN:                  "sqlmock_db_0",
		DriverName:           "postgres",
		Conn:                 db,
		PreferSimpleProtocol: true,
	})

	s.DB, err = gorm.Open(dialector, &gorm.Config{})
	s.Require().NoError(err)

	s.repo = lookuplog.NewRepository(s.DB)
	s.ctx = context.Background()
}

func (s *LookupRepositorySuite) TearDownTest() {
	s.Require().NoError(s.mock.ExpectationsWereMet())
}

func ptr(v float64) *float64 {
	return &v
}

func (s *LookupRepositorySuite) TestLogLookup() {
	s.Run("Successfully logs a successful lookup", func() {
		record := &lookuplog.LookupRecord{
			LookupID:    "3f0c1a52-7a55-4a53-8a2e-3a9f3c8a1d10",
			City:        "London",
			Latitude:    ptr(51.5074),
			Longitude:   ptr(-0.1278),
			Temperature: ptr(15.2),
			Outcome:     lookuplog.OutcomeSuccess,
			Detail:      "15 Celsius now in London",
			DurationMs:  42,
		}

		s.mock.ExpectBegin()
		s.mock.ExpectQuery(`INSERT INTO "lookup_records"`).
			WithArgs(
				record.LookupID,
				"London",
				sqlmock.AnyArg(),
				sqlmock.AnyArg(),
				sqlmock.AnyArg(),
				lookuplog.OutcomeSuccess,
				"15 Celsius now in London",
				int64(42),
				sqlmock.AnyArg(),
			).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		s.mock.ExpectCommit()

		err := s.repo.LogLookup(s.ctx, record)

		s.Require().NoError(err)
		s.Require().Equal(uint(1), record.ID)
		s.Require().False(record.CreatedAt.IsZero())
	})

	s.Run("Returns error when database operation fails", func() {
		record := &lookuplog.LookupRecord{
			LookupID: "9d1f6f0e-2b1c-4f51-9a43-9d3c39a0f5e2",
			City:     "InvalidCityName12345",
			Outcome:  "not_found",
			Detail:   "Error getting weather for 'InvalidCityName12345': City 'InvalidCityName12345' not found",
		}
		dbError := errors.New("database error")

		s.mock.ExpectBegin()
		s.mock.ExpectQuery(`INSERT INTO "lookup_records"`).
			WithArgs(
				record.LookupID,
				record.City,
				nil,
				nil,
				nil,
				"not_found",
				record.Detail,
				int64(0),
				sqlmock.AnyArg(),
			).
			WillReturnError(dbError)
		s.mock.ExpectRollback()

		err := s.repo.LogLookup(s.ctx, record)

		s.Require().Error(err)
		s.Require().Equal("database error", err.Error())
	})
}

func (s *LookupRepositorySuite) TestRecentLookups() {
	columns := []string{
		"id", "lookup_id", "city", "latitude", "longitude", "temperature",
		"outcome", "detail", "duration_ms", "created_at",
	}

	s.Run("Returns the newest lookups for a city", func() {
		createdAt := time.Now()

		rows := sqlmock.NewRows(columns).
			AddRow(2, "b", "Paris", 48.85, 2.35, 18.4, "success", "18 Celsius now in Paris", 31, createdAt).
			AddRow(1, "a", "Paris", nil, nil, nil, "upstream_error", "Error getting weather for 'Paris': boom", 10, createdAt.Add(-time.Minute))

		s.mock.ExpectQuery(`SELECT \* FROM "lookup_records" WHERE city = \$1 ORDER BY created_at DESC LIMIT \$2`).
			WithArgs("Paris", 5).
			WillReturnRows(rows)

		records, err := s.repo.RecentLookups(s.ctx, "Paris", 5)

		s.Require().NoError(err)
		s.Require().Len(records, 2)
		s.Require().Equal("success", records[0].Outcome)
		s.Require().NotNil(records[0].Temperature)
		s.Require().Equal(18.4, *records[0].Temperature)
		s.Require().Nil(records[1].Latitude)
		s.Require().Equal("upstream_error", records[1].Outcome)
	})

	s.Run("Uses the default limit and no city filter", func() {
		s.mock.ExpectQuery(`SELECT \* FROM "lookup_records" ORDER BY created_at DESC LIMIT \$1`).
			WithArgs(lookuplog.DefaultRecentLimit).
			WillReturnRows(sqlmock.NewRows(columns))

		records, err := s.repo.RecentLookups(s.ctx, "", 0)

		s.Require().NoError(err)
		s.Require().Empty(records)
	})

	s.Run("Returns error when database query fails", func() {
		dbError := errors.New("connection error")

		s.mock.ExpectQuery(`SELECT \* FROM "lookup_records" WHERE city = \$1`).
			WithArgs("Berlin", 3).
			WillReturnError(dbError)

		records, err := s.repo.RecentLookups(s.ctx, "Berlin", 3)

		s.Require().Error(err)
		s.Require().Equal("connection error", err.Error())
		s.Require().Nil(records)
	})
}

func TestLookupRepositorySuite(t *testing.T) {
	suite.Run(t, new(LookupRepositorySuite))
}
