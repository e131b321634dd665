package handlers

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jongbeom/runmate-backend/internal/dto"
	"github.com/jongbeom/runmate-backend/internal/services"
)

// failConnector yields a sql.DB whose every connection attempt fails,
// simulating a database that is down.
type failConnector struct{ err error }

func (c failConnector) Connect(context.Context) (driver.Conn, error) {
	return nil, c.err
}

func (c failConnector) Driver() driver.Driver { return failDriver(c) }

type failDriver struct{ err error }

func (d failDriver) Open(string) (driver.Conn, error) { return nil, d.err }

func newFailingDB(t *testing.T, err error) *gorm.DB {
	t.Helper()

	sqlDB := sql.OpenDB(failConnector{err: err})
	db, openErr := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	require.NoError(t, openErr)
	return db
}

func TestCreateCourseHandler_ValidationIs400(t *testing.T) {
	t.Parallel()

	h := NewCourseHandler(services.NewCourseService(nil))
	app := fiber.New()
	app.Post("/courses", h.CreateCourse)

	status, body := postJSON(t, app, "/courses", dto.CourseRequest{Name: ""})

	require.Equal(t, http.StatusBadRequest, status)
	require.Contains(t, body, "course name is required")
}

func TestCreateCourseHandler_DBFaultIsGeneric500(t *testing.T) {
	t.Parallel()

	db := newFailingDB(t, errors.New("pq: connection refused"))
	h := NewCourseHandler(services.NewCourseService(db))
	app := fiber.New()
	app.Post("/courses", h.CreateCourse)

	status, body := postJSON(t, app, "/courses", dto.CourseRequest{
		Name: "Han River Loop", Distance: 5000, Duration: 1800,
	})

	require.Equal(t, http.StatusInternalServerError, status)
	require.Contains(t, body, "Internal server error")
	require.NotContains(t, body, "connection refused")
}
