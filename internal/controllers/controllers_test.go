package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func vehicleColumns() []string {
	return []string{"vehicle_id", "make", "model", "year", "registration_number", "status", "mileage", "fuel_type", "created_at", "updated_at"}
}

func TestVehicleGetNotFoundReturns404(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, mock := newMockDB(t)
	ctl := NewVehicleController(db)

	r := gin.New()
	r.GET("/vehicles/:id", ctl.Get)

	mock.ExpectQuery(`SELECT \* FROM "vehicles" WHERE`).
		WillReturnRows(sqlmock.NewRows(vehicleColumns()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/vehicles/42", nil))

	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"error": "Vehicle not found"}`, w.Body.String())
}

func TestVehicleGetReturnsEntity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, mock := newMockDB(t)
	ctl := NewVehicleController(db)

	r := gin.New()
	r.GET("/vehicles/:id", ctl.Get)

	mock.ExpectQuery(`SELECT \* FROM "vehicles" WHERE`).
		WillReturnRows(sqlmock.NewRows(vehicleColumns()).
			AddRow(1, "Toyota", "Corolla", 2019, "KAA 123", "active", 1000, "petrol", time.Now(), time.Now()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/vehicles/1", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.EqualValues(t, 1, body["vehicle_id"])
	require.Equal(t, "Toyota", body["make"])
}

func TestVehicleCreateRejectsMalformedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, _ := newMockDB(t)
	ctl := NewVehicleController(db)

	r := gin.New()
	r.POST("/vehicles", ctl.Create)

	// Missing required fields never reaches the database.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/vehicles", strings.NewReader(`{"make": "Toyota"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTripLogCreateBadReferenceReturns400(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, mock := newMockDB(t)
	ctl := NewTripLogController(db)

	r := gin.New()
	r.POST("/trip_logs", ctl.Create)

	mock.ExpectQuery(`SELECT \* FROM "vehicles" WHERE`).
		WillReturnRows(sqlmock.NewRows(vehicleColumns()))

	body := `{"vehicle_id": 99999, "driver_id": 1, "route_id": 1, "start_time": "2025-03-01T08:00:00Z", "status": "ongoing"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/trip_logs", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.JSONEq(t, `{"error": "Assigned vehicle does not exist"}`, w.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRouteSearchEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, mock := newMockDB(t)
	ctl := NewRouteController(db)

	r := gin.New()
	r.GET("/routes/search", ctl.Search)

	routeRows := sqlmock.NewRows([]string{"route_id", "origin", "destination", "distance", "estimated_duration"})
	for i := 11; i <= 20; i++ {
		routeRows.AddRow(uint(i), "A", "B", 12.5, 30)
	}
	mock.ExpectQuery(`SELECT count\(\*\) FROM "routes"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))
	mock.ExpectQuery(`SELECT \* FROM "routes"`).
		WillReturnRows(routeRows)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/routes/search?page=2&per_page=10", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Page        int              `json:"page"`
		PerPage     int              `json:"per_page"`
		TotalRoutes int64            `json:"total_routes"`
		Routes      []map[string]any `json:"routes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, 2, body.Page)
	require.Equal(t, 10, body.PerPage)
	require.EqualValues(t, 25, body.TotalRoutes)
	require.Len(t, body.Routes, 10)
	require.EqualValues(t, 11, body.Routes[0]["route_id"])
}

func TestRouteSearchSortJSONParam(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, mock := newMockDB(t)
	ctl := NewRouteController(db)

	r := gin.New()
	r.GET("/routes/search", ctl.Search)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "routes"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "routes" ORDER BY destination DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"route_id", "origin", "destination", "distance", "estimated_duration"}).
			AddRow(1, "A", "B", 12.5, 30))

	target := "/routes/search?sort=" + url.QueryEscape(`{"sort_by": "destination", "order": "desc"}`)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRouteSearchFlatSortOverridesSortJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, mock := newMockDB(t)
	ctl := NewRouteController(db)

	r := gin.New()
	r.GET("/routes/search", ctl.Search)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "routes"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT \* FROM "routes" ORDER BY origin ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"route_id", "origin", "destination", "distance", "estimated_duration"}))

	target := "/routes/search?sortBy=origin&sortOrder=asc&sort=" + url.QueryEscape(`{"sort_by": "destination", "order": "desc"}`)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVehicleUpdateNotFoundReturns404(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, mock := newMockDB(t)
	ctl := NewVehicleController(db)

	r := gin.New()
	r.PUT("/vehicles/:id", ctl.Update)

	mock.ExpectQuery(`SELECT \* FROM "vehicles" WHERE`).
		WillReturnRows(sqlmock.NewRows(vehicleColumns()))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/vehicles/99", strings.NewReader(`{"status": "parked"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"error": "Vehicle not found"}`, w.Body.String())
}
