package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"restaurant-pos-api/config"
	"restaurant-pos-api/handlers"
	"restaurant-pos-api/models"
	"restaurant-pos-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupRouter wires the full route table against a fresh in-memory
// database so tests exercise real HTTP handling end to end.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	// Every pooled connection to :memory: would get its own database;
	// pin the pool to one connection so all queries share the schema.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("database handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := config.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	config.DB = db

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func seedTable(t *testing.T, name string) models.Table {
	t.Helper()
	table := models.Table{Name: name, Status: models.TableAvailable}
	if err := config.DB.Create(&table).Error; err != nil {
		t.Fatalf("seed table: %v", err)
	}
	return table
}

func seedMenuItem(t *testing.T, name, price string, category models.MenuCategory, available bool) models.MenuItem {
	t.Helper()
	item := models.MenuItem{
		Name:     name,
		Price:    decimal.RequireFromString(price),
		Category: category,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		t.Fatalf("seed menu item: %v", err)
	}
	// The column defaults to true; an explicit update is needed to
	// seed an unavailable item.
	if !available {
		if err := config.DB.Model(&item).Update("is_available", false).Error; err != nil {
			t.Fatalf("seed menu item availability: %v", err)
		}
		item.IsAvailable = false
	} else {
		item.IsAvailable = true
	}
	return item
}

func reloadTable(t *testing.T, id uint) models.Table {
	t.Helper()
	var table models.Table
	if err := config.DB.First(&table, id).Error; err != nil {
		t.Fatalf("reload table %d: %v", id, err)
	}
	return table
}

func countRows(t *testing.T, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := config.DB.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return n
}

// Shared response envelopes

type orderEnvelope struct {
	Message string                 `json:"message"`
	Order   handlers.OrderResponse `json:"order"`
}

type paymentEnvelope struct {
	Message string                   `json:"message"`
	Payment handlers.PaymentResponse `json:"payment"`
}

func wantDecimal(t *testing.T, field string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Errorf("%s = %s, want %s", field, got, want)
	}
}
