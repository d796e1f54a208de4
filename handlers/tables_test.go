package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"restaurant-pos-api/models"

	"github.com/gin-gonic/gin"
)

func TestListTables_StableIDOrder(t *testing.T) {
	r := setupRouter(t)
	first := seedTable(t, "Window 1")
	second := seedTable(t, "Patio 2")

	w := doRequest(t, r, http.MethodGet, "/tables/", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		Count  int            `json:"count"`
		Tables []models.Table `json:"tables"`
	}
	decodeBody(t, w, &resp)

	if resp.Count != 2 || len(resp.Tables) != 2 {
		t.Fatalf("count = %d, tables = %d, want 2", resp.Count, len(resp.Tables))
	}
	if resp.Tables[0].ID != first.ID || resp.Tables[1].ID != second.ID {
		t.Errorf("tables not in id order: got %d, %d", resp.Tables[0].ID, resp.Tables[1].ID)
	}
}

func TestOccupyTable(t *testing.T) {
	r := setupRouter(t)
	table := seedTable(t, "Window 1")

	w := doRequest(t, r, http.MethodPost, fmt.Sprintf("/tables/%d/occupy/", table.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("first occupy: status = %d, want 200, body %s", w.Code, w.Body.String())
	}
	if got := reloadTable(t, table.ID).Status; got != models.TableOccupied {
		t.Errorf("table status = %s, want occupied", got)
	}

	// Occupying again conflicts
	w = doRequest(t, r, http.MethodPost, fmt.Sprintf("/tables/%d/occupy/", table.ID), nil)
	if w.Code != http.StatusConflict {
		t.Errorf("second occupy: status = %d, want 409", w.Code)
	}

	w = doRequest(t, r, http.MethodPost, "/tables/999/occupy/", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown table: status = %d, want 404", w.Code)
	}
}

func TestCreateTable(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(t, r, http.MethodPost, "/admin/tables/", gin.H{"name": "Window 1"})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", w.Code, w.Body.String())
	}

	// Duplicate name conflicts
	w = doRequest(t, r, http.MethodPost, "/admin/tables/", gin.H{"name": "Window 1"})
	if w.Code != http.StatusConflict {
		t.Errorf("duplicate name: status = %d, want 409", w.Code)
	}

	// Missing name is rejected
	w = doRequest(t, r, http.MethodPost, "/admin/tables/", gin.H{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing name: status = %d, want 400", w.Code)
	}
}

func TestDeleteTable(t *testing.T) {
	r := setupRouter(t)
	busy := seedTable(t, "Window 1")
	idle := seedTable(t, "Patio 2")
	burger := seedMenuItem(t, "Burger", "5.00", models.CategoryFood, true)

	w := doRequest(t, r, http.MethodPost, "/orders/", gin.H{
		"table_id": busy.ID,
		"items":    []gin.H{{"menu_id": burger.ID, "qty": 1}},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create order: status = %d, body %s", w.Code, w.Body.String())
	}

	// Referenced tables cannot be deleted
	w = doRequest(t, r, http.MethodDelete, fmt.Sprintf("/admin/tables/%d/", busy.ID), nil)
	if w.Code != http.StatusConflict {
		t.Errorf("delete referenced table: status = %d, want 409", w.Code)
	}

	w = doRequest(t, r, http.MethodDelete, fmt.Sprintf("/admin/tables/%d/", idle.ID), nil)
	if w.Code != http.StatusOK {
		t.Errorf("delete unreferenced table: status = %d, want 200", w.Code)
	}

	w = doRequest(t, r, http.MethodDelete, "/admin/tables/999/", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("delete unknown table: status = %d, want 404", w.Code)
	}
}
