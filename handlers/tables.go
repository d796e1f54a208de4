package handlers

import (
	"net/http"

	"restaurant-pos-api/config"
	"restaurant-pos-api/models"
	"restaurant-pos-api/statemachine"

	"github.com/gin-gonic/gin"
)

// ListTables returns all tables in stable id order
func ListTables(c *gin.Context) {
	var tables []models.Table
	config.DB.Order("id").Find(&tables)
	c.JSON(http.StatusOK, gin.H{"count": len(tables), "tables": tables})
}

// OccupyTable marks a table as occupied (e.g. walk-in guests seated
// before anything is ordered)
func OccupyTable(c *gin.Context) {
	var table models.Table
	if err := config.DB.First(&table, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Table not found"})
		return
	}

	if err := statemachine.CanTableTransition(table.Status, models.TableOccupied); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Table is already occupied"})
		return
	}

	config.DB.Model(&table).Update("status", models.TableOccupied)
	c.JSON(http.StatusOK, gin.H{"message": "Table occupied", "table": table})
}

type CreateTableRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateTable registers a new dining table (admin)
func CreateTable(c *gin.Context) {
	var req CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.Table
	if err := config.DB.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "A table with this name already exists"})
		return
	}

	table := models.Table{Name: req.Name, Status: models.TableAvailable}
	if err := config.DB.Create(&table).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create table"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Table created", "table": table})
}

// DeleteTable removes a table (admin). Tables referenced by any order,
// past or active, cannot be deleted.
func DeleteTable(c *gin.Context) {
	var table models.Table
	if err := config.DB.First(&table, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Table not found"})
		return
	}

	var refs int64
	config.DB.Model(&models.Order{}).Where("table_id = ?", table.ID).Count(&refs)
	if refs > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Table is referenced by existing orders"})
		return
	}

	config.DB.Delete(&table)
	c.JSON(http.StatusOK, gin.H{"message": "Table deleted"})
}
