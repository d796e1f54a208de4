package handlers

import (
	"net/http"

	"restaurant-pos-api/config"
	"restaurant-pos-api/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ListMenu returns available items grouped by category, name-ordered
// within each group. Categories with nothing available are absent.
func ListMenu(c *gin.Context) {
	var items []models.MenuItem
	config.DB.Where("is_available = ?", true).Order("category, name").Find(&items)

	grouped := map[models.MenuCategory][]models.MenuItem{}
	for _, item := range items {
		grouped[item.Category] = append(grouped[item.Category], item)
	}
	c.JSON(http.StatusOK, grouped)
}

// ── Menu Management (admin) ─────────────────────────────────────────────────

type CreateMenuItemRequest struct {
	Name     string              `json:"name" binding:"required"`
	Price    decimal.Decimal     `json:"price" binding:"required"`
	Category models.MenuCategory `json:"category" binding:"required"`
}

// CreateMenuItem adds a new item to the menu
func CreateMenuItem(c *gin.Context) {
	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Price.Sign() <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be greater than zero"})
		return
	}
	if !req.Category.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category must be one of: food, drink, dessert"})
		return
	}

	item := models.MenuItem{
		Name:        req.Name,
		Price:       req.Price,
		Category:    req.Category,
		IsAvailable: true,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add menu item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Menu item added", "item": item})
}

// UpdateMenuItem updates a menu item; this is also the availability
// toggle (set "is_available" to pull an item off the menu without
// touching orders that already snapshot its price)
func UpdateMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.First(&item, c.Param("itemId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Only allow safe fields
	allowed := map[string]bool{"name": true, "price": true, "category": true, "is_available": true}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	if cat, ok := update["category"].(string); ok && !models.MenuCategory(cat).Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category must be one of: food, drink, dessert"})
		return
	}

	config.DB.Model(&item).Updates(update)
	config.DB.First(&item, item.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Menu item updated", "item": item})
}

// DeleteMenuItem removes a menu item. Items referenced by any order
// line cannot be deleted; toggle availability instead.
func DeleteMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.First(&item, c.Param("itemId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	var refs int64
	config.DB.Model(&models.OrderItem{}).Where("menu_item_id = ?", item.ID).Count(&refs)
	if refs > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Menu item is referenced by existing orders"})
		return
	}

	config.DB.Delete(&item)
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}
