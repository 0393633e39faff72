package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/Lassehoutenbos/PartManager/internal/models"
	"github.com/Lassehoutenbos/PartManager/internal/repositories"
	"github.com/Lassehoutenbos/PartManager/internal/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GET /api/categories
func GetCategories(w http.ResponseWriter, r *http.Request) {
	categories := []models.Category{}
	if err := repositories.DB.Preload("Parts").Find(&categories).Error; err != nil {
		utils.JSONMessage(w, http.StatusInternalServerError, "Database query failed")
		return
	}

	utils.JSONResponse(w, http.StatusOK, categories)
}

// GET /api/categories/{id}
func GetCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		utils.JSONMessage(w, http.StatusBadRequest, "Invalid category id")
		return
	}

	var category models.Category
	err := repositories.DB.Preload("Parts").First(&category, id).Error

	switch err {
	case nil:
		utils.JSONResponse(w, http.StatusOK, category)
	case gorm.ErrRecordNotFound:
		w.WriteHeader(http.StatusNotFound)
	default:
		utils.JSONMessage(w, http.StatusInternalServerError, "Database query failed")
	}
}

// POST /api/categories
func CreateCategory(w http.ResponseWriter, r *http.Request) {
	var category models.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		utils.JSONMessage(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if strings.TrimSpace(category.Name) == "" {
		utils.JSONMessage(w, http.StatusBadRequest, "Name is required")
		return
	}

	category.ID = 0
	category.Parts = nil

	if err := repositories.DB.Omit(clause.Associations).Create(&category).Error; err != nil {
		utils.JSONMessage(w, http.StatusInternalServerError, "Database insert failed")
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/categories/%d", category.ID))
	utils.JSONResponse(w, http.StatusCreated, category)
}

// PUT /api/categories/{id}
func UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		utils.JSONMessage(w, http.StatusBadRequest, "Invalid category id")
		return
	}

	var category models.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		utils.JSONMessage(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if category.ID != id {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(category.Name) == "" {
		utils.JSONMessage(w, http.StatusBadRequest, "Name is required")
		return
	}

	var existing models.Category
	if err := repositories.DB.First(&existing, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			w.WriteHeader(http.StatusNotFound)
		} else {
			utils.JSONMessage(w, http.StatusInternalServerError, "Database query failed")
		}
		return
	}

	res := repositories.DB.Model(&models.Category{}).Where("id = ?", id).Updates(map[string]any{
		"name":        category.Name,
		"description": category.Description,
	})
	if res.Error != nil {
		utils.JSONMessage(w, http.StatusInternalServerError, "Database update failed")
		return
	}
	if res.RowsAffected == 0 {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DELETE /api/categories/{id}
func DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		utils.JSONMessage(w, http.StatusBadRequest, "Invalid category id")
		return
	}

	var category models.Category
	err := repositories.DB.First(&category, id).Error
	switch err {
	case nil:
	case gorm.ErrRecordNotFound:
		w.WriteHeader(http.StatusNotFound)
		return
	default:
		utils.JSONMessage(w, http.StatusInternalServerError, "Database query failed")
		return
	}

	if err := repositories.DB.Delete(&models.Category{}, id).Error; err != nil {
		utils.JSONMessage(w, http.StatusInternalServerError, "Database delete failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
