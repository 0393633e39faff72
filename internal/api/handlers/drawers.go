package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Lassehoutenbos/PartManager/internal/models"
	"github.com/Lassehoutenbos/PartManager/internal/repositories"
	"github.com/Lassehoutenbos/PartManager/internal/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GET /api/drawers
func GetDrawers(w http.ResponseWriter, r *http.Request) {
	drawers := []models.Drawer{}
	if err := repositories.DB.Preload("Parts").Find(&drawers).Error; err != nil {
		utils.JSONMessage(w, http.StatusInternalServerError, "Database query failed")
		return
	}

	utils.JSONResponse(w, http.StatusOK, drawers)
}

// GET /api/drawers/{id}
func GetDrawer(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		utils.JSONMessage(w, http.StatusBadRequest, "Invalid drawer id")
		return
	}

	var drawer models.Drawer
	err := repositories.DB.Preload("Parts").First(&drawer, id).Error

	switch err {
	case nil:
		utils.JSONResponse(w, http.StatusOK, drawer)
	case gorm.ErrRecordNotFound:
		w.WriteHeader(http.StatusNotFound)
	default:
		utils.JSONMessage(w, http.StatusInternalServerError, "Database query failed")
	}
}

// POST /api/drawers
func CreateDrawer(w http.ResponseWriter, r *http.Request) {
	var drawer models.Drawer
	if err := json.NewDecoder(r.Body).Decode(&drawer); err != nil {
		utils.JSONMessage(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if strings.TrimSpace(drawer.Name) == "" {
		utils.JSONMessage(w, http.StatusBadRequest, "Name is required")
		return
	}

	drawer.ID = 0
	drawer.Parts = nil

	err := repositories.DB.Omit(clause.Associations).Create(&drawer).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		utils.JSONMessage(w, http.StatusConflict, "NFC tag or QR code is already in use")
		return
	}
	if err != nil {
		utils.JSONMessage(w, http.StatusInternalServerError, "Database insert failed")
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/drawers/%d", drawer.ID))
	utils.JSONResponse(w, http.StatusCreated, drawer)
}

// PUT /api/drawers/{id}
func UpdateDrawer(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		utils.JSONMessage(w, http.StatusBadRequest, "Invalid drawer id")
		return
	}

	var drawer models.Drawer
	if err := json.NewDecoder(r.Body).Decode(&drawer); err != nil {
		utils.JSONMessage(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if drawer.ID != id {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(drawer.Name) == "" {
		utils.JSONMessage(w, http.StatusBadRequest, "Name is required")
		return
	}

	var existing models.Drawer
	if err := repositories.DB.First(&existing, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			w.WriteHeader(http.StatusNotFound)
		} else {
			utils.JSONMessage(w, http.StatusInternalServerError, "Database query failed")
		}
		return
	}

	res := repositories.DB.Model(&models.Drawer{}).Where("id = ?", id).Updates(map[string]any{
		"name":        drawer.Name,
		"location":    drawer.Location,
		"type":        drawer.Type,
		"grid_x":      drawer.GridX,
		"grid_y":      drawer.GridY,
		"grid_width":  drawer.GridWidth,
		"grid_height": drawer.GridHeight,
		"description": drawer.Description,
		"nfc_tag_id":  drawer.NfcTagID,
		"qr_code":     drawer.QrCode,
	})
	if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
		utils.JSONMessage(w, http.StatusConflict, "NFC tag or QR code is already in use")
		return
	}
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

// DELETE /api/drawers/{id}
//
// Parts stored in the drawer are kept; the store nulls their drawer
// reference.
func DeleteDrawer(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		utils.JSONMessage(w, http.StatusBadRequest, "Invalid drawer id")
		return
	}

	var drawer models.Drawer
	err := repositories.DB.First(&drawer, id).Error
	switch err {
	case nil:
	case gorm.ErrRecordNotFound:
		w.WriteHeader(http.StatusNotFound)
		return
	default:
		utils.JSONMessage(w, http.StatusInternalServerError, "Database query failed")
		return
	}

	if err := repositories.DB.Delete(&models.Drawer{}, id).Error; err != nil {
		utils.JSONMessage(w, http.StatusInternalServerError, "Database delete failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
