package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/Lassehoutenbos/PartManager/internal/models"
	"github.com/Lassehoutenbos/PartManager/internal/repositories"
	"github.com/Lassehoutenbos/PartManager/internal/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GET /api/parts
// GetParts godoc
// @Summary List all parts
// @Description Returns every part with its drawer, category and attachments.
// @Tags Parts
// @Produce json
// @Success 200 {array} models.Part
// @Router /api/parts [get]
func GetParts(w http.ResponseWriter, r *http.Request) {
	parts := []models.Part{}
	err := repositories.DB.
		Preload("Drawer").
		Preload("Category").
		Preload("Attachments").
		Find(&parts).Error
	if err != nil {
		utils.JSONMessage(w, http.StatusInternalServerError, "Database query failed")
		return
	}

	utils.JSONResponse(w, http.StatusOK, parts)
}

// GET /api/parts/{id}
func GetPart(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		utils.JSONMessage(w, http.StatusBadRequest, "Invalid part id")
		return
	}

	var part models.Part
	err := repositories.DB.
		Preload("Drawer").
		Preload("Category").
		Preload("Attachments").
		First(&part, id).Error

	switch err {
	case nil:
		utils.JSONResponse(w, http.StatusOK, part)
	case gorm.ErrRecordNotFound:
		w.WriteHeader(http.StatusNotFound)
	default:
		utils.JSONMessage(w, http.StatusInternalServerError, "Database query failed")
	}
}

// POST /api/parts
// CreatePart godoc
// @Summary Create a part
// @Tags Parts
// @Accept json
// @Produce json
// @Success 201 {object} models.Part
// @Failure 400 "Name missing or body invalid"
// @Router /api/parts [post]
func CreatePart(w http.ResponseWriter, r *http.Request) {
	var part models.Part
	if err := json.NewDecoder(r.Body).Decode(&part); err != nil {
		utils.JSONMessage(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if strings.TrimSpace(part.Name) == "" {
		utils.JSONMessage(w, http.StatusBadRequest, "Name is required")
		return
	}

	// Identity and timestamps are server-owned; nested objects are ignored
	// so a stale client payload cannot create rows as a side effect.
	now := time.Now().UTC()
	part.ID = 0
	part.CreatedAt = now
	part.UpdatedAt = now
	part.Drawer = nil
	part.Category = nil
	part.Attachments = nil

	if err := repositories.DB.Omit(clause.Associations).Create(&part).Error; err != nil {
		utils.JSONMessage(w, http.StatusInternalServerError, "Database insert failed")
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/parts/%d", part.ID))
	utils.JSONResponse(w, http.StatusCreated, part)
}

// PUT /api/parts/{id}
//
// Wholesale replacement: every mutable field is overwritten from the body.
// Partial updates are not supported.
func UpdatePart(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		utils.JSONMessage(w, http.StatusBadRequest, "Invalid part id")
		return
	}

	var part models.Part
	if err := json.NewDecoder(r.Body).Decode(&part); err != nil {
		utils.JSONMessage(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if part.ID != id {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(part.Name) == "" {
		utils.JSONMessage(w, http.StatusBadRequest, "Name is required")
		return
	}

	var existing models.Part
	if err := repositories.DB.First(&existing, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			w.WriteHeader(http.StatusNotFound)
		} else {
			utils.JSONMessage(w, http.StatusInternalServerError, "Database query failed")
		}
		return
	}

	res := repositories.DB.Model(&models.Part{}).Where("id = ?", id).Updates(map[string]any{
		"name":                     part.Name,
		"description":              part.Description,
		"part_number":              part.PartNumber,
		"manufacturer":             part.Manufacturer,
		"manufacturer_part_number": part.ManufacturerPartNumber,
		"package":                  part.Package,
		"footprint":                part.Footprint,
		"value":                    part.Value,
		"tolerance":                part.Tolerance,
		"voltage":                  part.Voltage,
		"current":                  part.Current,
		"power":                    part.Power,
		"temperature":              part.Temperature,
		"notes":                    part.Notes,
		"quantity":                 part.Quantity,
		"min_quantity":             part.MinQuantity,
		"drawer_id":                part.DrawerID,
		"category_id":              part.CategoryID,
		"nfc_tag_id":               part.NfcTagID,
		"qr_code":                  part.QrCode,
		"updated_at":               time.Now().UTC(),
	})
	if res.Error != nil {
		utils.JSONMessage(w, http.StatusInternalServerError, "Database update failed")
		return
	}
	// Row deleted between the existence check and the commit.
	if res.RowsAffected == 0 {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DELETE /api/parts/{id}
//
// Removes the part, its attachment rows (store cascade) and their backing
// files. File deletion is best effort.
func DeletePart(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		utils.JSONMessage(w, http.StatusBadRequest, "Invalid part id")
		return
	}

	var part models.Part
	err := repositories.DB.Preload("Attachments").First(&part, id).Error
	switch err {
	case nil:
	case gorm.ErrRecordNotFound:
		w.WriteHeader(http.StatusNotFound)
		return
	default:
		utils.JSONMessage(w, http.StatusInternalServerError, "Database query failed")
		return
	}

	for _, att := range part.Attachments {
		_ = repositories.Files.Delete(r.Context(), attachmentKey(att))
	}

	if err := repositories.DB.Delete(&models.Part{}, id).Error; err != nil {
		utils.JSONMessage(w, http.StatusInternalServerError, "Database delete failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// attachmentKey recovers the blob storage key from an attachment's public
// download URL, which is stable across storage drivers.
func attachmentKey(att models.PartAttachment) string {
	return path.Base(att.FileURL)
}
