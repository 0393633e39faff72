package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Lassehoutenbos/PartManager/internal/models"
	"github.com/Lassehoutenbos/PartManager/internal/repositories"
	"github.com/Lassehoutenbos/PartManager/internal/utils"
	"gorm.io/gorm"
)

// WriteTagRequest carries the tag identifier read from a physical NFC tag.
type WriteTagRequest struct {
	TagID string `json:"tagId"`
}

// GET /api/nfc/scan/{tagId}
// ScanNfcTag godoc
// @Summary Resolve an NFC tag to a drawer or part
// @Tags Nfc
// @Produce json
// @Param tagId path string true "NFC tag identifier"
// @Success 200 {object} handlers.ScanResult
// @Failure 404 "Tag not assigned to anything"
// @Router /api/nfc/scan/{tagId} [get]
func ScanNfcTag(w http.ResponseWriter, r *http.Request) {
	result, err := findByTag(repositories.DB, "nfc_tag_id", r.PathValue("tagId"))
	if err != nil {
		utils.JSONMessage(w, http.StatusInternalServerError, "Database query failed")
		return
	}
	if result == nil {
		utils.JSONMessage(w, http.StatusNotFound, "NFC tag not found")
		return
	}

	utils.JSONResponse(w, http.StatusOK, result)
}

// POST /api/nfc/write/drawer/{drawerId}
func WriteDrawerNfcTag(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "drawerId")
	if !ok {
		utils.JSONMessage(w, http.StatusBadRequest, "Invalid drawer id")
		return
	}

	var req WriteTagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONMessage(w, http.StatusBadRequest, "Invalid input")
		return
	}

	res := repositories.DB.Model(&models.Drawer{}).Where("id = ?", id).Update("nfc_tag_id", req.TagID)
	if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
		utils.JSONMessage(w, http.StatusConflict, "NFC tag is already assigned to another drawer")
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

	utils.JSONMessage(w, http.StatusOK, "NFC tag assigned to drawer")
}

// POST /api/nfc/write/part/{partId}
func WritePartNfcTag(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "partId")
	if !ok {
		utils.JSONMessage(w, http.StatusBadRequest, "Invalid part id")
		return
	}

	var req WriteTagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONMessage(w, http.StatusBadRequest, "Invalid input")
		return
	}

	res := repositories.DB.Model(&models.Part{}).Where("id = ?", id).Update("nfc_tag_id", req.TagID)
	if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
		utils.JSONMessage(w, http.StatusConflict, "NFC tag is already assigned")
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

	utils.JSONMessage(w, http.StatusOK, "NFC tag assigned to part")
}
