package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Lassehoutenbos/PartManager/internal/models"
	"github.com/Lassehoutenbos/PartManager/internal/repositories"
	"github.com/Lassehoutenbos/PartManager/internal/utils"
	"gorm.io/gorm"
)

// GET /api/qr/scan/{code}
func ScanQrCode(w http.ResponseWriter, r *http.Request) {
	result, err := findByTag(repositories.DB, "qr_code", r.PathValue("code"))
	if err != nil {
		utils.JSONMessage(w, http.StatusInternalServerError, "Database query failed")
		return
	}
	if result == nil {
		utils.JSONMessage(w, http.StatusNotFound, "QR code not found")
		return
	}

	utils.JSONResponse(w, http.StatusOK, result)
}

// POST /api/qr/generate/drawer/{drawerId}
//
// Safe to call repeatedly; each call overwrites the previous code.
func GenerateDrawerQrCode(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "drawerId")
	if !ok {
		utils.JSONMessage(w, http.StatusBadRequest, "Invalid drawer id")
		return
	}

	code := fmt.Sprintf("DRAWER-%d-%s", id, utils.RandomHex())

	res := repositories.DB.Model(&models.Drawer{}).Where("id = ?", id).Update("qr_code", code)
	if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
		utils.JSONMessage(w, http.StatusConflict, "Generated QR code is already in use")
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

	utils.JSONResponse(w, http.StatusOK, map[string]string{"qrCode": code})
}

// POST /api/qr/generate/part/{partId}
func GeneratePartQrCode(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "partId")
	if !ok {
		utils.JSONMessage(w, http.StatusBadRequest, "Invalid part id")
		return
	}

	code := fmt.Sprintf("PART-%d-%s", id, utils.RandomHex())

	res := repositories.DB.Model(&models.Part{}).Where("id = ?", id).Update("qr_code", code)
	if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
		utils.JSONMessage(w, http.StatusConflict, "Generated QR code is already in use")
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

	utils.JSONResponse(w, http.StatusOK, map[string]string{"qrCode": code})
}
