package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"time"

	"github.com/Lassehoutenbos/PartManager/internal/models"
	"github.com/Lassehoutenbos/PartManager/internal/repositories"
	"github.com/Lassehoutenbos/PartManager/internal/storage"
	"github.com/Lassehoutenbos/PartManager/internal/utils"
	"gorm.io/gorm"
)

// GET /api/attachments/part/{partId}
//
// A part id with no attachments (or no part at all) yields an empty array.
func GetPartAttachments(w http.ResponseWriter, r *http.Request) {
	partID, ok := parseID(r, "partId")
	if !ok {
		utils.JSONMessage(w, http.StatusBadRequest, "Invalid part id")
		return
	}

	attachments := []models.PartAttachment{}
	if err := repositories.DB.Where("part_id = ?", partID).Find(&attachments).Error; err != nil {
		utils.JSONMessage(w, http.StatusInternalServerError, "Database query failed")
		return
	}

	utils.JSONResponse(w, http.StatusOK, attachments)
}

// POST /api/attachments/part/{partId}/upload
// UploadAttachment godoc
// @Summary Upload an attachment for a part
// @Tags Attachments
// @Accept multipart/form-data
// @Produce json
// @Param partId path int true "Part ID"
// @Param file formData file true "File to attach"
// @Param description formData string false "Description"
// @Param type formData string false "Attachment type (integer value or name, default other)"
// @Success 201 {object} models.PartAttachment
// @Failure 400 "No file provided"
// @Failure 404 "Part not found"
// @Router /api/attachments/part/{partId}/upload [post]
func UploadAttachment(w http.ResponseWriter, r *http.Request) {
	partID, ok := parseID(r, "partId")
	if !ok {
		utils.JSONMessage(w, http.StatusBadRequest, "Invalid part id")
		return
	}

	var part models.Part
	err := repositories.DB.First(&part, partID).Error
	switch err {
	case nil:
	case gorm.ErrRecordNotFound:
		w.WriteHeader(http.StatusNotFound)
		return
	default:
		utils.JSONMessage(w, http.StatusInternalServerError, "Database query failed")
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.JSONMessage(w, http.StatusBadRequest, "Invalid file upload form")
		return
	}

	src, header, err := r.FormFile("file")
	if err != nil || header.Size == 0 {
		utils.JSONMessage(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer src.Close()

	// Collision-resistant storage name; the original extension is kept so the
	// browser can sniff a sensible type on direct download.
	key := fmt.Sprintf("%d_%s%s", partID, utils.RandomHex(), filepath.Ext(header.Filename))

	// The blob is written before the metadata row. A crash between the two
	// leaves an orphaned blob, never a dangling record.
	location, size, err := repositories.Files.Save(r.Context(), key, src)
	if err != nil {
		utils.JSONMessage(w, http.StatusInternalServerError, "Failed to store file")
		return
	}

	attachment := models.PartAttachment{
		PartID:     partID,
		FileName:   header.Filename,
		FilePath:   location,
		FileURL:    "/api/attachments/download/" + key,
		Type:       models.ParseAttachmentType(r.FormValue("type")),
		FileSize:   size,
		UploadedAt: time.Now().UTC(),
	}
	if ct := header.Header.Get("Content-Type"); ct != "" {
		attachment.ContentType = &ct
	}
	if desc := r.FormValue("description"); desc != "" {
		attachment.Description = &desc
	}

	if err := repositories.DB.Create(&attachment).Error; err != nil {
		utils.JSONMessage(w, http.StatusInternalServerError, "Database insert failed")
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/attachments/part/%d", partID))
	utils.JSONResponse(w, http.StatusCreated, attachment)
}

// GET /api/attachments/download/{fileName}
func DownloadAttachment(w http.ResponseWriter, r *http.Request) {
	fileName := r.PathValue("fileName")

	blob, err := repositories.Files.Open(r.Context(), fileName)
	if errors.Is(err, storage.ErrNotExist) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err != nil {
		utils.JSONMessage(w, http.StatusInternalServerError, "Failed to read file")
		return
	}
	defer blob.Close()

	// Recover the original name and content type; a blob without a metadata
	// row still downloads, just with generic headers.
	contentType := "application/octet-stream"
	downloadName := fileName

	var attachment models.PartAttachment
	if err := repositories.DB.Where("file_url = ?", "/api/attachments/download/"+fileName).First(&attachment).Error; err == nil {
		if attachment.ContentType != nil && *attachment.ContentType != "" {
			contentType = *attachment.ContentType
		}
		if attachment.FileName != "" {
			downloadName = attachment.FileName
		}
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", downloadName))
	w.WriteHeader(http.StatusOK)
	_, _ = io.Copy(w, blob)
}

// DELETE /api/attachments/{id}
func DeleteAttachment(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		utils.JSONMessage(w, http.StatusBadRequest, "Invalid attachment id")
		return
	}

	var attachment models.PartAttachment
	err := repositories.DB.First(&attachment, id).Error
	switch err {
	case nil:
	case gorm.ErrRecordNotFound:
		w.WriteHeader(http.StatusNotFound)
		return
	default:
		utils.JSONMessage(w, http.StatusInternalServerError, "Database query failed")
		return
	}

	// Best effort: a blob that is already gone does not block row removal.
	_ = repositories.Files.Delete(r.Context(), attachmentKey(attachment))

	if err := repositories.DB.Delete(&models.PartAttachment{}, id).Error; err != nil {
		utils.JSONMessage(w, http.StatusInternalServerError, "Database delete failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
