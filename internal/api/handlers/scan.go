package handlers

import (
	"github.com/Lassehoutenbos/PartManager/internal/models"
	"gorm.io/gorm"
)

// ScanResult is the tagged union returned by the NFC and QR scan endpoints.
// A single physical tag can be stuck on a drawer or on an individual part,
// so the caller discriminates on Type.
type ScanResult struct {
	Type string `json:"type"` // "drawer" or "part"
	Data any    `json:"data"`
}

// findByTag resolves a scanned tag against the given column (nfc_tag_id or
// qr_code). Drawers are probed first; drawer tags are unique, part tags are
// not, so a tag present on both resolves to the drawer. Returns nil when
// nothing matches.
func findByTag(db *gorm.DB, column, value string) (*ScanResult, error) {
	var drawer models.Drawer
	err := db.Preload("Parts").Where(column+" = ?", value).First(&drawer).Error
	switch err {
	case nil:
		return &ScanResult{Type: "drawer", Data: drawer}, nil
	case gorm.ErrRecordNotFound:
	default:
		return nil, err
	}

	var part models.Part
	err = db.
		Preload("Drawer").
		Preload("Category").
		Preload("Attachments").
		Where(column+" = ?", value).
		First(&part).Error
	switch err {
	case nil:
		return &ScanResult{Type: "part", Data: part}, nil
	case gorm.ErrRecordNotFound:
		return nil, nil
	default:
		return nil, err
	}
}
