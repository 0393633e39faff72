package models

import (
	"time"
)

// AttachmentType tags what a stored file documents. Serialized as its
// integer value; the upload form also accepts the lowercase name.
type AttachmentType int

const (
	AttachmentTypeDatasheet AttachmentType = iota
	AttachmentTypePinout
	AttachmentTypePhoto
	AttachmentTypeSchematic
	AttachmentTypeOther
)

// ParseAttachmentType maps an upload form value to an AttachmentType.
// Accepts the integer value or the name; anything else falls back to Other.
func ParseAttachmentType(s string) AttachmentType {
	switch s {
	case "0", "datasheet", "Datasheet":
		return AttachmentTypeDatasheet
	case "1", "pinout", "Pinout":
		return AttachmentTypePinout
	case "2", "photo", "Photo":
		return AttachmentTypePhoto
	case "3", "schematic", "Schematic":
		return AttachmentTypeSchematic
	default:
		return AttachmentTypeOther
	}
}

type PartAttachment struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	PartID uint `json:"partId" gorm:"index;not null"`

	FileName    string         `json:"fileName" gorm:"size:256;not null"` // original upload name
	FilePath    string         `json:"filePath" gorm:"size:512"`          // driver-specific location of the blob
	FileURL     string         `json:"fileUrl" gorm:"column:file_url;size:512;index"`
	Type        AttachmentType `json:"type"`
	FileSize    int64          `json:"fileSize"`
	ContentType *string        `json:"contentType" gorm:"size:128"`
	Description *string        `json:"description" gorm:"size:500"`

	UploadedAt time.Time `json:"uploadedAt"`
}
