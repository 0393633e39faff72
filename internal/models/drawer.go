package models

// DrawerType tags the kind of physical storage a drawer record describes.
// Serialized as its integer value.
type DrawerType int

const (
	DrawerTypeGridfinity DrawerType = iota
	DrawerTypeShelf
	DrawerTypeBox
	DrawerTypeCabinet
	DrawerTypeOffSite
	DrawerTypeOther
)

type Drawer struct {
	ID       uint       `json:"id" gorm:"primaryKey"`
	Name     string     `json:"name" gorm:"size:200;not null"`
	Location *string    `json:"location" gorm:"size:200"`
	Type     DrawerType `json:"type" gorm:"default:0"`

	// Grid position (origin 1,1 bottom-left, X→right, Y→up) and bin size
	// in cells. A bin may span multiple cells.
	GridX      int `json:"gridX" gorm:"default:1"`
	GridY      int `json:"gridY" gorm:"default:1"`
	GridWidth  int `json:"gridWidth" gorm:"default:1"`
	GridHeight int `json:"gridHeight" gorm:"default:1"`

	Description *string `json:"description" gorm:"size:500"`

	// Tag columns are unique only when set; NULLs may repeat.
	NfcTagID *string `json:"nfcTagId" gorm:"column:nfc_tag_id;size:200;uniqueIndex:idx_drawers_nfc_tag_id,where:nfc_tag_id IS NOT NULL"`
	QrCode   *string `json:"qrCode" gorm:"size:500;uniqueIndex:idx_drawers_qr_code,where:qr_code IS NOT NULL"`

	// Deleting a drawer orphans its parts rather than deleting them.
	Parts []Part `json:"parts" gorm:"foreignKey:DrawerID;constraint:OnDelete:SET NULL"`
}
