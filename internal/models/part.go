package models

import (
	"time"
)

type Part struct {
	ID                     uint    `json:"id" gorm:"primaryKey"`
	Name                   string  `json:"name" gorm:"size:200;not null"`
	Description            *string `json:"description" gorm:"size:2000"`
	PartNumber             *string `json:"partNumber" gorm:"size:100"`
	Manufacturer           *string `json:"manufacturer" gorm:"size:200"`
	ManufacturerPartNumber *string `json:"manufacturerPartNumber" gorm:"size:100"`

	// Electronics metadata, free-form display strings ("0603", "±5%", "16V", ...)
	Package     *string `json:"package" gorm:"size:100"`
	Footprint   *string `json:"footprint" gorm:"size:100"`
	Value       *string `json:"value" gorm:"size:100"`
	Tolerance   *string `json:"tolerance" gorm:"size:50"`
	Voltage     *string `json:"voltage" gorm:"size:50"`
	Current     *string `json:"current" gorm:"size:50"`
	Power       *string `json:"power" gorm:"size:50"`
	Temperature *string `json:"temperature" gorm:"size:100"`

	Notes       *string `json:"notes" gorm:"size:2000"`
	Quantity    int     `json:"quantity"`
	MinQuantity *int    `json:"minQuantity"` // restock threshold

	DrawerID   *uint     `json:"drawerId" gorm:"index"`
	Drawer     *Drawer   `json:"drawer"`
	CategoryID *uint     `json:"categoryId" gorm:"index"`
	Category   *Category `json:"category"`

	NfcTagID *string `json:"nfcTagId" gorm:"column:nfc_tag_id;size:200"`
	QrCode   *string `json:"qrCode" gorm:"size:500"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Attachments []PartAttachment `json:"attachments" gorm:"foreignKey:PartID;constraint:OnDelete:CASCADE"`
}
