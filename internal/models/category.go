package models

type Category struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"size:200;not null"`
	Description *string `json:"description" gorm:"size:500"`

	Parts []Part `json:"parts" gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
}
