package repositories

import (
	"log"

	"github.com/Lassehoutenbos/PartManager/internal/config"
	"github.com/Lassehoutenbos/PartManager/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDatabase() {
	dsn := config.Envs.DB_URL
	// TranslateError turns driver unique-violations into gorm.ErrDuplicatedKey,
	// which the tag handlers map to 409.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := Migrate(db); err != nil {
		log.Fatal("Migration failed:", err)
	}
	DB = db
	log.Println("Successfully connected to database")
}

// Migrate creates or updates the four entity tables, including the partial
// unique indexes on the drawer tag columns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Category{},
		&models.Drawer{},
		&models.Part{},
		&models.PartAttachment{},
	)
}
