package migration

import (
	"Meal-Planner-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Transaction{}); err != nil {
		log.Fatalf("Error migrating transaction database: %v", err)
		return err
	}

	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Fatalf("Error migrating recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Category{}); err != nil {
		log.Fatalf("Error migrating category database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.CategoryRecipe{}); err != nil {
		log.Fatalf("Error migrating category recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ChecklistItem{}); err != nil {
		log.Fatalf("Error migrating checklist item database: %v", err)
		return err
	}

	if err := db.AutoMigrate(&entities.CookSession{}); err != nil {
		log.Fatalf("Error migrating cook session database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ProgressPhoto{}); err != nil {
		log.Fatalf("Error migrating progress photo database: %v", err)
		return err
	}

	// At most one non-completed session per user; enforced in the database so
	// concurrent creates cannot slip past the service-level check.
	db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_one_active_session_per_user
		ON cook_sessions (user_id) WHERE status <> 'completed'`)

	// The MAX(order_index)+1 subquery in the photo insert is not serialized
	// under READ COMMITTED; this index turns a concurrent collision into a
	// unique violation the caller retries.
	db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_progress_photos_session_order
		ON progress_photos (session_id, order_index)`)

	fmt.Println("Database migration complete")
	return nil
}
