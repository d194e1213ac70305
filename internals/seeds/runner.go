// file: internals/seeds/runner.go
package seeds

import (
	"log"

	"gorm.io/gorm"
)

// Run loads the baseline dataset: academic catalogs, a demo staff and
// student body, and the default weight policy. Every seeder is
// idempotent, rerunning only fills gaps.
func Run(db *gorm.DB) error {
	log.Println("🌱 Seeding database...")

	steps := []struct {
		name string
		fn   func(*gorm.DB) error
	}{
		{"academics", seedAcademics},
		{"people", seedPeople},
		{"weights", seedDefaultWeights},
	}
	for _, step := range steps {
		if err := step.fn(db); err != nil {
			log.Printf("❌ Seeder %s failed: %v", step.name, err)
			return err
		}
		log.Printf("✅ Seeder %s done", step.name)
	}

	log.Println("🌱 Seeding complete")
	return nil
}

func strPtr(s string) *string { return &s }
