package db

import (
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/SmartLocalApps/service-finder/internal/models"
)

// DefaultServices are inserted once, when the services table is
// still empty. Custom services added later never collide with the
// seed because seeding only runs against an empty table.
var DefaultServices = []models.Service{
	{Key: "ac_service", DisplayName: "AC Service", Icon: "❄️", Categories: `["Repair", "Installation", "Cleaning"]`},
	{Key: "plumber", DisplayName: "Plumbing", Icon: "🚰", Categories: `["Tap Repair", "Pipe Leak", "Drainage"]`},
	{Key: "electrician", DisplayName: "Electrician", Icon: "⚡", Categories: `["Wiring", "Appliance Repair", "Lighting"]`},
	{Key: "cleaning", DisplayName: "Cleaning", Icon: "🧹", Categories: `["Home Deep Clean", "Kitchen Clean", "Bathroom Clean"]`},
	{Key: "painter", DisplayName: "Painter", Icon: "🎨", Categories: `["Interior Paint", "Exterior Paint", "Wall Decor"]`},
	{Key: "carpenter", DisplayName: "Carpenter", Icon: "🪑", Categories: `["Furniture Repair", "Modular Kitchen", "Door/Window"]`},
	{Key: "pest_control", DisplayName: "Pest Control", Icon: "🐜", Categories: `["General Pest", "Termite", "Cockroach"]`},
	{Key: "gardener", DisplayName: "Gardener", Icon: "🌳", Categories: `["Lawn Mow", "Pruning", "Planting"]`},
	{Key: "other", DisplayName: "Others", Icon: "🔧", Categories: `["Maintenance", "Misc"]`},
}

const adminID = "admin_1"

// Seed loads the built-in service catalog and the fixed admin
// account. Idempotent: re-running against a seeded database is a
// no-op.
func Seed(db *gorm.DB) error {
	var serviceCount int64
	if err := db.Model(&models.Service{}).Count(&serviceCount).Error; err != nil {
		return err
	}
	if serviceCount == 0 {
		if err := db.Create(&DefaultServices).Error; err != nil {
			return err
		}
		log.Info().Int("services", len(DefaultServices)).Msg("seeded service catalog")
	}

	var adminCount int64
	if err := db.Model(&models.User{}).
		Where("id = ?", adminID).
		Count(&adminCount).Error; err != nil {
		return err
	}
	if adminCount == 0 {
		admin := models.User{
			ID:       adminID,
			Name:     "Admin",
			Email:    "admin@smartlocal.com",
			Phone:    "0000000000",
			Password: "Admin@123",
			Role:     "admin",
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
		log.Info().Msg("seeded admin account")
	}

	return nil
}
