package migrations

import (
	"kartoteka.link/configs/configslog"
	"kartoteka.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateOwnershipTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating user_owned_cards & user_card_changes tables...")
	err := db.AutoMigrate(&models.UserOwnedCard{}, &models.UserCardChange{})
	if err != nil {
		configslog.Log.Error("Failed to migrate ownership tables", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Ownership tables migrated successfully")
	return nil
}
