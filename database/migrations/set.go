package migrations

import (
	"kartoteka.link/configs/configslog"
	"kartoteka.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateSetsTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating sets, rarities & languages tables...")
	err := db.AutoMigrate(&models.Set{}, &models.Rarity{}, &models.Language{})
	if err != nil {
		configslog.Log.Error("Failed to migrate sets, rarities & languages tables", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Sets, rarities & languages tables migrated successfully")
	return nil
}
