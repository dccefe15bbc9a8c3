package seeders

import (
	"errors"
	"os"
	"time"

	"kartoteka.link/configs/configslog"
	"kartoteka.link/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedDemoData geliştirme ortamı için örnek bir set ve birkaç kart
// oluşturur. Üretim ortamında hiçbir şey yapmaz.
func SeedDemoData(db *gorm.DB) error {
	if os.Getenv("APP_ENV") == "production" {
		configslog.SLog.Info("Üretim ortamı, demo verisi atlanıyor.")
		return nil
	}

	var existing models.Set
	result := db.Where("code = ?", "DMO").First(&existing)
	if result.Error == nil {
		configslog.SLog.Debug("Demo seti zaten mevcut, oluşturma atlanıyor.")
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	var english models.Language
	if err := db.Where("name = ?", models.LanguageNameEnglish).First(&english).Error; err != nil {
		configslog.Log.Error("Demo verisi için İngilizce dili bulunamadı", zap.Error(err))
		return err
	}
	var rare models.Rarity
	if err := db.Where("symbol = ?", models.RaritySymbolRare).First(&rare).Error; err != nil {
		return err
	}
	var common models.Rarity
	if err := db.Where("symbol = ?", models.RaritySymbolCommon).First(&common).Error; err != nil {
		return err
	}

	releaseDate := time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)
	set := models.Set{
		Code:         "DMO",
		Name:         "Demo Set",
		Type:         "expansion",
		ReleaseDate:  &releaseDate,
		KeyruneCode:  "dmo",
		TotalSetSize: 2,
	}
	if err := db.Create(&set).Error; err != nil {
		return err
	}

	cards := []struct {
		name     string
		layout   string
		manaCost string
		cmc      float64
		typeLine string
		rules    string
		rarityID uint
	}{
		{"Demo Dragon", models.LayoutNormal, "{3}{R}{R}", 5, "Creature - Dragon", "Flying, haste", rare.ID},
		{"Demo Forest", models.LayoutNormal, "", 0, "Basic Land - Forest", "{T}: Add {G}.", common.ID},
	}
	for _, demo := range cards {
		card := models.Card{
			ScryfallOracleID: uuid.NewString(),
			Name:             demo.name,
			Layout:           demo.layout,
			ManaValue:        demo.cmc,
		}
		if err := db.Create(&card).Error; err != nil {
			return err
		}
		face := models.CardFace{
			CardID:    card.ID,
			Side:      "a",
			Name:      demo.name,
			ManaCost:  demo.manaCost,
			ManaValue: demo.cmc,
			TypeLine:  demo.typeLine,
			RulesText: demo.rules,
		}
		if err := db.Create(&face).Error; err != nil {
			return err
		}
		printing := models.CardPrinting{
			ScryfallID: uuid.NewString(),
			CardID:     card.ID,
			SetID:      set.ID,
			RarityID:   demo.rarityID,
			HasNonFoil: true,
		}
		if err := db.Create(&printing).Error; err != nil {
			return err
		}
		localisation := models.CardLocalisation{
			CardPrintingID: printing.ID,
			LanguageID:     english.ID,
			CardName:       demo.name,
		}
		if err := db.Create(&localisation).Error; err != nil {
			return err
		}
	}

	configslog.SLog.Info("Demo verisi oluşturuldu.")
	return nil
}
