package repositories

import (
	"context"
	"errors"

	"kartoteka.link/configs/configsdatabase"
	"kartoteka.link/configs/configslog"
	"kartoteka.link/models"
	"kartoteka.link/pkg/queryparams"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ICardRepository kart ve baskı sorguları için arayüz.
type ICardRepository interface {
	GetCardByID(ctx context.Context, id uint) (*models.Card, error)
	GetCardWithPrintings(ctx context.Context, id uint) (*models.Card, error)
	GetPrintingByID(ctx context.Context, id uint) (*models.CardPrinting, error)
	GetPrintingWithSetSiblings(ctx context.Context, id uint) (*models.CardPrinting, error)
	SearchCardsByName(ctx context.Context, name string, params queryparams.ListParams) ([]models.Card, int64, error)
	AutocompleteByName(ctx context.Context, name string, limit int) ([]models.Card, error)
	GetRulingsForCard(ctx context.Context, cardID uint) ([]models.CardRuling, error)
	GetLastEnglishLocalisationWithMultiverseID(ctx context.Context, cardID uint) (*models.CardLocalisation, error)
}

// CardRepository ICardRepository arayüzünü uygular.
type CardRepository struct {
	base *BaseRepository[models.Card]
	db   *gorm.DB
}

// NewCardRepository yeni bir CardRepository örneği oluşturur.
func NewCardRepository() ICardRepository {
	db := configsdatabase.GetDB()
	base := NewBaseRepository[models.Card](db)
	base.SetAllowedSortColumns([]string{"id", "created_at", "name"})
	return &CardRepository{base: base, db: db}
}

// NewCardRepositoryTx transaction üzerinde çalışan bir örnek oluşturur.
func NewCardRepositoryTx(tx *gorm.DB) ICardRepository {
	return &CardRepository{base: NewBaseRepository[models.Card](tx), db: tx}
}

// GetCardByID kartı yüzleriyle birlikte getirir.
func (r *CardRepository) GetCardByID(ctx context.Context, id uint) (*models.Card, error) {
	var card models.Card
	err := r.db.WithContext(ctx).Preload("Faces").First(&card, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		configslog.Log.Error("CardRepository.GetCardByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &card, nil
}

// GetCardWithPrintings kartı tüm baskıları, setleri ve dilleriyle getirir.
// Sonuç sayfasındaki set sekmesi bu grafiğin tamamına ihtiyaç duyar.
func (r *CardRepository) GetCardWithPrintings(ctx context.Context, id uint) (*models.Card, error) {
	var card models.Card
	err := r.db.WithContext(ctx).
		Preload("Faces").
		Preload("Printings", func(db *gorm.DB) *gorm.DB {
			return db.Joins("JOIN sets ON sets.id = card_printings.set_id").
				Order("sets.release_date, card_printings.numerical_number")
		}).
		Preload("Printings.Set").
		Preload("Printings.Rarity").
		Preload("Printings.Localisations.Language").
		First(&card, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		configslog.Log.Error("CardRepository.GetCardWithPrintings: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &card, nil
}

// GetPrintingByID baskıyı kartı, seti, nadirliği ve dilleriyle getirir.
func (r *CardRepository) GetPrintingByID(ctx context.Context, id uint) (*models.CardPrinting, error) {
	var printing models.CardPrinting
	err := r.db.WithContext(ctx).
		Preload("Card.Faces").
		Preload("Set").
		Preload("Rarity").
		Preload("Localisations.Language").
		First(&printing, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		configslog.Log.Error("CardRepository.GetPrintingByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &printing, nil
}

// GetPrintingWithSetSiblings baskıyı, kartının TÜM baskılarıyla birlikte
// getirir (set özeti sekmesi: kartın çıktığı tüm setler + sahiplikler).
func (r *CardRepository) GetPrintingWithSetSiblings(ctx context.Context, id uint) (*models.CardPrinting, error) {
	var printing models.CardPrinting
	err := r.db.WithContext(ctx).
		Preload("Set").
		Preload("Rarity").
		Preload("Card.Printings", func(db *gorm.DB) *gorm.DB {
			return db.Joins("JOIN sets ON sets.id = card_printings.set_id").
				Order("sets.release_date, card_printings.numerical_number")
		}).
		Preload("Card.Printings.Set").
		Preload("Card.Printings.Rarity").
		Preload("Card.Printings.Localisations.Language").
		Preload("Card.Printings.Localisations.Ownerships").
		First(&printing, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		configslog.Log.Error("CardRepository.GetPrintingWithSetSiblings: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &printing, nil
}

// SearchCardsByName ada göre (büyük/küçük harf duyarsız) sayfalanmış arama yapar.
func (r *CardRepository) SearchCardsByName(ctx context.Context, name string, params queryparams.ListParams) ([]models.Card, int64, error) {
	var results []models.Card
	var totalCount int64

	query := r.db.WithContext(ctx).Model(&models.Card{}).Where("is_token = ?", false)
	if name != "" {
		query = query.Where("name ILIKE ?", "%"+name+"%")
	}

	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}
	if totalCount == 0 {
		return results, 0, nil
	}

	err := query.
		Order("name asc").
		Limit(params.PerPage).
		Offset(params.CalculateOffset()).
		Preload("Faces").
		Preload("Printings", func(db *gorm.DB) *gorm.DB {
			return db.Joins("JOIN sets ON sets.id = card_printings.set_id").
				Order("sets.release_date, card_printings.numerical_number")
		}).
		Preload("Printings.Set").
		Preload("Printings.Rarity").
		Preload("Printings.Localisations.Language").
		Find(&results).Error
	return results, totalCount, err
}

// AutocompleteByName otomatik tamamlama için ada göre arar. Token'lar hariç.
// Başlangıç eşleşmelerinin öne alınması servis katmanında yapılır.
func (r *CardRepository) AutocompleteByName(ctx context.Context, name string, limit int) ([]models.Card, error) {
	if name == "" {
		return nil, nil
	}
	var cards []models.Card
	err := r.db.WithContext(ctx).
		Where("is_token = ?", false).
		Where("name ILIKE ?", "%"+name+"%").
		Order("name asc").
		Limit(limit).
		Find(&cards).Error
	return cards, err
}

// GetRulingsForCard kartın kararlarını tarih sırasıyla getirir.
func (r *CardRepository) GetRulingsForCard(ctx context.Context, cardID uint) ([]models.CardRuling, error) {
	var rulings []models.CardRuling
	err := r.db.WithContext(ctx).
		Where("card_id = ?", cardID).
		Order("date asc").
		Find(&rulings).Error
	return rulings, err
}

// GetLastEnglishLocalisationWithMultiverseID Gatherer bağlantısı için,
// multiverse ID'si olan en yeni İngilizce baskıyı getirir. Yoksa nil döner.
func (r *CardRepository) GetLastEnglishLocalisationWithMultiverseID(ctx context.Context, cardID uint) (*models.CardLocalisation, error) {
	var localisation models.CardLocalisation
	err := r.db.WithContext(ctx).
		Joins("JOIN card_printings ON card_printings.id = card_localisations.card_printing_id").
		Joins("JOIN sets ON sets.id = card_printings.set_id").
		Joins("JOIN languages ON languages.id = card_localisations.language_id").
		Where("card_printings.card_id = ?", cardID).
		Where("card_localisations.multiverse_id IS NOT NULL").
		Where("languages.name = ?", models.LanguageNameEnglish).
		Order("sets.release_date desc").
		First(&localisation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil // Bağlantı üretilmez, hata değil.
	}
	if err != nil {
		return nil, err
	}
	return &localisation, nil
}

var _ ICardRepository = (*CardRepository)(nil)
