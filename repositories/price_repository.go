package repositories

import (
	"context"
	"errors"

	"kartoteka.link/configs/configsdatabase"
	"kartoteka.link/models"

	"gorm.io/gorm"
)

// IPriceRepository fiyat geçmişi sorguları için arayüz.
type IPriceRepository interface {
	PricesForPrinting(ctx context.Context, printingID uint) ([]models.CardPrice, error)
	LatestPriceForPrinting(ctx context.Context, printingID uint) (*models.CardPrice, error)
}

// PriceRepository IPriceRepository arayüzünü uygular.
type PriceRepository struct {
	db *gorm.DB
}

// NewPriceRepository yeni bir PriceRepository örneği oluşturur.
func NewPriceRepository() IPriceRepository {
	return &PriceRepository{db: configsdatabase.GetDB()}
}

// PricesForPrinting baskının tüm fiyat kayıtlarını tarih sırasıyla getirir.
func (r *PriceRepository) PricesForPrinting(ctx context.Context, printingID uint) ([]models.CardPrice, error) {
	var prices []models.CardPrice
	err := r.db.WithContext(ctx).
		Where("card_printing_id = ?", printingID).
		Order("date asc").
		Find(&prices).Error
	return prices, err
}

// LatestPriceForPrinting en güncel fiyat kaydını getirir; kayıt yoksa nil.
func (r *PriceRepository) LatestPriceForPrinting(ctx context.Context, printingID uint) (*models.CardPrice, error) {
	var price models.CardPrice
	err := r.db.WithContext(ctx).
		Where("card_printing_id = ?", printingID).
		Order("date desc").
		First(&price).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &price, nil
}

var _ IPriceRepository = (*PriceRepository)(nil)
