package repositories

import (
	"context"
	"errors"

	"kartoteka.link/configs/configsdatabase"
	"kartoteka.link/configs/configslog"
	"kartoteka.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ISetRepository set sorguları için arayüz.
type ISetRepository interface {
	GetAllSets(ctx context.Context) ([]models.Set, error)
	GetRecentSets(ctx context.Context, limit int) ([]models.Set, error)
	FindByCode(ctx context.Context, code string) (*models.Set, error)
}

// SetRepository ISetRepository arayüzünü uygular.
type SetRepository struct {
	db *gorm.DB
}

// NewSetRepository yeni bir SetRepository örneği oluşturur.
func NewSetRepository() ISetRepository {
	return &SetRepository{db: configsdatabase.GetDB()}
}

// GetAllSets tüm setleri en yeniden eskiye sıralı getirir.
// Set ağacı bellek üzerinde kurulur; tablo küçüktür.
func (r *SetRepository) GetAllSets(ctx context.Context) ([]models.Set, error) {
	var sets []models.Set
	err := r.db.WithContext(ctx).
		Order("release_date desc NULLS LAST, name asc").
		Find(&sets).Error
	if err != nil {
		configslog.Log.Error("SetRepository.GetAllSets: DB error", zap.Error(err))
		return nil, err
	}
	return sets, nil
}

// GetRecentSets en son yayımlanan setleri getirir.
func (r *SetRepository) GetRecentSets(ctx context.Context, limit int) ([]models.Set, error) {
	var sets []models.Set
	err := r.db.WithContext(ctx).
		Where("release_date IS NOT NULL").
		Order("release_date desc").
		Limit(limit).
		Find(&sets).Error
	if err != nil {
		configslog.Log.Error("SetRepository.GetRecentSets: DB error", zap.Error(err))
		return nil, err
	}
	return sets, nil
}

// FindByCode set kodunu arar.
func (r *SetRepository) FindByCode(ctx context.Context, code string) (*models.Set, error) {
	var set models.Set
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&set).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &set, nil
}

var _ ISetRepository = (*SetRepository)(nil)
