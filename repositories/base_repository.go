package repositories

import (
	"context"
	"errors"
	"strings"

	"kartoteka.link/configs/configslog"
	"kartoteka.link/models"
	"kartoteka.link/pkg/queryparams"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNotFound aranan kaydın bulunamadığını belirtir. Servis katmanı bunu
// kendi hata tipine çevirir.
var ErrNotFound = errors.New("kayıt bulunamadı")

// IBaseRepository tüm modeller için ortak CRUD işlemlerini tanımlar.
type IBaseRepository[T any] interface {
	Create(ctx context.Context, entity *T) error
	FindByID(ctx context.Context, id uint) (*T, error)
	GetAll(params queryparams.ListParams) ([]T, int64, error)
	Update(ctx context.Context, id uint, data map[string]interface{}, updatedBy uint) error
	Save(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id uint) error
	GetCount() (int64, error)
	SetAllowedSortColumns(columns []string)
}

// BaseRepository IBaseRepository'nin GORM implementasyonudur.
type BaseRepository[T any] struct {
	db                 *gorm.DB
	allowedSortColumns map[string]struct{}
}

// NewBaseRepository verilen bağlantı (veya transaction) üzerinde çalışan
// generik bir repository oluşturur.
func NewBaseRepository[T any](db *gorm.DB) *BaseRepository[T] {
	return &BaseRepository[T]{
		db:                 db,
		allowedSortColumns: map[string]struct{}{"id": {}, "created_at": {}},
	}
}

// SetAllowedSortColumns sıralamada kullanılabilecek sütunları sınırlar.
// Querystring'den gelen sütun adları doğrudan SQL'e gitmemeli.
func (r *BaseRepository[T]) SetAllowedSortColumns(columns []string) {
	r.allowedSortColumns = make(map[string]struct{}, len(columns))
	for _, column := range columns {
		r.allowedSortColumns[column] = struct{}{}
	}
}

// Create yeni bir kayıt oluşturur. BaseModel hook'ları context'teki
// kullanıcıyı denetim alanlarına yazar.
func (r *BaseRepository[T]) Create(ctx context.Context, entity *T) error {
	if entity == nil {
		return errors.New("oluşturulacak kayıt nil olamaz")
	}
	return r.db.WithContext(ctx).Create(entity).Error
}

// FindByID kaydı ID ile bulur.
func (r *BaseRepository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	var entity T
	err := r.db.WithContext(ctx).First(&entity, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		configslog.Log.Error("BaseRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &entity, nil
}

// GetAll kayıtları sayfalayarak listeler.
func (r *BaseRepository[T]) GetAll(params queryparams.ListParams) ([]T, int64, error) {
	var entities []T
	var totalCount int64
	var model T

	query := r.db.Model(&model)
	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}
	if totalCount == 0 {
		return entities, 0, nil
	}

	query = query.
		Order(r.orderClause(params)).
		Limit(params.PerPage).
		Offset(params.CalculateOffset())
	err := query.Find(&entities).Error
	return entities, totalCount, err
}

// orderClause izinli sütun ve yön ile ORDER BY ifadesi üretir.
func (r *BaseRepository[T]) orderClause(params queryparams.ListParams) string {
	column := "created_at"
	if _, ok := r.allowedSortColumns[params.SortBy]; ok {
		column = params.SortBy
	}
	direction := strings.ToLower(params.OrderBy)
	if direction != "asc" && direction != "desc" {
		direction = queryparams.DefaultOrderBy
	}
	return column + " " + direction
}

// Update kaydı map üzerinden günceller.
func (r *BaseRepository[T]) Update(ctx context.Context, id uint, data map[string]interface{}, updatedBy uint) error {
	if id == 0 {
		return errors.New("güncellenecek kayıt ID'si geçersiz")
	}
	if len(data) == 0 {
		return errors.New("güncellenecek veri boş olamaz")
	}
	var model T
	ctxWithUser := models.ContextWithUserID(ctx, updatedBy)
	result := r.db.WithContext(ctxWithUser).Model(&model).Where("id = ?", id).Updates(data)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var exists int64
		if countErr := r.db.Model(&model).Where("id = ?", id).Count(&exists).Error; countErr == nil && exists == 0 {
			return ErrNotFound
		}
		// Satır etkilenmediyse veri zaten aynı olabilir; hata değil.
	}
	return nil
}

// Save kaydı tüm alanlarıyla yazar (hook'lar çalışır).
func (r *BaseRepository[T]) Save(ctx context.Context, entity *T) error {
	if entity == nil {
		return errors.New("kaydedilecek kayıt nil olamaz")
	}
	return r.db.WithContext(ctx).Save(entity).Error
}

// Delete kaydı soft delete ile siler.
func (r *BaseRepository[T]) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return errors.New("silinecek kayıt ID'si geçersiz")
	}
	var model T
	result := r.db.WithContext(ctx).Delete(&model, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetCount toplam kayıt sayısını döndürür.
func (r *BaseRepository[T]) GetCount() (int64, error) {
	var model T
	var count int64
	err := r.db.Model(&model).Count(&count).Error
	return count, err
}
