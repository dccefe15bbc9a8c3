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

// IOwnershipRepository sahiplik kayıtları için arayüz.
type IOwnershipRepository interface {
	FindOwnership(ctx context.Context, localisationID, ownerID uint) (*models.UserOwnedCard, error)
	CreateOwnership(ctx context.Context, ownership *models.UserOwnedCard) error
	SaveOwnership(ctx context.Context, ownership *models.UserOwnedCard) error
	DeleteOwnership(ctx context.Context, ownership *models.UserOwnedCard) error
	CreateChange(ctx context.Context, change *models.UserCardChange) error
	GetLocalisationByID(ctx context.Context, id uint) (*models.CardLocalisation, error)
	OwnershipsForCard(ctx context.Context, cardID, ownerID uint) ([]models.UserOwnedCard, error)
	ChangesForCard(ctx context.Context, cardID, ownerID uint) ([]models.UserCardChange, error)
	CardOwnershipTotal(ctx context.Context, cardID, ownerID uint) (int, error)
	PrintingOwnershipTotal(ctx context.Context, printingID, ownerID uint) (int, error)
}

// OwnershipRepository IOwnershipRepository arayüzünü uygular.
type OwnershipRepository struct {
	db *gorm.DB
}

// NewOwnershipRepository yeni bir OwnershipRepository örneği oluşturur.
func NewOwnershipRepository() IOwnershipRepository {
	return &OwnershipRepository{db: configsdatabase.GetDB()}
}

// NewOwnershipRepositoryTx transaction üzerinde çalışan bir örnek oluşturur.
func NewOwnershipRepositoryTx(tx *gorm.DB) IOwnershipRepository {
	return &OwnershipRepository{db: tx}
}

// FindOwnership kullanıcının belirli dil baskısındaki sahiplik satırını bulur.
func (r *OwnershipRepository) FindOwnership(ctx context.Context, localisationID, ownerID uint) (*models.UserOwnedCard, error) {
	var ownership models.UserOwnedCard
	err := r.db.WithContext(ctx).
		Where("card_localisation_id = ? AND owner_id = ?", localisationID, ownerID).
		First(&ownership).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		configslog.Log.Error("OwnershipRepository.FindOwnership: DB error",
			zap.Uint("localisation_id", localisationID), zap.Uint("owner_id", ownerID), zap.Error(err))
		return nil, err
	}
	return &ownership, nil
}

func (r *OwnershipRepository) CreateOwnership(ctx context.Context, ownership *models.UserOwnedCard) error {
	return r.db.WithContext(ctx).Create(ownership).Error
}

func (r *OwnershipRepository) SaveOwnership(ctx context.Context, ownership *models.UserOwnedCard) error {
	return r.db.WithContext(ctx).Save(ownership).Error
}

// DeleteOwnership sahiplik satırını kalıcı olarak siler; adet sıfıra inince
// satır tutulmaz (soft delete burada anlamsız, unique index'i meşgul eder).
func (r *OwnershipRepository) DeleteOwnership(ctx context.Context, ownership *models.UserOwnedCard) error {
	return r.db.WithContext(ctx).Unscoped().Delete(ownership).Error
}

func (r *OwnershipRepository) CreateChange(ctx context.Context, change *models.UserCardChange) error {
	return r.db.WithContext(ctx).Create(change).Error
}

// GetLocalisationByID dil baskısını dili ve baskısıyla getirir.
func (r *OwnershipRepository) GetLocalisationByID(ctx context.Context, id uint) (*models.CardLocalisation, error) {
	var localisation models.CardLocalisation
	err := r.db.WithContext(ctx).
		Preload("Language").
		Preload("CardPrinting.Set").
		First(&localisation, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &localisation, nil
}

// OwnershipsForCard kullanıcının bir karta ait tüm sahipliklerini,
// set çıkış tarihine göre sıralı getirir.
func (r *OwnershipRepository) OwnershipsForCard(ctx context.Context, cardID, ownerID uint) ([]models.UserOwnedCard, error) {
	var ownerships []models.UserOwnedCard
	err := r.db.WithContext(ctx).
		Joins("JOIN card_localisations ON card_localisations.id = user_owned_cards.card_localisation_id").
		Joins("JOIN card_printings ON card_printings.id = card_localisations.card_printing_id").
		Joins("JOIN sets ON sets.id = card_printings.set_id").
		Where("card_printings.card_id = ? AND user_owned_cards.owner_id = ?", cardID, ownerID).
		Order("sets.release_date asc").
		Preload("CardLocalisation.Language").
		Preload("CardLocalisation.CardPrinting.Set").
		Find(&ownerships).Error
	return ownerships, err
}

// ChangesForCard kullanıcının bir karta ait sahiplik değişikliklerini
// tarih sırasıyla getirir.
func (r *OwnershipRepository) ChangesForCard(ctx context.Context, cardID, ownerID uint) ([]models.UserCardChange, error) {
	var changes []models.UserCardChange
	err := r.db.WithContext(ctx).
		Joins("JOIN card_localisations ON card_localisations.id = user_card_changes.card_localisation_id").
		Joins("JOIN card_printings ON card_printings.id = card_localisations.card_printing_id").
		Where("card_printings.card_id = ? AND user_card_changes.owner_id = ?", cardID, ownerID).
		Order("user_card_changes.date asc").
		Preload("CardLocalisation.Language").
		Preload("CardLocalisation.CardPrinting.Set").
		Find(&changes).Error
	return changes, err
}

// CardOwnershipTotal kullanıcının karttan (tüm baskılar) toplam kaç adet
// sahibi olduğunu döndürür.
func (r *OwnershipRepository) CardOwnershipTotal(ctx context.Context, cardID, ownerID uint) (int, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.UserOwnedCard{}).
		Joins("JOIN card_localisations ON card_localisations.id = user_owned_cards.card_localisation_id").
		Joins("JOIN card_printings ON card_printings.id = card_localisations.card_printing_id").
		Where("card_printings.card_id = ? AND user_owned_cards.owner_id = ?", cardID, ownerID).
		Select("COALESCE(SUM(user_owned_cards.count), 0)").
		Scan(&total).Error
	return int(total), err
}

// PrintingOwnershipTotal kullanıcının tek bir baskıdan toplam kaç adet
// sahibi olduğunu döndürür.
func (r *OwnershipRepository) PrintingOwnershipTotal(ctx context.Context, printingID, ownerID uint) (int, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.UserOwnedCard{}).
		Joins("JOIN card_localisations ON card_localisations.id = user_owned_cards.card_localisation_id").
		Where("card_localisations.card_printing_id = ? AND user_owned_cards.owner_id = ?", printingID, ownerID).
		Select("COALESCE(SUM(user_owned_cards.count), 0)").
		Scan(&total).Error
	return int(total), err
}

var _ IOwnershipRepository = (*OwnershipRepository)(nil)
