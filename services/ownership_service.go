package services

import (
	"context"
	"errors"
	"time"

	"kartoteka.link/configs"
	"kartoteka.link/configs/configslog"
	"kartoteka.link/models"
	"kartoteka.link/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OwnershipServiceError özel servis hataları
type OwnershipServiceError string

func (e OwnershipServiceError) Error() string { return string(e) }

const (
	ErrLocalisationNotFound  OwnershipServiceError = "kart lokalizasyonu bulunamadı"
	ErrOwnershipInvalidInput OwnershipServiceError = "geçersiz girdi verisi"
	ErrOwnershipBelowZero    OwnershipServiceError = "sahip olunmayan karttan düşülemez"
	ErrOwnershipChangeFailed OwnershipServiceError = "koleksiyon değişikliği kaydedilemedi"
)

// OwnershipSummary bir kart ve seçili baskı için toplam adetler.
type OwnershipSummary struct {
	CardTotal     int64
	PrintingTotal int64
}

// OwnershipTabData sahiplik sekmesinin içeriği.
type OwnershipTabData struct {
	Ownerships []models.UserOwnedCard
	Changes    []models.UserCardChange
}

// IOwnershipService koleksiyon işlemleri için arayüz.
type IOwnershipService interface {
	ApplyChange(ctx context.Context, userID uint, localisationID uint, difference int) error
	GetLocalisationByID(ctx context.Context, id uint) (*models.CardLocalisation, error)
	GetOwnershipTab(ctx context.Context, cardID uint, ownerID uint) (*OwnershipTabData, error)
	GetSummary(ctx context.Context, cardID uint, printingID uint, ownerID uint) (*OwnershipSummary, error)
}

// OwnershipService IOwnershipService arayüzünü uygular.
type OwnershipService struct {
	db   *gorm.DB
	repo repositories.IOwnershipRepository
}

// NewOwnershipService yeni bir OwnershipService örneği oluşturur.
func NewOwnershipService() IOwnershipService {
	db := configs.GetDB()
	return &OwnershipService{
		db:   db,
		repo: repositories.NewOwnershipRepository(),
	}
}

// ownershipAction bir koleksiyon değişikliğinin satıra etkisi.
type ownershipAction int

const (
	ownershipCreate ownershipAction = iota
	ownershipUpdate
	ownershipDelete
)

// resolveOwnershipChange mevcut sahiplik satırına uygulanacak işlemi
// belirler. Satır yokken negatif fark reddedilir. Düşüş adedi mevcut
// adedi sıfıra veya altına indirirse satır silinir ve kaydedilecek
// fark -count olarak kırpılır.
func resolveOwnershipChange(current *models.UserOwnedCard, difference int) (ownershipAction, int, int, error) {
	switch {
	case current == nil && difference < 0:
		return 0, 0, 0, ErrOwnershipBelowZero
	case current == nil:
		return ownershipCreate, difference, difference, nil
	case current.Count+difference <= 0:
		return ownershipDelete, 0, -current.Count, nil
	default:
		return ownershipUpdate, current.Count + difference, difference, nil
	}
}

// ApplyChange kullanıcının koleksiyonunu verilen fark kadar günceller.
// Adet sıfıra inerse sahiplik satırı silinir ve kaydedilen fark mevcut
// adede kırpılır. Satır yokken negatif fark reddedilir. Başarılı her
// değişiklik için bir UserCardChange satırı eklenir.
func (s *OwnershipService) ApplyChange(ctx context.Context, userID uint, localisationID uint, difference int) error {
	if userID == 0 || localisationID == 0 || difference == 0 {
		return ErrOwnershipInvalidInput
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := models.ContextWithUserID(ctx, userID)
		repoTx := repositories.NewOwnershipRepositoryTx(tx)

		// a. Lokalizasyon var mı?
		if _, err := repoTx.GetLocalisationByID(txCtx, localisationID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrLocalisationNotFound
			}
			return err
		}

		// b. Sahiplik satırını kilitli al
		var owned models.UserOwnedCard
		err := tx.WithContext(txCtx).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("card_localisation_id = ? AND owner_id = ?", localisationID, userID).
			First(&owned).Error
		hasRow := err == nil
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var current *models.UserOwnedCard
		if hasRow {
			current = &owned
		}
		action, newCount, recorded, resolveErr := resolveOwnershipChange(current, difference)
		if resolveErr != nil {
			return resolveErr
		}
		switch action {
		case ownershipCreate:
			owned = models.UserOwnedCard{
				CardLocalisationID: localisationID,
				OwnerID:            userID,
				Count:              newCount,
			}
			if err := repoTx.CreateOwnership(txCtx, &owned); err != nil {
				return err
			}
		case ownershipDelete:
			if err := repoTx.DeleteOwnership(txCtx, &owned); err != nil {
				return err
			}
		case ownershipUpdate:
			owned.Count = newCount
			if err := repoTx.SaveOwnership(txCtx, &owned); err != nil {
				return err
			}
		}

		change := models.UserCardChange{
			CardLocalisationID: localisationID,
			OwnerID:            userID,
			Difference:         recorded,
			Date:               time.Now(),
		}
		return repoTx.CreateChange(txCtx, &change)
	})

	if txErr != nil {
		var svcErr OwnershipServiceError
		if errors.As(txErr, &svcErr) {
			return txErr
		}
		configslog.Log.Error("ApplyChange: transaction başarısız",
			zap.Uint("user_id", userID),
			zap.Uint("localisation_id", localisationID),
			zap.Int("difference", difference),
			zap.Error(txErr))
		return ErrOwnershipChangeFailed
	}
	return nil
}

// GetLocalisationByID lokalizasyonu dil ve baskı bilgisiyle getirir.
func (s *OwnershipService) GetLocalisationByID(ctx context.Context, id uint) (*models.CardLocalisation, error) {
	loc, err := s.repo.GetLocalisationByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrLocalisationNotFound
		}
		return nil, err
	}
	return loc, nil
}

// GetOwnershipTab kullanıcının bu karta ait sahiplik ve değişiklik
// geçmişini getirir.
func (s *OwnershipService) GetOwnershipTab(ctx context.Context, cardID uint, ownerID uint) (*OwnershipTabData, error) {
	ownerships, err := s.repo.OwnershipsForCard(ctx, cardID, ownerID)
	if err != nil {
		return nil, err
	}
	changes, err := s.repo.ChangesForCard(ctx, cardID, ownerID)
	if err != nil {
		return nil, err
	}
	return &OwnershipTabData{Ownerships: ownerships, Changes: changes}, nil
}

// GetSummary kart geneli ve seçili baskı için toplam adetleri getirir.
func (s *OwnershipService) GetSummary(ctx context.Context, cardID uint, printingID uint, ownerID uint) (*OwnershipSummary, error) {
	cardTotal, err := s.repo.CardOwnershipTotal(ctx, cardID, ownerID)
	if err != nil {
		return nil, err
	}
	printingTotal, err := s.repo.PrintingOwnershipTotal(ctx, printingID, ownerID)
	if err != nil {
		return nil, err
	}
	return &OwnershipSummary{CardTotal: int64(cardTotal), PrintingTotal: int64(printingTotal)}, nil
}

var _ IOwnershipService = (*OwnershipService)(nil)
