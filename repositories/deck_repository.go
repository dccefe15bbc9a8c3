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

// IDeckRepository deste veritabanı işlemleri için arayüz.
type IDeckRepository interface {
	Create(ctx context.Context, deck *models.Deck) error
	Save(ctx context.Context, deck *models.Deck) error
	Delete(ctx context.Context, id uint) error
	GetDeckByID(ctx context.Context, id uint) (*models.Deck, error)
	ReplaceCards(ctx context.Context, deckID uint, cards []models.DeckCard) error
	FindDecksByOwnerPaginated(ctx context.Context, ownerID uint, prototype bool, params queryparams.ListParams) ([]models.Deck, int64, error)
	CountDecksByOwner(ctx context.Context, ownerID uint) (int64, error)
	DeckCardsForCard(ctx context.Context, cardID, ownerID uint) ([]models.DeckCard, error)
	UnusedOwnedCardIDs(ctx context.Context, ownerID uint) ([]uint, error)
}

// DeckRepository IDeckRepository arayüzünü uygular.
type DeckRepository struct {
	base *BaseRepository[models.Deck]
	db   *gorm.DB
}

// NewDeckRepository yeni bir DeckRepository örneği oluşturur.
func NewDeckRepository() IDeckRepository {
	db := configsdatabase.GetDB()
	base := NewBaseRepository[models.Deck](db)
	base.SetAllowedSortColumns([]string{"id", "created_at", "date_created", "name"})
	return &DeckRepository{base: base, db: db}
}

// NewDeckRepositoryTx transaction üzerinde çalışan bir örnek oluşturur.
func NewDeckRepositoryTx(tx *gorm.DB) IDeckRepository {
	return &DeckRepository{base: NewBaseRepository[models.Deck](tx), db: tx}
}

func (r *DeckRepository) Create(ctx context.Context, deck *models.Deck) error {
	return r.base.Create(ctx, deck)
}

func (r *DeckRepository) Save(ctx context.Context, deck *models.Deck) error {
	return r.base.Save(ctx, deck)
}

func (r *DeckRepository) Delete(ctx context.Context, id uint) error {
	return r.base.Delete(ctx, id)
}

// GetDeckByID desteyi kartları ve kart yüzleriyle birlikte getirir.
func (r *DeckRepository) GetDeckByID(ctx context.Context, id uint) (*models.Deck, error) {
	var deck models.Deck
	err := r.db.WithContext(ctx).
		Preload("Cards", func(db *gorm.DB) *gorm.DB {
			return db.Joins("JOIN cards ON cards.id = deck_cards.card_id").
				Order("cards.name asc")
		}).
		Preload("Cards.Card.Faces").
		First(&deck, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		configslog.Log.Error("DeckRepository.GetDeckByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &deck, nil
}

// ReplaceCards destenin kart listesini verilenlerle değiştirir.
// Transaction içinden çağrılmalıdır; eski satırlar kalıcı silinir.
func (r *DeckRepository) ReplaceCards(ctx context.Context, deckID uint, cards []models.DeckCard) error {
	if err := r.db.WithContext(ctx).Unscoped().
		Where("deck_id = ?", deckID).
		Delete(&models.DeckCard{}).Error; err != nil {
		return err
	}
	for i := range cards {
		cards[i].DeckID = deckID
		if err := r.db.WithContext(ctx).Create(&cards[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

// FindDecksByOwnerPaginated kullanıcının destelerini (final veya prototip)
// sayfalayarak getirir.
func (r *DeckRepository) FindDecksByOwnerPaginated(ctx context.Context, ownerID uint, prototype bool, params queryparams.ListParams) ([]models.Deck, int64, error) {
	var decks []models.Deck
	var totalCount int64

	query := r.db.WithContext(ctx).Model(&models.Deck{}).
		Where("owner_id = ? AND is_prototype = ?", ownerID, prototype)
	if params.Name != "" {
		query = query.Where("name ILIKE ?", "%"+params.Name+"%")
	}

	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}
	if totalCount == 0 {
		return decks, 0, nil
	}

	err := query.
		Order("date_created desc, updated_at desc, id desc").
		Limit(params.PerPage).
		Offset(params.CalculateOffset()).
		Preload("Cards").
		Find(&decks).Error
	return decks, totalCount, err
}

func (r *DeckRepository) CountDecksByOwner(ctx context.Context, ownerID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Deck{}).
		Where("owner_id = ?", ownerID).Count(&count).Error
	return count, err
}

// DeckCardsForCard kullanıcının destelerinde bu kartın geçtiği satırları,
// en yeni desteden başlayarak getirir (sonuç sayfası "desteler" sekmesi).
func (r *DeckRepository) DeckCardsForCard(ctx context.Context, cardID, ownerID uint) ([]models.DeckCard, error) {
	var deckCards []models.DeckCard
	err := r.db.WithContext(ctx).
		Joins("JOIN decks ON decks.id = deck_cards.deck_id").
		Where("deck_cards.card_id = ? AND decks.owner_id = ?", cardID, ownerID).
		Where("decks.deleted_at IS NULL").
		Order("decks.date_created desc").
		Preload("Deck").
		Preload("Card").
		Find(&deckCards).Error
	return deckCards, err
}

// UnusedOwnedCardIDs kullanıcının sahip olup hiçbir (prototip olmayan)
// destenin ana tahtasında kullanmadığı kartların ID'lerini döndürür.
func (r *DeckRepository) UnusedOwnedCardIDs(ctx context.Context, ownerID uint) ([]uint, error) {
	var cardIDs []uint
	err := r.db.WithContext(ctx).Model(&models.Card{}).
		Distinct("cards.id").
		Joins("JOIN card_printings ON card_printings.card_id = cards.id").
		Joins("JOIN card_localisations ON card_localisations.card_printing_id = card_printings.id").
		Joins("JOIN user_owned_cards ON user_owned_cards.card_localisation_id = card_localisations.id").
		Where("user_owned_cards.owner_id = ?", ownerID).
		Where("cards.is_token = ?", false).
		Where(`cards.id NOT IN (
			SELECT deck_cards.card_id FROM deck_cards
			JOIN decks ON decks.id = deck_cards.deck_id
			WHERE decks.owner_id = ? AND decks.is_prototype = ? AND deck_cards.board = ?
		)`, ownerID, false, models.BoardMain).
		Order("cards.id asc").
		Pluck("cards.id", &cardIDs).Error
	return cardIDs, err
}

var _ IDeckRepository = (*DeckRepository)(nil)
