package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"strings"

	"kartoteka.link/configs"
	"kartoteka.link/configs/configslog"
	"kartoteka.link/models"
	"kartoteka.link/pkg/queryparams"
	"kartoteka.link/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DeckServiceError özel servis hataları
type DeckServiceError string

func (e DeckServiceError) Error() string { return string(e) }

const (
	ErrDeckNotFound       DeckServiceError = "deste bulunamadı"
	ErrDeckForbidden      DeckServiceError = "bu işlem için yetkiniz yok"
	ErrDeckInvalidInput   DeckServiceError = "geçersiz girdi verisi"
	ErrDeckValidation     DeckServiceError = "deste format kurallarına uymuyor"
	ErrDeckSaveFailed     DeckServiceError = "deste kaydedilemedi"
	ErrDeckDeletionFailed DeckServiceError = "deste silinemedi"
)

// DeckCardInput kaydedilecek bir deste satırı.
type DeckCardInput struct {
	CardID      uint
	Count       int
	Board       string
	IsCommander bool
}

// CardDecksTabData bir kartın geçtiği desteler sekmesinin içeriği.
type CardDecksTabData struct {
	DeckCards []models.DeckCard
	CardCount int
	DeckCount int
}

// ColourWeights ana desteki mana sembolü ağırlıkları.
type ColourWeights struct {
	LandSymbols map[string]int
	CostSymbols map[string]int
}

// DeckStats kullanıcının deste istatistikleri.
type DeckStats struct {
	DeckCount   int64
	UnusedCards []models.Card
}

// IDeckService deste işlemleri için arayüz.
type IDeckService interface {
	GetDeckByID(ctx context.Context, id uint, requestingUserID uint) (*models.Deck, error)
	GetDecksForUser(ctx context.Context, ownerID uint, prototype bool, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	SaveDeck(ctx context.Context, userID uint, deck *models.Deck, cards []DeckCardInput) error
	DeleteDeck(ctx context.Context, id uint, userID uint) error
	GetDecksForCard(ctx context.Context, cardID uint, ownerID uint) (*CardDecksTabData, error)
	GetColourWeights(deck *models.Deck) ColourWeights
	GetStats(ctx context.Context, user *models.User) (*DeckStats, error)
}

// DeckService IDeckService arayüzünü uygular.
type DeckService struct {
	db       *gorm.DB
	repo     repositories.IDeckRepository
	cardRepo repositories.ICardRepository
}

// NewDeckService yeni bir DeckService örneği oluşturur.
func NewDeckService() IDeckService {
	return &DeckService{
		db:       configs.GetDB(),
		repo:     repositories.NewDeckRepository(),
		cardRepo: repositories.NewCardRepository(),
	}
}

// GetDeckByID desteyi getirir. Gizli desteleri yalnızca sahibi görebilir.
func (s *DeckService) GetDeckByID(ctx context.Context, id uint, requestingUserID uint) (*models.Deck, error) {
	deck, err := s.repo.GetDeckByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrDeckNotFound
		}
		return nil, err
	}
	if deck.IsPrivate && deck.OwnerID != requestingUserID {
		return nil, ErrDeckForbidden
	}
	return deck, nil
}

// GetDecksForUser kullanıcının destelerini sayfalı getirir; prototype
// bayrağı tamamlanmış ve taslak listelerini ayırır.
func (s *DeckService) GetDecksForUser(ctx context.Context, ownerID uint, prototype bool, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	decks, total, err := s.repo.FindDecksByOwnerPaginated(ctx, ownerID, prototype, params)
	if err != nil {
		configslog.Log.Error("GetDecksForUser: listeleme başarısız", zap.Uint("owner_id", ownerID), zap.Error(err))
		return nil, err
	}
	return &queryparams.PaginatedResult{
		Data: decks,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalItems:  total,
			TotalPages:  queryparams.CalculateTotalPages(total, params.PerPage),
		},
	}, nil
}

// SaveDeck desteyi ve satırlarını tek transaction içinde yazar. Format
// kuralları kaydetmeden önce doğrulanır.
func (s *DeckService) SaveDeck(ctx context.Context, userID uint, deck *models.Deck, cards []DeckCardInput) error {
	if userID == 0 || deck == nil || strings.TrimSpace(deck.Name) == "" {
		return ErrDeckInvalidInput
	}
	if _, ok := models.DeckFormatChoices()[deck.Format]; !ok {
		return fmt.Errorf("%w: bilinmeyen format %q", ErrDeckInvalidInput, deck.Format)
	}
	boards := map[string]bool{}
	for _, b := range models.DeckBoards() {
		boards[b] = true
	}
	for _, row := range cards {
		if row.CardID == 0 || row.Count <= 0 || !boards[row.Board] {
			return ErrDeckInvalidInput
		}
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := models.ContextWithUserID(ctx, userID)
		repoTx := repositories.NewDeckRepositoryTx(tx)
		cardRepoTx := repositories.NewCardRepositoryTx(tx)

		if deck.ID != 0 {
			existing, err := repoTx.GetDeckByID(txCtx, deck.ID)
			if err != nil {
				if errors.Is(err, repositories.ErrNotFound) {
					return ErrDeckNotFound
				}
				return err
			}
			if existing.OwnerID != userID {
				return ErrDeckForbidden
			}
		} else {
			deck.OwnerID = userID
		}

		rows := make([]models.DeckCard, 0, len(cards))
		for _, input := range cards {
			card, err := cardRepoTx.GetCardByID(txCtx, input.CardID)
			if err != nil {
				if errors.Is(err, repositories.ErrNotFound) {
					return fmt.Errorf("%w: kart %d", ErrDeckInvalidInput, input.CardID)
				}
				return err
			}
			rows = append(rows, models.DeckCard{
				CardID:      card.ID,
				Count:       input.Count,
				Board:       input.Board,
				IsCommander: input.IsCommander,
				Card:        *card,
			})
		}

		// Taslaklar kurallara uymak zorunda değildir.
		if !deck.IsPrototype {
			if err := validateDeckFormat(txCtx, cardRepoTx, deck.Format, rows); err != nil {
				return err
			}
		}

		if deck.ID == 0 {
			if err := repoTx.Create(txCtx, deck); err != nil {
				return err
			}
		} else if err := repoTx.Save(txCtx, deck); err != nil {
			return err
		}
		return repoTx.ReplaceCards(txCtx, deck.ID, rows)
	})

	if txErr != nil {
		var svcErr DeckServiceError
		if errors.As(txErr, &svcErr) {
			return txErr
		}
		configslog.Log.Error("SaveDeck: transaction başarısız", zap.Uint("user_id", userID), zap.Error(txErr))
		return ErrDeckSaveFailed
	}
	configslog.SLog.Infof("Deste kaydedildi: %s (ID %d, kullanıcı %d)", deck.Name, deck.ID, userID)
	return nil
}

// DeleteDeck desteyi sahibi adına siler.
func (s *DeckService) DeleteDeck(ctx context.Context, id uint, userID uint) error {
	deck, err := s.repo.GetDeckByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrDeckNotFound
		}
		return err
	}
	if deck.OwnerID != userID {
		return ErrDeckForbidden
	}
	ctxWithUser := models.ContextWithUserID(ctx, userID)
	if err := s.repo.Delete(ctxWithUser, deck.ID); err != nil {
		configslog.Log.Error("DeleteDeck: silme başarısız", zap.Uint("deck_id", id), zap.Error(err))
		return ErrDeckDeletionFailed
	}
	return nil
}

// GetDecksForCard kartın geçtiği desteleri ve toplam adetleri getirir.
func (s *DeckService) GetDecksForCard(ctx context.Context, cardID uint, ownerID uint) (*CardDecksTabData, error) {
	deckCards, err := s.repo.DeckCardsForCard(ctx, cardID, ownerID)
	if err != nil {
		return nil, err
	}
	data := &CardDecksTabData{DeckCards: deckCards}
	seenDecks := map[uint]bool{}
	for _, dc := range deckCards {
		data.CardCount += dc.Count
		if !seenDecks[dc.DeckID] {
			seenDecks[dc.DeckID] = true
			data.DeckCount++
		}
	}
	return data, nil
}

// landAddPattern bir arazinin üretebildiği mana sembolünü kural
// metninden yakalar ("{T}: Add {G}." gibi).
func landAddPattern(symbol string) *regexp.Regexp {
	return regexp.MustCompile(`(?i):.*?add[^\n]*?\{` + symbol + `\}`)
}

var colourSymbols = []string{"W", "U", "B", "R", "G"}

// GetColourWeights ana destedeki renk ağırlıklarını hesaplar. Araziler
// üretebildikleri sembollere, diğer kartlar maliyet sembollerine sayılır.
func (s *DeckService) GetColourWeights(deck *models.Deck) ColourWeights {
	weights := ColourWeights{
		LandSymbols: map[string]int{},
		CostSymbols: map[string]int{},
	}
	mainboard := deck.BoardCards(models.BoardMain)
	for _, symbol := range colourSymbols {
		pattern := landAddPattern(symbol)
		for _, dc := range mainboard {
			for _, face := range dc.Card.Faces {
				if strings.Contains(face.TypeLine, "Land") && pattern.MatchString(face.RulesText) {
					weights.LandSymbols[symbol] += dc.Count
				}
				weights.CostSymbols[symbol] += strings.Count(face.ManaCost, symbol) * dc.Count
			}
		}
		if weights.LandSymbols[symbol] == 0 {
			delete(weights.LandSymbols, symbol)
		}
		if weights.CostSymbols[symbol] == 0 {
			delete(weights.CostSymbols, symbol)
		}
	}
	return weights
}

// unusedCardsLimit istatistik sayfasında gösterilen öneri sayısı.
const unusedCardsLimit = 10

// GetStats kullanıcının deste sayısını ve hiçbir destede kullanılmayan
// kartlardan tohuma bağlı rastgele bir seçkiyi getirir.
func (s *DeckService) GetStats(ctx context.Context, user *models.User) (*DeckStats, error) {
	deckCount, err := s.repo.CountDecksByOwner(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	cardIDs, err := s.repo.UnusedOwnedCardIDs(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	// Aynı tohum her seferinde aynı seçkiyi verir.
	rng := rand.New(rand.NewSource(user.UnusedCardsSeed))
	rng.Shuffle(len(cardIDs), func(i, j int) {
		cardIDs[i], cardIDs[j] = cardIDs[j], cardIDs[i]
	})
	if len(cardIDs) > unusedCardsLimit {
		cardIDs = cardIDs[:unusedCardsLimit]
	}

	unused := make([]models.Card, 0, len(cardIDs))
	for _, id := range cardIDs {
		card, err := s.cardRepo.GetCardByID(ctx, id)
		if err != nil {
			return nil, err
		}
		unused = append(unused, *card)
	}
	return &DeckStats{DeckCount: deckCount, UnusedCards: unused}, nil
}

// validateDeckFormat deste satırlarını format kurallarına göre denetler.
func validateDeckFormat(ctx context.Context, cardRepo repositories.ICardRepository, format string, rows []models.DeckCard) error {
	switch format {
	case models.FormatEDH:
		if err := validateCardLimit(rows, 1); err != nil {
			return err
		}
		if err := validateCommander(rows); err != nil {
			return err
		}
		if err := validateMinimumSize(rows, 100); err != nil {
			return err
		}
		if err := validateBoardLimit(rows, models.BoardSide, 0); err != nil {
			return err
		}
	case models.FormatHighlander:
		if err := validateCardLimit(rows, 1); err != nil {
			return err
		}
		if err := validateMinimumSize(rows, 100); err != nil {
			return err
		}
	case models.FormatBrawl:
		if err := validateCardLimit(rows, 1); err != nil {
			return err
		}
		if err := validateMinimumSize(rows, 60); err != nil {
			return err
		}
		if err := validateCommander(rows); err != nil {
			return err
		}
	case models.FormatStandard, models.FormatLegacy, models.FormatVintage, models.FormatModern:
		if err := validateCardLimit(rows, 4); err != nil {
			return err
		}
		if err := validateMinimumSize(rows, 60); err != nil {
			return err
		}
		if err := validateBoardLimit(rows, models.BoardSide, 15); err != nil {
			return err
		}
	case models.FormatPauper:
		if err := validateRarities(ctx, cardRepo, rows, models.RaritySymbolCommon); err != nil {
			return err
		}
	}
	return nil
}

// anyNumberText tahta sınırından muaf kartların kural metni kalıbı.
const anyNumberText = "a deck can have any number of cards named"

func validateCardLimit(rows []models.DeckCard, limit int) error {
	var over []string
	for _, row := range rows {
		if row.Count <= limit {
			continue
		}
		exempt := false
		for _, face := range row.Card.Faces {
			if strings.Contains(face.TypeLine, "Basic") ||
				strings.Contains(strings.ToLower(face.RulesText), anyNumberText) {
				exempt = true
				break
			}
		}
		if !exempt {
			over = append(over, row.Card.Name)
		}
	}
	if len(over) > 0 {
		return fmt.Errorf("%w: şu kartlardan %d adetten fazla var: %s",
			ErrDeckValidation, limit, strings.Join(over, ", "))
	}
	return nil
}

func validateCommander(rows []models.DeckCard) error {
	var commanders []models.DeckCard
	for _, row := range rows {
		if row.IsCommander {
			commanders = append(commanders, row)
		}
	}
	if len(commanders) == 0 {
		return fmt.Errorf("%w: komutan destesinde en az bir komutan olmalı", ErrDeckValidation)
	}
	if len(commanders) > 1 {
		for _, row := range commanders {
			hasPartner := false
			for _, face := range row.Card.Faces {
				if strings.Contains(strings.ToLower(face.RulesText), "partner") {
					hasPartner = true
					break
				}
			}
			if !hasPartner {
				return fmt.Errorf("%w: birden fazla komutan ancak partner ile mümkün", ErrDeckValidation)
			}
		}
	}
	for _, row := range commanders {
		isLegend := false
		for _, face := range row.Card.Faces {
			if strings.Contains(face.TypeLine, "Legend") {
				isLegend = true
				break
			}
		}
		if !isLegend {
			return fmt.Errorf("%w: komutan efsanevi olmalı", ErrDeckValidation)
		}
	}
	return nil
}

func validateMinimumSize(rows []models.DeckCard, minimum int) error {
	total := 0
	for _, row := range rows {
		if row.Board == models.BoardMain {
			total += row.Count
		}
	}
	if total < minimum {
		return fmt.Errorf("%w: ana destede yeterli kart yok (%d/%d)", ErrDeckValidation, total, minimum)
	}
	return nil
}

func validateBoardLimit(rows []models.DeckCard, board string, maxCount int) error {
	total := 0
	for _, row := range rows {
		if row.Board == board {
			total += row.Count
		}
	}
	if total > maxCount {
		return fmt.Errorf("%w: %s tahtasında en fazla %d kart olabilir", ErrDeckValidation, board, maxCount)
	}
	return nil
}

// validateRarities tüm kartların izin verilen nadirlikte bir baskısı
// olduğunu denetler.
func validateRarities(ctx context.Context, cardRepo repositories.ICardRepository, rows []models.DeckCard, allowedSymbol string) error {
	for _, row := range rows {
		card, err := cardRepo.GetCardWithPrintings(ctx, row.CardID)
		if err != nil {
			return err
		}
		allowed := false
		for _, printing := range card.Printings {
			if printing.Rarity.Symbol == allowedSymbol {
				allowed = true
				break
			}
		}
		if !allowed {
			return fmt.Errorf("%w: %s izin verilen nadirlikte değil", ErrDeckValidation, card.Name)
		}
	}
	return nil
}

var _ IDeckService = (*DeckService)(nil)
