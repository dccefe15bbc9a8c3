package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"kartoteka.link/configs/configslog"
	"kartoteka.link/models"
	"kartoteka.link/pkg/queryparams"
	"kartoteka.link/repositories"

	"go.uber.org/zap"
)

// CardServiceError özel servis hataları
type CardServiceError string

func (e CardServiceError) Error() string { return string(e) }

const (
	ErrCardNotFound     CardServiceError = "kart bulunamadı"
	ErrPrintingNotFound CardServiceError = "baskı bulunamadı"
	ErrCardInvalidInput CardServiceError = "geçersiz girdi verisi"
)

// ExternalLink bir kart için dış site bağlantısı.
type ExternalLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// AutocompleteEntry isim tamamlama önerisi.
type AutocompleteEntry struct {
	Label string `json:"label"`
	Value string `json:"value"`
	ID    uint   `json:"id"`
}

// ICardService kart okuma işlemleri için arayüz.
type ICardService interface {
	SearchCardsByName(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	GetCardByID(ctx context.Context, id uint) (*models.Card, error)
	GetCardWithPrintings(ctx context.Context, id uint) (*models.Card, error)
	GetPrintingByID(ctx context.Context, id uint) (*models.CardPrinting, error)
	GetPrintingWithSetSiblings(ctx context.Context, id uint) (*models.CardPrinting, error)
	GetRulingsForCard(ctx context.Context, cardID uint) ([]models.CardRuling, error)
	Autocomplete(ctx context.Context, query string) ([]AutocompleteEntry, error)
	ExternalLinks(ctx context.Context, cardID uint) ([]ExternalLink, error)
}

// CardService ICardService arayüzünü uygular.
type CardService struct {
	cardRepo repositories.ICardRepository
}

// NewCardService yeni bir CardService örneği oluşturur.
func NewCardService() ICardService {
	return &CardService{cardRepo: repositories.NewCardRepository()}
}

// SearchCardsByName isim parçasına göre sayfalı kart araması yapar.
func (s *CardService) SearchCardsByName(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	cards, total, err := s.cardRepo.SearchCardsByName(ctx, params.Name, params)
	if err != nil {
		configslog.Log.Error("SearchCardsByName: arama başarısız", zap.String("name", params.Name), zap.Error(err))
		return nil, err
	}
	return &queryparams.PaginatedResult{
		Data: cards,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalItems:  total,
			TotalPages:  queryparams.CalculateTotalPages(total, params.PerPage),
		},
	}, nil
}

// GetCardByID kartı yüzleriyle birlikte getirir.
func (s *CardService) GetCardByID(ctx context.Context, id uint) (*models.Card, error) {
	card, err := s.cardRepo.GetCardByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}
	return card, nil
}

// GetCardWithPrintings kartı tüm baskı grafiğiyle getirir.
func (s *CardService) GetCardWithPrintings(ctx context.Context, id uint) (*models.Card, error) {
	card, err := s.cardRepo.GetCardWithPrintings(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}
	return card, nil
}

// GetPrintingByID tek bir baskıyı getirir.
func (s *CardService) GetPrintingByID(ctx context.Context, id uint) (*models.CardPrinting, error) {
	printing, err := s.cardRepo.GetPrintingByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPrintingNotFound
		}
		return nil, err
	}
	return printing, nil
}

// GetPrintingWithSetSiblings baskıyı aynı kartın diğer baskılarıyla birlikte getirir.
func (s *CardService) GetPrintingWithSetSiblings(ctx context.Context, id uint) (*models.CardPrinting, error) {
	printing, err := s.cardRepo.GetPrintingWithSetSiblings(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPrintingNotFound
		}
		return nil, err
	}
	return printing, nil
}

// GetRulingsForCard kartın kurallarını tarih sırasıyla getirir.
func (s *CardService) GetRulingsForCard(ctx context.Context, cardID uint) ([]models.CardRuling, error) {
	return s.cardRepo.GetRulingsForCard(ctx, cardID)
}

// autocompleteLimit öneri listesinin üst sınırı.
const autocompleteLimit = 10

// Autocomplete isim tamamlama önerileri döndürür. Sorguyla başlayan
// isimler önce gelir, liste en fazla on kayıtla sınırlıdır.
func (s *CardService) Autocomplete(ctx context.Context, query string) ([]AutocompleteEntry, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []AutocompleteEntry{}, nil
	}
	cards, err := s.cardRepo.AutocompleteByName(ctx, query, autocompleteLimit)
	if err != nil {
		configslog.Log.Error("Autocomplete: sorgu başarısız", zap.String("query", query), zap.Error(err))
		return nil, err
	}

	lowered := strings.ToLower(query)
	sort.SliceStable(cards, func(i, j int) bool {
		iPrefix := strings.HasPrefix(strings.ToLower(cards[i].Name), lowered)
		jPrefix := strings.HasPrefix(strings.ToLower(cards[j].Name), lowered)
		if iPrefix != jPrefix {
			return iPrefix
		}
		return cards[i].Name < cards[j].Name
	})

	entries := make([]AutocompleteEntry, 0, len(cards))
	for _, card := range cards {
		entries = append(entries, AutocompleteEntry{
			Label: card.DisplayName(),
			Value: card.DisplayName(),
			ID:    card.ID,
		})
		if len(entries) >= autocompleteLimit {
			break
		}
	}
	return entries, nil
}

// ExternalLinks kart için dış site bağlantılarını üretir. İngilizce ve
// multiverse numarası olan bir lokalizasyon varsa Gatherer bağlantısı
// listenin başına eklenir.
func (s *CardService) ExternalLinks(ctx context.Context, cardID uint) ([]ExternalLink, error) {
	card, err := s.GetCardByID(ctx, cardID)
	if err != nil {
		return nil, err
	}

	faceName := card.FirstFace().Name

	links := []ExternalLink{
		{Name: "Search on Channel Fireball", URL: "https://store.channelfireball.com/products/search?" + url.Values{"q": {card.Name}}.Encode()},
		{Name: "TCGPlayer Decks", URL: "https://decks.tcgplayer.com/magic/deck/search?" + url.Values{"contains": {card.Name}, "page": {"1"}}.Encode()},
		{Name: "Card Analysis on EDHREC", URL: "https://edhrec.com/route/?" + url.Values{"cc": {faceName}}.Encode()},
		{Name: "Search on DeckStats", URL: "https://deckstats.net/decks/search/?" + url.Values{"search_cards[]": {card.Name}}.Encode()},
		{Name: "MTGTop8 decks", URL: "https://mtgtop8.com/search?" + url.Values{"MD_check": {"1"}, "SB_check": {"1"}, "cards": {faceName}}.Encode()},
		{Name: "Search on Starcity Games", URL: "https://starcitygames.com/search/?" + url.Values{"search_query": {card.Name}}.Encode()},
		{Name: "Search on Scryfall", URL: "https://scryfall.com/search?q=" + url.Values{"name": {card.Name}}.Encode()},
		{Name: "Card Kingdom", URL: "https://www.cardkingdom.com/catalog/search?" + url.Values{"search": {"header"}, "filter[name]": {cardKingdomFilter(card)}}.Encode()},
	}

	localisation, err := s.cardRepo.GetLastEnglishLocalisationWithMultiverseID(ctx, cardID)
	if err != nil {
		return nil, err
	}
	if localisation != nil && localisation.MultiverseID != nil {
		gatherer := ExternalLink{
			Name: "View on Gatherer",
			URL:  "https://gatherer.wizards.com/Pages/Card/Details.aspx?" + url.Values{"multiverseid": {fmt.Sprint(*localisation.MultiverseID)}}.Encode(),
		}
		links = append([]ExternalLink{gatherer}, links...)
	}
	return links, nil
}

// cardKingdomFilter mağaza aramasında kullanılan isim filtresini üretir.
// Bölünmüş kartlar iki yüz adıyla, jetonlar "token" ekiyle aranır.
func cardKingdomFilter(card *models.Card) string {
	if !card.IsToken {
		if card.Layout == models.LayoutSplit || card.Layout == models.LayoutAftermath {
			names := make([]string, 0, len(card.Faces))
			for _, face := range card.Faces {
				names = append(names, face.Name)
			}
			return strings.Join(names, " // ")
		}
		return card.FirstFace().Name
	}
	for _, face := range card.Faces {
		if strings.Contains(face.TypeLine, "Emblem") {
			return fmt.Sprintf("Emblem (%s)", strings.ReplaceAll(card.Name, " Emblem", ""))
		}
	}
	return card.Name + " token"
}

var _ ICardService = (*CardService)(nil)
