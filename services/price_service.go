package services

import (
	"context"
	"time"

	"kartoteka.link/models"
	"kartoteka.link/repositories"
)

// PricePoint tek bir günün fiyat değeri.
type PricePoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// PriceSeries bir fiyat türünün zaman serisi.
type PriceSeries struct {
	Label    string       `json:"label"`
	Currency string       `json:"currency"`
	Prices   []PricePoint `json:"prices"`
}

// IPriceService fiyat okuma işlemleri için arayüz.
type IPriceService interface {
	GetLatestPrice(ctx context.Context, printingID uint) (*models.CardPrice, error)
	GetPriceSeries(ctx context.Context, printingID uint) (map[string]PriceSeries, error)
}

// PriceService IPriceService arayüzünü uygular.
type PriceService struct {
	repo repositories.IPriceRepository
}

// NewPriceService yeni bir PriceService örneği oluşturur.
func NewPriceService() IPriceService {
	return &PriceService{repo: repositories.NewPriceRepository()}
}

// GetLatestPrice baskının en güncel fiyat satırını getirir, yoksa nil.
func (s *PriceService) GetLatestPrice(ctx context.Context, printingID uint) (*models.CardPrice, error) {
	return s.repo.LatestPriceForPrinting(ctx, printingID)
}

// GetPriceSeries baskının fiyat geçmişini grafik verisi olarak döndürür.
// Değeri olmayan günler seriye alınmaz.
func (s *PriceService) GetPriceSeries(ctx context.Context, printingID uint) (map[string]PriceSeries, error) {
	prices, err := s.repo.PricesForPrinting(ctx, printingID)
	if err != nil {
		return nil, err
	}

	paper := PriceSeries{Label: "paper", Currency: "dollars", Prices: []PricePoint{}}
	paperFoil := PriceSeries{Label: "paper-foil", Currency: "dollars", Prices: []PricePoint{}}
	for _, price := range prices {
		day := price.Date.Format(time.DateOnly)
		if price.PaperValue != nil {
			paper.Prices = append(paper.Prices, PricePoint{Date: day, Value: *price.PaperValue})
		}
		if price.PaperFoilValue != nil {
			paperFoil.Prices = append(paperFoil.Prices, PricePoint{Date: day, Value: *price.PaperFoilValue})
		}
	}

	result := map[string]PriceSeries{"paper": paper}
	if len(paperFoil.Prices) > 0 {
		result["paper-foil"] = paperFoil
	}
	return result, nil
}

var _ IPriceService = (*PriceService)(nil)
