package queryparams

import "strings"

// Liste sorguları için varsayılan değerler ve sınırlar.
const (
	DefaultPage    = 1
	DefaultPerPage = 20
	MaxPerPage     = 100
	DefaultOrderBy = "desc"
)

// ListParams liste uçlarında querystring'den okunan ortak parametrelerdir.
type ListParams struct {
	Page    int    `query:"page"`
	PerPage int    `query:"per_page"`
	SortBy  string `query:"sort_by"`
	OrderBy string `query:"order_by"`
	Name    string `query:"name"`   // Ad filtresi (kart/deste adı)
	Status  string `query:"status"` // Durum filtresi
}

// DefaultListParams verilen sıralama sütunuyla varsayılan parametreleri üretir.
func DefaultListParams(sortBy string) ListParams {
	return ListParams{
		Page:    DefaultPage,
		PerPage: DefaultPerPage,
		SortBy:  sortBy,
		OrderBy: DefaultOrderBy,
	}
}

// Validate sayfa ve sıralama değerlerini güvenli aralıklara çeker.
func (p *ListParams) Validate() {
	if p.Page <= 0 {
		p.Page = DefaultPage
	}
	if p.PerPage <= 0 || p.PerPage > MaxPerPage {
		p.PerPage = DefaultPerPage
	}
	orderBy := strings.ToLower(p.OrderBy)
	if orderBy != "asc" && orderBy != "desc" {
		orderBy = DefaultOrderBy
	}
	p.OrderBy = orderBy
	p.Name = strings.TrimSpace(p.Name)
}

// CalculateOffset sayfalama için satır ofsetini hesaplar.
func (p ListParams) CalculateOffset() int {
	return (p.Page - 1) * p.PerPage
}

// PaginationMeta sayfalanmış bir sonucun üst verisidir.
type PaginationMeta struct {
	CurrentPage int
	PerPage     int
	TotalItems  int64
	TotalPages  int
}

// PaginatedResult veriyle birlikte sayfalama bilgisini taşır.
type PaginatedResult struct {
	Data interface{}
	Meta PaginationMeta
}

// CalculateTotalPages toplam kayıt sayısından sayfa sayısını hesaplar.
func CalculateTotalPages(totalItems int64, perPage int) int {
	if perPage <= 0 {
		return 0
	}
	pages := int(totalItems) / perPage
	if int(totalItems)%perPage != 0 {
		pages++
	}
	return pages
}

// PageButtons şablonlarda çizilecek sayfa düğmelerini üretir: aktif sayfanın
// etrafında `spread` kadar komşu, uçlarda ilk/son sayfa, aradaki boşluklar
// için 0 değerli ayraç.
func PageButtons(totalPages, currentPage, spread int) []int {
	if totalPages <= 1 {
		return nil
	}
	if currentPage < 1 {
		currentPage = 1
	}
	if currentPage > totalPages {
		currentPage = totalPages
	}

	var buttons []int
	prev := 0
	for page := 1; page <= totalPages; page++ {
		nearCurrent := page >= currentPage-spread && page <= currentPage+spread
		if page == 1 || page == totalPages || nearCurrent {
			if prev != 0 && page-prev > 1 {
				buttons = append(buttons, 0) // ayraç
			}
			buttons = append(buttons, page)
			prev = page
		}
	}
	return buttons
}
