package main

import (
	"bytes"
	"testing"

	"kartoteka.link/models"
	"kartoteka.link/pkg/queryparams"

	"github.com/PuerkitoBio/goquery"
	"github.com/gofiber/template/html/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestEngine main'deki kurulumun aynısıyla görünümleri yükler.
func newTestEngine(t *testing.T) *html.Engine {
	t.Helper()
	engine := html.New("./views", ".html")
	engine.AddFunc("pageButtons", queryparams.PageButtons)
	require.NoError(t, engine.Load())
	return engine
}

func renderDoc(t *testing.T, engine *html.Engine, template string, data map[string]interface{}) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, engine.Render(&buf, template, data))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func searchCard(id uint, name string, sets ...string) models.Card {
	card := models.Card{
		Name:   name,
		Layout: models.LayoutNormal,
		Faces:  []models.CardFace{{Name: name, TypeLine: "Instant"}},
	}
	card.ID = id
	for i, setName := range sets {
		printing := models.CardPrinting{Set: models.Set{Name: setName, Code: setName[:3]}}
		printing.ID = id*100 + uint(i)
		card.Printings = append(card.Printings, printing)
	}
	return card
}

func TestNameSearchTemplateResultStructure(t *testing.T) {
	engine := newTestEngine(t)

	doc := renderDoc(t, engine, "website/name_search", map[string]interface{}{
		"Params":          queryparams.ListParams{Name: "bolt"},
		"SelectedTab":     "rulings",
		"AutoExpand":      true,
		"IsAuthenticated": true,
		"Result": &queryparams.PaginatedResult{
			Data: []models.Card{searchCard(7, "Lightning Bolt", "Alpha", "Beta")},
			Meta: queryparams.PaginationMeta{CurrentPage: 1, TotalPages: 1},
		},
	})

	container := doc.Find("#search-results")
	assert.Equal(t, "rulings", container.AttrOr("data-selected-tab", ""))
	assert.Equal(t, "true", container.AttrOr("data-auto-expand", ""))
	assert.Equal(t, "true", container.AttrOr("data-logged-in", ""))

	results := doc.Find(".search-result")
	require.Equal(t, 1, results.Length())
	assert.Equal(t, "7", results.AttrOr("data-card-id", ""))

	// Sekme sırası sabittir; istemci bu sırayla gezinir.
	var tabs []string
	results.Find(".result-tabs li").Each(func(_ int, s *goquery.Selection) {
		tabs = append(tabs, s.AttrOr("data-tab", ""))
	})
	assert.Equal(t,
		[]string{"details", "rulings", "languages", "ownership", "add", "decks", "links", "prices"},
		tabs)

	// Her sekmenin bir panosu olmalı.
	results.Find(".result-tabs li").Each(func(_ int, s *goquery.Selection) {
		tab := s.AttrOr("data-tab", "")
		assert.Equal(t, 1, results.Find(`.tab-pane[data-tab="`+tab+`"]`).Length(), tab)
	})

	options := results.Find(".printing-list option")
	require.Equal(t, 2, options.Length())
	assert.Equal(t, "700", options.First().AttrOr("value", ""))
	assert.Contains(t, options.First().Text(), "Alpha")
}

func TestNameSearchTemplatePaginationSeparators(t *testing.T) {
	engine := newTestEngine(t)

	doc := renderDoc(t, engine, "website/name_search", map[string]interface{}{
		"Params":          queryparams.ListParams{Name: "elf"},
		"SelectedTab":     "details",
		"AutoExpand":      false,
		"IsAuthenticated": false,
		"Result": &queryparams.PaginatedResult{
			Data: []models.Card{searchCard(1, "Elf", "Alpha")},
			Meta: queryparams.PaginationMeta{CurrentPage: 10, TotalPages: 20},
		},
	})

	nav := doc.Find("nav.pagination")
	require.Equal(t, 1, nav.Length())
	// 1 … 8 9 10 11 12 … 20
	assert.Equal(t, 7, nav.Find("a").Length())
	assert.Equal(t, 2, nav.Find(".page-sep").Length())
	assert.Equal(t, "1", nav.Find("a").First().Text())
	assert.Equal(t, "20", nav.Find("a").Last().Text())
}

func TestDetailsFragmentTemplate(t *testing.T) {
	engine := newTestEngine(t)

	printing := models.CardPrinting{
		Number: "161",
		Card: models.Card{
			Name:   "Lightning Bolt",
			Layout: models.LayoutNormal,
			Faces: []models.CardFace{{
				Name:      "Lightning Bolt",
				ManaCost:  "{R}",
				TypeLine:  "Instant",
				RulesText: "Lightning Bolt deals 3 damage to any target.",
			}},
		},
		Set:    models.Set{Name: "Limited Edition Alpha", Code: "LEA"},
		Rarity: models.Rarity{Name: "Common"},
	}

	doc := renderDoc(t, engine, "website/fragments/details", map[string]interface{}{
		"Printing": printing,
	})

	face := doc.Find(".card-face")
	require.Equal(t, 1, face.Length())
	assert.Contains(t, face.Find("h3").Text(), "Lightning Bolt")
	assert.Equal(t, "{R}", face.Find(".mana-cost").Text())
	assert.Equal(t, "Instant", face.Find(".type-line").Text())
	assert.Contains(t, doc.Find(".printing-info").Text(), "Limited Edition Alpha")
	assert.Contains(t, doc.Find(".printing-info").Text(), "#161")
}

func TestAddFragmentTemplateFormFields(t *testing.T) {
	engine := newTestEngine(t)

	localisation := models.CardLocalisation{Language: models.Language{Name: "English", Code: "en"}}
	localisation.ID = 42
	printing := models.CardPrinting{
		Set:           models.Set{Name: "Beta"},
		Localisations: []models.CardLocalisation{localisation},
	}
	printing.ID = 9

	doc := renderDoc(t, engine, "website/fragments/add", map[string]interface{}{
		"Printing": printing,
	})

	form := doc.Find("form.ownership-change-form")
	require.Equal(t, 1, form.Length())
	assert.Equal(t, "/website/ajax/change_card_ownership", form.AttrOr("action", ""))
	assert.Equal(t, "9", form.AttrOr("data-printing-id", ""))
	assert.Equal(t, 1, form.Find(`input[name="count"]`).Length())

	option := form.Find(`select[name="localisation"] option`)
	require.Equal(t, 1, option.Length())
	assert.Equal(t, "42", option.AttrOr("value", ""))
	assert.Contains(t, option.Text(), "Beta")
}

func TestDeckUpdateTemplateRowAlignment(t *testing.T) {
	engine := newTestEngine(t)

	commander := models.DeckCard{
		CardID: 1, Count: 1, Board: models.BoardMain, IsCommander: true,
		Card: models.Card{Name: "Demo Legend"},
	}
	filler := models.DeckCard{
		CardID: 2, Count: 4, Board: models.BoardMain,
		Card: models.Card{Name: "Bear"},
	}
	deck := models.Deck{Name: "Test", Format: models.FormatEDH, Cards: []models.DeckCard{commander, filler}}
	deck.ID = 5

	doc := renderDoc(t, engine, "website/decks/update", map[string]interface{}{
		"Deck":    deck,
		"Formats": models.DeckFormatChoices(),
		"Boards":  models.DeckBoards(),
	})

	rows := doc.Find(".deck-row")
	require.Equal(t, 2, rows.Length())

	// Her satır komutan değerini gizli alanla gönderir; işaret kutusunun
	// adı yoktur, böylece paralel diziler hizalı kalır.
	rows.Each(func(_ int, row *goquery.Selection) {
		assert.Equal(t, 1, row.Find(`input[type="hidden"][name="is_commander"]`).Length())
		assert.Equal(t, 0, row.Find(`input[type="checkbox"][name]`).Length())
	})
	hidden := rows.Find(`input[name="is_commander"]`)
	assert.Equal(t, "true", hidden.First().AttrOr("value", ""))
	assert.Equal(t, "false", hidden.Last().AttrOr("value", ""))

	// Satır ekleme alanı.
	assert.Equal(t, 1, doc.Find(".deck-row-adder .deck-row-search").Length())
	assert.Equal(t, 1, doc.Find("datalist#deck-card-options").Length())
}
