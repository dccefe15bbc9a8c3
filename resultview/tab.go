package resultview

// Tab bir arama sonucunun içerik sekmesi. İki başlık parçası da
// (sahiplik özeti ve set özeti) aynı yükleme düzeneğini kullanır ama
// sekme çubuğunda görünmez.
type Tab string

const (
	TabDetails   Tab = "details"
	TabRulings   Tab = "rulings"
	TabLanguages Tab = "languages"
	TabOwnership Tab = "ownership"
	TabAdd       Tab = "add"
	TabDecks     Tab = "decks"
	TabLinks     Tab = "links"
	TabPrices    Tab = "prices"

	// Başlık parçaları; Tabs() listesinde yer almaz.
	TabOwnershipSummary Tab = "ownership_summary"
	TabSetSummary       Tab = "set_summary"
)

// Tabs sekme çubuğundaki sekmeleri görünüm sırasıyla döndürür.
func Tabs() []Tab {
	return []Tab{
		TabDetails, TabRulings, TabLanguages, TabOwnership,
		TabAdd, TabDecks, TabLinks, TabPrices,
	}
}

// RequiresAuth sekmenin giriş gerektirip gerektirmediğini döndürür.
func (t Tab) RequiresAuth() bool {
	switch t {
	case TabOwnership, TabAdd, TabDecks:
		return true
	}
	return false
}

// PrintingScoped içeriği seçili baskıya bağlı olan sekmeler için true
// döner. Bu sekmelerin parça adresi baskı ID'siyle, kart kapsamlı
// sekmelerinki kart ID'siyle kurulur.
func (t Tab) PrintingScoped() bool {
	switch t {
	case TabDetails, TabLanguages, TabAdd, TabPrices, TabSetSummary:
		return true
	}
	return false
}

// Valid sekme adının bilinen bir sekme olup olmadığını döndürür.
func (t Tab) Valid() bool {
	for _, tab := range Tabs() {
		if t == tab {
			return true
		}
	}
	return false
}
