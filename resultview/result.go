package resultview

// LoginRequiredContent giriş gerektiren sekmelerin, oturum yokken
// fetch yapılmadan gösterilen yer tutucu içeriği.
const LoginRequiredContent = `<p class="login-required">Bu sekme için giriş yapmalısınız.</p>`

// Printing bir sonucun baskı seçicisindeki tek girdi. Sıra, sunucunun
// verdiği set sırasıdır ve klavye gezinmesi bu sıraya göre çalışır.
type Printing struct {
	ID      uint
	SetName string
}

// pane tek bir sekmenin yüklenen içeriği. token alanı o pane için
// başlatılan son isteğin numarasıdır; daha eski bir isteğin sonucu
// geldiğinde atılır.
type pane struct {
	content string
	err     error
	loading bool
	token   uint64
}

// CardResult arama sayfasındaki tek bir kart sonucunun durumudur.
// Her sonuç kendi durumunu taşır; sonuçlar arasında paylaşılan tek
// şey sekme tercihidir.
type CardResult struct {
	CardID    uint
	printings []Printing
	selected  int
	expanded  bool
	activeTab Tab
	panes     map[Tab]*pane

	// Koleksiyon formu durumu
	formLocked bool
	countValue int

	// Kaydırma konumu; içerik yenilense de korunur.
	scrollOffset int
}

// NewCardResult verilen baskı listesiyle kapalı bir sonuç oluşturur.
func NewCardResult(cardID uint, printings []Printing) *CardResult {
	r := &CardResult{
		CardID:    cardID,
		printings: printings,
		activeTab: TabDetails,
		panes:     map[Tab]*pane{},
	}
	for _, tab := range Tabs() {
		r.panes[tab] = &pane{}
	}
	r.panes[TabOwnershipSummary] = &pane{}
	r.panes[TabSetSummary] = &pane{}
	return r
}

// SelectedPrintingID seçili baskının ID'sini döndürür.
func (r *CardResult) SelectedPrintingID() uint {
	if len(r.printings) == 0 {
		return 0
	}
	return r.printings[r.selected].ID
}

// SelectedIndex seçili baskının listedeki konumunu döndürür.
func (r *CardResult) SelectedIndex() int { return r.selected }

// Printings baskı seçicisinin girdilerini döndürür.
func (r *CardResult) Printings() []Printing { return r.printings }

// indexOfPrinting baskının listedeki konumunu bulur, yoksa -1 döner.
func (r *CardResult) indexOfPrinting(printingID uint) int {
	for i, p := range r.printings {
		if p.ID == printingID {
			return i
		}
	}
	return -1
}
