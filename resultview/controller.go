package resultview

import (
	"context"
	"sync"
)

// Controller arama sonuçlarının açılma ve sekme durumunu yönetir.
// Aynı anda en fazla bir sonuç açık olur. Sekme tercihi Preferences
// üzerinden tüm sonuçlar için ortaktır; kalan tüm durum sonuç başınadır.
type Controller struct {
	mu sync.Mutex
	wg sync.WaitGroup

	fetcher  Fetcher
	prefs    Preferences
	loggedIn bool

	results []*CardResult
}

// NewController yeni bir Controller oluşturur.
func NewController(fetcher Fetcher, prefs Preferences, loggedIn bool) *Controller {
	return &Controller{fetcher: fetcher, prefs: prefs, loggedIn: loggedIn}
}

// SetResults sonuç listesini yükler. Tek sonuç varsa açılmış başlar.
func (c *Controller) SetResults(ctx context.Context, results []*CardResult) {
	c.mu.Lock()
	c.results = results
	c.mu.Unlock()

	if len(results) == 1 {
		c.Expand(ctx, results[0].CardID)
	}
}

// Wait başlatılmış tüm içerik isteklerinin tamamlanmasını bekler.
func (c *Controller) Wait() { c.wg.Wait() }

// result kartın sonucunu bulur; çağıranın kilidi tutması gerekir.
func (c *Controller) result(cardID uint) *CardResult {
	for _, r := range c.results {
		if r.CardID == cardID {
			return r
		}
	}
	return nil
}

// Expand sonucu açar, açık olan diğer sonucu kapatır ve tüm sekme
// içeriklerini seçili baskı için yüklemeye başlar. Açık bir sonucu
// tekrar açmak hiçbir şey yapmaz.
func (c *Controller) Expand(ctx context.Context, cardID uint) {
	c.mu.Lock()
	r := c.result(cardID)
	if r == nil || r.expanded {
		c.mu.Unlock()
		return
	}
	for _, other := range c.results {
		other.expanded = false
	}
	r.expanded = true
	if tab, ok := c.prefs.SelectedTab(); ok {
		r.activeTab = tab
	}
	c.loadAllLocked(ctx, r)
	c.mu.Unlock()
}

// Collapse sonucu kapatır. İçerik atılmaz; tekrar açılırsa yeniden yüklenir.
func (c *Controller) Collapse(cardID uint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if r := c.result(cardID); r != nil {
		r.expanded = false
	}
}

// Toggle açık sonucu kapatır, kapalı sonucu açar.
func (c *Controller) Toggle(ctx context.Context, cardID uint) {
	c.mu.Lock()
	r := c.result(cardID)
	expanded := r != nil && r.expanded
	c.mu.Unlock()
	if expanded {
		c.Collapse(cardID)
	} else {
		c.Expand(ctx, cardID)
	}
}

// ExpandedCardID açık sonucun kart ID'sini döndürür, yoksa 0.
func (c *Controller) ExpandedCardID() uint {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, r := range c.results {
		if r.expanded {
			return r.CardID
		}
	}
	return 0
}

// SelectTab sonucun aktif sekmesini değiştirir ve tercihi kalıcılaştırır.
// "Ekle" sekmesi seçildiğinde adet girişine odak istenir.
func (c *Controller) SelectTab(cardID uint, tab Tab) {
	if !tab.Valid() {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	r := c.result(cardID)
	if r == nil {
		return
	}
	r.activeTab = tab
	c.prefs.SetSelectedTab(tab)
}

// ActiveTab sonucun aktif sekmesini döndürür.
func (c *Controller) ActiveTab(cardID uint) Tab {
	c.mu.Lock()
	defer c.mu.Unlock()
	if r := c.result(cardID); r != nil {
		return r.activeTab
	}
	return TabDetails
}

// FocusCountInput "Ekle" sekmesi aktifken adet girişinin odak alması
// gerekip gerekmediğini döndürür.
func (c *Controller) FocusCountInput(cardID uint) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	r := c.result(cardID)
	return r != nil && r.activeTab == TabAdd
}

// SetPrinting seçili baskıyı değiştirir ve o an uygulanabilir tüm
// sekmeleri yeniden yükler. Zaten seçili baskıyı seçmek hiçbir şey
// yapmaz.
func (c *Controller) SetPrinting(ctx context.Context, cardID uint, printingID uint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r := c.result(cardID)
	if r == nil {
		return
	}
	idx := r.indexOfPrinting(printingID)
	if idx < 0 || idx == r.selected {
		return
	}
	r.selected = idx
	for _, tab := range Tabs() {
		c.startFetchLocked(ctx, r, tab)
	}
	// Başlık özetleri seçili baskıya bağlıdır.
	c.startFetchLocked(ctx, r, TabOwnershipSummary)
	c.startFetchLocked(ctx, r, TabSetSummary)
}

// MoveSelection baskı seçimini bir ileri veya geri taşır (Ctrl+ok
// tuşları). Liste uçlarında başa sarmaz.
func (c *Controller) MoveSelection(ctx context.Context, cardID uint, delta int) {
	c.mu.Lock()
	r := c.result(cardID)
	if r == nil || len(r.printings) == 0 {
		c.mu.Unlock()
		return
	}
	idx := r.selected + delta
	if idx < 0 || idx >= len(r.printings) {
		c.mu.Unlock()
		return
	}
	target := r.printings[idx].ID
	c.mu.Unlock()
	c.SetPrinting(ctx, cardID, target)
}

// PaneContent sekmenin görüntülenecek içeriğini döndürür. Başarısız
// bir yenileme önceki içeriği korur.
func (c *Controller) PaneContent(cardID uint, tab Tab) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if r := c.result(cardID); r != nil {
		if p, ok := r.panes[tab]; ok {
			return p.content
		}
	}
	return ""
}

// PaneLoading sekmenin hâlâ yüklenmekte olup olmadığını döndürür.
func (c *Controller) PaneLoading(cardID uint, tab Tab) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if r := c.result(cardID); r != nil {
		if p, ok := r.panes[tab]; ok {
			return p.loading
		}
	}
	return false
}

// PaneError sekmenin son yükleme hatasını döndürür.
func (c *Controller) PaneError(cardID uint, tab Tab) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if r := c.result(cardID); r != nil {
		if p, ok := r.panes[tab]; ok {
			return p.err
		}
	}
	return nil
}

// SetScrollOffset sonucun kaydırma konumunu kaydeder.
func (c *Controller) SetScrollOffset(cardID uint, offset int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if r := c.result(cardID); r != nil {
		r.scrollOffset = offset
	}
}

// ScrollOffset kayıtlı kaydırma konumunu döndürür. İçerik yenilemeleri
// bu değeri değiştirmez.
func (c *Controller) ScrollOffset(cardID uint) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if r := c.result(cardID); r != nil {
		return r.scrollOffset
	}
	return 0
}

// SetCountValue koleksiyon formundaki adet girişini günceller. Form
// kilitliyken girdi değiştirilemez.
func (c *Controller) SetCountValue(cardID uint, count int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if r := c.result(cardID); r != nil && !r.formLocked {
		r.countValue = count
	}
}

// CountValue adet girişinin mevcut değerini döndürür.
func (c *Controller) CountValue(cardID uint) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if r := c.result(cardID); r != nil {
		return r.countValue
	}
	return 0
}

// FormLocked koleksiyon formunun gönderim sırasında kilitli olup
// olmadığını döndürür.
func (c *Controller) FormLocked(cardID uint) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	r := c.result(cardID)
	return r != nil && r.formLocked
}

// SubmitOwnershipChange adet girişindeki değeri sunucuya gönderir.
// Sıfır adet hiçbir şey yapmadan yok sayılır. Form gidiş dönüş boyunca
// kilitlenir; her iki sonuçta da kilit açılır ve adet sıfırlanır.
// Başarılı gönderimden sonra sahiplik sekmesi ile iki özet parçası
// yeniden yüklenir, kaydırma konumu korunur.
func (c *Controller) SubmitOwnershipChange(ctx context.Context, cardID uint, localisationID uint) {
	c.mu.Lock()
	r := c.result(cardID)
	if r == nil || r.formLocked || r.countValue == 0 {
		c.mu.Unlock()
		return
	}
	count := r.countValue
	r.formLocked = true
	c.mu.Unlock()

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		err := c.fetcher.SubmitOwnershipChange(ctx, localisationID, count)

		c.mu.Lock()
		defer c.mu.Unlock()
		r.formLocked = false
		r.countValue = 0
		if err != nil {
			return
		}
		c.startFetchLocked(ctx, r, TabOwnership)
		c.startFetchLocked(ctx, r, TabOwnershipSummary)
		c.startFetchLocked(ctx, r, TabSetSummary)
	}()
}

// loadAllLocked tüm sekmeleri ve başlık parçalarını yüklemeye başlar.
func (c *Controller) loadAllLocked(ctx context.Context, r *CardResult) {
	for _, tab := range Tabs() {
		c.startFetchLocked(ctx, r, tab)
	}
	c.startFetchLocked(ctx, r, TabOwnershipSummary)
	c.startFetchLocked(ctx, r, TabSetSummary)
}

// startFetchLocked sekme için yeni bir istek başlatır. Kilit tutulurken
// çağrılmalıdır. Her istek pane'in artan numarasını taşır; sonuç
// geldiğinde numara eskimişse atılır.
func (c *Controller) startFetchLocked(ctx context.Context, r *CardResult, tab Tab) {
	p, ok := r.panes[tab]
	if !ok {
		return
	}

	if tab.RequiresAuth() && !c.loggedIn {
		p.content = LoginRequiredContent
		p.err = nil
		p.loading = false
		return
	}

	p.token++
	token := p.token
	p.loading = true
	cardID := r.CardID
	printingID := r.SelectedPrintingID()

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		content, err := c.fetcher.FetchTab(ctx, tab, cardID, printingID)

		c.mu.Lock()
		defer c.mu.Unlock()
		if p.token != token {
			// Eski isteğin sonucu; daha yeni bir istek başlatıldı.
			return
		}
		p.loading = false
		if err != nil {
			// Önceki içerik korunur, yalnızca hata kaydedilir.
			p.err = err
			return
		}
		p.content = content
		p.err = nil
	}()
}
