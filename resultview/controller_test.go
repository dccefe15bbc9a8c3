package resultview

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ownershipSubmit struct {
	localisationID uint
	count          int
}

// fakeFetcher sekme isteklerini kaydeder ve istenirse belirli
// istekleri bir kanala kadar bekletir.
type fakeFetcher struct {
	mu         sync.Mutex
	calls      []string
	gates      map[string]chan struct{}
	errs       map[Tab]error
	submits    []ownershipSubmit
	submitGate chan struct{}
	submitErr  error
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{
		gates: map[string]chan struct{}{},
		errs:  map[Tab]error{},
	}
}

func fetchKey(tab Tab, printingID uint) string {
	return fmt.Sprintf("%s/%d", tab, printingID)
}

func (f *fakeFetcher) FetchTab(_ context.Context, tab Tab, cardID, printingID uint) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, fetchKey(tab, printingID))
	gate := f.gates[fetchKey(tab, printingID)]
	err := f.errs[tab]
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%d/%d", tab, cardID, printingID), nil
}

func (f *fakeFetcher) SubmitOwnershipChange(_ context.Context, localisationID uint, count int) error {
	f.mu.Lock()
	f.submits = append(f.submits, ownershipSubmit{localisationID, count})
	gate := f.submitGate
	err := f.submitErr
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}
	return err
}

func (f *fakeFetcher) callCount(tab Tab, printingID uint) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, call := range f.calls {
		if call == fetchKey(tab, printingID) {
			n++
		}
	}
	return n
}

func twoPrintingResult(cardID uint) *CardResult {
	return NewCardResult(cardID, []Printing{
		{ID: 11, SetName: "Alpha"},
		{ID: 12, SetName: "Beta"},
	})
}

func TestSetResultsAutoExpandsSingleResult(t *testing.T) {
	fetcher := newFakeFetcher()
	c := NewController(fetcher, &MemoryPreferences{}, true)

	c.SetResults(context.Background(), []*CardResult{twoPrintingResult(1)})
	c.Wait()

	assert.Equal(t, uint(1), c.ExpandedCardID())
	assert.Equal(t, "details/1/11", c.PaneContent(1, TabDetails))
}

func TestSetResultsLeavesMultipleResultsCollapsed(t *testing.T) {
	fetcher := newFakeFetcher()
	c := NewController(fetcher, &MemoryPreferences{}, true)

	c.SetResults(context.Background(), []*CardResult{twoPrintingResult(1), twoPrintingResult(2)})
	c.Wait()

	assert.Equal(t, uint(0), c.ExpandedCardID())
	assert.Empty(t, fetcher.calls)
}

func TestExpandCollapsesPreviouslyExpandedResult(t *testing.T) {
	fetcher := newFakeFetcher()
	c := NewController(fetcher, &MemoryPreferences{}, true)
	c.SetResults(context.Background(), []*CardResult{twoPrintingResult(1), twoPrintingResult(2)})

	c.Expand(context.Background(), 1)
	c.Expand(context.Background(), 2)
	c.Wait()

	assert.Equal(t, uint(2), c.ExpandedCardID())
}

func TestExpandIsIdempotent(t *testing.T) {
	fetcher := newFakeFetcher()
	c := NewController(fetcher, &MemoryPreferences{}, true)
	c.SetResults(context.Background(), []*CardResult{twoPrintingResult(1), twoPrintingResult(2)})

	c.Expand(context.Background(), 1)
	c.Wait()
	before := fetcher.callCount(TabDetails, 11)

	c.Expand(context.Background(), 1)
	c.Wait()

	assert.Equal(t, uint(1), c.ExpandedCardID())
	assert.Equal(t, before, fetcher.callCount(TabDetails, 11), "yeniden açma içerik isteği başlatmamalı")
}

func TestSelectTabPersistsPreference(t *testing.T) {
	fetcher := newFakeFetcher()
	prefs := &MemoryPreferences{}
	c := NewController(fetcher, prefs, true)
	c.SetResults(context.Background(), []*CardResult{twoPrintingResult(1), twoPrintingResult(2)})

	c.Expand(context.Background(), 1)
	c.SelectTab(1, TabRulings)

	tab, ok := prefs.SelectedTab()
	require.True(t, ok)
	assert.Equal(t, TabRulings, tab)

	// Sonradan açılan sonuç tercih edilen sekmeyle başlar.
	c.Expand(context.Background(), 2)
	c.Wait()
	assert.Equal(t, TabRulings, c.ActiveTab(2))
}

func TestSelectAddTabRequestsCountFocus(t *testing.T) {
	fetcher := newFakeFetcher()
	c := NewController(fetcher, &MemoryPreferences{}, true)
	c.SetResults(context.Background(), []*CardResult{twoPrintingResult(1)})
	c.Wait()

	c.SelectTab(1, TabAdd)
	assert.True(t, c.FocusCountInput(1))

	c.SelectTab(1, TabDetails)
	assert.False(t, c.FocusCountInput(1))
}

func TestAuthGatedTabsShowLoginPlaceholderWhenLoggedOut(t *testing.T) {
	fetcher := newFakeFetcher()
	c := NewController(fetcher, &MemoryPreferences{}, false)
	c.SetResults(context.Background(), []*CardResult{twoPrintingResult(1)})
	c.Wait()

	for _, tab := range []Tab{TabOwnership, TabAdd, TabDecks} {
		assert.Equal(t, LoginRequiredContent, c.PaneContent(1, tab))
		assert.Zero(t, fetcher.callCount(tab, 11), "girişsiz sekme için istek atılmamalı: %s", tab)
	}
	// Açık sekmeler yüklenir.
	assert.Equal(t, "details/1/11", c.PaneContent(1, TabDetails))
}

func TestOwnershipSummaryLoadsWithoutLogin(t *testing.T) {
	fetcher := newFakeFetcher()
	c := NewController(fetcher, &MemoryPreferences{}, false)
	c.SetResults(context.Background(), []*CardResult{twoPrintingResult(1)})
	c.Wait()

	// Başlık özeti girişsiz de çizilir; sunucu boş özet döndürür.
	assert.Equal(t, 1, fetcher.callCount(TabOwnershipSummary, 11))
	assert.Equal(t, "ownership_summary/1/11", c.PaneContent(1, TabOwnershipSummary))
}

func TestSetPrintingReloadsAllTabs(t *testing.T) {
	fetcher := newFakeFetcher()
	c := NewController(fetcher, &MemoryPreferences{}, true)
	c.SetResults(context.Background(), []*CardResult{twoPrintingResult(1)})
	c.Wait()

	c.SetPrinting(context.Background(), 1, 12)
	c.Wait()

	assert.Equal(t, "details/1/12", c.PaneContent(1, TabDetails))
	assert.Equal(t, "prices/1/12", c.PaneContent(1, TabPrices))
	// Kart kapsamlı sekmeler de yeni baskıyla tazelenir.
	for _, tab := range Tabs() {
		assert.Equal(t, 1, fetcher.callCount(tab, 12), "baskı değişiminde yeniden yüklenmeli: %s", tab)
	}
	assert.Equal(t, 1, fetcher.callCount(TabOwnershipSummary, 12))
	assert.Equal(t, 1, fetcher.callCount(TabSetSummary, 12))
}

func TestSetPrintingSameSelectionIsNoop(t *testing.T) {
	fetcher := newFakeFetcher()
	c := NewController(fetcher, &MemoryPreferences{}, true)
	c.SetResults(context.Background(), []*CardResult{twoPrintingResult(1)})
	c.Wait()
	before := fetcher.callCount(TabDetails, 11)

	c.SetPrinting(context.Background(), 1, 11)
	c.Wait()

	assert.Equal(t, before, fetcher.callCount(TabDetails, 11))
}

func TestMoveSelectionDoesNotWrapAround(t *testing.T) {
	fetcher := newFakeFetcher()
	c := NewController(fetcher, &MemoryPreferences{}, true)
	r := twoPrintingResult(1)
	c.SetResults(context.Background(), []*CardResult{r})
	c.Wait()

	// Baştayken geri gitmek seçim değiştirmez.
	c.MoveSelection(context.Background(), 1, -1)
	assert.Equal(t, 0, r.SelectedIndex())

	c.MoveSelection(context.Background(), 1, 1)
	c.Wait()
	assert.Equal(t, 1, r.SelectedIndex())

	// Sondayken ileri gitmek de değiştirmez.
	c.MoveSelection(context.Background(), 1, 1)
	assert.Equal(t, 1, r.SelectedIndex())
}

func TestStaleFetchResultIsDiscarded(t *testing.T) {
	fetcher := newFakeFetcher()
	gate := make(chan struct{})
	fetcher.gates[fetchKey(TabDetails, 11)] = gate

	c := NewController(fetcher, &MemoryPreferences{}, true)
	c.SetResults(context.Background(), []*CardResult{twoPrintingResult(1)})

	// İlk baskının detay isteği beklemede kaldı, ikinci baskıya geçildi.
	c.SetPrinting(context.Background(), 1, 12)

	// Geciken ilk istek şimdi tamamlanıyor; sonucu atılmalı.
	close(gate)
	c.Wait()

	assert.Equal(t, "details/1/12", c.PaneContent(1, TabDetails))
}

func TestFailedFetchKeepsPriorContent(t *testing.T) {
	fetcher := newFakeFetcher()
	c := NewController(fetcher, &MemoryPreferences{}, true)
	c.SetResults(context.Background(), []*CardResult{twoPrintingResult(1)})
	c.Wait()
	require.Equal(t, "details/1/11", c.PaneContent(1, TabDetails))

	fetcher.mu.Lock()
	fetcher.errs[TabDetails] = errors.New("sunucu hatası")
	fetcher.mu.Unlock()

	c.SetPrinting(context.Background(), 1, 12)
	c.Wait()

	assert.Equal(t, "details/1/11", c.PaneContent(1, TabDetails), "başarısız yenileme önceki içeriği korumalı")
	assert.Error(t, c.PaneError(1, TabDetails))
}

func TestSubmitOwnershipChangeIgnoresZeroCount(t *testing.T) {
	fetcher := newFakeFetcher()
	c := NewController(fetcher, &MemoryPreferences{}, true)
	c.SetResults(context.Background(), []*CardResult{twoPrintingResult(1)})
	c.Wait()

	c.SubmitOwnershipChange(context.Background(), 1, 99)
	c.Wait()

	assert.Empty(t, fetcher.submits)
	assert.False(t, c.FormLocked(1))
}

func TestSubmitOwnershipChangeLocksFormAndRefreshes(t *testing.T) {
	fetcher := newFakeFetcher()
	gate := make(chan struct{})
	fetcher.submitGate = gate

	c := NewController(fetcher, &MemoryPreferences{}, true)
	c.SetResults(context.Background(), []*CardResult{twoPrintingResult(1)})
	c.Wait()
	ownershipBefore := fetcher.callCount(TabOwnership, 11)
	c.SetScrollOffset(1, 420)

	c.SetCountValue(1, 3)
	c.SubmitOwnershipChange(context.Background(), 1, 99)

	assert.True(t, c.FormLocked(1), "gidiş dönüş boyunca form kilitli olmalı")

	// Kilitliyken girdi değiştirilemez ve ikinci gönderim başlatılamaz.
	c.SetCountValue(1, 7)
	c.SubmitOwnershipChange(context.Background(), 1, 99)

	close(gate)
	c.Wait()

	require.Len(t, fetcher.submits, 1)
	assert.Equal(t, ownershipSubmit{99, 3}, fetcher.submits[0])
	assert.False(t, c.FormLocked(1))
	assert.Zero(t, c.CountValue(1), "başarılı gönderim adet girişini temizlemeli")
	assert.Equal(t, ownershipBefore+1, fetcher.callCount(TabOwnership, 11))
	assert.Equal(t, 420, c.ScrollOffset(1), "yenileme kaydırma konumunu korumalı")
}

func TestSubmitOwnershipChangeUnlocksOnFailure(t *testing.T) {
	fetcher := newFakeFetcher()
	fetcher.submitErr = errors.New("bağlantı hatası")

	c := NewController(fetcher, &MemoryPreferences{}, true)
	c.SetResults(context.Background(), []*CardResult{twoPrintingResult(1)})
	c.Wait()
	ownershipBefore := fetcher.callCount(TabOwnership, 11)

	c.SetCountValue(1, 2)
	c.SubmitOwnershipChange(context.Background(), 1, 99)
	c.Wait()

	assert.False(t, c.FormLocked(1))
	assert.Zero(t, c.CountValue(1))
	assert.Equal(t, ownershipBefore, fetcher.callCount(TabOwnership, 11), "başarısız gönderim yenileme tetiklememeli")
}
