package resultview

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Fetcher sekme içeriklerini ve koleksiyon değişikliklerini sunucudan
// alır. Kart kapsamlı sekmeler kart ID'siyle, baskı kapsamlı sekmeler
// baskı ID'siyle istenir.
type Fetcher interface {
	FetchTab(ctx context.Context, tab Tab, cardID, printingID uint) (string, error)
	SubmitOwnershipChange(ctx context.Context, localisationID uint, count int) error
}

// tabPaths sekme -> AJAX yolu eşlemesi.
var tabPaths = map[Tab]string{
	TabDetails:          "/website/ajax/search_result_details/%d",
	TabRulings:          "/website/ajax/search_result_rulings/%d",
	TabLanguages:        "/website/ajax/search_result_languages/%d",
	TabOwnership:        "/website/ajax/search_result_ownership/%d",
	TabAdd:              "/website/ajax/search_result_add/%d",
	TabDecks:            "/website/ajax/search_result_decks/%d",
	TabLinks:            "/website/ajax/search_result_links/%d",
	TabPrices:           "/website/ajax/search_result_prices/%d",
	TabOwnershipSummary: "/website/ajax/ownership_summary/%d",
	TabSetSummary:       "/website/ajax/search_result_set_summary/%d",
}

// HTTPFetcher sekme parçalarını HTTP üzerinden çeker.
type HTTPFetcher struct {
	Client  *http.Client
	BaseURL string
}

// NewHTTPFetcher verilen taban adres için bir HTTPFetcher oluşturur.
func NewHTTPFetcher(baseURL string, client *http.Client) *HTTPFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPFetcher{Client: client, BaseURL: strings.TrimRight(baseURL, "/")}
}

// FetchTab sekme parçasını indirir. 2xx dışındaki durumlar hatadır;
// çağıran taraf önceki içeriği korur.
func (f *HTTPFetcher) FetchTab(ctx context.Context, tab Tab, cardID, printingID uint) (string, error) {
	path, ok := tabPaths[tab]
	if !ok {
		return "", fmt.Errorf("bilinmeyen sekme: %s", tab)
	}
	id := cardID
	if tab.PrintingScoped() {
		id = printingID
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.BaseURL+fmt.Sprintf(path, id), nil)
	if err != nil {
		return "", err
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("sekme isteği başarısız: %s (%d)", tab, resp.StatusCode)
	}
	return string(body), nil
}

// SubmitOwnershipChange koleksiyon değişikliği formunu gönderir.
func (f *HTTPFetcher) SubmitOwnershipChange(ctx context.Context, localisationID uint, count int) error {
	form := url.Values{
		"count":        {fmt.Sprint(count)},
		"localisation": {fmt.Sprint(localisationID)},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		f.BaseURL+"/website/ajax/change_card_ownership", strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := f.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("koleksiyon değişikliği başarısız (%d)", resp.StatusCode)
	}
	return nil
}

var _ Fetcher = (*HTTPFetcher)(nil)
