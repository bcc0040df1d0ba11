package eppo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"risk-hand/config"
)

var httpClient = &http.Client{Timeout: 30 * time.Second}

// ErrNotFound signals that the EPPO database has no taxon for the code.
var ErrNotFound = fmt.Errorf("eppo: taxon not found")

// Fetcher wraps the interaction with the EPPO Global Database.
type Fetcher struct {
	Config *config.Config
	Logger *zap.Logger
}

// NewFetcher creates a new EPPO fetcher.
func NewFetcher(cfg *config.Config, logger *zap.Logger) *Fetcher {
	return &Fetcher{Config: cfg, Logger: logger}
}

func (f *Fetcher) get(ctx context.Context, path string, out any) error {
	u := fmt.Sprintf("%s%s?authtoken=%s", f.Config.EPPOBaseURL, path, url.QueryEscape(f.Config.EPPOAuthToken))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("eppo: unexpected status %d for %s", resp.StatusCode, path)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, out)
}

// FetchTaxon returns the taxon details for one EPPO code.
func (f *Fetcher) FetchTaxon(ctx context.Context, code string) (*Taxon, error) {
	var taxon Taxon
	if err := f.get(ctx, "/taxon/"+url.PathEscape(code), &taxon); err != nil {
		return nil, err
	}
	return &taxon, nil
}

// FetchNames returns all accepted names and synonyms for one EPPO code.
func (f *Fetcher) FetchNames(ctx context.Context, code string) ([]TaxonName, error) {
	var names []TaxonName
	if err := f.get(ctx, "/taxon/"+url.PathEscape(code)+"/names", &names); err != nil {
		return nil, err
	}
	return names, nil
}

// Verify compares a stored preferred name against the API. Name comparison is
// case-insensitive; the API authority suffix is not part of the stored name.
func (f *Fetcher) Verify(ctx context.Context, code, storedName string) (VerifyResult, error) {
	result := VerifyResult{Code: code, StoredName: storedName}

	taxon, err := f.FetchTaxon(ctx, code)
	if err != nil {
		if err == ErrNotFound {
			result.Status = VerifyMissing
			return result, nil
		}
		return result, err
	}

	result.APIName = taxon.PreferredName
	if strings.EqualFold(strings.TrimSpace(storedName), strings.TrimSpace(taxon.PreferredName)) {
		result.Status = VerifyOK
	} else {
		result.Status = VerifyMismatch
		f.Logger.Warn("EPPO name mismatch",
			zap.String("code", code),
			zap.String("stored", storedName),
			zap.String("api", taxon.PreferredName))
	}
	return result, nil
}
