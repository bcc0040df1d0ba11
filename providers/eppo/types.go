// Package eppo contains the client for the EPPO Global Database REST API.
package eppo

// Taxon is the response of GET /taxon/{eppocode}.
type Taxon struct {
	CodeID        int    `json:"codeid"`
	EPPOCode      string `json:"eppocode"`
	PreferredName string `json:"prefname"`
	Authority     string `json:"authority,omitempty"`
	Language      string `json:"lang,omitempty"`
}

// TaxonName is one entry of GET /taxon/{eppocode}/names.
type TaxonName struct {
	Name      string `json:"fullname"`
	Language  string `json:"lang"`
	Preferred bool   `json:"preferred"`
	Active    bool   `json:"isactive"`
}

// VerifyStatus classifies the outcome of a single code verification.
type VerifyStatus string

const (
	VerifyOK       VerifyStatus = "ok"
	VerifyMismatch VerifyStatus = "mismatch"
	VerifyMissing  VerifyStatus = "missing"
)

// VerifyResult reports how a stored EPPO code compares against the API.
type VerifyResult struct {
	Code       string       `json:"code"`
	Status     VerifyStatus `json:"status"`
	StoredName string       `json:"stored_name,omitempty"`
	APIName    string       `json:"api_name,omitempty"`
}
