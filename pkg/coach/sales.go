package coach

// SalesRecord is one row of the rep's sales export. Field names follow the
// upstream data feed, column headers included, so records round-trip through
// the proxy untouched.
type SalesRecord struct {
	Year           int     `json:"Year"`
	Month          string  `json:"Month"`
	TransDate      string  `json:"Trans Date"`
	AccountName    string  `json:"account_name"`
	QtyHL          float64 `json:"Qty in HLs"`
	QtyCrateCarton float64 `json:"Qty in Crate/Carton"`
	Brand          string  `json:"Brand"`
	LineExtension  string  `json:"LineExtension"`
	SalesRep       string  `json:"SalesRep"`
}
