package generate

// generateDTO is the inbound payload. Both fields are optional: missing
// text degrades to the empty string and missing task to translate.
type generateDTO struct {
	Text string `json:"text"`
	Task string `json:"task"`
}
