package model

// Holiday is one entry of the national holiday feed, as returned by
// BrasilAPI (/feriados/v1/{year}). Date uses the ISO format "2006-01-02".
type Holiday struct {
	Date string `json:"date"`
	Name string `json:"name"`
	Type string `json:"type"`
}
