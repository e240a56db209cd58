package entity

import "encoding/json"

// Place é o registro de negócio que sai do scraper do Google Maps.
// É a entrada do uploader e também o valor do lookup de enriquecimento
// (chaveado por PrimaryEmail minúsculo).
//
// Rating e ReviewCount chegam como número OU string dependendo da rodada do
// scraper, por isso json.Number.
type Place struct {
	Title        string      `json:"title"`
	Address      string      `json:"address,omitempty"`
	Category     string      `json:"category,omitempty"`
	Rating       json.Number `json:"rating,omitempty"`
	ReviewCount  json.Number `json:"reviewCount,omitempty"`
	City         string      `json:"city,omitempty"`
	State        string      `json:"state,omitempty"`
	Website      string      `json:"website,omitempty"`
	Phone        string      `json:"phone,omitempty"`
	PrimaryEmail string      `json:"primary_email,omitempty"`

	// Campos descritivos extras que o detalhe do lead repassa como vieram
	Hours     json.RawMessage `json:"hours,omitempty"`
	Amenities json.RawMessage `json:"amenities,omitempty"`
}
