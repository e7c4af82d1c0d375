package domain

// HoursPayload часы работы в payload; у закрытого дня времена null
type HoursPayload struct {
	Day       int     `json:"day"`
	OpenTime  *string `json:"open_time"`
	CloseTime *string `json:"close_time"`
	IsClosed  bool    `json:"is_closed"`
}

// ProviderPayload тело запроса на создание провайдера
// Содержит не более одного ключа *_details
type ProviderPayload struct {
	BusinessName string         `json:"business_name"`
	Description  string         `json:"description"`
	Category     int64          `json:"category"`
	Email        string         `json:"email"`
	Phone        string         `json:"phone"`
	Website      *string        `json:"website"`
	AddressLine1 string         `json:"address_line1"`
	AddressLine2 string         `json:"address_line2"`
	City         string         `json:"city"`
	State        string         `json:"state"`
	ZipCode      string         `json:"zip_code"`
	Latitude     *string        `json:"latitude"`
	Longitude    *string        `json:"longitude"`
	Hours        []HoursPayload `json:"hours"`
	ProviderDetails
}
