package domain

// ShipmentItem is one postal object in a PLP. It is built by the caller,
// consumed once by batch assembly and never modified afterwards.
type ShipmentItem struct {
	// TrackingCode is the finished code including the check digit.
	TrackingCode string `json:"tracking_code" validate:"required,len=13"`
	// ServiceCode is the postage service, e.g. "04162".
	ServiceCode string `json:"service_code" validate:"required,numeric"`
	// Weight is the weight in grams.
	Weight int `json:"weight" validate:"gt=0"`

	ReceiverName         string `json:"receiver_name" validate:"required"`
	ReceiverPhone        string `json:"receiver_phone"`
	ReceiverMobile       string `json:"receiver_mobile"`
	ReceiverEmail        string `json:"receiver_email" validate:"omitempty,email"`
	ReceiverAddress      string `json:"receiver_address" validate:"required"`
	ReceiverNumber       string `json:"receiver_number"`
	ReceiverComplement   string `json:"receiver_complement"`
	ReceiverNeighborhood string `json:"receiver_neighborhood"`
	ReceiverCity         string `json:"receiver_city" validate:"required"`
	ReceiverState        string `json:"receiver_state" validate:"required,len=2"`
	ReceiverZip          string `json:"receiver_zip" validate:"required"`

	// InvoiceNumber is the nota fiscal number, if any.
	InvoiceNumber string `json:"invoice_number"`
	// Insurance adds the declared value service.
	Insurance bool `json:"insurance"`
	// DeclaredTotal is the declared value, used only with Insurance.
	DeclaredTotal float64 `json:"declared_total" validate:"gte=0"`

	// Dimensions in centimeters.
	Height   float64 `json:"height" validate:"gte=0"`
	Width    float64 `json:"width" validate:"gte=0"`
	Length   float64 `json:"length" validate:"gte=0"`
	Diameter float64 `json:"diameter" validate:"gte=0"`
}
