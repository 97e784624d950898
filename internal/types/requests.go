package types

// ------------------------------
// Request Types
// ------------------------------

// CustomerForm holds the fields for creating or updating a customer.
// The id is never sent; the target URL names the resource on update.
type CustomerForm struct {
	Firstname     string `json:"firstname"`
	Lastname      string `json:"lastname"`
	StreetAddress string `json:"streetaddress,omitempty"`
	Postcode      string `json:"postcode,omitempty"`
	City          string `json:"city,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
}

// TrainingForm holds the fields for creating a training. Customer is the
// customer resource URL the API expects as an opaque reference.
type TrainingForm struct {
	Date     string  `json:"date"`
	Activity string  `json:"activity"`
	Duration float64 `json:"duration"`
	Customer string  `json:"customer"`
}
