package booking

type CreateBookingRequest struct {
	Date      string `json:"date" validate:"required,civildate"`
	StartTime string `json:"startTime" validate:"required,hhmm"`
	EndTime   string `json:"endTime" validate:"required,hhmm"`
	Notes     string `json:"notes" validate:"max=500"`
}
