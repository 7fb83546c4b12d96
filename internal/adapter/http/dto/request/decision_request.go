package request

// ApproveRequest is the analyst approval payload.
type ApproveRequest struct {
	Amount     float64 `json:"amount" binding:"required"`
	TermMonths int     `json:"term_months" binding:"required"`
	Comment    string  `json:"comment"`
}

// RejectRequest is the analyst rejection payload. Reason must be one of the
// closed reason set; reason_text is required when reason is "other".
type RejectRequest struct {
	Reason     string `json:"reason" binding:"required"`
	ReasonText string `json:"reason_text"`
	Comment    string `json:"comment"`
}
