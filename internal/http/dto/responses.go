package dto

type AuthResponse struct {
	Token string `json:"token"`
	User  any    `json:"user"`
}

type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

type SuccessResponse struct {
	OK   bool `json:"ok"`
	Data any  `json:"data,omitempty"`
}

type UploadResponse struct {
	URL string `json:"url"`
}

// FunctionResponse mirrors the serverless-style contract: {success,
// message} on 200, {error} on 400.
type FunctionResponse struct {
	Success        bool   `json:"success"`
	Message        string `json:"message,omitempty"`
	NotificationID string `json:"notification_id,omitempty"`
}

type DashboardSummary struct {
	CampaignsByStatus map[string]int `json:"campaigns_by_status"`
	TotalImpressions  int64          `json:"total_impressions"`
	TotalClicks       int64          `json:"total_clicks"`
	TotalConversions  int64          `json:"total_conversions"`
	TotalSpendMMK     int64          `json:"total_spend_mmk"`
	CTRPercent        float64        `json:"ctr_percent"`
	CVRPercent        float64        `json:"cvr_percent"`
	Series            any            `json:"series"`
}
