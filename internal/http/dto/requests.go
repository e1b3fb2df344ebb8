package dto

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateProfileRequest struct {
	BusinessName string `json:"business_name"`
	ContactEmail string `json:"contact_email"`
	Phone        string `json:"phone"`
}

// Campaigns

type CreateCampaignRequest struct {
	Name           string  `json:"name"`
	Description    *string `json:"description,omitempty"`
	BudgetMMK      int64   `json:"budget_mmk"`
	TargetAudience string  `json:"target_audience"`
}

type UpdateCampaignRequest struct {
	Name           string  `json:"name"`
	Description    *string `json:"description,omitempty"`
	BudgetMMK      int64   `json:"budget_mmk"`
	TargetAudience string  `json:"target_audience"`
}

type SetCampaignStatusRequest struct {
	Status string `json:"status"` // active / paused
}

// Ads

type CreateAdRequest struct {
	Name            string  `json:"name"`
	AdType          string  `json:"ad_type"` // image / video
	Headline        string  `json:"headline"`
	Description     string  `json:"description"`
	LinkURL         *string `json:"link_url,omitempty"`
	ImageURL        *string `json:"image_url,omitempty"`
	VideoURL        *string `json:"video_url,omitempty"`
	BudgetMMK       int64   `json:"budget_mmk"`
	PerformanceData any     `json:"performance_data,omitempty"`
}

type UpdateAdRequest struct {
	Name            string  `json:"name"`
	Headline        string  `json:"headline"`
	Description     string  `json:"description"`
	LinkURL         *string `json:"link_url,omitempty"`
	ImageURL        *string `json:"image_url,omitempty"`
	VideoURL        *string `json:"video_url,omitempty"`
	BudgetMMK       int64   `json:"budget_mmk"`
	PerformanceData any     `json:"performance_data,omitempty"`
}

type SetAdStatusRequest struct {
	Status string `json:"status"` // active / paused
}

// Subscriptions

type SubscribeRequest struct {
	PackageID string `json:"package_id"`
}

// Notifications

type UpdatePreferenceRequest struct {
	Category     string `json:"category"`
	EmailEnabled bool   `json:"email_enabled"`
	PushEnabled  bool   `json:"push_enabled"`
}

// Uploads

type RemoveUploadRequest struct {
	URL string `json:"url"`
}

// Functions service

type UpdateAnalyticsRequest struct {
	CampaignID string `json:"campaign_id"`
	Action     string `json:"action"` // start / update
}

type SendNotificationRequest struct {
	UserID  string `json:"user_id"`
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}
