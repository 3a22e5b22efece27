package models

// YouTubeVideo is the flattened video record served to the dashboard.
// External payloads nest these fields (snippet.title, statistics.viewCount);
// the upstream transform flattens them and fills gaps with safe defaults.
type YouTubeVideo struct {
	VideoID      string   `json:"video_id"`
	Title        string   `json:"title"`
	ViewCount    int      `json:"viewCount"`
	ThumbnailURL string   `json:"thumbnailUrl"`
	Likes        int      `json:"likes"`
	CommentCount int      `json:"commentCount"`
	PublishedAt  string   `json:"publishedAt"`
	Description  string   `json:"description,omitempty"`
	ChannelTitle string   `json:"channelTitle,omitempty"`
	Duration     string   `json:"duration,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	EmbedHTML    string   `json:"embedHtml,omitempty"`
}

// CashSplit separates paid-in-full cash from installment cash.
type CashSplit struct {
	PIF          float64 `json:"pif"`
	Installments float64 `json:"installments"`
}

// CloseSplit separates paid-in-full closes from installment closes.
type CloseSplit struct {
	PIF          int `json:"pif"`
	Installments int `json:"installments"`
}

// MonthlyRevenue is one calendar month of sales figures. Arrays of these are
// chronological; latest-vs-previous comparisons rely on that order.
type MonthlyRevenue struct {
	Month                 string     `json:"month"` // YYYY-MM
	NewCashCollected      CashSplit  `json:"new_cash_collected"`
	TotalCashCollected    float64    `json:"total_cash_collected"`
	HighTicketCloses      CloseSplit `json:"high_ticket_closes"`
	DiscountCloses        CloseSplit `json:"discount_closes"`
	UniqueWebsiteVisitors int        `json:"unique_website_visitors"`
	EmailOpens            int        `json:"email_opens"`
	EmailClicks           int        `json:"email_clicks"`
}

// VideoSource attributes a month's call outcomes back to a single video.
type VideoSource struct {
	VideoID     string  `json:"video_id"`
	CallsBooked int     `json:"calls_booked"`
	Accepted    int     `json:"accepted"`
	ShowUps     int     `json:"show_ups"`
	Closes      int     `json:"closes"`
	Revenue     float64 `json:"revenue"`
}

// MonthlyCalls is one calendar month of call-booking figures.
type MonthlyCalls struct {
	Month        string        `json:"month"`
	TotalBooked  int           `json:"total_booked"`
	Accepted     int           `json:"accepted"`
	ShowUps      int           `json:"show_ups"`
	Cancelled    int           `json:"cancelled"`
	NoShows      int           `json:"no_shows"`
	VideoSources []VideoSource `json:"video_sources"`
}

// LeadAttribution links a video to its downstream funnel outcomes.
// Attribution may be absent for a video; callers treat missing as zero.
type LeadAttribution struct {
	VideoID       string         `json:"video_id"`
	TotalViews    int            `json:"total_views"`
	UniqueViews   int            `json:"unique_views"`
	WebsiteClicks int            `json:"website_clicks"`
	CallsBooked   int            `json:"calls_booked"`
	CallsAccepted int            `json:"calls_accepted"`
	ShowUps       int            `json:"show_ups"`
	TotalCloses   int            `json:"total_closes"`
	TotalRevenue  float64        `json:"total_revenue"`
	Countries     map[string]int `json:"countries"`
}

// Product is one catalog entry (high-ticket or discount offer).
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	TotalPrice  float64 `json:"total_price,omitempty"`
	Type        string  `json:"type"`         // high_ticket | discount
	PaymentType string  `json:"payment_type"` // pif | installment
}

// Data provenance tags carried in the response envelope.
const (
	SourceWebhook = "webhook"
	SourceAPI     = "api"
	SourceMock    = "mock"
)

// Response is the uniform envelope every endpoint returns. Fallback to mock
// data is still success=true; only handler-level failures set success=false.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Source  string `json:"source,omitempty"`
	Error   string `json:"error,omitempty"`
}
