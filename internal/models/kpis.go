package models

// FunnelTotals are the aggregate counts the conversion chain is computed from.
type FunnelTotals struct {
	TotalViews    int     `json:"total_views"`
	WebsiteClicks int     `json:"website_clicks"`
	CallsBooked   int     `json:"calls_booked"`
	ShowUps       int     `json:"show_ups"`
	TotalCloses   int     `json:"total_closes"`
	TotalRevenue  float64 `json:"total_revenue"`
}

// ConversionRates is the derived rate chain, in percent. Every rate is 0 when
// its denominator is 0. Overall is kept at higher precision since it is
// typically below 1%.
type ConversionRates struct {
	ViewToClick    float64 `json:"view_to_click"`
	ClickToCall    float64 `json:"click_to_call"`
	CallToShow     float64 `json:"call_to_show"`
	ShowToClose    float64 `json:"show_to_close"`
	Overall        float64 `json:"overall"`
	RevenuePerView float64 `json:"revenue_per_view"`
}

// FunnelStage is one step of the views→visitors→calls→closes pipeline.
// ConversionRate is relative to the immediately preceding stage, and DropOff
// is the delta between consecutive conversion rates, not between raw counts.
type FunnelStage struct {
	Stage          string  `json:"stage"`
	Value          int     `json:"value"`
	ConversionRate float64 `json:"conversion_rate"`
	DropOff        float64 `json:"drop_off"`
}

// RankedVideo joins a video with its attributed outcomes and ROI figures.
type RankedVideo struct {
	YouTubeVideo
	CallsBooked  int     `json:"calls_booked"`
	TotalCloses  int     `json:"total_closes"`
	TotalRevenue float64 `json:"total_revenue"`
	ROIPerView   float64 `json:"roi_per_view"`
	ROIPerLead   float64 `json:"roi_per_lead"`
}

// CountryStat is one row of the merged country breakdown.
type CountryStat struct {
	Country    string  `json:"country"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// RevenueBreakdown is the cash and close mix over a revenue period.
type RevenueBreakdown struct {
	TotalRevenue     float64 `json:"total_revenue"`
	TotalPIF         float64 `json:"total_pif"`
	TotalInstallment float64 `json:"total_installments"`
	HighTicketCloses int     `json:"high_ticket_closes"`
	DiscountCloses   int     `json:"discount_closes"`
	PIFShare         float64 `json:"pif_share"`
	InstallmentShare float64 `json:"installment_share"`
}

// MonthlyDelta compares the latest month's value of one metric against the
// previous month's. Change is 0 when there is no previous month.
type MonthlyDelta struct {
	Metric   string  `json:"metric"`
	Current  float64 `json:"current"`
	Previous float64 `json:"previous"`
	Change   float64 `json:"change"`
}

// Averages are per-month and per-unit revenue averages for the whole period.
type Averages struct {
	MonthlyRevenue    float64 `json:"avg_monthly_revenue"`
	MonthlyVisitors   float64 `json:"avg_monthly_visitors"`
	MonthlyCalls      float64 `json:"avg_monthly_calls"`
	RevenuePerVisitor float64 `json:"revenue_per_visitor"`
	RevenuePerCall    float64 `json:"revenue_per_call"`
}

// Overview is the home-dashboard payload: totals, rate chain, funnel,
// month-over-month movement and headline performers.
type Overview struct {
	Totals    FunnelTotals    `json:"totals"`
	Rates     ConversionRates `json:"conversion_rates"`
	Funnel    []FunnelStage   `json:"funnel"`
	Monthly   []MonthlyDelta  `json:"month_over_month"`
	BestMonth *MonthlyRevenue `json:"best_month,omitempty"`
	TopVideo  *RankedVideo    `json:"top_video,omitempty"`
	Averages  Averages        `json:"averages"`
}

// TrendPoint is one month of the revenue trend with its MoM change.
type TrendPoint struct {
	Month              string  `json:"month"`
	TotalCashCollected float64 `json:"total_cash_collected"`
	Change             float64 `json:"change"`
}

// SalesReport is the sales-dashboard payload.
type SalesReport struct {
	Breakdown  RevenueBreakdown `json:"breakdown"`
	BestMonth  *MonthlyRevenue  `json:"best_month,omitempty"`
	WorstMonth *MonthlyRevenue  `json:"worst_month,omitempty"`
	Trend      []TrendPoint     `json:"trend"`
	Products   []Product        `json:"products"`
}

// ChatReply is what the chat endpoint returns, whether the answer came from
// the live webhook or the local fallback engine.
type ChatReply struct {
	Response    string   `json:"response"`
	Suggestions []string `json:"suggestions,omitempty"`
}
