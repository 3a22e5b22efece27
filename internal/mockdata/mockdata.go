// Package mockdata bundles the static fallback datasets served whenever a
// live upstream is unavailable or not configured.
package mockdata

import "github.com/syedd/creator-analytics-api/internal/models"

var YouTubeVideos = []models.YouTubeVideo{
	{
		VideoID:      "78Gr7S5bqoI",
		Title:        "Office Tour | A Day in the Life of a Software Engineer in NYC",
		PublishedAt:  "2025-02-06T20:32:02Z",
		ViewCount:    50475,
		ThumbnailURL: "https://i.ytimg.com/vi/78Gr7S5bqoI/default.jpg",
		Likes:        1860,
		CommentCount: 72,
	},
	{
		VideoID:      "APPZs1I91Q4",
		Title:        "AI Developer Roadmap For 2025: Self Study AI!",
		PublishedAt:  "2024-12-31T14:03:20Z",
		ViewCount:    28974,
		ThumbnailURL: "https://i.ytimg.com/vi/APPZs1I91Q4/default.jpg",
		Likes:        1374,
		CommentCount: 62,
	},
	{
		VideoID:      "3eu4IZOCzIw",
		Title:        "The Muslim's Roadmap to Making Halal Money in 2025 (Step-By-Step)",
		PublishedAt:  "2025-04-05T15:28:39Z",
		ViewCount:    24137,
		ThumbnailURL: "https://i.ytimg.com/vi/3eu4IZOCzIw/default.jpg",
		Likes:        1480,
		CommentCount: 72,
	},
	{
		VideoID:      "9QuF9KF-aWg",
		Title:        "Launch Your One Person AI Business in 2025 [FULL ROADMAP]",
		PublishedAt:  "2025-05-31T16:00:13Z",
		ViewCount:    20527,
		ThumbnailURL: "https://i.ytimg.com/vi/9QuF9KF-aWg/default.jpg",
		Likes:        1165,
		CommentCount: 56,
	},
	{
		VideoID:      "jAXJxZ9A9yU",
		Title:        "7 Most In-Demand Tech Jobs In 2025",
		PublishedAt:  "2025-01-06T20:00:20Z",
		ViewCount:    12232,
		ThumbnailURL: "https://i.ytimg.com/vi/jAXJxZ9A9yU/default.jpg",
		Likes:        340,
		CommentCount: 39,
	},
	{
		VideoID:      "CmhqCIqY3h0",
		Title:        "How Developers Can Use This AI to Create Passive Income",
		PublishedAt:  "2025-03-14T15:16:32Z",
		ViewCount:    11031,
		ThumbnailURL: "https://i.ytimg.com/vi/CmhqCIqY3h0/default.jpg",
		Likes:        308,
		CommentCount: 27,
	},
	{
		VideoID:      "gzHqU5y27Uo",
		Title:        "Become a $120k+ AI Developer in 2025 (Free Course, 2 Hours)",
		PublishedAt:  "2025-02-13T18:15:05Z",
		ViewCount:    10044,
		ThumbnailURL: "https://i.ytimg.com/vi/gzHqU5y27Uo/default.jpg",
		Likes:        506,
		CommentCount: 24,
	},
	{
		VideoID:      "JRM0iWSwj5s",
		Title:        "Watch this if you are STRUGGLING to break into tech",
		PublishedAt:  "2025-01-14T18:00:17Z",
		ViewCount:    8062,
		ThumbnailURL: "https://i.ytimg.com/vi/JRM0iWSwj5s/default.jpg",
		Likes:        501,
		CommentCount: 41,
	},
	{
		VideoID:      "T3b8QGUHB-0",
		Title:        "The BEST Halal Business to Start in 2025 (As a Beginner)",
		PublishedAt:  "2025-04-10T15:00:54Z",
		ViewCount:    7314,
		ThumbnailURL: "https://i.ytimg.com/vi/T3b8QGUHB-0/default.jpg",
		Likes:        392,
		CommentCount: 48,
	},
	{
		VideoID:      "3Od_IPrRAGI",
		Title:        "How LinkedIn Destroyed The Job Market (In 2025)",
		PublishedAt:  "2025-04-29T18:41:33Z",
		ViewCount:    7257,
		ThumbnailURL: "https://i.ytimg.com/vi/3Od_IPrRAGI/default.jpg",
		Likes:        259,
		CommentCount: 31,
	},
	{
		VideoID:      "pSm6T6Bt53c",
		Title:        "Learn AI Development Like a GENIUS and Not Waste Time",
		PublishedAt:  "2025-03-27T15:01:09Z",
		ViewCount:    6872,
		ThumbnailURL: "https://i.ytimg.com/vi/pSm6T6Bt53c/default.jpg",
		Likes:        399,
		CommentCount: 34,
	},
	{
		VideoID:      "56YWZKGuEqo",
		Title:        "Starting an AI business is now on EASY Mode in 2025",
		PublishedAt:  "2025-05-03T17:00:06Z",
		ViewCount:    6833,
		ThumbnailURL: "https://i.ytimg.com/vi/56YWZKGuEqo/default.jpg",
		Likes:        326,
		CommentCount: 24,
	},
	{
		VideoID:      "zf_CvhAWF0g",
		Title:        "The Blueprint to Make $$$ with AI From Day 1",
		PublishedAt:  "2025-06-14T16:01:28Z",
		ViewCount:    4532,
		ThumbnailURL: "https://i.ytimg.com/vi/zf_CvhAWF0g/default.jpg",
		Likes:        220,
		CommentCount: 21,
	},
	{
		VideoID:      "I7synA1L4aw",
		Title:        "How to Build Effective AI Agents In 2025 (without the hype)",
		PublishedAt:  "2025-03-11T19:08:39Z",
		ViewCount:    4513,
		ThumbnailURL: "https://i.ytimg.com/vi/I7synA1L4aw/default.jpg",
		Likes:        152,
		CommentCount: 15,
	},
	{
		VideoID:      "5B-yI6XFbiE",
		Title:        "People Dumber Than You Are Making $20k+/Month With AI Agencies",
		PublishedAt:  "2025-06-17T18:08:29Z",
		ViewCount:    1621,
		ThumbnailURL: "https://i.ytimg.com/vi/5B-yI6XFbiE/default.jpg",
		Likes:        105,
		CommentCount: 24,
	},
}

var MonthlyRevenue = []models.MonthlyRevenue{
	{
		Month:                 "2025-03",
		NewCashCollected:      models.CashSplit{PIF: 35000, Installments: 12000},
		TotalCashCollected:    52800,
		HighTicketCloses:      models.CloseSplit{PIF: 2, Installments: 4},
		DiscountCloses:        models.CloseSplit{PIF: 3, Installments: 2},
		UniqueWebsiteVisitors: 2650,
		EmailOpens:            1680,
		EmailClicks:           380,
	},
	{
		Month:                 "2025-04",
		NewCashCollected:      models.CashSplit{PIF: 60000, Installments: 18000},
		TotalCashCollected:    86400,
		HighTicketCloses:      models.CloseSplit{PIF: 4, Installments: 6},
		DiscountCloses:        models.CloseSplit{PIF: 4, Installments: 3},
		UniqueWebsiteVisitors: 3850,
		EmailOpens:            2240,
		EmailClicks:           520,
	},
	{
		Month:                 "2025-05",
		NewCashCollected:      models.CashSplit{PIF: 90000, Installments: 24000},
		TotalCashCollected:    128600,
		HighTicketCloses:      models.CloseSplit{PIF: 6, Installments: 8},
		DiscountCloses:        models.CloseSplit{PIF: 6, Installments: 4},
		UniqueWebsiteVisitors: 4920,
		EmailOpens:            3100,
		EmailClicks:           740,
	},
	{
		Month:                 "2025-06",
		NewCashCollected:      models.CashSplit{PIF: 75000, Installments: 27000},
		TotalCashCollected:    145200,
		HighTicketCloses:      models.CloseSplit{PIF: 5, Installments: 9},
		DiscountCloses:        models.CloseSplit{PIF: 5, Installments: 6},
		UniqueWebsiteVisitors: 5240,
		EmailOpens:            3580,
		EmailClicks:           890,
	},
}

var MonthlyCalls = []models.MonthlyCalls{
	{
		Month:       "2025-03",
		TotalBooked: 38,
		Accepted:    32,
		ShowUps:     26,
		Cancelled:   6,
		NoShows:     6,
		VideoSources: []models.VideoSource{
			{VideoID: "CmhqCIqY3h0", CallsBooked: 22, Accepted: 19, ShowUps: 16, Closes: 4, Revenue: 27000},
			{VideoID: "pSm6T6Bt53c", CallsBooked: 16, Accepted: 13, ShowUps: 10, Closes: 2, Revenue: 20800},
		},
	},
	{
		Month:       "2025-04",
		TotalBooked: 52,
		Accepted:    44,
		ShowUps:     37,
		Cancelled:   8,
		NoShows:     7,
		VideoSources: []models.VideoSource{
			{VideoID: "3eu4IZOCzIw", CallsBooked: 28, Accepted: 24, ShowUps: 21, Closes: 6, Revenue: 48000},
			{VideoID: "T3b8QGUHB-0", CallsBooked: 15, Accepted: 13, ShowUps: 10, Closes: 2, Revenue: 30000},
			{VideoID: "3Od_IPrRAGI", CallsBooked: 9, Accepted: 7, ShowUps: 6, Closes: 0, Revenue: 0},
		},
	},
	{
		Month:       "2025-05",
		TotalBooked: 68,
		Accepted:    58,
		ShowUps:     49,
		Cancelled:   10,
		NoShows:     9,
		VideoSources: []models.VideoSource{
			{VideoID: "9QuF9KF-aWg", CallsBooked: 35, Accepted: 30, ShowUps: 27, Closes: 9, Revenue: 72000},
			{VideoID: "56YWZKGuEqo", CallsBooked: 18, Accepted: 16, ShowUps: 13, Closes: 3, Revenue: 25000},
			{VideoID: "I7synA1L4aw", CallsBooked: 15, Accepted: 12, ShowUps: 9, Closes: 2, Revenue: 17000},
		},
	},
	{
		Month:       "2025-06",
		TotalBooked: 74,
		Accepted:    63,
		ShowUps:     54,
		Cancelled:   11,
		NoShows:     9,
		VideoSources: []models.VideoSource{
			{VideoID: "zf_CvhAWF0g", CallsBooked: 32, Accepted: 28, ShowUps: 25, Closes: 8, Revenue: 60000},
			{VideoID: "5B-yI6XFbiE", CallsBooked: 24, Accepted: 20, ShowUps: 17, Closes: 6, Revenue: 42000},
			// still in pipeline
			{VideoID: "9QuF9KF-aWg", CallsBooked: 18, Accepted: 15, ShowUps: 12, Closes: 0, Revenue: 0},
		},
	},
}

var LeadAttribution = []models.LeadAttribution{
	{
		VideoID:       "78Gr7S5bqoI",
		TotalViews:    50475,
		UniqueViews:   42800,
		WebsiteClicks: 1820,
		CallsBooked:   45,
		CallsAccepted: 38,
		ShowUps:       32,
		TotalCloses:   8,
		TotalRevenue:  95000,
		Countries: map[string]int{
			"United States": 28, "Canada": 8, "United Kingdom": 5, "Germany": 2, "Australia": 2,
		},
	},
	{
		VideoID:       "APPZs1I91Q4",
		TotalViews:    28974,
		UniqueViews:   24600,
		WebsiteClicks: 1450,
		CallsBooked:   38,
		CallsAccepted: 32,
		ShowUps:       28,
		TotalCloses:   7,
		TotalRevenue:  82500,
		Countries: map[string]int{
			"United States": 22, "India": 8, "Canada": 4, "United Kingdom": 3, "Other": 1,
		},
	},
	{
		VideoID:       "3eu4IZOCzIw",
		TotalViews:    24137,
		UniqueViews:   20500,
		WebsiteClicks: 1350,
		CallsBooked:   28,
		CallsAccepted: 24,
		ShowUps:       21,
		TotalCloses:   6,
		TotalRevenue:  48000,
		Countries: map[string]int{
			"United States": 12, "Canada": 6, "United Kingdom": 4, "UAE": 3, "Malaysia": 3,
		},
	},
	{
		VideoID:       "9QuF9KF-aWg",
		TotalViews:    20527,
		UniqueViews:   17800,
		WebsiteClicks: 1680,
		CallsBooked:   53,
		CallsAccepted: 45,
		ShowUps:       39,
		TotalCloses:   9,
		TotalRevenue:  72000,
		Countries: map[string]int{
			"United States": 32, "Canada": 12, "United Kingdom": 6, "Australia": 2, "Germany": 1,
		},
	},
	{
		VideoID:       "jAXJxZ9A9yU",
		TotalViews:    12232,
		UniqueViews:   10400,
		WebsiteClicks: 520,
		CallsBooked:   18,
		CallsAccepted: 15,
		ShowUps:       13,
		TotalCloses:   3,
		TotalRevenue:  37500,
		Countries: map[string]int{
			"United States": 11, "Canada": 4, "India": 2, "Other": 1,
		},
	},
	{
		VideoID:       "CmhqCIqY3h0",
		TotalViews:    11031,
		UniqueViews:   9300,
		WebsiteClicks: 890,
		CallsBooked:   22,
		CallsAccepted: 19,
		ShowUps:       16,
		TotalCloses:   4,
		TotalRevenue:  27000,
		Countries: map[string]int{
			"United States": 14, "Canada": 4, "United Kingdom": 2, "Germany": 1, "Other": 1,
		},
	},
	{
		VideoID:       "zf_CvhAWF0g",
		TotalViews:    4532,
		UniqueViews:   3850,
		WebsiteClicks: 680,
		CallsBooked:   32,
		CallsAccepted: 28,
		ShowUps:       25,
		TotalCloses:   8,
		TotalRevenue:  60000,
		Countries: map[string]int{
			"United States": 20, "Canada": 6, "United Kingdom": 4, "Australia": 2, "Other": 0,
		},
	},
	{
		VideoID:       "5B-yI6XFbiE",
		TotalViews:    1621,
		UniqueViews:   1380,
		WebsiteClicks: 420,
		CallsBooked:   24,
		CallsAccepted: 20,
		ShowUps:       17,
		TotalCloses:   6,
		TotalRevenue:  42000,
		Countries: map[string]int{
			"United States": 15, "Canada": 5, "United Kingdom": 2, "Germany": 1, "Other": 1,
		},
	},
}

var Products = []models.Product{
	{
		ID:          "ai_agency_setup_pif",
		Name:        "AI Agency Setup + Mentorship (Full Pay)",
		Price:       15000,
		Type:        "high_ticket",
		PaymentType: "pif",
	},
	{
		ID:          "ai_agency_setup_installment",
		Name:        "AI Agency Setup + Mentorship (Payment Plan)",
		Price:       3000,
		TotalPrice:  18000,
		Type:        "high_ticket",
		PaymentType: "installment",
	},
	{
		ID:          "ai_course_pif",
		Name:        "Complete AI Development Course (Full Pay)",
		Price:       2500,
		Type:        "discount",
		PaymentType: "pif",
	},
	{
		ID:          "ai_course_installment",
		Name:        "Complete AI Development Course (Payment Plan)",
		Price:       500,
		TotalPrice:  3000,
		Type:        "discount",
		PaymentType: "installment",
	},
}
