// Package assistant answers data questions locally when the chat webhook is
// unreachable. Intent detection is simple keyword matching; answers are
// computed from the live datasets, not canned numbers.
package assistant

import (
	"fmt"
	"strings"
	"time"

	"github.com/syedd/creator-analytics-api/internal/analytics"
	"github.com/syedd/creator-analytics-api/internal/models"
)

// SuggestedQuestions seed the chat UI and pad fallback replies.
var SuggestedQuestions = []string{
	"What's my best performing YouTube video?",
	"How much revenue did I make last month?",
	"Which country generates the most leads?",
	"What's my overall conversion rate?",
	"Show me my top 3 revenue sources",
	"How are my YouTube engagement rates?",
}

type Assistant struct {
	videos  []models.YouTubeVideo
	revenue []models.MonthlyRevenue
	attrs   []models.LeadAttribution
}

func New(videos []models.YouTubeVideo, revenue []models.MonthlyRevenue, attrs []models.LeadAttribution) *Assistant {
	return &Assistant{videos: videos, revenue: revenue, attrs: attrs}
}

// Respond detects the query's intent and builds an answer. Order matters:
// more specific intents are matched first.
func (a *Assistant) Respond(query string) models.ChatReply {
	q := strings.ToLower(query)
	switch {
	case strings.Contains(q, "best") && (strings.Contains(q, "video") || strings.Contains(q, "youtube")):
		return a.bestVideo()
	case strings.Contains(q, "revenue") && (strings.Contains(q, "last month") || strings.Contains(q, "june")):
		return a.lastMonthRevenue()
	case strings.Contains(q, "country") || strings.Contains(q, "countries"):
		return a.countryLeads()
	case strings.Contains(q, "conversion") && strings.Contains(q, "rate"):
		return a.conversionRates()
	case strings.Contains(q, "top") && strings.Contains(q, "revenue"):
		return a.topRevenueSources()
	case strings.Contains(q, "youtube") && strings.Contains(q, "engagement"):
		return a.engagement()
	default:
		return a.quickStats()
	}
}

func (a *Assistant) bestVideo() models.ChatReply {
	ranked := analytics.RankVideos(a.videos, a.attrs)
	if len(ranked) == 0 {
		return a.quickStats()
	}
	top := ranked[0]
	return models.ChatReply{
		Response: fmt.Sprintf(
			"Your best performing video is %q with %s views and $%s in attributed revenue. That's $%.2f revenue per view! 🏆",
			top.Title, formatInt(top.ViewCount), formatFloat(top.TotalRevenue), top.ROIPerView),
		Suggestions: []string{
			"How can I create more content like this?",
			"What makes this video so effective?",
			"Show me other high-performing videos",
		},
	}
}

func (a *Assistant) lastMonthRevenue() models.ChatReply {
	if len(a.revenue) == 0 {
		return a.quickStats()
	}
	latest := a.revenue[len(a.revenue)-1]
	change := 0.0
	if len(a.revenue) > 1 {
		change = analytics.Change(latest.TotalCashCollected, a.revenue[len(a.revenue)-2].TotalCashCollected)
	}
	return models.ChatReply{
		Response: fmt.Sprintf(
			"In %s you collected $%s in total cash. 📈\n\nBreakdown:\n• PIF Revenue: $%s\n• Installment Revenue: $%s\n\nThat's a %.1f%% change from the previous month.",
			monthName(latest.Month), formatFloat(latest.TotalCashCollected),
			formatFloat(latest.NewCashCollected.PIF), formatFloat(latest.NewCashCollected.Installments), change),
		Suggestions: []string{"What drove this growth?", "How can I maintain this momentum?", "Show me the revenue trend"},
	}
}

func (a *Assistant) countryLeads() models.ChatReply {
	breakdown := analytics.CountryBreakdown(a.attrs)
	if len(breakdown) == 0 {
		return a.quickStats()
	}
	var sb strings.Builder
	sb.WriteString("Lead breakdown by country:\n\n")
	for i, c := range breakdown {
		if i == 5 {
			break
		}
		fmt.Fprintf(&sb, "• %s: %d leads (%.1f%%)\n", c.Country, c.Count, c.Percentage)
	}
	return models.ChatReply{
		Response: sb.String(),
		Suggestions: []string{
			"How can I expand to other markets?",
			"What's the conversion rate by country?",
			"Should I create localized content?",
		},
	}
}

func (a *Assistant) conversionRates() models.ChatReply {
	rates := analytics.ConversionRates(analytics.AttributionTotals(a.attrs))
	return models.ChatReply{
		Response: fmt.Sprintf(
			"📊 Your funnel conversion rates:\n\n• View to Click: %.2f%%\n• Click to Call: %.2f%%\n• Call to Show: %.2f%%\n• Show to Close: %.2f%%\n• Overall: %.4f%%",
			rates.ViewToClick, rates.ClickToCall, rates.CallToShow, rates.ShowToClose, rates.Overall),
		Suggestions: []string{
			"How can I improve my view-to-click rate?",
			"What's my average deal size?",
			"Show me conversion by traffic source",
		},
	}
}

func (a *Assistant) topRevenueSources() models.ChatReply {
	ranked := analytics.RankVideos(a.videos, a.attrs)
	if len(ranked) == 0 {
		return a.quickStats()
	}
	totals := analytics.AttributionTotals(a.attrs)
	medals := []string{"🥇", "🥈", "🥉"}
	var sb strings.Builder
	sb.WriteString("Your top revenue sources:\n\n")
	for i, v := range ranked {
		if i == 3 {
			break
		}
		share := 0.0
		if totals.TotalRevenue > 0 {
			share = v.TotalRevenue / totals.TotalRevenue * 100
		}
		fmt.Fprintf(&sb, "%s %s: $%s (%.0f%% of total)\n", medals[i], v.Title, formatFloat(v.TotalRevenue), share)
	}
	return models.ChatReply{
		Response: sb.String(),
		Suggestions: []string{
			"How can I scale these successful formats?",
			"What other content should I create?",
			"Show me the full revenue breakdown",
		},
	}
}

func (a *Assistant) engagement() models.ChatReply {
	if len(a.videos) == 0 {
		return a.quickStats()
	}
	var views, likes, comments int
	for _, v := range a.videos {
		views += v.ViewCount
		likes += v.Likes
		comments += v.CommentCount
	}
	n := len(a.videos)
	return models.ChatReply{
		Response: fmt.Sprintf(
			"📈 YouTube engagement:\n\n• Average Views: %s per video\n• Average Likes: %d per video\n• Average Comments: %d per video\n• Total Channel Views: %s\n• Total Likes: %s",
			formatInt(views/n), likes/n, comments/n, formatInt(views), formatInt(likes)),
		Suggestions: []string{
			"Which videos should I promote more?",
			"How can I increase my comment engagement?",
			"What content gets the most likes?",
		},
	}
}

func (a *Assistant) quickStats() models.ChatReply {
	var totalRevenue float64
	for _, m := range a.revenue {
		totalRevenue += m.TotalCashCollected
	}
	var totalViews int
	for _, v := range a.videos {
		totalViews += v.ViewCount
	}
	reply := fmt.Sprintf(
		"I can help you analyze your coaching business data! Here are some key insights:\n\n📊 Quick Stats:\n• Total Revenue: $%s (last %d months)\n• Total YouTube Views: %s",
		formatFloat(totalRevenue), len(a.revenue), formatInt(totalViews))
	if best, ok := analytics.BestMonth(a.revenue); ok {
		reply += fmt.Sprintf("\n• Best Month: %s ($%s)", monthName(best.Month), formatFloat(best.TotalCashCollected))
	}
	reply += "\n\nWhat specific aspect would you like to explore?"
	return models.ChatReply{Response: reply, Suggestions: SuggestedQuestions[:4]}
}

// monthName renders "2025-06" as "June 2025"; unparseable months pass through.
func monthName(month string) string {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return month
	}
	return t.Format("January 2006")
}

func formatInt(n int) string {
	return formatFloat(float64(n))
}

// formatFloat adds thousands separators, e.g. 145200 -> "145,200".
func formatFloat(f float64) string {
	s := fmt.Sprintf("%.0f", f)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var sb strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(r)
	}
	if neg {
		return "-" + sb.String()
	}
	return sb.String()
}
