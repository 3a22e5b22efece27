package mockdata

// PageSummaries are the canned per-page insight blurbs used when the summary
// webhook is unreachable.
var PageSummaries = map[string]string{
	"home": "📈 **Key Insights**: June was your record month with $145K total cash collected (+13% from May). " +
		"Your AI business roadmap video is crushing it with 53 calls booked from 20K views. " +
		"Funnel conversion from views to calls is 0.82%, which is exceptional for tech coaching. " +
		"**Action Items**: Scale the June strategy, create more 'roadmap' content, and optimize show-up rate (currently 86%).",

	"youtube": "🎯 **Top Performer**: 'Office Tour' video generated $95K revenue from 50K views (ROI: $1.88 per view). " +
		"Your personal brand content significantly outperforms pure educational content. " +
		"**Opportunity**: Videos showing your lifestyle and success story convert 3x better than technical tutorials. " +
		"Consider creating more 'day in the life' and success story content.",

	"webpage": "🌍 **Traffic Quality**: 62% of your traffic comes from the US, with strong conversion rates across all geos. " +
		"Your view-to-click rate of 3.6% is outstanding for tech content. Call-to-show rate at 86% is excellent. " +
		"**Focus Area**: Your newest video has 26% conversion from clicks to calls - analyze what's working and replicate across older content.",

	"sales": "💰 **Revenue Trends**: PIF sales represent 69% of revenue but only 43% of closes, indicating strong value perception. " +
		"June's high-ticket performance shows $102K from 14 closes. " +
		"**Strategy**: Your $15K AI Agency Setup is your cash cow. Focus on positioning this as the premium option and use payment plans as stepping stones.",
}
