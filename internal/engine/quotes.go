package engine

import "time"

var quotes = []string{
	"Success is the sum of small efforts repeated day in and day out.",
	"The only way to do great work is to love what you do.",
	"Don't watch the clock; do what it does. Keep going.",
	"The future depends on what you do today.",
	"Believe you can and you're halfway there.",
	"Study hard, for the well is deep, and our brains are shallow.",
	"The expert in anything was once a beginner.",
	"Your limitation is only your imagination.",
	"Great things never come from comfort zones.",
	"Dream it. Wish it. Do it.",
	"Success doesn't just find you. You have to go out and get it.",
	"The harder you work for something, the greater you'll feel when you achieve it.",
	"Dream bigger. Do bigger.",
	"Don't stop when you're tired. Stop when you're done.",
	"Wake up with determination. Go to bed with satisfaction.",
	"Do something today that your future self will thank you for.",
	"Little things make big days.",
	"It's going to be hard, but hard does not mean impossible.",
	"Don't wait for opportunity. Create it.",
	"Sometimes we're tested not to show our weaknesses, but to discover our strengths.",
}

// QuoteOfTheDay picks a quote by day of month.
func QuoteOfTheDay(now time.Time) string {
	return quotes[now.Day()%len(quotes)]
}
