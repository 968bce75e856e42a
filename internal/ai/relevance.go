package ai

import "strings"

// Keywords that indicate relevant Ayurvedic diabetes topics.
var AllowedKeywords = []string{
	// Core Ayurvedic terms
	"ayurveda", "ayurvedic", "madhumeha", "prameha", "dosha", "doshas",
	"vata", "pitta", "kapha", "prakriti", "vikriti", "agni", "ama",

	// Diabetes and blood sugar terms
	"diabetes", "diabetic", "prediabetes", "prediabetic", "blood sugar",
	"glucose", "insulin", "hyperglycemia", "hypoglycemia", "sugar",

	// Ayurvedic management terms
	"herbs", "herbal", "ayurvedic diet", "diet", "food", "nutrition",
	"yoga", "pranayama", "meditation", "dinacharya", "lifestyle",
	"wellness", "balance", "imbalance", "constitution", "digestion",

	// Symptoms and conditions
	"symptoms", "signs", "complications", "management", "prevention",
	"treatment", "care", "support", "healing", "recovery",

	// Specific Ayurvedic concepts
	"rasa", "guna", "virya", "vipaka", "prabhava", "panchakarma",
	"abhyanga", "nasya", "basti", "virechana", "rakta mokshana",

	// Greeting and help keywords (allow basic interaction)
	"hi", "hello", "hey", "help", "good morning", "good afternoon", "good evening", "good night",
}

// Explicitly blocked keywords that indicate irrelevant topics.
var BlockedKeywords = []string{
	"csgo", "counter-strike", "video game", "video games", "gaming",
	"virat kohli", "celebrity", "celebrities", "movie", "movies",
	"coding", "programming", "react", "python", "javascript",
	"technology", "tech", "software", "app development",
	"weather", "temperature", "rain", "snow",
	"politics", "election", "government", "president",
	"stock", "stocks", "bitcoin", "crypto", "cryptocurrency",
	"shopping", "buy", "sell", "product",
	"travel", "trip", "vacation", "hotel",
	"fashion", "clothes", "style", "outfit",
	"sports", "football", "cricket", "basketball", "tennis",
	"music", "song", "artist", "album",
	"social media", "twitter", "facebook", "instagram",
}

// IsRelevantQuery gates free-text queries before any completion call is made.
// A query mentioning an allowed keyword is always in-domain, even when a
// blocked keyword also appears; a query with only blocked keywords, or with
// no recognized keyword at all, is out-of-domain. Matching is case-insensitive
// substring with no tokenization.
func IsRelevantQuery(query string) bool {
	lower := strings.ToLower(strings.TrimSpace(query))

	for _, keyword := range AllowedKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}

	for _, keyword := range BlockedKeywords {
		if strings.Contains(lower, keyword) {
			return false
		}
	}

	return false
}
