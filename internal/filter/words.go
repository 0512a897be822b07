package filter

// defaultStopwords is the curated set of common English words, sentence
// openers, and UI boilerplate that must never be treated as brand names.
// Extracted terms are normalized before lookup, so entries are lowercase.
var defaultStopwords = []string{
	// Articles, pronouns, conjunctions
	"the", "a", "an", "and", "or", "but", "nor", "so", "yet", "both",
	"either", "neither", "not", "no", "yes", "all", "any", "each", "every",
	"few", "more", "most", "other", "some", "such", "own", "same", "than",
	"too", "very", "just", "only", "also", "then", "once", "here", "there",
	"when", "where", "why", "how", "what", "which", "who", "whom", "whose",
	"this", "that", "these", "those", "it", "its", "they", "them", "their",
	"theirs", "we", "us", "our", "ours", "you", "your", "yours", "he", "him",
	"his", "she", "her", "hers", "i", "me", "my", "mine",

	// Prepositions and auxiliaries
	"in", "on", "at", "by", "for", "with", "about", "against", "between",
	"into", "through", "during", "before", "after", "above", "below", "to",
	"from", "up", "down", "out", "off", "over", "under", "again", "further",
	"of", "as", "is", "am", "are", "was", "were", "be", "been", "being",
	"have", "has", "had", "having", "do", "does", "did", "doing", "will",
	"would", "shall", "should", "can", "could", "may", "might", "must",

	// Sentence openers that survive capitalization checks
	"however", "therefore", "moreover", "furthermore", "additionally",
	"finally", "firstly", "secondly", "thirdly", "lastly", "overall",
	"meanwhile", "nevertheless", "nonetheless", "otherwise", "instead",
	"although", "though", "because", "since", "while", "unless", "until",
	"whether", "despite", "regarding", "concerning", "according",
	"alternatively", "consequently", "ultimately", "essentially",
	"specifically", "generally", "typically", "usually", "often",
	"sometimes", "always", "never", "perhaps", "maybe", "certainly",
	"definitely", "absolutely", "exactly", "particularly", "especially",
	"notably", "importantly", "interestingly", "surprisingly",
	"unfortunately", "fortunately", "remember", "note", "keep", "consider",
	"looking", "based", "depending", "given", "using", "within", "without",

	// Question and list phrasing common in AI answers
	"compare", "comparison", "versus", "alternatives", "alternative",
	"options", "option", "choice", "choices", "recommendation",
	"recommendations", "conclusion", "summary", "introduction", "overview",
	"example", "examples", "list", "top", "best", "better", "good", "great",
	"popular", "leading", "key", "main", "primary", "major", "minor",
	"common", "different", "various", "several", "multiple", "many", "much",
	"another", "additional", "final", "first", "second", "third", "last",
	"next", "new", "newer", "old", "older", "latest", "recent", "current",
	"pros", "cons", "advantages", "disadvantages", "benefits", "drawbacks",
	"features", "feature", "pricing", "price", "prices", "cost", "costs",
	"free", "paid", "cheap", "expensive", "affordable", "budget",

	// Generic nouns that appear capitalized mid-list
	"things", "thing", "ways", "way", "steps", "step", "tips", "tip",
	"guide", "guides", "review", "reviews", "rating", "ratings", "result",
	"results", "answer", "answers", "question", "questions", "reason",
	"reasons", "factor", "factors", "aspect", "aspects", "point", "points",
	"part", "parts", "section", "sections", "item", "items", "case",
	"cases", "use", "uses", "user", "users", "people", "person", "team",
	"teams", "group", "groups", "member", "members", "customer",
	"customers", "client", "clients", "company", "companies", "business",
	"businesses", "organization", "organizations", "industry", "industries",
	"market", "markets", "world", "time", "times", "year", "years", "month",
	"months", "week", "weeks", "day", "days", "today", "tomorrow",
	"yesterday", "now", "later", "soon", "area", "areas", "field", "fields",
	"type", "types", "kind", "kinds", "level", "levels", "range", "number",
	"numbers", "amount", "size", "sizes", "small", "medium", "large",
	"enterprise", "startup", "startups",

	// UI boilerplate
	"click", "learn", "read", "see", "visit", "check", "find", "get",
	"start", "try", "sign", "login", "signup", "download", "upload",
	"submit", "cancel", "continue", "back", "home", "page", "pages",
	"website", "websites", "link", "links", "menu", "search", "help",
	"support", "contact", "faq", "terms", "privacy", "policy", "cookie",
	"cookies", "settings", "account", "profile", "dashboard",
}

// genericBusinessTerms is a secondary blacklist of high-frequency SaaS and
// marketing vocabulary. These are rejected even when absent from the primary
// stopword set, because they dominate AI answers about any software category.
var genericBusinessTerms = []string{
	"marketing", "sales", "advertising", "branding", "brand", "brands",
	"platform", "platforms", "solution", "solutions", "software", "tool",
	"tools", "service", "services", "product", "products", "system",
	"systems", "technology", "technologies", "application", "applications",
	"app", "apps", "suite", "suites", "package", "packages", "plan",
	"plans", "tier", "tiers", "integration", "integrations", "automation",
	"workflow", "workflows", "analytics", "insights", "intelligence",
	"data", "database", "databases", "cloud", "saas", "crm", "erp", "cms",
	"seo", "sem", "ai", "api", "apis", "ui", "ux", "roi", "kpi", "b2b",
	"b2c", "ecommerce", "email", "emails", "campaign", "campaigns",
	"content", "social", "media", "digital", "online", "mobile", "web",
	"internet", "network", "networks", "security", "storage", "hosting",
	"management", "manager", "managers", "strategy", "strategies",
	"growth", "revenue", "conversion", "conversions", "engagement",
	"retention", "acquisition", "funnel", "pipeline", "lead", "leads",
	"prospect", "prospects", "audience", "traffic", "metrics", "reporting",
	"reports", "report", "tracking", "optimization", "performance",
	"productivity", "collaboration", "communication", "project", "projects",
	"task", "tasks", "document", "documents", "file", "files", "template",
	"templates", "design", "development", "developer", "developers",
	"engineering", "operations", "finance", "accounting", "payroll",
	"billing", "invoice", "invoicing", "payment", "payments", "checkout",
	"subscription", "subscriptions", "trial", "demo", "onboarding",
	"training", "consulting", "agency", "agencies", "vendor", "vendors",
	"provider", "providers", "partner", "partners", "ecosystem",
}

// spamPhrases are multi-word promotional fragments that occasionally survive
// extraction when an AI response quotes marketing copy. Matched as substrings
// of the normalized term via Aho-Corasick.
var spamPhrases = []string{
	"click here", "sign up now", "buy now", "limited time", "act now",
	"free trial", "get started", "learn more", "contact us", "book a demo",
	"request a demo", "no credit card", "money back", "best in class",
	"state of the art", "all in one", "one stop shop", "game changer",
	"cutting edge", "next generation", "world class", "industry leading",
	"award winning", "trusted by", "join thousands", "dont miss",
	"exclusive offer", "special offer", "save up to", "terms and conditions",
}
