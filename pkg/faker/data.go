package faker

// =============================================================================
// Faker Data — Names
// =============================================================================

var fakerFirstNames = []string{
	"John", "Jane", "Alex", "Maria", "Sam", "Taylor", "Jordan", "Morgan",
	"Bob", "Alice", "Charlie", "Diana", "Edward", "Fiona", "Grace", "Henry",
}

var fakerLastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Wilson", "Doe", "Moore", "Taylor", "Anderson", "Thomas", "Jackson", "White",
}

var fakerJobLevels = []string{"Senior", "Lead", "Junior", "Principal", "Staff", "Chief"}

var fakerJobFields = []string{"Software", "Data", "Product", "Marketing", "Security", "Operations"}

var fakerJobRoles = []string{"Engineer", "Designer", "Manager", "Analyst", "Developer", "Architect"}

// =============================================================================
// Faker Data — Lorem
// =============================================================================

var fakerLoremWords = []string{
	"lorem", "ipsum", "dolor", "sit", "amet", "consectetur", "adipiscing", "elit",
	"sed", "do", "eiusmod", "tempor", "incididunt", "ut", "labore", "et",
	"dolore", "magna", "aliqua", "enim", "ad", "minim", "veniam", "quis",
	"nostrud", "exercitation", "ullamco", "laboris", "nisi", "aliquip", "ex", "ea",
	"commodo", "consequat", "duis", "aute", "irure", "in", "reprehenderit", "voluptate",
}

// =============================================================================
// Faker Data — Internet
// =============================================================================

var fakerDomainSuffixes = []string{"com", "net", "org", "io", "info", "biz", "name"}

var fakerFreeEmailDomains = []string{"gmail.com", "yahoo.com", "hotmail.com", "example.com", "mock.io"}

var fakerImageCategories = []string{
	"abstract", "animals", "business", "cats", "city", "food",
	"nightlife", "fashion", "people", "nature", "sports", "technics", "transport",
}

// fakerUserAgents contains realistic browser user agent strings.
var fakerUserAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:121.0) Gecko/20100101 Firefox/121.0",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (iPhone; CPU iPhone OS 17_2 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.2 Mobile/15E148 Safari/604.1",
}

// =============================================================================
// Faker Data — Address
// =============================================================================

var fakerStreets = []string{"Main St", "Oak Ave", "Elm St", "Park Blvd", "Cedar Ln", "Maple Dr", "Pine Rd", "Lake Way"}

var fakerCities = []string{
	"New York", "Los Angeles", "Chicago", "Houston", "Phoenix",
	"San Francisco", "Seattle", "Austin", "Denver", "Boston",
}

var fakerStates = []string{
	"California", "Texas", "New York", "Florida", "Illinois",
	"Washington", "Colorado", "Massachusetts",
}

var fakerCountryCodes = []string{"US", "GB", "CA", "DE", "FR", "JP", "AU", "BR", "IN", "ES"}

var fakerCountries = []string{
	"United States", "United Kingdom", "Canada", "Germany", "France",
	"Japan", "Australia", "Brazil", "India", "Spain",
}

// =============================================================================
// Faker Data — Company / Commerce / Finance
// =============================================================================

var fakerCompanies = []string{"Acme", "Globex", "Initech", "Umbrella", "Stark", "Wayne", "Cyberdyne", "Tyrell"}

var fakerCompanySuffixes = []string{"Corp", "Inc", "LLC", "Ltd", "Group"}

// fakerCurrencyCodes contains ISO 4217 currency codes.
var fakerCurrencyCodes = []string{
	"USD", "EUR", "GBP", "JPY", "AUD", "CAD", "CHF", "CNY",
	"SEK", "NZD", "MXN", "SGD", "HKD", "NOK", "KRW", "INR",
}

var fakerProductAdjectives = []string{
	"Rustic", "Elegant", "Handcrafted", "Refined", "Sleek",
	"Gorgeous", "Practical", "Modern", "Vintage", "Premium",
}

var fakerProductMaterials = []string{
	"Steel", "Wooden", "Granite", "Rubber", "Cotton",
	"Silk", "Leather", "Bamboo", "Bronze", "Copper",
}

var fakerProductNouns = []string{
	"Chair", "Table", "Lamp", "Keyboard", "Mouse",
	"Backpack", "Watch", "Wallet", "Headphones", "Speaker",
}

// fakerColors contains color names.
var fakerColors = []string{
	"Crimson", "Azure", "Emerald", "Ivory", "Coral",
	"Indigo", "Amber", "Jade", "Scarlet", "Turquoise",
	"Lavender", "Maroon", "Teal", "Orchid", "Cyan",
}

// =============================================================================
// Faker Data — System
// =============================================================================

var fakerMIMETypes = []string{
	"application/json", "application/xml", "application/pdf", "text/plain",
	"text/html", "text/csv", "image/png", "image/jpeg", "image/gif", "video/mp4",
}

var fakerFileExtensions = []string{"json", "xml", "pdf", "txt", "html", "csv", "png", "jpg", "gif", "mp4"}
