package faker

import (
	"strings"

	"github.com/ohler55/ojg/jp"
)

// buildNamespace lays out the generators reachable through Lookup, grouped
// the way example blocks usually name them ("internet.email", "name.firstName").
func (f *Faker) buildNamespace() map[string]any {
	str := func(fn func() string) Func { return func() any { return fn() } }

	return map[string]any{
		"name": map[string]any{
			"firstName": str(f.FirstName),
			"lastName":  str(f.LastName),
			"findName":  str(f.FullName),
			"fullName":  str(f.FullName),
			"jobTitle":  str(f.JobTitle),
		},
		"internet": map[string]any{
			"email":      str(f.Email),
			"userName":   str(f.UserName),
			"url":        str(f.URL),
			"domainName": str(f.DomainName),
			"ip":         str(f.IPv4),
			"ipv6":       str(f.IPv6),
			"mac":        str(f.MACAddress),
			"password":   str(f.Password),
			"userAgent":  func() any { return pick(f.rng, fakerUserAgents) },
			"avatar":     str(f.ImageURL),
		},
		"lorem": map[string]any{
			"word":      str(f.Word),
			"words":     func() any { return f.Words(3) },
			"sentence":  str(f.Sentence),
			"paragraph": str(f.Paragraph),
			"slug":      str(f.Slug),
		},
		"address": map[string]any{
			"city":          func() any { return pick(f.rng, fakerCities) },
			"state":         func() any { return pick(f.rng, fakerStates) },
			"country":       func() any { return pick(f.rng, fakerCountries) },
			"countryCode":   func() any { return pick(f.rng, fakerCountryCodes) },
			"zipCode":       str(f.ZipCode),
			"streetAddress": str(f.StreetAddress),
			"latitude":      func() any { return f.Amount(-90, 90) },
			"longitude":     func() any { return f.Amount(-180, 180) },
		},
		"company": map[string]any{
			"companyName": str(f.Company),
		},
		"phone": map[string]any{
			"phoneNumber": str(f.Phone),
		},
		"finance": map[string]any{
			"amount":           func() any { return f.Amount(DefaultAmountMin, DefaultAmountMax) },
			"currencyCode":     func() any { return pick(f.rng, fakerCurrencyCodes) },
			"creditCardNumber": str(f.CreditCard),
		},
		"commerce": map[string]any{
			"productName": str(f.ProductName),
			"price":       func() any { return f.Amount(1, 1000) },
			"color":       func() any { return pick(f.rng, fakerColors) },
		},
		"random": map[string]any{
			"uuid":    str(f.UUID),
			"number":  func() any { return f.Number(DefaultNumberMax) },
			"boolean": func() any { return f.Boolean() },
			"word":    str(f.Word),
			"image":   str(f.ImageURL),
		},
		"date": map[string]any{
			"recent": func() any { return f.Recent() },
			"past":   func() any { return f.Past() },
			"future": func() any { return f.Future() },
		},
		"system": map[string]any{
			"mimeType": func() any { return pick(f.rng, fakerMIMETypes) },
			"fileExt":  func() any { return pick(f.rng, fakerFileExtensions) },
		},
	}
}

// Lookup resolves a dotted path into the namespace. Paths may be written
// bare ("internet.email") or as JSONPath ("$.internet.email").
func (f *Faker) Lookup(path string) (Func, bool) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, false
	}
	if !strings.HasPrefix(path, "$") {
		path = "$." + path
	}

	x, err := jp.ParseString(path)
	if err != nil {
		return nil, false
	}
	switch fn := x.First(f.namespace).(type) {
	case Func:
		return fn, true
	case func() any:
		return fn, true
	default:
		return nil, false
	}
}
