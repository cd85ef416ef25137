package generator

import (
	"encoding/base64"
	"fmt"
	"time"
)

var hintLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// formatted produces a value for a string node with a format. A hint
// holding min and max bounds the instant used by date formats.
func (g *Generator) formatted(format string, hint any) any {
	switch format {
	case "date":
		t := g.instant(hint)
		// Month and day are emitted as zero-based month and day-of-week
		// for compatibility with existing fixtures.
		return fmt.Sprintf("%d-%d-%d", t.Year(), int(t.Month())-1, int(t.Weekday()))
	case "date-time":
		return g.instant(hint)
	case "password":
		return g.faker.Password()
	case "byte":
		return base64.StdEncoding.EncodeToString([]byte(g.faker.Sentence()))
	case "binary":
		// Placeholder: no file content is produced.
		return g.faker.ImageURL()
	case "email":
		return g.faker.Email()
	case "uuid":
		return g.faker.UUID()
	case "uri":
		return g.faker.URL()
	case "hostname":
		return g.faker.DomainName()
	case "ipv4":
		return g.faker.IPv4()
	case "ipv6":
		return g.faker.IPv6()
	default:
		return ""
	}
}

func (g *Generator) instant(hint any) time.Time {
	if from, to, ok := dateRange(hint); ok {
		return g.faker.Between(from, to)
	}
	return g.faker.Recent()
}

// dateRange reads {min, max} from a hint.
func dateRange(hint any) (time.Time, time.Time, bool) {
	m, ok := hint.(map[string]any)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	from, ok := parseInstant(m["min"])
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	to, ok := parseInstant(m["max"])
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

func parseInstant(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		for _, layout := range hintLayouts {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed, true
			}
		}
	case int:
		return time.UnixMilli(int64(t)), true
	case int64:
		return time.UnixMilli(t), true
	case float64:
		return time.UnixMilli(int64(t)), true
	}
	return time.Time{}, false
}
