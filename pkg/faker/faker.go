package faker

import (
	"fmt"
	"io"
	"math"
	mathrand "math/rand/v2"
	"strings"
	"time"

	"github.com/getmockd/schemafaker/internal/id"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Defaults mirroring the corpus provider conventions.
const (
	DefaultNumberMax = 99999
	DefaultAmountMin = 0.0
	DefaultAmountMax = 1000.0
	PasswordLength   = 15
)

// Func is a generator found in the provider namespace.
type Func func() any

// Provider supplies random primitives and corpus values to the generator.
// Implementations are not required to be safe for concurrent use.
type Provider interface {
	// IntN returns a uniform int in [0, n).
	IntN(n int) int
	// Number returns a uniform int in [0, max].
	Number(max int) int
	// NumberBetween returns a uniform int in [min, max].
	NumberBetween(min, max int) int
	// Amount returns a two-decimal amount in [min, max].
	Amount(min, max float64) float64
	Boolean() bool
	Shuffle(n int, swap func(i, j int))

	Word() string
	Sentence() string
	UUID() string
	CompactID() string
	Email() string
	URL() string
	DomainName() string
	IPv4() string
	IPv6() string
	Password() string
	ImageURL() string

	// Recent returns an instant within the last day.
	Recent() time.Time
	// Between returns an instant in [from, to].
	Between(from, to time.Time) time.Time

	// FlatObject fabricates a flat word-to-word mapping with 0 to 10 entries.
	FlatObject() map[string]string

	// Lookup resolves a dotted path such as "internet.email" to a generator.
	Lookup(path string) (Func, bool)
}

// Faker is the default Provider. A nil rng draws from the global
// math/rand/v2 source and crypto/rand for identifiers.
type Faker struct {
	rng       *mathrand.Rand
	now       func() time.Time
	namespace map[string]any
}

// Option configures a Faker.
type Option func(*Faker)

// WithClock sets the clock used for relative dates.
func WithClock(now func() time.Time) Option {
	return func(f *Faker) {
		if now != nil {
			f.now = now
		}
	}
}

// New creates an unseeded Faker.
func New(opts ...Option) *Faker {
	return NewWithRand(nil, opts...)
}

// NewSeeded creates a Faker whose output is fully determined by seed and
// the configured clock.
func NewSeeded(seed uint64, opts ...Option) *Faker {
	return NewWithRand(mathrand.New(mathrand.NewPCG(seed, 0)), opts...)
}

// NewWithRand creates a Faker drawing from rng.
func NewWithRand(rng *mathrand.Rand, opts ...Option) *Faker {
	f := &Faker{rng: rng, now: time.Now}
	for _, opt := range opts {
		opt(f)
	}
	f.namespace = f.buildNamespace()
	return f
}

func (f *Faker) reader() io.Reader {
	if f.rng == nil {
		return nil
	}
	return randReader{rng: f.rng}
}

// IntN returns a uniform int in [0, n).
func (f *Faker) IntN(n int) int {
	return intN(f.rng, n)
}

// Number returns a uniform int in [0, max]. A negative max yields [max, 0].
func (f *Faker) Number(max int) int {
	if max < 0 {
		return f.NumberBetween(max, 0)
	}
	return intN(f.rng, max+1)
}

// NumberBetween returns a uniform int in [min, max]. Swapped bounds are
// reordered.
func (f *Faker) NumberBetween(min, max int) int {
	if min > max {
		min, max = max, min
	}
	return min + int(int64N(f.rng, int64(max)-int64(min)+1))
}

// Amount returns a value in [min, max] rounded to two decimals.
func (f *Faker) Amount(min, max float64) float64 {
	if min > max {
		min, max = max, min
	}
	lo := math.Ceil(min * 100)
	hi := math.Floor(max * 100)
	if hi < lo {
		return min
	}
	cents := lo + math.Floor(float64v(f.rng)*(hi-lo+1))
	if cents > hi {
		cents = hi
	}
	return cents / 100
}

// Boolean returns true or false with equal probability.
func (f *Faker) Boolean() bool {
	return intN(f.rng, 2) == 0
}

// Shuffle pseudo-randomizes the order of n elements.
func (f *Faker) Shuffle(n int, swap func(i, j int)) {
	if f.rng != nil {
		f.rng.Shuffle(n, swap)
		return
	}
	mathrand.Shuffle(n, swap)
}

// Word returns a lorem word.
func (f *Faker) Word() string {
	return pick(f.rng, fakerLoremWords)
}

// Words returns n space separated lorem words.
func (f *Faker) Words(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = f.Word()
	}
	return strings.Join(parts, " ")
}

// Sentence returns a capitalised lorem sentence of 3 to 10 words.
func (f *Faker) Sentence() string {
	words := f.Words(3 + intN(f.rng, 8))
	return cases.Title(language.Und, cases.NoLower).String(firstWord(words)) + rest(words) + "."
}

// Paragraph returns 3 to 6 sentences.
func (f *Faker) Paragraph() string {
	n := 3 + intN(f.rng, 4)
	parts := make([]string, n)
	for i := range parts {
		parts[i] = f.Sentence()
	}
	return strings.Join(parts, " ")
}

// Slug returns hyphen separated lorem words.
func (f *Faker) Slug() string {
	return strings.ReplaceAll(f.Words(2+intN(f.rng, 2)), " ", "-")
}

func firstWord(s string) string {
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i]
	}
	return s
}

func rest(s string) string {
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[i:]
	}
	return ""
}

// UUID returns a UUID v4.
func (f *Faker) UUID() string {
	return id.UUID(f.reader())
}

// CompactID returns a UUID v4 with its hyphens stripped.
func (f *Faker) CompactID() string {
	return id.Compact(f.reader())
}

// FirstName returns a first name.
func (f *Faker) FirstName() string {
	return pick(f.rng, fakerFirstNames)
}

// LastName returns a last name.
func (f *Faker) LastName() string {
	return pick(f.rng, fakerLastNames)
}

// FullName returns a first and last name.
func (f *Faker) FullName() string {
	return f.FirstName() + " " + f.LastName()
}

// JobTitle returns a job title.
func (f *Faker) JobTitle() string {
	return pick(f.rng, fakerJobLevels) + " " + pick(f.rng, fakerJobFields) + " " + pick(f.rng, fakerJobRoles)
}

// UserName returns a lower-case user name.
func (f *Faker) UserName() string {
	return strings.ToLower(f.FirstName()) + "." + strings.ToLower(f.LastName()) + fmt.Sprint(intN(f.rng, 100))
}

// Email returns an email address.
func (f *Faker) Email() string {
	return f.UserName() + "@" + pick(f.rng, fakerFreeEmailDomains)
}

// DomainName returns a domain such as "dolor.net".
func (f *Faker) DomainName() string {
	return f.Word() + "." + pick(f.rng, fakerDomainSuffixes)
}

// URL returns an https URL on a random domain.
func (f *Faker) URL() string {
	return "https://" + f.DomainName()
}

// IPv4 returns a dotted-quad address.
func (f *Faker) IPv4() string {
	return fmt.Sprintf("%d.%d.%d.%d",
		intN(f.rng, 256), intN(f.rng, 256),
		intN(f.rng, 256), intN(f.rng, 256))
}

// IPv6 returns an address in full expanded notation.
func (f *Faker) IPv6() string {
	groups := make([]string, 8)
	for i := range groups {
		groups[i] = fmt.Sprintf("%04x", intN(f.rng, 65536))
	}
	return strings.Join(groups, ":")
}

// MACAddress returns a MAC address in uppercase hex notation.
func (f *Faker) MACAddress() string {
	return fmt.Sprintf("%02X:%02X:%02X:%02X:%02X:%02X",
		intN(f.rng, 256), intN(f.rng, 256),
		intN(f.rng, 256), intN(f.rng, 256),
		intN(f.rng, 256), intN(f.rng, 256))
}

// Password returns a random alphanumeric password.
func (f *Faker) Password() string {
	return id.Alphanumeric(f.reader(), PasswordLength)
}

// ImageURL returns a placeholder image URL. It points at no real content.
func (f *Faker) ImageURL() string {
	return fmt.Sprintf("https://picsum.photos/seed/%s/640/480", pick(f.rng, fakerImageCategories))
}

// Phone returns a US style phone number.
func (f *Faker) Phone() string {
	return fmt.Sprintf("+1-%03d-%03d-%04d", intN(f.rng, 900)+100, intN(f.rng, 900)+100, intN(f.rng, 10000))
}

// StreetAddress returns a street address.
func (f *Faker) StreetAddress() string {
	return fmt.Sprintf("%d %s", intN(f.rng, 9999)+1, pick(f.rng, fakerStreets))
}

// ZipCode returns a five digit postal code.
func (f *Faker) ZipCode() string {
	return fmt.Sprintf("%05d", intN(f.rng, 100000))
}

// Company returns a company name.
func (f *Faker) Company() string {
	return pick(f.rng, fakerCompanies) + " " + pick(f.rng, fakerCompanySuffixes)
}

// ProductName returns a product name.
func (f *Faker) ProductName() string {
	return pick(f.rng, fakerProductAdjectives) + " " +
		pick(f.rng, fakerProductMaterials) + " " +
		pick(f.rng, fakerProductNouns)
}

// CreditCard returns a Luhn-valid 16-digit number with a Visa-like prefix.
func (f *Faker) CreditCard() string {
	digits := make([]int, 16)
	digits[0] = 4
	for i := 1; i < 15; i++ {
		digits[i] = intN(f.rng, 10)
	}

	// In a 16-digit number the digit at index i is at position (15-i) from
	// the right; even indices are doubled.
	sum := 0
	for i := 0; i < 15; i++ {
		d := digits[i]
		if i%2 == 0 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
	}
	digits[15] = (10 - (sum % 10)) % 10

	var sb strings.Builder
	for _, d := range digits {
		sb.WriteByte(byte('0' + d))
	}
	return sb.String()
}

// Recent returns an instant within the day before now.
func (f *Faker) Recent() time.Time {
	now := f.now()
	return f.Between(now.Add(-24*time.Hour), now)
}

// Past returns an instant within the year before now.
func (f *Faker) Past() time.Time {
	now := f.now()
	return f.Between(now.AddDate(-1, 0, 0), now)
}

// Future returns an instant within the year after now.
func (f *Faker) Future() time.Time {
	now := f.now()
	return f.Between(now, now.AddDate(1, 0, 0))
}

// Between returns an instant in [from, to] at millisecond resolution.
func (f *Faker) Between(from, to time.Time) time.Time {
	if to.Before(from) {
		from, to = to, from
	}
	lo := from.UnixMilli()
	if from.After(time.UnixMilli(lo)) {
		lo++
	}
	hi := to.UnixMilli()
	if hi < lo {
		return from
	}
	return time.UnixMilli(lo + int64N(f.rng, hi-lo+1)).In(from.Location())
}

// FlatObject fabricates a mapping of 0 to 10 random words to random words.
func (f *Faker) FlatObject() map[string]string {
	count := f.Number(10)
	obj := make(map[string]string, count)
	for i := 0; i < count; i++ {
		obj[f.Word()] = f.Word()
	}
	return obj
}
