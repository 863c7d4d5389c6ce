package natural

import (
	"os"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collation orders plain text for the Comparator. Implementations must be
// safe for concurrent use; the Comparator calls Compare from any goroutine
// and never synchronizes around it.
type Collation interface {
	// Compare returns a negative value if a orders before b, zero if the
	// collation considers them equivalent, and a positive value otherwise.
	Compare(a, b string) int
}

// CollationFunc adapts an ordinary comparison function to the Collation
// interface, the way http.HandlerFunc adapts handlers.
type CollationFunc func(a, b string) int

// Compare implements Collation by calling f.
func (f CollationFunc) Compare(a, b string) int { return f(a, b) }

// Binary returns a locale-free Collation that orders by raw bytes. Use it
// when output must be reproducible regardless of locale data.
func Binary() Collation { return CollationFunc(strings.Compare) }

// ForTag returns a Collation backed by the golang.org/x/text collator for
// tag. Options such as collate.IgnoreCase pass straight through.
//
// The returned Collation is safe for concurrent use even though a
// *collate.Collator is not: the Collator keeps internal iterator buffers,
// so calls are serialized with a mutex here.
func ForTag(tag language.Tag, opts ...collate.Option) Collation {
	return &localeCollation{col: collate.New(tag, opts...)}
}

// localeCollation guards a stateful x/text Collator behind a mutex.
type localeCollation struct {
	mu  sync.Mutex
	col *collate.Collator
}

func (l *localeCollation) Compare(a, b string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.col.CompareString(a, b)
}

// defaultTag resolves the process locale from LC_ALL, LC_COLLATE and LANG
// in POSIX precedence order, falling back to the undetermined tag when
// nothing usable is set.
func defaultTag() language.Tag {
	for _, name := range []string{"LC_ALL", "LC_COLLATE", "LANG"} {
		if v := os.Getenv(name); v != "" {
			if tag, ok := parseLocale(v); ok {
				return tag
			}
		}
	}

	return language.Und
}

// parseLocale converts a POSIX locale string such as "en_US.UTF-8" or
// "de_DE@euro" into a BCP 47 tag. "C" and "POSIX" map to the undetermined
// tag on purpose: they ask for byte-order-ish collation, which und's
// default collation approximates without locale tailoring.
func parseLocale(v string) (language.Tag, bool) {
	if i := strings.IndexAny(v, ".@"); i >= 0 {
		v = v[:i]
	}
	if v == "" || strings.EqualFold(v, "C") || strings.EqualFold(v, "POSIX") {
		return language.Und, true
	}

	tag, err := language.Parse(strings.ReplaceAll(v, "_", "-"))
	if err != nil {
		return language.Und, false
	}

	return tag, true
}
