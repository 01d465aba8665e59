package helper

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var fileSizeUnits = []string{"Bytes", "KB", "MB", "GB"}

// FormatFileSize renders bytes with a 1024 base and at most two decimals,
// trailing zeros dropped.
func FormatFileSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}
	const k = 1024
	i, unit := 0, int64(1)
	for i < len(fileSizeUnits)-1 && bytes >= unit*k {
		unit *= k
		i++
	}
	value := math.Round(float64(bytes)/float64(unit)*100) / 100
	return strconv.FormatFloat(value, 'f', -1, 64) + " " + fileSizeUnits[i]
}

var localeMatcher = language.NewMatcher([]language.Tag{language.English, language.Arabic})

func matchLocale(locale string) language.Tag {
	tag, _ := language.MatchStrings(localeMatcher, locale)
	return tag
}

func isArabic(tag language.Tag) bool {
	base, _ := tag.Base()
	return base.String() == "ar"
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// FormatDate parses an API timestamp and renders it as a long date with
// time. The value's own offset is kept.
func FormatDate(value, locale string) (string, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return FormatTime(t, locale), nil
		}
	}
	return "", fmt.Errorf("invalid date %q", value)
}

var arabicMonths = [...]string{
	"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو",
	"يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر",
}

// FormatTime renders t as a long date with time of day, with month names in
// the locale's language.
func FormatTime(t time.Time, locale string) string {
	if !isArabic(matchLocale(locale)) {
		return t.Format("January 2, 2006 at 03:04 PM")
	}

	meridiem := "ص"
	if t.Hour() >= 12 {
		meridiem = "م"
	}
	hour := t.Hour() % 12
	if hour == 0 {
		hour = 12
	}
	s := fmt.Sprintf("%d %s %d في %02d:%02d %s",
		t.Day(), arabicMonths[t.Month()-1], t.Year(), hour, t.Minute(), meridiem)
	return toArabicDigits(s)
}

func toArabicDigits(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			r = '٠' + (r - '0')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// FormatNumber groups thousands the way the locale does.
func FormatNumber(n int64, locale string) string {
	return message.NewPrinter(matchLocale(locale)).Sprintf("%d", n)
}

// IsArabicLocale reports whether locale resolves to Arabic.
func IsArabicLocale(locale string) bool {
	return isArabic(matchLocale(locale))
}
