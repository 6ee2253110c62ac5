package analytics

import (
	"fmt"
	"time"

	"github.com/mkravets/shop-analytics/internal/domain"
)

type Granularity string

const (
	Daily   Granularity = "daily"
	Weekly  Granularity = "weekly"
	Monthly Granularity = "monthly"
)

// ParseGranularity maps a timeFrame query value to a Granularity. An empty
// value defaults to monthly; anything else unknown is rejected.
func ParseGranularity(s string) (Granularity, error) {
	switch s {
	case "":
		return Monthly, nil
	case string(Daily):
		return Daily, nil
	case string(Weekly):
		return Weekly, nil
	case string(Monthly):
		return Monthly, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidTimeFrame, s)
	}
}

// SpanBuckets is how many buckets a report window covers: the last 30 days,
// 12 ISO weeks or 12 calendar months, always including the bucket that
// contains now, partially elapsed.
func (g Granularity) SpanBuckets() int {
	if g == Daily {
		return 30
	}
	return 12
}

// BucketKey identifies one time bucket as integers with a total order, so
// sorting never depends on how labels happen to format. Period is the day of
// year, ISO week number or month, depending on granularity.
type BucketKey struct {
	Year   int
	Period int
}

func (k BucketKey) Compare(o BucketKey) int {
	if k.Year != o.Year {
		if k.Year < o.Year {
			return -1
		}
		return 1
	}
	if k.Period != o.Period {
		if k.Period < o.Period {
			return -1
		}
		return 1
	}
	return 0
}

func (k BucketKey) Before(o BucketKey) bool { return k.Compare(o) < 0 }

// Label renders the bucket for display. Week and month are zero padded so
// that lexicographic order over labels agrees with the key order.
func (k BucketKey) Label(g Granularity) string {
	switch g {
	case Daily:
		// time.Date normalizes the day-of-year period back to a date.
		return time.Date(k.Year, time.January, k.Period, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
	case Weekly:
		return fmt.Sprintf("%04d-W%02d", k.Year, k.Period)
	default:
		return fmt.Sprintf("%04d-%02d", k.Year, k.Period)
	}
}

// KeyAt buckets a timestamp. All bucketing happens in UTC so an order lands
// in the same bucket no matter which zone its timestamp carries.
func KeyAt(t time.Time, g Granularity) BucketKey {
	t = t.UTC()
	switch g {
	case Daily:
		return BucketKey{Year: t.Year(), Period: t.YearDay()}
	case Weekly:
		y, w := t.ISOWeek()
		return BucketKey{Year: y, Period: w}
	default:
		return BucketKey{Year: t.Year(), Period: int(t.Month())}
	}
}

// Buckets enumerates every bucket in the report window ending at now,
// chronologically ascending. The enumeration is dense: one key per calendar
// day, ISO week or month, whether or not any order falls in it.
func Buckets(now time.Time, g Granularity) []BucketKey {
	now = now.UTC()
	n := g.SpanBuckets()
	keys := make([]BucketKey, 0, n)
	for i := n - 1; i >= 0; i-- {
		var t time.Time
		switch g {
		case Daily:
			t = now.AddDate(0, 0, -i)
		case Weekly:
			t = now.AddDate(0, 0, -7*i)
		default:
			t = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)
		}
		keys = append(keys, KeyAt(t, g))
	}
	return keys
}

// SalesPoint is one bucket of the sales series.
type SalesPoint struct {
	Date  string  `json:"date"`
	Sales float64 `json:"sales"`
	Count int     `json:"count"`
}

// SalesSeries is a dense, chronologically ascending sequence of SalesPoint,
// exactly one per bucket in the window.
type SalesSeries []SalesPoint

// BucketOrders groups orders into the dense bucket window ending at now,
// summing amount per bucket and counting orders. Buckets without orders stay
// zero valued. amount defaults to the order's total price; seller reports
// pass a subtotal function that only counts their own line items. Orders
// outside the window are ignored.
func BucketOrders(orders []domain.Order, g Granularity, now time.Time, amount func(domain.Order) float64) SalesSeries {
	keys := Buckets(now, g)
	idx := make(map[BucketKey]int, len(keys))
	series := make(SalesSeries, len(keys))
	for i, k := range keys {
		idx[k] = i
		series[i] = SalesPoint{Date: k.Label(g)}
	}

	cutoff := now.UTC()
	for _, o := range orders {
		if o.CreatedAt.After(cutoff) {
			continue
		}
		i, ok := idx[KeyAt(o.CreatedAt, g)]
		if !ok {
			continue
		}
		v := o.TotalPrice
		if amount != nil {
			v = amount(o)
		}
		series[i].Sales += v
		series[i].Count++
	}
	return series
}
