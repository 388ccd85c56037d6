package order

import (
	"log"
	"sort"
	"time"
)

// DashboardRow is an order as listed on the dashboard.
type DashboardRow struct {
	Order
	FulfillmentAt   *time.Time `json:"fulfillmentAt"`
	CanMarkComplete bool       `json:"canMarkComplete"`
}

// Dashboard swagger:model Dashboard
type Dashboard struct {
	TodayPending int            `json:"todayPending"`
	TomorrowDue  int            `json:"tomorrowDue"`
	Overdue      int            `json:"overdue"`
	Recent       []DashboardRow `json:"recent"`
	AllPending   []DashboardRow `json:"allPending"`
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// Triage classifies the non-terminal orders against now, with calendar days
// taken in loc. Overdue orders are counted but not listed in Recent.
func Triage(orders []Order, now time.Time, loc *time.Location) Dashboard {
	if loc == nil {
		loc = time.Local
	}
	today := startOfDay(now, loc)
	tomorrow := today.AddDate(0, 0, 1)

	d := Dashboard{Recent: []DashboardRow{}, AllPending: []DashboardRow{}}
	for _, o := range orders {
		if o.OrderStatus.Terminal() {
			continue
		}
		row := DashboardRow{Order: o, CanMarkComplete: o.OrderStatus.CanMarkComplete()}

		at, ok := o.FulfillmentTime()
		if !ok {
			log.Printf("[triage] order %s has no fulfillment time, skipping day buckets", o.Label())
			d.AllPending = append(d.AllPending, row)
			continue
		}
		row.FulfillmentAt = &at
		d.AllPending = append(d.AllPending, row)

		day := startOfDay(at, loc)
		switch {
		case day.Equal(today):
			d.TodayPending++
			d.Recent = append(d.Recent, row)
		case day.Equal(tomorrow):
			d.TomorrowDue++
			d.Recent = append(d.Recent, row)
		case day.Before(today):
			d.Overdue++
		}
	}

	sortByFulfillment(d.Recent)
	sortByFulfillment(d.AllPending)
	return d
}

// sortByFulfillment orders rows by their actual instant; rows without one go
// last, ties fall back to creation time.
func sortByFulfillment(rows []DashboardRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i].FulfillmentAt, rows[j].FulfillmentAt
		switch {
		case a == nil && b == nil:
			return rows[i].CreatedAt.Before(rows[j].CreatedAt)
		case a == nil:
			return false
		case b == nil:
			return true
		case a.Equal(*b):
			return rows[i].CreatedAt.Before(rows[j].CreatedAt)
		default:
			return a.Before(*b)
		}
	})
}
