// Package jobs runs the scheduled background work.
package jobs

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/fengcheng-bakery/cake-orders/internal/order"
)

// OrderLister is the slice of the order repository the report reads.
type OrderLister interface {
	List(ctx context.Context) ([]order.Order, error)
}

// TriageReport logs the dashboard counts once a day so the morning shift sees
// the workload in the server log.
type TriageReport struct {
	orders OrderLister
	loc    *time.Location
	now    func() time.Time
}

func NewTriageReport(orders OrderLister, loc *time.Location) *TriageReport {
	return &TriageReport{orders: orders, loc: loc, now: time.Now}
}

// Run computes and logs one report.
func (r *TriageReport) Run() (order.Dashboard, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	orders, err := r.orders.List(ctx)
	if err != nil {
		log.Printf("[report] list orders: %v", err)
		return order.Dashboard{}, err
	}
	d := order.Triage(orders, r.now(), r.loc)
	log.Printf("[report] today=%d tomorrow=%d overdue=%d pending=%d",
		d.TodayPending, d.TomorrowDue, d.Overdue, len(d.AllPending))
	for _, row := range d.Recent {
		log.Printf("[report]   %s %s due=%s status=%s",
			row.Label(), row.CustomerName, row.FulfillmentAt.In(r.loc).Format("01-02 15:04"), row.OrderStatus)
	}
	return d, nil
}

// StartScheduler registers the daily report at hour:00 in loc.
func StartScheduler(report *TriageReport, hour int) (gocron.Scheduler, error) {
	s, err := gocron.NewScheduler(gocron.WithLocation(report.loc))
	if err != nil {
		return nil, err
	}
	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(uint(hour), 0, 0),
			),
		),
		gocron.NewTask(func() { _, _ = report.Run() }),
		gocron.WithName("triage-report"),
	)
	if err != nil {
		return nil, err
	}
	s.Start()
	log.Printf("[report] triage report scheduled daily at %02d:00 %s", hour, report.loc)
	return s, nil
}
