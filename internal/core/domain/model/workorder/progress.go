package workorder

import "time"

// Progress is an on-demand snapshot of a work order's execution state:
// percent complete, elapsed run time, throughput, and the estimated
// completion time at the machine's rated throughput.
type Progress struct {
	Status            Status
	TotalPlannedLbs   float64
	ProcessedLbs      float64
	Percent           float64
	Elapsed           time.Duration
	RateLbsPerHour    float64
	EstimatedComplete *time.Time
}

// Progress computes the snapshot at the given instant. throughputLbsPerHour
// is the machine's rated throughput and only feeds the completion estimate;
// pass 0 when the machine is unknown.
//
// Percent is defined as 0 when nothing is planned. Rate is reported weight
// per elapsed hour (the completion-reported weight once the run finished,
// production-scaled weight while it is running) and is defined as 0 while
// no execution time has elapsed.
func (w *WorkOrder) Progress(now time.Time, throughputLbsPerHour float64) Progress {
	total := w.TotalPlannedWeightLbs()
	processed := w.ProcessedWeightLbs()
	elapsed := w.ElapsedTime(now)

	var percent float64
	if total > 0 {
		percent = processed / total * 100
	}

	reported := processed
	if w.actualEnd != nil {
		reported = w.actualLbs
	}

	var rate float64
	if elapsed > 0 {
		rate = reported / elapsed.Hours()
	}

	var estimate *time.Time
	if w.status == InProgress && throughputLbsPerHour > 0 {
		remaining := total - processed
		if remaining < 0 {
			remaining = 0
		}
		eta := now.Add(time.Duration(remaining / throughputLbsPerHour * float64(time.Hour)))
		estimate = &eta
	}

	return Progress{
		Status:            w.status,
		TotalPlannedLbs:   total,
		ProcessedLbs:      processed,
		Percent:           percent,
		Elapsed:           elapsed,
		RateLbsPerHour:    rate,
		EstimatedComplete: estimate,
	}
}
