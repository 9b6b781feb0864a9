package appointment

import (
	"time"

	"github.com/BruksfildServices01/dental-clinic/internal/models"
)

type AvailabilityInput struct {
	Date     time.Time
	Duration time.Duration
}

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// BuildSlots walks the working day in steps of slot and keeps the
// slots that miss the break and every busy appointment. busy must be
// sorted by StartTime.
func BuildSlots(
	wh *models.WorkingHours,
	date time.Time,
	slot time.Duration,
	busy []models.Appointment,
) []TimeSlot {

	slots := []TimeSlot{}
	if wh == nil || !wh.Active || slot <= 0 {
		return slots
	}

	dayStart, ok1 := atClock(date, wh.StartTime)
	dayEnd, ok2 := atClock(date, wh.EndTime)
	if !ok1 || !ok2 {
		return slots
	}

	breakStart, hasBreak := atClock(date, wh.BreakStart)
	breakEnd, ok := atClock(date, wh.BreakEnd)
	hasBreak = hasBreak && ok

	apIdx := 0

	for cur := dayStart; !cur.Add(slot).After(dayEnd); cur = cur.Add(slot) {

		slotStart := cur
		slotEnd := cur.Add(slot)

		if hasBreak && slotStart.Before(breakEnd) && slotEnd.After(breakStart) {
			continue
		}

		// appointments that ended before this slot are done
		for apIdx < len(busy) && !busy[apIdx].EndTime.After(slotStart) {
			apIdx++
		}

		conflict := false
		for i := apIdx; i < len(busy) && busy[i].StartTime.Before(slotEnd); i++ {
			if slotStart.Before(busy[i].EndTime) && slotEnd.After(busy[i].StartTime) {
				conflict = true
				break
			}
		}

		if !conflict {
			slots = append(slots, TimeSlot{
				Start: slotStart.Format("15:04"),
				End:   slotEnd.Format("15:04"),
			})
		}
	}

	return slots
}

// BookedSlots lists the blocking appointments as HH:MM ranges.
func BookedSlots(busy []models.Appointment, loc *time.Location) []TimeSlot {
	out := make([]TimeSlot, 0, len(busy))
	for _, ap := range busy {
		out = append(out, TimeSlot{
			Start: ap.StartTime.In(loc).Format("15:04"),
			End:   ap.EndTime.In(loc).Format("15:04"),
		})
	}
	return out
}
