package ledger

// TimeField identifies an editable field of a TimeEntry.
type TimeField int

const (
	// TimeFieldAction is the action code for the work performed.
	TimeFieldAction TimeField = iota
	// TimeFieldWork is the free-text description of the work.
	TimeFieldWork
	// TimeFieldHours is the number of hours spent.
	TimeFieldHours
	// TimeFieldRate is the hourly rate in the order's currency.
	TimeFieldRate
)

// TimeEntry is one row of time spent on a work order. Its total is
// hours times rate.
type TimeEntry struct {
	action string
	work   string
	hours  float64
	rate   float64
	total  float64
}

// NewTimeEntry creates a time entry from grid text. Hours and rate are
// parsed leniently; unparseable input becomes zero.
func NewTimeEntry(action, work, hours, rate string) TimeEntry {
	return TimeEntry{
		action: action,
		work:   work,
		hours:  parseAmount(hours),
		rate:   parseAmount(rate),
	}.Recalculate()
}

// RestoreTimeEntry rehydrates a time entry from stored values.
func RestoreTimeEntry(action, work string, hours, rate float64) TimeEntry {
	return TimeEntry{
		action: action,
		work:   work,
		hours:  hours,
		rate:   rate,
	}.Recalculate()
}

func (e TimeEntry) Action() string { return e.action }
func (e TimeEntry) Work() string   { return e.work }
func (e TimeEntry) Hours() float64 { return e.hours }
func (e TimeEntry) Rate() float64  { return e.rate }

// Apply returns a copy with one field set from raw text.
func (e TimeEntry) Apply(field TimeField, raw string) TimeEntry {
	switch field {
	case TimeFieldAction:
		e.action = raw
	case TimeFieldWork:
		e.work = raw
	case TimeFieldHours:
		e.hours = parseAmount(raw)
	case TimeFieldRate:
		e.rate = parseAmount(raw)
	}
	return e
}

// Recalculate returns a copy with the row total refreshed.
func (e TimeEntry) Recalculate() TimeEntry {
	e.total = e.hours * e.rate
	return e
}

// Total returns the row total (hours times rate).
func (e TimeEntry) Total() float64 {
	return e.total
}
