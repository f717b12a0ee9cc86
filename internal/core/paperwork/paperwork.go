// Package paperwork reduces a multi-section driver trip export into one summary per driver
package paperwork

import (
	"math/big"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// DefaultValue fills fields that no row has provided yet
const DefaultValue = "N/A"

// HeaderPrefix marks the first cell of a row that opens a driver block
const HeaderPrefix = "Driver:"

// dateLayout is MM/DD/YYYY, month and day may drop the leading zero
const dateLayout = "1/2/2006"

// fixed column positions inside a data row
const (
	colTripID        = 1
	colTruck         = 4
	colDriverName    = 6
	colPaperworkDate = 13

	minDataCells = colPaperworkDate + 1
)

// Columns are the output headers in render order
var Columns = []string{"Driver", "Truck", "Last Paperwork Date", "Trip ID"}

// Summary is the best record kept for one driver
type Summary struct {
	Driver            string `json:"driver"`
	Truck             string `json:"truck"`
	LastPaperworkDate string `json:"last_paperwork_date"`
	TripID            string `json:"trip_id"`
}

// Cells returns the summary in Columns order
func (s Summary) Cells() []string {
	return []string{s.Driver, s.Truck, s.LastPaperworkDate, s.TripID}
}

// state is the per driver best-so-far record
type state struct {
	tripID        string
	truck         string
	paperworkDate string
}

func newState() *state {
	return &state{tripID: DefaultValue, truck: DefaultValue, paperworkDate: DefaultValue}
}

// Reducer folds rows one at a time. Row order matters, so a Reducer must not be fed
// from more than one goroutine. Separate Reducers share nothing.
type Reducer struct {
	order   []string
	drivers map[string]*state

	// scan context, reset by every header row
	current     string
	inScope     bool
	latestTruck string
}

// NewReducer returns an empty Reducer
func NewReducer() *Reducer {
	return &Reducer{drivers: map[string]*state{}}
}

// Reduce folds rows and returns summaries in first-appearance order of driver headers
func Reduce(rows [][]string) []Summary {
	r := NewReducer()
	for _, row := range rows {
		r.Feed(row)
	}
	return r.Summaries()
}

// Feed consumes one row
func (r *Reducer) Feed(row []string) {
	if blank(row) {
		return
	}
	if name, ok := HeaderName(row[0]); ok {
		r.enter(name)
		return
	}
	if !r.inScope || len(row) < minDataCells {
		return
	}
	r.record(row)
}

// Summaries returns the current table. It is safe to keep feeding afterwards.
func (r *Reducer) Summaries() []Summary {
	out := make([]Summary, 0, len(r.order))
	for _, name := range r.order {
		st := r.drivers[name]
		out = append(out, Summary{
			Driver:            name,
			Truck:             st.truck,
			LastPaperworkDate: st.paperworkDate,
			TripID:            st.tripID,
		})
	}
	return out
}

// Len reports how many drivers have been seen
func (r *Reducer) Len() int { return len(r.order) }

// enter switches scope to name, keeping any state the driver already has.
// An empty name still gets a summary but no row is recorded against it.
func (r *Reducer) enter(name string) {
	r.current = name
	r.inScope = name != ""
	r.latestTruck = ""
	if _, ok := r.drivers[name]; !ok {
		r.drivers[name] = newState()
		r.order = append(r.order, name)
	}
}

func (r *Reducer) record(row []string) {
	tripID := strings.TrimSpace(row[colTripID])
	truck := strings.TrimSpace(row[colTruck])
	driverName := strings.TrimSpace(row[colDriverName])
	date := strings.TrimSpace(row[colPaperworkDate])

	st := r.drivers[r.current]

	// truck follows the latest row even when the row loses the recency check
	if truck != "" {
		r.latestTruck = truck
		st.truck = truck
	}

	if tripID == "" || driverName == "" || date == "" {
		return
	}

	if !newer(date, tripID, st) {
		return
	}

	next := &state{tripID: tripID, truck: st.truck, paperworkDate: date}
	if r.latestTruck != "" {
		next.truck = r.latestTruck
	}
	r.drivers[r.current] = next
}

// newer applies the recency policy: first record, later date, or same date with a higher trip ordinal
func newer(date, tripID string, st *state) bool {
	if st.paperworkDate == DefaultValue {
		return true
	}
	if CompareDates(date, st.paperworkDate) {
		return true
	}
	return date == st.paperworkDate && ExtractTripNumber(tripID).Cmp(ExtractTripNumber(st.tripID)) > 0
}

// HeaderName reports whether cell opens a driver block and returns the driver name.
// The name is the text after the first ':' up to the first ',' with whitespace trimmed.
func HeaderName(cell string) (string, bool) {
	if !strings.HasPrefix(cell, HeaderPrefix) {
		return "", false
	}
	_, rest, _ := strings.Cut(cell, ":")
	name, _, _ := strings.Cut(rest, ",")
	return strings.TrimSpace(name), true
}

// ExtractTripNumber concatenates every decimal digit in id, of any script, and parses
// the result. Returns 0 when there are no digits. The value is unbounded.
func ExtractTripNumber(id string) *big.Int {
	var b strings.Builder
	for _, c := range id {
		if d, ok := decimalDigit(c); ok {
			b.WriteByte('0' + d)
		}
	}
	n := new(big.Int)
	if b.Len() > 0 {
		n.SetString(b.String(), 10)
	}
	return n
}

// decimalDigit returns the value of a Unicode Nd rune. Nd digits come in runs of ten
// starting at zero, so the offset into the table range gives the value.
func decimalDigit(c rune) (byte, bool) {
	if c >= '0' && c <= '9' {
		return byte(c - '0'), true
	}
	if c < utf8.RuneSelf || !unicode.IsDigit(c) {
		return 0, false
	}
	if c <= 0xFFFF {
		u := uint16(c)
		for _, rg := range unicode.Nd.R16 {
			if u >= rg.Lo && u <= rg.Hi {
				return byte((u - rg.Lo) % 10), true
			}
		}
	}
	u := uint32(c)
	for _, rg := range unicode.Nd.R32 {
		if u >= rg.Lo && u <= rg.Hi {
			return byte((u - rg.Lo) % 10), true
		}
	}
	return 0, false
}

// CompareDates reports whether a is strictly after b, both in MM/DD/YYYY.
// A date that fails to parse on either side yields false.
func CompareDates(a, b string) bool {
	ta, ok := parseDate(a)
	if !ok {
		return false
	}
	tb, ok := parseDate(b)
	if !ok {
		return false
	}
	return ta.After(tb)
}

func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func blank(row []string) bool {
	for _, c := range row {
		if c != "" {
			return false
		}
	}
	return true
}
