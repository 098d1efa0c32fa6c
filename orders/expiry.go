package orders

import "time"

// Weekly index options expire on Thursday; an order alerted after the 15:30
// IST close of the expiring contract belongs to next week's contract.
const (
	expiryWeekday = time.Thursday
	cutoffHour    = 15
	cutoffMinute  = 30
)

// IST is the trading timezone. A fixed offset avoids depending on the host
// tzdata; India has no DST.
var IST = time.FixedZone("IST", 5*3600+30*60)

// WeeklyExpiry returns the YYYY-MM-DD date of the next weekly expiry as of
// the given instant. Pure function of its argument.
func WeeklyExpiry(now time.Time) string {
	ist := now.In(IST)
	offset := (int(expiryWeekday) - int(ist.Weekday()) + 7) % 7

	expiry := time.Date(ist.Year(), ist.Month(), ist.Day(), 0, 0, 0, 0, IST).
		AddDate(0, 0, offset)

	// offset is 0 on Thursday itself; past the intraday cutoff the contract
	// has already expired, so roll to next week.
	cutoff := expiry.Add(cutoffHour*time.Hour + cutoffMinute*time.Minute)
	if ist.After(cutoff) {
		expiry = expiry.AddDate(0, 0, 7)
	}
	return expiry.Format("2006-01-02")
}
