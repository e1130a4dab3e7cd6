package utils

import "time"

// AgeOn returns the full years elapsed between dob and now, accounting for
// whether the birthday has been reached in the current year.
func AgeOn(dob, now time.Time) int {
	age := now.Year() - dob.Year()
	anniversary := dob.AddDate(age, 0, 0)
	if anniversary.After(now) {
		age--
	}
	return age
}
