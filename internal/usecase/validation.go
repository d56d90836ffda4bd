package usecase

import (
	"net/mail"
	"time"
)

const legalDrinkingAge = 21

func isValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

func parseBirthDate(dateStr string) (time.Time, error) {
	return time.Parse("2006-01-02", dateStr)
}

// ageAt computes whole years between birth and now, counting the birthday
// itself as completed.
func ageAt(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}

func isOfLegalAge(birth, now time.Time) bool {
	return ageAt(birth, now) >= legalDrinkingAge
}
