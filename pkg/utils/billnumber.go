package utils

import (
	"fmt"
	"math/rand"
	"time"
)

const billNumberSuffixChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateBillNumber builds a practically-unique bill number of the form
// BILL-<YYYYMMDDHHMMSS>-<3 random upper-alnum chars>. Collisions are possible
// and must be handled at insert time by the caller.
func GenerateBillNumber() string {
	timestamp := time.Now().Format("20060102150405")
	suffix := make([]byte, 3)
	for i := range suffix {
		suffix[i] = billNumberSuffixChars[rand.Intn(len(billNumberSuffixChars))]
	}
	return fmt.Sprintf("BILL-%s-%s", timestamp, suffix)
}
