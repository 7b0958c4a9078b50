package service

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// randHex returns n random bytes hex-encoded (2n characters).
func randHex(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic("service: rand.Read: " + err.Error())
	}
	return hex.EncodeToString(b)
}

// newTransactionID builds ids of the form PAY-20240120-789ABC012DEF.
func newTransactionID(t time.Time) string {
	return fmt.Sprintf("PAY-%s-%s", t.Format("20060102"), strings.ToUpper(randHex(6)))
}

// newReference builds invoice references of the form INV-2024-003.
func newReference(year, n int) string {
	return fmt.Sprintf("INV-%d-%03d", year, n)
}

// typePrefix returns the event type's uppercased three-letter prefix.
func typePrefix(eventType string) string {
	prefix := strings.ToUpper(eventType)
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	return prefix
}

// timestampSuffix returns the last n digits of the unix-milli timestamp.
func timestampSuffix(t time.Time, n int) string {
	ms := strconv.FormatInt(t.UnixMilli(), 10)
	if len(ms) > n {
		ms = ms[len(ms)-n:]
	}
	return ms
}
