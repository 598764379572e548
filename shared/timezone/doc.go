// Package timezone holds the application time zone (APP_TIMEZONE).
//
// Booking dates are calendar dates and are never shifted through this
// package; it only renders "today" for the booking form and stamps report
// exports:
//
//	today := timezone.Today()                      // "2024-07-10"
//	key := timezone.Format(time.Now(), "20060102") // export object key part
//
// Use IANA names such as "Africa/Accra" or "UTC". An unknown name falls
// back to UTC.
package timezone
