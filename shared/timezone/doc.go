// Package timezone pins every server-assigned timestamp (booking and message createdAt)
// to one application timezone.
//
//	now := timezone.Now()                   // current time in app timezone
//	appTime := timezone.ToAppTime(someTime) // convert rows read back from a database
//
// The zone is read from APP_TIMEZONE (IANA names such as "UTC" or "Europe/Rome") when the
// package is imported; an empty or unknown value falls back to UTC.
package timezone
