// Package detail renders the detail card shown when an employee row is
// opened from the roster table.
//
// The card needs nothing beyond the record already held by the page, so it
// renders synchronously. Fields the listing endpoint left empty are shown
// as a dash rather than omitted, keeping the card layout stable.
package detail
