// Package kindle fetches the raw reading-activity payload from Kindle Reading
// Insights using a browser session cookie.
//
// Two documents are requested:
//
//   - the insights HTML page, which embeds the full "days_read" list in a script
//     block and is scraped with a regular expression;
//   - the insights JSON endpoint, which carries streaks and goal information.
//
// The JSON document forms the payload and the scraped day list overrides its
// days_read field. Fetch fails with a *FetchError only when neither document
// produced any data; a rejected session is reported as ErrUnauthorized.
package kindle
