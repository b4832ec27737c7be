// Package history keeps an optional relational copy of the reading days.
// The JSON record remains the source of truth; the table is rebuilt on every
// sync so it can be queried by other tools.
package history
