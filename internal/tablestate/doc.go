// Package tablestate is a headless table engine: it holds the view state of a
// table (sorting, column filters, row selection, column visibility and the page
// window) and derives the rows a renderer should show.
//
// Derivation runs in a fixed order: dataset rows are filtered, the survivors
// are sorted, and the sorted rows are cut into pages. Every feature can be
// switched off through Options, in which case its setters do nothing and its
// stage is skipped.
//
// Setters never fail. Unknown column IDs, disabled features and out-of-range
// page indexes are ignored or clamped so that a misconfigured caller degrades
// to a table that simply does less.
package tablestate
