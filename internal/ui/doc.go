// Package ui provides the Bubble Tea components of tablekit.
//
// Core pieces:
//   - DataTable: filter tabs, search bar, table body and pagination bar over one view-state engine
//   - FilterTabs: tab row that reports activation to its parent
//   - SearchBar: debounced input bound to one column filter
//   - TableBody: header, page rows, skeleton and empty state
//   - PaginationBar: selection count, page size and page navigation
//   - StatusBadge, SortHeader, DataCell: display atoms
//   - AppModel: the projects page used by cmd/tableview
package ui
