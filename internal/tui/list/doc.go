// Package listview provides a windowed, cursor-driven list for Bubble Tea
// views.
//
// Only the rows inside the viewport are rendered,
// so the cost of View is bounded by the viewport height rather than the
// number of items. The selector uses it to show the filtered food options
// under the search box; the item set is swapped on every keystroke with
// SetItems while the cursor is kept in range.
package listview
