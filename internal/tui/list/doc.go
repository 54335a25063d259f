// Package listview provides the virtual list that backs the roster table.
//
// Only the rows inside the viewport (plus a small buffer) are rendered. The
// list also acts as the scroll driver of infinite scroll: NearEnd reports
// when the selection has come within a threshold of the last rendered row,
// and FillsViewport reports whether there are enough rows to scroll at all.
// Items can be replaced in place as pages arrive without losing the
// selection.
package listview
