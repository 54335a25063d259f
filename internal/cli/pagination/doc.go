// Package pagination provides the flag handling, sorting and result metadata
// shared by the non-interactive roster commands.
//
// Two layers of pagination meet here:
//   - Remote pages: --pages bounds how many fixed-size pages the list command
//     pulls from the directory endpoint through the roster reducer.
//   - Output window: --limit/--offset or --page/--page-size slice the displayed
//     sequence after filtering and sorting.
//
// The two output modes are mutually exclusive.
package pagination
