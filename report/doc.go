// Package report renders statistics results as text, Markdown or CSV tables.
//
// Capability indices and test statistics can be nil, NaN or infinite for
// degenerate samples; every renderer prints those as "N/A" so a table never
// shows a misleading number.
package report
