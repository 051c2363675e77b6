// Package logtail reads the end of folio's log file and formats zap JSON
// lines for a terminal.
//
// # Reading
//
// Read keeps a ring buffer of maxLines entries while scanning the file once,
// so memory stays O(maxLines) regardless of file size:
//
//	1. Store each line at the current index, wrapping at maxLines
//	2. Track the number of lines seen
//	3. Return the buffer starting at the oldest line
//
// A missing file returns nil, nil. Other I/O errors are wrapped.
//
// # Formatting
//
// folio logs with zap's JSON encoder. FormatLine turns
//
//	{"level":"info","ts":"2025-10-08T21:01:05.000Z","logger":"server","msg":"session started","user":"guest"}
//
// into
//
//	2025-10-08T21:01:05.000Z INFO  [server] session started user=guest
//
// with the time dimmed, the level coloured and bold, and field keys tinted.
// Lines that are not zap JSON pass through unchanged. Colours follow the
// lipgloss renderer given to NewFormatter, so they disappear when output is
// not a terminal.
package logtail
