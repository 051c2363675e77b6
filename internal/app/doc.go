// Package app provides the orchestration layer for folio.
//
// # Overview
//
// This package wires together configuration, logging, content, the theme
// manager, and either the local TUI or the SSH server. It is the composition
// root: every dependency is built and connected here.
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()        Read config file and FOLIO_* env
//	       ├─────> newLogger()          JSON log file (and stderr for serve)
//	       ├─────> content.Load()       Embedded or user portfolio
//	       ├─────> theme.Manager        prefs.File store, renderer marker
//	       ├─────> Reloader.Run()       Watch the content file (background)
//	       └─────> ui.Run()             Start TUI (blocks)
//
//	Content Reload:
//	┌─────────────────────────────────────────┐
//	│ Reloader goroutine                      │
//	│  ├─> fsnotify event (debounced)         │
//	│  │   or mtime poll with backoff         │
//	│  ├─> content.Load()                     │
//	│  └─> state.Value.Set()                  │
//	│      └─> every UI model re-renders      │
//	└─────────────────────────────────────────┘
//
// # Error Handling
//
// Fatal errors (returned from Run and Serve):
//   - Invalid configuration or content file
//   - Log file that cannot be created
//   - SSH listener or host key failures
//
// Recoverable errors (logged):
//   - Unreadable or unwritable preferences (the theme stays in memory)
//   - Invalid content edits while reloading (previous content is kept)
//   - Watcher failures (falls back to polling)
//
// # Headless Output
//
// When stdout is not a terminal, Run prints the rendered page once and exits.
package app
