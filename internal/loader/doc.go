// Package loader performs the one-shot fetch of survivor records.
//
// A Loader is owned by a single view. Its lifecycle is:
//   - Begin: status becomes Loading (only the first call has any effect)
//   - Fetch: network I/O, safe to run off the UI goroutine; it never touches Loader state
//   - Settle: status returns to Idle; records are replaced only on success
//
// Load composes the three steps for synchronous callers. There is no retry and no
// caching; cancellation is through the context passed to Fetch.
package loader
