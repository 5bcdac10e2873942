// Package cache provides an flock-based lock for files in the supgit
// cache directory.
//
// The update check runs at the start of every invocation, so two shells
// can race to record the check timestamp. [FileLock] serializes those
// writers; readers do not lock because the timestamp file is replaced
// atomically.
package cache
