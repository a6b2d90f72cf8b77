// Package platform provides cross-platform permission handling for the
// files under ~/.supamcp/. On Unix systems permission bits are applied
// directly; on Windows they are a no-op because the OS does not support
// Unix-style modes.
package platform
