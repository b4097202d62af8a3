// Package testutil provides helpers for notifyrules tests: isolated XDG
// environments and small file fixtures.
package testutil
