// Package platform isolates the filesystem behavior that differs between
// operating systems. Permission bits are only meaningful on POSIX systems;
// on Windows reading them reports no mode and applying them is a no-op.
package platform
