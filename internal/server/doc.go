// Package server runs the application's HTTP transport and background
// workers as one lifecycle: startup, signal handling, and graceful
// shutdown.
package server
