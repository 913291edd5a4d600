// Package application wires the tile shop service together. It loads the
// product catalog, builds the calculator, quote handlers and router, and
// owns the HTTP server so the main package only deals with CLI parsing and
// shutdown.
package application
