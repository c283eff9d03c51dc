// Package config holds the options shared between the public API and
// the internal launch and run implementations.
package config
