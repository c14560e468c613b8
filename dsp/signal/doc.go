// Package signal generates deterministic test and demo signals.
package signal
