// Package report accumulates per-step results for the check and demo
// commands and writes them out as timestamped JSON artifacts.
package report
