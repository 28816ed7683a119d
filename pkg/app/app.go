// Package app defines the contract the cmd/* binaries start processes through.
package app

// Runner is a process that blocks until it is told to stop or fails.
type Runner interface {
	Run() error
}
