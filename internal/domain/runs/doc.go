// Package runs defines the domain model for recorded challenge runs, along
// with the contracts for persisting and retrieving them.
package runs
