// Package shop holds the single shared resource of a run: the register with its
// remaining stock and accumulated revenue.
package shop
