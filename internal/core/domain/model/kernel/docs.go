// Package kernel provides the shared value objects of the coffee shop domain.
//
// The package includes:
//   - UUID: identifiers for batches and generated order requests
//   - Money: non-negative fixed-point amounts for prices and revenue
//
// Both are immutable and safe for concurrent use.
package kernel
