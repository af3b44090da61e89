// Package services provides domain services that drive tickets across the shop.
//
// The package includes:
//   - Barista: works one ticket through brewing and the register
//   - RandomBrewTimer: an interruptible randomized brew delay
//
// A Barista never holds the register lock while brewing; the only critical
// section is shop.Shop.Settle.
package services
