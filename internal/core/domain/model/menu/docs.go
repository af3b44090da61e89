// Package menu models what the shop sells.
//
// Items carry a closed Kind (Coffee, Pastry or Smoothie) instead of a type hierarchy, and
// Menu offers the filtering, ordering and aggregate views used when building
// rush batches and reports.
package menu
