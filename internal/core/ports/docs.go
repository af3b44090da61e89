// Package ports declares the contracts between the application core and its adapters.
package ports
