// Package migrations contains all schema migrations. Each file registers
// its migrations from init(); cmd/shopadmin imports this package for the
// side effect.
package migrations
