// Package party contains the core planning domain: selectable items,
// per-category item collections, parties, and the session registry.
// All other packages depend on party; party depends on nothing.
package party
