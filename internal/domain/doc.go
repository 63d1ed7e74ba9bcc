// Package domain contains the core domain model for the parking report tool.
//
// The domain is transport- and persistence-agnostic: it does not depend on
// net/http, the filesystem, or any rendering engine. Infra/adapters map
// into/from these types.
package domain
