// Package domain contains the core domain model for Vilain.
//
// The domain is transport- and persistence-agnostic: it does not depend on YAML parsing,
// JSON payloads, or the filesystem. Infra/adapters map into/from these types.
package domain
