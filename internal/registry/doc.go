// Package registry holds the built-in catalog of FHEVM example and category
// descriptors. The catalog is embedded YAML, validated against a JSON schema
// and parsed once on first access; lookups and listings never touch the
// filesystem or the network.
package registry