// Package apicommon provides common types, constants, and helper functions for the API.
package apicommon

// MetadataKey is a type to define the key for the metadata stored in the
// context.
type MetadataKey string

// ClientMetadataKey is the key used to store the authenticated API client in
// the context.
const ClientMetadataKey MetadataKey = "client"
