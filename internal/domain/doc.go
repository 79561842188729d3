// Package domain contains the core entities of the credential service:
// users with hashed passwords and API keys bound to client identifiers.
// Entities validate themselves; persistence and transport concerns live
// in the store and api packages.
package domain
