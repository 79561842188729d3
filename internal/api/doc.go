// Package api contains the HTTP handlers of the credential service and
// the single place where internal errors are mapped to transport status
// codes. Handlers decode and validate requests, call the services, and
// shape responses; they hold no business logic of their own.
package api
