// Package authorization decides which actions a role may perform.
//
// Layering:
// - domain: roles, actions, the static policy table
// - application: permission checks resolved against an actor and a subject
// - adapters: HTTP handler and system clock
//
// Boundary notes:
// - Roles arrive as plain strings from identity-service; unknown roles are denied.
// - Do not import other context adapters into domain/application.
package authorization
