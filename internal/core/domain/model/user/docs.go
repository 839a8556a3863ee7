// Package user models the accounts that act on the ordering domain and the
// explicit role sets that gate them.
//
// Roles are a closed enumeration (customer, delivery-crew, manager) held as a
// RoleSet bitmask. Authorization never compares role names ad hoc; it asks a
// RoleSet whether it intersects the roles an operation requires.
package user
