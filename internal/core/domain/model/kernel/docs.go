// Package kernel contains the shared value objects of the insurance domain:
// identifiers, money, the national ID, and the personal/contact/address data
// owned by policyholder aggregates.
//
// All types in this package are immutable value objects. They are created
// through constructor functions that validate their input, compare by value,
// and expose read-only accessors. The zero value of every type is invalid and
// is detectable through Validate, backed by guard.ConstructorGuard.
//
// Value objects are always replaced wholesale. There is no field-level
// mutation anywhere in this package.
package kernel
