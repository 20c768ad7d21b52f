// Package ndn holds the value types the mock face engine operates on:
// hierarchical Names, Interests (outbound requests), Data (responses), and
// prefix-registration ForwardingFlags.
//
// All types are immutable values. A Name handed to a registered handler is
// safe to hold but must not be rebuilt in place; mutation always returns a
// new value (Append, WithLifetime, ...).
//
// Name components are NFC-normalized at construction so that two names that
// render identically always compare equal, regardless of how their Unicode
// was composed by the caller.
package ndn
