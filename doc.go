// Package wallet implements a personal transaction ledger over a durable
// flat store: appending income and expense entries, listing and searching
// them, computing balances, and applying validated sparse edits.
//
// The store holds entries for several principals, but every read and write
// is filtered by the owner carried in the Session; one principal can never
// see another's entries. The whole collection is read and rewritten on
// every mutation, which bounds the design to personal-scale datasets and a
// single process.
package wallet
