// Package pds provides persistent (purely functional) container data
// structures: a cons-list, a UTF-8 string, a generic vector, an ordered
// map and set, and the polymorphic value carrier that ties them together.
//
// Every mutating-looking method returns a new container value that shares
// maximal structure with its receiver; the receiver is left observably
// unchanged. There is no container in this package that can be mutated in
// place, and no operation here performs cross-goroutine synchronization —
// see [Published] for how to hand a freshly built container to another
// goroutine safely.
//
// String and Vector are both backed by a 2-3 finger-tree spine
// (internal/finger); Map and Set are both backed by a 2-3-4 ordered tree
// (internal/tree234). List is an independent singly-linked structure.
//
// All faults are fatal: preconditions (popping an empty List, indexing out
// of range, unwrapping a Union with the wrong Tag) panic rather than
// returning an error, matching the contract that every operation here is a
// total, pure function of its inputs or it does not return at all. See
// [PreconditionError], [MalformedInputError] and [InvariantError].
package pds
