// Package memory provides a small generic object pool used to recycle
// hot-path allocations. The epoch-based reclamation and retire-ring
// machinery the teacher built around it assumed a lock-free concurrent
// reader; the matching engine's single-mutex model has no such reader, so
// that machinery was dropped (see the repository's design ledger) and this
// package now carries only the plain pool.
package memory
