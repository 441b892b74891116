// Package extcontext provides the external-party context entities attached to
// a case: the vendor engaged to perform work and the HOA whose rules govern
// it. Each case holds at most one context of each kind; both are replaced
// wholesale on update (upsert semantics) and soft-deleted when detached.
package extcontext
