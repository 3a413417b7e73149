// Package reclaim decides which environments to delete and deletes them.
//
// The flow is: list the manager once, filter and sort the names
// ([envmgr.FilterNames]), resolve the target set for the requested [Mode], and
// hand the targets to [DeleteAll]. Deletion is best-effort: each name is
// attempted in ascending order, a failure is recorded and the batch moves on.
// Nothing is rolled back.
package reclaim
