// Package sync orchestrates a reading sync: fetch the upstream payload,
// archive it, reconcile it into reading days and replace the saved record.
//
// Failures are terminal and surface as errors (ErrCredential, a wrapped
// *kindle.FetchError or a storage error). Reconciliation problems are warnings
// carried in the Result and never fail the run.
package sync
