// Package smoketests contains the smoke-test cases for the deployed backend
// API themselves.
//
// Harness infrastructure that is not specific to this backend, such as the
// executor, ledger, and exit-code policy, is in the lower-level harness
// package. This package is essentially a data file: each case is one literal
// request and the status code the backend must answer with.
package smoketests
