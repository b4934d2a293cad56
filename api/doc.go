// Package api holds the small set of contracts shared across the
// rendezvous module (structured errors) that do not belong to any single
// concurrency primitive.
//
// Author: momentics <momentics@gmail.com>
package api
