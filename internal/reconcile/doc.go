// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package reconcile holds the config reconcilers of the per-user instances.
//
// A reconciler is a function from (document bytes, user facts) to a
// [models.ReconcileResult]. It parses the document into a typed view that
// mirrors only the settings it enforces, keeps everything else in
// passthrough buckets, applies the policy and re-serializes only when
// something changed. Reconcilers never touch the filesystem; reading,
// writing and restarting are the lifecycle manager's job.
//
// Reconcilers are idempotent: feeding a reconciled document back in yields
// Updated == false.
package reconcile
