// Package model defines the core data structures used throughout EquityEngine.
//
// This package contains the following main types:
//   - PropertyInfo, PurchaseInfo, LoanInfo: The caller-supplied property snapshot
//   - AnalysisResults: The flat metric record computed by the analysis service
//   - Projections: Year-indexed parallel metric series for long-term outlooks
//   - Report: The read-only aggregate consumed by every renderer
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (section, render, export) need to use these
// types, so centralizing them prevents import cycles.
//
// The models are designed to be deserialized from the JSON response of the
// external analysis service. EquityEngine never computes a financial metric
// itself; every number here arrives pre-computed and is treated as opaque.
package model
