// Package govscrape assembles a synthetic training dataset from GOV.UK
// content. It fetches pages from the rate-limited Content API, normalizes
// the heterogeneous document shapes into a single record with markdown
// content, and derives degraded-quality rewrites and snippet pairs for
// language-model training.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., govuk/, htmltomarkdown/, gemini/).
package govscrape
