// Package common provides the shared base for the math provider modules.
//
// The math provider is organized into specialized modules:
//   - alignment: power-of-two alignment arithmetic (padding, aligned)
//   - intervals: boundary-typed interval membership tests
//   - statistics: numerically-stable mean/variance plus gonum summaries
//
// Each module embeds *MathOps and uses the helpers here for parameter
// extraction, input validation, and the consistent JSON result format.
package common
