// Package service provides the provider registry for NumServe.
//
// The registry maintains a catalog of service providers and routes tool
// execution to them by dotted tool ID (the prefix before the first dot is
// the service ID).
//
// Components:
//   - Registry: Central service catalog
//   - Provider: Interface for service implementations
//
// Features:
//   - Thread-safe service registration
//   - Category-based filtering
//   - Tool execution with context passing
//   - Service statistics
//
// Example Usage:
//
//	registry := service.NewRegistry()
//	registry.Register(mathProvider)
//	result, err := registry.Execute(ctx, "math.avg", params, appCtx)
package service
