// Package errors provides structured error handling for the tooltip API.
//
// It provides:
//   - Structured errors with codes, messages, and metadata
//   - HTTP status mapping for the JSON API layer
//   - Error context preservation through wrapping
//   - Validation error helpers
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("unit not found")
//	err := errors.InvalidArgumentf("invalid star level: %d", star)
//
// Adding metadata:
//
//	err := errors.NotFound("unit not found").
//	    WithMeta("unit_id", unitID)
//
// Wrapping errors:
//
//	if err := repo.GetUnit(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to get unit")
//	}
//
// # Error Checking
//
// Type checking:
//
//	if errors.IsNotFound(err) {
//	    // Handle not found case
//	}
//
// Extracting information:
//
//	code := errors.GetCode(err)
//	message := errors.GetMessage(err)
//	meta := errors.GetMeta(err)
//
// # Validation Errors
//
// Using the validation builder:
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Engine == nil {
//	    vb.RequiredField("Engine")
//	}
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer-Specific Guidelines
//
// Repository layer:
//   - Return domain-specific errors (NotFound for unknown IDs and cache misses)
//   - Include relevant IDs in metadata
//   - Wrap redis/decode errors with context
//
// Orchestrator layer:
//   - Validate inputs and return InvalidArgument errors
//   - Wrap repository errors with business context
//   - Note that the tooltip engine itself never fails on bad game data;
//     it degrades, so engine errors here always mean misconfiguration
//
// Handler layer:
//   - Convert errors to HTTP status via Code.HTTPStatus
//   - Extract user-friendly messages with GetMessage
//   - Log internal errors for debugging
package errors
