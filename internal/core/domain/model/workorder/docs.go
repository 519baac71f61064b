// Package workorder provides the domain model for maintenance work orders on
// rail vehicles. It implements the WorkOrder aggregate root and the Status
// state machine governing the order lifecycle.
//
// The package includes:
//   - WorkOrder: the aggregate root owning identity, descriptive fields, and status
//   - Status: the lifecycle state machine (OPEN through INVOICED/CANCELLED)
//
// Key business rules:
//   - Order number, title, and customer are required at creation
//   - New orders always start in OPEN status
//   - Any non-terminal status may transition to any status, including itself
//   - INVOICED and CANCELLED are terminal: no transition may originate from them
//   - Status changes are validated locally but committed only after the
//     backing store confirms the remote update
package workorder
