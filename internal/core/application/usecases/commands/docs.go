// Package commands contains the operations of the shipment confirmation
// workflow that cause side effects: sending customer email and advancing
// order state in the order-management system.
//
// Commands follow one pattern: a command value built through its constructor
// and checked with Validate, and a handler that receives its collaborators
// through ports.
package commands
