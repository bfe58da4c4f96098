// Package types defines the declared property types (enums and classes),
// the registry that owns them, the export/import boundary that moves values
// between their in-memory and serialized forms, and the standard error
// values for the proptypes system.
// Implements: prd001-registry-core (Kind, PropertyType, Registry, errors);
//
//	docs/ARCHITECTURE § Core Types.
package types
