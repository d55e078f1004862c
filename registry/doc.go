// Package registry holds the named schemas of a service. A Registry is built
// once at startup, usually from YAML descriptor files, and handed to the
// components that need it; there is no package-level state.
//
// A descriptor is a YAML (or JSON) mapping from field name to rule. Key order
// is the field order:
//
//	title:
//	  type: string
//	  required: true
//	  max: 200
//	  sanitize:
//	    maxLength: 200
//	priority:
//	  type: enum
//	  enum: [low, medium, high]
package registry
