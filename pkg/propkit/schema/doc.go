/*
Package schema holds the declaration catalog consulted by the resolver.

# Overview

A Definition declares a property key's shape: whether the property is
multi-valued (its string value encodes an ordered, comma-separated list of
fields) and whether it has a default value. Definitions builds an immutable
catalog of declarations with exact-match, case-sensitive lookup.

A key absent from the catalog is a valid, undeclared property: it resolves
normally (without a default) and never triggers mismatch warnings.

# Basic Usage

	dflt := "4"
	defs, err := schema.New([]schema.Definition{
	    {Key: "scanner.workers", DefaultValue: &dflt},
	    {Key: "scanner.exclusions", MultiValues: true},
	})
	if err != nil {
	    log.Fatal(err)
	}

	def, declared := defs.Lookup("scanner.exclusions")

# File Loading

Catalogs can be loaded from YAML or JSON declaration files:

	defs, err := schema.FromFile("properties.yaml")

with files shaped as:

	properties:
	  - key: scanner.workers
	    default: "4"
	  - key: scanner.exclusions
	    multi_values: true

# Thread Safety

Definitions is read-only after construction and safe for concurrent lookups.
*/
package schema
