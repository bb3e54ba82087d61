// Package document defines the parsed form of a configuration document.
//
// A document is a tree of named elements carrying string attributes, the shape
// an XML configuration section has. Parsers for other formats (YAML, TOML)
// produce the same tree so that the loader behaves identically whichever
// source form was used:
//
//	<config>
//	  <runtime stopAtFirstError="true"/>
//	</config>
//
// and
//
//	runtime:
//	  stopAtFirstError: true
//
// both yield a root node with one "runtime" child holding the attribute
// stopAtFirstError="true".
package document
