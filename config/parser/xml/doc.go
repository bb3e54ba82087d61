// Package xml provides an XML parser implementation for the config package.
//
// The document root element is the configuration section; its children are
// the section elements:
//
//	<specFlow>
//	  <language feature="de-AT"/>
//	  <runtime stopAtFirstError="true"/>
//	</specFlow>
//
// When the section is embedded in a larger file, such as an application
// configuration file, WithPath selects it by a colon separated list of child
// element names below the document root:
//
//	parser := xml.NewParser(xml.WithPath("specFlow"))
//
// Every element is stamped with its line and column so that validation
// errors can point at the offending element.
package xml
