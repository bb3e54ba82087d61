// Package specflow wires the SpecFlow configuration into an Fx application.
//
// NewApp loads the configuration document selected by the options, applies
// defaults, validates it and makes the resulting *config.Root available for
// injection together with the provider registry used to instantiate the
// generator provider, runtime provider and trace listener it names.
package specflow
