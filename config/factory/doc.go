// Package factory creates provider instances from the type references found
// in a configuration tree (unitTestProvider.generatorProvider,
// unitTestProvider.runtimeProvider, trace.listener).
//
// Types are not discovered at runtime. Each type reference is bound to a
// constructor in a Registry at startup, and Create builds a fresh instance
// for every call.
package factory
