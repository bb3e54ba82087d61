package specflow_test

import (
	"fmt"

	specflow "github.com/x97mdr/SpecFlow"
	"github.com/x97mdr/SpecFlow/config"
	"github.com/x97mdr/SpecFlow/config/factory"
	"github.com/x97mdr/SpecFlow/config/parser"

	"go.uber.org/fx"
)

// TestRunner is a service that depends on the loaded configuration.
type TestRunner struct {
	Config   *config.Root
	Registry *factory.Registry
}

// Describe summarizes the runner settings.
func (r *TestRunner) Describe() string {
	return fmt.Sprintf("%s (%s), stop at first error: %t",
		r.Config.UnitTestProvider().Name(),
		r.Config.Language().Feature(),
		r.Config.Runtime().StopAtFirstError())
}

// Example_appWithConfigIntegration demonstrates how to use App, Options and
// the loaded configuration together.
func Example_appWithConfigIntegration() {
	// Step 1: A module that depends on the configuration provided by the App.
	runnerModule := fx.Module("runner",
		fx.Provide(func(cfg *config.Root, registry *factory.Registry) *TestRunner {
			return &TestRunner{Config: cfg, Registry: registry}
		}),
	)

	var runner *TestRunner

	invokeModule := fx.Module("invoke",
		fx.Invoke(func(r *TestRunner) {
			runner = r
		}),
	)

	// Step 2: Create and start the App with the configuration document and modules.
	app := specflow.NewApp(
		specflow.WithLogLevel("error"),
		specflow.WithConfigText(parser.FormatYAML, `
language:
  feature: de-AT
unitTestProvider:
  name: xUnit
runtime:
  stopAtFirstError: true
`),
		specflow.WithModules(runnerModule, invokeModule),
	)

	err := app.Start()
	if err != nil {
		fmt.Printf("Error starting app: %v\n", err)

		return
	}

	defer func() { _ = app.Stop() }()

	// Step 3: The runner received the loaded configuration.
	fmt.Println(runner.Describe())
	// Output: xUnit (de-AT), stop at first error: true
}
