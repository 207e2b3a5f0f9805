package di

import (
	"fmt"
	"io"
	"log"
	"os"

	"kilometers.ai/featuremodel/internal/infrastructure/config"
	"kilometers.ai/featuremodel/internal/interfaces/cli"
)

// Container holds all application dependencies
type Container struct {
	// Configuration
	Config    config.Config
	EnvLoader *config.EnvLoader

	// CLI
	CLIContainer *cli.CLIContainer

	// Logger
	Logger *log.Logger

	logOutput io.Writer
}

// NewContainer creates and configures the dependency injection container
func NewContainer() (*Container, error) {
	return NewContainerWith(config.NewEnvLoader(), os.Stderr)
}

// NewContainerWith builds a container from an explicit environment loader and
// debug log destination.
func NewContainerWith(env *config.EnvLoader, logOutput io.Writer) (*Container, error) {
	container := &Container{
		EnvLoader: env,
		Logger:    log.New(io.Discard, "[fm] ", log.LstdFlags),
		logOutput: logOutput,
	}

	if err := container.initializeComponents(); err != nil {
		return nil, fmt.Errorf("failed to initialize components: %w", err)
	}

	return container, nil
}

// initializeComponents initializes all components with proper dependencies
func (c *Container) initializeComponents() error {
	cfg, err := config.Load(c.EnvLoader)
	if err != nil {
		return err
	}
	c.Config = cfg
	c.applyLogOutput()

	c.CLIContainer = &cli.CLIContainer{
		Config:        &c.Config,
		Logger:        c.Logger,
		MainContainer: c,
	}

	c.Logger.Printf("Container initialized (output=%s)", c.Config.Output)
	return nil
}

// GetCLIContainer returns the CLI container for command execution
func (c *Container) GetCLIContainer() *cli.CLIContainer {
	return c.CLIContainer
}

// ApplyDebugOverride switches debug logging on or off
func (c *Container) ApplyDebugOverride(debug bool) {
	c.Config.Debug = debug
	c.applyLogOutput()
	c.Logger.Printf("Debug override applied: %t", debug)
}

// ApplyOutputOverride replaces the output mode after validating it
func (c *Container) ApplyOutputOverride(output string) error {
	if err := config.NewConfigValidator().ValidateOutput(output); err != nil {
		return err
	}
	c.Config.Output = output
	c.Logger.Printf("Output override applied: %s", output)
	return nil
}

func (c *Container) applyLogOutput() {
	if c.Config.Debug && c.logOutput != nil {
		c.Logger.SetOutput(c.logOutput)
		return
	}
	c.Logger.SetOutput(io.Discard)
}
