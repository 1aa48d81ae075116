package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/panemux/internal/application/usecase"
	"github.com/bnema/panemux/internal/cli/styles"
	"github.com/bnema/panemux/internal/infrastructure/config"
)

var (
	configInitForce   bool
	configSchemaOut   bool
	configKeysSection string
	configKeysJSON    bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage panemux configuration",
	Long: `Inspect and create the panemux configuration file.

panemux runs on built-in defaults until a config.toml exists. Every key
can also be set through the environment with the PANEMUX_ prefix, for
example PANEMUX_LAYOUT_MIN_PANE_WIDTH=4.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Write config.schema.json for editor completion",
	Args:  cobra.NoArgs,
	RunE:  runConfigSchema,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("app not initialized")
		}
		fmt.Fprintln(cmd.OutOrStdout(), app.Manager.ConfigFile())
		return nil
	},
}

var configKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List every configuration key with its default",
	Long: `List configuration keys with type, default value and description.

Examples:
  panemux config keys                    # All keys
  panemux config keys --section layout   # One section
  panemux config keys --json             # Machine-readable`,
	Args: cobra.NoArgs,
	RunE: runConfigKeys,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configInitCmd, configSchemaCmd, configPathCmd, configKeysCmd)

	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing config file")
	configSchemaCmd.Flags().BoolVar(&configSchemaOut, "stdout", false, "print the schema instead of writing it")
	configKeysCmd.Flags().StringVarP(&configKeysSection, "section", "s", "", "only list keys of this section")
	configKeysCmd.Flags().BoolVar(&configKeysJSON, "json", false, "print keys as JSON")
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	data, err := config.EncodeTOML(app.Config)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprint(out, string(data))
	fmt.Fprint(out, styles.NewConfigRenderer(app.Theme).RenderPath(app.Manager.ConfigFile(), app.Manager.Exists()))
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewConfigRenderer(app.Theme)
	out := cmd.OutOrStdout()

	path, err := app.Manager.WriteDefault(configInitForce)
	if errors.Is(err, config.ErrConfigExists) {
		fmt.Fprint(out, renderer.RenderExists(app.Manager.ConfigFile()))
		return nil
	}
	if err != nil {
		fmt.Fprint(out, renderer.RenderError(err))
		return err
	}
	fmt.Fprint(out, renderer.RenderWritten("default config", path))
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	out := cmd.OutOrStdout()

	if configSchemaOut {
		data, err := config.GenerateSchema()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	path, err := app.Manager.WriteSchemaFile()
	if err != nil {
		return err
	}
	fmt.Fprint(out, styles.NewConfigRenderer(app.Theme).RenderWritten("JSON schema", path))
	return nil
}

func runConfigKeys(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	uc := usecase.NewGetConfigSchemaUseCase(config.NewSchemaProvider())
	result, err := uc.Execute(app.Ctx(), usecase.GetConfigSchemaInput{Section: configKeysSection})
	if err != nil {
		return err
	}

	renderer := styles.NewConfigSchemaRenderer(app.Theme)
	if configKeysJSON {
		s, err := renderer.RenderJSON(result.Keys)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), s)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(result.Keys))
	return nil
}
