package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/zkvtools/internal/domain/commands"
	"github.com/rios0rios0/zkvtools/internal/domain/entities"
)

// ComposeController handles the "compose" subcommand.
type ComposeController struct {
	command commands.Compose
	search  entities.ConfigSearch
}

// NewComposeController creates a new ComposeController.
func NewComposeController(command commands.Compose, search entities.ConfigSearch) *ComposeController {
	return &ComposeController{command: command, search: search}
}

// GetBind returns the Cobra command metadata for the compose controller.
func (it *ComposeController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "compose [project_root]",
		Short: "Generate a relay and parachain test network for Docker Compose",
		Long: `Create compose.yaml, the per-node environment files, the chain spec
resources and the node secrets of a two-validator, two-collator network
below the project root (default: current directory).`,
		Args: cobra.MaximumNArgs(1),
	}
}

// Execute generates the project.
func (it *ComposeController) Execute(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd, it.search)
	if err != nil {
		return err
	}

	opts := commands.ComposeOptions{}
	if len(args) > 0 {
		opts.ProjectRoot = args[0]
	}
	opts.RelayImage, _ = cmd.Flags().GetString("relay")
	opts.ParaImage, _ = cmd.Flags().GetString("para")
	opts.ChainSpec, _ = cmd.Flags().GetString("chain-spec")
	opts.ParaChainSpec, _ = cmd.Flags().GetString("para-chain-spec")
	validator1, _ := cmd.Flags().GetString("validator1-key")
	validator2, _ := cmd.Flags().GetString("validator2-key")
	opts.SecretPhrases = map[string]string{
		"validator_1": validator1,
		"validator_2": validator2,
	}

	_, err = it.command.Execute(settings, opts)
	return err
}

// AddFlags adds the compose-specific flags to the given Cobra command.
func (it *ComposeController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("relay", "r", "", "The relay chain docker image (default: "+entities.DefaultRelayImage+")")
	cmd.Flags().StringP("para", "p", "", "The parachain docker image (default: "+entities.DefaultParaImage+")")
	cmd.Flags().StringP("chain-spec", "c", "", "The relay chain spec file path (default: "+entities.DefaultChainSpec+")")
	cmd.Flags().StringP("para-chain-spec", "C", "",
		"The parachain spec file path (default: "+entities.DefaultParaChainSpec+")")
	cmd.Flags().String("validator1-key", entities.DefaultValidator1Key, "Validator1 secret phrase")
	cmd.Flags().String("validator2-key", entities.DefaultValidator2Key, "Validator2 secret phrase")
}
