package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"kilometers.ai/featuremodel/internal/core/feature"
)

// NewArtifactCommand creates the artifact command
func NewArtifactCommand(container *CLIContainer) *cobra.Command {
	var sortIDs, distinct bool

	artifactCmd := &cobra.Command{
		Use:   "artifact <group:artifact:version[:type[:classifier]]>...",
		Short: "Parse artifact coordinates",
		Long: `Parse one or more artifact coordinates and print them in
canonical form with their hash.

--distinct drops repeated coordinates, keeping the first occurrence.
--sort orders coordinates by group, artifact, version, type and
classifier, comparing versions semantically when both parse.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			artifacts, err := parseArtifacts(args)
			if err != nil {
				return err
			}
			if distinct {
				artifacts = feature.DistinctArtifacts(artifacts)
			}
			if sortIDs {
				artifacts = feature.SortArtifacts(artifacts)
			}
			container.Logger.Printf("Parsed %d artifacts", len(artifacts))

			r := newRenderer(cmd, container)
			r.Heading("Artifacts")
			for _, a := range artifacts {
				r.Item(fmt.Sprintf("%s %s", a.ID(), formatHash(a.Hash())))
			}
			return nil
		},
	}

	artifactCmd.Flags().BoolVar(&sortIDs, "sort", false, "Sort coordinates")
	artifactCmd.Flags().BoolVar(&distinct, "distinct", false, "Drop repeated coordinates")

	return artifactCmd
}

func parseArtifacts(coordinates []string) ([]feature.Artifact, error) {
	artifacts := make([]feature.Artifact, 0, len(coordinates))
	for _, coordinate := range coordinates {
		id, err := feature.ParseArtifactID(coordinate)
		if err != nil {
			return nil, fmt.Errorf("invalid artifact %q: %w", coordinate, err)
		}
		artifacts = append(artifacts, feature.NewArtifact(id))
	}
	return artifacts, nil
}
