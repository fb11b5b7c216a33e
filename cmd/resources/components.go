package main

import (
	"errors"

	"github.com/WelcomerTeam/Discord-Resources/discord"
	"github.com/spf13/cobra"
)

type componentSummary struct {
	Type       string             `json:"type"`
	Components []componentSummary `json:"components,omitempty"`
}

// summarizeComponents walks a tree through its serialized form.
func summarizeComponents(payloads []discord.ComponentPayload) []componentSummary {
	summaries := make([]componentSummary, 0, len(payloads))

	for i := range payloads {
		payload := &payloads[i]

		summary := componentSummary{Type: payload.Type.String()}

		var children []discord.ComponentPayload
		if payload.Components != nil {
			children = append(children, *payload.Components...)
		}

		if payload.Accessory != nil {
			children = append(children, *payload.Accessory)
		}

		if payload.Component != nil {
			children = append(children, *payload.Component)
		}

		if len(children) > 0 {
			summary.Components = summarizeComponents(children)
		}

		summaries = append(summaries, summary)
	}

	return summaries
}

func newComponentsCommand(a *app) *cobra.Command {
	var (
		modal     bool
		v2        bool
		roundTrip bool
	)

	cmd := &cobra.Command{
		Use:   "components FILE",
		Short: "Validate a component array and print its tree",
		Args:  cobra.ExactArgs(1),
		Example: `  resources components message.json
  resources components layout.json --v2
  resources components modal.json --modal
  resources components message.json --roundtrip`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			context := discord.ComponentContextMessage

			switch {
			case modal && v2:
				return errors.New("--modal and --v2 cannot be combined")
			case modal:
				context = discord.ComponentContextModal
			case v2:
				context = discord.ComponentContextMessageV2
			}

			components, err := discord.UnmarshalComponents(data, context)
			if err != nil {
				return err
			}

			a.logger.Debug("Resolved components", "context", context, "count", len(components))

			payloads := discord.SerializeComponents(components)

			if roundTrip {
				return render(cmd.OutOrStdout(), a.output, payloads)
			}

			return render(cmd.OutOrStdout(), a.output, summarizeComponents(payloads))
		},
	}

	cmd.Flags().BoolVar(&modal, "modal", false,
		"Validate the components as the body of a modal")
	cmd.Flags().BoolVar(&v2, "v2", false,
		"Validate the components as a message flagged with IS_COMPONENTS_V2")
	cmd.Flags().BoolVar(&roundTrip, "roundtrip", false,
		"Print the serialized components instead of a summary")

	return cmd
}
