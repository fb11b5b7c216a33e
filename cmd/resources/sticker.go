package main

import (
	"fmt"

	"github.com/WelcomerTeam/Discord-Resources/discord"
	"github.com/spf13/cobra"
)

func newStickerCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sticker",
		Short: "Inspect and manage stickers",
	}

	cmd.AddCommand(
		newStickerURLCommand(a),
		newStickerGetCommand(a),
		newStickerEditCommand(a),
		newStickerDeleteCommand(a),
		newStickerPackCommand(a),
	)

	return cmd
}

func parseStickerID(value string) (discord.StickerID, error) {
	id, err := discord.ParseSnowflake(value)
	if err != nil {
		return 0, fmt.Errorf("invalid sticker id %q: %w", value, err)
	}

	return discord.StickerID(id), nil
}

func newStickerURLCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "url ID FORMAT",
		Short:   "Print the asset url of a sticker",
		Args:    cobra.ExactArgs(2),
		Example: `  resources sticker url 749054660769218631 gif`,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseStickerID(args[0])
			if err != nil {
				return err
			}

			format, err := discord.ParseStickerFormatType(args[1])
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), a.hosts().StickerURL(id, format))

			return err
		},
	}
}

func (a *app) stickerClient() (*discord.RESTStickerClient, error) {
	session, err := a.session()
	if err != nil {
		return nil, err
	}

	return discord.NewRESTStickerClient(session), nil
}

// fetchSticker loads a sticker so lifecycle operations can check its guild.
func (a *app) fetchSticker(cmd *cobra.Command, value string) (*discord.RESTStickerClient, *discord.Sticker, error) {
	id, err := parseStickerID(value)
	if err != nil {
		return nil, nil, err
	}

	client, err := a.stickerClient()
	if err != nil {
		return nil, nil, err
	}

	payload, err := client.GetSticker(cmd.Context(), id)
	if err != nil {
		return nil, nil, err
	}

	return client, discord.NewSticker(payload), nil
}

func newStickerGetCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Fetch a sticker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, sticker, err := a.fetchSticker(cmd, args[0])
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), a.output, sticker.Payload())
		},
	}
}

func newStickerEditCommand(a *app) *cobra.Command {
	var name, description, tags, reason string

	cmd := &cobra.Command{
		Use:     "edit ID",
		Short:   "Modify a guild sticker",
		Args:    cobra.ExactArgs(1),
		Example: `  resources sticker edit 749054660769218631 --name wave --reason "rename"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, sticker, err := a.fetchSticker(cmd, args[0])
			if err != nil {
				return err
			}

			params := discord.StickerParams{Reason: reason}

			if cmd.Flags().Changed("name") {
				params.Name = &name
			}

			if cmd.Flags().Changed("description") {
				params.Description = &description
			}

			if cmd.Flags().Changed("tags") {
				params.Tags = &tags
			}

			sticker, err = sticker.Edit(cmd.Context(), client, params)
			if err != nil {
				return err
			}

			a.logger.Info("Edited sticker", "id", sticker.ID, "name", sticker.Name)

			return render(cmd.OutOrStdout(), a.output, sticker.Payload())
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New sticker name")
	cmd.Flags().StringVar(&description, "description", "", "New sticker description")
	cmd.Flags().StringVar(&tags, "tags", "", "New autocomplete tags")
	cmd.Flags().StringVar(&reason, "reason", "", "Audit log reason")

	return cmd
}

func newStickerDeleteCommand(a *app) *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a guild sticker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, sticker, err := a.fetchSticker(cmd, args[0])
			if err != nil {
				return err
			}

			deleted, err := sticker.Delete(cmd.Context(), client, reason)
			if err != nil {
				return err
			}

			a.logger.Info("Deleted sticker", "id", sticker.ID)

			return render(cmd.OutOrStdout(), a.output, map[string]any{
				"id":      sticker.ID,
				"deleted": deleted,
			})
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "Audit log reason")

	return cmd
}

type stickerPackSummary struct {
	ID       discord.StickerPackID `json:"id"`
	Name     string                `json:"name"`
	Banner   *string               `json:"banner_url,omitempty"`
	Stickers []string              `json:"stickers"`
}

func newStickerPackCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pack ID",
		Short: "Fetch a sticker pack and list sticker urls",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := discord.ParseSnowflake(args[0])
			if err != nil {
				return fmt.Errorf("invalid sticker pack id %q: %w", args[0], err)
			}

			client, err := a.stickerClient()
			if err != nil {
				return err
			}

			pack, err := client.GetStickerPack(cmd.Context(), discord.StickerPackID(id))
			if err != nil {
				return err
			}

			hosts := a.hosts()

			summary := stickerPackSummary{
				ID:       pack.ID,
				Name:     pack.Name,
				Stickers: make([]string, 0, len(pack.Stickers)),
			}

			if bannerAssetID, ok := pack.BannerAssetID.Get(); ok {
				banner := hosts.StickerPackBannerURL(bannerAssetID)
				summary.Banner = &banner
			}

			for _, sticker := range pack.Stickers {
				summary.Stickers = append(summary.Stickers, hosts.StickerURL(sticker.ID, sticker.FormatType))
			}

			return render(cmd.OutOrStdout(), a.output, summary)
		},
	}
}
