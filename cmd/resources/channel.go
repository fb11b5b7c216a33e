package main

import (
	"github.com/WelcomerTeam/Discord-Resources/discord"
	"github.com/spf13/cobra"
)

type channelSummary struct {
	ID       discord.ChannelID  `json:"id"`
	Type     string             `json:"type"`
	Traits   []string           `json:"traits"`
	GuildID  *discord.GuildID   `json:"guild_id,omitempty"`
	Name     *string            `json:"name,omitempty"`
	ParentID *discord.ChannelID `json:"parent_id,omitempty"`
	Topic    *string            `json:"topic,omitempty"`
	Tags     []string           `json:"available_tags,omitempty"`

	AppliedTags *discord.ForumTagIDList `json:"applied_tags,omitempty"`
}

func summarizeChannel(channel discord.Channel) channelSummary {
	base := channel.Base()

	summary := channelSummary{
		ID:     base.ID,
		Type:   base.Type.String(),
		Traits: discord.ChannelTraits(channel).Names(),
	}

	if guild, ok := channel.(discord.GuildScoped); ok {
		trait := guild.Guild()
		summary.GuildID = &trait.GuildID
		summary.Name = &trait.Name
		summary.ParentID = trait.ParentID.ToPointer()
	}

	if group, ok := channel.(discord.GroupDirectMessage); ok {
		summary.Name = &group.GroupDM().Name
	}

	if host, ok := channel.(discord.ThreadHost); ok {
		summary.Topic = host.ThreadHost().Topic.ToPointer()
	}

	if thread, ok := channel.(discord.ThreadBased); ok {
		tags := thread.Thread().AppliedTags.OrEmpty()
		summary.AppliedTags = &tags
	}

	if forum, ok := channel.(discord.ForumBased); ok {
		for _, tag := range forum.Forum().AvailableTags {
			summary.Tags = append(summary.Tags, tag.Name)
		}
	}

	return summary
}

func newChannelCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "channel FILE",
		Short: "Resolve a channel payload and print its kind and traits",
		Args:  cobra.ExactArgs(1),
		Example: `  resources channel channel.json
  cat channel.json | resources channel - --output yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			channel, err := discord.UnmarshalChannel(data)
			if err != nil {
				return err
			}

			a.logger.Debug("Resolved channel", "id", channel.Base().ID, "type", channel.Base().Type)

			return render(cmd.OutOrStdout(), a.output, summarizeChannel(channel))
		},
	}
}
