package discord

// emoji.go contains the partial emoji shapes used by components and forums.

// PartialEmoji references a custom or unicode emoji.
type PartialEmoji struct {
	ID       *EmojiID `json:"id,omitempty"`
	Name     *string  `json:"name,omitempty"`
	Animated *bool    `json:"animated,omitempty"`
}

func (e *PartialEmoji) clone() *PartialEmoji {
	if e == nil {
		return nil
	}

	return &PartialEmoji{
		ID:       clonePtr(e.ID),
		Name:     clonePtr(e.Name),
		Animated: clonePtr(e.Animated),
	}
}
