package consts

import "github.com/Conte777/MediaGrab/internal/domain/media/entities"

// ChoicePrefix is shared by every choice identifier the bot issues
const ChoicePrefix = "yt_"

// Choice identifiers attached to the format keyboard
const (
	ChoiceVideo = ChoicePrefix + "video"
	ChoiceAudio = ChoicePrefix + "audio"
)

// FormatChoices are presented after a video platform link is submitted
var FormatChoices = []entities.Choice{
	{ID: ChoiceVideo, Label: "🎥 Download Video"},
	{ID: ChoiceAudio, Label: "🎧 Download Audio"},
}

// ModeForChoice maps a choice identifier to a download mode
func ModeForChoice(choiceID string) (entities.Mode, bool) {
	switch choiceID {
	case ChoiceVideo:
		return entities.ModeVideo, true
	case ChoiceAudio:
		return entities.ModeAudio, true
	default:
		return "", false
	}
}
