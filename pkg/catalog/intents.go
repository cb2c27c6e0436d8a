package catalog

// RawIntents is the numeric intents value sent by the catalog.
type RawIntents int

const (
	RawIntentsNone     RawIntents = 0
	RawIntentsMembers  RawIntents = 2
	RawIntentsPresence RawIntents = 256
)

// Intents is the gateway capability a function or callback needs from the
// host bot.
type Intents string

const (
	IntentsNone     Intents = "None"
	IntentsMembers  Intents = "Members"
	IntentsPresence Intents = "Presence"
)

// HumanizeIntents decodes a raw intents value.
//
// The value is matched exactly, not as a bitmask: combined flags such as
// 258 (Members|Presence) decode to IntentsNone, as does anything else that
// is not one of the two named encodings. The service has not been observed
// to send combinations.
func HumanizeIntents(raw RawIntents) Intents {
	switch raw {
	case RawIntentsPresence:
		return IntentsPresence
	case RawIntentsMembers:
		return IntentsMembers
	default:
		return IntentsNone
	}
}
