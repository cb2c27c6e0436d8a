package catalog

import (
	"bytes"
	"encoding/json"
	"slices"
)

// EnumKind identifies which named enumeration an argument's enumData holds.
type EnumKind string

const (
	EnumAddButton             EnumKind = "AddButton"
	EnumModal                 EnumKind = "Modal"
	EnumCategory              EnumKind = "Category"
	EnumChannel               EnumKind = "Channel"
	EnumEditButton            EnumKind = "EditButton"
	EnumError                 EnumKind = "Error"
	EnumCooldown              EnumKind = "Cooldown"
	EnumEmbedData             EnumKind = "EmbedData"
	EnumInviteInfo            EnumKind = "InviteInfo"
	EnumLeaderboardType       EnumKind = "LeaderboardType"
	EnumSort                  EnumKind = "Sort"
	EnumLeaderboardReturnType EnumKind = "LeaderboardReturnType"
	EnumMessageData           EnumKind = "MessageData"
	EnumTimestamp             EnumKind = "Timestamp"
	EnumMembersCount          EnumKind = "MembersCount"
	EnumURL                   EnumKind = "Url"
	EnumVariablesCount        EnumKind = "VariablesCount"

	// EnumUnknown marks enumData the client does not recognize. The raw JSON
	// is kept so nothing the server sends is lost.
	EnumUnknown EnumKind = "Unknown"
)

var buttonStyles = []string{"primary", "secondary", "success", "danger", "link"}

// knownEnums is ordered; classification picks the first kind whose label
// set matches, so AddButton wins over EditButton for button styles.
var knownEnums = []struct {
	kind   EnumKind
	labels []string
}{
	{EnumAddButton, buttonStyles},
	{EnumModal, []string{"short", "paragraph"}},
	{EnumCategory, []string{"count", "name", "id", "mention"}},
	{EnumChannel, []string{"text", "voice", "category", "stage", "forum"}},
	{EnumEditButton, buttonStyles},
	{EnumError, []string{"row", "column", "command", "source", "message"}},
	{EnumCooldown, []string{"normal", "global", "server"}},
	{EnumEmbedData, []string{"description", "footer", "color", "image", "timestamp", "title"}},
	{EnumInviteInfo, []string{"uses", "channel", "creationDate", "inviter", "isTemporary"}},
	{EnumLeaderboardType, []string{"user", "server", "globalUser"}},
	{EnumSort, []string{"desc", "asc"}},
	{EnumLeaderboardReturnType, []string{"id", "value"}},
	{EnumMessageData, []string{"content", "authorID", "username", "avatar"}},
	{EnumTimestamp, []string{"ns", "ms", "s"}},
	{EnumMembersCount, []string{"invisible", "dnd", "online", "offline", "idle"}},
	{EnumURL, []string{"decode", "encode"}},
	{EnumVariablesCount, []string{"channel", "user", "server", "globaluser"}},
}

// EnumLabels returns the fixed labels of a known enumeration, or nil.
func EnumLabels(kind EnumKind) []string {
	for _, e := range knownEnums {
		if e.kind == kind {
			return slices.Clone(e.labels)
		}
	}
	return nil
}

// EnumData is the enumeration attached to a function argument.
type EnumData struct {
	Kind   EnumKind
	Labels []string
	// Raw is the value exactly as the server sent it.
	Raw json.RawMessage
}

// ParseEnumData classifies raw enumData. It returns nil for absent or null
// values. A JSON array of strings whose members equal a known label set
// (order-insensitive) yields that kind; anything else is EnumUnknown.
func ParseEnumData(raw json.RawMessage) *EnumData {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	data := &EnumData{
		Kind: EnumUnknown,
		Raw:  slices.Clone(trimmed),
	}

	var labels []string
	if err := json.Unmarshal(trimmed, &labels); err != nil {
		return data
	}
	data.Labels = labels

	for _, e := range knownEnums {
		if sameLabels(e.labels, labels) {
			data.Kind = e.kind
			break
		}
	}
	return data
}

// MarshalJSON writes the original server value back out.
func (e EnumData) MarshalJSON() ([]byte, error) {
	if len(e.Raw) > 0 {
		return e.Raw, nil
	}
	if e.Labels == nil {
		return []byte("null"), nil
	}
	return json.Marshal(e.Labels)
}

// UnmarshalJSON classifies the value with ParseEnumData.
func (e *EnumData) UnmarshalJSON(data []byte) error {
	parsed := ParseEnumData(data)
	if parsed == nil {
		*e = EnumData{}
		return nil
	}
	*e = *parsed
	return nil
}

func sameLabels(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	x := slices.Clone(a)
	y := slices.Clone(b)
	slices.Sort(x)
	slices.Sort(y)
	return slices.Equal(x, y)
}
