package domain

import "strings"

// ChannelType is an advertising channel. OTHER carries a custom name.
type ChannelType string

const (
	ChannelFacebook  ChannelType = "FACEBOOK"
	ChannelGoogle    ChannelType = "GOOGLE"
	ChannelTikTok    ChannelType = "TIKTOK"
	ChannelLine      ChannelType = "LINE"
	ChannelInstagram ChannelType = "INSTAGRAM"
	ChannelX         ChannelType = "X"
	ChannelOther     ChannelType = "OTHER"
)

// ChannelTypes lists every channel type in display order.
var ChannelTypes = []ChannelType{
	ChannelFacebook, ChannelGoogle, ChannelTikTok, ChannelLine, ChannelInstagram, ChannelX, ChannelOther,
}

var channelLabels = map[ChannelType]string{
	ChannelFacebook:  "Facebook Ads",
	ChannelGoogle:    "Google Ads",
	ChannelTikTok:    "TikTok",
	ChannelLine:      "LINE Ads",
	ChannelInstagram: "Instagram",
	ChannelX:         "X",
}

// Valid reports whether t is a known channel type.
func (t ChannelType) Valid() bool {
	_, ok := channelLabels[t]
	return ok || t == ChannelOther
}

// Channel is one selected channel, kept in user order.
type Channel struct {
	Type       ChannelType
	CustomName string
}

// Label renders the channel for summaries.
func (c Channel) Label() string {
	if l, ok := channelLabels[c.Type]; ok {
		return l
	}
	return "OTHER: " + c.CustomName
}

// CleanChannels trims custom names, drops OTHER entries without a name and
// drops repeated entries (custom names compare case-insensitively).
func CleanChannels(in []Channel) []Channel {
	out := make([]Channel, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, c := range in {
		key := string(c.Type)
		if c.Type == ChannelOther {
			c.CustomName = strings.TrimSpace(c.CustomName)
			if c.CustomName == "" {
				continue
			}
			key += ":" + strings.ToLower(c.CustomName)
		} else {
			c.CustomName = ""
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
	}
	return out
}

// Gender is the audience gender filter.
type Gender string

const (
	GenderAll    Gender = "All"
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// Genders lists the gender filters in display order.
var Genders = []Gender{GenderAll, GenderMale, GenderFemale}

// Valid reports whether g is a known filter.
func (g Gender) Valid() bool {
	return g == GenderAll || g == GenderMale || g == GenderFemale
}

// Audience describes the demographic targeting of a request.
type Audience struct {
	Gender Gender
	AgeMin *int
	AgeMax *int
}
