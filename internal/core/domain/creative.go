package domain

// Creative is the payload rendered for a campaign. Feed and banner slots
// use the image or video; CTA slots only use the text fields.
type Creative struct {
	ImageURL       string
	VideoURL       string
	DestinationURL string
	Description    string
	ButtonText     string
	BadgeText      string
	Verified       bool
}

// HasVideo reports whether the creative carries a video.
func (c Creative) HasVideo() bool {
	return c.VideoURL != ""
}

// MediaURL returns the image URL, falling back to the video URL.
func (c Creative) MediaURL() string {
	if c.ImageURL != "" {
		return c.ImageURL
	}
	return c.VideoURL
}
