package jellyfin

import (
	"fmt"
	"net/url"
)

type ImageType string

const (
	ImagePrimary  ImageType = "Primary"
	ImageBackdrop ImageType = "Backdrop"
)

// Poster and backdrop request sizes. Cards are downscaled again locally.
const (
	posterWidth    = 400
	posterHeight   = 600
	backdropWidth  = 1920
	backdropHeight = 1080
)

func (c *Client) ImageURL(itemID string, imgType ImageType, maxWidth, maxHeight int) string {
	u := fmt.Sprintf("%s/Items/%s/Images/%s", c.serverURL, url.PathEscape(itemID), string(imgType))
	params := url.Values{}
	if maxWidth > 0 {
		params.Set("maxWidth", fmt.Sprintf("%d", maxWidth))
	}
	if maxHeight > 0 {
		params.Set("maxHeight", fmt.Sprintf("%d", maxHeight))
	}
	params.Set("quality", "90")
	return u + "?" + params.Encode()
}

func (c *Client) PosterURL(itemID string) string {
	return c.ImageURL(itemID, ImagePrimary, posterWidth, posterHeight)
}

func (c *Client) BackdropURL(itemID string) string {
	return c.ImageURL(itemID, ImageBackdrop, backdropWidth, backdropHeight)
}
