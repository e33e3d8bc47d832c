package jellyfin

import (
	"fmt"
	"time"

	jellyfin "github.com/sj14/jellyfin-go/api"

	"github.com/depeter/jellyreel/internal/library"
)

// ticksPerSecond converts Jellyfin's 100ns run time ticks.
const ticksPerSecond = 10_000_000

// reelItemTypes are the kinds a shelf shows. Episodes and seasons are left
// to their series.
var reelItemTypes = []jellyfin.BaseItemKind{
	jellyfin.BASEITEMKIND_MOVIE,
	jellyfin.BASEITEMKIND_SERIES,
	jellyfin.BASEITEMKIND_MUSIC_ALBUM,
	jellyfin.BASEITEMKIND_BOX_SET,
}

// MediaItem is the subset of a Jellyfin item the reel uses.
type MediaItem struct {
	ID              string
	Name            string
	Type            string
	Year            int
	Overview        string
	RuntimeTicks    int64
	CommunityRating float32
	ImageTags       map[string]string
	BackdropTags    []string
}

// GetViews returns the user's media libraries.
func (c *Client) GetViews() ([]MediaItem, error) {
	result, resp, err := c.api.UserViewsAPI.GetUserViews(c.ctx).UserId(c.userID).Execute()
	if err != nil {
		return nil, fmt.Errorf("get views: %w (status: %s)", err, respStatus(resp))
	}
	return convertItems(result.Items), nil
}

// GetItems returns up to limit items under parentID sorted by name, and the
// server's total count.
func (c *Client) GetItems(parentID string, start, limit int) ([]MediaItem, int, error) {
	req := c.api.ItemsAPI.GetItems(c.ctx).
		UserId(c.userID).
		StartIndex(int32(start)).
		Limit(int32(limit)).
		Fields([]jellyfin.ItemFields{jellyfin.ITEMFIELDS_OVERVIEW, jellyfin.ITEMFIELDS_PRIMARY_IMAGE_ASPECT_RATIO}).
		EnableImageTypes([]jellyfin.ImageType{jellyfin.IMAGETYPE_PRIMARY, jellyfin.IMAGETYPE_BACKDROP}).
		ImageTypeLimit(1).
		Recursive(true).
		IncludeItemTypes(reelItemTypes).
		SortBy([]jellyfin.ItemSortBy{jellyfin.ITEMSORTBY_SORT_NAME}).
		SortOrder([]jellyfin.SortOrder{jellyfin.SORTORDER_ASCENDING})
	if parentID != "" {
		req = req.ParentId(parentID)
	}
	result, resp, err := req.Execute()
	if err != nil {
		return nil, 0, fmt.Errorf("get items: %w (status: %s)", err, respStatus(resp))
	}
	total := 0
	if result.TotalRecordCount != nil {
		total = int(*result.TotalRecordCount)
	}
	return convertItems(result.Items), total, nil
}

func convertItems(items []jellyfin.BaseItemDto) []MediaItem {
	result := make([]MediaItem, 0, len(items))
	for _, item := range items {
		result = append(result, convertBaseItemDto(&item))
	}
	return result
}

func convertBaseItemDto(item *jellyfin.BaseItemDto) MediaItem {
	mi := MediaItem{}
	if item.Id != nil {
		mi.ID = *item.Id
	}
	mi.Name = item.GetName()
	if item.Type != nil {
		mi.Type = string(*item.Type)
	}
	mi.Year = int(item.GetProductionYear())
	mi.Overview = item.GetOverview()
	mi.RuntimeTicks = item.GetRunTimeTicks()
	mi.CommunityRating = item.GetCommunityRating()
	if len(item.ImageTags) > 0 {
		mi.ImageTags = make(map[string]string, len(item.ImageTags))
		for k, v := range item.ImageTags {
			mi.ImageTags[k] = v
		}
	}
	mi.BackdropTags = item.BackdropImageTags
	return mi
}

// Name identifies the source in logs.
func (c *Client) Name() string { return "jellyfin:" + c.serverURL }

// Shelves lists the user's libraries, one shelf each.
func (c *Client) Shelves() ([]library.Shelf, error) {
	views, err := c.GetViews()
	if err != nil {
		return nil, err
	}
	shelves := make([]library.Shelf, 0, len(views))
	for _, v := range views {
		shelves = append(shelves, library.Shelf{ID: v.ID, Name: v.Name})
	}
	return shelves, nil
}

// Items returns the first limit items of a library.
func (c *Client) Items(shelf library.Shelf, limit int) ([]library.Item, error) {
	items, _, err := c.GetItems(shelf.ID, 0, limit)
	if err != nil {
		return nil, err
	}
	out := make([]library.Item, 0, len(items))
	for _, mi := range items {
		out = append(out, c.toLibraryItem(mi))
	}
	return out, nil
}

func (c *Client) toLibraryItem(mi MediaItem) library.Item {
	it := library.Item{
		ID:       mi.ID,
		Name:     mi.Name,
		Year:     mi.Year,
		Overview: mi.Overview,
		Runtime:  time.Duration(mi.RuntimeTicks) * (time.Second / ticksPerSecond),
		Rating:   mi.CommunityRating,
	}
	if _, ok := mi.ImageTags[string(ImagePrimary)]; ok {
		it.Poster = c.PosterURL(mi.ID)
	}
	if len(mi.BackdropTags) > 0 {
		it.Backdrop = c.BackdropURL(mi.ID)
	}
	return it
}

var _ library.Source = (*Client)(nil)
