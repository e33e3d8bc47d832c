package jellyfin

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	jellyfin "github.com/sj14/jellyfin-go/api"
)

const (
	clientName    = "JellyReel"
	clientVersion = "0.1.0"
	deviceName    = "JellyReel Desktop"
)

// Client wraps the generated Jellyfin API client and serves a user's
// libraries as reel shelves.
type Client struct {
	api       *jellyfin.APIClient
	ctx       context.Context
	token     string
	userID    string
	serverURL string
}

func normalizeURL(serverURL string) string {
	serverURL = strings.TrimSpace(serverURL)
	if !strings.HasPrefix(serverURL, "http://") && !strings.HasPrefix(serverURL, "https://") {
		serverURL = "https://" + serverURL
	}
	return strings.TrimRight(serverURL, "/")
}

func NewClient(serverURL string) *Client {
	serverURL = normalizeURL(serverURL)
	cfg := jellyfin.NewConfiguration()
	cfg.Servers = jellyfin.ServerConfigurations{
		{URL: serverURL},
	}
	cfg.AddDefaultHeader("X-Emby-Authorization",
		fmt.Sprintf(`MediaBrowser Client="%s", Device="%s", DeviceId="jellyreel-1", Version="%s"`,
			clientName, deviceName, clientVersion))

	return &Client{
		api:       jellyfin.NewAPIClient(cfg),
		ctx:       context.Background(),
		serverURL: serverURL,
	}
}

func (c *Client) Authenticate(username, password string) error {
	body := *jellyfin.NewAuthenticateUserByName()
	body.SetUsername(username)
	body.SetPw(password)

	result, resp, err := c.api.UserAPI.AuthenticateUserByName(c.ctx).AuthenticateUserByName(body).Execute()
	if err != nil {
		return fmt.Errorf("auth failed: %w (status: %s)", err, respStatus(resp))
	}
	c.token = result.GetAccessToken()
	user := result.GetUser()
	if user.Id != nil {
		c.userID = *user.Id
	}

	c.api.GetConfig().AddDefaultHeader("X-Emby-Token", c.token)
	return nil
}

// Connect returns a client for a saved server. A stored token is reused;
// otherwise username and password are exchanged for a new one.
func Connect(serverURL, username, password, token, userID string) (*Client, error) {
	if strings.TrimSpace(serverURL) == "" {
		return nil, errors.New("no server url")
	}
	c := NewClient(serverURL)
	if token != "" {
		c.SetToken(token, userID)
		return c, nil
	}
	if username == "" {
		return nil, errors.New("no token and no username to sign in with")
	}
	if err := c.Authenticate(username, password); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Client) SetToken(token, userID string) {
	c.token = token
	c.userID = userID
	c.api.GetConfig().AddDefaultHeader("X-Emby-Token", c.token)
}

// WithContext returns a shallow copy whose requests use ctx.
func (c *Client) WithContext(ctx context.Context) *Client {
	cc := *c
	cc.ctx = ctx
	return &cc
}

func (c *Client) Token() string     { return c.token }
func (c *Client) UserID() string    { return c.userID }
func (c *Client) ServerURL() string { return c.serverURL }

func respStatus(resp *http.Response) string {
	if resp == nil {
		return "no response"
	}
	return resp.Status
}
