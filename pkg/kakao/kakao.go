// Package kakao wraps the single OAuth collaborator call this backend
// consumes: exchanging an access token for the account profile.
package kakao

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

const userInfoPath = "/v2/user/me"

// ErrUpstreamUnavailable marks a provider call that failed or timed out.
var ErrUpstreamUnavailable = errors.New("kakao upstream unavailable")

type Profile struct {
	Nickname          string `json:"nickname"`
	ThumbnailImageURL string `json:"thumbnail_image_url"`
	ProfileImageURL   string `json:"profile_image_url"`
}

type Account struct {
	Profile  Profile `json:"profile"`
	Email    string  `json:"email"`
	AgeRange string  `json:"age_range"`
	Gender   string  `json:"gender"`
}

// UserInfoResponse is the provider's answer to the token exchange.
type UserInfoResponse struct {
	ID          int64             `json:"id"`
	HasSignedUp bool              `json:"has_signed_up"`
	ConnectedAt string            `json:"connected_at"`
	SynchedAt   string            `json:"synched_at"`
	Properties  map[string]string `json:"properties"`
	Account     Account           `json:"kakao_account"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a provider client with a bounded timeout on every call.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// ExchangeToken sends the access token back to the provider and returns the
// account profile it describes.
func (c *Client) ExchangeToken(accessToken string) (*UserInfoResponse, error) {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+userInfoPath, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build user info request")
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(ErrUpstreamUnavailable, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Wrapf(ErrUpstreamUnavailable, "status %d", resp.StatusCode)
	}

	var info UserInfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, errors.Wrap(ErrUpstreamUnavailable, "decode user info")
	}
	return &info, nil
}
