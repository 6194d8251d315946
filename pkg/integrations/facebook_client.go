package integrations

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

// DefaultFacebookBaseURL is the Graph API version the client targets
const DefaultFacebookBaseURL = "https://graph.facebook.com/v17.0"

// FacebookClient wraps the Facebook Graph API. The API key is sent as the
// access_token query parameter on every call.
type FacebookClient struct {
	*BaseClient
}

// NewFacebookClient creates a FacebookClient. An empty baseURL selects the default.
func NewFacebookClient(baseURL, apiKey string, logger *zap.Logger) *FacebookClient {
	if baseURL == "" {
		baseURL = DefaultFacebookBaseURL
	}
	return &FacebookClient{BaseClient: NewBaseClient(baseURL, apiKey, logger)}
}

func (c *FacebookClient) params(extra url.Values) url.Values {
	p := url.Values{}
	for k, v := range extra {
		p[k] = v
	}
	p.Set("access_token", c.APIKey)
	return p
}

func (c *FacebookClient) call(ctx context.Context, method, endpoint string, data map[string]interface{}) (map[string]interface{}, error) {
	opts := &RequestOptions{Params: c.params(nil)}
	// A nil map would still encode as "null"
	if data != nil {
		opts.JSON = data
	}
	resp, err := c.Do(ctx, method, endpoint, opts)
	if err != nil {
		return nil, err
	}
	out := map[string]interface{}{}
	if err := resp.JSON(&out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetCampaign fetches an ad campaign
func (c *FacebookClient) GetCampaign(ctx context.Context, campaignID string) (map[string]interface{}, error) {
	return c.call(ctx, "GET", "/"+campaignID, nil)
}

// CreateCampaign creates an ad campaign under an ad account. The "act_"
// prefix is added when missing.
func (c *FacebookClient) CreateCampaign(ctx context.Context, adAccountID string, data map[string]interface{}) (map[string]interface{}, error) {
	if !strings.HasPrefix(adAccountID, "act_") {
		adAccountID = "act_" + adAccountID
	}
	return c.call(ctx, "POST", fmt.Sprintf("/%s/campaigns", adAccountID), data)
}

// UpdateCampaign updates an ad campaign; the Graph API uses POST for updates
func (c *FacebookClient) UpdateCampaign(ctx context.Context, campaignID string, data map[string]interface{}) (map[string]interface{}, error) {
	return c.call(ctx, "POST", "/"+campaignID, data)
}

// DeleteCampaign deletes an ad campaign
func (c *FacebookClient) DeleteCampaign(ctx context.Context, campaignID string) (map[string]interface{}, error) {
	return c.call(ctx, "DELETE", "/"+campaignID, nil)
}

// CreatePost publishes a message to a page feed
func (c *FacebookClient) CreatePost(ctx context.Context, pageID, message string) (map[string]interface{}, error) {
	return c.call(ctx, "POST", fmt.Sprintf("/%s/feed", pageID), map[string]interface{}{"message": message})
}
