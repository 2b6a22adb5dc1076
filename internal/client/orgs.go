package client

import (
	"strings"

	"fusus-cli/pkg/models"
)

type orgSearchResponse struct {
	Results []models.Organization `json:"results"`
}

// findOrg queries one org directory and picks the first case-insensitive
// substring match.
func (c *Client) findOrg(path, sizeParam, name string) (*models.Organization, error) {
	var respData orgSearchResponse

	resp, err := c.HTTP.R().
		SetQueryParam("search", name).
		SetQueryParam("page", "1").
		SetQueryParam(sizeParam, "100").
		SetResult(&respData).
		Get(path)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}
	return matchOrg(respData.Results, name), nil
}

func matchOrg(orgs []models.Organization, name string) *models.Organization {
	needle := strings.ToLower(name)
	for i := range orgs {
		if strings.Contains(strings.ToLower(orgs[i].Name), needle) {
			return &orgs[i]
		}
	}
	return nil
}

// ResolveOrg finds the share-target organization. The support directory is
// consulted first; on any failure or miss it falls back to the primary org
// listing with the "one" credential. A nil result with nil error means no
// organization matched anywhere.
func ResolveOrg(support, one *Client, name string) (*models.Organization, error) {
	if support != nil {
		if org, err := support.findOrg("/api/service/organizations/brief/", "page_size", name); err == nil && org != nil {
			return org, nil
		}
	}
	return one.findOrg("/api/organizations/", "pageSize", name)
}
