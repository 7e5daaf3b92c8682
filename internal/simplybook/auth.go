package simplybook

import (
	"context"
	"fmt"
)

// Both login flows are issued against the /login sub-path and mint a fresh
// short-lived credential. Tokens are never cached: every orchestration
// re-authenticates, the service expires tokens on its own schedule.

type tokenParams struct {
	CompanyLogin string `json:"company_login"`
	APIKey       string `json:"api_key"`
}

type userTokenParams struct {
	CompanyLogin string `json:"company_login"`
	UserLogin    string `json:"user_login"`
	UserPassword string `json:"user_password"`
}

// GetToken mints a company-level token, used as the X-Token header on
// single-booking detail lookups.
func (c *Client) GetToken(ctx context.Context) (string, error) {
	var token string

	err := c.call(ctx, c.baseURL+"/login", "getToken", tokenParams{
		CompanyLogin: c.companyLogin,
		APIKey:       c.apiKey,
	}, nil, &token)
	if err != nil {
		return "", fmt.Errorf("company login failed: %w", err)
	}

	return token, nil
}

// GetUserToken mints an operator-level token, used as the X-User-Token
// header on administrative booking searches.
func (c *Client) GetUserToken(ctx context.Context) (string, error) {
	var token string

	err := c.call(ctx, c.baseURL+"/login", "getUserToken", userTokenParams{
		CompanyLogin: c.companyLogin,
		UserLogin:    c.userLogin,
		UserPassword: c.userPassword,
	}, nil, &token)
	if err != nil {
		return "", fmt.Errorf("user login failed: %w", err)
	}

	return token, nil
}
