package ttkia

import (
	"context"
	"net/http"
)

// Sources lists the retrieval sources available to queries.
func (c *Client) Sources(ctx context.Context) ([]Source, error) {
	var sources []Source
	if err := c.do(ctx, http.MethodPost, "/get_sources", nil, &sources); err != nil {
		return nil, err
	}
	return sources, nil
}

// Prompts lists the prompt presets offered by the service.
func (c *Client) Prompts(ctx context.Context) ([]Prompt, error) {
	var prompts []Prompt
	if err := c.do(ctx, http.MethodGet, "/get_prompts", nil, &prompts); err != nil {
		return nil, err
	}
	return prompts, nil
}

// Styles lists the response style presets offered by the service.
func (c *Client) Styles(ctx context.Context) ([]Style, error) {
	var styles []Style
	if err := c.do(ctx, http.MethodGet, "/get_styles", nil, &styles); err != nil {
		return nil, err
	}
	return styles, nil
}
