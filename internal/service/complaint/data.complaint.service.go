package complaint

import (
	"context"
	"strings"

	"complaint-portal/internal/common/enum"
	"complaint-portal/internal/pkg/validation"
	"complaint-portal/internal/service/complaint/model"
)

// List fetches a page of complaints. Empty filter values are not sent.
func (c *Client) List(ctx context.Context, filters model.FilterSet) (*model.ComplaintPage, error) {
	resp, err := c.do(ctx, call{
		method: enum.GET,
		path:   "/complaints/",
		params: filters,
	})
	if err != nil {
		return nil, err
	}
	page, err := decode[model.ComplaintPage](resp)
	if err != nil {
		// Unpaginated backends answer with a bare array.
		results, arrErr := decode[[]model.Complaint](resp)
		if arrErr != nil {
			return nil, err
		}
		return &model.ComplaintPage{Count: len(*results), Results: *results}, nil
	}
	return page, nil
}

func (c *Client) Detail(ctx context.Context, id string) (*model.ComplaintDetail, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	resp, err := c.do(ctx, call{method: enum.GET, path: complaintPath(id)})
	if err != nil {
		return nil, err
	}
	return decode[model.ComplaintDetail](resp)
}

func (c *Client) Statistics(ctx context.Context) (*model.Statistics, error) {
	resp, err := c.do(ctx, call{method: enum.GET, path: "/complaints/statistics/"})
	if err != nil {
		return nil, err
	}
	return decode[model.Statistics](resp)
}

func (c *Client) Categories(ctx context.Context) ([]model.Category, error) {
	resp, err := c.do(ctx, call{method: enum.GET, path: "/categories/"})
	if err != nil {
		return nil, err
	}
	categories, err := decode[[]model.Category](resp)
	if err != nil {
		page, pageErr := decode[struct {
			Results []model.Category `json:"results"`
		}](resp)
		if pageErr != nil {
			return nil, err
		}
		return page.Results, nil
	}
	return *categories, nil
}

// Export asks the backend for an export artefact. JSON answers are decoded;
// anything else is returned as content.
func (c *Client) Export(ctx context.Context, req model.ExportRequest) (*model.ExportResult, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}
	resp, err := c.do(ctx, call{
		method:      enum.POST,
		path:        "/complaints/export/",
		contentType: enum.ApplicationXform,
		body:        req.Values(),
	})
	if err != nil {
		return nil, err
	}

	contentType := resp.Headers.Get("Content-Type")
	var result *model.ExportResult
	if strings.Contains(contentType, "application/json") {
		if result, err = decode[model.ExportResult](resp); err != nil {
			return nil, err
		}
	} else {
		result = &model.ExportResult{ContentType: contentType, Content: resp.Raw}
	}
	if result.Format == "" {
		result.Format = req.Values().Get("format")
	}
	c.publish(ctx, enum.EXPORTED, "")
	return result, nil
}
