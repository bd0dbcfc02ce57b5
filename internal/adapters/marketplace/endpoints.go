package marketplace

import (
	"context"
	"encoding/json"
	"net/url"

	"fundi/internal/core/feed"
	perr "fundi/internal/platform/errors"
)

// malformedList is the single display message for a response whose
// top-level shape is wrong (missing success flag or entity list)
func malformedList() error {
	return perr.JSONErrf("The server sent an unexpected response. Please try again")
}

// listEnvelope is the shared list response shape. Exactly one of the
// entity lists is populated per endpoint; a missing list is a malformed
// response for that endpoint
type listEnvelope struct {
	Success    *bool             `json:"success"`
	Message    string            `json:"message"`
	Fundis     []json.RawMessage `json:"fundis"`
	Jobs       []json.RawMessage `json:"jobs"`
	Payments   []json.RawMessage `json:"payments"`
	Pagination Pagination        `json:"pagination"`
}

// itemEnvelope is the shared detail response shape
type itemEnvelope struct {
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Fundi   json.RawMessage `json:"fundi"`
	Job     json.RawMessage `json:"job"`
	Item    json.RawMessage `json:"payment"`
}

// valuesEnvelope is the shared reference-list response shape
type valuesEnvelope struct {
	Success *bool    `json:"success"`
	Message string   `json:"message"`
	Values  []string `json:"values"`
}

func listPage[T feed.Record](c *Client, entity string, items []json.RawMessage, p Pagination) feed.Page[T] {
	return feed.Page[T]{
		Records: decodeAll[T](c, entity, items),
		HasMore: p.HasMore(),
	}
}

// ListFundis fetches one page of fundis for the query
func (c *Client) ListFundis(ctx context.Context, q *feed.Query, page, perPage int) (feed.Page[Fundi], error) {
	var env listEnvelope
	if err := c.get(ctx, "/fundis", q.Params(page, perPage), &env); err != nil {
		return feed.Page[Fundi]{}, err
	}
	if err := checkEnvelope(env.Success, env.Message); err != nil {
		return feed.Page[Fundi]{}, err
	}
	if env.Fundis == nil {
		return feed.Page[Fundi]{}, malformedList()
	}
	return listPage[Fundi](c, "fundi", env.Fundis, env.Pagination), nil
}

// ListJobs fetches one page of jobs for the query
func (c *Client) ListJobs(ctx context.Context, q *feed.Query, page, perPage int) (feed.Page[Job], error) {
	var env listEnvelope
	if err := c.get(ctx, "/jobs", q.Params(page, perPage), &env); err != nil {
		return feed.Page[Job]{}, err
	}
	if err := checkEnvelope(env.Success, env.Message); err != nil {
		return feed.Page[Job]{}, err
	}
	if env.Jobs == nil {
		return feed.Page[Job]{}, malformedList()
	}
	return listPage[Job](c, "job", env.Jobs, env.Pagination), nil
}

// ListPayments fetches one page of the authenticated user's payments
func (c *Client) ListPayments(ctx context.Context, q *feed.Query, page, perPage int) (feed.Page[Payment], error) {
	var env listEnvelope
	if err := c.get(ctx, "/payments", q.Params(page, perPage), &env); err != nil {
		return feed.Page[Payment]{}, err
	}
	if err := checkEnvelope(env.Success, env.Message); err != nil {
		return feed.Page[Payment]{}, err
	}
	if env.Payments == nil {
		return feed.Page[Payment]{}, malformedList()
	}
	return listPage[Payment](c, "payment", env.Payments, env.Pagination), nil
}

// FundiFetcher adapts ListFundis to the feed engine
func (c *Client) FundiFetcher() feed.Fetcher[Fundi] {
	return feed.FetchFunc[Fundi](c.ListFundis)
}

// JobFetcher adapts ListJobs to the feed engine
func (c *Client) JobFetcher() feed.Fetcher[Job] {
	return feed.FetchFunc[Job](c.ListJobs)
}

// PaymentFetcher adapts ListPayments to the feed engine
func (c *Client) PaymentFetcher() feed.Fetcher[Payment] {
	return feed.FetchFunc[Payment](c.ListPayments)
}

// GetFundi fetches one fundi by id
func (c *Client) GetFundi(ctx context.Context, id string) (Fundi, error) {
	var env itemEnvelope
	if err := c.get(ctx, "/fundis/"+url.PathEscape(id), nil, &env); err != nil {
		return Fundi{}, err
	}
	if err := checkEnvelope(env.Success, env.Message); err != nil {
		return Fundi{}, err
	}
	var f Fundi
	if err := json.Unmarshal(env.Fundi, &f); err != nil {
		return Fundi{}, malformedList()
	}
	return f, nil
}

// GetJob fetches one job by id
func (c *Client) GetJob(ctx context.Context, id string) (Job, error) {
	var env itemEnvelope
	if err := c.get(ctx, "/jobs/"+url.PathEscape(id), nil, &env); err != nil {
		return Job{}, err
	}
	if err := checkEnvelope(env.Success, env.Message); err != nil {
		return Job{}, err
	}
	var j Job
	if err := json.Unmarshal(env.Job, &j); err != nil {
		return Job{}, malformedList()
	}
	return j, nil
}

// Reference lists for the staleness cache

// Categories fetches the category reference list
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	return c.values(ctx, "/categories")
}

// Skills fetches the skills reference list
func (c *Client) Skills(ctx context.Context) ([]string, error) {
	return c.values(ctx, "/skills")
}

// Locations fetches the locations reference list
func (c *Client) Locations(ctx context.Context) ([]string, error) {
	return c.values(ctx, "/locations")
}

func (c *Client) values(ctx context.Context, path string) ([]string, error) {
	var env valuesEnvelope
	if err := c.get(ctx, path, nil, &env); err != nil {
		return nil, err
	}
	if err := checkEnvelope(env.Success, env.Message); err != nil {
		return nil, err
	}
	if env.Values == nil {
		return nil, malformedList()
	}
	return env.Values, nil
}
