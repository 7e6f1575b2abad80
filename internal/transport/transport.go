// Package transport is the mock API test double: it resolves requests purely
// in memory, against the same services the HTTP surface uses, and never
// performs network I/O. Latency is simulated only to approximate real UX;
// the exact delay is not a contract.
package transport

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/arjunalabs/pos-backend/internal/apierr"
	"github.com/arjunalabs/pos-backend/internal/envelope"
	"github.com/arjunalabs/pos-backend/internal/modules/auth"
	"github.com/arjunalabs/pos-backend/internal/modules/catalog"
	"github.com/arjunalabs/pos-backend/internal/modules/checkout"
	"github.com/arjunalabs/pos-backend/internal/modules/dashboard"
	"github.com/arjunalabs/pos-backend/internal/modules/user"
)

// Request is an in-memory API call.
type Request struct {
	Method string
	Path   string
	Body   []byte
}

// Response carries the status and envelope a real backend would have sent.
type Response struct {
	Status   int
	Envelope envelope.Envelope
}

// HandlerFunc resolves one matched request.
type HandlerFunc func(ctx context.Context, req Request) (Response, error)

// route is one row of the dispatch table.
type route struct {
	method string
	path   string
	handle HandlerFunc
}

// Transport dispatches over an explicit ordered route table; the first
// matching row wins and unmatched requests report NotFound.
type Transport struct {
	routes  []route
	latency time.Duration
}

// Deps are the services the route table delegates to.
type Deps struct {
	Auth      auth.Service
	Catalog   catalog.Service
	Checkout  checkout.Service
	Dashboard dashboard.Service
}

// New builds the transport with the fixed rule set: login, catalog reads,
// dashboard summary, transaction create.
func New(deps Deps) *Transport {
	t := &Transport{}
	t.routes = []route{
		{"POST", "/auth/login", t.login(deps.Auth)},
		{"GET", "/categories", t.listCategories(deps.Catalog)},
		{"GET", "/items", t.listItems(deps.Catalog)},
		{"GET", "/dashboard/summary", t.dashboardSummary(deps.Dashboard)},
		{"POST", "/transactions", t.createTransaction(deps.Checkout)},
	}
	return t
}

// WithLatency makes Handle pause before resolving, like a network would.
func (t *Transport) WithLatency(d time.Duration) *Transport {
	t.latency = d
	return t
}

// Handle resolves a request. Rule failures come back as both a failure
// envelope (what the client renders) and a typed error (what it branches on).
func (t *Transport) Handle(ctx context.Context, req Request) (Response, error) {
	if t.latency > 0 {
		timer := time.NewTimer(t.latency)
		select {
		case <-ctx.Done():
			timer.Stop()
			return Response{}, ctx.Err()
		case <-timer.C:
		}
	}

	path := strings.TrimPrefix(req.Path, "/v1")
	method := strings.ToUpper(req.Method)
	for _, rt := range t.routes {
		if rt.method == method && rt.path == path {
			resp, err := rt.handle(ctx, req)
			if err != nil {
				return Response{Status: apierr.StatusOf(err), Envelope: envelope.Fail(err.Error())}, err
			}
			return resp, nil
		}
	}
	err := apierr.NotFound("endpoint not found in mock")
	return Response{Status: err.Status, Envelope: envelope.Fail(err.Message)}, err
}

func (t *Transport) login(svc auth.Service) HandlerFunc {
	return func(ctx context.Context, req Request) (Response, error) {
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.Unmarshal(req.Body, &body); err != nil {
			return Response{}, apierr.Validation("malformed request body")
		}
		result, err := svc.Login(ctx, body.Email, body.Password)
		if err != nil {
			return Response{}, err
		}
		return Response{Status: 200, Envelope: envelope.OK("Login successful", result)}, nil
	}
}

func (t *Transport) listCategories(svc catalog.Service) HandlerFunc {
	return func(ctx context.Context, req Request) (Response, error) {
		cats, err := svc.ListCategories(ctx, user.StoreGeneral)
		if err != nil {
			return Response{}, err
		}
		return Response{Status: 200, Envelope: envelope.OKList("Operation successful", cats, len(cats))}, nil
	}
}

func (t *Transport) listItems(svc catalog.Service) HandlerFunc {
	return func(ctx context.Context, req Request) (Response, error) {
		items, err := svc.ListItems(ctx, catalog.Filter{Store: user.StoreGeneral})
		if err != nil {
			return Response{}, err
		}
		return Response{Status: 200, Envelope: envelope.OKList("Operation successful", items, len(items))}, nil
	}
}

func (t *Transport) dashboardSummary(svc dashboard.Service) HandlerFunc {
	return func(ctx context.Context, req Request) (Response, error) {
		sum, err := svc.Summarize(ctx)
		if err != nil {
			return Response{}, err
		}
		return Response{Status: 200, Envelope: envelope.OK("Operation successful", sum)}, nil
	}
}

func (t *Transport) createTransaction(svc checkout.Service) HandlerFunc {
	return func(ctx context.Context, req Request) (Response, error) {
		var body checkout.CreateTransactionRequest
		if err := json.Unmarshal(req.Body, &body); err != nil {
			return Response{}, apierr.Validation("malformed request body")
		}
		trx, err := svc.ConfirmPayload(ctx, body)
		if err != nil {
			return Response{}, err
		}
		echo := checkout.CreateTransactionResponse{
			TransactionID: trx.ID,
			CreatedAt:     trx.Date,
			GrandTotal:    trx.Total,
		}
		return Response{Status: 201, Envelope: envelope.OK("Transaction recorded", echo)}, nil
	}
}
