package scrapapi

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/scrapyardhq/scrapdash/pkg/enums"
	"github.com/scrapyardhq/scrapdash/pkg/types"
)

// TestGatewayRoutes pins every resource operation to its backend route.
func TestGatewayRoutes(t *testing.T) {
	var method, path, query, respBody string
	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		method = req.Method
		path = req.URL.Path
		query = req.URL.RawQuery
		return jsonResponse(http.StatusOK, respBody), nil
	})
	client, err := New("http://yard.test/api/v1", seededStore(t),
		WithLogger(quietLogger()),
		WithHTTPClient(&http.Client{Transport: rt}))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	ctx := context.Background()
	opens := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	closes := opens.Add(48 * time.Hour)

	tests := []struct {
		name       string
		resp       string
		invoke     func() error
		wantMethod string
		wantPath   string
		wantQuery  string
	}{
		{"boxes list", `[]`, func() error { _, err := client.Boxes.List(ctx); return err }, "GET", "/api/v1/boxes/", ""},
		{"boxes get", `{}`, func() error { _, err := client.Boxes.Get(ctx, 4); return err }, "GET", "/api/v1/boxes/4/", ""},
		{"boxes create", `{}`, func() error {
			_, err := client.Boxes.Create(ctx, types.BoxCreateRequest{BoxNumber: "BX-4", Name: "Brass"})
			return err
		}, "POST", "/api/v1/boxes/", ""},
		{"boxes update", `{}`, func() error {
			name := "Brass fittings"
			_, err := client.Boxes.Update(ctx, 4, types.BoxUpdateRequest{Name: &name})
			return err
		}, "PATCH", "/api/v1/boxes/4/", ""},
		{"boxes delete", `{}`, func() error { return client.Boxes.Delete(ctx, 4) }, "DELETE", "/api/v1/boxes/4/", ""},
		{"boxes finalize", `{}`, func() error { _, err := client.Boxes.Finalize(ctx, 4); return err }, "POST", "/api/v1/boxes/4/finalize/", ""},
		{"boxes unfinalize", `{}`, func() error { _, err := client.Boxes.Unfinalize(ctx, 4); return err }, "POST", "/api/v1/boxes/4/unfinalize/", ""},

		{"parts list", `[]`, func() error { _, err := client.Parts.List(ctx); return err }, "GET", "/api/v1/parts/", ""},
		{"parts by box", `[]`, func() error { _, err := client.Parts.ListByBox(ctx, 4); return err }, "GET", "/api/v1/parts/", "box=4"},
		{"parts get", `{}`, func() error { _, err := client.Parts.Get(ctx, 6); return err }, "GET", "/api/v1/parts/6/", ""},
		{"parts create", `{}`, func() error {
			_, err := client.Parts.Create(ctx, types.PartCreateRequest{
				Box:          4,
				MaterialType: enums.MaterialCopper,
				PartType:     "alternator",
				WeightLbs:    12.5,
				Condition:    enums.ConditionClean,
			})
			return err
		}, "POST", "/api/v1/parts/", ""},
		{"parts update", `{}`, func() error {
			partType := "alternator, tested"
			_, err := client.Parts.Update(ctx, 6, types.PartUpdateRequest{PartType: &partType})
			return err
		}, "PATCH", "/api/v1/parts/6/", ""},
		{"parts delete", `{}`, func() error { return client.Parts.Delete(ctx, 6) }, "DELETE", "/api/v1/parts/6/", ""},

		{"sales list", `[]`, func() error { _, err := client.Sales.List(ctx); return err }, "GET", "/api/v1/sales/", ""},
		{"sales marketplace", `[]`, func() error { _, err := client.Sales.Marketplace(ctx); return err }, "GET", "/api/v1/sales/marketplace/", ""},
		{"sales get", `{}`, func() error { _, err := client.Sales.Get(ctx, 2); return err }, "GET", "/api/v1/sales/2/", ""},
		{"sales create", `{}`, func() error {
			_, err := client.Sales.Create(ctx, types.SaleCreateRequest{
				Box:      4,
				Title:    "Mixed copper lot",
				SaleType: enums.SaleTypeSealedBid,
				OpensAt:  opens,
				ClosesAt: closes,
			})
			return err
		}, "POST", "/api/v1/sales/", ""},
		{"sales delete", `{}`, func() error { return client.Sales.Delete(ctx, 2) }, "DELETE", "/api/v1/sales/2/", ""},
		{"sales publish", `{}`, func() error { _, err := client.Sales.Publish(ctx, 2); return err }, "POST", "/api/v1/sales/2/publish/", ""},
		{"sales close", `{}`, func() error { _, err := client.Sales.Close(ctx, 2); return err }, "POST", "/api/v1/sales/2/close/", ""},
		{"sales bids", `[]`, func() error { _, err := client.Sales.Bids(ctx, 2); return err }, "GET", "/api/v1/sales/2/bids/", ""},

		{"bids list", `[]`, func() error { _, err := client.Bids.List(ctx); return err }, "GET", "/api/v1/bids/", ""},
		{"bids mine", `[]`, func() error { _, err := client.Bids.Mine(ctx); return err }, "GET", "/api/v1/bids/my_bids/", ""},
		{"bids get", `{}`, func() error { _, err := client.Bids.Get(ctx, 5); return err }, "GET", "/api/v1/bids/5/", ""},
		{"bids place", `{}`, func() error {
			_, err := client.Bids.Place(ctx, types.BidCreateRequest{Sale: 2, AmountUSD: 1250.50})
			return err
		}, "POST", "/api/v1/bids/", ""},
		{"bids update", `{}`, func() error {
			_, err := client.Bids.Update(ctx, 5, types.BidUpdateRequest{AmountUSD: 1400})
			return err
		}, "PATCH", "/api/v1/bids/5/", ""},
		{"bids accept", `{}`, func() error { _, err := client.Bids.Accept(ctx, 5); return err }, "POST", "/api/v1/bids/5/accept/", ""},
		{"bids reject", `{}`, func() error { _, err := client.Bids.Reject(ctx, 5); return err }, "POST", "/api/v1/bids/5/reject/", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			method, path, query = "", "", ""
			respBody = tc.resp
			if err := tc.invoke(); err != nil {
				t.Fatalf("%s: %v", tc.name, err)
			}
			if method != tc.wantMethod {
				t.Fatalf("method %s, want %s", method, tc.wantMethod)
			}
			if path != tc.wantPath {
				t.Fatalf("path %s, want %s", path, tc.wantPath)
			}
			if query != tc.wantQuery {
				t.Fatalf("query %q, want %q", query, tc.wantQuery)
			}
		})
	}
}
