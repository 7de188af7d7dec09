// Copyright 2026 The Reservations UI Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
)

func salesFor(id string) EventSales {
	return EventSales{
		EventID:       id,
		EventName:     "Event " + id,
		Capacity:      100,
		TicketsSold:   40,
		Revenue:       400,
		OccupancyRate: 0.4,
	}
}

func TestAllSalesJoinsEveryEvent(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Path shape: /events/{id}/sales
		parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
		if len(parts) != 3 || parts[0] != "events" || parts[2] != "sales" {
			t.Errorf("unexpected path %q", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(salesFor(parts[1]))
	}), "tok")

	events := []Event{{ID: "e1"}, {ID: "e2"}, {ID: "e3"}}
	sales, err := NewEventService(client).AllSales(context.Background(), events)
	if err != nil {
		t.Fatalf("AllSales: %v", err)
	}
	if len(sales) != 3 {
		t.Fatalf("got %d sales records, want 3", len(sales))
	}
	// Results must line up with the input order.
	for i, event := range events {
		if sales[i].EventID != event.ID {
			t.Fatalf("sales[%d].EventID = %q, want %q", i, sales[i].EventID, event.ID)
		}
	}
}

func TestAllSalesFailsWholeBatchOnAnyError(t *testing.T) {
	var calls atomic.Int64
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if strings.Contains(r.URL.Path, "/e2/") {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"message": "aggregation failed"})
			return
		}
		json.NewEncoder(w).Encode(salesFor("x"))
	}), "tok")

	events := []Event{{ID: "e1"}, {ID: "e2"}, {ID: "e3"}}
	_, err := NewEventService(client).AllSales(context.Background(), events)
	if err == nil {
		t.Fatal("expected batch failure when one sub-request fails")
	}
}

func TestAllSalesEmptyInput(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no requests expected for an empty batch")
	}), "tok")

	sales, err := NewEventService(client).AllSales(context.Background(), nil)
	if err != nil {
		t.Fatalf("AllSales: %v", err)
	}
	if sales != nil {
		t.Fatalf("got %v, want nil", sales)
	}
}
