package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentChargeInvoice_SameReferenceIsIdempotent fires many
// concurrent ChargeInvoice calls with the same reference_id against the
// same invoice. Domain idempotency (ChargeRepository's unique constraint
// on (tenant, reference_id), absorbed by ChargeServiceImpl's
// create-conflict fallback) must collapse them into exactly one charge.
func TestConcurrentChargeInvoice_SameReferenceIsIdempotent(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	token := loginAndGetToken(t, app, "acme", "operator1", testOperatorPassword)
	customerID := createCustomer(t, app, token, "cust-concurrent-1", "concurrent1@example.com")
	pmID := attachPaymentMethod(t, app, token, customerID)
	invoiceID := createInvoice(t, app, token, customerID, 75000)
	doAuthed(t, app, token, http.MethodPost, "/invoices/"+invoiceID+"/issue", nil).Body.Close()

	const concurrency = 20
	const sharedReferenceID = "CONCURRENT-CHG-REF-001"
	body, _ := json.Marshal(map[string]interface{}{
		"invoice_id":        invoiceID,
		"payment_method_id": pmID,
		"reference_id":      sharedReferenceID,
	})

	var wg sync.WaitGroup
	var successCount atomic.Int64
	chargeIDs := make([]string, concurrency)

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			req, err := http.NewRequest(http.MethodPost, app.server.URL+"/charges", bytes.NewReader(body))
			if err != nil {
				return
			}
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "Bearer "+token)

			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				return
			}
			defer resp.Body.Close()
			respBytes, _ := io.ReadAll(resp.Body)

			if resp.StatusCode != http.StatusCreated {
				return
			}
			successCount.Add(1)

			var envelope map[string]interface{}
			if err := json.Unmarshal(respBytes, &envelope); err == nil {
				if data, ok := envelope["data"].(map[string]interface{}); ok {
					chargeIDs[idx] = data["id"].(string)
				}
			}
		}(i)
	}

	wg.Wait()

	require.Equal(t, int64(concurrency), successCount.Load(), "every call with the shared reference_id should return success, not an error")

	unique := make(map[string]struct{})
	for _, id := range chargeIDs {
		if id != "" {
			unique[id] = struct{}{}
		}
	}
	assert.Len(t, unique, 1, "all concurrent charges sharing a reference_id must collapse to a single charge")
}

// TestConcurrentChargeInvoice_DistinctInvoices verifies the lock-free path
// for unrelated invoices doesn't serialize or corrupt unrelated charges.
func TestConcurrentChargeInvoice_DistinctInvoices(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	token := loginAndGetToken(t, app, "acme", "operator1", testOperatorPassword)
	customerID := createCustomer(t, app, token, "cust-concurrent-2", "concurrent2@example.com")
	pmID := attachPaymentMethod(t, app, token, customerID)

	const concurrency = 15
	invoiceIDs := make([]string, concurrency)
	for i := range invoiceIDs {
		invID := createInvoice(t, app, token, customerID, 10000)
		doAuthed(t, app, token, http.MethodPost, "/invoices/"+invID+"/issue", nil).Body.Close()
		invoiceIDs[i] = invID
	}

	var wg sync.WaitGroup
	var successCount atomic.Int64

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			body, _ := json.Marshal(map[string]interface{}{
				"invoice_id":        invoiceIDs[idx],
				"payment_method_id": pmID,
				"reference_id":      fmt.Sprintf("CONCURRENT-DISTINCT-%d", idx),
			})
			req, err := http.NewRequest(http.MethodPost, app.server.URL+"/charges", bytes.NewReader(body))
			if err != nil {
				return
			}
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "Bearer "+token)

			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				return
			}
			defer resp.Body.Close()
			io.ReadAll(resp.Body)

			if resp.StatusCode == http.StatusCreated {
				successCount.Add(1)
			}
		}(i)
	}

	wg.Wait()

	assert.Equal(t, int64(concurrency), successCount.Load(), "unrelated invoices must charge independently without contention")
}

// TestConcurrentProcessorFactory_ForTenant exercises
// memoryclient.Factory.ForTenant under concurrent first-resolution from
// distinct tenant slugs, guarding against a race on its internal client map.
func TestConcurrentProcessorFactory_ForTenant(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	const concurrency = 50
	var wg sync.WaitGroup
	errs := make(chan error, concurrency)

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			slug := fmt.Sprintf("tenant-%d", idx%5)
			if _, err := app.processorFactory.ForTenant(slug); err != nil {
				errs <- err
			}
		}(i)
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
}
