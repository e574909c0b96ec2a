package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studium/internal/application/workflow/usecases"
	"studium/internal/interfaces/http/handlers/testutil"
	"studium/internal/shared/errors"
)

type mockSubmitUC struct {
	result *usecases.SubmitRequestResult
	err    error
	gotCmd usecases.SubmitRequestCommand
}

func (m *mockSubmitUC) Execute(ctx context.Context, cmd usecases.SubmitRequestCommand) (*usecases.SubmitRequestResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockApproveUC struct {
	result *usecases.ApproveRequestResult
	err    error
}

func (m *mockApproveUC) Execute(ctx context.Context, cmd usecases.ApproveRequestCommand) (*usecases.ApproveRequestResult, error) {
	return m.result, m.err
}

type mockRejectUC struct {
	result *usecases.RejectRequestResult
	err    error
}

func (m *mockRejectUC) Execute(ctx context.Context, cmd usecases.RejectRequestCommand) (*usecases.RejectRequestResult, error) {
	return m.result, m.err
}

type mockListMineUC struct {
	result *usecases.ListMyRequestsResult
	err    error
}

func (m *mockListMineUC) Execute(ctx context.Context, query usecases.ListMyRequestsQuery) (*usecases.ListMyRequestsResult, error) {
	return m.result, m.err
}

type mockListPendingUC struct {
	result *usecases.ListPendingRequestsResult
	err    error
}

func (m *mockListPendingUC) Execute(ctx context.Context, query usecases.ListPendingRequestsQuery) (*usecases.ListPendingRequestsResult, error) {
	return m.result, m.err
}

func newTestRequestHandler(
	submitUC *mockSubmitUC,
	approveUC *mockApproveUC,
	rejectUC *mockRejectUC,
) *RequestHandler {
	return NewRequestHandler(
		submitUC,
		approveUC,
		rejectUC,
		&mockListMineUC{result: &usecases.ListMyRequestsResult{}},
		&mockListPendingUC{result: &usecases.ListPendingRequestsResult{}},
		testLogger(),
	)
}

func TestRequestHandler_Submit(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		submitUC := &mockSubmitUC{
			result: &usecases.SubmitRequestResult{
				RequestID: 12,
				Status:    "pending",
				CreatedAt: time.Now().UTC(),
			},
		}
		handler := newTestRequestHandler(submitUC, &mockApproveUC{}, &mockRejectUC{})

		c, w := testutil.NewTestContext(http.MethodPost, "/api/requests", gin.H{
			"resource_id": 4,
			"days":        21,
			"note":        "semester reading",
		})
		testutil.SetAuthContext(c, 31, "student")

		handler.Submit(c)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, uint(4), submitUC.gotCmd.ResourceID)
		assert.Equal(t, uint(31), submitUC.gotCmd.RequesterID)
		assert.Equal(t, 21, submitUC.gotCmd.RequestedDays)
		body := decodeBody(t, w.Body.Bytes())
		data := body["data"].(map[string]interface{})
		assert.Equal(t, float64(12), data["request_id"])
		assert.Equal(t, "pending", data["status"])
	})

	t.Run("DuplicatePending", func(t *testing.T) {
		submitUC := &mockSubmitUC{
			err: errors.NewDuplicatePendingError("a pending request for this resource already exists"),
		}
		handler := newTestRequestHandler(submitUC, &mockApproveUC{}, &mockRejectUC{})

		c, w := testutil.NewTestContext(http.MethodPost, "/api/requests", gin.H{
			"resource_id": 4,
		})
		testutil.SetAuthContext(c, 31, "student")

		handler.Submit(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		handler := newTestRequestHandler(&mockSubmitUC{}, &mockApproveUC{}, &mockRejectUC{})

		c, w := testutil.NewTestContext(http.MethodPost, "/api/requests", gin.H{
			"resource_id": 4,
		})

		handler.Submit(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequestHandler_Approve(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		due := time.Now().UTC().Add(14 * 24 * time.Hour)
		approveUC := &mockApproveUC{
			result: &usecases.ApproveRequestResult{
				RequestID:    12,
				AllocationID: 5,
				Status:       "approved",
				DueAt:        &due,
			},
		}
		handler := newTestRequestHandler(&mockSubmitUC{}, approveUC, &mockRejectUC{})

		c, w := testutil.NewTestContext(http.MethodPost, "/api/requests/12/approve", nil)
		testutil.SetAuthContext(c, 2, "librarian")
		testutil.SetURLParam(c, "id", "12")

		handler.Approve(c)

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w.Body.Bytes())
		data := body["data"].(map[string]interface{})
		assert.Equal(t, float64(5), data["allocation_id"])
		assert.Equal(t, "approved", data["status"])
	})

	t.Run("ResourceExhausted", func(t *testing.T) {
		approveUC := &mockApproveUC{
			err: errors.NewExhaustedError("no units available"),
		}
		handler := newTestRequestHandler(&mockSubmitUC{}, approveUC, &mockRejectUC{})

		c, w := testutil.NewTestContext(http.MethodPost, "/api/requests/12/approve", nil)
		testutil.SetAuthContext(c, 2, "librarian")
		testutil.SetURLParam(c, "id", "12")

		handler.Approve(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("InvalidID", func(t *testing.T) {
		handler := newTestRequestHandler(&mockSubmitUC{}, &mockApproveUC{}, &mockRejectUC{})

		c, w := testutil.NewTestContext(http.MethodPost, "/api/requests/abc/approve", nil)
		testutil.SetAuthContext(c, 2, "librarian")
		testutil.SetURLParam(c, "id", "abc")

		handler.Approve(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRequestHandler_Reject(t *testing.T) {
	decidedAt := time.Now().UTC()
	rejectUC := &mockRejectUC{
		result: &usecases.RejectRequestResult{
			RequestID: 9,
			Status:    "rejected",
			DecidedAt: &decidedAt,
		},
	}
	handler := newTestRequestHandler(&mockSubmitUC{}, &mockApproveUC{}, rejectUC)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/requests/9/reject", gin.H{
		"note": "class is full",
	})
	testutil.SetAuthContext(c, 2, "librarian")
	testutil.SetURLParam(c, "id", "9")

	handler.Reject(c)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w.Body.Bytes())
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "rejected", data["status"])
}
