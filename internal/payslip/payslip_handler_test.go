package payslip_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-payroll/internal/payslip"
	paysliperrors "go-payroll/internal/payslip/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func mustDecodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakePayslipService struct {
	getAllFn  func(ctx context.Context) []payslip.PayslipResponse
	getByIDFn func(ctx context.Context, id int) (payslip.PayslipResponse, error)
	createFn  func(ctx context.Context, req payslip.CreatePayslipRequest) (payslip.PayslipResponse, error)
	updateFn  func(ctx context.Context, id int, req payslip.UpdatePayslipRequest) (payslip.PayslipResponse, error)
	deleteFn  func(ctx context.Context, id int) error
}

func (f *fakePayslipService) GetAll(ctx context.Context) []payslip.PayslipResponse {
	return f.getAllFn(ctx)
}

func (f *fakePayslipService) GetByID(ctx context.Context, id int) (payslip.PayslipResponse, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakePayslipService) Create(ctx context.Context, req payslip.CreatePayslipRequest) (payslip.PayslipResponse, error) {
	return f.createFn(ctx, req)
}

func (f *fakePayslipService) Update(ctx context.Context, id int, req payslip.UpdatePayslipRequest) (payslip.PayslipResponse, error) {
	return f.updateFn(ctx, id, req)
}

func (f *fakePayslipService) Delete(ctx context.Context, id int) error {
	return f.deleteFn(ctx, id)
}

func TestPayslipHandler_Create(t *testing.T) {
	svc := &fakePayslipService{
		createFn: func(ctx context.Context, req payslip.CreatePayslipRequest) (payslip.PayslipResponse, error) {
			assert.Equal(t, 1, req.EmployeeID)
			assert.Equal(t, "2024-03", req.Period)
			return payslip.PayslipResponse{ID: 3, EmployeeID: 1, Period: req.Period, Status: payslip.StatusDraft}, nil
		},
	}

	h := payslip.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"employeeId":1,"period":"2024-03","grossSalary":50000,"totalDeductions":4500}`
	c.Request = httptest.NewRequest(http.MethodPost, "/payslips", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
}

func TestPayslipHandler_Create_PaymentDateRequired(t *testing.T) {
	svc := &fakePayslipService{
		createFn: func(ctx context.Context, req payslip.CreatePayslipRequest) (payslip.PayslipResponse, error) {
			return payslip.PayslipResponse{}, paysliperrors.ErrPaymentDateRequired
		},
	}

	h := payslip.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"employeeId":1,"period":"2024-03","status":"paid"}`
	c.Request = httptest.NewRequest(http.MethodPost, "/payslips", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.Equal(t, "INVALID_STATE", env.Error.Code)
}

func TestPayslipHandler_GetById_NotFound(t *testing.T) {
	svc := &fakePayslipService{
		getByIDFn: func(ctx context.Context, id int) (payslip.PayslipResponse, error) {
			return payslip.PayslipResponse{}, paysliperrors.ErrPayslipNotFound
		},
	}

	h := payslip.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/payslips/99", nil)
	c.Params = []gin.Param{{Key: "id", Value: "99"}}

	h.GetById(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestPayslipHandler_GetById_InvalidID(t *testing.T) {
	h := payslip.NewHandler(&fakePayslipService{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/payslips/abc", nil)
	c.Params = []gin.Param{{Key: "id", Value: "abc"}}

	h.GetById(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPayslipHandler_GetAll(t *testing.T) {
	svc := &fakePayslipService{
		getAllFn: func(ctx context.Context) []payslip.PayslipResponse {
			return []payslip.PayslipResponse{{ID: 1}, {ID: 2}}
		},
	}

	h := payslip.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/payslips", nil)

	h.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
}

func TestPayslipHandler_Delete(t *testing.T) {
	svc := &fakePayslipService{
		deleteFn: func(ctx context.Context, id int) error {
			assert.Equal(t, 5, id)
			return nil
		},
	}

	h := payslip.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "/payslips/5", nil)
	c.Params = []gin.Param{{Key: "id", Value: "5"}}

	h.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
}
