package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/supplier-performance-api/infrastructure/repository/mocks"
	"github.com/vfg2006/supplier-performance-api/internal/domain"
	"github.com/vfg2006/supplier-performance-api/internal/usecases/incentivizing"
	"github.com/vfg2006/supplier-performance-api/internal/usecases/revenue"
	"github.com/vfg2006/supplier-performance-api/internal/usecases/targeting"
	"github.com/vfg2006/supplier-performance-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type errorBody struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// withParams injeta os parâmetros de rota como o httprouter faria
func withParams(r *http.Request, params ...httprouter.Param) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), httprouter.ParamsKey, httprouter.Params(params)))
}

func TestGetWorkingDays(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantTotal  int
	}{
		{name: "Fevereiro de 2025", query: "year=2025&month=2", wantStatus: http.StatusOK, wantTotal: 24},
		{name: "Mês inválido", query: "year=2025&month=13", wantStatus: http.StatusBadRequest},
		{name: "Ano ausente", query: "month=2", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/v1/calendar/working-days?"+tt.query, nil)

			GetWorkingDays().ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				var body domain.CalendarResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.wantTotal, body.Total)
				assert.Len(t, body.WorkingDays, tt.wantTotal)
			}
		})
	}
}

func TestTargetHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	targets := mocks.NewMockTargetRepository(ctrl)
	suppliers := mocks.NewMockSupplierRepository(ctrl)
	strict := targeting.NewService(targets, suppliers, nil, domain.ValidationModeStrict)

	t.Run("Validação devolve flags mesmo com divergência", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/targets/validate",
			strings.NewReader(`{"total_packs_target":1000,"weekly_targets":[300,300,300,300]}`))

		ValidateTarget(strict).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var validation domain.TargetValidation
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &validation))
		assert.Equal(t, 1200, validation.WeeklySum)
		assert.False(t, validation.WeeklyMatches)
	})

	t.Run("Número fracionário é rejeitado", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/targets/validate",
			strings.NewReader(`{"total_packs_target":1000.5,"weekly_targets":[250,250,250,250]}`))

		ValidateTarget(strict).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
	})

	t.Run("Categoria desconhecida", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/targets/validate",
			strings.NewReader(`{"total_packs_target":1000,"weekly_targets":[250,250,250,250],"category_targets":{"BEER":1000}}`))

		ValidateTarget(strict).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, apiErrors.ErrInvalidCategory, body.Code)
		assert.Equal(t, "category_targets", body.Details["field"])
	})

	t.Run("Modo strict bloqueia criação divergente", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/targets",
			strings.NewReader(`{"supplier_id":"sup-1","year":2025,"month":2,"total_packs_target":1000,"weekly_targets":[300,300,300,300]}`))

		CreateTarget(strict).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrTotalMismatch, decodeError(t, rec).Code)
	})

	t.Run("Criação duplicada retorna conflito", func(t *testing.T) {
		suppliers.EXPECT().GetByID(gomock.Any(), "sup-1").Return(&domain.Supplier{ID: "sup-1"}, nil)
		targets.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, domain.ErrDuplicateKey)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/targets",
			strings.NewReader(`{"supplier_id":"sup-1","year":2025,"month":2,"total_packs_target":1000,"weekly_targets":[250,250,250,250]}`))

		CreateTarget(strict).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, apiErrors.ErrDuplicateKey, decodeError(t, rec).Code)
	})

	t.Run("Atualização de meta inexistente", func(t *testing.T) {
		targets.EXPECT().Update(gomock.Any(), "sup-1", 2025, 2, gomock.Any()).Return(nil, domain.ErrNotFound)

		rec := httptest.NewRecorder()
		req := withParams(
			httptest.NewRequest(http.MethodPut, "/v1/suppliers/sup-1/targets/2025/2",
				strings.NewReader(`{"total_packs_target":1000,"weekly_targets":[250,250,250,250]}`)),
			httprouter.Param{Key: "id", Value: "sup-1"},
			httprouter.Param{Key: "year", Value: "2025"},
			httprouter.Param{Key: "month", Value: "2"},
		)

		UpdateTarget(strict).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Remoção", func(t *testing.T) {
		targets.EXPECT().Delete(gomock.Any(), "t1").Return(nil)

		rec := httptest.NewRecorder()
		req := withParams(httptest.NewRequest(http.MethodDelete, "/v1/targets/t1", nil), httprouter.Param{Key: "id", Value: "t1"})

		DeleteTarget(strict).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestGetSupplierRevenue(t *testing.T) {
	ctrl := gomock.NewController(t)
	suppliers := mocks.NewMockSupplierRepository(ctrl)
	orders := mocks.NewMockSupplierOrderRepository(ctrl)
	service := revenue.NewService(suppliers, orders)

	tests := []struct {
		name       string
		query      string
		setup      func()
		wantStatus int
	}{
		{
			name:  "Mês",
			query: "year=2025&month=3",
			setup: func() {
				suppliers.EXPECT().GetByID(gomock.Any(), "sup-1").Return(&domain.Supplier{ID: "sup-1"}, nil)
				orders.EXPECT().OrdersForSupplier(gomock.Any(), "sup-1", domain.ForMonth(2025, 3)).Return(nil, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "Intervalo",
			query: "start_date=2025-03-01&end_date=2025-03-15",
			setup: func() {
				suppliers.EXPECT().GetByID(gomock.Any(), "sup-1").Return(&domain.Supplier{ID: "sup-1"}, nil)
				orders.EXPECT().OrdersForSupplier(gomock.Any(), "sup-1", gomock.Any()).Return(nil, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "Todo o histórico com fornecedor inexistente",
			query: "",
			setup: func() {
				suppliers.EXPECT().GetByID(gomock.Any(), "sup-1").Return(nil, nil)
			},
			wantStatus: http.StatusNotFound,
		},
		{name: "Ano sem mês", query: "year=2025", setup: func() {}, wantStatus: http.StatusBadRequest},
		{name: "Data inválida", query: "start_date=01/03/2025", setup: func() {}, wantStatus: http.StatusBadRequest},
		{name: "Intervalo invertido", query: "start_date=2025-03-15&end_date=2025-03-01", setup: func() {}, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			rec := httptest.NewRecorder()
			req := withParams(httptest.NewRequest(http.MethodGet, "/v1/suppliers/sup-1/revenue?"+tt.query, nil), httprouter.Param{Key: "id", Value: "sup-1"})

			GetSupplierRevenue(service).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestIncentiveHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	incentives := mocks.NewMockIncentiveRepository(ctrl)
	suppliers := mocks.NewMockSupplierRepository(ctrl)
	orders := mocks.NewMockSupplierOrderRepository(ctrl)
	service := incentivizing.NewService(incentives, suppliers, revenue.NewService(suppliers, orders))

	marchOrders := []*domain.SupplierOrder{
		{SupplierID: "sup-1", FinalAmount: decimal.NewFromInt(1500000), Status: domain.OrderStatusConfirmed, CreatedAt: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)},
	}

	t.Run("Consulta conciliada", func(t *testing.T) {
		incentives.EXPECT().GetByKey(gomock.Any(), "sup-1", 2025, 3).Return(&domain.SupplierIncentive{
			ID: "i1", SupplierID: "sup-1", Year: 2025, Month: 3, IncentivePercentage: decimal.NewFromInt(3),
		}, nil)
		suppliers.EXPECT().GetByID(gomock.Any(), "sup-1").Return(&domain.Supplier{ID: "sup-1"}, nil)
		orders.EXPECT().OrdersForSuppliers(gomock.Any(), []string{"sup-1"}, gomock.Any()).Return(marchOrders, nil)

		rec := httptest.NewRecorder()
		req := withParams(
			httptest.NewRequest(http.MethodGet, "/v1/suppliers/sup-1/incentives/2025/3", nil),
			httprouter.Param{Key: "id", Value: "sup-1"},
			httprouter.Param{Key: "year", Value: "2025"},
			httprouter.Param{Key: "month", Value: "3"},
		)

		GetIncentive(service).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "45000", body["calculated_incentive"])
		assert.Nil(t, body["variance"])
		assert.Equal(t, string(domain.ReconciliationNotApplicable), body["status"])
	})

	t.Run("Percentual inválido", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/incentives",
			strings.NewReader(`{"supplier_id":"sup-1","year":2025,"month":3,"incentive_percentage":"150"}`))

		CreateIncentive(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "incentive_percentage", decodeError(t, rec).Details["field"])
	})

	t.Run("Valor pago com três casas decimais", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/incentives",
			strings.NewReader(`{"supplier_id":"sup-1","year":2025,"month":3,"incentive_percentage":"3","actual_incentive_paid":"10.005"}`))

		CreateIncentive(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "actual_incentive_paid", decodeError(t, rec).Details["field"])
	})

	t.Run("Exportação XLSX", func(t *testing.T) {
		year, month := 2025, 3
		incentives.EXPECT().List(gomock.Any(), domain.IncentiveFilters{Year: &year, Month: &month}).Return([]*domain.SupplierIncentive{
			{ID: "i1", SupplierID: "sup-1", Year: 2025, Month: 3, IncentivePercentage: decimal.NewFromInt(3)},
		}, nil)
		suppliers.EXPECT().List(gomock.Any(), false).Return([]*domain.Supplier{{ID: "sup-1", Name: "Bebidas Sul"}}, nil)
		orders.EXPECT().OrdersForSuppliers(gomock.Any(), []string{"sup-1"}, gomock.Any()).Return(marchOrders, nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/incentives/report.xlsx?year=2025&month=3", nil)

		ExportIncentiveReport(service).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, xlsxContentType, rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "incentivos_2025_03.xlsx")
		assert.NotZero(t, rec.Body.Len())
	})

	t.Run("Relatório sem mês", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/incentives/report?year=2025", nil)

		GetIncentiveReport(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeError(t, rec).Code)
	})
}

type fakeCronJob struct {
	triggered int
}

func (f *fakeCronJob) TriggerManualSync() { f.triggered++ }

func (f *fakeCronJob) GetStatus() map[string]any {
	return map[string]any{"triggered": f.triggered}
}

func TestCronHandlers(t *testing.T) {
	job := &fakeCronJob{}
	services := CronJobServices{CronJobTypeOrders: job}

	run := func(cronType string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		req := withParams(httptest.NewRequest(http.MethodPost, "/v1/cron/"+cronType+"/run", nil), httprouter.Param{Key: "type", Value: cronType})
		RunCronJob(services).ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusAccepted, run("orders").Code)
	assert.Equal(t, http.StatusAccepted, run("all").Code)
	assert.Equal(t, 2, job.triggered)

	rec := run("meta")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "orders, all")

	rec = httptest.NewRecorder()
	GetCronStatus(services).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"orders"`)
}
