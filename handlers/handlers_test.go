package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vizagaggregates/handlers"
	"vizagaggregates/models"
	"vizagaggregates/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory stand-ins for the repositories, so handler behavior
// (status codes, JSON shapes, conflict mapping) is testable without a
// database.

type fakeRecordRepo struct {
	records []*models.Record
	nextID  int64
	fail    error
}

func (f *fakeRecordRepo) CreateRecord(rec *models.Record) error {
	if f.fail != nil {
		return f.fail
	}
	f.nextID++
	rec.ID = f.nextID
	rec.CreatedAt = time.Now().UTC()
	f.records = append([]*models.Record{rec}, f.records...)
	return nil
}

func (f *fakeRecordRepo) GetAllRecords() ([]*models.Record, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	return f.records, nil
}

func (f *fakeRecordRepo) DeleteRecord(id int64) error {
	if f.fail != nil {
		return f.fail
	}
	for i, rec := range f.records {
		if rec.ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			break
		}
	}
	return nil // missing id is not an error
}

type fakeReferenceRepo struct {
	clients  []*models.Client
	vehicles []*models.Vehicle
}

func (f *fakeReferenceRepo) GetClients() ([]*models.Client, error) { return f.clients, nil }

func (f *fakeReferenceRepo) AddClient(name string) (*models.Client, error) {
	for _, c := range f.clients {
		if c.Name == name {
			return nil, repository.ErrDuplicate
		}
	}
	c := &models.Client{ID: int64(len(f.clients) + 1), Name: name, CreatedAt: time.Now().UTC()}
	f.clients = append(f.clients, c)
	return c, nil
}

func (f *fakeReferenceRepo) GetVehicles() ([]*models.Vehicle, error) { return f.vehicles, nil }

func (f *fakeReferenceRepo) AddVehicle(vehicleNo string) (*models.Vehicle, error) {
	for _, v := range f.vehicles {
		if v.VehicleNo == vehicleNo {
			return nil, repository.ErrDuplicate
		}
	}
	v := &models.Vehicle{ID: int64(len(f.vehicles) + 1), VehicleNo: vehicleNo, CreatedAt: time.Now().UTC()}
	f.vehicles = append(f.vehicles, v)
	return v, nil
}

func (f *fakeReferenceRepo) SeedReferenceData(clients, vehicles []string) error {
	for _, name := range clients {
		if _, err := f.AddClient(name); err != nil && !errors.Is(err, repository.ErrDuplicate) {
			return err
		}
	}
	for _, vehicleNo := range vehicles {
		if _, err := f.AddVehicle(vehicleNo); err != nil && !errors.Is(err, repository.ErrDuplicate) {
			return err
		}
	}
	return nil
}

type fakeReportRepo struct {
	dispatch  []models.DispatchRow
	trips     []models.TripRow
	transport []models.TransportRow

	gotDate, gotShift          string
	gotStart, gotEnd, gotVehNo string
}

func (f *fakeReportRepo) DispatchSummary(date, shift string) ([]models.DispatchRow, error) {
	f.gotDate, f.gotShift = date, shift
	return f.dispatch, nil
}

func (f *fakeReportRepo) TripSummary(date, shift string) ([]models.TripRow, error) {
	f.gotDate, f.gotShift = date, shift
	return f.trips, nil
}

func (f *fakeReportRepo) TransportSummary(startDate, endDate, vehicleNo string) ([]models.TransportRow, error) {
	f.gotStart, f.gotEnd, f.gotVehNo = startDate, endDate, vehicleNo
	return f.transport, nil
}

func TestCreateRecordHandler(t *testing.T) {
	repo := &fakeRecordRepo{}
	h := &handlers.RecordHandler{Repo: repo}

	body, _ := json.Marshal(map[string]interface{}{
		"accounting_date":  "2025-03-10",
		"transaction_date": "2025-03-10",
		"shift":            "A",
		"client_details":   "KEC – Rambali",
		"material_type":    "Gravel",
		"vehicle_no":       "AP39UJ1166",
		"net_wt":           26.0,
	})

	w := httptest.NewRecorder()
	h.CreateRecord(w, httptest.NewRequest(http.MethodPost, "/records", bytes.NewReader(body)))

	assert.Equal(t, http.StatusCreated, w.Code)

	var rec models.Record
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	assert.EqualValues(t, 1, rec.ID)
	assert.Equal(t, "KEC – Rambali", rec.ClientDetails)
	require.NotNil(t, rec.NetWt)
	assert.InDelta(t, 26, *rec.NetWt, 0.001)
}

func TestCreateRecordHandlerBadJSON(t *testing.T) {
	h := &handlers.RecordHandler{Repo: &fakeRecordRepo{}}

	w := httptest.NewRecorder()
	h.CreateRecord(w, httptest.NewRequest(http.MethodPost, "/records", bytes.NewReader([]byte("{not json"))))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAllRecordsHandlerEmpty(t *testing.T) {
	h := &handlers.RecordHandler{Repo: &fakeRecordRepo{}}

	w := httptest.NewRecorder()
	h.GetAllRecords(w, httptest.NewRequest(http.MethodGet, "/records", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]\n", w.Body.String())
}

func TestDeleteRecordHandler(t *testing.T) {
	repo := &fakeRecordRepo{}
	h := &handlers.RecordHandler{Repo: repo}

	rec := &models.Record{AccountingDate: "2025-03-10", TransactionDate: "2025-03-10"}
	require.NoError(t, repo.CreateRecord(rec))

	w := httptest.NewRecorder()
	h.DeleteRecord(w, httptest.NewRequest(http.MethodDelete, "/records?id=1", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, repo.records)

	// a second delete of the same id still succeeds
	w = httptest.NewRecorder()
	h.DeleteRecord(w, httptest.NewRequest(http.MethodDelete, "/records?id=1", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteRecordHandlerBadID(t *testing.T) {
	h := &handlers.RecordHandler{Repo: &fakeRecordRepo{}}

	w := httptest.NewRecorder()
	h.DeleteRecord(w, httptest.NewRequest(http.MethodDelete, "/records", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	h.DeleteRecord(w, httptest.NewRequest(http.MethodDelete, "/records?id=abc", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddClientConflict(t *testing.T) {
	repo := &fakeReferenceRepo{}
	h := &handlers.ReferenceHandler{Repo: repo}

	body := []byte(`{"name":"KEC – Rambali"}`)

	w := httptest.NewRecorder()
	h.AddClient(w, httptest.NewRequest(http.MethodPost, "/clients", bytes.NewReader(body)))
	assert.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	h.AddClient(w, httptest.NewRequest(http.MethodPost, "/clients", bytes.NewReader(body)))
	assert.Equal(t, http.StatusConflict, w.Code)

	var resp handlers.ApiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Client already exists", resp.Message)
}

func TestAddClientMissingName(t *testing.T) {
	h := &handlers.ReferenceHandler{Repo: &fakeReferenceRepo{}}

	w := httptest.NewRecorder()
	h.AddClient(w, httptest.NewRequest(http.MethodPost, "/clients", bytes.NewReader([]byte(`{"name":"  "}`))))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddVehicleConflict(t *testing.T) {
	h := &handlers.ReferenceHandler{Repo: &fakeReferenceRepo{}}

	body := []byte(`{"vehicle_no":"AP39UJ1166"}`)

	w := httptest.NewRecorder()
	h.AddVehicle(w, httptest.NewRequest(http.MethodPost, "/vehicles", bytes.NewReader(body)))
	assert.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	h.AddVehicle(w, httptest.NewRequest(http.MethodPost, "/vehicles", bytes.NewReader(body)))
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestDispatchReportHandler(t *testing.T) {
	netWt := 15.0
	repo := &fakeReportRepo{dispatch: []models.DispatchRow{
		{ClientDetails: "X", MaterialType: "Gravel", TotalNetWt: &netWt, Trips: 2},
	}}
	h := &handlers.ReportHandler{Repo: repo}

	w := httptest.NewRecorder()
	h.DispatchReport(w, httptest.NewRequest(http.MethodGet, "/reports/dispatch?date=2025-03-10&shift=ALL", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2025-03-10", repo.gotDate)
	assert.Equal(t, "ALL", repo.gotShift)

	var rows []models.DispatchRow
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.EqualValues(t, 2, rows[0].Trips)
}

func TestDispatchReportHandlerMissingDate(t *testing.T) {
	h := &handlers.ReportHandler{Repo: &fakeReportRepo{}}

	w := httptest.NewRecorder()
	h.DispatchReport(w, httptest.NewRequest(http.MethodGet, "/reports/dispatch", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTripReportHandlerEmpty(t *testing.T) {
	h := &handlers.ReportHandler{Repo: &fakeReportRepo{trips: []models.TripRow{}}}

	w := httptest.NewRecorder()
	h.TripReport(w, httptest.NewRequest(http.MethodGet, "/reports/trips?date=2025-03-10", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]\n", w.Body.String())
}

func TestTransportReportHandler(t *testing.T) {
	repo := &fakeReportRepo{transport: []models.TransportRow{}}
	h := &handlers.ReportHandler{Repo: repo}

	w := httptest.NewRecorder()
	h.TransportReport(w, httptest.NewRequest(http.MethodGet,
		"/reports/transport?start_date=2025-03-01&end_date=2025-03-31&vehicle_no=AP39UJ1166", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2025-03-01", repo.gotStart)
	assert.Equal(t, "2025-03-31", repo.gotEnd)
	assert.Equal(t, "AP39UJ1166", repo.gotVehNo)

	// missing range is rejected before touching the store
	w = httptest.NewRecorder()
	h.TransportReport(w, httptest.NewRequest(http.MethodGet, "/reports/transport?start_date=2025-03-01", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
