package routes

import (
	"net/http"

	"vizagaggregates/handlers"
)

// CORS middleware
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*") // Replace * with your domain in production
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight request
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func SetupRoutes(
	recordHandler *handlers.RecordHandler,
	referenceHandler *handlers.ReferenceHandler,
	reportHandler *handlers.ReportHandler,
	pdfHandler *handlers.PDFHandler,
) {
	// Record routes
	http.Handle("/records", withCORS(http.HandlerFunc(handlers.RecoverWrapper(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			recordHandler.CreateRecord(w, r)
		case http.MethodGet:
			recordHandler.GetAllRecords(w, r)
		case http.MethodDelete:
			recordHandler.DeleteRecord(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))))

	// Reference tables
	http.Handle("/clients", withCORS(http.HandlerFunc(handlers.RecoverWrapper(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			referenceHandler.AddClient(w, r)
		case http.MethodGet:
			referenceHandler.GetClients(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))))

	http.Handle("/vehicles", withCORS(http.HandlerFunc(handlers.RecoverWrapper(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			referenceHandler.AddVehicle(w, r)
		case http.MethodGet:
			referenceHandler.GetVehicles(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))))

	// Reports
	http.Handle("/reports/dispatch", withCORS(http.HandlerFunc(handlers.RecoverWrapper(reportHandler.DispatchReport))))
	http.Handle("/reports/trips", withCORS(http.HandlerFunc(handlers.RecoverWrapper(reportHandler.TripReport))))
	http.Handle("/reports/transport", withCORS(http.HandlerFunc(handlers.RecoverWrapper(reportHandler.TransportReport))))
	http.Handle("/reports/transport/pdf", withCORS(http.HandlerFunc(handlers.RecoverWrapper(pdfHandler.TransportBillPDF))))
}
