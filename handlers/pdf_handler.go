package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"vizagaggregates/repository"
	"vizagaggregates/utils"
)

type PDFHandler struct {
	Repo     repository.ReportRepository
	SavePath string
}

// TransportBillPDF generates the billing summary PDF for a date range
// (optionally a single vehicle), saves it locally and, when R2 is
// configured, uploads it and returns the public URL.
func (h *PDFHandler) TransportBillPDF(w http.ResponseWriter, r *http.Request) {
	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")
	if startDate == "" || endDate == "" {
		http.Error(w, "missing start_date or end_date", http.StatusBadRequest)
		return
	}
	vehicleNo := r.URL.Query().Get("vehicle_no")

	saveDir := h.SavePath
	if saveDir == "" {
		saveDir = "./pdfs"
	}
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		http.Error(w, "failed to create save directory: "+err.Error(), http.StatusInternalServerError)
		return
	}

	pdfBytes, err := utils.GenerateTransportBillPDF(h.Repo, startDate, endDate, vehicleNo)
	if err != nil {
		http.Error(w, "failed to generate PDF: "+err.Error(), http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("transport_bill_%s_%s_%d.pdf", startDate, endDate, time.Now().Unix())
	savePath := filepath.Join(saveDir, filename)

	if err := os.WriteFile(savePath, pdfBytes, 0644); err != nil {
		http.Error(w, "failed to save PDF: "+err.Error(), http.StatusInternalServerError)
		return
	}

	fileURL := ""
	if utils.R2Configured() {
		fileURL, err = utils.UploadToR2(pdfBytes, filename)
		if err != nil {
			// Local copy exists; report the upload failure without failing the request
			fmt.Printf("failed to upload bill %s to R2: %v\n", filename, err)
			fileURL = ""
		}
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Transport bill generated",
		Data: map[string]string{
			"file": filename,
			"url":  fileURL,
		},
	})
}
