package utils

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"vizagaggregates/models"
	"vizagaggregates/repository"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// GenerateTransportBillPDF builds the transport billing summary for the
// date range (optionally one vehicle), renders it through the HTML
// template and prints it to A4 with headless Chrome.
func GenerateTransportBillPDF(repo repository.ReportRepository, startDate, endDate, vehicleNo string) ([]byte, error) {
	rows, err := repo.TransportSummary(startDate, endDate, vehicleNo)
	if err != nil {
		return nil, err
	}

	data := models.TransportBillPDFData{
		StartDate:   startDate,
		EndDate:     endDate,
		VehicleNo:   vehicleNo,
		GeneratedAt: time.Now().Format("02-Jan-2006 15:04"),
	}
	for _, row := range rows {
		line := models.TransportBillRow{
			VehicleNo:  row.VehicleNo,
			TotalTrips: row.TotalTrips,
			NetWt:      "-",
			Amount:     "-",
		}
		data.TotalTrips += row.TotalTrips
		if row.TotalNetWt != nil {
			line.NetWt = fmt.Sprintf("%.2f", *row.TotalNetWt)
			data.TotalNetWt += *row.TotalNetWt
		}
		if row.TotalTransportAmount != nil {
			line.Amount = fmt.Sprintf("%.2f", *row.TotalTransportAmount)
			data.TotalAmount += *row.TotalTransportAmount
		}
		data.Rows = append(data.Rows, line)
	}
	data.TotalWords = NumberToCurrencyWords(data.TotalAmount)

	tmpl, err := template.ParseFiles("templates/transport_bill.html")
	if err != nil {
		return nil, err
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return nil, err
	}

	finalHTML := `
		<!DOCTYPE html>
		<html>
		<head>
		<meta charset="UTF-8">
		<style>
		@page {
			size: A4;
			margin: 20px;
		}
		body {
			font-family: Arial, Helvetica, sans-serif;
			font-size: 12px;
			margin: 0;
			padding: 0;
		}
		table {
			width: 100%;
			border-collapse: collapse;
		}
		th, td {
			border: 1px solid #333;
			padding: 4px 6px;
			text-align: left;
		}
		tr {
			page-break-inside: avoid;
		}
		</style>
		</head>
		<body>` + body.String() + `</body></html>`

	tmpDir := os.TempDir()
	tmpHTML := filepath.Join(tmpDir, "transport_bill_"+time.Now().Format("20060102150405")+".html")
	if err := os.WriteFile(tmpHTML, []byte(finalHTML), 0644); err != nil {
		return nil, err
	}
	defer os.Remove(tmpHTML)

	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuf []byte
	fileURL := "file://" + tmpHTML

	err = chromedp.Run(ctx,
		chromedp.Navigate(fileURL),
		chromedp.Sleep(1*time.Second),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).  // A4 width
				WithPaperHeight(11.7). // A4 height
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}

	return pdfBuf, nil
}
