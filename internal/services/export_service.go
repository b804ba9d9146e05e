package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"nxtrix/internal/common"
	"nxtrix/internal/models"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const (
	sellerSheet      = "Seller Leads"
	buyerSheet       = "Buyer Leads"
	exportURLExpiry  = 15 * time.Minute
	xlsxContentType  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	exportTimeLayout = "2006-01-02 15:04"
)

var sellerExportHeader = []string{
	"Property Address", "Seller Name", "Phone", "Email", "Asking Price", "ARV",
	"Repair Costs", "Buyer ROI %", "Status", "Source", "Notes", "Created",
}

var buyerExportHeader = []string{
	"Investor Name", "Email", "Phone", "Max Budget", "Min ROI %",
	"Preferred Location", "Property Type", "Status", "Notes", "Created",
}

type ExportResult struct {
	ObjectKey string    `json:"object_key"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

type ExportService interface {
	ExportLeads(ctx context.Context, userID uuid.UUID) (*ExportResult, error)
}

type exportService struct {
	leadService  LeadService
	minioService MinioService
	bucket       string
	logger       *zap.Logger
}

func NewExportService(leadService LeadService, minioService MinioService, bucket string, logger *zap.Logger) ExportService {
	return &exportService{
		leadService:  leadService,
		minioService: minioService,
		bucket:       bucket,
		logger:       logger,
	}
}

// ExportLeads writes the user's leads to a workbook in object storage and returns a presigned link.
func (s *exportService) ExportLeads(ctx context.Context, userID uuid.UUID) (*ExportResult, error) {
	sellers, err := s.leadService.ListSellerLeads(ctx, userID)
	if err != nil {
		return nil, err
	}
	buyers, err := s.leadService.ListBuyerLeads(ctx, userID)
	if err != nil {
		return nil, err
	}

	data, err := BuildLeadWorkbook(sellers, buyers)
	if err != nil {
		return nil, fmt.Errorf("failed to build workbook: %w", err)
	}

	now := time.Now()
	key := fmt.Sprintf("%s/leads-%d.xlsx", userID.String(), now.Unix())
	if err := s.minioService.UploadObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), xlsxContentType); err != nil {
		return nil, common.NewStoreError("upload export", err)
	}

	url, err := s.minioService.GetPresignedURL(ctx, s.bucket, key, exportURLExpiry)
	if err != nil {
		return nil, common.NewStoreError("sign export url", err)
	}

	s.logger.Info("Lead export created",
		zap.String("user_id", userID.String()),
		zap.String("object_key", key),
		zap.Int("seller_leads", len(sellers)),
		zap.Int("buyer_leads", len(buyers)),
	)
	return &ExportResult{ObjectKey: key, URL: url, ExpiresAt: now.Add(exportURLExpiry)}, nil
}

// BuildLeadWorkbook renders seller and buyer leads as two sheets of an xlsx file.
func BuildLeadWorkbook(sellers []*models.SellerLead, buyers []*models.BuyerLead) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sellerSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(buyerSheet); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	sellerRows := make([][]any, 0, len(sellers))
	for _, l := range sellers {
		sellerRows = append(sellerRows, []any{
			l.PropertyAddress, l.SellerName, l.SellerPhone, l.SellerEmail,
			common.SafeFloat64(l.AskingPrice), common.SafeFloat64(l.ARV),
			common.SafeFloat64(l.RepairCosts), common.SafeFloat64(l.BuyerROI),
			l.Status.DisplayStatus(), l.Source, l.Notes, l.CreatedAt.Format(exportTimeLayout),
		})
	}
	if err := writeSheet(f, sellerSheet, sellerExportHeader, sellerRows, headerStyle); err != nil {
		return nil, err
	}

	buyerRows := make([][]any, 0, len(buyers))
	for _, l := range buyers {
		buyerRows = append(buyerRows, []any{
			l.InvestorName, l.Email, l.Phone, l.MaxBudget, l.MinROI,
			l.PreferredLocation, string(l.PropertyType), string(l.Status), l.Notes,
			l.CreatedAt.Format(exportTimeLayout),
		})
	}
	if err := writeSheet(f, buyerSheet, buyerExportHeader, buyerRows, headerStyle); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, sheet string, header []string, rows [][]any, headerStyle int) error {
	headerRow := make([]any, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return fmt.Errorf("failed to write %s header: %w", sheet, err)
	}

	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("failed to style %s header: %w", sheet, err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+2, err)
		}
	}
	return nil
}
