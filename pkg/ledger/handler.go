package ledger

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/clubops/club-manager/internal/errdef"
	"github.com/clubops/club-manager/internal/handler"
	"github.com/clubops/club-manager/pkg/model"
	"github.com/gin-gonic/gin"
)

func NewHandler(ledgerService ledgerService, imageService receiptImageService) Handler {
	return Handler{ledgerService, imageService}
}

type Handler struct {
	ledgerService ledgerService
	imageService  receiptImageService
}

type ledgerService interface {
	AddReceipt(ctx context.Context, eventID uint, name string, amount float64, date time.Time, category string) (*model.Receipt, error)
	AddExpense(ctx context.Context, eventID uint, description string, amount float64, category, submittedBy string) (*model.Expense, error)
	ApproveExpense(ctx context.Context, eventID, expenseID uint) (*model.Expense, error)
	RejectExpense(ctx context.Context, eventID, expenseID uint) (*model.Expense, error)
	AddVendor(ctx context.Context, eventID uint, name, email, category string) (*model.Vendor, error)
	UpdateVendorStatus(ctx context.Context, eventID, vendorID uint, status model.VendorStatus) (*model.Vendor, error)
}

type receiptImageService interface {
	AttachReceiptImage(ctx context.Context, eventID, receiptID uint, reader io.Reader, size int64, contentType string) (*model.Receipt, error)
	GetReceiptImage(ctx context.Context, eventID, receiptID uint) (io.ReadCloser, int64, string, error)
}

type AddReceiptRequest struct {
	Name     string  `json:"name" binding:"required"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Date     string  `json:"date" binding:"required,datetime=2006-01-02"`
	Category string  `json:"category"`
}

// AddReceipt to event
func (h Handler) AddReceipt(c *gin.Context) {
	// swagger:route POST /events/{id}/receipts addReceipt
	//
	// Add receipt
	//
	// Append a receipt and re-derive the event's actual spending
	//
	// responses:
	//   201: Receipt
	//   400: Error
	//   404: Error
	//   415: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	var request AddReceiptRequest
	if err := handler.DataBinder(c, &request); err != nil {
		return
	}

	date, err := time.Parse("2006-01-02", request.Date)
	if err != nil {
		_ = c.Error(errdef.NewValidation("failed to parse date %q: %v", request.Date, err))
		return
	}

	receipt, err := h.ledgerService.AddReceipt(c.Request.Context(), id, request.Name, request.Amount, date, request.Category)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, receipt)
}

type AddExpenseRequest struct {
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Category    string  `json:"category"`
	SubmittedBy string  `json:"submittedBy" binding:"required"`
}

// AddExpense to event
func (h Handler) AddExpense(c *gin.Context) {
	// swagger:route POST /events/{id}/expenses addExpense
	//
	// Add expense
	//
	// Record a reimbursement request in status pending. Expenses do not
	// affect the event's actual spending.
	//
	// responses:
	//   201: Expense
	//   400: Error
	//   404: Error
	//   415: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	var request AddExpenseRequest
	if err := handler.DataBinder(c, &request); err != nil {
		return
	}

	expense, err := h.ledgerService.AddExpense(c.Request.Context(), id, request.Description, request.Amount, request.Category, request.SubmittedBy)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, expense)
}

// ApproveExpense on event
func (h Handler) ApproveExpense(c *gin.Context) {
	// swagger:route PUT /events/{id}/expenses/{expenseId}/approve approveExpense
	//
	// Approve expense
	//
	// Approve a pending expense and request its reimbursement
	//
	// responses:
	//   200: Expense
	//   400: Error
	//   404: Error
	//   409: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}
	expenseID, ok := handler.GetPathParameter(c, "expenseId")
	if !ok {
		return
	}

	expense, err := h.ledgerService.ApproveExpense(c.Request.Context(), id, expenseID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, expense)
}

// RejectExpense on event
func (h Handler) RejectExpense(c *gin.Context) {
	// swagger:route PUT /events/{id}/expenses/{expenseId}/reject rejectExpense
	//
	// Reject expense
	//
	// Reject a pending expense
	//
	// responses:
	//   200: Expense
	//   400: Error
	//   404: Error
	//   409: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}
	expenseID, ok := handler.GetPathParameter(c, "expenseId")
	if !ok {
		return
	}

	expense, err := h.ledgerService.RejectExpense(c.Request.Context(), id, expenseID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, expense)
}

type AddVendorRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Category string `json:"category"`
}

// AddVendor to event
func (h Handler) AddVendor(c *gin.Context) {
	// swagger:route POST /events/{id}/vendors addVendor
	//
	// Add vendor
	//
	// Invite a vendor to an event and send the invitation email
	//
	// responses:
	//   201: Vendor
	//   400: Error
	//   404: Error
	//   415: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	var request AddVendorRequest
	if err := handler.DataBinder(c, &request); err != nil {
		return
	}

	vendor, err := h.ledgerService.AddVendor(c.Request.Context(), id, request.Name, request.Email, request.Category)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, vendor)
}

type UpdateVendorStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=confirmed declined"`
}

// UpdateVendorStatus on event
func (h Handler) UpdateVendorStatus(c *gin.Context) {
	// swagger:route PUT /events/{id}/vendors/{vendorId}/status updateVendorStatus
	//
	// Update vendor status
	//
	// Confirm or decline an invited vendor; both statuses are terminal
	//
	// responses:
	//   200: Vendor
	//   400: Error
	//   404: Error
	//   409: Error
	//   415: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}
	vendorID, ok := handler.GetPathParameter(c, "vendorId")
	if !ok {
		return
	}

	var request UpdateVendorStatusRequest
	if err := handler.DataBinder(c, &request); err != nil {
		return
	}

	vendor, err := h.ledgerService.UpdateVendorStatus(c.Request.Context(), id, vendorID, model.VendorStatus(request.Status))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, vendor)
}

// UploadReceiptImage for receipt
func (h Handler) UploadReceiptImage(c *gin.Context) {
	// swagger:route POST /events/{id}/receipts/{receiptId}/image uploadReceiptImage
	//
	// Upload receipt image
	//
	// Store the receipt's image; the ledger keeps only a reference
	//
	// responses:
	//   200: Receipt
	//   400: Error
	//   404: Error
	//   415: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}
	receiptID, ok := handler.GetPathParameter(c, "receiptId")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		_ = c.Error(errdef.NewValidation("image file is required: %v", err))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		_ = c.Error(err)
		return
	}
	defer func() {
		_ = file.Close()
	}()

	contentType := fileHeader.Header.Get("Content-Type")
	receipt, err := h.imageService.AttachReceiptImage(c.Request.Context(), id, receiptID, file, fileHeader.Size, contentType)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, receipt)
}

// DownloadReceiptImage of receipt
func (h Handler) DownloadReceiptImage(c *gin.Context) {
	// swagger:route GET /events/{id}/receipts/{receiptId}/image downloadReceiptImage
	//
	// Download receipt image
	//
	// responses:
	//   200: Stream
	//   400: Error
	//   404: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}
	receiptID, ok := handler.GetPathParameter(c, "receiptId")
	if !ok {
		return
	}

	image, size, contentType, err := h.imageService.GetReceiptImage(c.Request.Context(), id, receiptID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	defer func() {
		_ = image.Close()
	}()

	c.DataFromReader(http.StatusOK, size, contentType, image, nil)
}
